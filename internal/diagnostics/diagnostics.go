// Package diagnostics defines the coded error values every pipeline
// stage reports through. An error carries a span into the original
// input so it can be rendered with a caret under the offending text.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/funvibe/funsh/internal/source"
	"github.com/funvibe/funsh/internal/token"
)

type ErrorCode string

const (
	// Lexer
	ErrL001 ErrorCode = "L001" // unterminated string
	ErrL002 ErrorCode = "L002" // illegal character

	// Parser
	ErrP001 ErrorCode = "P001" // unexpected token
	ErrP002 ErrorCode = "P002" // empty pipeline element
	ErrP003 ErrorCode = "P003" // flag is missing a command

	// Binder
	ErrB001 ErrorCode = "B001" // missing required parameter
	ErrB002 ErrorCode = "B002" // unexpected extra argument
	ErrB003 ErrorCode = "B003" // type mismatch
	ErrB004 ErrorCode = "B004" // unknown named parameter

	// Move engine
	ErrM001 ErrorCode = "M001" // invalid pattern
	ErrM002 ErrorCode = "M002" // invalid destination
	ErrM003 ErrorCode = "M003" // entry name unavailable
	ErrM004 ErrorCode = "M004" // rename failed
	ErrM005 ErrorCode = "M005" // destination missing
	ErrM006 ErrorCode = "M006" // directories in a multi-source pattern

	// Runtime
	ErrR001 ErrorCode = "R001" // directory change failed
	ErrR002 ErrorCode = "R002" // external command failed
	ErrR003 ErrorCode = "R003" // history unavailable
)

// templates maps codes with a fixed message shape to their format
// string. Codes without a template take the message verbatim from the
// NewError arguments.
var templates = map[ErrorCode]string{
	ErrL001: "unterminated string",
	ErrL002: "illegal character %q",
	ErrP001: "unexpected token %q",
	ErrP002: "empty command in pipeline",
	ErrP003: "flag %q is not attached to a command",
	ErrB001: "missing required parameter %q",
	ErrB002: "unexpected extra argument %q",
	ErrB003: "expected %s, got %q",
	ErrB004: "unknown named parameter %q",
}

// DiagnosticError is one terminal error of a command invocation.
// Label and Message hold identical text; the duplication is a
// deliberate convention carried through every error this shell emits,
// so downstream renderers may use either field interchangeably.
type DiagnosticError struct {
	Code    ErrorCode
	Label   string
	Message string
	Span    source.Span
	File    string
}

func (e *DiagnosticError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewError builds an error anchored at a token. Codes with a template
// format args into it; others join args into the message verbatim.
func NewError(code ErrorCode, tok token.Token, args ...interface{}) *DiagnosticError {
	return NewSpanError(code, tok.Span, args...)
}

// NewSpanError builds an error anchored at an explicit span.
func NewSpanError(code ErrorCode, span source.Span, args ...interface{}) *DiagnosticError {
	var msg string
	if tmpl, ok := templates[code]; ok {
		msg = fmt.Sprintf(tmpl, args...)
	} else {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, fmt.Sprint(a))
		}
		msg = strings.Join(parts, " ")
	}
	return &DiagnosticError{
		Code:    code,
		Label:   msg,
		Message: msg,
		Span:    span,
	}
}

// Render formats the error against its source text:
//
//	file:line:col: [M004] Rename "a" to "b" aborted. ...
//	  mv a b
//	     ^
func Render(e *DiagnosticError, src string) string {
	pos := source.PositionOf(src, e.Span.Start)
	var b strings.Builder
	if e.File != "" {
		fmt.Fprintf(&b, "%s:", e.File)
	}
	fmt.Fprintf(&b, "%d:%d: [%s] %s\n", pos.Line, pos.Column, e.Code, e.Message)

	line := source.LineOf(src, e.Span.Start)
	if line == "" {
		return b.String()
	}
	fmt.Fprintf(&b, "  %s\n", line)
	b.WriteString("  ")
	b.WriteString(strings.Repeat(" ", pos.Column-1))
	width := e.Span.Len()
	if width < 1 {
		width = 1
	}
	if width > len(line)-(pos.Column-1) {
		width = len(line) - (pos.Column - 1)
		if width < 1 {
			width = 1
		}
	}
	b.WriteString(strings.Repeat("^", width))
	b.WriteString("\n")
	return b.String()
}
