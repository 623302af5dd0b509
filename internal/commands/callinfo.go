package commands

import (
	"github.com/funvibe/funsh/internal/ast"
	"github.com/funvibe/funsh/internal/source"
)

// NamedValue is one --flag operand of a raw invocation.
type NamedValue struct {
	Name    string
	NameTag source.Span
	Value   Value
}

// CallInfo is a raw invocation: spanned positional and named values
// not yet validated against a Signature.
type CallInfo struct {
	NameSpan   source.Span
	Positional []Value
	Named      []NamedValue
}

// NewCallInfo extracts the raw operands of a parsed command.
func NewCallInfo(cmd *ast.Command) *CallInfo {
	call := &CallInfo{NameSpan: cmd.NameTok.Span}
	for _, arg := range cmd.Args {
		if arg.IsNamed() {
			call.Named = append(call.Named, NamedValue{
				Name:    arg.Name,
				NameTag: arg.NameTok.Span,
				Value:   NewValue(arg.Value, arg.ValueTok.Span),
			})
			continue
		}
		call.Positional = append(call.Positional, NewValue(arg.Value, arg.ValueTok.Span))
	}
	return call
}
