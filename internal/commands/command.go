package commands

import (
	"github.com/funvibe/funsh/internal/diagnostics"
	"github.com/funvibe/funsh/internal/shell"
	"github.com/funvibe/funsh/internal/source"
)

// RunContext is what a bound command receives besides its arguments:
// the span of the invocation name (error attribution when no operand
// tag is more specific) and the shell state with the current working
// directory. Commands own their side effects; the protocol itself
// touches nothing.
type RunContext struct {
	Name  source.Span
	Shell *shell.State
}

// PerItemCommand is a builtin. Run executes synchronously for exactly
// one pipeline input item and returns either the ordered output
// values or a single labeled error. It must not consume further input
// and must not retry.
type PerItemCommand interface {
	Name() string
	Signature() *Signature
	Run(ctx *RunContext, args *BoundArgs, input Value) ([]Value, *diagnostics.DiagnosticError)
}
