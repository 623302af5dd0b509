package commands

import (
	"github.com/funvibe/funsh/internal/config"
	"github.com/funvibe/funsh/internal/diagnostics"
)

// Echo emits its operand once per pipeline input item, so
// `a | echo x` yields as many values as a produced.
type Echo struct{}

func (e *Echo) Name() string {
	return config.EchoCmdName
}

func (e *Echo) Signature() *Signature {
	return Build(config.EchoCmdName).
		Required("value", ShapeAny)
}

func (e *Echo) Run(ctx *RunContext, args *BoundArgs, input Value) ([]Value, *diagnostics.DiagnosticError) {
	return []Value{args.Positional["value"]}, nil
}
