package commands

import (
	"github.com/funvibe/funsh/internal/diagnostics"
)

// BoundArgs is the typed result of binding a CallInfo against a
// Signature: every required positional present and shape-checked,
// named parameters keyed by name.
type BoundArgs struct {
	Positional map[string]Value
	Named      map[string]Value
}

// Has reports whether a named parameter was given.
func (b *BoundArgs) Has(name string) bool {
	_, ok := b.Named[name]
	return ok
}

// Bind validates a raw invocation against a signature and produces
// the typed argument set. Binding performs no I/O; the first
// violation is returned as a single labeled error:
//
//   - arity mismatch        -> B001 (too few) / B002 (too many)
//   - shape violation       -> B003, tagged at the offending value
//   - undeclared --flag     -> B004, tagged at the flag name
func Bind(sig *Signature, call *CallInfo) (*BoundArgs, *diagnostics.DiagnosticError) {
	if len(call.Positional) < len(sig.Positional) {
		missing := sig.Positional[len(call.Positional)]
		return nil, diagnostics.NewSpanError(diagnostics.ErrB001, call.NameSpan, missing.Name)
	}
	if len(call.Positional) > len(sig.Positional) {
		extra := call.Positional[len(sig.Positional)]
		return nil, diagnostics.NewSpanError(diagnostics.ErrB002, extra.Tag, extra.Str)
	}

	bound := &BoundArgs{
		Positional: make(map[string]Value, len(sig.Positional)),
		Named:      make(map[string]Value, len(call.Named)),
	}

	for i, param := range sig.Positional {
		val := call.Positional[i]
		if err := param.Shape.Check(val.Str); err != nil {
			return nil, diagnostics.NewSpanError(diagnostics.ErrB003, val.Tag, string(param.Shape), val.Str)
		}
		bound.Positional[param.Name] = val
	}

	for _, named := range call.Named {
		param, ok := sig.Named[named.Name]
		if !ok {
			return nil, diagnostics.NewSpanError(diagnostics.ErrB004, named.NameTag, named.Name)
		}
		if named.Value.Str != "" {
			if err := param.Shape.Check(named.Value.Str); err != nil {
				return nil, diagnostics.NewSpanError(diagnostics.ErrB003, named.Value.Tag, string(param.Shape), named.Value.Str)
			}
		}
		bound.Named[named.Name] = named.Value
	}

	return bound, nil
}
