package commands

import (
	"strconv"

	"github.com/funvibe/funsh/internal/config"
	"github.com/funvibe/funsh/internal/diagnostics"
	"github.com/funvibe/funsh/internal/history"
)

// History lists recent input lines from the history store, oldest
// first. --limit caps the count.
type History struct {
	Store *history.Store
}

func (h *History) Name() string {
	return config.HistoryCmdName
}

func (h *History) Signature() *Signature {
	return Build(config.HistoryCmdName).
		NamedParam("limit", ShapeInt)
}

func (h *History) Run(ctx *RunContext, args *BoundArgs, input Value) ([]Value, *diagnostics.DiagnosticError) {
	if h.Store == nil {
		return nil, diagnostics.NewSpanError(diagnostics.ErrR003, ctx.Name,
			"history: no history database available")
	}

	limit := config.DefaultHistoryLimit
	if v, ok := args.Named["limit"]; ok && v.Str != "" {
		limit, _ = strconv.Atoi(v.Str) // shape-checked by the binder
	}

	entries, err := h.Store.Recent(limit)
	if err != nil {
		return nil, diagnostics.NewSpanError(diagnostics.ErrR003, ctx.Name, err.Error())
	}
	out := make([]Value, 0, len(entries))
	for _, entry := range entries {
		out = append(out, Value{Str: entry.Line})
	}
	return out, nil
}
