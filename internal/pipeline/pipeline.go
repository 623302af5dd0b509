package pipeline

import (
	"github.com/funvibe/funsh/internal/ast"
	"github.com/funvibe/funsh/internal/diagnostics"
	"github.com/funvibe/funsh/internal/token"
)

// PipelineContext carries one input line through the stages: source
// text in, tokens, AST and diagnostics out. Stages append to Errors
// instead of aborting so a single pass collects every diagnostic.
type PipelineContext struct {
	SourceCode string
	FilePath   string

	TokenStream []token.Token
	AstRoot     *ast.Pipeline

	// Output holds the rendered values produced by the run stage.
	Output []string

	Errors []*diagnostics.DiagnosticError
}

// Processor is a single stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		// Continue on errors to collect diagnostics from all stages;
		// stages that need a clean context check ctx.Errors themselves.
	}
	return ctx
}
