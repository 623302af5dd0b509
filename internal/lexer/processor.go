package lexer

import (
	"github.com/funvibe/funsh/internal/diagnostics"
	"github.com/funvibe/funsh/internal/pipeline"
	"github.com/funvibe/funsh/internal/token"
)

type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	l := New(ctx.SourceCode)
	toks := l.Tokens()

	stream := make([]token.Token, 0, len(toks))
	for _, tok := range toks {
		if tok.Type == token.ILLEGAL {
			err := diagnostics.NewError(diagnostics.ErrL001, tok)
			err.File = ctx.FilePath
			ctx.Errors = append(ctx.Errors, err)
			continue
		}
		stream = append(stream, tok)
	}
	ctx.TokenStream = stream
	return ctx
}
