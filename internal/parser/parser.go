package parser

import (
	"github.com/funvibe/funsh/internal/ast"
	"github.com/funvibe/funsh/internal/diagnostics"
	"github.com/funvibe/funsh/internal/pipeline"
	"github.com/funvibe/funsh/internal/token"
)

// Parser turns one line's token stream into an ast.Pipeline. Errors
// are appended to the pipeline context; the parser keeps going where
// it can so one pass reports everything wrong with the line.
type Parser struct {
	tokens []token.Token
	pos    int
	ctx    *pipeline.PipelineContext
}

func New(tokens []token.Token, ctx *pipeline.PipelineContext) *Parser {
	return &Parser{tokens: tokens, ctx: ctx}
}

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.tokens) {
		return token.Token{Type: token.EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() {
	p.pos++
}

func (p *Parser) atEnd() bool {
	t := p.cur().Type
	return t == token.EOF || t == token.NEWLINE
}

func (p *Parser) errorAt(code diagnostics.ErrorCode, tok token.Token, args ...interface{}) {
	err := diagnostics.NewError(code, tok, args...)
	err.File = p.ctx.FilePath
	p.ctx.Errors = append(p.ctx.Errors, err)
}

// ParsePipeline parses commands joined by | until newline or EOF.
func (p *Parser) ParsePipeline() *ast.Pipeline {
	pl := &ast.Pipeline{File: p.ctx.FilePath}

	if p.atEnd() {
		return pl
	}

	for {
		cmd := p.parseCommand()
		if cmd != nil {
			pl.Commands = append(pl.Commands, cmd)
		}
		if p.cur().Type != token.PIPE {
			break
		}
		pipeTok := p.cur()
		p.advance()
		if p.atEnd() {
			p.errorAt(diagnostics.ErrP002, pipeTok)
			break
		}
	}

	if !p.atEnd() {
		p.errorAt(diagnostics.ErrP001, p.cur(), p.cur().Lexeme)
	}
	return pl
}

// parseCommand parses one invocation: a name followed by positional
// words/strings and --flag [value] pairs.
func (p *Parser) parseCommand() *ast.Command {
	tok := p.cur()
	switch tok.Type {
	case token.PIPE:
		p.errorAt(diagnostics.ErrP002, tok)
		return nil
	case token.FLAG:
		p.errorAt(diagnostics.ErrP003, tok, tok.Lexeme)
		p.skipCommand()
		return nil
	case token.WORD, token.STRING:
		// fallthrough to the argument loop below
	default:
		p.errorAt(diagnostics.ErrP001, tok, tok.Lexeme)
		p.skipCommand()
		return nil
	}

	cmd := &ast.Command{Name: tok.Literal, NameTok: tok}
	p.advance()

	for !p.atEnd() && p.cur().Type != token.PIPE {
		argTok := p.cur()
		switch argTok.Type {
		case token.WORD, token.STRING:
			cmd.Args = append(cmd.Args, ast.Argument{
				Value:    argTok.Literal,
				ValueTok: argTok,
			})
			p.advance()
		case token.FLAG:
			p.advance()
			arg := ast.Argument{Name: argTok.Literal, NameTok: argTok}
			if v := p.cur(); v.Type == token.WORD || v.Type == token.STRING {
				arg.Value = v.Literal
				arg.ValueTok = v
				p.advance()
			}
			cmd.Args = append(cmd.Args, arg)
		default:
			p.errorAt(diagnostics.ErrP001, argTok, argTok.Lexeme)
			p.advance()
		}
	}
	return cmd
}

// skipCommand advances past the current pipeline element after an
// unrecoverable command-level error.
func (p *Parser) skipCommand() {
	for !p.atEnd() && p.cur().Type != token.PIPE {
		p.advance()
	}
}
