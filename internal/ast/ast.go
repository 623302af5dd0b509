package ast

import (
	"github.com/funvibe/funsh/internal/source"
	"github.com/funvibe/funsh/internal/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	Span() source.Span
}

// TokenProvider is an interface for any AST node that can provide its
// primary token. This is useful for error reporting.
type TokenProvider interface {
	GetToken() token.Token
}

// Argument is one operand of a parsed command. Positional operands
// have Name == "" and carry only a value; named operands (--flag with
// an optional value) carry both the flag token and the value token.
type Argument struct {
	Name     string // named parameter name, "" for positional
	NameTok  token.Token
	Value    string
	ValueTok token.Token
}

// IsNamed reports whether the argument was written as a --flag.
func (a Argument) IsNamed() bool {
	return a.Name != ""
}

// Tag returns the span used to attribute errors to this argument: the
// value token for positionals, the flag token for named operands.
func (a Argument) Tag() source.Span {
	if a.IsNamed() {
		return a.NameTok.Span
	}
	return a.ValueTok.Span
}

// Command is a single parsed invocation, not yet classified as
// builtin or external. The parser does not consult the registry.
type Command struct {
	Name    string
	NameTok token.Token
	Args    []Argument
}

func (c *Command) GetToken() token.Token {
	if c == nil {
		return token.Token{}
	}
	return c.NameTok
}

// Span covers the name and every argument.
func (c *Command) Span() source.Span {
	if c == nil {
		return source.Span{}
	}
	span := c.NameTok.Span
	for _, arg := range c.Args {
		if arg.IsNamed() {
			span = span.Until(arg.NameTok.Span)
		}
		if arg.ValueTok.Type != "" {
			span = span.Until(arg.ValueTok.Span)
		}
	}
	return span
}

// Pipeline is the root node of every line our parser produces:
// commands joined by |, executed left to right.
type Pipeline struct {
	File     string // source file path
	Commands []*Command
}

func (p *Pipeline) Span() source.Span {
	if p == nil || len(p.Commands) == 0 {
		return source.Span{}
	}
	span := p.Commands[0].Span()
	for _, cmd := range p.Commands[1:] {
		span = span.Until(cmd.Span())
	}
	return span
}
