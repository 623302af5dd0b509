package token

import "github.com/funvibe/funsh/internal/source"

type Type string

const (
	ILLEGAL Type = "ILLEGAL"
	EOF     Type = "EOF"

	WORD   Type = "WORD"   // bare word: mv, a.txt, *.log
	STRING Type = "STRING" // quoted string, quotes stripped in Literal
	FLAG   Type = "FLAG"   // --name, Literal holds the name without dashes

	PIPE    Type = "PIPE"
	NEWLINE Type = "NEWLINE"
)

// Token is one lexed element of a command line. Lexeme is the raw text
// as written, Literal the decoded value (for STRING the unquoted text,
// for FLAG the name without the leading dashes). Span indexes the
// original input and doubles as the token's tag for error reporting.
type Token struct {
	Type    Type
	Lexeme  string
	Literal string
	Line    int
	Column  int
	Span    source.Span
}
