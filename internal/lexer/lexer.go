package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/funvibe/funsh/internal/source"
	"github.com/funvibe/funsh/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
		l.ch = r
		l.position = l.readPosition
		l.readPosition += w
		l.column++
		return
	}

	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

// NextToken scans the next shell token: bare words, quoted strings,
// --flags, pipes and newlines. Every token carries its span into the
// original input.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	switch l.ch {
	case 0:
		tok := token.Token{Type: token.EOF, Line: l.line, Column: l.column, Span: source.At(len(l.input))}
		return tok
	case '\n':
		tok := token.Token{
			Type: token.NEWLINE, Lexeme: "\n", Literal: "\n",
			Line: l.line, Column: l.column,
			Span: source.NewSpan(l.position, l.position+1),
		}
		l.readChar()
		return tok
	case '|':
		tok := token.Token{
			Type: token.PIPE, Lexeme: "|", Literal: "|",
			Line: l.line, Column: l.column,
			Span: source.NewSpan(l.position, l.position+1),
		}
		l.readChar()
		return tok
	case '"', '\'':
		return l.readString(l.ch)
	case '-':
		if l.peekChar() == '-' {
			return l.readFlag()
		}
		return l.readWord()
	default:
		return l.readWord()
	}
}

// Tokens scans the whole input. The EOF token is not included.
func (l *Lexer) Tokens() []token.Token {
	var toks []token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

func isWordBreak(ch rune) bool {
	return ch == 0 || ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' ||
		ch == '|' || ch == '"' || ch == '\''
}

func (l *Lexer) readWord() token.Token {
	start := l.position
	line, col := l.line, l.column
	for !isWordBreak(l.ch) {
		l.readChar()
	}
	lexeme := l.input[start:l.position]
	return token.Token{
		Type: token.WORD, Lexeme: lexeme, Literal: lexeme,
		Line: line, Column: col,
		Span: source.NewSpan(start, l.position),
	}
}

func (l *Lexer) readFlag() token.Token {
	start := l.position
	line, col := l.line, l.column
	l.readChar() // first '-'
	l.readChar() // second '-'
	for !isWordBreak(l.ch) {
		l.readChar()
	}
	lexeme := l.input[start:l.position]
	return token.Token{
		Type:   token.FLAG,
		Lexeme: lexeme, Literal: strings.TrimPrefix(lexeme, "--"),
		Line: line, Column: col,
		Span: source.NewSpan(start, l.position),
	}
}

// readString scans a quoted string. Supports \" \' \\ \n \t escapes
// inside double quotes; single quotes are fully literal. An
// unterminated string yields an ILLEGAL token spanning to the end of
// the line.
func (l *Lexer) readString(quote rune) token.Token {
	start := l.position
	line, col := l.line, l.column
	l.readChar() // opening quote

	var sb strings.Builder
	for l.ch != quote {
		if l.ch == 0 || l.ch == '\n' {
			lexeme := l.input[start:l.position]
			return token.Token{
				Type:   token.ILLEGAL,
				Lexeme: lexeme, Literal: lexeme,
				Line: line, Column: col,
				Span: source.NewSpan(start, l.position),
			}
		}
		if quote == '"' && l.ch == '\\' {
			switch l.peekChar() {
			case 'n':
				sb.WriteByte('\n')
				l.readChar()
			case 't':
				sb.WriteByte('\t')
				l.readChar()
			case '"', '\'', '\\':
				sb.WriteRune(l.peekChar())
				l.readChar()
			default:
				sb.WriteRune(l.ch)
			}
		} else {
			sb.WriteRune(l.ch)
		}
		l.readChar()
	}
	l.readChar() // closing quote
	return token.Token{
		Type:   token.STRING,
		Lexeme: l.input[start:l.position], Literal: sb.String(),
		Line: line, Column: col,
		Span: source.NewSpan(start, l.position),
	}
}
