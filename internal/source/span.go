package source

import "fmt"

// Span is a half-open byte range [Start, End) into the original input.
// Tokens, AST nodes and diagnostics all carry spans so errors can be
// rendered against the source text the user actually typed.
type Span struct {
	Start int
	End   int
}

func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// At returns a zero-width span anchored at the given offset.
func At(offset int) Span {
	return Span{Start: offset, End: offset}
}

// Until merges two spans into the smallest span covering both.
// Merging with a zero-width span degenerates to a span that still
// covers the non-empty side, so callers may merge unconditionally.
func (s Span) Until(other Span) Span {
	merged := s
	if other.Start < merged.Start {
		merged.Start = other.Start
	}
	if other.End > merged.End {
		merged.End = other.End
	}
	return merged
}

// Slice returns the text the span covers. Out-of-range spans yield "".
func (s Span) Slice(input string) string {
	if s.Start < 0 || s.End > len(input) || s.Start > s.End {
		return ""
	}
	return input[s.Start:s.End]
}

func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("[%d..%d)", s.Start, s.End)
}

// Position is a 1-based line and column, derived from a span start
// offset when a diagnostic is rendered.
type Position struct {
	Line   int
	Column int
}

// PositionOf computes the line/column of an offset within input.
func PositionOf(input string, offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(input) {
		offset = len(input)
	}
	pos := Position{Line: 1, Column: 1}
	for _, ch := range input[:offset] {
		if ch == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}

// LineOf returns the full source line containing the offset, without
// its trailing newline.
func LineOf(input string, offset int) string {
	if offset < 0 {
		offset = 0
	}
	if offset > len(input) {
		offset = len(input)
	}
	start := offset
	for start > 0 && input[start-1] != '\n' {
		start--
	}
	end := offset
	for end < len(input) && input[end] != '\n' {
		end++
	}
	return input[start:end]
}
