package commands

import "github.com/funvibe/funsh/internal/source"

// Value is one datum flowing through a pipeline: its raw text plus
// the span of the source text it came from (zero for values produced
// at runtime rather than written by the user).
type Value struct {
	Str string
	Tag source.Span
}

func NewValue(str string, tag source.Span) Value {
	return Value{Str: str, Tag: tag}
}

func (v Value) String() string {
	return v.Str
}
