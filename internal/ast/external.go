package ast

import "github.com/funvibe/funsh/internal/source"

// ExternalArg is one raw argument of a shell-out invocation. It
// behaves as a transparent view of its string value; the tag exists
// only for error attribution.
type ExternalArg struct {
	Value string
	Tag   source.Span
}

func (a ExternalArg) String() string {
	return a.Value
}

// ExternalArgs is the ordered argument list of an external command
// plus the span covering the whole list. The span is stored by the
// parser, never derived from the list, so it stays meaningful when
// the list is empty.
type ExternalArgs struct {
	List []ExternalArg
	Span source.Span
}

func (ea ExternalArgs) Len() int {
	return len(ea.List)
}

func (ea ExternalArgs) Equal(other ExternalArgs) bool {
	if ea.Span != other.Span || len(ea.List) != len(other.List) {
		return false
	}
	for i, arg := range ea.List {
		if arg != other.List[i] {
			return false
		}
	}
	return true
}

// ExternalCommand is the immutable representation of a non-builtin
// invocation. The surrounding runner spawns the process from Name and
// the raw argument strings; this node only preserves what was written
// and where.
type ExternalCommand struct {
	Name    string
	NameTag source.Span
	Args    ExternalArgs
}

// Span is the merge of the name tag and the stored argument-list
// span, including when the argument list is empty.
func (ec *ExternalCommand) Span() source.Span {
	return ec.NameTag.Until(ec.Args.Span)
}

func (ec *ExternalCommand) Equal(other *ExternalCommand) bool {
	if ec == nil || other == nil {
		return ec == other
	}
	return ec.Name == other.Name &&
		ec.NameTag == other.NameTag &&
		ec.Args.Equal(other.Args)
}
