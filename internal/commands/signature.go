package commands

// PositionalArg is one required positional parameter of a signature.
type PositionalArg struct {
	Name  string
	Shape SyntaxShape
}

// NamedArg is one optional --flag parameter of a signature.
type NamedArg struct {
	Name  string
	Shape SyntaxShape
}

// Signature declares, once per command kind, the ordered required
// positional parameters and the set of optional named parameters.
// Build it with the fluent constructor and treat it as immutable
// afterwards.
type Signature struct {
	Name       string
	Positional []PositionalArg
	Named      map[string]NamedArg
}

func Build(name string) *Signature {
	return &Signature{Name: name, Named: map[string]NamedArg{}}
}

// Required appends a required positional parameter. Order of calls is
// binding order.
func (s *Signature) Required(name string, shape SyntaxShape) *Signature {
	s.Positional = append(s.Positional, PositionalArg{Name: name, Shape: shape})
	return s
}

// NamedParam declares an optional named parameter.
func (s *Signature) NamedParam(name string, shape SyntaxShape) *Signature {
	s.Named[name] = NamedArg{Name: name, Shape: shape}
	return s
}
