package commands

import (
	"fmt"
	"strconv"
	"strings"
)

// SyntaxShape is the semantic type a signature declares for a
// parameter. Binding checks a raw value against the shape before the
// command ever runs.
type SyntaxShape string

const (
	ShapeAny    SyntaxShape = "Any"
	ShapeString SyntaxShape = "String"
	ShapePath   SyntaxShape = "Path"
	ShapeInt    SyntaxShape = "Int"
)

// Check reports whether raw is acceptable for the shape.
func (s SyntaxShape) Check(raw string) error {
	switch s {
	case ShapeAny, ShapeString:
		return nil
	case ShapePath:
		if raw == "" {
			return fmt.Errorf("empty path")
		}
		if strings.ContainsRune(raw, 0) {
			return fmt.Errorf("path contains NUL")
		}
		return nil
	case ShapeInt:
		if _, err := strconv.Atoi(raw); err != nil {
			return fmt.Errorf("not an integer")
		}
		return nil
	default:
		return fmt.Errorf("unknown shape %q", string(s))
	}
}
