package prettyprinter

import (
	"bytes"
	"strings"

	"github.com/funvibe/funsh/internal/ast"
)

// --- Debug Printer (stable diagnostic rendering of parsed commands) ---

type Printer struct {
	buf bytes.Buffer
}

func NewPrinter() *Printer {
	return &Printer{}
}

// PrintExternalCommand renders the canonical diagnostic form of a
// shell-out invocation:
//
//	external command <name> <arg0> <arg1> ...
//
// Arguments appear in original order, raw values, single spaces, no
// re-escaping.
func (p *Printer) PrintExternalCommand(ec *ast.ExternalCommand) string {
	p.buf.Reset()
	p.buf.WriteString("external command ")
	p.buf.WriteString(ec.Name)
	for _, arg := range ec.Args.List {
		p.buf.WriteByte(' ')
		p.buf.WriteString(arg.Value)
	}
	return p.buf.String()
}

// PrintCommand renders a not-yet-classified invocation the way it was
// written, flags included.
func (p *Printer) PrintCommand(cmd *ast.Command) string {
	p.buf.Reset()
	p.buf.WriteString(cmd.Name)
	for _, arg := range cmd.Args {
		p.buf.WriteByte(' ')
		if arg.IsNamed() {
			p.buf.WriteString("--")
			p.buf.WriteString(arg.Name)
			if arg.Value == "" {
				continue
			}
			p.buf.WriteByte(' ')
		}
		p.buf.WriteString(arg.Value)
	}
	return p.buf.String()
}

// PrintPipeline joins command renderings with " | ".
func (p *Printer) PrintPipeline(pl *ast.Pipeline) string {
	parts := make([]string, 0, len(pl.Commands))
	for _, cmd := range pl.Commands {
		parts = append(parts, p.PrintCommand(cmd))
	}
	return strings.Join(parts, " | ")
}
