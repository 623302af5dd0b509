package commands

import (
	"bytes"
	"os/exec"
	"strings"

	"github.com/funvibe/funsh/internal/ast"
	"github.com/funvibe/funsh/internal/diagnostics"
	"github.com/funvibe/funsh/internal/shell"
	"github.com/funvibe/funsh/internal/source"
)

// Runner classifies parsed commands against the registry and drives
// execution: builtins run once per pipeline input item, externals are
// spawned with the raw argument strings.
type Runner struct {
	Registry *Registry
	Shell    *shell.State
	Aliases  map[string]string
}

func NewRunner(reg *Registry, sh *shell.State, aliases map[string]string) *Runner {
	return &Runner{Registry: reg, Shell: sh, Aliases: aliases}
}

// resolveName applies one level of alias expansion.
func (r *Runner) resolveName(name string) string {
	if target, ok := r.Aliases[name]; ok && target != "" {
		return target
	}
	return name
}

// Classify resolves a parsed command to a builtin, or builds the
// immutable ExternalCommand value for everything else. For an
// external with no arguments the argument-list span degenerates to a
// zero-width span at the end of the name.
func (r *Runner) Classify(cmd *ast.Command) (PerItemCommand, *ast.ExternalCommand) {
	name := r.resolveName(cmd.Name)
	if builtin := r.Registry.Lookup(name); builtin != nil {
		return builtin, nil
	}

	args := ast.ExternalArgs{Span: source.At(cmd.NameTok.Span.End)}
	for _, arg := range cmd.Args {
		if arg.IsNamed() {
			args.List = append(args.List, ast.ExternalArg{Value: arg.NameTok.Lexeme, Tag: arg.NameTok.Span})
			if arg.ValueTok.Type == "" {
				continue
			}
		}
		args.List = append(args.List, ast.ExternalArg{Value: arg.Value, Tag: arg.ValueTok.Span})
	}
	if len(args.List) > 0 {
		span := args.List[0].Tag
		for _, a := range args.List[1:] {
			span = span.Until(a.Tag)
		}
		args.Span = span
	}
	return nil, &ast.ExternalCommand{Name: name, NameTag: cmd.NameTok.Span, Args: args}
}

// RunPipeline executes the commands left to right, feeding each
// command's output values to the next.
func (r *Runner) RunPipeline(pl *ast.Pipeline) ([]Value, *diagnostics.DiagnosticError) {
	var values []Value
	for _, cmd := range pl.Commands {
		out, err := r.runCommand(cmd, values)
		if err != nil {
			return nil, err
		}
		values = out
	}
	return values, nil
}

func (r *Runner) runCommand(cmd *ast.Command, inputs []Value) ([]Value, *diagnostics.DiagnosticError) {
	builtin, external := r.Classify(cmd)
	if builtin != nil {
		return r.runBuiltin(builtin, NewCallInfo(cmd), inputs)
	}
	return r.runExternal(external, inputs)
}

// runBuiltin binds once, then executes the command once per input
// item. With no input the command runs exactly once with an empty
// item.
func (r *Runner) runBuiltin(cmd PerItemCommand, call *CallInfo, inputs []Value) ([]Value, *diagnostics.DiagnosticError) {
	bound, bindErr := Bind(cmd.Signature(), call)
	if bindErr != nil {
		return nil, bindErr
	}
	ctx := &RunContext{Name: call.NameSpan, Shell: r.Shell}

	if len(inputs) == 0 {
		return cmd.Run(ctx, bound, Value{})
	}
	var out []Value
	for _, input := range inputs {
		vals, err := cmd.Run(ctx, bound, input)
		if err != nil {
			return nil, err
		}
		out = append(out, vals...)
	}
	return out, nil
}

// runExternal spawns the process in the shell's working directory,
// writing input values to stdin one per line and reading stdout back
// as output values tagged with the invocation span.
func (r *Runner) runExternal(ec *ast.ExternalCommand, inputs []Value) ([]Value, *diagnostics.DiagnosticError) {
	argv := make([]string, 0, len(ec.Args.List))
	for _, arg := range ec.Args.List {
		argv = append(argv, arg.Value)
	}

	proc := exec.Command(ec.Name, argv...)
	proc.Dir = r.Shell.Cwd()
	if len(inputs) > 0 {
		var in bytes.Buffer
		for _, v := range inputs {
			in.WriteString(v.Str)
			in.WriteByte('\n')
		}
		proc.Stdin = &in
	}

	var stdout, stderr bytes.Buffer
	proc.Stdout = &stdout
	proc.Stderr = &stderr

	if err := proc.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, diagnostics.NewSpanError(diagnostics.ErrR002, ec.Span(), ec.Name+": "+msg)
	}

	var out []Value
	for _, line := range strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n") {
		if line == "" && len(out) == 0 && stdout.Len() == 0 {
			continue
		}
		out = append(out, Value{Str: line, Tag: ec.Span()})
	}
	return out, nil
}
