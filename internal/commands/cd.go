package commands

import (
	"fmt"
	"path/filepath"

	"github.com/funvibe/funsh/internal/config"
	"github.com/funvibe/funsh/internal/diagnostics"
)

// Cd changes the shell working directory. The new directory must
// exist; the shell state is updated only on success.
type Cd struct{}

func (c *Cd) Name() string {
	return config.CdCmdName
}

func (c *Cd) Signature() *Signature {
	return Build(config.CdCmdName).
		Required("directory", ShapePath)
}

func (c *Cd) Run(ctx *RunContext, args *BoundArgs, input Value) ([]Value, *diagnostics.DiagnosticError) {
	dir := args.Positional["directory"]

	target := dir.Str
	if !filepath.IsAbs(target) {
		target = filepath.Join(ctx.Shell.Cwd(), target)
	}
	if !isDir(target) {
		return nil, diagnostics.NewSpanError(diagnostics.ErrR001, dir.Tag,
			fmt.Sprintf("cd: %q is not a directory", dir.Str))
	}
	ctx.Shell.SetCwd(target)
	return []Value{}, nil
}
