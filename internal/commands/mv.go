package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/funvibe/funsh/internal/config"
	"github.com/funvibe/funsh/internal/diagnostics"
	"github.com/funvibe/funsh/internal/fsutil"
)

// Move implements mv: relocate the entries a source pattern matches
// to a destination path. The operation is deliberately not
// transactional: in the multi-source branch the first failing rename
// aborts the batch with earlier moves kept, and the directory walk
// fallback can likewise stop mid-way. Matching the original behavior,
// both are accepted limitations rather than bugs.
type Move struct{}

func (m *Move) Name() string {
	return config.MoveCmdName
}

// Signature declares source and destination paths plus the legacy
// --file parameter. The engine never reads --file; it stays declared
// because removing it would change the accepted surface.
func (m *Move) Signature() *Signature {
	return Build(config.MoveCmdName).
		Required("source", ShapePath).
		Required("destination", ShapePath).
		NamedParam("file", ShapeAny)
}

// MoveArgs is the typed argument pair mv receives after binding: a
// source pattern and a destination path, each with its operand tag.
type MoveArgs struct {
	Src Value
	Dst Value
}

func (m *Move) Run(ctx *RunContext, args *BoundArgs, input Value) ([]Value, *diagnostics.DiagnosticError) {
	decoded := MoveArgs{
		Src: args.Positional["source"],
		Dst: args.Positional["destination"],
	}
	if err := move(ctx, decoded.Src, decoded.Dst); err != nil {
		return nil, err
	}
	return []Value{}, nil
}

// renameErr builds the shared rename-failure error. Label and message
// are the same text; the %q duplication of the original wording is
// preserved verbatim.
func renameErr(ctx *RunContext, entryName, destName string, cause error) *diagnostics.DiagnosticError {
	return diagnostics.NewSpanError(diagnostics.ErrM004, ctx.Name,
		fmt.Sprintf("Rename %q to %q aborted. %s", entryName, destName, cause.Error()))
}

// entryFileName returns the final path component, reporting false for
// paths that have none (root, "." and "..").
func entryFileName(path string) (string, bool) {
	base := filepath.Base(path)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return "", false
	}
	return base, true
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// move is the engine: expand the source pattern, normalize the
// destination, then branch on how many entries matched.
func move(ctx *RunContext, src, dst Value) *diagnostics.DiagnosticError {
	pattern := src.Str
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(ctx.Shell.Cwd(), pattern)
	}
	sources, globErr := doublestar.FilepathGlob(pattern)
	if globErr != nil {
		return diagnostics.NewSpanError(diagnostics.ErrM001, src.Tag, "Invalid pattern.")
	}

	destination := dst.Str
	if destination == "." {
		destination = ctx.Shell.Cwd()
	} else if !filepath.IsAbs(destination) {
		destination = filepath.Join(ctx.Shell.Cwd(), destination)
	}

	destinationFileName, ok := entryFileName(destination)
	if !ok {
		return diagnostics.NewSpanError(diagnostics.ErrM002, dst.Tag,
			"Rename aborted. Not a valid destination")
	}

	if len(sources) == 1 {
		return moveSingle(ctx, sources[0], destination, destinationFileName)
	}
	return moveMulti(ctx, src, dst, sources, destination, destinationFileName)
}

// moveSingle relocates one matched entry. Moving into an existing
// directory keeps the entry's own file name; a directory entry goes
// through the platform dirMover.
func moveSingle(ctx *RunContext, entry, destination, destinationFileName string) *diagnostics.DiagnosticError {
	entryName, ok := entryFileName(entry)
	if !ok {
		return diagnostics.NewSpanError(diagnostics.ErrM003, ctx.Name,
			"Rename aborted. Not a valid entry name")
	}

	if exists(destination) && isDir(destination) {
		canonical, err := fsutil.Canonicalize(destination)
		if err != nil {
			return renameErr(ctx, entryName, destinationFileName, err)
		}
		destination = filepath.Join(canonical, entryName)
	}

	if isRegular(entry) {
		if err := os.Rename(entry, destination); err != nil {
			return renameErr(ctx, entryName, destinationFileName, err)
		}
	}

	if isDir(entry) {
		if err := os.MkdirAll(destination, 0o755); err != nil {
			return renameErr(ctx, entryName, destinationFileName, err)
		}
		if err := newDirMover().move(entry, destination); err != nil {
			return renameErr(ctx, entryName, destinationFileName, err)
		}
	}

	return nil
}

// moveMulti relocates every matched file into an existing destination
// directory. Directories in the match set abort before anything
// moves; a failing rename aborts the rest of the batch with earlier
// moves kept.
func moveMulti(ctx *RunContext, src, dst Value, sources []string, destination, destinationFileName string) *diagnostics.DiagnosticError {
	if !exists(destination) {
		return diagnostics.NewSpanError(diagnostics.ErrM005, dst.Tag,
			fmt.Sprintf("Rename aborted. (Does %q exist?)", destinationFileName))
	}

	for _, entry := range sources {
		if !isRegular(entry) {
			return diagnostics.NewSpanError(diagnostics.ErrM006, src.Tag,
				"Rename aborted (directories found). Renaming in patterns not supported yet (try moving the directory directly)")
		}
	}

	for _, entry := range sources {
		entryName, ok := entryFileName(entry)
		if !ok {
			return diagnostics.NewSpanError(diagnostics.ErrM003, ctx.Name,
				"Rename aborted. Not a valid entry name")
		}
		to := filepath.Join(destination, entryName)
		if err := os.Rename(entry, to); err != nil {
			return renameErr(ctx, entryName, destinationFileName, err)
		}
	}

	return nil
}
