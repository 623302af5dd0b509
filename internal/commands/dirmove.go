package commands

import (
	"os"
	"path/filepath"

	"github.com/funvibe/funsh/internal/fsutil"
)

// dirMover relocates a whole directory tree. Both strategies satisfy
// the same contract: every descendant ends up under dst preserving
// relative structure, and src is removed only after that succeeded.
// newDirMover picks the strategy per platform (see the build-tagged
// files).
type dirMover interface {
	move(src, dst string) error
}

// renameMover relies on the filesystem's atomic directory rename.
// dst already exists as an empty directory when move is called.
type renameMover struct{}

func (renameMover) move(src, dst string) error {
	return os.Rename(src, dst)
}

// walkMover is the fallback for platforms without a usable atomic
// directory rename: record every descendant with its depth, recreate
// the structure under dst (directories before the files inside them),
// rename each regular file into place, then remove the emptied source
// tree. A failure mid-walk leaves already-moved files moved.
type walkMover struct{}

func (walkMover) move(src, dst string) error {
	entries, err := fsutil.WalkDecorate(src)
	if err != nil {
		return err
	}

	type relocation struct {
		src string
		dst string
	}
	plan := make([]relocation, 0, len(entries))
	for _, entry := range entries {
		canonical, err := fsutil.Canonicalize(entry.Path)
		if err != nil {
			return err
		}
		comps := fsutil.Components(canonical)
		take := entry.Depth + 1
		if take > len(comps) {
			take = len(comps)
		}
		tail := comps[len(comps)-take:]
		plan = append(plan, relocation{
			src: entry.Path,
			dst: filepath.Join(append([]string{dst}, tail...)...),
		})
	}

	// Entries are sorted by path, so a directory precedes everything
	// inside it and files always find their parent already created.
	for _, rel := range plan {
		if isDir(rel.src) {
			if !exists(rel.dst) {
				if err := os.MkdirAll(rel.dst, 0o755); err != nil {
					return err
				}
			}
			continue
		}
		if isRegular(rel.src) {
			if err := os.Rename(rel.src, rel.dst); err != nil {
				return err
			}
		}
	}

	return os.RemoveAll(src)
}
