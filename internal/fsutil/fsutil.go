// Package fsutil provides file system utility functions.
package fsutil

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Entry is one recorded descendant of a walked directory. Depth is
// relative to the walk root: direct children are at depth 0.
type Entry struct {
	Path  string
	Depth int
}

// WalkDecorate recursively lists every descendant of root (the root
// itself is not recorded) together with its depth, sorted by path so
// a directory always precedes the entries inside it.
func WalkDecorate(root string) ([]Entry, error) {
	var entries []Entry
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		depth := strings.Count(rel, string(filepath.Separator))
		entries = append(entries, Entry{Path: path, Depth: depth})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries, nil
}

// Canonicalize resolves a path to an absolute, symlink-free form.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// Components splits a path into its elements, dropping the root
// separator and "." produced by splitting.
func Components(path string) []string {
	clean := filepath.Clean(path)
	parts := strings.Split(clean, string(filepath.Separator))
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" || part == "." {
			continue
		}
		out = append(out, part)
	}
	return out
}
