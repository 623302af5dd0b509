// Package shell holds the mutable shell state commands receive
// through their execution context. Commands never read ambient
// process state (os.Getwd) directly; the working directory flows
// through here so execution stays reproducible under test.
package shell

import (
	"fmt"
	"os"
	"path/filepath"
)

type State struct {
	cwd string
}

// New creates shell state rooted at the given working directory.
func New(cwd string) *State {
	return &State{cwd: cwd}
}

// NewFromProcess seeds the state from the process working directory
// once, at startup. This is the only place that reads it.
func NewFromProcess() (*State, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("shell: cannot determine working directory: %w", err)
	}
	return New(cwd), nil
}

func (s *State) Cwd() string {
	return s.cwd
}

// SetCwd replaces the working directory. The caller validates the
// path; relative paths are resolved against the current value.
func (s *State) SetCwd(dir string) {
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(s.cwd, dir)
	}
	s.cwd = filepath.Clean(dir)
}
