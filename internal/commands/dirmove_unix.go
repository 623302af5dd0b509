//go:build !windows
// +build !windows

package commands

func newDirMover() dirMover {
	return renameMover{}
}
