// Package fs provides filesystem adapters that prepare the output directory and write artifacts.
package fs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

// Guard implements ports.OutputGuard on the local filesystem.
//
// The checks are not atomic with respect to other processes: two builds
// targeting the same directory at the same time is the caller's problem.
type Guard struct{}

// NewGuard creates a new Guard.
func NewGuard() *Guard {
	return &Guard{}
}

// Prepare verifies that dir can receive output and creates it.
// With overwrite set, existing entries are kept and may be replaced file by file;
// nothing is removed.
func (g *Guard) Prepare(dir string, overwrite bool) error {
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Created below.
	case err != nil:
		return domain.NewIOError("stat", dir, err)
	case !info.IsDir():
		return zerr.With(zerr.Wrap(domain.ErrDestinationIsFile, fmt.Sprintf("cannot write to %q", dir)), "path", dir)
	case !overwrite:
		empty, err := isEmptyDir(dir)
		if err != nil {
			return domain.NewIOError("read", dir, err)
		}
		if !empty {
			return zerr.With(zerr.Wrap(domain.ErrDestinationNotEmpty, fmt.Sprintf("cannot write to %q", dir)), "path", dir)
		}
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return domain.NewIOError("mkdir", dir, err)
	}
	return nil
}

// isEmptyDir reads at most one entry, so large directories are not listed in full.
func isEmptyDir(dir string) (bool, error) {
	f, err := os.Open(dir) //nolint:gosec // dir is the user-selected output directory
	if err != nil {
		return false, err
	}
	defer func() {
		_ = f.Close()
	}()

	_, err = f.Readdirnames(1)
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	return false, err
}
