package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/kiln/internal/core/domain"
)

// Writer implements ports.ArtifactWriter by replacing files in place.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write truncates or creates the file at path and writes body in full.
// Each call stands alone; a failure leaves earlier artifacts on disk.
func (w *Writer) Write(path string, body []byte) error {
	if err := w.MakeDir(filepath.Dir(path)); err != nil {
		return err
	}

	//nolint:gosec // path is built from the output directory and contract names
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return domain.NewIOError("open", path, err)
	}

	if _, err := f.Write(body); err != nil {
		_ = f.Close()
		return domain.NewIOError("write", path, err)
	}

	if err := f.Close(); err != nil {
		return domain.NewIOError("close", path, err)
	}
	return nil
}

// MakeDir creates dir and any missing ancestors.
func (w *Writer) MakeDir(dir string) error {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return domain.NewIOError("mkdir", dir, err)
	}
	return nil
}
