package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/markotravel"
)

// Ensure Writer implements markotravel.ArtifactWriter at compile time.
var _ markotravel.ArtifactWriter = (*Writer)(nil)

// Writer writes artifacts atomically. Data is written to a temporary file
// next to the target and renamed over it, so readers never observe a
// partially written artifact.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteArtifact replaces the file at path with data, creating parent
// directories as needed. The write is skipped when the existing file
// already has the same content.
func (w *Writer) WriteArtifact(ctx context.Context, path string, data []byte) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if path == "" {
		return false, markotravel.Errorf(markotravel.EINVALID, "artifact path required")
	}

	existing, err := os.ReadFile(path)
	if err == nil && xxhash.Sum64(existing) == xxhash.Sum64(data) {
		return false, nil
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return false, err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return false, err
	}
	if err := tmp.Close(); err != nil {
		return false, err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return false, err
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return false, err
	}
	return true, nil
}
