// Package fs provides file-based loading and writing for markotravel.
package fs

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/markotravel"
)

// Ensure Loader implements markotravel.DocumentLoader at compile time.
var _ markotravel.DocumentLoader = (*Loader)(nil)

// Loader reads travel documents from the local file system.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the whole file at path.
func (l *Loader) Load(path string) (*markotravel.Document, error) {
	if path == "" {
		return nil, markotravel.Errorf(markotravel.EINVALID, "document path required")
	}

	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, markotravel.Errorf(markotravel.ENOTFOUND, "document %q not found", path)
	} else if err != nil {
		return nil, markotravel.Errorf(markotravel.EREAD, "reading %q: %v", path, err)
	}

	return &markotravel.Document{
		Path:    path,
		Content: content,
		Hash:    Hash(content),
	}, nil
}

// Hash returns the hex xxhash64 digest of data.
func Hash(data []byte) string {
	return strconv.FormatUint(xxhash.Sum64(data), 16)
}
