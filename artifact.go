package markotravel

import (
	"context"
	"io"
)

// MapPage holds the values rendered into the static map artifact.
type MapPage struct {
	Title     string
	Countries []Country

	// SourceHash identifies the document the page was generated from.
	SourceHash string
}

// MapRenderer renders the static map artifact.
type MapRenderer interface {
	// Render writes a self-contained page for page to w.
	Render(w io.Writer, page *MapPage) error
}

// ArtifactWriter persists generated artifacts.
type ArtifactWriter interface {
	// WriteArtifact replaces the file at path with data.
	// Returns false when the file already held identical content.
	WriteArtifact(ctx context.Context, path string, data []byte) (bool, error)
}
