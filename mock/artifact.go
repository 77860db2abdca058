package mock

import (
	"context"
	"io"

	"github.com/fwojciec/markotravel"
)

var (
	_ markotravel.MapRenderer    = (*MapRenderer)(nil)
	_ markotravel.ArtifactWriter = (*ArtifactWriter)(nil)
)

// MapRenderer is a mock implementation of markotravel.MapRenderer.
type MapRenderer struct {
	RenderFn func(w io.Writer, page *markotravel.MapPage) error
}

func (r *MapRenderer) Render(w io.Writer, page *markotravel.MapPage) error {
	return r.RenderFn(w, page)
}

// ArtifactWriter is a mock implementation of markotravel.ArtifactWriter.
type ArtifactWriter struct {
	WriteArtifactFn func(ctx context.Context, path string, data []byte) (bool, error)
}

func (w *ArtifactWriter) WriteArtifact(ctx context.Context, path string, data []byte) (bool, error) {
	return w.WriteArtifactFn(ctx, path, data)
}
