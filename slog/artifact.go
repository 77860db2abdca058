package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/markotravel"
)

var _ markotravel.ArtifactWriter = (*LoggingArtifactWriter)(nil)

// LoggingArtifactWriter wraps an ArtifactWriter with logging.
type LoggingArtifactWriter struct {
	next   markotravel.ArtifactWriter
	logger *slog.Logger
}

// NewLoggingArtifactWriter creates a new LoggingArtifactWriter.
func NewLoggingArtifactWriter(next markotravel.ArtifactWriter, logger *slog.Logger) *LoggingArtifactWriter {
	return &LoggingArtifactWriter{next: next, logger: logger}
}

// WriteArtifact delegates to the wrapped writer and logs whether the file changed.
func (w *LoggingArtifactWriter) WriteArtifact(ctx context.Context, path string, data []byte) (changed bool, err error) {
	defer func(begin time.Time) {
		w.logger.Info("write artifact",
			"path", path,
			"bytes", len(data),
			"changed", changed,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteArtifact(ctx, path, data)
}
