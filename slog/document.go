package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/markotravel"
)

var (
	_ markotravel.DocumentLoader = (*LoggingDocumentLoader)(nil)
	_ markotravel.DatasetParser  = (*LoggingDatasetParser)(nil)
)

// LoggingDocumentLoader wraps a DocumentLoader with logging.
type LoggingDocumentLoader struct {
	next   markotravel.DocumentLoader
	logger *slog.Logger
}

// NewLoggingDocumentLoader creates a new LoggingDocumentLoader.
func NewLoggingDocumentLoader(next markotravel.DocumentLoader, logger *slog.Logger) *LoggingDocumentLoader {
	return &LoggingDocumentLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the operation.
func (l *LoggingDocumentLoader) Load(path string) (doc *markotravel.Document, err error) {
	defer func(begin time.Time) {
		var size int
		var hash string
		if doc != nil {
			size = len(doc.Content)
			hash = doc.Hash
		}
		l.logger.Info("load document",
			"path", path,
			"bytes", size,
			"hash", hash,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(path)
}

// LoggingDatasetParser wraps a DatasetParser with logging.
type LoggingDatasetParser struct {
	next   markotravel.DatasetParser
	logger *slog.Logger
}

// NewLoggingDatasetParser creates a new LoggingDatasetParser.
func NewLoggingDatasetParser(next markotravel.DatasetParser, logger *slog.Logger) *LoggingDatasetParser {
	return &LoggingDatasetParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the record counts.
func (p *LoggingDatasetParser) Parse(doc *markotravel.Document) (ds *markotravel.Dataset, err error) {
	defer func(begin time.Time) {
		var path string
		if doc != nil {
			path = doc.Path
		}
		var places, sites int
		if ds != nil {
			places = len(ds.Places)
			sites = len(ds.Sites)
		}
		p.logger.Info("parse document",
			"path", path,
			"places", places,
			"sites", sites,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(doc)
}
