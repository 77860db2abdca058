package mock

import (
	"github.com/fwojciec/markotravel"
)

var (
	_ markotravel.DocumentLoader = (*DocumentLoader)(nil)
	_ markotravel.DatasetParser  = (*DatasetParser)(nil)
)

// DocumentLoader is a mock implementation of markotravel.DocumentLoader.
type DocumentLoader struct {
	LoadFn func(path string) (*markotravel.Document, error)
}

func (l *DocumentLoader) Load(path string) (*markotravel.Document, error) {
	return l.LoadFn(path)
}

// DatasetParser is a mock implementation of markotravel.DatasetParser.
type DatasetParser struct {
	ParseFn func(doc *markotravel.Document) (*markotravel.Dataset, error)
}

func (p *DatasetParser) Parse(doc *markotravel.Document) (*markotravel.Dataset, error) {
	return p.ParseFn(doc)
}
