package markotravel

// Document represents the raw content of a travel-history export.
type Document struct {
	Path    string
	Content []byte

	// Hash is the hex xxhash64 digest of Content.
	Hash string
}

// DocumentLoader reads travel documents from storage.
type DocumentLoader interface {
	// Load returns the full content of the document at path.
	// Returns ENOTFOUND if the path does not exist and EREAD if it cannot be read.
	Load(path string) (*Document, error)
}

// DatasetParser extracts places and heritage sites from a document.
type DatasetParser interface {
	// Parse returns the dataset described by doc.
	// Returns EPARSE for malformed markup and ESTRUCTURE when the document
	// lacks its grouping container. Irregular records never fail the parse.
	Parse(doc *Document) (*Dataset, error)
}
