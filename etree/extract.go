package etree

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/fwojciec/markotravel"
)

// Folder names used by the travel export.
const (
	PlaceFolder    = "GFSubject"
	HeritageFolder = "GFWhc"
)

// Ensure Parser implements markotravel.DatasetParser.
var _ markotravel.DatasetParser = (*Parser)(nil)

// Parser parses KML travel exports.
type Parser struct {
	opts Options
}

// NewParser creates a Parser that treats KMLRepeated elements as sequences.
func NewParser() *Parser {
	return &Parser{opts: Options{Repeated: KMLRepeated}}
}

// Parse parses doc and extracts its dataset.
func (p *Parser) Parse(doc *markotravel.Document) (*markotravel.Dataset, error) {
	if doc == nil {
		return nil, markotravel.Errorf(markotravel.EINVALID, "document required")
	}

	root, err := Parse(bytes.NewReader(doc.Content), doc.Path, p.opts)
	if err != nil {
		return nil, err
	}
	return Extract(root)
}

// Extract walks a parsed KML tree and returns its places and heritage
// sites in document order. Folders other than PlaceFolder and
// HeritageFolder are ignored.
// Returns ESTRUCTURE if the kml/Document/Folder anchor is missing.
func Extract(root *Node) (*markotravel.Dataset, error) {
	if root == nil || root.Name != "kml" {
		return nil, markotravel.Errorf(markotravel.ESTRUCTURE, "kml root element not found")
	}
	doc := root.Child("Document")
	if doc == nil {
		return nil, markotravel.Errorf(markotravel.ESTRUCTURE, "kml Document element not found")
	}
	folders := doc.Children("Folder")
	if len(folders) == 0 {
		return nil, markotravel.Errorf(markotravel.ESTRUCTURE, "kml Document has no Folder elements")
	}

	ds := &markotravel.Dataset{
		Places: []*markotravel.Place{},
		Sites:  []*markotravel.HeritageSite{},
	}
	for _, folder := range folders {
		name, _ := folder.ChildText("name")
		switch name {
		case PlaceFolder:
			for _, pm := range folder.Children("Placemark") {
				ds.Places = append(ds.Places, extractPlace(pm))
			}
		case HeritageFolder:
			for _, pm := range folder.Children("Placemark") {
				ds.Sites = append(ds.Sites, extractSite(pm))
			}
		}
	}

	return ds, nil
}

func extractPlace(pm *Node) *markotravel.Place {
	name, _ := pm.ChildText("name")
	description, _ := pm.ChildText("description")
	data := DecodeExtendedData(extendedData(pm))

	return &markotravel.Place{
		Name:        name,
		Description: description,
		Code:        data["code"],
		StatusID:    ParseStatusID(data["status_id"]),
		Color:       data["color"],
	}
}

// extractSite builds a heritage site. The placemark name is the site's
// identifier and the description carries its title.
func extractSite(pm *Node) *markotravel.HeritageSite {
	id, _ := pm.ChildText("name")
	title, _ := pm.ChildText("description")
	data := DecodeExtendedData(extendedData(pm))

	return &markotravel.HeritageSite{
		ID:      id,
		Name:    title,
		Visited: data["visited"] == "1",
	}
}

func extendedData(pm *Node) []*Node {
	return pm.Child("ExtendedData").Children("Data")
}

// DecodeExtendedData flattens KML <Data name="..."><value>...</value></Data>
// entries into a map. Entries without a name are skipped, a missing value
// decodes as the empty string and later duplicates win.
// Returns an empty map for nil input.
func DecodeExtendedData(entries []*Node) map[string]string {
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		key := e.Attrs["name"]
		if key == "" {
			continue
		}
		m[key], _ = e.ChildText("value")
	}
	return m
}

// ParseStatusID parses the leading base-10 integer of s, ignoring
// surrounding whitespace. Returns 0 when s holds no leading digits.
// Values beyond the int range are clamped.
func ParseStatusID(s string) int {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	// On overflow ParseInt returns the clamped value along with ErrRange.
	n, _ := strconv.ParseInt(s[:end], 10, strconv.IntSize)
	return int(n)
}
