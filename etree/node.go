// Package etree parses KML travel exports into markotravel datasets.
package etree

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/markotravel"
)

// Options configures Parse.
type Options struct {
	// Repeated reports whether children with the given element name always
	// form a sequence, even when a document holds a single instance.
	// If nil, only names that actually occur more than once are sequences.
	Repeated func(name string) bool
}

// KMLRepeated reports whether name is one of the KML elements expected to
// repeat in a travel export: groupings, their placemarks and the
// placemarks' extended data entries.
func KMLRepeated(name string) bool {
	switch name {
	case "Folder", "Placemark", "Data":
		return true
	default:
		return false
	}
}

// FieldKind tells whether a Field holds a single element or a sequence.
type FieldKind int

const (
	FieldSingle FieldKind = iota
	FieldSequence
)

func (k FieldKind) String() string {
	switch k {
	case FieldSingle:
		return "single"
	case FieldSequence:
		return "sequence"
	default:
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
}

// Field holds the children of a Node that share an element name.
type Field struct {
	Kind  FieldKind
	nodes []*Node
}

// Single returns the element of a FieldSingle field.
// Returns false for sequences.
func (f *Field) Single() (*Node, bool) {
	if f == nil || f.Kind != FieldSingle || len(f.nodes) == 0 {
		return nil, false
	}
	return f.nodes[0], true
}

// Sequence returns the elements of a FieldSequence field in document order.
// Returns nil for single fields.
func (f *Field) Sequence() []*Node {
	if f == nil || f.Kind != FieldSequence {
		return nil
	}
	return f.nodes
}

// Node is a parsed element.
type Node struct {
	Name  string
	Attrs map[string]string

	// Text is the element's leading character data with surrounding
	// whitespace removed. CDATA sections are included.
	Text string

	fields map[string]*Field
	names  []string
}

// Field returns the children named name, or nil if there are none.
func (n *Node) Field(name string) *Field {
	if n == nil {
		return nil
	}
	return n.fields[name]
}

// FieldNames returns the names of n's children in order of first appearance.
func (n *Node) FieldNames() []string {
	if n == nil {
		return nil
	}
	return n.names
}

// Child returns the first child named name, or nil.
func (n *Node) Child(name string) *Node {
	f := n.Field(name)
	if f == nil || len(f.nodes) == 0 {
		return nil
	}
	return f.nodes[0]
}

// Children returns every child named name in document order, regardless of
// the field kind.
func (n *Node) Children(name string) []*Node {
	f := n.Field(name)
	if f == nil {
		return nil
	}
	return f.nodes
}

// ChildText returns the text of the first child named name and whether
// such a child exists.
func (n *Node) ChildText(name string) (string, bool) {
	c := n.Child(name)
	if c == nil {
		return "", false
	}
	return c.Text, true
}

// Parse reads markup from r into a Node tree rooted at the document element.
// The source name is only used in error messages.
// Returns EPARSE if the markup is malformed or has no root element.
func Parse(r io.Reader, source string, opts Options) (*Node, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, markotravel.Errorf(markotravel.EPARSE, "parsing %s: %v", source, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, markotravel.Errorf(markotravel.EPARSE, "parsing %s: no root element", source)
	}

	return convert(root, opts), nil
}

// convert copies an etree element into a Node, grouping children by name.
func convert(el *etree.Element, opts Options) *Node {
	n := &Node{
		Name:  el.Tag,
		Attrs: make(map[string]string, len(el.Attr)),
		Text:  strings.TrimSpace(el.Text()),
	}
	for _, a := range el.Attr {
		n.Attrs[a.FullKey()] = a.Value
	}

	for _, child := range el.ChildElements() {
		f, ok := n.fields[child.Tag]
		if !ok {
			if n.fields == nil {
				n.fields = make(map[string]*Field)
			}
			f = &Field{Kind: FieldSingle}
			if opts.Repeated != nil && opts.Repeated(child.Tag) {
				f.Kind = FieldSequence
			}
			n.fields[child.Tag] = f
			n.names = append(n.names, child.Tag)
		}
		f.nodes = append(f.nodes, convert(child, opts))
		if len(f.nodes) > 1 {
			f.Kind = FieldSequence
		}
	}

	return n
}
