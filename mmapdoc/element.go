package mmapdoc

import (
	"encoding/xml"
	"errors"
	"io"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Attr is a single element attribute, identified by local name.
type Attr struct {
	Name  string
	Value string
}

// Element is a node in a parsed markup tree. Names and attributes are
// stored by local name only; namespace prefixes and URIs are discarded at
// parse time so that lookups behave identically across the namespaced and
// namespace-free documents MindManager versions produce.
type Element struct {
	// Name is the element's local name.
	Name string

	// Attrs holds the element's attributes in document order.
	Attrs []Attr

	// Text is the character data between the start tag and the first
	// child element, unmodified.
	Text string

	// Children holds the direct child elements in document order.
	Children []*Element
}

// Attr returns the value of the first attribute with the given local name.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Find returns the first direct child with the given local name, or nil.
func (e *Element) Find(name string) *Element {
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// FindAll returns every direct child with the given local name, in
// document order.
func (e *Element) FindAll(name string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Descendants returns every descendant of e (excluding e itself) with the
// given local name, in document (preorder) order.
func (e *Element) Descendants(name string) []*Element {
	var out []*Element
	var walk func(el *Element)
	walk = func(el *Element) {
		for _, c := range el.Children {
			if c.Name == name {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(e)
	return out
}

// parseMarkup parses an XML document into an Element tree. The input is
// first passed through a BOM-aware transformer so UTF-8-with-BOM and UTF-16
// documents decode, and declared legacy charsets are handled by the
// decoder's charset reader.
func parseMarkup(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	dec.CharsetReader = charset.NewReaderLabel

	var root *Element
	var stack []*Element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: t.Name.Local}
			for _, a := range t.Attr {
				// Namespace declarations are parser plumbing, not data.
				if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
					continue
				}
				el.Attrs = append(el.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("multiple document elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case xml.CharData:
			if len(stack) > 0 {
				el := stack[len(stack)-1]
				if len(el.Children) == 0 {
					el.Text += string(t)
				}
			}
		}
	}

	if root == nil {
		return nil, errors.New("no document element")
	}
	return root, nil
}
