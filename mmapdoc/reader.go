// Package mmapdoc parses MindManager mind-map documents.
//
// A .mmap file is a ZIP container holding the markup as its Document.xml
// entry; a .xmmap file is the same markup stored plain. Either way the
// package produces a generic [Element] tree matched by local name only, plus
// the topic-level accessors ([TopicText], [TopicPosition], [ChildTopics])
// that turn markup into [model.Topic] values.
package mmapdoc

import (
	"archive/zip"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/reyanb/MindManager-to-Md/format"
	"github.com/reyanb/MindManager-to-Md/model"
)

// documentEntry is the markup entry a .mmap container must hold.
const documentEntry = "Document.xml"

// Reader-related errors.
var (
	ErrUnsupportedFormat = errors.New("mmap: unsupported file type, use .mmap or .xmmap")
	ErrMissingDocument   = errors.New("mmap: Document.xml not found inside the .mmap container")
	ErrMalformedDocument = errors.New("mmap: failed to parse mind map XML")
	ErrNoTopics          = errors.New("mmap: no topics found in the mind map")
)

// Reader provides access to a parsed mind-map document.
type Reader struct {
	path   string
	format format.Format
	root   *Element
}

// Open opens a MindManager document from a path. The format is selected by
// extension: .mmap requires a ZIP container holding Document.xml, .xmmap is
// parsed as plain XML, and any other extension fails with
// [ErrUnsupportedFormat].
func Open(path string) (*Reader, error) {
	f := format.Detect(path)

	var root *Element
	var err error

	switch f {
	case format.MMAP:
		root, err = parseContainer(path)
	case format.XMMAP:
		root, err = parsePlain(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, err
	}

	return &Reader{path: path, format: f, root: root}, nil
}

// parseContainer opens a .mmap ZIP container and parses its Document.xml.
func parseContainer(path string) (*Element, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != documentEntry {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
		}
		defer rc.Close()

		root, err := parseMarkup(rc)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
		}
		return root, nil
	}

	return nil, ErrMissingDocument
}

// parsePlain parses a .xmmap file directly.
func parsePlain(path string) (*Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	root, err := parseMarkup(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	return root, nil
}

// Format returns the detected document format.
func (r *Reader) Format() format.Format {
	return r.format
}

// Root returns the document's root element.
func (r *Reader) Root() *Element {
	return r.root
}

// CentralTopic locates the map's central topic and returns it as an owned
// [model.Topic] tree. The central topic is the first Topic element nested
// directly in a OneTopic container, searched in document order; if no such
// container exists the first Topic element anywhere in the tree is used.
// The document element itself is never a candidate. Returns [ErrNoTopics]
// when the document contains no topic at all.
func (r *Reader) CentralTopic() (*model.Topic, error) {
	el := r.centralTopicElement()
	if el == nil {
		return nil, ErrNoTopics
	}
	return BuildTopic(el), nil
}

func (r *Reader) centralTopicElement() *Element {
	for _, one := range r.root.Descendants("OneTopic") {
		if t := one.Find("Topic"); t != nil {
			return t
		}
	}
	if topics := r.root.Descendants("Topic"); len(topics) > 0 {
		return topics[0]
	}
	return nil
}
