package mindmanager

import (
	"strings"

	"github.com/reyanb/MindManager-to-Md/markdown"
	"github.com/reyanb/MindManager-to-Md/mmapdoc"
)

// Converter provides a fluent interface for converting a MindManager
// document to Markdown. Each configuration method returns a new Converter
// instance, making chains safe for concurrent use. A conversion is fully
// synchronous and holds no state across calls: each terminal operation
// loads the document, builds its own topic tree, and discards both.
type Converter struct {
	// Source
	filename string

	// Configuration
	options ConvertOptions
}

// clone creates a copy of the Converter with a copy of its options.
// This ensures immutability - each chain method returns a new instance.
func (c *Converter) clone() *Converter {
	return &Converter{
		filename: c.filename,
		options:  c.options.clone(),
	}
}

// Tolerance sets the position-clustering tolerance, in canvas units, used
// when binning topics into table rows and columns.
func (c *Converter) Tolerance(v float64) *Converter {
	nc := c.clone()
	nc.options.tolerance = v
	return nc
}

// Lines converts the document and returns the Markdown line sequence.
//
// The pipeline is: load the document, locate the central topic, then try
// the rendering strategies in priority order (canvas table, spatial board,
// outline) and keep the first non-empty result. A strategy declining to
// apply is normal control flow; only the failures in the mmapdoc error
// taxonomy, plus [ErrEmptyDocument] when no strategy produces a line, are
// errors. No partial output is ever returned alongside an error.
func (c *Converter) Lines() ([]string, error) {
	r, err := mmapdoc.Open(c.filename)
	if err != nil {
		return nil, err
	}

	central, err := r.CentralTopic()
	if err != nil {
		return nil, err
	}

	cfg := markdown.DefaultConfig()
	cfg.Tolerance = c.options.tolerance

	lines := markdown.Render(central, cfg)
	if len(lines) == 0 {
		return nil, ErrEmptyDocument
	}
	return lines, nil
}

// Markdown converts the document and returns the Markdown text: the line
// sequence joined with newlines, without a trailing newline.
func (c *Converter) Markdown() (string, error) {
	lines, err := c.Lines()
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}
