// Package mindmanager provides a fluent API for converting MindManager
// mind-map documents (.mmap and .xmmap) to Markdown.
//
// Basic usage:
//
//	md, err := mindmanager.Convert("plan.mmap")
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	lines, err := mindmanager.Open("plan.mmap").
//	    Tolerance(40).
//	    Lines()
//
// The conversion picks a rendering strategy from the document's canvas
// layout: a tabular grid of topics becomes a pipe table, a free-form board
// becomes level-2 sections, and anything else falls back to a depth-first
// outline. See the markdown package for the strategy details.
package mindmanager

import (
	"errors"
)

// ErrEmptyDocument is returned when a document parses and contains topics,
// but no strategy produces any renderable text.
var ErrEmptyDocument = errors.New("mindmanager: no topic text found in the mind map")

// Open prepares a MindManager document for conversion and returns a
// Converter for fluent configuration. The file is not read until a
// terminal operation such as Lines or Markdown runs.
//
// Example:
//
//	lines, err := mindmanager.Open("plan.mmap").Lines()
func Open(filename string) *Converter {
	return &Converter{
		filename: filename,
		options:  defaultOptions(),
	}
}

// Convert is a convenience wrapper: it converts the document at path and
// returns the Markdown text, lines joined with newlines.
func Convert(path string) (string, error) {
	return Open(path).Markdown()
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	md := mindmanager.Must(mindmanager.Convert("plan.mmap"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
