// Package format provides file format detection for MindManager documents.
package format

import (
	"path/filepath"
	"strings"
)

// Format represents a supported document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// MMAP indicates a compressed MindManager document (a ZIP container
	// holding Document.xml).
	MMAP
	// XMMAP indicates a plain-XML MindManager document.
	XMMAP
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case MMAP:
		return "MMAP"
	case XMMAP:
		return "XMMAP"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case MMAP:
		return ".mmap"
	case XMMAP:
		return ".xmmap"
	default:
		return ""
	}
}

// Detect determines the document format from the filename extension.
// Detection is purely extension-based: a .mmap file that is not actually
// a ZIP container is reported by the loader, not here.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mmap":
		return MMAP
	case ".xmmap":
		return XMMAP
	default:
		return Unknown
	}
}
