package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/yuin/goldmark"

	mindmanager "github.com/reyanb/MindManager-to-Md"
)

// convertOptions holds the flag-controlled conversion settings.
type convertOptions struct {
	output    string
	stdout    bool
	html      bool
	tolerance float64
}

// outputPath derives the default destination for a conversion: the input
// path with its extension swapped for .md.
func outputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + ".md"
}

// htmlPath derives the preview destination next to a Markdown file.
func htmlPath(mdPath string) string {
	return strings.TrimSuffix(mdPath, filepath.Ext(mdPath)) + ".html"
}

// convertFile converts one document and persists (or prints) the result.
// The Markdown is written as a single full-content write only after the
// conversion has fully succeeded; a failed conversion writes nothing.
func convertFile(logger *log.Logger, path string, opts convertOptions) error {
	logger.Debug("converting", "file", path, "tolerance", opts.tolerance)

	md, err := mindmanager.Open(path).
		Tolerance(opts.tolerance).
		Markdown()
	if err != nil {
		return err
	}

	if opts.stdout {
		fmt.Println(md)
		return nil
	}

	dest := opts.output
	if dest == "" {
		dest = outputPath(path)
	}
	if err := os.WriteFile(dest, []byte(md), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	logger.Info("markdown file created", "file", dest)

	if opts.html {
		preview := htmlPath(dest)
		if err := writeHTMLPreview(md, preview); err != nil {
			return err
		}
		logger.Info("html preview created", "file", preview)
	}

	return nil
}

// writeHTMLPreview renders the produced Markdown to HTML and writes it.
func writeHTMLPreview(md, dest string) error {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return fmt.Errorf("rendering html preview: %w", err)
	}
	if err := os.WriteFile(dest, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	return nil
}
