package mindmanager

import "github.com/reyanb/MindManager-to-Md/layout"

// ConvertOptions holds configuration for a conversion.
type ConvertOptions struct {
	// Clustering tolerance for the canvas-table grid, in canvas units.
	tolerance float64
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		tolerance: layout.DefaultTolerance,
	}
}

// clone creates a copy of ConvertOptions.
func (o ConvertOptions) clone() ConvertOptions {
	return ConvertOptions{
		tolerance: o.tolerance,
	}
}
