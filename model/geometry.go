package model

import "math"

// Point represents a 2D canvas position
type Point struct {
	X, Y float64
}

// IsFinite reports whether both coordinates are finite numbers.
// NaN and ±Inf fail the test.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}
