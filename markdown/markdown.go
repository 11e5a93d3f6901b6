package markdown

import (
	"github.com/reyanb/MindManager-to-Md/layout"
	"github.com/reyanb/MindManager-to-Md/model"
)

// Config holds rendering configuration.
type Config struct {
	// Tolerance is the position-clustering tolerance, in canvas units,
	// used by the canvas-table strategy to bin topics into rows and
	// columns.
	Tolerance float64
}

// DefaultConfig returns the default rendering configuration.
func DefaultConfig() Config {
	return Config{
		Tolerance: layout.DefaultTolerance,
	}
}

// Strategy is a layout interpretation of a mind map. Render receives the
// central topic and returns the rendered lines, or nil when the strategy
// does not apply to the map's layout.
type Strategy interface {
	// Name returns the strategy's identifier.
	Name() string

	// Render renders the map, or returns nil when not applicable.
	Render(central *model.Topic, cfg Config) []string
}

// Strategies returns the renderers in priority order: canvas table first,
// then spatial board, then the outline fallback.
func Strategies() []Strategy {
	return []Strategy{
		CanvasTable{},
		SpatialBoard{},
		Outline{},
	}
}

// Render runs the strategies in priority order and returns the first
// non-empty result, or nil when even the outline fallback finds no
// renderable text.
func Render(central *model.Topic, cfg Config) []string {
	for _, s := range Strategies() {
		if lines := s.Render(central, cfg); len(lines) > 0 {
			return lines
		}
	}
	return nil
}
