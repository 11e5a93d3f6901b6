// Package markdown renders a topic tree as Markdown lines.
//
// # Strategies
//
// Rendering is performed by types implementing the [Strategy] interface.
// The package provides three, tried in strict priority order by [Render]:
//
//   - [CanvasTable] - detects a tabular grid among the central topic's
//     positioned children and renders a pipe-delimited table
//   - [SpatialBoard] - detects a free-form multi-section board and renders
//     one level-2 section per child
//   - [Outline] - unconditional depth-first fallback emitting one heading
//     per topic at its depth
//
// A strategy reports "not applicable" by returning no lines; the first
// strategy that produces output wins. The priority order is a hard
// contract: a document whose layout satisfies more than one strategy must
// always resolve via the highest-priority one.
//
// All strategies are pure functions of the topic tree: identical input
// yields byte-identical output across runs.
//
// # Header Detection
//
// [CanvasTable] tests only the first (topmost) row and first (leftmost)
// column for header status, never interior ones. Documents routinely place
// labels only along those edges, and downstream consumers depend on the
// exact cells this asymmetric rule selects, so it is preserved as-is.
//
// # Configuration
//
// Strategy behavior is controlled by [Config]:
//
//	cfg := markdown.DefaultConfig()
//	cfg.Tolerance = 40
//	lines := markdown.Render(central, cfg)
package markdown
