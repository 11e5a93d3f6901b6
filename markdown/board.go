package markdown

import (
	"sort"

	"github.com/reyanb/MindManager-to-Md/model"
)

// SpatialBoard renders a mind map whose central topic's children are
// arranged as free-form sections on the canvas, kanban style: one level-2
// section per child, ordered left to right then top to bottom.
type SpatialBoard struct{}

// Name returns the strategy's identifier ("spatial-board").
func (SpatialBoard) Name() string {
	return "spatial-board"
}

// Render renders the board interpretation, or returns nil when the
// children do not look like a board layout.
func (SpatialBoard) Render(central *model.Topic, _ Config) []string {
	if !looksLikeBoard(central.Children) {
		return nil
	}

	var lines []string
	if central.Text != "" {
		lines = append(lines, "# "+central.Text)
	}

	for _, t := range orderForBoard(central.Children) {
		if t.Text == "" {
			continue
		}
		lines = append(lines, "## "+t.Text)
		for _, child := range t.ChildTexts() {
			lines = append(lines, "- "+child)
		}
		lines = append(lines, "")
	}

	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// looksLikeBoard reports whether the children resemble a free-form board:
// at least four of them, every one named, names almost all distinct, at
// least half positioned, and at least half carrying child texts of their
// own.
func looksLikeBoard(topics []*model.Topic) bool {
	if len(topics) < 4 {
		return false
	}

	unique := make(map[string]struct{}, len(topics))
	for _, t := range topics {
		if t.Text == "" {
			return false
		}
		unique[t.Text] = struct{}{}
	}
	if len(unique) < max(3, len(topics)-1) {
		return false
	}

	positioned := 0
	withChildren := 0
	for _, t := range topics {
		if t.Pos != nil {
			positioned++
		}
		if len(t.ChildTexts()) > 0 {
			withChildren++
		}
	}
	if positioned < len(topics)/2 {
		return false
	}
	return withChildren >= len(topics)/2
}

// orderForBoard orders topics by ascending x, then y, then original
// document order; topics without a position follow all positioned ones, in
// document order among themselves.
func orderForBoard(topics []*model.Topic) []*model.Topic {
	var placed, unplaced []*model.Topic
	for _, t := range topics {
		if t.Pos == nil {
			unplaced = append(unplaced, t)
		} else {
			placed = append(placed, t)
		}
	}

	// SliceStable keeps document order as the final tie-break.
	sort.SliceStable(placed, func(a, b int) bool {
		if placed[a].Pos.X != placed[b].Pos.X {
			return placed[a].Pos.X < placed[b].Pos.X
		}
		return placed[a].Pos.Y < placed[b].Pos.Y
	})

	return append(placed, unplaced...)
}
