package markdown

import (
	"strings"

	"github.com/reyanb/MindManager-to-Md/model"
)

// Outline is the unconditional fallback strategy: a depth-first walk of
// the whole tree emitting one heading per headed topic, at a level equal
// to the topic's depth. Canvas positions are ignored.
type Outline struct{}

// Name returns the strategy's identifier ("outline").
func (Outline) Name() string {
	return "outline"
}

// Render walks the tree from the central topic at depth 1. The result is
// nil only when no topic in the tree has text.
func (Outline) Render(central *model.Topic, _ Config) []string {
	var lines []string
	walkOutline(central, 1, &lines)
	return lines
}

func walkOutline(t *model.Topic, depth int, lines *[]string) {
	if t.Text != "" {
		*lines = append(*lines, strings.Repeat("#", max(depth, 1))+" "+t.Text)
	}
	for _, child := range t.Children {
		walkOutline(child, depth+1, lines)
	}
}
