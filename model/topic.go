package model

// Topic represents a node in the mind map's hierarchy.
type Topic struct {
	// Text is the topic's readable text, possibly multi-line.
	// An empty string means the topic has no extractable text.
	Text string

	// Pos is the topic's canvas position, or nil when the topic has none.
	// A non-nil position is always finite.
	Pos *Point

	// Children holds the direct child topics in canonical order.
	Children []*Topic
}

// HasText reports whether the topic carries any extractable text.
func (t *Topic) HasText() bool {
	return t.Text != ""
}

// ChildTexts returns the non-empty texts of the topic's direct children,
// in canonical order.
func (t *Topic) ChildTexts() []string {
	var texts []string
	for _, c := range t.Children {
		if c.Text != "" {
			texts = append(texts, c.Text)
		}
	}
	return texts
}
