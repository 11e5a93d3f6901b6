package mmapdoc

import (
	"strconv"
	"strings"

	"github.com/reyanb/MindManager-to-Md/model"
)

// childContainers lists the four child-holding relations in canonical
// order. Child enumeration always concatenates them in this order; within
// each container document order is preserved.
var childContainers = [...]string{
	"SubTopics",
	"LeftTopicGroup",
	"RightTopicGroup",
	"FloatingTopics",
}

// TopicText extracts readable text from a Topic element.
//
// The text lives in the topic's first Text container, under one of several
// encodings depending on the MindManager version that wrote the file. The
// fallback chain is strict and ordered; the first encoding that is present
// wins, so hybrid documents resolve the same way regardless of which
// encodings they carry:
//
//  1. the Text container's PlainText attribute, trimmed
//  2. a direct PlainText child element's own text, trimmed
//  3. paragraph-structured rich text: per Paragraph, the trimmed text of
//     every nested Text element joined with spaces (falling back to the
//     paragraph's own text), paragraphs joined with newlines
//  4. the Text container's own text, trimmed
//
// Returns "" when no encoding yields content. Note that a present but
// whitespace-only PlainText attribute still stops the chain: it resolves to
// "" rather than falling through to the next encoding.
func TopicText(topic *Element) string {
	text := topic.Find("Text")
	if text == nil {
		return ""
	}

	if v, ok := text.Attr("PlainText"); ok && v != "" {
		return strings.TrimSpace(v)
	}

	if pt := text.Find("PlainText"); pt != nil && pt.Text != "" {
		return strings.TrimSpace(pt.Text)
	}

	// Rich text is nested in paragraphs; concatenate fragments in order.
	var paragraphs []string
	for _, para := range text.FindAll("Paragraph") {
		var pieces []string
		// Some documents use nested Text nodes, others store text on the
		// paragraph itself.
		for _, inner := range para.Descendants("Text") {
			if s := strings.TrimSpace(inner.Text); s != "" {
				pieces = append(pieces, s)
			}
		}
		if len(pieces) == 0 {
			if s := strings.TrimSpace(para.Text); s != "" {
				pieces = append(pieces, s)
			}
		}
		if len(pieces) > 0 {
			paragraphs = append(paragraphs, strings.Join(pieces, " "))
		}
	}
	if len(paragraphs) > 0 {
		return strings.Join(paragraphs, "\n")
	}

	if s := strings.TrimSpace(text.Text); s != "" {
		return s
	}

	return ""
}

// ChildTopics returns a topic's immediate child Topic elements across all
// four container relations, in canonical order.
func ChildTopics(topic *Element) []*Element {
	var out []*Element
	for _, name := range childContainers {
		for _, container := range topic.FindAll(name) {
			out = append(out, container.FindAll("Topic")...)
		}
	}
	return out
}

// TopicPosition returns the topic's canvas offset, or nil when the topic
// has no Offset element or its coordinates are missing, non-numeric, or
// non-finite. A malformed position is never an error; the topic simply has
// no position.
func TopicPosition(topic *Element) *model.Point {
	off := topic.Find("Offset")
	if off == nil {
		return nil
	}

	cx, okx := off.Attr("CX")
	cy, oky := off.Attr("CY")
	if !okx || !oky {
		return nil
	}

	x, errx := strconv.ParseFloat(strings.TrimSpace(cx), 64)
	y, erry := strconv.ParseFloat(strings.TrimSpace(cy), 64)
	if errx != nil || erry != nil {
		return nil
	}

	p := model.Point{X: x, Y: y}
	if !p.IsFinite() {
		return nil
	}
	return &p
}

// BuildTopic converts a Topic element and everything below it into an owned
// [model.Topic] tree.
func BuildTopic(topic *Element) *model.Topic {
	t := &model.Topic{
		Text: TopicText(topic),
		Pos:  TopicPosition(topic),
	}
	for _, child := range ChildTopics(topic) {
		t.Children = append(t.Children, BuildTopic(child))
	}
	return t
}
