package valueobjects

import (
	"strings"
)

// ConstraintSet is a value object holding the raw multi-line constraint text.
// The text is the source of truth for user input; the derived line list is
// always recomputed from it and never mutated independently.
type ConstraintSet struct {
	text string
}

// NewConstraintSet creates a constraint set from raw text.
// Any string is accepted, including the empty string.
func NewConstraintSet(text string) ConstraintSet {
	return ConstraintSet{text: text}
}

// NewConstraintSetFromLines rebuilds a constraint set from an explicit line
// list, joining with newlines. Used when importing a constraint document.
func NewConstraintSetFromLines(lines []string) ConstraintSet {
	return ConstraintSet{text: strings.Join(lines, "\n")}
}

// Text returns the raw constraint text
func (c ConstraintSet) Text() string {
	return c.text
}

// Lines derives the ordered constraint list: the text split on line breaks,
// each line trimmed, empty lines discarded. Order is preserved and duplicates
// are kept.
func (c ConstraintSet) Lines() []string {
	lines := make([]string, 0)
	for _, raw := range strings.Split(c.text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// IsEmpty reports whether the derived constraint list is empty
func (c ConstraintSet) IsEmpty() bool {
	return len(c.Lines()) == 0
}

// Equals checks if two constraint sets hold the same text
func (c ConstraintSet) Equals(other ConstraintSet) bool {
	return c.text == other.text
}
