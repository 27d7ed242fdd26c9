package backtrack

import "github.com/coregx/research/syntax"

// NotFound marks a tag that did not participate in the match.
const NotFound = -1

// Captures holds the tag table of a match. Tag 0 is the whole match,
// tags 1..syntax.MaxTag-1 are the capture groups in the order their opening
// parentheses appear.
type Captures struct {
	Start [syntax.MaxTag]int
	End   [syntax.MaxTag]int
}

// Reset marks every tag NotFound.
func (c *Captures) Reset() {
	for i := range c.Start {
		c.Start[i] = NotFound
		c.End[i] = NotFound
	}
}

// Matched reports whether tag has both ends set.
func (c *Captures) Matched(tag int) bool {
	if tag < 0 || tag >= syntax.MaxTag {
		return false
	}
	return c.Start[tag] != NotFound && c.End[tag] != NotFound
}

// Len returns the length of tag, or 0 if it is unset.
func (c *Captures) Len(tag int) int {
	if !c.Matched(tag) || c.End[tag] < c.Start[tag] {
		return 0
	}
	return c.End[tag] - c.Start[tag]
}
