package research

import (
	"github.com/coregx/research/backtrack"
	"github.com/coregx/research/source"
	"github.com/coregx/research/syntax"
)

// Match is the result of a successful search: the tag table and the source it
// refers to. Tag 0 is the whole match and tags 1..NumTags()-1 are the capture
// groups. Accessors on unset or out of range tags return -1 or empty results.
type Match struct {
	caps    backtrack.Captures
	src     source.Source
	numTags int
}

func newMatch(src source.Source, caps *backtrack.Captures, numTags int) *Match {
	return &Match{caps: *caps, src: src, numTags: numTags}
}

// NumTags returns the number of tags of the pattern, including tag 0.
func (m *Match) NumTags() int {
	return m.numTags
}

// Start returns the start position of tag, or -1.
func (m *Match) Start(tag int) int {
	if tag < 0 || tag >= syntax.MaxTag {
		return backtrack.NotFound
	}
	return m.caps.Start[tag]
}

// End returns the end position of tag, or -1.
func (m *Match) End(tag int) int {
	if tag < 0 || tag >= syntax.MaxTag {
		return backtrack.NotFound
	}
	return m.caps.End[tag]
}

// Matched reports whether tag participated in the match.
func (m *Match) Matched(tag int) bool {
	return m.caps.Matched(tag)
}

// Len returns the length of tag, or 0 when it is unset.
func (m *Match) Len(tag int) int {
	return m.caps.Len(tag)
}

// Bytes returns a copy of the text of tag, or nil when it is unset.
func (m *Match) Bytes(tag int) []byte {
	if !m.caps.Matched(tag) {
		return nil
	}
	return source.Copy(nil, m.src, m.caps.Start[tag], m.caps.End[tag])
}

// String returns the text of tag, or "" when it is unset.
func (m *Match) String(tag int) string {
	return string(m.Bytes(tag))
}

// Captures returns a copy of the tag table.
func (m *Match) Captures() backtrack.Captures {
	return m.caps
}
