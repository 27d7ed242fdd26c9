package source

const minGap = 64

// GapBuffer is a byte buffer with a movable gap, the storage layout most
// editors use for the document text. Edits near the gap are cheap; the text
// is never contiguous across the gap, so searching it goes through CharAt.
//
// GapBuffer is not safe for concurrent mutation. Concurrent searches are fine
// as long as nothing edits the buffer meanwhile.
type GapBuffer struct {
	buf      []byte
	gapStart int
	gapEnd   int
}

// NewGapBuffer returns a gap buffer holding a copy of text with the gap at the
// end.
func NewGapBuffer(text []byte) *GapBuffer {
	buf := make([]byte, len(text)+minGap)
	copy(buf, text)
	return &GapBuffer{
		buf:      buf,
		gapStart: len(text),
		gapEnd:   len(buf),
	}
}

// Len returns the number of bytes of text, excluding the gap.
func (g *GapBuffer) Len() int {
	return len(g.buf) - g.gapLen()
}

// GapPosition returns the text position the gap currently sits at.
func (g *GapBuffer) GapPosition() int {
	return g.gapStart
}

// CharAt returns the byte at text position pos.
func (g *GapBuffer) CharAt(pos int) byte {
	if pos < g.gapStart {
		return g.buf[pos]
	}
	return g.buf[pos+g.gapLen()]
}

// Slice returns a view of [start, end) when that range lies entirely on one
// side of the gap.
func (g *GapBuffer) Slice(start, end int) ([]byte, bool) {
	if start < 0 || start > end || end > g.Len() {
		return nil, false
	}
	switch {
	case end <= g.gapStart:
		return g.buf[start:end], true
	case start >= g.gapStart:
		return g.buf[start+g.gapLen() : end+g.gapLen()], true
	}
	return nil, false
}

// Insert inserts text at position pos, moving the gap there first.
// It panics if pos is outside [0, Len()].
func (g *GapBuffer) Insert(pos int, text []byte) {
	if pos < 0 || pos > g.Len() {
		panic("source: GapBuffer.Insert position out of range")
	}
	if len(text) == 0 {
		return
	}
	g.moveGap(pos)
	if g.gapLen() < len(text) {
		g.grow(len(text))
	}
	copy(g.buf[g.gapStart:], text)
	g.gapStart += len(text)
}

// Delete removes n bytes starting at pos.
// It panics if the range is outside the text.
func (g *GapBuffer) Delete(pos, n int) {
	if pos < 0 || n < 0 || pos+n > g.Len() {
		panic("source: GapBuffer.Delete range out of range")
	}
	if n == 0 {
		return
	}
	g.moveGap(pos)
	g.gapEnd += n
}

// String returns the text as a string.
func (g *GapBuffer) String() string {
	b := make([]byte, 0, g.Len())
	b = append(b, g.buf[:g.gapStart]...)
	b = append(b, g.buf[g.gapEnd:]...)
	return string(b)
}

func (g *GapBuffer) gapLen() int {
	return g.gapEnd - g.gapStart
}

// moveGap relocates the gap so that it starts at text position pos.
func (g *GapBuffer) moveGap(pos int) {
	switch {
	case pos < g.gapStart:
		n := g.gapStart - pos
		copy(g.buf[g.gapEnd-n:g.gapEnd], g.buf[pos:g.gapStart])
		g.gapStart -= n
		g.gapEnd -= n
	case pos > g.gapStart:
		n := pos - g.gapStart
		copy(g.buf[g.gapStart:g.gapStart+n], g.buf[g.gapEnd:g.gapEnd+n])
		g.gapStart += n
		g.gapEnd += n
	}
}

// grow enlarges the gap so it can take at least n more bytes.
func (g *GapBuffer) grow(n int) {
	newGap := max(n+minGap, len(g.buf)/2)
	buf := make([]byte, len(g.buf)-g.gapLen()+newGap)
	copy(buf, g.buf[:g.gapStart])
	tail := len(g.buf) - g.gapEnd
	copy(buf[len(buf)-tail:], g.buf[g.gapEnd:])
	g.gapEnd = len(buf) - tail
	g.buf = buf
}
