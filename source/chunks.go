package source

import "sort"

// DefaultChunkSize is the chunk size ChunksFromString uses when size <= 0.
const DefaultChunkSize = 4096

// Chunks is an immutable sequence of byte chunks addressed as one document,
// the leaf layout of a rope. Positions are resolved with a binary search over
// the chunk start offsets, so CharAt is O(log chunks) and safe for concurrent
// use.
type Chunks struct {
	chunks [][]byte
	starts []int // starts[i] is the document offset of chunks[i]
	length int
}

// NewChunks returns a document made of the given chunks. Empty chunks are
// dropped. The chunks are referenced, not copied, and must not be modified.
func NewChunks(chunks ...[]byte) *Chunks {
	c := &Chunks{}
	for _, chunk := range chunks {
		if len(chunk) == 0 {
			continue
		}
		c.chunks = append(c.chunks, chunk)
		c.starts = append(c.starts, c.length)
		c.length += len(chunk)
	}
	return c
}

// ChunksFromString splits s into chunks of at most size bytes.
func ChunksFromString(s string, size int) *Chunks {
	if size <= 0 {
		size = DefaultChunkSize
	}
	var chunks [][]byte
	for len(s) > 0 {
		n := min(size, len(s))
		chunks = append(chunks, []byte(s[:n]))
		s = s[n:]
	}
	return NewChunks(chunks...)
}

// Len returns the total number of bytes.
func (c *Chunks) Len() int {
	return c.length
}

// NumChunks returns the number of chunks.
func (c *Chunks) NumChunks() int {
	return len(c.chunks)
}

// CharAt returns the byte at document position pos.
func (c *Chunks) CharAt(pos int) byte {
	i := c.chunkIndex(pos)
	return c.chunks[i][pos-c.starts[i]]
}

// Slice returns a view of [start, end) when the range falls inside a single
// chunk.
func (c *Chunks) Slice(start, end int) ([]byte, bool) {
	if start < 0 || start > end || end > c.length {
		return nil, false
	}
	if start == end {
		return nil, true
	}
	i := c.chunkIndex(start)
	off := start - c.starts[i]
	if off+(end-start) > len(c.chunks[i]) {
		return nil, false
	}
	return c.chunks[i][off : off+(end-start)], true
}

// chunkIndex returns the index of the chunk holding pos.
func (c *Chunks) chunkIndex(pos int) int {
	return sort.Search(len(c.starts), func(i int) bool {
		return c.starts[i] > pos
	}) - 1
}
