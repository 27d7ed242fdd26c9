package prefilter

import (
	"bytes"

	"github.com/coregx/research/source"
)

// memchr finds a single byte. Contiguous views are searched with
// bytes.IndexByte.
type memchr struct {
	needle   byte
	complete bool
}

func newMemchr(needle byte, complete bool) *memchr {
	return &memchr{needle: needle, complete: complete}
}

func (p *memchr) Find(src source.Source, start, end int) int {
	if start >= end {
		return -1
	}
	if s, ok := src.(source.Slicer); ok {
		if b, ok := s.Slice(start, end); ok {
			if i := bytes.IndexByte(b, p.needle); i >= 0 {
				return start + i
			}
			return -1
		}
	}
	for pos := start; pos < end; pos++ {
		if src.CharAt(pos) == p.needle {
			return pos
		}
	}
	return -1
}

func (p *memchr) IsComplete() bool {
	return p.complete
}

func (p *memchr) LiteralLen() int {
	if p.complete {
		return 1
	}
	return 0
}

// memmem finds a single literal.
type memmem struct {
	needle   []byte
	complete bool
}

func newMemmem(needle []byte, complete bool) *memmem {
	return &memmem{needle: bytes.Clone(needle), complete: complete}
}

func (p *memmem) Find(src source.Source, start, end int) int {
	n := len(p.needle)
	if end-start < n {
		return -1
	}
	if s, ok := src.(source.Slicer); ok {
		if b, ok := s.Slice(start, end); ok {
			if i := bytes.Index(b, p.needle); i >= 0 {
				return start + i
			}
			return -1
		}
	}
	first := p.needle[0]
	for pos := start; pos+n <= end; pos++ {
		if src.CharAt(pos) == first && hasPrefixAt(src, pos, p.needle) {
			return pos
		}
	}
	return -1
}

func (p *memmem) IsComplete() bool {
	return p.complete
}

func (p *memmem) LiteralLen() int {
	if p.complete {
		return len(p.needle)
	}
	return 0
}

func hasPrefixAt(src source.Source, pos int, lit []byte) bool {
	for i, c := range lit {
		if src.CharAt(pos+i) != c {
			return false
		}
	}
	return true
}
