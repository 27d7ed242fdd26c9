package source

// Source provides random access to the bytes of a document by absolute
// position.
//
// CharAt does not enforce bounds. The engine only calls it for positions
// inside the caller supplied [start, end) window, plus the single neighbour at
// start-1 that anchors and word-boundary tests look at. The source must not
// change while a search is running.
type Source interface {
	CharAt(pos int) byte
}

// Classifier decides which bytes count as word characters for \<, \> and \w.
type Classifier interface {
	IsWord(c byte) bool
}

// Slicer is implemented by sources that can expose part of their storage as a
// contiguous slice without copying.
//
// Slice returns ok=false when [start, end) is not stored contiguously (for
// example when it straddles the gap of a GapBuffer). The returned slice must
// not be modified and is only valid until the source is next mutated.
type Slicer interface {
	Slice(start, end int) (b []byte, ok bool)
}

// Lengther is implemented by sources that know their total length.
type Lengther interface {
	Len() int
}

// Len returns the length of src if it implements Lengther, and -1 otherwise.
func Len(src Source) int {
	if l, ok := src.(Lengther); ok {
		return l.Len()
	}
	return -1
}

// Copy appends the bytes of src in [start, end) to dst and returns the
// extended slice. Contiguous Slicer views are copied in one step.
func Copy(dst []byte, src Source, start, end int) []byte {
	if start >= end {
		return dst
	}
	if s, ok := src.(Slicer); ok {
		if b, ok := s.Slice(start, end); ok {
			return append(dst, b...)
		}
	}
	for pos := start; pos < end; pos++ {
		dst = append(dst, src.CharAt(pos))
	}
	return dst
}
