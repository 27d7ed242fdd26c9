package source

// Bytes adapts a byte slice to Source. It is the plain array layout.
type Bytes []byte

// CharAt returns b[pos].
func (b Bytes) CharAt(pos int) byte {
	return b[pos]
}

// Len returns len(b).
func (b Bytes) Len() int {
	return len(b)
}

// Slice returns b[start:end].
func (b Bytes) Slice(start, end int) ([]byte, bool) {
	if start < 0 || end > len(b) || start > end {
		return nil, false
	}
	return b[start:end], true
}

// String adapts a string to Source.
//
// String does not implement Slicer: exposing a string as []byte would require
// a copy or an unsafe conversion.
type String string

// CharAt returns s[pos].
func (s String) CharAt(pos int) byte {
	return s[pos]
}

// Len returns len(s).
func (s String) Len() int {
	return len(s)
}
