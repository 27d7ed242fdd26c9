package source

import "errors"

// ErrClosed is returned by File operations after Close.
var ErrClosed = errors.New("source: file already closed")

// File is a read-only document backed by a file. On unix systems the file is
// memory mapped, so opening a large file does not read it into the heap; the
// kernel pages it in as the matcher touches positions.
type File struct {
	data  []byte
	name  string
	unmap func([]byte) error
}

// Name returns the path the file was opened with.
func (f *File) Name() string {
	return f.name
}

// CharAt returns the byte at offset pos.
func (f *File) CharAt(pos int) byte {
	return f.data[pos]
}

// Len returns the file size in bytes.
func (f *File) Len() int {
	return len(f.data)
}

// Slice returns a view of [start, end) of the mapping.
func (f *File) Slice(start, end int) ([]byte, bool) {
	if start < 0 || start > end || end > len(f.data) {
		return nil, false
	}
	return f.data[start:end], true
}

// Close releases the mapping. The File must not be used afterwards.
func (f *File) Close() error {
	if f.data == nil && f.unmap == nil {
		return ErrClosed
	}
	var err error
	if f.unmap != nil {
		err = f.unmap(f.data)
	}
	f.data = nil
	f.unmap = nil
	return err
}
