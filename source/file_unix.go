//go:build unix

package source

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// OpenFile memory maps the named file read-only.
//
// Empty files cannot be mapped; they are returned as an empty File.
func OpenFile(name string) (*File, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	st, err := fd.Stat()
	if err != nil {
		return nil, err
	}
	size := st.Size()
	if size == 0 {
		return &File{name: name, data: []byte{}}, nil
	}
	if int64(int(size)) != size {
		return nil, fmt.Errorf("source: %s: file too large to map (%d bytes)", name, size)
	}

	data, err := unix.Mmap(int(fd.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("source: mmap %s: %w", name, err)
	}
	// Searches walk the mapping front to back.
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)

	return &File{name: name, data: data, unmap: unix.Munmap}, nil
}
