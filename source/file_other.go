//go:build !unix

package source

import "os"

// OpenFile reads the named file into memory. Memory mapping is only used on
// unix systems.
func OpenFile(name string) (*File, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return &File{name: name, data: data}, nil
}
