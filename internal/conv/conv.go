// Package conv holds the checked integer narrowing used when the compiler
// packs offsets and tag numbers into instruction cells.
//
// A failed conversion means the compiler let a value past its own capacity
// checks, which is a programming error, so the helpers panic instead of
// returning an error.
package conv

import "math"

// IntToUint16 converts n to uint16, panicking if it does not fit.
//
//go:inline
func IntToUint16(n int) uint16 {
	if n < 0 || n > math.MaxUint16 {
		panic("integer overflow: int value out of uint16 range")
	}
	return uint16(n)
}

// IntToUint8 converts n to uint8, panicking if it does not fit.
//
//go:inline
func IntToUint8(n int) uint8 {
	if n < 0 || n > math.MaxUint8 {
		panic("integer overflow: int value out of uint8 range")
	}
	return uint8(n)
}
