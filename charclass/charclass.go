// Package charclass builds the 256-bit membership tables used for bracket
// expressions and escape classes such as \d, \s and \w.
//
// A Set is a plain value (four uint64 words) so compiled instructions can
// embed it directly instead of pointing at a shared table.
package charclass

import (
	"errors"
	"math/bits"
	"strconv"
	"strings"
)

// ErrInvalidRange is returned by AddRange when lo > hi.
var ErrInvalidRange = errors.New("invalid character class range")

// Set is a set of byte values.
type Set [4]uint64

// Add inserts c.
func (s *Set) Add(c byte) {
	s[c>>6] |= 1 << (c & 63)
}

// AddFold inserts c, and when fold is true also the other ASCII case of c.
func (s *Set) AddFold(c byte, fold bool) {
	s.Add(c)
	if fold {
		if o, ok := OtherCase(c); ok {
			s.Add(o)
		}
	}
}

// AddRange inserts every byte in [lo, hi], folding ASCII case when fold is
// true. It returns ErrInvalidRange if lo > hi.
func (s *Set) AddRange(lo, hi byte, fold bool) error {
	if lo > hi {
		return ErrInvalidRange
	}
	for c := int(lo); c <= int(hi); c++ {
		s.AddFold(byte(c), fold)
	}
	return nil
}

// AddFunc inserts every byte for which pred returns true.
func (s *Set) AddFunc(pred func(c byte) bool) {
	for c := 0; c < 256; c++ {
		if pred(byte(c)) {
			s.Add(byte(c))
		}
	}
}

// Remove deletes c.
func (s *Set) Remove(c byte) {
	s[c>>6] &^= 1 << (c & 63)
}

// Union adds every member of o.
func (s *Set) Union(o Set) {
	for i := range s {
		s[i] |= o[i]
	}
}

// Negate inverts the set.
func (s *Set) Negate() {
	for i := range s {
		s[i] = ^s[i]
	}
}

// Contains reports whether c is a member.
func (s *Set) Contains(c byte) bool {
	return s[c>>6]&(1<<(c&63)) != 0
}

// Len returns the number of members.
func (s *Set) Len() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsEmpty reports whether the set has no members.
func (s *Set) IsEmpty() bool {
	return s[0]|s[1]|s[2]|s[3] == 0
}

// IsFull reports whether every byte is a member.
func (s *Set) IsFull() bool {
	return s[0]&s[1]&s[2]&s[3] == ^uint64(0)
}

// Single returns the only member when the set has exactly one.
func (s *Set) Single() (byte, bool) {
	if s.Len() != 1 {
		return 0, false
	}
	for i, w := range s {
		if w != 0 {
			return byte(i*64 + bits.TrailingZeros64(w)), true
		}
	}
	return 0, false
}

// AppendMembers appends the members to dst in ascending order.
func (s *Set) AppendMembers(dst []byte) []byte {
	for i, w := range s {
		for w != 0 {
			dst = append(dst, byte(i*64+bits.TrailingZeros64(w)))
			w &= w - 1
		}
	}
	return dst
}

// String renders the set as a bracket expression, collapsing runs into
// ranges, e.g. [0-9A-Fa-f].
func (s *Set) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for c := 0; c < 256; c++ {
		if !s.Contains(byte(c)) {
			continue
		}
		hi := c
		for hi+1 < 256 && s.Contains(byte(hi+1)) {
			hi++
		}
		writeByte(&sb, byte(c))
		if hi > c {
			if hi > c+1 {
				sb.WriteByte('-')
			}
			writeByte(&sb, byte(hi))
		}
		c = hi
	}
	sb.WriteByte(']')
	return sb.String()
}

func writeByte(sb *strings.Builder, c byte) {
	switch {
	case c == '\\' || c == ']' || c == '-' || c == '^':
		sb.WriteByte('\\')
		sb.WriteByte(c)
	case c < 0x20 || c >= 0x7f:
		sb.WriteString(`\x`)
		if c < 0x10 {
			sb.WriteByte('0')
		}
		sb.WriteString(strconv.FormatUint(uint64(c), 16))
	default:
		sb.WriteByte(c)
	}
}

// OtherCase returns the opposite ASCII case of c. ok is false for bytes that
// are not ASCII letters.
func OtherCase(c byte) (byte, bool) {
	switch {
	case 'a' <= c && c <= 'z':
		return c - 'a' + 'A', true
	case 'A' <= c && c <= 'Z':
		return c - 'A' + 'a', true
	}
	return c, false
}

// ToLower folds an ASCII upper-case letter to lower case.
func ToLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
