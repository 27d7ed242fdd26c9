package charclass

import (
	"errors"
	"testing"
)

type asciiWords struct{}

func (asciiWords) IsWord(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

func TestAddRangeFold(t *testing.T) {
	var s Set
	if err := s.AddRange('a', 'z', true); err != nil {
		t.Fatal(err)
	}
	for _, c := range []byte("aAmMzZ") {
		if !s.Contains(c) {
			t.Errorf("[a-z] folded does not contain %q", c)
		}
	}
	if s.Contains('0') || s.Len() != 52 {
		t.Errorf("unexpected members: %s (len %d)", s.String(), s.Len())
	}

	var cs Set
	_ = cs.AddRange('a', 'z', false)
	if cs.Contains('A') {
		t.Error("case-sensitive [a-z] contains 'A'")
	}
}

func TestAddRangeBackwards(t *testing.T) {
	var s Set
	if err := s.AddRange('z', 'a', false); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("AddRange(z, a) = %v, want ErrInvalidRange", err)
	}
	if !s.IsEmpty() {
		t.Error("failed AddRange modified the set")
	}
}

func TestNegate(t *testing.T) {
	s := Digit()
	s.Negate()
	if s.Contains('5') || !s.Contains('a') || !s.Contains(0) || !s.Contains(0xff) {
		t.Errorf("negated digits wrong: %s", s.String())
	}
	if s.Len() != 246 {
		t.Errorf("Len() = %d, want 246", s.Len())
	}
	var all Set
	all.Negate()
	if !all.IsFull() {
		t.Error("negated empty set is not full")
	}
}

func TestShorthand(t *testing.T) {
	tests := []struct {
		esc  byte
		in   string
		out  string
		size int
	}{
		{'d', "0459", "a \n", 10},
		{'D', "a \n", "0459", 246},
		{'s', " \t\n\r\f\v", "a0_", 6},
		{'S', "a0_", " \t", 250},
		{'w', "aZ0_", " -.", 63},
		{'W', " -.", "aZ0_", 193},
	}
	for _, tt := range tests {
		t.Run(string(tt.esc), func(t *testing.T) {
			s, ok := Shorthand(tt.esc, asciiWords{})
			if !ok {
				t.Fatalf("Shorthand(%q) not recognized", tt.esc)
			}
			for i := 0; i < len(tt.in); i++ {
				if !s.Contains(tt.in[i]) {
					t.Errorf("missing %q", tt.in[i])
				}
			}
			for i := 0; i < len(tt.out); i++ {
				if s.Contains(tt.out[i]) {
					t.Errorf("unexpected %q", tt.out[i])
				}
			}
			if s.Len() != tt.size {
				t.Errorf("Len() = %d, want %d", s.Len(), tt.size)
			}
		})
	}
	if _, ok := Shorthand('q', asciiWords{}); ok {
		t.Error("Shorthand('q') recognized")
	}
}

func TestSingle(t *testing.T) {
	var s Set
	if _, ok := s.Single(); ok {
		t.Error("empty set reported a single member")
	}
	s.Add('x')
	if c, ok := s.Single(); !ok || c != 'x' {
		t.Errorf("Single() = %q, %v", c, ok)
	}
	s.Add('y')
	if _, ok := s.Single(); ok {
		t.Error("two-member set reported a single member")
	}
	s.Remove('y')
	if c, _ := s.Single(); c != 'x' {
		t.Errorf("after Remove, Single() = %q", c)
	}
}

func TestString(t *testing.T) {
	var s Set
	_ = s.AddRange('0', '9', false)
	_ = s.AddRange('a', 'f', true)
	s.Add('-')
	s.Add('\n')
	s.Add('q')
	s.Add('r')
	if got, want := s.String(), `[\x0a\-0-9A-Fa-fqr]`; got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
}

func TestCase(t *testing.T) {
	if c, ok := OtherCase('q'); !ok || c != 'Q' {
		t.Errorf("OtherCase('q') = %q, %v", c, ok)
	}
	if _, ok := OtherCase('1'); ok {
		t.Error("OtherCase('1') reported a letter")
	}
	if ToLower('G') != 'g' || ToLower('[') != '[' {
		t.Error("ToLower wrong")
	}
}

func TestAppendMembers(t *testing.T) {
	var s Set
	for _, c := range []byte{200, 'z', 0, 'a', 64, 63} {
		s.Add(c)
	}
	got := s.AppendMembers([]byte("x"))
	want := []byte{'x', 0, 63, 64, 'a', 'z', 200}
	if string(got) != string(want) {
		t.Errorf("AppendMembers = %v, want %v", got, want)
	}
}
