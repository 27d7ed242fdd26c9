package charclass

// Classifier reports word characters. It matches source.Classifier so the
// compiler can pass its classifier straight through.
type Classifier interface {
	IsWord(c byte) bool
}

// Digit returns the \d class: ASCII digits.
func Digit() Set {
	var s Set
	_ = s.AddRange('0', '9', false)
	return s
}

// Space returns the \s class: ' ', \t, \n, \v, \f and \r.
func Space() Set {
	var s Set
	for _, c := range []byte(" \t\n\v\f\r") {
		s.Add(c)
	}
	return s
}

// Word returns the \w class as defined by words.
func Word(words Classifier) Set {
	var s Set
	s.AddFunc(words.IsWord)
	return s
}

// Shorthand returns the class for escape letter c (one of d, D, s, S, w, W).
// ok is false for any other letter.
func Shorthand(c byte, words Classifier) (s Set, ok bool) {
	switch c {
	case 'd', 'D':
		s = Digit()
	case 's', 'S':
		s = Space()
	case 'w', 'W':
		s = Word(words)
	default:
		return s, false
	}
	if c == 'D' || c == 'S' || c == 'W' {
		s.Negate()
	}
	return s, true
}
