package source

// CharClass categorizes a byte for word-boundary purposes.
type CharClass uint8

// Character classes, in the order a CharClassify table stores them.
const (
	ClassSpace CharClass = iota
	ClassNewLine
	ClassWord
	ClassPunctuation
)

// String returns the class name.
func (c CharClass) String() string {
	switch c {
	case ClassSpace:
		return "space"
	case ClassNewLine:
		return "newline"
	case ClassWord:
		return "word"
	case ClassPunctuation:
		return "punctuation"
	}
	return "unknown"
}

// CharClassify is a 256-entry byte classification table implementing
// Classifier. The zero value classifies every byte as space; use
// NewCharClassify for the usual defaults.
type CharClassify struct {
	classes [256]CharClass
}

// NewCharClassify returns a table with the default classification:
// '\r' and '\n' are newlines, other bytes below 0x20 and ' ' are space,
// ASCII letters, digits, '_' and every byte >= 0x80 are word characters and
// everything else is punctuation.
func NewCharClassify() *CharClassify {
	cc := &CharClassify{}
	cc.SetDefault()
	return cc
}

// SetDefault restores the default classification.
func (cc *CharClassify) SetDefault() {
	for i := range cc.classes {
		c := byte(i)
		switch {
		case c == '\r' || c == '\n':
			cc.classes[i] = ClassNewLine
		case c < 0x20 || c == ' ':
			cc.classes[i] = ClassSpace
		case c >= 0x80 || isASCIIAlnum(c) || c == '_':
			cc.classes[i] = ClassWord
		default:
			cc.classes[i] = ClassPunctuation
		}
	}
}

// SetClass assigns class to every byte in chars.
func (cc *CharClassify) SetClass(chars string, class CharClass) {
	for i := 0; i < len(chars); i++ {
		cc.classes[chars[i]] = class
	}
}

// SetWordChars makes exactly the bytes in chars word characters. Bytes that
// were word characters before and are not in chars become punctuation.
// An empty chars restores the default table.
func (cc *CharClassify) SetWordChars(chars string) {
	if chars == "" {
		cc.SetDefault()
		return
	}
	for i := range cc.classes {
		if cc.classes[i] == ClassWord {
			cc.classes[i] = ClassPunctuation
		}
	}
	cc.SetClass(chars, ClassWord)
}

// Class returns the class of c.
func (cc *CharClassify) Class(c byte) CharClass {
	return cc.classes[c]
}

// IsWord reports whether c is a word character.
func (cc *CharClassify) IsWord(c byte) bool {
	return cc.classes[c] == ClassWord
}

var defaultClassify = NewCharClassify()

// DefaultClassifier returns the shared default classification table. It must
// not be modified; create a table with NewCharClassify to customize.
func DefaultClassifier() Classifier {
	return defaultClassify
}

// ClassifierFunc adapts an ordinary function to Classifier.
type ClassifierFunc func(c byte) bool

// IsWord calls f(c).
func (f ClassifierFunc) IsWord(c byte) bool {
	return f(c)
}

func isASCIIAlnum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
