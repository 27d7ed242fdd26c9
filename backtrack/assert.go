package backtrack

import "github.com/coregx/research/source"

// atLineStart reports whether pos begins a line. "\r\n", "\n" and "\r" are
// all line ends, so the position between '\r' and '\n' is not a line start.
func atLineStart(src source.Source, pos, end int) bool {
	if pos == 0 {
		return true
	}
	switch src.CharAt(pos - 1) {
	case '\n':
		return true
	case '\r':
		return pos >= end || src.CharAt(pos) != '\n'
	}
	return false
}

// atLineEnd reports whether pos ends a line or the window.
func atLineEnd(src source.Source, pos, end int) bool {
	if pos >= end {
		return true
	}
	c := src.CharAt(pos)
	return c == '\n' || c == '\r'
}

func atWordStart(src source.Source, words source.Classifier, pos, end int) bool {
	return pos < end && words.IsWord(src.CharAt(pos)) &&
		(pos == 0 || !words.IsWord(src.CharAt(pos-1)))
}

func atWordEnd(src source.Source, words source.Classifier, pos, end int) bool {
	return pos > 0 && words.IsWord(src.CharAt(pos-1)) &&
		(pos >= end || !words.IsWord(src.CharAt(pos)))
}
