package research

import (
	"errors"

	"github.com/coregx/research/backtrack"
	"github.com/coregx/research/source"
	"github.com/coregx/research/syntax"
)

var (
	// ErrNoPattern is returned by Searcher.Compile for an empty pattern when
	// no earlier pattern can be reused.
	ErrNoPattern = errors.New("research: no previous pattern")

	// ErrNotCompiled is returned when a Searcher is used before Compile.
	ErrNotCompiled = errors.New("research: no pattern compiled")
)

// Searcher is a search engine instance: one compiled pattern plus the tags of
// the last match and the group strings grabbed from it.
//
// A Searcher is not safe for concurrent use.
//
// Example:
//
//	s, _ := research.NewSearcher(nil, research.DefaultConfig())
//	_ = s.Compile(`\([a-z]+\)=\([0-9]+\)`, true, false)
//	src := source.String("x=1 width=80")
//	if ok, _ := s.Execute(src, 4, 12); ok {
//	    s.GrabMatches(src)
//	    fmt.Println(s.Substitute(`\2 is \1`)) // 80 is width
//	}
type Searcher struct {
	words  source.Classifier
	config Config
	cache  *Cache

	re            *Regexp
	pattern       string
	caseSensitive bool
	posix         bool

	caps   backtrack.Captures
	groups [syntax.MaxTag]string
}

// NewSearcher returns a Searcher using words (nil means the default
// classifier) to decide word characters.
func NewSearcher(words source.Classifier, config Config) (*Searcher, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if words == nil {
		words = source.DefaultClassifier()
	}
	s := &Searcher{words: words, config: config}
	if config.CacheSize > 0 {
		s.cache = NewCache(config.CacheSize, words, config)
	}
	s.Clear()
	return s, nil
}

// Compile compiles pattern for later Execute calls.
//
// An empty pattern reuses the previous pattern with the new flags, which
// is how "search again" works in an editor; with nothing to reuse it returns
// ErrNoPattern. Compiling the current pattern again with the same flags
// does nothing. On error the previous program stays in place.
func (s *Searcher) Compile(pattern string, caseSensitive, posix bool) error {
	if pattern == "" {
		if s.re == nil {
			return ErrNoPattern
		}
		pattern = s.pattern
	}
	if s.re != nil && pattern == s.pattern && caseSensitive == s.caseSensitive && posix == s.posix {
		return nil
	}

	var re *Regexp
	var err error
	if s.cache != nil {
		re, err = s.cache.Get(pattern, caseSensitive, posix)
	} else {
		opts := syntax.Options{CaseSensitive: caseSensitive, POSIX: posix, Words: s.words}
		re, err = CompileWithConfig(pattern, opts, s.config)
	}
	if err != nil {
		return err
	}
	s.re, s.pattern, s.caseSensitive, s.posix = re, pattern, caseSensitive, posix
	return nil
}

// Regexp returns the compiled pattern, or nil before the first Compile.
func (s *Searcher) Regexp() *Regexp {
	return s.re
}

// Execute searches src for the leftmost match in [lp, endp) and records its
// tags. It reports false with a nil error when there is no match.
func (s *Searcher) Execute(src source.Source, lp, endp int) (bool, error) {
	if s.re == nil {
		return false, ErrNotCompiled
	}
	s.caps.Reset()
	m, err := s.re.Execute(src, lp, endp)
	if err != nil || m == nil {
		return false, err
	}
	s.caps = m.caps
	return true, nil
}

// FindLast searches [lp, endp) for the match that starts last, as a
// backward search does, and records its tags.
func (s *Searcher) FindLast(src source.Source, lp, endp int) (bool, error) {
	if s.re == nil {
		return false, ErrNotCompiled
	}
	s.caps.Reset()
	var last *Match
	for pos := lp; pos <= endp; {
		m, err := s.re.Execute(src, pos, endp)
		if err != nil {
			return false, err
		}
		if m == nil {
			break
		}
		last = m
		pos = m.Start(0) + 1
	}
	if last == nil {
		return false, nil
	}
	s.caps = last.caps
	return true, nil
}

// GrabMatches copies the text of every set tag of the last match out of src.
// Unset tags grab the empty string.
func (s *Searcher) GrabMatches(src source.Source) {
	for tag := range s.groups {
		s.groups[tag] = ""
		if s.caps.Matched(tag) {
			s.groups[tag] = string(source.Copy(nil, src, s.caps.Start[tag], s.caps.End[tag]))
		}
	}
}

// Start returns the start of tag in the last match, or -1.
func (s *Searcher) Start(tag int) int {
	if tag < 0 || tag >= syntax.MaxTag {
		return backtrack.NotFound
	}
	return s.caps.Start[tag]
}

// End returns the end of tag in the last match, or -1.
func (s *Searcher) End(tag int) int {
	if tag < 0 || tag >= syntax.MaxTag {
		return backtrack.NotFound
	}
	return s.caps.End[tag]
}

// Group returns the text grabbed for tag by the last GrabMatches.
func (s *Searcher) Group(tag int) string {
	if tag < 0 || tag >= syntax.MaxTag {
		return ""
	}
	return s.groups[tag]
}

// Clear forgets the last match and the grabbed groups. The compiled pattern
// is kept.
func (s *Searcher) Clear() {
	s.caps.Reset()
	for i := range s.groups {
		s.groups[i] = ""
	}
}

// Substitute expands a replacement template using the grabbed groups:
// \0 is the whole match, \1 to \9 the groups, and \a \b \f \n \r \t \v \\
// the usual escapes. Other backslash sequences are kept as written.
func (s *Searcher) Substitute(template string) string {
	return string(expand(nil, template, s.Group))
}

// CacheStats returns the statistics of the Searcher's pattern cache.
func (s *Searcher) CacheStats() CacheStats {
	if s.cache == nil {
		return CacheStats{}
	}
	return s.cache.Stats()
}
