package research

import (
	"errors"
	"time"

	"github.com/coregx/research/backtrack"
	"github.com/coregx/research/prefilter"
	"github.com/coregx/research/source"
	"github.com/coregx/research/syntax"
)

// Regexp is a compiled pattern bound to a matcher.
//
// A Regexp is safe for concurrent use by multiple goroutines.
type Regexp struct {
	prog      *syntax.Program
	matcher   *backtrack.Matcher
	prefilter prefilter.Prefilter
	config    Config
}

// Compile compiles pattern with the default word classifier and
// configuration.
//
// Example:
//
//	re, err := research.Compile(`^\(foo\|bar\)$`, true, false)
func Compile(pattern string, caseSensitive, posix bool) (*Regexp, error) {
	return CompileWithConfig(pattern, syntax.Options{CaseSensitive: caseSensitive, POSIX: posix}, DefaultConfig())
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
func MustCompile(pattern string, caseSensitive, posix bool) *Regexp {
	re, err := Compile(pattern, caseSensitive, posix)
	if err != nil {
		panic("research: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles pattern with explicit compile options and
// configuration. Compile errors are *syntax.CompileError values; an invalid
// config yields a *ConfigError.
func CompileWithConfig(pattern string, opts syntax.Options, config Config) (*Regexp, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	compilesTotal.Inc()
	prog, err := syntax.Compile(pattern, opts)
	if err != nil {
		compileErrorsTotal.Inc()
		return nil, err
	}

	re := &Regexp{prog: prog, config: config}
	var mopts []backtrack.Option
	if config.EnablePrefilter {
		if pf := prefilter.ForProgram(prog, config.extractorConfig()); pf != nil {
			re.prefilter = pf
			mopts = append(mopts, backtrack.WithPrefilter(pf))
		}
	}
	if config.MaxBacktrack > 0 {
		mopts = append(mopts, backtrack.WithMaxBacktrack(config.MaxBacktrack))
	}
	if re.matcher, err = backtrack.New(prog, mopts...); err != nil {
		return nil, err
	}
	return re, nil
}

// Program returns the compiled program.
func (re *Regexp) Program() *syntax.Program {
	return re.prog
}

// String returns the source pattern.
func (re *Regexp) String() string {
	return re.prog.Pattern()
}

// NumSubexp returns the number of capture groups.
func (re *Regexp) NumSubexp() int {
	return re.prog.NumTags - 1
}

// Execute returns the leftmost match that starts in [start, end] and lies
// within [start, end) of src, or nil when there is none.
func (re *Regexp) Execute(src source.Source, start, end int) (*Match, error) {
	defer executeDuration.UpdateDuration(time.Now())
	executionsTotal.Inc()

	if m, ok := re.literalMatch(src, start, end); ok {
		return m, nil
	}

	var caps backtrack.Captures
	ok, err := re.matcher.Execute(src, start, end, &caps)
	return re.result(src, &caps, ok, err)
}

// MatchAt returns the match that starts exactly at pos, or nil.
func (re *Regexp) MatchAt(src source.Source, pos, end int) (*Match, error) {
	executionsTotal.Inc()

	var caps backtrack.Captures
	ok, err := re.matcher.MatchAt(src, pos, end, &caps)
	return re.result(src, &caps, ok, err)
}

// FindAll returns successive non-overlapping matches in [start, end). An
// empty match advances the search by one position. If n >= 0 at most n
// matches are returned.
func (re *Regexp) FindAll(src source.Source, start, end, n int) ([]*Match, error) {
	var out []*Match
	for pos := start; pos <= end && (n < 0 || len(out) < n); {
		m, err := re.Execute(src, pos, end)
		if err != nil {
			return out, err
		}
		if m == nil {
			break
		}
		out = append(out, m)
		pos = max(m.End(0), m.Start(0)+1)
	}
	return out, nil
}

// literalMatch answers searches for a plain literal without the matcher.
func (re *Regexp) literalMatch(src source.Source, start, end int) (*Match, bool) {
	pf := re.prefilter
	if pf == nil || !pf.IsComplete() || re.prog.NumTags != 1 || start < 0 || start > end {
		return nil, false
	}
	pos := pf.Find(src, start, end)
	if pos < 0 {
		return nil, true
	}
	var caps backtrack.Captures
	caps.Reset()
	caps.Start[0], caps.End[0] = pos, pos+pf.LiteralLen()
	matchesTotal.Inc()
	return newMatch(src, &caps, 1), true
}

func (re *Regexp) result(src source.Source, caps *backtrack.Captures, ok bool, err error) (*Match, error) {
	if err != nil {
		if errors.Is(err, backtrack.ErrBacktrackLimit) {
			backtrackLimitTotal.Inc()
		}
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	matchesTotal.Inc()
	return newMatch(src, caps, re.prog.NumTags), nil
}
