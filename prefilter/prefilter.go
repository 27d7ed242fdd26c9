// Package prefilter finds candidate match starts before the matcher runs.
//
// A prefilter scans the source for bytes or literals that every match must
// begin with and reports the first position where one occurs. The matcher
// only runs at those positions.
//
// The strategy is picked from the literals extracted from the program:
//   - Single byte → memchr
//   - Single literal → memmem
//   - Several literals → Aho-Corasick automaton
//   - No literals → the set of bytes a match can begin with
//
// Example usage:
//
//	prog := syntax.MustCompile("hello|world", syntax.Options{CaseSensitive: true, POSIX: true})
//	pf := prefilter.ForProgram(prog, literal.DefaultConfig())
//	pos := pf.Find(source.String("foo hello bar"), 0, 13) // 4
package prefilter

import (
	"github.com/coregx/research/literal"
	"github.com/coregx/research/source"
	"github.com/coregx/research/syntax"
)

// Prefilter reports candidate match starts.
type Prefilter interface {
	// Find returns the first position in [start, end) where a match may
	// begin, or -1. It never skips a position where a match begins.
	Find(src source.Source, start, end int) int

	// IsComplete reports whether a candidate is always a match of exactly
	// LiteralLen bytes, so no verification is needed.
	IsComplete() bool

	// LiteralLen returns the match length when IsComplete is true, and 0
	// otherwise.
	LiteralLen() int
}

// maxSetSize is the largest first-byte set worth scanning for.
const maxSetSize = 128

// Builder selects a prefilter for extracted literals, falling back to a
// program's first-byte set.
//
// Example:
//
//	prefixes := literal.New(literal.DefaultConfig()).ExtractPrefixes(prog)
//	pf := prefilter.NewBuilder(prefixes).WithProgram(prog).Build()
//	if pf != nil {
//	    pos := pf.Find(src, 0, n)
//	}
type Builder struct {
	prefixes *literal.Seq
	prog     *syntax.Program
}

// NewBuilder creates a builder for the given prefix literals.
func NewBuilder(prefixes *literal.Seq) *Builder {
	return &Builder{prefixes: prefixes}
}

// WithProgram sets the program whose first-byte set is used when there are
// no literals.
func (b *Builder) WithProgram(prog *syntax.Program) *Builder {
	b.prog = prog
	return b
}

// Build returns the best prefilter, or nil when none would help.
func (b *Builder) Build() Prefilter {
	if pf := selectPrefilter(b.prefixes); pf != nil {
		return pf
	}
	if b.prog == nil {
		return nil
	}
	set, ok := FirstBytes(b.prog)
	if !ok || set.Len() > maxSetSize {
		return nil
	}
	return newByteSet(set)
}

// ForProgram extracts prefixes from prog with config and builds a prefilter
// for them. It returns nil when no prefilter applies.
func ForProgram(prog *syntax.Program, config literal.ExtractorConfig) Prefilter {
	prefixes := literal.New(config).ExtractPrefixes(prog)
	return NewBuilder(prefixes).WithProgram(prog).Build()
}

func selectPrefilter(seq *literal.Seq) Prefilter {
	if seq.IsEmpty() {
		return nil
	}

	if seq.Len() == 1 {
		lit := seq.Get(0)
		if len(lit.Bytes) == 1 {
			return newMemchr(lit.Bytes[0], lit.Complete)
		}
		return newMemmem(lit.Bytes, lit.Complete)
	}

	if pf, err := newAhoCorasick(seq); err == nil {
		return pf
	}
	return nil
}
