// Package backtrack executes compiled programs against a source.Source.
//
// The matcher is a backtracking interpreter with an explicit stack. Every
// alternative it may return to is a choice frame on the stack, and every
// write to a tag or closure slot is logged before it happens. Failing pops the
// stack, undoing logged writes until it reaches a choice frame, so a tag set
// on a path that later fails is never reported.
//
// Semantics are leftmost-first: among the matches that start at the leftmost
// position, the first one found in priority order wins. Greedy closures prefer
// more repetitions, lazy closures fewer, and alternatives are tried left to
// right.
package backtrack

import (
	"fmt"
	"sync"

	"github.com/coregx/research/source"
	"github.com/coregx/research/syntax"
)

// Prefilter finds candidate match starts. Find returns the first position in
// [start, end] where a match may begin, or -1 if there is none. It must never
// skip a position where the program can match.
type Prefilter interface {
	Find(src source.Source, start, end int) int
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithPrefilter makes Execute visit only the candidates pf reports. A search
// whose candidates turn out to be dense falls back to scanning every position.
func WithPrefilter(pf Prefilter) Option {
	return func(m *Matcher) {
		m.prefilter = pf
	}
}

// WithMaxBacktrack bounds the number of alternatives a single Execute call
// may resume. Zero or less means no limit.
func WithMaxBacktrack(n int) Option {
	return func(m *Matcher) {
		m.maxBacktrack = n
	}
}

// Matcher runs a compiled program. A Matcher is safe for concurrent use; the
// per-search state comes from an internal pool.
type Matcher struct {
	prog         *syntax.Program
	prefilter    Prefilter
	maxBacktrack int
	pool         sync.Pool
}

// New returns a Matcher for prog.
func New(prog *syntax.Program, opts ...Option) (*Matcher, error) {
	if !prog.Valid() {
		return nil, ErrInvalidProgram
	}
	m := &Matcher{prog: prog}
	for _, opt := range opts {
		opt(m)
	}
	m.pool.New = func() any {
		return &machine{slots: make([]int, prog.NumSlots)}
	}
	return m, nil
}

// Program returns the program the matcher runs.
func (m *Matcher) Program() *syntax.Program {
	return m.prog
}

// Execute searches src for the leftmost match that starts in [start, end]
// and lies within [start, end). Positions are absolute. If caps is not nil
// it is reset and, on a match, filled in with tag 0 covering the match.
//
// Execute returns false with a nil error when there is no match.
func (m *Matcher) Execute(src source.Source, start, end int, caps *Captures) (bool, error) {
	if m == nil || !m.prog.Valid() {
		return false, ErrInvalidProgram
	}
	if start < 0 || start > end {
		return false, fmt.Errorf("%w: start %d, end %d", ErrInvalidWindow, start, end)
	}
	if caps != nil {
		caps.Reset()
	}

	mc := m.get()
	defer m.put(mc)

	mc.tracker.reset(m.prefilter != nil)
	for lp := start; lp <= end; lp++ {
		switch {
		case mc.tracker.active:
			from := lp
			if lp = m.prefilter.Find(src, lp, end); lp < 0 {
				return false, nil
			}
			mc.tracker.observe(from, lp)
		case m.prog.Anchored:
			if lp = nextLineStart(src, lp, end); lp < 0 {
				return false, nil
			}
		}

		e, err := m.run(mc, src, lp, end)
		if err != nil {
			return false, err
		}
		if e >= 0 {
			m.report(mc, lp, e, caps)
			return true, nil
		}
	}
	return false, nil
}

// MatchAt reports whether the program matches starting exactly at pos,
// looking no further than end.
func (m *Matcher) MatchAt(src source.Source, pos, end int, caps *Captures) (bool, error) {
	if m == nil || !m.prog.Valid() {
		return false, ErrInvalidProgram
	}
	if pos < 0 || pos > end {
		return false, fmt.Errorf("%w: pos %d, end %d", ErrInvalidWindow, pos, end)
	}
	if caps != nil {
		caps.Reset()
	}

	mc := m.get()
	defer m.put(mc)

	e, err := m.run(mc, src, pos, end)
	if err != nil || e < 0 {
		return false, err
	}
	m.report(mc, pos, e, caps)
	return true, nil
}

func (m *Matcher) report(mc *machine, start, end int, caps *Captures) {
	if caps == nil {
		return
	}
	*caps = mc.caps
	caps.Start[0] = start
	caps.End[0] = end
}

func (m *Matcher) get() *machine {
	mc := m.pool.Get().(*machine)
	mc.caps.Reset()
	for i := range mc.slots {
		mc.slots[i] = NotFound
	}
	mc.stack = mc.stack[:0]
	mc.steps = 0
	return mc
}

func (m *Matcher) put(mc *machine) {
	if cap(mc.stack) > maxPooledStack {
		mc.stack = nil
	}
	m.pool.Put(mc)
}

// nextLineStart returns the first line start in [pos, end], or -1.
func nextLineStart(src source.Source, pos, end int) int {
	for ; pos <= end; pos++ {
		if atLineStart(src, pos, end) {
			return pos
		}
	}
	return -1
}
