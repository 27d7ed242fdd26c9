package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/research/charclass"
	"github.com/coregx/research/literal"
	"github.com/coregx/research/source"
)

// multiLiteral finds the leftmost of several literals with an Aho-Corasick
// automaton. Sources without a contiguous view of the window are scanned for
// the literals' first bytes and verified in place.
type multiLiteral struct {
	auto   *ahocorasick.Automaton
	lits   [][]byte
	first  charclass.Set
	minLen int
}

func newAhoCorasick(seq *literal.Seq) (*multiLiteral, error) {
	builder := ahocorasick.NewBuilder()
	lits := seq.Clone().Literals()
	for _, lit := range lits {
		builder.AddPattern(lit)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}

	p := &multiLiteral{auto: auto, lits: lits, minLen: seq.MinLen()}
	for _, lit := range lits {
		p.first.Add(lit[0])
	}
	return p, nil
}

func (p *multiLiteral) Find(src source.Source, start, end int) int {
	if end-start < p.minLen {
		return -1
	}
	if s, ok := src.(source.Slicer); ok {
		if b, ok := s.Slice(start, end); ok {
			m := p.auto.Find(b, 0)
			if m == nil {
				return -1
			}
			return start + m.Start
		}
	}
	for pos := start; pos+p.minLen <= end; pos++ {
		if !p.first.Contains(src.CharAt(pos)) {
			continue
		}
		for _, lit := range p.lits {
			if pos+len(lit) <= end && hasPrefixAt(src, pos, lit) {
				return pos
			}
		}
	}
	return -1
}

// IsComplete is false: the literals differ in length, so a candidate does not
// say where the match ends.
func (p *multiLiteral) IsComplete() bool {
	return false
}

func (p *multiLiteral) LiteralLen() int {
	return 0
}
