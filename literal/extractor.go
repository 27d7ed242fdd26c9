package literal

import (
	"github.com/coregx/research/charclass"
	"github.com/coregx/research/syntax"
)

// ExtractorConfig bounds literal extraction.
//
// Example:
//
//	config := literal.ExtractorConfig{
//	    MaxLiterals:   64,
//	    MaxLiteralLen: 64,
//	    MaxClassSize:  10,
//	}
//	extractor := literal.New(config)
type ExtractorConfig struct {
	// MaxLiterals caps the number of literals in a result. Extraction from
	// an alternative stops growing its literals before the product of the
	// expanded classes would exceed it, and a program whose alternatives
	// together need more gives up. Default: 64.
	MaxLiterals int

	// MaxLiteralLen caps the length of each literal. Default: 64.
	MaxLiteralLen int

	// MaxClassSize is the largest class that is expanded into one literal
	// per member. [a-z] with 26 members is not expanded by default.
	// Default: 10.
	MaxClassSize int
}

// DefaultConfig returns the default extractor configuration.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
		MaxClassSize:  10,
	}
}

// Extractor extracts prefix literals from compiled programs.
type Extractor struct {
	config ExtractorConfig
}

// New creates an Extractor with the given configuration.
func New(config ExtractorConfig) *Extractor {
	return &Extractor{config: config}
}

// ExtractPrefixes returns literals one of which starts every match of prog.
//
// Each top-level alternative contributes the literals it begins with.
// Case-folded letters and small classes expand into one literal per
// variant:
//
//	"hello"          → ["hello"] (complete)
//	"foo|bar"        → ["foo", "bar"]
//	"[ab]x.*"        → ["ax", "bx"]
//	"Hi", caseless   → ["hi", "hI", "Hi", "HI"]
//	"a(b)*c"         → ["a"]
//	"^foo"           → ["foo"] (not complete)
//	"x*y"            → [] (a match may start with y or x)
//
// The result is empty when any alternative has no literal prefix, since a
// match starting with that alternative would be missed.
func (e *Extractor) ExtractPrefixes(prog *syntax.Program) *Seq {
	if !prog.Valid() {
		return NewSeq()
	}

	var all []Literal
	pc := 0
	for {
		next := -1
		if in := &prog.Inst[pc]; in.Op == syntax.OpAlt {
			next = pc + int(in.Skip)
			pc++
		}

		lits := e.prefixes(prog.Inst, pc)
		if len(lits) == 0 {
			return NewSeq()
		}
		all = append(all, lits...)
		if len(all) > e.config.MaxLiterals {
			return NewSeq()
		}

		if next < 0 {
			break
		}
		pc = next
	}

	seq := NewSeq(all...)
	seq.Minimize()
	return seq
}

// prefixes returns the literals the alternative starting at pc begins with.
func (e *Extractor) prefixes(prog []syntax.Inst, pc int) []Literal {
	cur := [][]byte{nil}
	complete, asserted := false, false
	var variants []byte

walk:
	for ; ; pc++ {
		in := &prog[pc]
		variants = variants[:0]

		switch in.Op {
		case syntax.OpGroupStart, syntax.OpGroupEnd:
			continue
		case syntax.OpBOL, syntax.OpEOL, syntax.OpBOW, syntax.OpEOW:
			asserted = true
			continue
		case syntax.OpEnd, syntax.OpJump:
			complete = !asserted
			break walk
		case syntax.OpChar:
			variants = append(variants, in.C)
			if in.Fold {
				if up, ok := charclass.OtherCase(in.C); ok {
					variants = append(variants, up)
				}
			}
		case syntax.OpClass:
			if in.Set.Len() > e.config.MaxClassSize {
				break walk
			}
			variants = in.Set.AppendMembers(variants)
			if len(variants) == 0 {
				break walk
			}
		default:
			break walk
		}

		if len(cur[0]) >= e.config.MaxLiteralLen || len(cur)*len(variants) > e.config.MaxLiterals {
			break
		}
		cur = cross(cur, variants)
	}

	if len(cur[0]) == 0 {
		return nil
	}
	lits := make([]Literal, len(cur))
	for i, b := range cur {
		lits[i] = NewLiteral(b, complete)
	}
	return lits
}

// cross extends every prefix in cur with every byte in next.
func cross(cur [][]byte, next []byte) [][]byte {
	out := make([][]byte, 0, len(cur)*len(next))
	for _, p := range cur {
		for _, c := range next {
			b := make([]byte, len(p)+1)
			copy(b, p)
			b[len(p)] = c
			out = append(out, b)
		}
	}
	return out
}
