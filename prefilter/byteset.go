package prefilter

import (
	"github.com/coregx/research/charclass"
	"github.com/coregx/research/source"
	"github.com/coregx/research/syntax"
)

// FirstBytes returns the set of bytes a match of prog can begin with.
//
// ok is false when a match may be empty or may begin with text the set cannot
// describe, such as a back reference.
func FirstBytes(prog *syntax.Program) (set charclass.Set, ok bool) {
	if !prog.Valid() {
		return set, false
	}
	visited := make([]bool, len(prog.Inst))
	stack := []int{0}
	for len(stack) > 0 {
		pc := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[pc] {
			continue
		}
		visited[pc] = true

		in := &prog.Inst[pc]
		switch in.Op {
		case syntax.OpEnd, syntax.OpBackref:
			return set, false
		case syntax.OpChar:
			set.AddFold(in.C, in.Fold)
		case syntax.OpAny:
			set.AddFunc(func(c byte) bool { return c != '\n' && c != '\r' })
		case syntax.OpClass:
			set.Union(in.Set)
		case syntax.OpClosure:
			stack = append(stack, pc+1)
			if in.Kind != syntax.Plus {
				stack = append(stack, pc+int(in.Skip))
			}
		case syntax.OpAlt:
			stack = append(stack, pc+1, pc+int(in.Skip))
		case syntax.OpJump:
			stack = append(stack, pc+int(in.Skip))
		default:
			// Zero-width assertions, group marks and closure tails.
			stack = append(stack, pc+1)
		}
	}
	return set, !set.IsFull()
}

// byteSet finds the first byte that can begin a match.
type byteSet struct {
	set charclass.Set
}

func newByteSet(set charclass.Set) *byteSet {
	return &byteSet{set: set}
}

func (p *byteSet) Find(src source.Source, start, end int) int {
	if s, ok := src.(source.Slicer); ok {
		if b, ok := s.Slice(start, end); ok {
			for i, c := range b {
				if p.set.Contains(c) {
					return start + i
				}
			}
			return -1
		}
	}
	for pos := start; pos < end; pos++ {
		if p.set.Contains(src.CharAt(pos)) {
			return pos
		}
	}
	return -1
}

func (p *byteSet) IsComplete() bool {
	return false
}

func (p *byteSet) LiteralLen() int {
	return 0
}
