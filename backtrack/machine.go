package backtrack

import (
	"github.com/coregx/research/charclass"
	"github.com/coregx/research/source"
	"github.com/coregx/research/syntax"
)

const maxPooledStack = 1 << 16

type frameKind uint8

const (
	frameChoice   frameKind = iota // resume at pc, pos
	frameRun                       // greedy single-byte run: retry exit at pos-1 down to lo
	frameTagStart                  // restore caps.Start[pc] = pos
	frameTagEnd                    // restore caps.End[pc] = pos
	frameSlot                      // restore slots[pc] = pos
)

type frame struct {
	kind frameKind
	pc   int
	pos  int
	lo   int
}

// machine is the mutable state of one search.
type machine struct {
	stack []frame
	slots []int // position where each closure last started an iteration
	caps  Captures
	steps int

	tracker tracker
}

func (mc *machine) push(kind frameKind, pc, pos int) {
	mc.stack = append(mc.stack, frame{kind: kind, pc: pc, pos: pos})
}

// backtrack unwinds the stack to the most recent alternative and returns it.
// ok is false when no alternative is left.
func (mc *machine) backtrack() (pc, pos int, ok bool) {
	for n := len(mc.stack); n > 0; n = len(mc.stack) {
		f := &mc.stack[n-1]
		switch f.kind {
		case frameChoice:
			mc.stack = mc.stack[:n-1]
			return f.pc, f.pos, true
		case frameRun:
			if f.pos > f.lo {
				f.pos--
				return f.pc, f.pos, true
			}
		case frameTagStart:
			mc.caps.Start[f.pc] = f.pos
		case frameTagEnd:
			mc.caps.End[f.pc] = f.pos
		case frameSlot:
			mc.slots[f.pc] = f.pos
		}
		mc.stack = mc.stack[:n-1]
	}
	return 0, 0, false
}

// run tries the program at lp and returns the end of the match, or -1.
// On success mc.caps holds the capture groups.
func (m *Matcher) run(mc *machine, src source.Source, lp, end int) (int, error) {
	prog := m.prog.Inst
	words := m.prog.Words()
	fold := !m.prog.CaseSensitive()

	pc, pos := 0, lp
	for {
		in := &prog[pc]
		ok := true

		switch in.Op {
		case syntax.OpEnd:
			return pos, nil

		case syntax.OpChar, syntax.OpAny, syntax.OpClass:
			if pos < end && in.MatchByte(src.CharAt(pos)) {
				pc++
				pos++
			} else {
				ok = false
			}

		case syntax.OpBOL:
			ok = atLineStart(src, pos, end)
			pc++
		case syntax.OpEOL:
			ok = atLineEnd(src, pos, end)
			pc++
		case syntax.OpBOW:
			ok = atWordStart(src, words, pos, end)
			pc++
		case syntax.OpEOW:
			ok = atWordEnd(src, words, pos, end)
			pc++

		case syntax.OpGroupStart:
			tag := int(in.Arg)
			mc.push(frameTagStart, tag, mc.caps.Start[tag])
			mc.caps.Start[tag] = pos
			pc++
		case syntax.OpGroupEnd:
			tag := int(in.Arg)
			mc.push(frameTagEnd, tag, mc.caps.End[tag])
			mc.caps.End[tag] = pos
			pc++

		case syntax.OpBackref:
			var n int
			n, ok = backref(src, &mc.caps, int(in.Arg), pos, end, fold)
			pos += n
			pc++

		case syntax.OpClosure:
			pc, pos, ok = mc.closure(prog, src, pc, pos, end)

		case syntax.OpRepeat:
			pc = mc.repeat(prog, pc, pos)

		case syntax.OpAlt:
			mc.push(frameChoice, pc+int(in.Skip), pos)
			pc++
		case syntax.OpJump:
			pc += int(in.Skip)
		}

		if ok {
			continue
		}
		if pc, pos, ok = mc.backtrack(); !ok {
			return -1, nil
		}
		mc.steps++
		if m.maxBacktrack > 0 && mc.steps > m.maxBacktrack {
			return -1, ErrBacktrackLimit
		}
	}
}

// closure enters the closure whose head is at pc.
func (mc *machine) closure(prog []syntax.Inst, src source.Source, pc, pos, end int) (int, int, bool) {
	head := &prog[pc]
	body, exit := pc+1, pc+int(head.Skip)

	if !head.Lazy && head.Kind != syntax.Quest && head.Skip == 3 && consumes(prog[body].Op) {
		// The body is a single byte test: take the longest run and give
		// bytes back one at a time.
		in := &prog[body]
		lo := pos + head.Kind.Min()
		p := pos
		for p < end && in.MatchByte(src.CharAt(p)) {
			p++
		}
		if p < lo {
			return pc, pos, false
		}
		mc.stack = append(mc.stack, frame{kind: frameRun, pc: exit, pos: p, lo: lo})
		return exit, p, true
	}

	slot := int(head.Arg)
	mc.push(frameSlot, slot, mc.slots[slot])
	mc.slots[slot] = pos
	switch {
	case head.Kind == syntax.Plus:
		return body, pos, true
	case head.Lazy:
		mc.push(frameChoice, body, pos)
		return exit, pos, true
	default:
		mc.push(frameChoice, exit, pos)
		return body, pos, true
	}
}

// repeat handles the closure tail at pc and returns the next pc.
func (mc *machine) repeat(prog []syntax.Inst, pc, pos int) int {
	headPC := pc - int(prog[pc].Skip)
	head := &prog[headPC]
	exit := pc + 1
	if head.Kind == syntax.Quest {
		return exit
	}

	slot := int(head.Arg)
	if mc.slots[slot] == pos {
		// The iteration consumed nothing; another would loop forever.
		return exit
	}
	mc.push(frameSlot, slot, mc.slots[slot])
	mc.slots[slot] = pos
	if head.Lazy {
		mc.push(frameChoice, headPC+1, pos)
		return exit
	}
	mc.push(frameChoice, exit, pos)
	return headPC + 1
}

func consumes(op syntax.Op) bool {
	return op == syntax.OpChar || op == syntax.OpAny || op == syntax.OpClass
}

// backref matches the text of tag at pos and returns its length.
func backref(src source.Source, caps *Captures, tag, pos, end int, fold bool) (int, bool) {
	s, e := caps.Start[tag], caps.End[tag]
	if s == NotFound || e == NotFound || e < s {
		return 0, false
	}
	n := e - s
	if pos+n > end {
		return 0, false
	}
	for i := 0; i < n; i++ {
		a, b := src.CharAt(s+i), src.CharAt(pos+i)
		if a == b {
			continue
		}
		if !fold || charclass.ToLower(a) != charclass.ToLower(b) {
			return 0, false
		}
	}
	return n, true
}
