// Package syntax compiles editor-style regular expressions into a compact,
// bounded program of typed instructions.
//
// The program is a flat instruction list. Structure is expressed with relative
// offsets rather than pointers:
//
//	a(b)*c      0 char 'a'
//	            1 closure * skip=5 slot=0
//	            2 group-start 1
//	            3 char 'b'
//	            4 group-end 1
//	            5 repeat -4
//	            6 char 'c'
//	            7 end
//
// A closure head wraps the atom that follows it up to its repeat tail, so the
// matcher can skip the whole body in one step. Alternatives are chained with
// alt markers, each pointing at the next alternative, and every alternative
// but the last ends with a jump past the alternation.
//
// Programs are immutable once compiled and safe for concurrent use.
package syntax

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/coregx/research/charclass"
	"github.com/coregx/research/source"
)

const (
	// MaxTag is the size of the tag table: tag 0 is the whole match and tags
	// 1..MaxTag-1 are capture groups.
	MaxTag = 10

	// MaxProgram is the maximum number of instructions in a program.
	MaxProgram = 4096
)

// Op is an instruction opcode.
type Op uint8

// Opcodes.
const (
	OpEnd        Op = iota // accept
	OpChar                 // match byte C (Fold: ASCII case-insensitive, C is lower case)
	OpAny                  // match any byte except '\n' and '\r'
	OpClass                // match a byte in Set
	OpBOL                  // beginning of line
	OpEOL                  // end of line
	OpBOW                  // beginning of word
	OpEOW                  // end of word
	OpGroupStart           // record start of tag Arg
	OpGroupEnd             // record end of tag Arg
	OpBackref              // match the text captured by tag Arg
	OpClosure              // closure head, body runs to the repeat at pc+Skip-1
	OpRepeat               // closure tail, head is at pc-Skip
	OpAlt                  // try pc+1, on failure continue at pc+Skip
	OpJump                 // continue at pc+Skip
)

var opNames = [...]string{
	OpEnd:        "end",
	OpChar:       "char",
	OpAny:        "any",
	OpClass:      "class",
	OpBOL:        "bol",
	OpEOL:        "eol",
	OpBOW:        "bow",
	OpEOW:        "eow",
	OpGroupStart: "group-start",
	OpGroupEnd:   "group-end",
	OpBackref:    "backref",
	OpClosure:    "closure",
	OpRepeat:     "repeat",
	OpAlt:        "alt",
	OpJump:       "jump",
}

// String returns the opcode name.
func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// Closure is the repetition kind of an OpClosure.
type Closure uint8

// Closure kinds.
const (
	Star  Closure = iota // zero or more
	Plus                 // one or more
	Quest                // zero or one
)

// Min returns the minimum number of repetitions.
func (k Closure) Min() int {
	if k == Plus {
		return 1
	}
	return 0
}

// String returns the quantifier character.
func (k Closure) String() string {
	switch k {
	case Plus:
		return "+"
	case Quest:
		return "?"
	}
	return "*"
}

// Inst is a single program cell.
type Inst struct {
	Op   Op
	C    byte    // OpChar
	Fold bool    // OpChar: compare ignoring ASCII case
	Kind Closure // OpClosure
	Lazy bool    // OpClosure: prefer fewer repetitions
	Arg  uint16  // tag for group and backref ops, slot for OpClosure
	Skip uint16  // relative offset for OpClosure, OpRepeat, OpAlt, OpJump

	Set charclass.Set // OpClass
}

// MatchByte reports whether the consuming instruction i accepts c.
// It returns false for zero-width and control instructions.
func (i *Inst) MatchByte(c byte) bool {
	switch i.Op {
	case OpChar:
		if i.Fold {
			return charclass.ToLower(c) == i.C
		}
		return c == i.C
	case OpAny:
		return c != '\n' && c != '\r'
	case OpClass:
		return i.Set.Contains(c)
	}
	return false
}

// String renders the instruction the way Program.String lists it.
func (i *Inst) String() string {
	switch i.Op {
	case OpChar:
		if i.Fold {
			return "char/i " + strconv.QuoteRune(rune(i.C))
		}
		return "char " + strconv.QuoteRune(rune(i.C))
	case OpClass:
		return "class " + i.Set.String()
	case OpGroupStart, OpGroupEnd, OpBackref:
		return i.Op.String() + " " + strconv.Itoa(int(i.Arg))
	case OpClosure:
		lazy := ""
		if i.Lazy {
			lazy = "?"
		}
		return fmt.Sprintf("closure %s%s skip=%d slot=%d", i.Kind, lazy, i.Skip, i.Arg)
	case OpRepeat:
		return "repeat -" + strconv.Itoa(int(i.Skip))
	case OpAlt, OpJump:
		return i.Op.String() + " +" + strconv.Itoa(int(i.Skip))
	}
	return i.Op.String()
}

// Program is a compiled pattern.
type Program struct {
	// Inst holds the instructions; the last one is always OpEnd.
	Inst []Inst

	// NumTags is the number of tags in use, including tag 0.
	NumTags int

	// NumSlots is the number of closure loop slots the matcher needs.
	NumSlots int

	// Anchored is true when every match must begin at a line start.
	Anchored bool

	pattern       string
	caseSensitive bool
	posix         bool
	words         source.Classifier
}

// Pattern returns the source pattern.
func (p *Program) Pattern() string {
	return p.pattern
}

// CaseSensitive reports the case-sensitivity flag the program was compiled with.
func (p *Program) CaseSensitive() bool {
	return p.caseSensitive
}

// POSIX reports the POSIX flag the program was compiled with.
func (p *Program) POSIX() bool {
	return p.posix
}

// Words returns the classifier used for \<, \> and \w.
func (p *Program) Words() source.Classifier {
	return p.words
}

// Len returns the number of instructions.
func (p *Program) Len() int {
	return len(p.Inst)
}

// Valid reports whether p is a complete program: non-empty and terminated by
// OpEnd.
func (p *Program) Valid() bool {
	return p != nil && len(p.Inst) > 0 && p.Inst[len(p.Inst)-1].Op == OpEnd && p.words != nil
}

// String lists the program one instruction per line.
func (p *Program) String() string {
	var sb strings.Builder
	for pc := range p.Inst {
		fmt.Fprintf(&sb, "%4d %s\n", pc, p.Inst[pc].String())
	}
	return sb.String()
}
