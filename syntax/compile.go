package syntax

import (
	"slices"

	"github.com/coregx/research/charclass"
	"github.com/coregx/research/internal/conv"
	"github.com/coregx/research/source"
)

// Options controls how a pattern is compiled.
type Options struct {
	// CaseSensitive disables ASCII case folding when true.
	CaseSensitive bool

	// POSIX selects the group syntax. When true, ( ) and | are operators and
	// \( \) \| are literals. When false it is the other way round, as in
	// traditional editor regular expressions.
	//
	// In POSIX mode negated bracket expressions never match '\n' or '\r'.
	POSIX bool

	// Words classifies word characters for \<, \>, \w and \W.
	// Nil means source.DefaultClassifier().
	Words source.Classifier
}

// Compile compiles pattern into a Program.
//
// On failure the returned error is a *CompileError and no program is
// returned.
func Compile(pattern string, opts Options) (*Program, error) {
	if opts.Words == nil {
		opts.Words = source.DefaultClassifier()
	}
	c := &compiler{
		pattern: pattern,
		opts:    opts,
		nextTag: 1,
		inst:    make([]Inst, 0, min(len(pattern)+1, MaxProgram)),
	}
	if err := c.alternation(0); err != nil {
		return nil, err
	}
	if c.pos < len(c.pattern) {
		// alternation only stops early at a group close.
		return nil, c.errorAt(ErrUnexpectedParen, c.pos, c.pos+c.tokenLen())
	}
	if err := c.emit(Inst{Op: OpEnd}, c.pos); err != nil {
		return nil, err
	}

	return &Program{
		Inst:          c.inst,
		NumTags:       c.nextTag,
		NumSlots:      c.slots,
		Anchored:      len(c.inst) > 0 && c.inst[0].Op == OpBOL,
		pattern:       pattern,
		caseSensitive: opts.CaseSensitive,
		posix:         opts.POSIX,
		words:         opts.Words,
	}, nil
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
func MustCompile(pattern string, opts Options) *Program {
	p, err := Compile(pattern, opts)
	if err != nil {
		panic("syntax: Compile(`" + pattern + "`): " + err.Error())
	}
	return p
}

// token kinds returned by compiler.peek.
type token uint8

const (
	tokEOF token = iota
	tokChar
	tokOpen
	tokClose
	tokAlt
)

// atom kinds, used to decide whether a quantifier may follow.
type atom uint8

const (
	atomNone     atom = iota // nothing yet in this sequence
	atomPlain                // char, any, class, group
	atomAnchor               // ^ $ \< \> and back references
	atomClosure              // an atom that already has a quantifier
	atomLazyDone             // a closure already marked lazy
)

type compiler struct {
	pattern string
	pos     int
	opts    Options
	inst    []Inst
	nextTag int
	closed  [MaxTag]bool
	slots   int

	// altStart is the pattern offset where the current alternative began and
	// afterAlt is true when that alternative follows an alternation operator.
	altStart int
	afterAlt bool
}

// peek classifies the token at c.pos without consuming it.
func (c *compiler) peek() token {
	if c.pos >= len(c.pattern) {
		return tokEOF
	}
	ch := c.pattern[c.pos]
	if c.opts.POSIX {
		switch ch {
		case '(':
			return tokOpen
		case ')':
			return tokClose
		case '|':
			return tokAlt
		}
		return tokChar
	}
	if ch == '\\' && c.pos+1 < len(c.pattern) {
		switch c.pattern[c.pos+1] {
		case '(':
			return tokOpen
		case ')':
			return tokClose
		case '|':
			return tokAlt
		}
	}
	return tokChar
}

// tokenLen returns the byte length of the group or alternation token at c.pos.
func (c *compiler) tokenLen() int {
	if c.opts.POSIX {
		return 1
	}
	return 2
}

// alternation compiles alternatives separated by the alternation operator
// until the end of the pattern or a group close, which it does not consume.
func (c *compiler) alternation(depth int) error {
	var jumps []int
	c.altStart, c.afterAlt = c.pos, false
	for {
		start := len(c.inst)
		if err := c.sequence(depth); err != nil {
			return err
		}
		if c.peek() != tokAlt {
			break
		}
		opPos := c.pos
		if err := c.insert(start, Inst{Op: OpAlt}, opPos); err != nil {
			return err
		}
		jumps = append(jumps, len(c.inst))
		if err := c.emit(Inst{Op: OpJump}, opPos); err != nil {
			return err
		}
		c.inst[start].Skip = conv.IntToUint16(len(c.inst) - start)

		c.pos += c.tokenLen()
		c.altStart, c.afterAlt = c.pos, true
	}
	for _, j := range jumps {
		c.inst[j].Skip = conv.IntToUint16(len(c.inst) - j)
	}
	return nil
}

// sequence compiles atoms and their quantifiers up to an alternation
// operator, a group close or the end of the pattern.
func (c *compiler) sequence(depth int) error {
	last := atomNone
	atomStart := len(c.inst)
	for {
		switch c.peek() {
		case tokEOF, tokAlt:
			return nil
		case tokClose:
			if depth == 0 {
				return c.errorAt(ErrUnexpectedParen, c.pos, c.pos+c.tokenLen())
			}
			return nil
		case tokOpen:
			atomStart = len(c.inst)
			if err := c.group(depth); err != nil {
				return err
			}
			last = atomPlain
			continue
		}

		ch := c.pattern[c.pos]
		if ch == '*' || ch == '+' || ch == '?' {
			var err error
			if last, err = c.quantifier(ch, last, atomStart); err != nil {
				return err
			}
			continue
		}

		atomStart = len(c.inst)
		kind, err := c.atom()
		if err != nil {
			return err
		}
		last = kind
	}
}

// quantifier applies *, + or ? at c.pos to the atom that starts at
// instruction atomStart.
func (c *compiler) quantifier(ch byte, last atom, atomStart int) (atom, error) {
	qpos := c.pos
	c.pos++
	switch last {
	case atomNone:
		return last, c.errorAt(ErrMissingRepeatArgument, qpos, qpos+1)
	case atomAnchor:
		return last, c.errorAt(ErrInvalidRepeatOperand, qpos, qpos+1)
	case atomClosure:
		// A ? right after a quantifier makes it lazy; anything else on an
		// already repeated atom is ignored.
		if ch == '?' {
			c.inst[atomStart].Lazy = true
			return atomLazyDone, nil
		}
		return last, nil
	case atomLazyDone:
		return last, nil
	}

	kind := Star
	switch ch {
	case '+':
		kind = Plus
	case '?':
		kind = Quest
	}
	head := Inst{Op: OpClosure, Kind: kind, Arg: conv.IntToUint16(c.slots)}
	if err := c.insert(atomStart, head, qpos); err != nil {
		return last, err
	}
	tail := len(c.inst)
	if err := c.emit(Inst{Op: OpRepeat, Skip: conv.IntToUint16(tail - atomStart)}, qpos); err != nil {
		return last, err
	}
	c.inst[atomStart].Skip = conv.IntToUint16(len(c.inst) - atomStart)
	c.slots++
	return atomClosure, nil
}

// group compiles a parenthesized subexpression as capture group.
func (c *compiler) group(depth int) error {
	open := c.pos
	if c.nextTag >= MaxTag {
		return c.errorAt(ErrTooManyGroups, open, open+c.tokenLen())
	}
	tag := c.nextTag
	c.nextTag++
	c.pos += c.tokenLen()

	if err := c.emit(Inst{Op: OpGroupStart, Arg: conv.IntToUint16(tag)}, open); err != nil {
		return err
	}
	if err := c.alternation(depth + 1); err != nil {
		return err
	}
	if c.peek() != tokClose {
		return c.errorAt(ErrMissingParen, open, len(c.pattern))
	}
	c.pos += c.tokenLen()
	if err := c.emit(Inst{Op: OpGroupEnd, Arg: conv.IntToUint16(tag)}, open); err != nil {
		return err
	}
	c.closed[tag] = true
	return nil
}

// atom compiles a single non-group atom at c.pos.
func (c *compiler) atom() (atom, error) {
	start := c.pos
	ch := c.pattern[c.pos]
	c.pos++

	switch ch {
	case '.':
		return atomPlain, c.emit(Inst{Op: OpAny}, start)
	case '[':
		return atomPlain, c.bracket(start)
	case '^':
		if start == c.altStart && (start == 0 || c.afterAlt) {
			return atomAnchor, c.emit(Inst{Op: OpBOL}, start)
		}
	case '$':
		if c.pos == len(c.pattern) {
			return atomAnchor, c.emit(Inst{Op: OpEOL}, start)
		}
	case '\\':
		return c.escape(start)
	}
	return atomPlain, c.literal(ch, start)
}

// escape compiles the backslash sequence starting at start.
func (c *compiler) escape(start int) (atom, error) {
	if c.pos >= len(c.pattern) {
		return atomNone, c.errorAt(ErrTrailingBackslash, start, len(c.pattern))
	}
	ch := c.pattern[c.pos]
	c.pos++

	switch {
	case ch == '<':
		return atomAnchor, c.emit(Inst{Op: OpBOW}, start)
	case ch == '>':
		return atomAnchor, c.emit(Inst{Op: OpEOW}, start)
	case '1' <= ch && ch <= '9':
		tag := int(ch - '0')
		if tag >= MaxTag || !c.closed[tag] {
			return atomNone, c.errorAt(ErrInvalidBackref, start, c.pos)
		}
		return atomAnchor, c.emit(Inst{Op: OpBackref, Arg: conv.IntToUint16(tag)}, start)
	}

	if set, ok := charclass.Shorthand(ch, c.opts.Words); ok {
		return atomPlain, c.emit(Inst{Op: OpClass, Set: set}, start)
	}
	lit, err := c.escapedByte(ch, start)
	if err != nil {
		return atomNone, err
	}
	return atomPlain, c.literal(lit, start)
}

// escapedByte resolves the escape \ch (ch already consumed) to a literal
// byte. Hex escapes consume their digits.
func (c *compiler) escapedByte(ch byte, start int) (byte, error) {
	switch ch {
	case 'a':
		return '\a', nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'v':
		return '\v', nil
	case 'x':
		v, n := 0, 0
		for n < 2 && c.pos < len(c.pattern) {
			d, ok := hexDigit(c.pattern[c.pos])
			if !ok {
				break
			}
			v = v<<4 | d
			c.pos++
			n++
		}
		if n == 0 {
			return 'x', nil
		}
		return conv.IntToUint8(v), nil
	}
	if isAlnum(ch) {
		return 0, c.errorAt(ErrInvalidEscape, start, c.pos)
	}
	return ch, nil
}

// bracket compiles a [...] expression; start is the offset of '['.
func (c *compiler) bracket(start int) error {
	fold := !c.opts.CaseSensitive
	var set charclass.Set
	negate := false
	if c.pos < len(c.pattern) && c.pattern[c.pos] == '^' {
		negate = true
		c.pos++
	}

	prev := -1 // last single byte added, -1 after a shorthand class
	if c.pos < len(c.pattern) && (c.pattern[c.pos] == ']' || c.pattern[c.pos] == '-') {
		prev = int(c.pattern[c.pos])
		set.Add(c.pattern[c.pos])
		c.pos++
	}

	for {
		if c.pos >= len(c.pattern) {
			return c.errorAt(ErrMissingBracket, start, len(c.pattern))
		}
		ch := c.pattern[c.pos]
		if ch == ']' {
			c.pos++
			break
		}

		if ch == '-' && prev >= 0 && c.pos+1 < len(c.pattern) && c.pattern[c.pos+1] != ']' {
			rangeStart := c.pos - 1
			c.pos++
			hi, isSet, err := c.classByte(&set, start)
			if err != nil {
				return err
			}
			if isSet {
				return c.errorAt(ErrInvalidRange, rangeStart, c.pos)
			}
			if err := set.AddRange(byte(prev), hi, fold); err != nil {
				return c.errorAt(ErrInvalidRange, rangeStart, c.pos)
			}
			prev = -1
			continue
		}

		b, isSet, err := c.classByte(&set, start)
		if err != nil {
			return err
		}
		if isSet {
			prev = -1
			continue
		}
		set.AddFold(b, fold)
		prev = int(b)
	}

	if negate {
		set.Negate()
		if c.opts.POSIX {
			set.Remove('\n')
			set.Remove('\r')
		}
	}
	if b, ok := set.Single(); ok {
		return c.emit(Inst{Op: OpChar, C: b}, start)
	}
	return c.emit(Inst{Op: OpClass, Set: set}, start)
}

// classByte reads one member of a bracket expression. Shorthand escapes are
// merged into set directly and reported with isSet=true.
func (c *compiler) classByte(set *charclass.Set, bracketStart int) (b byte, isSet bool, err error) {
	ch := c.pattern[c.pos]
	c.pos++
	if ch != '\\' {
		return ch, false, nil
	}
	if c.pos >= len(c.pattern) {
		return 0, false, c.errorAt(ErrMissingBracket, bracketStart, len(c.pattern))
	}
	escStart := c.pos - 1
	ch = c.pattern[c.pos]
	c.pos++
	if sh, ok := charclass.Shorthand(ch, c.opts.Words); ok {
		set.Union(sh)
		return 0, true, nil
	}
	b, err = c.escapedByte(ch, escStart)
	return b, false, err
}

// literal emits a match for ch, folding ASCII letters when the pattern is
// case-insensitive.
func (c *compiler) literal(ch byte, start int) error {
	if !c.opts.CaseSensitive {
		if _, ok := charclass.OtherCase(ch); ok {
			return c.emit(Inst{Op: OpChar, C: charclass.ToLower(ch), Fold: true}, start)
		}
	}
	return c.emit(Inst{Op: OpChar, C: ch}, start)
}

func (c *compiler) emit(inst Inst, at int) error {
	if len(c.inst) >= MaxProgram {
		return c.errorAt(ErrProgramTooLong, at, min(at+1, len(c.pattern)))
	}
	c.inst = append(c.inst, inst)
	return nil
}

// insert places inst at index i, shifting the instructions after it. All
// offsets in the program are relative and the shifted range is always a
// complete atom or alternative, so no offset needs fixing.
func (c *compiler) insert(i int, inst Inst, at int) error {
	if len(c.inst) >= MaxProgram {
		return c.errorAt(ErrProgramTooLong, at, min(at+1, len(c.pattern)))
	}
	c.inst = slices.Insert(c.inst, i, inst)
	return nil
}

func (c *compiler) errorAt(code error, from, to int) error {
	to = min(max(to, from), len(c.pattern))
	return &CompileError{
		Code:    code,
		Expr:    c.pattern[from:to],
		Pattern: c.pattern,
		Offset:  from,
	}
}

func hexDigit(ch byte) (int, bool) {
	switch {
	case '0' <= ch && ch <= '9':
		return int(ch - '0'), true
	case 'a' <= ch && ch <= 'f':
		return int(ch-'a') + 10, true
	case 'A' <= ch && ch <= 'F':
		return int(ch-'A') + 10, true
	}
	return 0, false
}

func isAlnum(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ('0' <= ch && ch <= '9')
}
