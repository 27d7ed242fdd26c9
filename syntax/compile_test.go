package syntax

import (
	"errors"
	"strings"
	"testing"
)

var posix = Options{CaseSensitive: true, POSIX: true}

func ops(p *Program) string {
	names := make([]string, len(p.Inst))
	for i := range p.Inst {
		names[i] = p.Inst[i].Op.String()
	}
	return strings.Join(names, " ")
}

func TestCompileStructure(t *testing.T) {
	tests := []struct {
		pattern string
		opts    Options
		want    string
	}{
		{"abc", posix, "char char char end"},
		{"a.c", posix, "char any char end"},
		{"a(b)*c", posix, "char closure group-start char group-end repeat char end"},
		{`a\(b\)*c`, Options{CaseSensitive: true}, "char closure group-start char group-end repeat char end"},
		{"a|b|c", posix, "alt char jump alt char jump char end"},
		{"(a|b)+", posix, "closure group-start alt char jump char group-end repeat end"},
		{"^foo$", posix, "bol char char char eol end"},
		{`\<w\>`, posix, "bow char eow end"},
		{`(a)\1`, posix, "group-start char group-end backref end"},
		{`[0-9]+`, posix, "closure class repeat end"},
		{`[x]`, posix, "char end"},
		{`\d\s\w`, posix, "class class class end"},
		{"", posix, "end"},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			p, err := Compile(tt.pattern, tt.opts)
			if err != nil {
				t.Fatalf("Compile(%q) error: %v", tt.pattern, err)
			}
			if got := ops(p); got != tt.want {
				t.Errorf("Compile(%q)\n got: %s\nwant: %s", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestProgramString(t *testing.T) {
	p := MustCompile("a(b)*c", posix)
	want := strings.Join([]string{
		"   0 char 'a'",
		"   1 closure * skip=5 slot=0",
		"   2 group-start 1",
		"   3 char 'b'",
		"   4 group-end 1",
		"   5 repeat -4",
		"   6 char 'c'",
		"   7 end",
		"",
	}, "\n")
	if got := p.String(); got != want {
		t.Errorf("String()\n got:\n%s\nwant:\n%s", got, want)
	}
	if p.NumTags != 2 || p.NumSlots != 1 {
		t.Errorf("NumTags=%d NumSlots=%d, want 2 and 1", p.NumTags, p.NumSlots)
	}
}

func TestAlternationOffsets(t *testing.T) {
	p := MustCompile("ab|c|", posix)
	// 0 alt +4, 1 a, 2 b, 3 jump +4, 4 alt +3, 5 c, 6 jump +1, 7 end
	checks := []struct {
		pc   int
		op   Op
		skip uint16
	}{
		{0, OpAlt, 4},
		{3, OpJump, 4},
		{4, OpAlt, 3},
		{6, OpJump, 1},
		{7, OpEnd, 0},
	}
	for _, c := range checks {
		in := p.Inst[c.pc]
		if in.Op != c.op || in.Skip != c.skip {
			t.Errorf("pc %d = %s, want %s +%d", c.pc, in.String(), c.op, c.skip)
		}
	}
}

func TestAnchorsAreLiteralsInTheMiddle(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"a^b", "char char char end"},
		{"a$b", "char char char end"},
		{"^^", "bol char end"},
		{"$$", "char eol end"},
		{"a|^b", "alt char jump bol char end"},
		{"(^a)", "group-start char char group-end end"},
		{`a\$`, "char char end"},
	}
	for _, tt := range tests {
		p, err := Compile(tt.pattern, posix)
		if err != nil {
			t.Fatalf("Compile(%q): %v", tt.pattern, err)
		}
		if got := ops(p); got != tt.want {
			t.Errorf("Compile(%q) = %s, want %s", tt.pattern, got, tt.want)
		}
	}

	p := MustCompile("a^b", posix)
	if p.Inst[1].C != '^' {
		t.Errorf("middle ^ compiled to %s", p.Inst[1].String())
	}
	if !MustCompile("^x", posix).Anchored || MustCompile("^x|y", posix).Anchored {
		t.Error("Anchored flag wrong")
	}
}

func TestGroupSyntaxPerMode(t *testing.T) {
	// In POSIX mode \( is a literal; in editor mode ( is.
	p := MustCompile(`\(a\)`, posix)
	if got := ops(p); got != "char char char end" {
		t.Errorf("POSIX \\(a\\) = %s", got)
	}
	p = MustCompile(`(a)|`, Options{CaseSensitive: true})
	if got := ops(p); got != "char char char char end" {
		t.Errorf("editor (a)| = %s", got)
	}
	p = MustCompile(`a\|b`, Options{CaseSensitive: true})
	if got := ops(p); got != "alt char jump char end" {
		t.Errorf(`editor a\|b = %s`, got)
	}
}

func TestQuantifiers(t *testing.T) {
	p := MustCompile("a*?", posix)
	if in := p.Inst[0]; in.Kind != Star || !in.Lazy {
		t.Errorf("a*? head = %s", in.String())
	}
	p = MustCompile("a??", posix)
	if in := p.Inst[0]; in.Kind != Quest || !in.Lazy {
		t.Errorf("a?? head = %s", in.String())
	}
	p = MustCompile("a+*", posix)
	if in := p.Inst[0]; in.Kind != Plus || in.Lazy || p.NumSlots != 1 {
		t.Errorf("a+* head = %s, slots %d", in.String(), p.NumSlots)
	}
	if Plus.Min() != 1 || Star.Min() != 0 || Quest.Min() != 0 {
		t.Error("Closure.Min wrong")
	}
}

func TestCaseInsensitive(t *testing.T) {
	opts := Options{POSIX: true}
	p := MustCompile("aB1", opts)
	if !p.Inst[0].Fold || p.Inst[1].C != 'b' || !p.Inst[1].Fold || p.Inst[2].Fold {
		t.Errorf("folded literals wrong:\n%s", p.String())
	}
	p = MustCompile("[a-z]", opts)
	for _, c := range []byte("aAzZ") {
		if !p.Inst[0].MatchByte(c) {
			t.Errorf("[a-z] case-insensitive does not match %q", c)
		}
	}
	if p.CaseSensitive() || !p.POSIX() || p.Pattern() != "[a-z]" {
		t.Error("program flags not recorded")
	}
}

func TestBracketExpressions(t *testing.T) {
	tests := []struct {
		pattern string
		opts    Options
		in      string
		out     string
	}{
		{"[]a]", posix, "]a", "b["},
		{"[^]a]", posix, "b", "]a"},
		{"[-a]", posix, "-a", "b"},
		{"[a-]", posix, "-a", "b"},
		{"[a-c-e]", posix, "abc-e", "d"},
		{`[\d_]`, posix, "05_", "a"},
		{`[\]]`, posix, "]", `\`},
		{`[\x41-\x43]`, posix, "ABC", "D"},
		{`[\n\t]`, posix, "\n\t", "nt"},
		{"[^a]", posix, "b", "a\n\r"},
		{"[^a]", Options{CaseSensitive: true}, "b\n\r", "a"},
		{"[^a]", Options{POSIX: true}, "b", "aA\n"},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			p, err := Compile(tt.pattern, tt.opts)
			if err != nil {
				t.Fatalf("Compile: %v", err)
			}
			in := &p.Inst[0]
			for i := 0; i < len(tt.in); i++ {
				if !in.MatchByte(tt.in[i]) {
					t.Errorf("%s does not match %q", in.String(), tt.in[i])
				}
			}
			for i := 0; i < len(tt.out); i++ {
				if in.MatchByte(tt.out[i]) {
					t.Errorf("%s matches %q", in.String(), tt.out[i])
				}
			}
		})
	}
}

func TestEscapes(t *testing.T) {
	tests := []struct {
		pattern string
		want    byte
	}{
		{`\n`, '\n'},
		{`\t`, '\t'},
		{`\b`, '\b'},
		{`\x41`, 'A'},
		{`\x7`, 7},
		{`\xg`, 'x'},
		{`\.`, '.'},
		{`\{`, '{'},
		{`\\`, '\\'},
	}
	for _, tt := range tests {
		p, err := Compile(tt.pattern, posix)
		if err != nil {
			t.Fatalf("Compile(%q): %v", tt.pattern, err)
		}
		if in := p.Inst[0]; in.Op != OpChar || in.C != tt.want {
			t.Errorf("Compile(%q) = %s, want char %q", tt.pattern, in.String(), tt.want)
		}
	}
	if p := MustCompile(`\xg`, posix); p.Len() != 3 {
		t.Errorf(`\xg compiled to %d instructions, want 3`, p.Len())
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		pattern string
		opts    Options
		code    error
		expr    string
	}{
		{`\(unterminated`, Options{CaseSensitive: true}, ErrMissingParen, `\(unterminated`},
		{"(a", posix, ErrMissingParen, "(a"},
		{"a)", posix, ErrUnexpectedParen, ")"},
		{`a\)`, Options{}, ErrUnexpectedParen, `\)`},
		{`a{\q`, posix, ErrInvalidEscape, `\q`},
		{`\0`, posix, ErrInvalidEscape, `\0`},
		{`[\q]`, posix, ErrInvalidEscape, `\q`},
		{`abc\`, posix, ErrTrailingBackslash, `\`},
		{"[abc", posix, ErrMissingBracket, "[abc"},
		{`[a\`, posix, ErrMissingBracket, `[a\`},
		{"[z-a]", posix, ErrInvalidRange, "z-a"},
		{`[a-\d]`, posix, ErrInvalidRange, `a-\d`},
		{"*a", posix, ErrMissingRepeatArgument, "*"},
		{"a|+", posix, ErrMissingRepeatArgument, "+"},
		{"(?)", posix, ErrMissingRepeatArgument, "?"},
		{"^*", posix, ErrInvalidRepeatOperand, "*"},
		{`\<+`, posix, ErrInvalidRepeatOperand, "+"},
		{`(a)\1*`, posix, ErrInvalidRepeatOperand, "*"},
		{`\1`, posix, ErrInvalidBackref, `\1`},
		{`(a\1)`, posix, ErrInvalidBackref, `\1`},
		{"(a)(b)(c)(d)(e)(f)(g)(h)(i)(j)", posix, ErrTooManyGroups, "("},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			p, err := Compile(tt.pattern, tt.opts)
			if p != nil {
				t.Fatalf("Compile(%q) returned a program alongside %v", tt.pattern, err)
			}
			var ce *CompileError
			if !errors.As(err, &ce) {
				t.Fatalf("Compile(%q) error = %v, want *CompileError", tt.pattern, err)
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %v, want %v", ce.Code, tt.code)
			}
			if ce.Expr != tt.expr {
				t.Errorf("Expr = %q, want %q", ce.Expr, tt.expr)
			}
			if ce.Pattern != tt.pattern {
				t.Errorf("Pattern = %q", ce.Pattern)
			}
		})
	}
}

func TestCompileErrorMessage(t *testing.T) {
	_, err := Compile(`a{\q`, posix)
	if got, want := err.Error(), "error parsing regexp: invalid escape sequence: `\\q`"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestNineGroupsCompile(t *testing.T) {
	p, err := Compile("(a)(b)(c)(d)(e)(f)(g)(h)(i)", posix)
	if err != nil {
		t.Fatal(err)
	}
	if p.NumTags != MaxTag {
		t.Errorf("NumTags = %d, want %d", p.NumTags, MaxTag)
	}
}

func TestProgramTooLong(t *testing.T) {
	if _, err := Compile(strings.Repeat("a", MaxProgram-1), posix); err != nil {
		t.Fatalf("pattern filling the program exactly failed: %v", err)
	}
	_, err := Compile(strings.Repeat("a", MaxProgram), posix)
	if !errors.Is(err, ErrProgramTooLong) {
		t.Fatalf("oversized pattern error = %v, want ErrProgramTooLong", err)
	}
	_, err = Compile(strings.Repeat("a", MaxProgram-2)+"*", posix)
	if !errors.Is(err, ErrProgramTooLong) {
		t.Fatalf("closure overflow error = %v, want ErrProgramTooLong", err)
	}
}

func TestDeterministic(t *testing.T) {
	const pattern = `^(foo|b[a-z]+)\>.*(\d+)?$`
	a := MustCompile(pattern, posix)
	b := MustCompile(pattern, posix)
	if a.String() != b.String() {
		t.Error("compiling the same pattern twice produced different programs")
	}
}

func TestValid(t *testing.T) {
	if !MustCompile("a", posix).Valid() {
		t.Error("compiled program not Valid")
	}
	var nilProg *Program
	if nilProg.Valid() || (&Program{}).Valid() {
		t.Error("empty program reported Valid")
	}
	if Op(200).String() != "op(200)" {
		t.Error("unknown op name")
	}
}
