package literal

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func lit(s string, complete bool) Literal {
	return NewLiteral([]byte(s), complete)
}

func TestSeqBasics(t *testing.T) {
	var nilSeq *Seq
	if nilSeq.Len() != 0 || !nilSeq.IsEmpty() || nilSeq.Clone() != nil || nilSeq.Literals() != nil {
		t.Error("nil Seq not empty")
	}

	seq := NewSeq(lit("hello", true), lit("hi", false))
	if seq.Len() != 2 || seq.IsEmpty() {
		t.Fatalf("Len = %d", seq.Len())
	}
	if got := seq.Get(1).String(); got != "literal{hi, complete=false}" {
		t.Errorf("String() = %s", got)
	}
	if seq.MinLen() != 2 || seq.AllComplete() {
		t.Errorf("MinLen = %d, AllComplete = %v", seq.MinLen(), seq.AllComplete())
	}
	if !NewSeq(lit("a", true)).AllComplete() || NewSeq().AllComplete() {
		t.Error("AllComplete wrong")
	}
}

func TestSeqClone(t *testing.T) {
	orig := NewSeq(lit("test", true))
	clone := orig.Clone()
	clone.Get(0).Bytes[0] = 'X'
	if string(orig.Get(0).Bytes) != "test" {
		t.Errorf("Clone shares storage: %s", orig.Get(0).Bytes)
	}
}

func TestMinimize(t *testing.T) {
	tests := []struct {
		name string
		in   []Literal
		want []Literal
	}{
		{
			name: "prefix covers longer",
			in:   []Literal{lit("foobar", true), lit("foo", true)},
			want: []Literal{lit("foo", false)},
		},
		{
			name: "disjoint",
			in:   []Literal{lit("hello", true), lit("world", true)},
			want: []Literal{lit("hello", true), lit("world", true)},
		},
		{
			name: "duplicates",
			in:   []Literal{lit("ab", true), lit("ab", true)},
			want: []Literal{lit("ab", true)},
		},
		{
			name: "shortest first",
			in:   []Literal{lit("xyz", true), lit("ab", true), lit("abc", true)},
			want: []Literal{lit("ab", false), lit("xyz", true)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := NewSeq(tt.in...)
			seq.Minimize()
			if diff := cmp.Diff(tt.want, seq.literals); diff != "" {
				t.Errorf("Minimize mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLongestCommonPrefix(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{[]string{"hello", "help", "hero"}, "he"},
		{[]string{"abc", "def"}, ""},
		{[]string{"same"}, "same"},
		{nil, ""},
	}
	for _, tt := range tests {
		lits := make([]Literal, len(tt.in))
		for i, s := range tt.in {
			lits[i] = lit(s, true)
		}
		if got := string(NewSeq(lits...).LongestCommonPrefix()); got != tt.want {
			t.Errorf("LongestCommonPrefix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
