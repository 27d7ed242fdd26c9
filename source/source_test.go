package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// readAll pulls every byte of src through CharAt.
func readAll(src Source, n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte(src.CharAt(i))
	}
	return sb.String()
}

func TestAdaptersAgree(t *testing.T) {
	const text = "first line\nsecond line\r\nthird"

	gb := NewGapBuffer([]byte(text))
	gb.Insert(5, []byte("XYZ"))
	gb.Delete(5, 3)

	sources := map[string]Source{
		"bytes":   Bytes(text),
		"string":  String(text),
		"gap":     gb,
		"chunks1": ChunksFromString(text, 1),
		"chunks7": ChunksFromString(text, 7),
		"chunksD": ChunksFromString(text, 0),
	}
	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			if got := Len(src); got != len(text) {
				t.Fatalf("Len = %d, want %d", got, len(text))
			}
			if got := readAll(src, len(text)); got != text {
				t.Errorf("CharAt walk = %q, want %q", got, text)
			}
			if got := string(Copy(nil, src, 6, 15)); got != text[6:15] {
				t.Errorf("Copy(6, 15) = %q, want %q", got, text[6:15])
			}
		})
	}
}

func TestLenUnknown(t *testing.T) {
	src := struct{ Source }{Bytes("abc")}
	if got := Len(src); got != -1 {
		t.Errorf("Len of a plain Source = %d, want -1", got)
	}
}

func TestGapBufferEdits(t *testing.T) {
	gb := NewGapBuffer([]byte("hello world"))

	gb.Insert(0, []byte(">> "))
	gb.Insert(gb.Len(), []byte("!"))
	gb.Delete(8, 6) // " world"
	gb.Insert(8, []byte(strings.Repeat("-", 200)))

	want := ">> hello" + strings.Repeat("-", 200) + "!"
	if got := gb.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if got := readAll(gb, gb.Len()); got != want {
		t.Fatalf("CharAt walk = %q, want %q", got, want)
	}
	if gb.GapPosition() != 208 {
		t.Errorf("GapPosition() = %d, want 208", gb.GapPosition())
	}
}

func TestGapBufferSlice(t *testing.T) {
	gb := NewGapBuffer([]byte("abcdefgh"))
	gb.Insert(4, []byte("XY")) // gap now sits after "abcdXY"

	tests := []struct {
		start, end int
		want       string
		ok         bool
	}{
		{0, 6, "abcdXY", true},
		{6, 10, "efgh", true},
		{5, 7, "", false}, // straddles the gap
		{3, 20, "", false},
	}
	for _, tt := range tests {
		b, ok := gb.Slice(tt.start, tt.end)
		if ok != tt.ok || string(b) != tt.want {
			t.Errorf("Slice(%d, %d) = %q, %v; want %q, %v", tt.start, tt.end, b, ok, tt.want, tt.ok)
		}
	}
}

func TestGapBufferPanics(t *testing.T) {
	gb := NewGapBuffer([]byte("abc"))
	for name, fn := range map[string]func(){
		"insert": func() { gb.Insert(4, []byte("x")) },
		"delete": func() { gb.Delete(2, 2) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s out of range did not panic", name)
				}
			}()
			fn()
		})
	}
}

func TestChunksSlice(t *testing.T) {
	c := NewChunks([]byte("abc"), nil, []byte("defg"), []byte("h"))
	if c.NumChunks() != 3 {
		t.Fatalf("NumChunks() = %d, want 3", c.NumChunks())
	}
	if b, ok := c.Slice(3, 6); !ok || string(b) != "def" {
		t.Errorf("Slice(3, 6) = %q, %v; want \"def\", true", b, ok)
	}
	if _, ok := c.Slice(2, 4); ok {
		t.Error("Slice(2, 4) across chunks should not be contiguous")
	}
	if b, ok := c.Slice(5, 5); !ok || len(b) != 0 {
		t.Errorf("empty Slice = %q, %v", b, ok)
	}
}

func TestOpenFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "doc.txt")
	const text = "mapped\ncontent\n"
	if err := os.WriteFile(name, []byte(text), 0o600); err != nil {
		t.Fatal(err)
	}

	f, err := OpenFile(name)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if f.Name() != name || f.Len() != len(text) {
		t.Fatalf("Name/Len = %q/%d", f.Name(), f.Len())
	}
	if got := readAll(f, f.Len()); got != text {
		t.Errorf("content = %q, want %q", got, text)
	}
	if b, ok := f.Slice(7, 14); !ok || string(b) != "content" {
		t.Errorf("Slice(7, 14) = %q, %v", b, ok)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := f.Close(); err != ErrClosed {
		t.Errorf("second Close = %v, want ErrClosed", err)
	}
}

func TestOpenEmptyFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(name, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	f, err := OpenFile(name)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()
	if f.Len() != 0 {
		t.Errorf("Len() = %d, want 0", f.Len())
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := OpenFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("OpenFile of a missing file succeeded")
	}
}
