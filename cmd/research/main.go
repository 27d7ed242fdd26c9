// research - search files with editor-style regular expressions
//
// Files are memory-mapped and searched line by line without copying.
// Standard input is read into memory first.
package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/coregx/research"
	"github.com/coregx/research/source"
)

// version is set at build time via -ldflags.
var version = "dev"

const usage = `usage: research [flags] pattern [file ...]

Flags:
  -i          ignore ASCII case
  -posix      ( ) and | are operators, \( \) \| literals
  -o          print only the matched text
  -n          prefix lines with their line number
  -c          print only a count of matching lines
  -last       print only the last match in each file
  -dump       print the compiled program and exit
  -metrics    write engine metrics to stderr on exit
  -version    print the version and exit

Exit status is 0 if a line matched, 1 if none did and 2 on error.
`

// Exit codes.
const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

type options struct {
	ignoreCase  bool
	posix       bool
	onlyMatch   bool
	lineNumbers bool
	count       bool
	last        bool
	multiFile   bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("research", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }

	var opts options
	fs.BoolVar(&opts.ignoreCase, "i", false, "ignore ASCII case")
	fs.BoolVar(&opts.posix, "posix", false, "POSIX group syntax")
	fs.BoolVar(&opts.onlyMatch, "o", false, "print only the matched text")
	fs.BoolVar(&opts.lineNumbers, "n", false, "print line numbers")
	fs.BoolVar(&opts.count, "c", false, "print a count of matching lines")
	fs.BoolVar(&opts.last, "last", false, "print only the last match")
	dump := fs.Bool("dump", false, "print the compiled program")
	metrics := fs.Bool("metrics", false, "write metrics to stderr")
	showVersion := fs.Bool("version", false, "print the version")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitMatch
		}
		return exitError
	}

	if *showVersion {
		fmt.Fprintf(stdout, "research version %s\n", version)
		return exitMatch
	}
	if fs.NArg() == 0 {
		fmt.Fprint(stderr, usage)
		return exitError
	}
	if *metrics {
		defer research.WriteMetrics(stderr)
	}

	s, err := research.NewSearcher(nil, research.DefaultConfig())
	if err != nil {
		return errorf(stderr, "%v", err)
	}
	if err := s.Compile(fs.Arg(0), !opts.ignoreCase, opts.posix); err != nil {
		return errorf(stderr, "%v", err)
	}
	if *dump {
		fmt.Fprint(stdout, s.Regexp().Program().String())
		return exitMatch
	}

	out := bufio.NewWriter(stdout)
	defer out.Flush()

	files := fs.Args()[1:]
	opts.multiFile = len(files) > 1
	if len(files) == 0 {
		files = []string{"-"}
	}

	status := exitNoMatch
	for _, name := range files {
		matched, err := searchFile(out, stdin, s, name, opts)
		if err != nil {
			out.Flush()
			errorf(stderr, "%s: %v", name, err)
			status = exitError
			continue
		}
		if matched && status == exitNoMatch {
			status = exitMatch
		}
	}
	return status
}

func searchFile(w *bufio.Writer, stdin io.Reader, s *research.Searcher, name string, opts options) (bool, error) {
	var data []byte
	if name == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return false, err
		}
		data = b
	} else {
		f, err := source.OpenFile(name)
		if err != nil {
			return false, err
		}
		defer f.Close()
		data, _ = f.Slice(0, f.Len())
	}
	src := source.Bytes(data)

	label := ""
	if opts.multiFile {
		label = name + ":"
	}
	if opts.last {
		return printLast(w, s, src, label, opts)
	}

	re := s.Regexp()
	count := 0
	for lineno, start := 1, 0; start < len(data); lineno++ {
		end := lineEnd(data, start)
		ms, err := re.FindAll(src, start, end, matchLimit(opts))
		if err != nil {
			return count > 0, err
		}
		if len(ms) > 0 {
			count++
			if !opts.count {
				printLine(w, src, label, lineno, start, end, ms, opts)
			}
		}
		start = end + 1
	}
	if opts.count {
		fmt.Fprintf(w, "%s%d\n", label, count)
	}
	return count > 0, nil
}

func printLast(w *bufio.Writer, s *research.Searcher, src source.Bytes, label string, opts options) (bool, error) {
	ok, err := s.FindLast(src, 0, len(src))
	if err != nil || !ok {
		return false, err
	}
	if opts.count {
		fmt.Fprintf(w, "%s1\n", label)
		return true, nil
	}
	start := bytes.LastIndexByte(src[:s.Start(0)], '\n') + 1
	lineno := bytes.Count(src[:start], []byte{'\n'}) + 1
	if opts.lineNumbers {
		fmt.Fprintf(w, "%s%d:", label, lineno)
	} else {
		w.WriteString(label)
	}
	if opts.onlyMatch {
		s.GrabMatches(src)
		w.WriteString(s.Group(0))
	} else {
		w.Write(src[start:lineEnd(src, start)])
	}
	w.WriteByte('\n')
	return true, nil
}

func printLine(w *bufio.Writer, src source.Bytes, label string, lineno, start, end int, ms []*research.Match, opts options) {
	prefix := func() {
		w.WriteString(label)
		if opts.lineNumbers {
			fmt.Fprintf(w, "%d:", lineno)
		}
	}
	if !opts.onlyMatch {
		prefix()
		w.Write(src[start:end])
		w.WriteByte('\n')
		return
	}
	for _, m := range ms {
		if m.Len(0) == 0 {
			continue
		}
		prefix()
		w.Write(m.Bytes(0))
		w.WriteByte('\n')
	}
}

// matchLimit returns how many matches per line the output needs.
func matchLimit(opts options) int {
	if opts.onlyMatch && !opts.count {
		return -1
	}
	return 1
}

// lineEnd returns the position of the newline ending the line at start, or
// len(data) for the last line.
func lineEnd(data []byte, start int) int {
	if i := bytes.IndexByte(data[start:], '\n'); i >= 0 {
		return start + i
	}
	return len(data)
}

func errorf(w io.Writer, format string, args ...any) int {
	fmt.Fprintf(w, "research: "+format+"\n", args...)
	return exitError
}
