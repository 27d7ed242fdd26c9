// Package research is a backtracking regular expression engine for editors.
//
// Patterns are compiled once into a compact bounded program and executed many
// times against windows of a random-access text source. The text is never
// copied or materialized: the engine reads it one byte at a time through
// [source.Source], so gap buffers, piece tables and memory-mapped files can be
// searched in place.
//
// Basic usage:
//
//	re, err := research.Compile(`\<[a-z]+(ing)\>`, true, true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m, err := re.Execute(source.String("nothing is missing"), 0, 18)
//	if err == nil && m != nil {
//	    fmt.Println(m.String(0), m.String(1)) // nothing ing
//	}
//
// Two syntaxes are supported. In POSIX mode ( ) and | are operators; in the
// traditional editor mode they are literals and \( \) \| are the operators.
// Both modes support . [...] [^...] * + ? (with lazy *? +? ??), ^ and $ at the
// ends of the pattern, \< \> word boundaries, \1 to \9 back references, the
// shorthand classes \d \D \s \S \w \W and the escapes \a \b \f \n \r \t \v
// and \xHH. At most nine capture groups are allowed.
//
// Matching is leftmost-first. Case-insensitive matching folds ASCII letters
// only.
//
// A [Searcher] keeps the state of one search engine instance the way an
// editor does: the compiled program, the tags of the last match, the grabbed
// group strings and a cache of recently compiled patterns.
package research
