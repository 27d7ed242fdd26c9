// Package source defines the character source contract the regex engine runs
// against, together with adapters for the storage layouts a text editor
// typically uses.
//
// The engine never assumes contiguous memory. Every byte it inspects is pulled
// through Source.CharAt using an absolute position, so the same compiled
// program can search a plain byte slice, a gap buffer, a chunked rope or a
// memory-mapped file without copying the text first.
//
// Optional capabilities are discovered with type assertions, the same way
// io.WriterTo upgrades an io.Writer:
//   - Slicer exposes a zero-copy contiguous view of a range when the storage
//     happens to hold it contiguously. Prefilters use it to run bulk byte
//     searches instead of per-position CharAt calls.
//   - Lengther reports the total number of bytes.
//
// Word-boundary tests are delegated to a Classifier so that different
// encodings or word-character conventions can be plugged in without touching
// the matcher.
package source
