package research

// expand appends template to dst, replacing \0 to \9 with group(n) and
// resolving the control escapes \a \b \f \n \r \t \v and \\. Any other
// backslash sequence, and a trailing backslash, is copied unchanged.
func expand(dst []byte, template string, group func(n int) string) []byte {
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '\\' || i+1 == len(template) {
			dst = append(dst, c)
			continue
		}
		i++
		c = template[i]
		switch c {
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			dst = append(dst, group(int(c-'0'))...)
		case 'a':
			dst = append(dst, '\a')
		case 'b':
			dst = append(dst, '\b')
		case 'f':
			dst = append(dst, '\f')
		case 'n':
			dst = append(dst, '\n')
		case 'r':
			dst = append(dst, '\r')
		case 't':
			dst = append(dst, '\t')
		case 'v':
			dst = append(dst, '\v')
		case '\\':
			dst = append(dst, '\\')
		default:
			dst = append(dst, '\\', c)
		}
	}
	return dst
}

// Expand appends template to dst with \0 to \9 replaced by the groups of m.
// It uses the same escapes as Searcher.Substitute.
func (m *Match) Expand(dst []byte, template string) []byte {
	return expand(dst, template, m.String)
}
