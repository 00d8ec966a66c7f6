package parser

// whitespaceRun scans the maximal run of spaces, tabs, and newlines
// starting at pos and reports its length. The caller decides whether
// the run is a GAP or an ACE (spec §3 glossary: a gap is "the
// mandatory multi-space or newline separator"; a lone space is ACE,
// the wide-form single-space separator).
func whitespaceRun(src []byte, pos int) int {
	n := 0
	for pos+n < len(src) {
		switch src[pos+n] {
		case ' ', '\t', '\n':
			n++
		default:
			return n
		}
	}
	return n
}

// containsNewline reports whether src[pos:pos+n] contains a newline.
func containsNewline(src []byte, pos, n int) bool {
	for i := 0; i < n; i++ {
		if src[pos+i] == '\n' {
			return true
		}
	}
	return false
}

// isTermByte reports whether b can appear inside a TERM atom: letters,
// digits, and the handful of punctuation characters that name atoms in
// the language (% for cell-tagged atoms, '-' and '.' and '_' for
// compound names) but none of the rune-glyph punctuation.
func isTermByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '%' || b == '_':
		return true
	case b == '-' || b == '.':
		return true
	default:
		return false
	}
}

// termRun scans the maximal run of TERM bytes starting at pos.
func termRun(src []byte, pos int) int {
	n := 0
	for pos+n < len(src) && isTermByte(src[pos+n]) {
		n++
	}
	return n
}
