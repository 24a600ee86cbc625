package grammar

import "unicode/utf8"

// decodeRune decodes the rune at pos, returning size 0 at EOF. Invalid
// UTF-8 decodes as the replacement character U+FFFD with size 1; U+FFFD is
// neither banned nor reserved, so invalid bytes are not rejected by the
// recognizers.
func decodeRune(input string, pos int) (rune, int) {
	if pos >= len(input) {
		return 0, 0
	}
	r, size := utf8.DecodeRuneInString(input[pos:])
	return r, size
}

// skipBOM consumes a single leading U+FEFF byte-order mark, if present,
// and returns the position immediately after it (§4.2.9).
func skipBOM(input string) int {
	if r, size := decodeRune(input, 0); r == 0xFEFF {
		return size
	}
	return 0
}

// checkNotBanned returns a BannedChar error if r is a banned code point.
func checkNotBanned(r rune, pos int) error {
	if IsBanned(r) {
		return errf(BannedChar, pos, "banned code point U+%04X", r)
	}
	return nil
}

// skipUnicodeSpaceRun consumes a maximal run of unicode-space characters
// (not newlines), stopping at the first other rune. Its error result is
// always nil.
func skipUnicodeSpaceRun(input string, pos int) (int, error) {
	for {
		r, size := decodeRune(input, pos)
		if size == 0 || !IsUnicodeSpace(r) {
			return pos, nil
		}
		pos += size
	}
}

// isCRLF reports whether input[pos:] begins with CR LF, which counts as a
// single newline.
func isCRLF(input string, pos int) bool {
	return pos < len(input) && input[pos] == '\r' && pos+1 < len(input) && input[pos+1] == '\n'
}

// skipOneNewline consumes exactly one newline (CRLF counts as one) at pos
// and reports whether a newline was present.
func skipOneNewline(input string, pos int) (newPos int, ok bool) {
	if isCRLF(input, pos) {
		return pos + 2, true
	}
	r, size := decodeRune(input, pos)
	if size > 0 && IsNewline(r) {
		return pos + size, true
	}
	return pos, false
}

// singleLineComment consumes a `//` comment starting at pos (which must
// point at the first '/'), stopping before the terminating newline or at
// EOF.
func singleLineComment(input string, pos int) (int, error) {
	pos += 2 // "//"
	for {
		r, size := decodeRune(input, pos)
		if size == 0 {
			return pos, nil
		}
		if IsNewline(r) {
			return pos, nil
		}
		if err := checkNotBanned(r, pos); err != nil {
			return pos, err
		}
		pos += size
	}
}

// multiLineComment consumes a `/*`-delimited comment starting at pos
// (pointing at the first '/'), supporting arbitrary nesting, up to and
// including its matching `*/`.
func multiLineComment(input string, pos int) (int, error) {
	start := pos
	pos += 2 // "/*"
	depth := 1
	for depth > 0 {
		r, size := decodeRune(input, pos)
		if size == 0 {
			return pos, errf(UnexpectedEof, pos, "unterminated block comment starting at %d", start)
		}
		if r == '/' && pos+1 < len(input) && input[pos+1] == '*' {
			depth++
			pos += 2
			continue
		}
		if r == '*' && pos+1 < len(input) && input[pos+1] == '/' {
			depth--
			pos += 2
			continue
		}
		if err := checkNotBanned(r, pos); err != nil {
			return pos, err
		}
		pos += size
	}
	return pos, nil
}

// escline consumes a line continuation starting at pos (pointing at '\'):
// zero or more spaces and multi-line comments, then a single-line comment,
// a newline, or EOF.
func escline(input string, pos int) (int, error) {
	start := pos
	pos++ // '\'
	for {
		p, err := skipUnicodeSpaceRun(input, pos)
		if err != nil {
			return pos, err
		}
		pos = p
		np, found, err := tryMultilineCommentOnly(input, pos)
		if err != nil {
			return pos, err
		}
		if !found {
			break
		}
		pos = np
	}

	if p, found, err := trySingleLineCommentOnly(input, pos); err != nil {
		return pos, err
	} else if found {
		return p, nil
	}
	if p, ok := skipOneNewline(input, pos); ok {
		return p, nil
	}
	if pos >= len(input) {
		return pos, nil
	}
	return pos, errf(ExpectedComment, start, "malformed line continuation")
}

func tryMultilineCommentOnly(input string, pos int) (int, bool, error) {
	if pos+1 < len(input) && input[pos] == '/' && input[pos+1] == '*' {
		p, err := multiLineComment(input, pos)
		return p, true, err
	}
	return pos, false, nil
}

func trySingleLineCommentOnly(input string, pos int) (int, bool, error) {
	if pos+1 < len(input) && input[pos] == '/' && input[pos+1] == '/' {
		p, err := singleLineComment(input, pos)
		return p, true, err
	}
	return pos, false, nil
}

// nodeSpace consumes zero or more node-space atoms: unicode-space runs,
// esclines, and multi-line comments, all on a single logical line. It
// reports whether at least one atom was consumed.
func nodeSpace(input string, pos int) (newPos int, consumedAny bool, err error) {
	for {
		p, err := skipUnicodeSpaceRun(input, pos)
		if err != nil {
			return pos, consumedAny, err
		}
		if p != pos {
			consumedAny = true
			pos = p
			continue
		}

		if pos < len(input) && input[pos] == '\\' {
			p, err := escline(input, pos)
			if err != nil {
				return pos, consumedAny, err
			}
			consumedAny = true
			pos = p
			continue
		}

		if p, found, err := tryMultilineCommentOnly(input, pos); err != nil {
			return pos, consumedAny, err
		} else if found {
			consumedAny = true
			pos = p
			continue
		}

		return pos, consumedAny, nil
	}
}

// lineSpace consumes node-space atoms plus newlines and single-line
// comments, looped until none match.
func lineSpace(input string, pos int) (int, error) {
	for {
		p, _, err := nodeSpace(input, pos)
		if err != nil {
			return pos, err
		}
		pos = p

		if p, ok := skipOneNewline(input, pos); ok {
			pos = p
			continue
		}
		if p, found, err := trySingleLineCommentOnly(input, pos); err != nil {
			return pos, err
		} else if found {
			pos = p
			continue
		}
		return pos, nil
	}
}
