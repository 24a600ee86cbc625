// Package grammar implements the position-threaded recursive-descent
// recognizer for the complete KDL v2 lexical and syntactic grammar (§4.2 of
// the specification). All recognizer functions take the input buffer and a
// byte position and return either an advanced position plus a value, or an
// error; none of them mutate shared state, so independent Engines over
// different inputs never interfere with one another.
package grammar

// IsBanned reports whether r is one of the KDL-banned code points (§4.2.1):
// disallowed everywhere in content, including inside comments and strings.
func IsBanned(r rune) bool {
	switch {
	case r >= 0x0000 && r <= 0x0008:
		return true
	case r >= 0x000E && r <= 0x001F:
		return true
	case r == 0x007F:
		return true
	case r == 0x200E || r == 0x200F:
		return true
	case r >= 0x202A && r <= 0x202E:
		return true
	case r >= 0x2066 && r <= 0x2069:
		return true
	case r == 0xFEFF:
		return true
	default:
		return false
	}
}

// IsUnicodeSpace reports whether r is a KDL unicode-space character
// (§4.2.1). This excludes newlines, which are classified separately.
func IsUnicodeSpace(r rune) bool {
	switch r {
	case 0x0009, 0x0020, 0x00A0, 0x1680,
		0x2000, 0x2001, 0x2002, 0x2003, 0x2004, 0x2005, 0x2006, 0x2007, 0x2008, 0x2009, 0x200A,
		0x202F, 0x205F, 0x3000:
		return true
	default:
		return false
	}
}

// IsNewline reports whether r is a KDL newline character (§4.2.1). CRLF is
// handled by the caller as a single logical newline; this only classifies
// individual code points.
func IsNewline(r rune) bool {
	switch r {
	case 0x000A, 0x000B, 0x000C, 0x000D, 0x0085, 0x2028, 0x2029:
		return true
	default:
		return false
	}
}

// isReservedPunct reports whether r is ASCII punctuation that can never
// appear in an identifier char, regardless of banned/space/newline status
// (§4.2.1).
func isReservedPunct(r rune) bool {
	switch r {
	case '\\', '/', '(', ')', '{', '}', ';', '[', ']', '"', '#', '=':
		return true
	default:
		return false
	}
}

// IsIdentifierChar reports whether r may appear in a bare identifier: not
// banned, not a space, not a newline, and not one of the reserved
// punctuation characters (§4.2.1).
func IsIdentifierChar(r rune) bool {
	if IsBanned(r) || IsUnicodeSpace(r) || IsNewline(r) {
		return false
	}
	return !isReservedPunct(r)
}

// reservedWords are the bare words that are syntax errors when they'd
// otherwise parse as a bare identifier-string (§4.2.4); they must be
// spelled with a leading #.
var reservedWords = map[string]bool{
	"inf":   true,
	"-inf":  true,
	"nan":   true,
	"true":  true,
	"false": true,
	"null":  true,
}

// IsReservedWord reports whether s is a reserved bare word that cannot be
// used as a plain identifier-string.
func IsReservedWord(s string) bool {
	return reservedWords[s]
}

// LooksNumberLike reports whether s, if it were a bare identifier-string,
// would instead be rejected for looking like a number: an optional sign, an
// optional '.', followed by an ASCII digit (§4.2.4).
func LooksNumberLike(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
	}
	return i < len(s) && s[i] >= '0' && s[i] <= '9'
}
