// Package ident implements the KDL identifier emitter (§4.5): given a Go
// string, decide whether it can be written as a bare identifier or must be
// quoted and escaped, and perform that escaping.
package ident

import (
	"strings"

	"github.com/kdl2/kdl2-go/internal/grammar"
)

// CanBeBare reports whether s can be emitted as a bare identifier: it is
// non-empty, every rune is an identifier char, it doesn't look number-like,
// and it isn't one of the reserved bare words.
func CanBeBare(s string) bool {
	if s == "" {
		return false
	}
	if grammar.LooksNumberLike(s) || grammar.IsReservedWord(s) {
		return false
	}
	for _, r := range s {
		if !grammar.IsIdentifierChar(r) {
			return false
		}
	}
	return true
}

// Append appends the KDL-identifier representation of s to b: a bare
// identifier when possible, otherwise a quoted, escaped string. It returns
// the extended buffer.
func Append(b []byte, s string) []byte {
	if CanBeBare(s) {
		return append(b, s...)
	}
	return AppendQuoted(b, s)
}

// String returns the KDL-identifier representation of s.
func String(s string) string {
	return string(Append(make([]byte, 0, len(s)+2), s))
}

// AppendQuoted appends the quoted, escaped string form of s to b,
// regardless of whether s could be written bare. Escapes follow §4.5: \n \r
// \t \\ \" are used for their corresponding characters, \b/\f for U+0008 and
// U+000C, and \u{hex} for any other non-printable rune.
func AppendQuoted(b []byte, s string) []byte {
	b = append(b, '"')
	for _, r := range s {
		switch r {
		case '\n':
			b = append(b, '\\', 'n')
		case '\r':
			b = append(b, '\\', 'r')
		case '\t':
			b = append(b, '\\', 't')
		case '\\':
			b = append(b, '\\', '\\')
		case '"':
			b = append(b, '\\', '"')
		case '\b':
			b = append(b, '\\', 'b')
		case '\f':
			b = append(b, '\\', 'f')
		default:
			if isPrintable(r) {
				b = append(b, string(r)...)
			} else {
				b = append(b, '\\', 'u', '{')
				b = appendHex(b, r)
				b = append(b, '}')
			}
		}
	}
	b = append(b, '"')
	return b
}

// isPrintable reports whether r should be emitted literally rather than as
// a \u{...} escape: not banned, and not a C0/C1 control character.
func isPrintable(r rune) bool {
	if grammar.IsBanned(r) {
		return false
	}
	if r < 0x20 || (r >= 0x7F && r <= 0x9F) {
		return false
	}
	return true
}

const hexDigits = "0123456789abcdef"

func appendHex(b []byte, r rune) []byte {
	if r == 0 {
		return append(b, '0')
	}
	var tmp [8]byte
	n := 0
	v := uint32(r)
	for v > 0 {
		tmp[n] = hexDigits[v&0xF]
		v >>= 4
		n++
	}
	for i := n - 1; i >= 0; i-- {
		b = append(b, tmp[i])
	}
	return b
}

// QuotedString returns the quoted, escaped string form of s.
func QuotedString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.Write(AppendQuoted(nil, s))
	return b.String()
}
