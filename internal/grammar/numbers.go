package grammar

import (
	"github.com/kdl2/kdl2-go/number"
)

// isNumberStart reports whether r can begin a number token: a digit, or a
// sign immediately followed by a digit.
func isNumberStart(input string, pos int) bool {
	r, size := decodeRune(input, pos)
	if size == 0 {
		return false
	}
	if r >= '0' && r <= '9' {
		return true
	}
	if r == '+' || r == '-' {
		r2, size2 := decodeRune(input, pos+size)
		return size2 > 0 && r2 >= '0' && r2 <= '9'
	}
	return false
}

func isRadixDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return int(c-'0') < base
	case c >= 'a' && c <= 'f':
		return int(c-'a')+10 < base
	case c >= 'A' && c <= 'F':
		return int(c-'A')+10 < base
	default:
		return false
	}
}

// scanDigitsAndUnderscores consumes a run of radix digits and underscores
// and reports whether at least one digit was seen.
func scanDigitsAndUnderscores(input string, pos int, base int) (newPos int, sawDigit bool) {
	for pos < len(input) {
		c := input[pos]
		if c == '_' {
			pos++
			continue
		}
		if !isRadixDigit(c, base) {
			break
		}
		sawDigit = true
		pos++
	}
	return pos, sawDigit
}

// numberLiteral scans a number token starting at pos and returns the
// parsed Number, per §4.2.6. It does not validate underscore placement in
// detail; number.Parse performs the strict validation on the resulting
// span.
func numberLiteral(input string, pos int) (newPos int, n number.Number, err error) {
	start := pos
	if pos < len(input) && (input[pos] == '+' || input[pos] == '-') {
		pos++
	}

	if pos+1 < len(input) && input[pos] == '0' && (input[pos+1] == 'b' || input[pos+1] == 'o' || input[pos+1] == 'x') {
		base := 16
		switch input[pos+1] {
		case 'b':
			base = 2
		case 'o':
			base = 8
		}
		pos += 2
		p, sawDigit := scanDigitsAndUnderscores(input, pos, base)
		if !sawDigit {
			return p, number.Number{}, errf(InvalidNumber, start, "missing digits after radix prefix")
		}
		pos = p
	} else {
		p, sawDigit := scanDigitsAndUnderscores(input, pos, 10)
		if !sawDigit {
			return p, number.Number{}, errf(InvalidNumber, start, "missing digits")
		}
		pos = p

		if pos < len(input) && input[pos] == '.' {
			pos++
			p, sawFrac := scanDigitsAndUnderscores(input, pos, 10)
			if !sawFrac {
				return p, number.Number{}, errf(InvalidNumber, start, "missing digits after decimal point")
			}
			pos = p
		}

		if pos < len(input) && (input[pos] == 'e' || input[pos] == 'E') {
			pos++
			if pos < len(input) && (input[pos] == '+' || input[pos] == '-') {
				pos++
			}
			p, sawExp := scanDigitsAndUnderscores(input, pos, 10)
			if !sawExp {
				return p, number.Number{}, errf(InvalidNumber, start, "missing digits in exponent")
			}
			pos = p
		}
	}

	if r, size := decodeRune(input, pos); size > 0 && IsIdentifierChar(r) {
		return pos, number.Number{}, errf(InvalidNumber, start, "unexpected trailing characters after number")
	}

	n, perr := number.Parse(input[start:pos])
	if perr != nil {
		return pos, number.Number{}, errf(InvalidNumber, start, "%v", perr)
	}
	return pos, n, nil
}
