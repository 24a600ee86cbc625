package number

import (
	"strconv"
	"strings"
)

// parseNumber implements §4.2.6: optional sign, optional 0b/0o/0x prefix
// with underscore-separated digits, or decimal with optional fraction and
// exponent. Non-decimal radixes never produce floats.
func parseNumber(text string) (Number, error) {
	if text == "" {
		return Number{}, ErrBadSyntax
	}

	neg := false
	rest := text
	switch rest[0] {
	case '+':
		rest = rest[1:]
	case '-':
		neg = true
		rest = rest[1:]
	}
	if rest == "" {
		return Number{}, ErrBadSyntax
	}

	if len(rest) >= 2 && rest[0] == '0' && (rest[1] == 'b' || rest[1] == 'o' || rest[1] == 'x') {
		return parseRadix(rest[2:], rest[1], neg)
	}

	return parseDecimal(rest, neg)
}

func digitValue(c byte, base int) (int, bool) {
	var v int
	switch {
	case c >= '0' && c <= '9':
		v = int(c - '0')
	case c >= 'a' && c <= 'f':
		v = int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		v = int(c-'A') + 10
	default:
		return 0, false
	}
	if v >= base {
		return 0, false
	}
	return v, true
}

// stripUnderscores validates underscore placement (not leading, not doubled
// at the leading position, but allowed after at least one digit) and
// returns the digits with underscores removed.
func stripUnderscores(s string, base int) (string, bool) {
	if s == "" {
		return "", false
	}
	var b strings.Builder
	b.Grow(len(s))
	sawDigit := false
	lastWasUnderscore := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' {
			if !sawDigit || lastWasUnderscore {
				return "", false
			}
			lastWasUnderscore = true
			continue
		}
		if _, ok := digitValue(c, base); !ok {
			return "", false
		}
		b.WriteByte(c)
		sawDigit = true
		lastWasUnderscore = false
	}
	if !sawDigit || lastWasUnderscore {
		return "", false
	}
	return b.String(), true
}

func parseRadix(digits string, radix byte, neg bool) (Number, error) {
	base := 16
	switch radix {
	case 'b':
		base = 2
	case 'o':
		base = 8
	case 'x':
		base = 16
	}

	clean, ok := stripUnderscores(digits, base)
	if !ok {
		return Number{}, ErrBadSyntax
	}

	if !neg {
		if v, err := strconv.ParseUint(clean, base, 64); err == nil {
			return FromUint64(v), nil
		}
	}
	if v, err := strconv.ParseInt(clean, base, 64); err == nil {
		if neg {
			v = -v
		}
		return FromInt64(v), nil
	} else if neg {
		// try the unsigned path negated, for values like -0x8000000000000000
		if uv, uerr := strconv.ParseUint(clean, base, 64); uerr == nil {
			return FromInt64(-int64(uv)), nil
		}
	}
	return Number{}, ErrBadSyntax
}

func parseDecimal(s string, neg bool) (Number, error) {
	if s == "" {
		return Number{}, ErrBadSyntax
	}

	intPart, fracPart, expPart, isFloat, ok := splitDecimal(s)
	if !ok {
		return Number{}, ErrBadSyntax
	}

	cleanInt, ok := stripUnderscores(intPart, 10)
	if !ok {
		return Number{}, ErrBadSyntax
	}

	if !isFloat {
		if !neg {
			if v, err := strconv.ParseUint(cleanInt, 10, 64); err == nil {
				return FromUint64(v), nil
			}
		}
		if v, err := strconv.ParseInt(cleanInt, 10, 64); err == nil {
			if neg {
				v = -v
			}
			return FromInt64(v), nil
		} else if neg {
			// try the unsigned path negated, for values like -9223372036854775808
			if uv, uerr := strconv.ParseUint(cleanInt, 10, 64); uerr == nil {
				return FromInt64(-int64(uv)), nil
			}
		}
		// fall through to float for out-of-int64-range decimal integers
	}

	full := cleanInt
	if fracPart != "" {
		cleanFrac, ok := stripUnderscores(fracPart, 10)
		if !ok {
			return Number{}, ErrBadSyntax
		}
		full += "." + cleanFrac
	}
	if expPart != "" {
		expSign := ""
		e := expPart
		if e[0] == '+' || e[0] == '-' {
			expSign = string(e[0])
			e = e[1:]
		}
		cleanExp, ok := stripUnderscores(e, 10)
		if !ok {
			return Number{}, ErrBadSyntax
		}
		full += "e" + expSign + cleanExp
	}
	if neg {
		full = "-" + full
	}

	f, err := strconv.ParseFloat(full, 64)
	if err != nil {
		// strconv reports ErrRange only for subnormal/overflow; overflow to
		// +/-Inf is explicitly permitted by the spec, so only a genuine
		// syntax error remains a failure.
		if ne, isNum := err.(*strconv.NumError); isNum && ne.Err == strconv.ErrRange {
			return FromFloat64(f), nil
		}
		return Number{}, ErrBadSyntax
	}
	return FromFloat64(f), nil
}

// splitDecimal splits a decimal literal (without sign) into integer,
// fractional, and exponent parts, validating that at most one '.' and one
// exponent marker are present and that a '.' is always surrounded by
// digits.
func splitDecimal(s string) (intPart, fracPart, expPart string, isFloat bool, ok bool) {
	dot := strings.IndexByte(s, '.')
	eIdx := -1
	for i := 0; i < len(s); i++ {
		if s[i] == 'e' || s[i] == 'E' {
			if eIdx != -1 {
				return "", "", "", false, false
			}
			eIdx = i
		}
	}

	body := s
	if eIdx != -1 {
		body = s[:eIdx]
		expPart = s[eIdx+1:]
		if expPart == "" {
			return "", "", "", false, false
		}
		isFloat = true
	}

	if dot != -1 {
		if eIdx != -1 && dot > eIdx {
			return "", "", "", false, false
		}
		intPart = body[:dot]
		fracPart = body[dot+1:]
		if intPart == "" || fracPart == "" {
			return "", "", "", false, false
		}
		isFloat = true
	} else {
		intPart = body
		if intPart == "" {
			return "", "", "", false, false
		}
	}

	return intPart, fracPart, expPart, isFloat, true
}
