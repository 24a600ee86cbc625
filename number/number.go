// Package number implements the KDL v2 numeric value model: a sum of
// unsigned, signed, and floating-point 64-bit representations with
// spec-defined equality, hashing, display, and parsing.
package number

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies which variant a Number holds.
type Kind uint8

const (
	// Unsigned holds a uint64.
	Unsigned Kind = iota
	// Signed holds an int64.
	Signed
	// Float holds a float64.
	Float
)

func (k Kind) String() string {
	switch k {
	case Unsigned:
		return "unsigned"
	case Signed:
		return "signed"
	case Float:
		return "float"
	default:
		return "invalid"
	}
}

// ErrOutOfRange is returned when a Number's variant cannot represent the
// requested target type exactly.
var ErrOutOfRange = errors.New("number: out of range")

// ErrBadSyntax is returned by Parse when the input is not a valid KDL number.
var ErrBadSyntax = errors.New("number: bad syntax")

// Number is a tagged numeric value holding exactly one of an unsigned
// 64-bit integer, a signed 64-bit integer, or a 64-bit float.
type Number struct {
	kind Kind
	u    uint64
	i    int64
	f    float64
}

// FromUint64 constructs an unsigned Number.
func FromUint64(v uint64) Number { return Number{kind: Unsigned, u: v} }

// FromInt64 constructs a signed Number.
func FromInt64(v int64) Number { return Number{kind: Signed, i: v} }

// FromFloat64 constructs a float Number.
func FromFloat64(v float64) Number { return Number{kind: Float, f: v} }

// NaN constructs the float Number corresponding to the #nan keyword.
func NaN() Number { return Number{kind: Float, f: math.NaN()} }

// Inf constructs the float Number corresponding to #inf (sign >= 0) or
// #-inf (sign < 0).
func Inf(sign int) Number {
	if sign < 0 {
		return Number{kind: Float, f: math.Inf(-1)}
	}
	return Number{kind: Float, f: math.Inf(1)}
}

// Kind reports which variant n holds.
func (n Number) Kind() Kind { return n.kind }

// Uint64 returns n's value as a uint64, failing with ErrOutOfRange unless n
// holds the Unsigned variant.
func (n Number) Uint64() (uint64, error) {
	if n.kind != Unsigned {
		return 0, ErrOutOfRange
	}
	return n.u, nil
}

// Int64 returns n's value as an int64, failing with ErrOutOfRange unless n
// holds the Signed variant.
func (n Number) Int64() (int64, error) {
	if n.kind != Signed {
		return 0, ErrOutOfRange
	}
	return n.i, nil
}

// Float64 returns n's value as a float64, failing with ErrOutOfRange unless
// n holds the Float variant.
func (n Number) Float64() (float64, error) {
	if n.kind != Float {
		return 0, ErrOutOfRange
	}
	return n.f, nil
}

// normFloatBits normalizes a float for equality/hash purposes: all NaNs
// collapse to a single representative bit pattern, and +0/-0 both map to 0.
func normFloatBits(v float64) uint64 {
	switch {
	case math.IsNaN(v):
		return math.MaxUint64
	case v == 0:
		return 0
	default:
		return math.Float64bits(v)
	}
}

// Equal reports whether n and other compare equal: same tag, same bits,
// with NaN-to-NaN and signed-zero collapsed per §3 of the spec.
func (n Number) Equal(other Number) bool {
	if n.kind != other.kind {
		return false
	}
	switch n.kind {
	case Unsigned:
		return n.u == other.u
	case Signed:
		return n.i == other.i
	case Float:
		return normFloatBits(n.f) == normFloatBits(other.f)
	default:
		return false
	}
}

// Hash returns a hash consistent with Equal.
func (n Number) Hash() uint64 {
	const (
		mix  = 0x9E3779B97F4A7C15
		seed = uint64(17)
	)
	h := seed
	h = h*mix + uint64(n.kind)
	switch n.kind {
	case Unsigned:
		h = h*mix + n.u
	case Signed:
		h = h*mix + uint64(n.i)
	case Float:
		h = h*mix + normFloatBits(n.f)
	}
	return h
}

// String renders n using decimal notation for integers and a
// lossless-roundtrip textual form for floats, using the special tokens
// #inf, #-inf, and #nan for non-finite values.
func (n Number) String() string {
	switch n.kind {
	case Unsigned:
		return strconv.FormatUint(n.u, 10)
	case Signed:
		return strconv.FormatInt(n.i, 10)
	case Float:
		switch {
		case math.IsNaN(n.f):
			return "#nan"
		case math.IsInf(n.f, 1):
			return "#inf"
		case math.IsInf(n.f, -1):
			return "#-inf"
		default:
			s := strconv.FormatFloat(n.f, 'g', -1, 64)
			return ensureFloaty(s)
		}
	default:
		return "<invalid number>"
	}
}

// ensureFloaty guarantees the rendered float has a decimal point or
// exponent so it can never be misread as an integer literal.
func ensureFloaty(s string) string {
	if strings.ContainsAny(s, ".eE") {
		return s
	}
	return s + ".0"
}

// GoString implements fmt.GoStringer for debug-formatting.
func (n Number) GoString() string {
	return fmt.Sprintf("number.Number{kind:%s, repr:%s}", n.kind, n.String())
}

// Parse parses text using the same grammar as KDL number literals (an
// optional sign, an optional 0b/0o/0x radix prefix, digits with optional
// underscore separators, and for decimal input an optional fractional part
// and exponent), widening first to Unsigned, then Signed, then (decimal
// only) Float.
func Parse(text string) (Number, error) {
	return parseNumber(text)
}
