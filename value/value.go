// Package value implements the KDL value model (§3): a closed sum of
// String, Number, Boolean, and Null, shared by the grammar engine, the
// stream parser, and the DOM assembler so that none of those layers needs
// to depend on one another for a common currency type.
package value

import (
	"strings"

	"github.com/kdl2/kdl2-go/ident"
	"github.com/kdl2/kdl2-go/number"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// String holds a textual value.
	String Kind = iota
	// Number holds a numeric value.
	Number
	// Bool holds a boolean value.
	Bool
	// Null holds no value.
	Null
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Number:
		return "number"
	case Bool:
		return "bool"
	case Null:
		return "null"
	default:
		return "invalid"
	}
}

// Value is a tagged KDL value.
//
// Every textual field in the document model, including the string stored
// here, uses borrow-or-own semantics: Go's native string slicing never
// copies, so a Value built directly from a slice of the parser's input
// buffer is a zero-allocation borrow. Clone forces a fresh allocation,
// severing that borrow.
type Value struct {
	kind Kind
	str  string
	num  number.Number
	b    bool
}

// NewString constructs a String value from s (which may be a borrowed
// slice of the grammar engine's input, or an owned, freshly allocated
// string if unescaping or dedent was required).
func NewString(s string) Value { return Value{kind: String, str: s} }

// NewNumber constructs a Number value.
func NewNumber(n number.Number) Value { return Value{kind: Number, num: n} }

// NewBool constructs a Bool value.
func NewBool(b bool) Value { return Value{kind: Bool, b: b} }

// NewNull constructs a Null value.
func NewNull() Value { return Value{kind: Null} }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// AsString returns v's string and true if v holds String, else ("", false).
func (v Value) AsString() (string, bool) {
	if v.kind != String {
		return "", false
	}
	return v.str, true
}

// AsNumber returns v's Number and true if v holds Number, else a zero
// Number and false.
func (v Value) AsNumber() (number.Number, bool) {
	if v.kind != Number {
		return number.Number{}, false
	}
	return v.num, true
}

// AsBool returns v's bool and true if v holds Bool, else (false, false).
func (v Value) AsBool() (bool, bool) {
	if v.kind != Bool {
		return false, false
	}
	return v.b, true
}

// IsNull reports whether v holds Null.
func (v Value) IsNull() bool { return v.kind == Null }

// Clone returns a copy of v with any borrowed string severed from its
// source buffer via a fresh allocation (a no-op for non-String values).
func (v Value) Clone() Value {
	if v.kind == String {
		v.str = strings.Clone(v.str)
	}
	return v
}

// Equal reports whether v and other hold the same kind and equivalent
// content.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case String:
		return v.str == other.str
	case Number:
		return v.num.Equal(other.num)
	case Bool:
		return v.b == other.b
	case Null:
		return true
	default:
		return false
	}
}

// Literal renders v as a KDL literal: #null, #true/#false, the Number's
// textual form, or a bare-or-quoted identifier string.
func (v Value) Literal() string {
	switch v.kind {
	case Null:
		return "#null"
	case Bool:
		if v.b {
			return "#true"
		}
		return "#false"
	case Number:
		return v.num.String()
	case String:
		return ident.String(v.str)
	default:
		return "<invalid value>"
	}
}

// String implements fmt.Stringer by returning Literal.
func (v Value) String() string { return v.Literal() }
