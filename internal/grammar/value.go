package grammar

import "github.com/kdl2/kdl2-go/number"

// ValueKind classifies a literal value produced by the grammar engine.
type ValueKind uint8

const (
	ValueString ValueKind = iota + 1
	ValueNumber
	ValueBool
	ValueNull
)

// Value is the grammar engine's literal value representation: the
// smallest common shape the kdl and document packages can lift into
// their own richer value types without the grammar package depending on
// either of them.
type Value struct {
	Kind  ValueKind
	Str   string
	Owned bool
	Num   number.Number
	Bool  bool
}

// literalValue parses a value term at pos: an optional type hint,
// followed by a keyword, a number, or a string (§4.2.6-4.2.8).
func literalValue(input string, pos int) (newPos int, hint string, hasType bool, v Value, err error) {
	if pos < len(input) && input[pos] == '(' {
		p, h, err := typeHint(input, pos)
		if err != nil {
			return p, "", false, Value{}, err
		}
		pos = p
		hint = h
		hasType = true
	}

	if pos < len(input) && input[pos] == '#' {
		p, name, err := keyword(input, pos)
		if err != nil {
			return p, hint, hasType, Value{}, err
		}
		switch name {
		case "true":
			return p, hint, hasType, Value{Kind: ValueBool, Bool: true}, nil
		case "false":
			return p, hint, hasType, Value{Kind: ValueBool, Bool: false}, nil
		case "null":
			return p, hint, hasType, Value{Kind: ValueNull}, nil
		case "nan":
			return p, hint, hasType, Value{Kind: ValueNumber, Num: number.NaN()}, nil
		case "inf":
			return p, hint, hasType, Value{Kind: ValueNumber, Num: number.Inf(1)}, nil
		case "-inf":
			return p, hint, hasType, Value{Kind: ValueNumber, Num: number.Inf(-1)}, nil
		default:
			return p, hint, hasType, Value{}, errf(BadKeyword, pos, "unexpected keyword #%s as value", name)
		}
	}

	if isNumberStart(input, pos) {
		p, n, err := numberLiteral(input, pos)
		if err != nil {
			return p, hint, hasType, Value{}, err
		}
		return p, hint, hasType, Value{Kind: ValueNumber, Num: n}, nil
	}

	if r, size := decodeRune(input, pos); size > 0 && (r == '"' || (r == '#' && isRawStringStart(input, pos)) || IsIdentifierChar(r)) {
		p, s, owned, err := stringLiteral(input, pos)
		if err != nil {
			return p, hint, hasType, Value{}, err
		}
		return p, hint, hasType, Value{Kind: ValueString, Str: s, Owned: owned}, nil
	}

	return pos, hint, hasType, Value{}, errf(ExpectedValue, pos, "expected a value")
}
