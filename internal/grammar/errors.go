package grammar

import "fmt"

// ErrorKind is the closed taxonomy of grammar/stream errors (§6). It is
// deliberately not extensible by callers: the zero value and all exported
// constants are defined here, and Error.Kind always returns one of them.
type ErrorKind uint8

const (
	// ExpectedSpace means a required node-space was missing.
	ExpectedSpace ErrorKind = iota + 1
	// ExpectedCloseParen means ')' was expected to close a type hint.
	ExpectedCloseParen
	// ExpectedComment means the continuation after '\' was ill-formed.
	ExpectedComment
	// ExpectedNewline means a multiline string lacked its mandatory opening
	// newline.
	ExpectedNewline
	// ExpectedString means a string was required (e.g. inside a type hint).
	ExpectedString
	// ExpectedValue means a value was required.
	ExpectedValue
	// UnexpectedCloseBracket means '}' appeared outside any child block.
	UnexpectedCloseBracket
	// UnexpectedNewline means a newline appeared inside a single-line
	// string.
	UnexpectedNewline
	// InvalidNumber means number lexing succeeded but parsing failed.
	InvalidNumber
	// BadKeyword means a '#...' token was not in the allowed keyword set.
	BadKeyword
	// BadIdentifier means a bare reserved word was used as an identifier.
	BadIdentifier
	// BadEscape means a malformed '\...' escape sequence was found.
	BadEscape
	// BadIndent means a multiline string's indentation didn't match its
	// closing line's prefix.
	BadIndent
	// MultipleChildren means a node had a second '{' child block.
	MultipleChildren
	// UnexpectedEof means the input ended in the middle of a construct.
	UnexpectedEof
	// BannedChar means a banned code point appeared in content.
	BannedChar
)

var errorKindNames = map[ErrorKind]string{
	ExpectedSpace:          "ExpectedSpace",
	ExpectedCloseParen:     "ExpectedCloseParen",
	ExpectedComment:        "ExpectedComment",
	ExpectedNewline:        "ExpectedNewline",
	ExpectedString:         "ExpectedString",
	ExpectedValue:          "ExpectedValue",
	UnexpectedCloseBracket: "UnexpectedCloseBracket",
	UnexpectedNewline:      "UnexpectedNewline",
	InvalidNumber:          "InvalidNumber",
	BadKeyword:             "BadKeyword",
	BadIdentifier:          "BadIdentifier",
	BadEscape:              "BadEscape",
	BadIndent:              "BadIndent",
	MultipleChildren:       "MultipleChildren",
	UnexpectedEof:          "UnexpectedEof",
	BannedChar:             "BannedChar",
}

func (k ErrorKind) String() string {
	if s, ok := errorKindNames[k]; ok {
		return s
	}
	return "UnknownError"
}

// Error is a parse error carrying the byte offset (into the original
// input) at which it was detected, except for UnexpectedEof which carries
// the offset of the input's end.
type Error struct {
	Kind ErrorKind
	Pos  int
	msg  string
}

func (e *Error) Error() string {
	if e.msg != "" {
		return fmt.Sprintf("%s at byte %d: %s", e.Kind, e.Pos, e.msg)
	}
	return fmt.Sprintf("%s at byte %d", e.Kind, e.Pos)
}

// newErr constructs an *Error with an optional detail message.
func newErr(kind ErrorKind, pos int, detail string) *Error {
	return &Error{Kind: kind, Pos: pos, msg: detail}
}

func errf(kind ErrorKind, pos int, format string, args ...interface{}) *Error {
	return newErr(kind, pos, fmt.Sprintf(format, args...))
}
