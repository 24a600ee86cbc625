package kdl

import "github.com/kdl2/kdl2-go/internal/grammar"

// ErrorKind classifies a parse error (§6). It is a closed set: every
// value an Error carries is one of the named constants below.
type ErrorKind = grammar.ErrorKind

// Error is a parse error positioned at a byte offset into the document
// that produced it.
type Error = grammar.Error

const (
	ExpectedSpace          = grammar.ExpectedSpace
	ExpectedCloseParen     = grammar.ExpectedCloseParen
	ExpectedComment        = grammar.ExpectedComment
	ExpectedNewline        = grammar.ExpectedNewline
	ExpectedString         = grammar.ExpectedString
	ExpectedValue          = grammar.ExpectedValue
	UnexpectedCloseBracket = grammar.UnexpectedCloseBracket
	UnexpectedNewline      = grammar.UnexpectedNewline
	InvalidNumber          = grammar.InvalidNumber
	BadKeyword             = grammar.BadKeyword
	BadIdentifier          = grammar.BadIdentifier
	BadEscape              = grammar.BadEscape
	BadIndent              = grammar.BadIndent
	MultipleChildren       = grammar.MultipleChildren
	UnexpectedEof          = grammar.UnexpectedEof
	BannedChar             = grammar.BannedChar
)
