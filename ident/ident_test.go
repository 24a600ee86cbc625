package ident

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanBeBare(t *testing.T) {
	require.True(t, CanBeBare("hello"))
	require.True(t, CanBeBare("hello-world"))
	require.False(t, CanBeBare(""))
	require.False(t, CanBeBare("true"))
	require.False(t, CanBeBare("123"))
	require.False(t, CanBeBare("-123"))
	require.False(t, CanBeBare("foo bar"))
}

func TestStringQuotesWhenNeeded(t *testing.T) {
	require.Equal(t, "hello", String("hello"))
	require.Equal(t, `"true"`, String("true"))
	require.Equal(t, `"123"`, String("123"))
}

func TestQuotedStringEscapes(t *testing.T) {
	require.Equal(t, `"a\nb"`, QuotedString("a\nb"))
	require.Equal(t, `"a\"b"`, QuotedString(`a"b`))
	require.Equal(t, `"a\\b"`, QuotedString(`a\b`))
}

func TestQuotedStringEscapesControlChars(t *testing.T) {
	require.Equal(t, `"a\u{1}b"`, QuotedString("a\x01b"))
}
