package value

import (
	"testing"
	"unsafe"

	"github.com/kdl2/kdl2-go/number"
	"github.com/stretchr/testify/require"
)

func TestCloneSeversStringBorrow(t *testing.T) {
	src := "hello world"
	borrowed := src[0:5]
	v := NewString(borrowed)
	cloned := v.Clone()

	s, ok := cloned.AsString()
	require.True(t, ok)
	require.Equal(t, "hello", s)
	require.NotSame(t, unsafe.StringData(borrowed), unsafe.StringData(s))
}

func TestEqualAcrossKinds(t *testing.T) {
	require.True(t, NewBool(true).Equal(NewBool(true)))
	require.False(t, NewBool(true).Equal(NewBool(false)))
	require.False(t, NewBool(true).Equal(NewNull()))
	require.True(t, NewNull().Equal(NewNull()))
	require.True(t, NewString("a").Equal(NewString("a")))
}

func TestLiteralRendering(t *testing.T) {
	require.Equal(t, "#null", NewNull().Literal())
	require.Equal(t, "#true", NewBool(true).Literal())
	require.Equal(t, "#false", NewBool(false).Literal())
	require.Equal(t, `"hi there"`, NewString("hi there").Literal())
	require.Equal(t, "hi", NewString("hi").Literal())
	require.Equal(t, "42", NewNumber(number.FromInt64(42)).Literal())
}
