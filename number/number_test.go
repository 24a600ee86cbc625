package number_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kdl2/kdl2-go/number"
)

func TestParseDecimalWidening(t *testing.T) {
	n, err := number.Parse("11259375")
	require.NoError(t, err)
	require.Equal(t, number.Unsigned, n.Kind())
	v, err := n.Uint64()
	require.NoError(t, err)
	require.Equal(t, uint64(11259375), v)
}

func TestParseNegativeDecimalIsSigned(t *testing.T) {
	n, err := number.Parse("-42")
	require.NoError(t, err)
	require.Equal(t, number.Signed, n.Kind())
	v, err := n.Int64()
	require.NoError(t, err)
	require.Equal(t, int64(-42), v)
}

func TestParseDecimalInt64Minimum(t *testing.T) {
	n, err := number.Parse("-9223372036854775808")
	require.NoError(t, err)
	require.Equal(t, number.Signed, n.Kind())
	v, err := n.Int64()
	require.NoError(t, err)
	require.Equal(t, int64(math.MinInt64), v)
}

func TestParseHex(t *testing.T) {
	n, err := number.Parse("0xABCDEF")
	require.NoError(t, err)
	v, err := n.Uint64()
	require.NoError(t, err)
	require.Equal(t, uint64(11259375), v)
}

func TestParseUnderscoreSeparators(t *testing.T) {
	n, err := number.Parse("0x0123_4567_89")
	require.NoError(t, err)
	v, err := n.Uint64()
	require.NoError(t, err)
	require.Equal(t, uint64(0x01234567_89), v)
}

func TestParseLeadingUnderscoreRejected(t *testing.T) {
	_, err := number.Parse("0b_101")
	require.ErrorIs(t, err, number.ErrBadSyntax)
}

func TestParseDoubleUnderscoreRejected(t *testing.T) {
	_, err := number.Parse("1__2")
	require.ErrorIs(t, err, number.ErrBadSyntax)
}

func TestParseFloatOverflowToInf(t *testing.T) {
	n, err := number.Parse("1.23E+1000")
	require.NoError(t, err)
	require.Equal(t, number.Float, n.Kind())
	f, err := n.Float64()
	require.NoError(t, err)
	require.True(t, math.IsInf(f, 1))
	require.Equal(t, "#inf", n.String())
}

func TestParseNegativeFloatOverflowToNegInf(t *testing.T) {
	n, err := number.Parse("-1.23E+1000")
	require.NoError(t, err)
	f, _ := n.Float64()
	require.True(t, math.IsInf(f, -1))
	require.Equal(t, "#-inf", n.String())
}

func TestParseTrailingDotRejected(t *testing.T) {
	_, err := number.Parse("1.")
	require.ErrorIs(t, err, number.ErrBadSyntax)
}

func TestParseLeadingDotRejected(t *testing.T) {
	_, err := number.Parse(".5")
	require.ErrorIs(t, err, number.ErrBadSyntax)
}

func TestParseNonDecimalNeverFloats(t *testing.T) {
	// 0x prefix with a '.' isn't valid hex digits, so this must fail rather
	// than silently becoming a float.
	_, err := number.Parse("0x1.5")
	require.Error(t, err)
}

func TestNaNEqualityAndHash(t *testing.T) {
	a := number.FromFloat64(math.NaN())
	b := number.FromFloat64(math.NaN())
	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())
}

func TestSignedZeroEquality(t *testing.T) {
	a := number.FromFloat64(0.0)
	b := number.FromFloat64(math.Copysign(0, -1))
	require.True(t, a.Equal(b))
}

func TestDifferentKindsNeverEqual(t *testing.T) {
	u := number.FromUint64(1)
	s := number.FromInt64(1)
	require.False(t, u.Equal(s))
}

func TestConversionFailsAcrossVariant(t *testing.T) {
	u := number.FromUint64(5)
	_, err := u.Int64()
	require.ErrorIs(t, err, number.ErrOutOfRange)
	_, err = u.Float64()
	require.ErrorIs(t, err, number.ErrOutOfRange)
}

func TestFloatDisplayAlwaysHasPointOrExponent(t *testing.T) {
	n := number.FromFloat64(4.0)
	require.Contains(t, n.String(), ".")
}
