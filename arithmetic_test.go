package rgbforth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func binInt(t *testing.T, in *Interp, prim func(*Interp), a, b int64) int64 {
	in.Primary.Push(in.Alloc.NewInt(a))
	in.Primary.Push(in.Alloc.NewInt(b))
	prim(in)
	return in.Primary.PopInt(in.Alloc)
}

func Test_primDiv_and_primMod_by_zero_yield_zero(t *testing.T) {
	in := New()
	require.Equal(t, int64(0), binInt(t, in, primDiv, 7, 0))
	require.Equal(t, int64(0), binInt(t, in, primMod, 7, 0))
}

func Test_primDiv_and_primMod(t *testing.T) {
	in := New()
	require.Equal(t, int64(3), binInt(t, in, primDiv, 7, 2))
	require.Equal(t, int64(1), binInt(t, in, primMod, 7, 2))
}

func Test_primMin_primMax(t *testing.T) {
	in := New()
	require.Equal(t, int64(3), binInt(t, in, primMin, 3, 9))
	require.Equal(t, int64(9), binInt(t, in, primMax, 3, 9))
}

func Test_primRound_Ceil_Floor_int_form_is_identity(t *testing.T) {
	in := New()
	in.Primary.Push(in.Alloc.NewInt(5))
	primRound(in)
	require.Equal(t, int64(5), in.Primary.PopInt(in.Alloc))

	in.Primary.Push(in.Alloc.NewInt(5))
	primCeil(in)
	require.Equal(t, int64(5), in.Primary.PopInt(in.Alloc))

	in.Primary.Push(in.Alloc.NewInt(5))
	primFloor(in)
	require.Equal(t, int64(5), in.Primary.PopInt(in.Alloc))
}

func Test_primRound_Ceil_Floor_float_form(t *testing.T) {
	in := New()

	in.Primary.Push(in.Alloc.NewFloat(2.5))
	primRound(in)
	require.Equal(t, 3.0, in.Primary.PopValue().f)

	in.Primary.Push(in.Alloc.NewFloat(2.1))
	primCeil(in)
	require.Equal(t, 3.0, in.Primary.PopValue().f)

	in.Primary.Push(in.Alloc.NewFloat(2.9))
	primFloor(in)
	require.Equal(t, 2.0, in.Primary.PopValue().f)
}

func Test_primAbs(t *testing.T) {
	in := New()
	in.Primary.Push(in.Alloc.NewInt(-4))
	primAbs(in)
	require.Equal(t, int64(4), in.Primary.PopInt(in.Alloc))
}

func Test_primSqrt(t *testing.T) {
	in := New()
	in.Primary.Push(in.Alloc.NewInt(9))
	primSqrt(in)
	require.Equal(t, int64(3), in.Primary.PopInt(in.Alloc))
}

func Test_primPow(t *testing.T) {
	in := New()
	require.Equal(t, int64(8), binInt(t, in, primPow, 2, 3))
}

func Test_primNot(t *testing.T) {
	in := New()
	in.Primary.Push(in.Alloc.NewInt(0))
	primNot(in)
	require.Equal(t, int64(1), in.Primary.PopInt(in.Alloc))

	in.Primary.Push(in.Alloc.NewInt(5))
	primNot(in)
	require.Equal(t, int64(0), in.Primary.PopInt(in.Alloc))
}

func Test_primEq_primNe(t *testing.T) {
	in := New()
	require.Equal(t, int64(1), binInt(t, in, primEq, 3, 3))
	require.Equal(t, int64(0), binInt(t, in, primEq, 3, 4))
	require.Equal(t, int64(1), binInt(t, in, primNe, 3, 4))
}
