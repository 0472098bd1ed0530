package rgbforth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_primArray_zero_fills(t *testing.T) {
	in := New()
	in.Primary.Push(in.Alloc.NewInt(3))
	primArray(in)
	v := in.Primary.PopValue()
	require.Equal(t, Array, v.Tag)
	require.Equal(t, []int32{0, 0, 0}, v.arr)
}

func Test_primGeta_does_not_consume_arr(t *testing.T) {
	in := New()
	arr := in.Alloc.NewArray(3)
	arr.arr[1] = 42
	in.Primary.Push(arr)
	in.Primary.Push(in.Alloc.NewInt(1))
	primGeta(in)
	require.Equal(t, int64(42), in.Primary.PopInt(in.Alloc))
	require.Equal(t, 1, in.Primary.Size(), "arr must remain on the stack")
}

func Test_primPuta_pops_value_then_index(t *testing.T) {
	in := New()
	arr := in.Alloc.NewArray(3)
	in.Primary.Push(arr)
	in.Primary.Push(in.Alloc.NewInt(1))  // index
	in.Primary.Push(in.Alloc.NewInt(99)) // value, on top
	primPuta(in)

	require.Equal(t, int32(99), arr.arr[1])
	require.Equal(t, 1, in.Primary.Size(), "arr stays on the stack")
}

func Test_primPuta_out_of_range_index_is_ignored(t *testing.T) {
	in := New()
	arr := in.Alloc.NewArray(2)
	in.Primary.Push(arr)
	in.Primary.Push(in.Alloc.NewInt(5))
	in.Primary.Push(in.Alloc.NewInt(99))
	require.NotPanics(t, func() { primPuta(in) })
	require.Equal(t, []int32{0, 0}, arr.arr)
}

func Test_primDgeta_reads_the_named_array_from_the_dictionary(t *testing.T) {
	in := New()
	arr := in.Alloc.NewArray(3)
	arr.arr[2] = 7
	in.Dict.Define(in.Alloc, "a", arr)

	in.Primary.Push(in.Alloc.NewStr("a"))
	in.Primary.Push(in.Alloc.NewInt(2))
	primDgeta(in)
	require.Equal(t, int64(7), in.Primary.PopInt(in.Alloc))
}

func Test_primDgeta_unbound_name_yields_zero(t *testing.T) {
	in := New()
	in.Primary.Push(in.Alloc.NewStr("nope"))
	in.Primary.Push(in.Alloc.NewInt(0))
	primDgeta(in)
	require.Equal(t, int64(0), in.Primary.PopInt(in.Alloc))
}

func Test_primDputa_writes_the_named_array_in_the_dictionary(t *testing.T) {
	in := New()
	arr := in.Alloc.NewArray(3)
	in.Dict.Define(in.Alloc, "a", arr)

	in.Primary.Push(in.Alloc.NewStr("a"))
	in.Primary.Push(in.Alloc.NewInt(1))  // index
	in.Primary.Push(in.Alloc.NewInt(55)) // value, on top
	primDputa(in)

	require.Equal(t, int32(55), in.Dict.Find("a").arr[1])
	require.Equal(t, 0, in.Primary.Size())
}

func Test_primIdentity_fills_with_indices(t *testing.T) {
	in := New()
	arr := in.Alloc.NewArray(3)
	in.Primary.Push(arr)
	primIdentity(in)
	v := in.Primary.PopValue()
	require.Equal(t, []int32{0, 1, 2}, v.arr)
}
