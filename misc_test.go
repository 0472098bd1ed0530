package rgbforth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_rgbPack_unpack_roundtrip_every_format(t *testing.T) {
	for format := 0; format <= 5; format++ {
		in := New()
		in.rgbFormat = format

		packed := in.rgbPack(0x11, 0x22, 0x33)
		r, g, b := in.rgbUnpack(packed)
		require.Equal(t, int32(0x11), r, "format %d round-trip", format)
		require.Equal(t, int32(0x22), g, "format %d round-trip", format)
		require.Equal(t, int32(0x33), b, "format %d round-trip", format)
	}
}

func Test_primRgbFormat_selects_the_active_format(t *testing.T) {
	in := New()
	in.Primary.Push(in.Alloc.NewInt(1)) // grb
	primRgbFormat(in)
	require.Equal(t, 1, in.rgbFormat)
}

func Test_primRgbToColor_and_primColorToRgb(t *testing.T) {
	in := New()
	in.Primary.Push(in.Alloc.NewInt(0x10))
	in.Primary.Push(in.Alloc.NewInt(0x20))
	in.Primary.Push(in.Alloc.NewInt(0x30))
	primRgbToColor(in)

	color := in.Primary.PopInt(in.Alloc)
	require.Equal(t, int64(0x102030), color)

	in.Primary.Push(in.Alloc.NewInt(color))
	primColorToRgb(in)
	b := in.Primary.PopInt(in.Alloc)
	g := in.Primary.PopInt(in.Alloc)
	r := in.Primary.PopInt(in.Alloc)
	require.Equal(t, []int64{0x10, 0x20, 0x30}, []int64{r, g, b})
}

func Test_primBlend_midpoint(t *testing.T) {
	in := New()
	in.Primary.Push(in.Alloc.NewInt(0x000000))
	in.Primary.Push(in.Alloc.NewInt(0xffffff))
	in.Primary.Push(in.Alloc.NewInt(50))
	primBlend(in)
	color := in.Primary.PopInt(in.Alloc)
	r, g, b := in.rgbUnpack(int32(color))
	require.InDelta(t, 127, r, 1)
	require.InDelta(t, 127, g, 1)
	require.InDelta(t, 127, b, 1)
}

func Test_primAblend_mismatched_lengths_is_a_noop(t *testing.T) {
	in := New()
	a := in.Alloc.NewArray(2)
	b := in.Alloc.NewArray(3)
	in.Primary.Push(a)
	in.Primary.Push(b)
	in.Primary.Push(in.Alloc.NewInt(50))

	primAblend(in)
	require.Equal(t, 0, in.Primary.Size(), "mismatched array lengths must push nothing back")
}

func Test_primAblend_elementwise(t *testing.T) {
	in := New()
	a := in.Alloc.NewArray(2)
	a.arr[0], a.arr[1] = 0x000000, 0x000000
	b := in.Alloc.NewArray(2)
	b.arr[0], b.arr[1] = 0xffffff, 0xffffff

	in.Primary.Push(a)
	in.Primary.Push(b)
	in.Primary.Push(in.Alloc.NewInt(100))
	primAblend(in)

	v := in.Primary.PopValue()
	require.Equal(t, Array, v.Tag)
	require.Equal(t, []int32{0xffffff, 0xffffff}, v.arr, "ratio 100 must fully weight toward b")
}

func Test_primStrMid(t *testing.T) {
	in := New()
	in.Primary.Push(in.Alloc.NewStr("hello world"))
	in.Primary.Push(in.Alloc.NewInt(6))
	in.Primary.Push(in.Alloc.NewInt(5))
	primStrMid(in)
	require.Equal(t, "world", in.Primary.PopString(in.Alloc))
}

func Test_primStrMid_start_past_end_is_silently_dropped(t *testing.T) {
	in := New()
	in.Primary.Push(in.Alloc.NewStr("hi"))
	in.Primary.Push(in.Alloc.NewInt(10))
	in.Primary.Push(in.Alloc.NewInt(1))
	primStrMid(in)
	require.Equal(t, 0, in.Primary.Size())
}

func Test_primMemAfree_reports_arrayFreed(t *testing.T) {
	in := New()
	arr := in.Alloc.NewArray(2)
	in.Alloc.Free(arr)
	primMemAfree(in)
	require.Equal(t, int64(1), in.Primary.PopInt(in.Alloc))
}

func Test_primHsv_zero_saturation_is_grayscale(t *testing.T) {
	in := New()
	in.Primary.Push(in.Alloc.NewInt(0))  // hue
	in.Primary.Push(in.Alloc.NewInt(0))  // sat
	in.Primary.Push(in.Alloc.NewInt(50)) // light
	primHsv(in)
	color := in.Primary.PopInt(in.Alloc)
	r, g, b := in.rgbUnpack(int32(color))
	require.Equal(t, r, g)
	require.Equal(t, g, b)
	require.Equal(t, int32(127), r)
}

func Test_primHsvr_zero_saturation_is_white(t *testing.T) {
	in := New()
	in.Primary.Push(in.Alloc.NewInt(0))   // hue
	in.Primary.Push(in.Alloc.NewInt(0))   // sat
	in.Primary.Push(in.Alloc.NewInt(100)) // val
	primHsvr(in)
	color := in.Primary.PopInt(in.Alloc)
	r, g, b := in.rgbUnpack(int32(color))
	require.Equal(t, int32(255), r)
	require.Equal(t, int32(255), g)
	require.Equal(t, int32(255), b)
}
