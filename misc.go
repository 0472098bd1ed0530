package rgbforth

import "runtime"

// primNumDec: ( num width dps -- str ); fixed-point formatting.
func primNumDec(in *Interp) {
	dps := int(in.Primary.PopInt(in.Alloc))
	width := int(in.Primary.PopInt(in.Alloc))
	num := in.Primary.PopFloat(in.Alloc)
	in.Primary.Push(in.Alloc.NewStr(formatNumDec(num, width, dps)))
}

// primNumSci: ( num width dps -- str ); scientific-notation formatting.
func primNumSci(in *Interp) {
	dps := int(in.Primary.PopInt(in.Alloc))
	width := int(in.Primary.PopInt(in.Alloc))
	num := in.Primary.PopFloat(in.Alloc)
	in.Primary.Push(in.Alloc.NewStr(formatNumSci(num, width, dps)))
}

// primStrMid: ( str start len -- substr ); substring by start and length,
// clamped to the source length. start at or past the end pushes nothing,
// matching op_str_mid's silent drop.
func primStrMid(in *Interp) {
	length := int(in.Primary.PopInt(in.Alloc))
	start := int(in.Primary.PopInt(in.Alloc))
	s := in.Primary.PopString(in.Alloc)
	if start < 0 || start >= len(s) {
		return
	}
	end := start + length
	if length < 0 || end > len(s) {
		end = len(s)
	}
	if end < start {
		end = start
	}
	in.Primary.Push(in.Alloc.NewStr(s[start:end]))
}

// primRgbFormat sets the byte order used by rgbPack/rgbUnpack, blend, and
// ablend: 0 rgb, 1 grb, 2 bgr, 3 gbr, 4 rbg, 5 brg (matching RGBFORMAT).
func primRgbFormat(in *Interp) {
	in.rgbFormat = int(in.Primary.PopInt(in.Alloc))
}

// rgbPack packs three 8-bit channels into one 24-bit color honoring the
// current rgbformat byte order.
func (in *Interp) rgbPack(r, g, b int32) int32 {
	r, g, b = r&0xff, g&0xff, b&0xff
	switch in.rgbFormat {
	case 1:
		return g<<16 | r<<8 | b
	case 2:
		return b<<16 | g<<8 | r
	case 3:
		return g<<16 | b<<8 | r
	case 4:
		return r<<16 | b<<8 | g
	case 5:
		return b<<16 | r<<8 | g
	default:
		return r<<16 | g<<8 | b
	}
}

// rgbUnpack is rgbPack's inverse.
func (in *Interp) rgbUnpack(c int32) (r, g, b int32) {
	hi := (c & 0xff0000) >> 16
	mid := (c & 0x00ff00) >> 8
	lo := c & 0x0000ff
	switch in.rgbFormat {
	case 1:
		return mid, hi, lo
	case 2:
		return lo, mid, hi
	case 3:
		return lo, hi, mid
	case 4:
		return hi, lo, mid
	case 5:
		return mid, lo, hi
	default:
		return hi, mid, lo
	}
}

// primRgbToColor: ( r g b -- color ).
func primRgbToColor(in *Interp) {
	b := in.Primary.PopInt(in.Alloc)
	g := in.Primary.PopInt(in.Alloc)
	r := in.Primary.PopInt(in.Alloc)
	in.Primary.Push(in.Alloc.NewInt(int64(in.rgbPack(int32(r), int32(g), int32(b)))))
}

// primColorToRgb: ( color -- r g b ).
func primColorToRgb(in *Interp) {
	c := in.Primary.PopInt(in.Alloc)
	r, g, b := in.rgbUnpack(int32(c))
	in.Primary.Push(in.Alloc.NewInt(int64(r)))
	in.Primary.Push(in.Alloc.NewInt(int64(g)))
	in.Primary.Push(in.Alloc.NewInt(int64(b)))
}

func clampByte(n int32) int32 {
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}

// h2rgb is the easyrgb.com HSL helper used by makeColor.
func h2rgb(v1, v2, hue int32) int32 {
	switch {
	case hue < 60:
		return v1*60 + (v2-v1)*hue
	case hue < 180:
		return v2 * 60
	case hue < 240:
		return v1*60 + (v2-v1)*(240-hue)
	default:
		return v1 * 60
	}
}

// makeColor converts HSL (hue 0-359, saturation/lightness 0-100) to a
// packed color via the easyrgb.com algorithm.
func (in *Interp) makeColor(hue, sat, light int32) int32 {
	hue = ((hue % 360) + 360) % 360
	if sat > 100 {
		sat = 100
	}
	if sat < 0 {
		sat = 0
	}
	if light > 100 {
		light = 100
	}
	if light < 0 {
		light = 0
	}

	var red, green, blue int32
	if sat == 0 {
		red = light * 255 / 100
		green, blue = red, red
	} else {
		var var1, var2 int32
		if light < 50 {
			var2 = light * (100 + sat)
		} else {
			var2 = (light+sat)*100 - sat*light
		}
		var1 = light*200 - var2
		hr := hue + 120
		if hue >= 240 {
			hr = hue - 240
		}
		hb := hue - 120
		if hue < 120 {
			hb = hue + 240
		}
		red = h2rgb(var1, var2, hr) * 255 / 600000
		green = h2rgb(var1, var2, hue) * 255 / 600000
		blue = h2rgb(var1, var2, hb) * 255 / 600000
	}
	return in.rgbPack(red, green, blue)
}

func primHsv(in *Interp) {
	in.Ternary(func(h, s, v int64) int64 {
		return int64(in.makeColor(int32(h), int32(s), int32(v)))
	}, nil)
}

func scale8(v, scale int32) int32 {
	return (v * scale) >> 8
}

// hsvRainbow ports FastLED's hsv2rgb_rainbow piecewise gamma curve as an
// approximation; FastLED itself is LED-hardware specific and out of
// scope, but the color arithmetic it performs is representative.
func hsvRainbow(hue, sat, val int32) (r, g, b int32) {
	offset := hue & 0x1f
	offset8 := offset << 3
	third := scale8(offset8, 85)

	switch {
	case hue&0x80 == 0 && hue&0x40 == 0 && hue&0x20 == 0:
		r, g, b = 255-third, third, 0
	case hue&0x80 == 0 && hue&0x40 == 0:
		r, g, b = 171, 85+third, 0
	case hue&0x80 == 0 && hue&0x20 == 0:
		two := scale8(offset8, 170)
		r, g, b = 171-two, 170+third, 0
	case hue&0x80 == 0:
		r, g, b = 0, 255-third, third
	case hue&0x40 == 0 && hue&0x20 == 0:
		two := scale8(offset8, 170)
		r, g, b = 0, 171-two, 85+two
	case hue&0x40 == 0:
		r, g, b = third, 0, 255-third
	case hue&0x20 == 0:
		r, g, b = 85+third, 0, 171-third
	default:
		r, g, b = 170+third, 0, 85-third
	}

	if sat != 255 {
		if sat == 0 {
			r, g, b = 255, 255, 255
		} else {
			r = 255 - scale8(255-r, 255-sat)
			g = 255 - scale8(255-g, 255-sat)
			b = 255 - scale8(255-b, 255-sat)
		}
	}
	if val != 255 {
		r = scale8(r, val)
		g = scale8(g, val)
		b = scale8(b, val)
	}
	return clampByte(r), clampByte(g), clampByte(b)
}

// oper_hsvr-equivalent: h in 0..360, s/v in 0..100, gamma-curved rainbow.
func (in *Interp) hsvr(h, s, v int32) int32 {
	val := ((v * 255) / 100) % 256
	sat := ((s * 255) / 100) % 256
	hue := ((h * 255) / 360) % 256
	r, g, b := hsvRainbow(clampByte(hue), clampByte(sat), clampByte(val))
	return in.rgbPack(r, g, b)
}

func primHsvr(in *Interp) {
	in.Ternary(func(h, s, v int64) int64 {
		return int64(in.hsvr(int32(h), int32(s), int32(v)))
	}, nil)
}

// cblend linearly blends two packed colors by ratio (0-100, weight toward b).
func (in *Interp) cblend(a, b, ratio int32) int32 {
	ar, ag, ab := in.rgbUnpack(a)
	br, bg, bb := in.rgbUnpack(b)
	mix := func(x, y int32) int32 { return (y*ratio + x*(100-ratio)) / 100 }
	return in.rgbPack(mix(ar, br), mix(ag, bg), mix(ab, bb))
}

// primBlend: ( a b ratio -- color ).
func primBlend(in *Interp) {
	ratio := int32(in.Primary.PopInt(in.Alloc))
	b := int32(in.Primary.PopInt(in.Alloc))
	a := int32(in.Primary.PopInt(in.Alloc))
	in.Primary.Push(in.Alloc.NewInt(int64(in.cblend(a, b, ratio))))
}

// primAblend: ( a b ratio -- a' ); element-wise blend of two equal-length
// packed-color arrays, mutating and returning a. Mismatched operands free
// both and push nothing, matching op_argb_blend.
func primAblend(in *Interp) {
	ratio := int32(in.Primary.PopInt(in.Alloc))
	vb := in.Primary.PopValue()
	va := in.Primary.PopValue()
	if va != nil && vb != nil && va.Tag == Array && vb.Tag == Array && len(va.arr) == len(vb.arr) {
		for i := range va.arr {
			va.arr[i] = in.cblend(va.arr[i], vb.arr[i], ratio)
		}
		in.Primary.Push(va)
		in.Alloc.Free(vb)
		return
	}
	if va != nil {
		in.Alloc.Free(va)
	}
	if vb != nil {
		in.Alloc.Free(vb)
	}
}

// primStep turns on step-mode from inside a running sequence; where the
// callback is delivered is a host concern (WithStepCallback).
func primStep(in *Interp) {
	in.stepOn = true
}

// primRb asks the host to restart, via WithResetHook; with no hook
// registered this is a documented no-op rather than a crash.
func primRb(in *Interp) {
	if in.resetHook != nil {
		in.resetHook()
	}
}

func primMemMalloc(in *Interp)  { in.Primary.Push(in.Alloc.NewInt(int64(in.Alloc.malloc))) }
func primMemAlloc(in *Interp)   { in.Primary.Push(in.Alloc.NewInt(int64(in.Alloc.allocated))) }
func primMemFree(in *Interp)    { in.Primary.Push(in.Alloc.NewInt(int64(in.Alloc.freed))) }
func primMemCalloc(in *Interp)  { in.Primary.Push(in.Alloc.NewInt(int64(in.Alloc.currentAllocated))) }
func primMemCfree(in *Interp)   { in.Primary.Push(in.Alloc.NewInt(int64(in.Alloc.currentFreed))) }
func primMemAmalloc(in *Interp) { in.Primary.Push(in.Alloc.NewInt(int64(in.Alloc.arrayMalloc))) }

// primMemAfree keeps forth.cpp's "mem:afree" spelling even though the
// counter it reports is named afreed; a documented quirk, not a bug.
func primMemAfree(in *Interp) { in.Primary.Push(in.Alloc.NewInt(int64(in.Alloc.arrayFreed))) }

// primMemSram reports free memory via a host-supplied hook, falling back
// to a runtime.MemStats.HeapIdle snapshot — the nearest available
// analogue on a hosted Go build, which has no sbrk.
func primMemSram(in *Interp) {
	if in.freeMemHook != nil {
		in.Primary.Push(in.Alloc.NewInt(in.freeMemHook()))
		return
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	in.Primary.Push(in.Alloc.NewInt(int64(ms.HeapIdle)))
}
