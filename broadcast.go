package rgbforth

// Unary lifts a scalar primitive pointwise over an Array operand (§4.7).
// fFloat may be nil, forcing the int form regardless of operand type
// (used by comparison/logical primitives' unary cousin, not).
func (in *Interp) Unary(fInt func(int64) int64, fFloat func(float64) float64) {
	a := in.Primary.PopValue()
	defer in.Alloc.Free(a)

	if tagOf(a) == Array {
		n := len(a.arr)
		rs := make([]int32, n)
		for i := 0; i < n; i++ {
			rs[i] = int32(fInt(int64(a.arr[i])))
		}
		v := in.Alloc.alloc()
		v.Tag = Array
		v.arr = rs
		in.Alloc.arrayMalloc++
		in.Primary.Push(v)
		return
	}

	if tagOf(a) == Int || fFloat == nil {
		in.Primary.Push(in.Alloc.NewInt(fInt(a.AsInt())))
		return
	}
	in.Primary.Push(in.Alloc.NewFloat(fFloat(a.AsFloat())))
}

// tagOf reports v's Tag, treating a nil operand (an exhausted stack, per
// §7) as Free rather than dereferencing it.
func tagOf(v *Value) Tag {
	if v == nil {
		return Free
	}
	return v.Tag
}

// useFloatPair and useFloatTriple implement the float-vs-int decision
// rule of §4.7 (see isArrayish for how a nil operand counts): the float
// form is used iff it exists and at least one operand is neither Int nor
// Array.
func useFloatPair(hasFloat bool, a, b *Value) bool {
	return hasFloat && !(isArrayish(a) && isArrayish(b))
}

func useFloatTriple(hasFloat bool, a, b, c *Value) bool {
	return hasFloat && !(isArrayish(a) && isArrayish(b) && isArrayish(c))
}

func arrayLen(v *Value) int {
	if tagOf(v) == Array {
		return len(v.arr)
	}
	return 1
}

func elemInt(v *Value, i int) int64 {
	if tagOf(v) == Array {
		if i < len(v.arr) {
			return int64(v.arr[i])
		}
		return 0
	}
	return v.AsInt()
}

func elemFloat(v *Value, i int) float64 {
	if tagOf(v) == Array {
		if i < len(v.arr) {
			return float64(v.arr[i])
		}
		return 0
	}
	return v.AsFloat()
}

// Binary lifts a scalar binary primitive pointwise over Array operands.
func (in *Interp) Binary(fInt func(int64, int64) int64, fFloat func(float64, float64) float64) {
	b := in.Primary.PopValue()
	a := in.Primary.PopValue()
	defer in.Alloc.Free(a)
	defer in.Alloc.Free(b)

	useFloat := useFloatPair(fFloat != nil, a, b)

	if tagOf(a) == Array || tagOf(b) == Array {
		n := arrayLen(a)
		if m := arrayLen(b); m > n {
			n = m
		}
		rs := make([]int32, n)
		for i := 0; i < n; i++ {
			if useFloat {
				rs[i] = int32(int64(fFloat(elemFloat(a, i), elemFloat(b, i))))
			} else {
				rs[i] = int32(fInt(elemInt(a, i), elemInt(b, i)))
			}
		}
		v := in.Alloc.alloc()
		v.Tag = Array
		v.arr = rs
		in.Alloc.arrayMalloc++
		in.Primary.Push(v)
		return
	}

	if useFloat {
		in.Primary.Push(in.Alloc.NewFloat(fFloat(a.AsFloat(), b.AsFloat())))
	} else {
		in.Primary.Push(in.Alloc.NewInt(fInt(a.AsInt(), b.AsInt())))
	}
}

// Ternary lifts a scalar ternary primitive pointwise over Array operands.
func (in *Interp) Ternary(fInt func(int64, int64, int64) int64, fFloat func(float64, float64, float64) float64) {
	c := in.Primary.PopValue()
	b := in.Primary.PopValue()
	a := in.Primary.PopValue()
	defer in.Alloc.Free(a)
	defer in.Alloc.Free(b)
	defer in.Alloc.Free(c)

	useFloat := useFloatTriple(fFloat != nil, a, b, c)

	if tagOf(a) == Array || tagOf(b) == Array || tagOf(c) == Array {
		n := arrayLen(a)
		if m := arrayLen(b); m > n {
			n = m
		}
		if m := arrayLen(c); m > n {
			n = m
		}
		rs := make([]int32, n)
		for i := 0; i < n; i++ {
			if useFloat {
				rs[i] = int32(int64(fFloat(elemFloat(a, i), elemFloat(b, i), elemFloat(c, i))))
			} else {
				rs[i] = int32(fInt(elemInt(a, i), elemInt(b, i), elemInt(c, i)))
			}
		}
		v := in.Alloc.alloc()
		v.Tag = Array
		v.arr = rs
		in.Alloc.arrayMalloc++
		in.Primary.Push(v)
		return
	}

	if useFloat {
		in.Primary.Push(in.Alloc.NewFloat(fFloat(a.AsFloat(), b.AsFloat(), c.AsFloat())))
	} else {
		in.Primary.Push(in.Alloc.NewInt(fInt(a.AsInt(), b.AsInt(), c.AsInt())))
	}
}
