package rgbforth

import "math"

func primAdd(in *Interp) {
	in.Binary(func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b })
}

func primSub(in *Interp) {
	in.Binary(func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b })
}

func primMul(in *Interp) {
	in.Binary(func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b })
}

func primDiv(in *Interp) {
	in.Binary(
		func(a, b int64) int64 {
			if b == 0 {
				return 0
			}
			return a / b
		},
		func(a, b float64) float64 {
			if b == 0 {
				return 0
			}
			return a / b
		},
	)
}

func primMod(in *Interp) {
	in.Binary(
		func(a, b int64) int64 {
			if b == 0 {
				return 0
			}
			return a % b
		},
		func(a, b float64) float64 {
			if b == 0 {
				return 0
			}
			return a - math.Trunc(a/b)*b
		},
	)
}

func primSq(in *Interp) {
	in.Unary(func(a int64) int64 { return a * a }, func(a float64) float64 { return a * a })
}

func primSqrt(in *Interp) {
	in.Unary(
		func(a int64) int64 { return int64(math.Sqrt(float64(a))) },
		func(a float64) float64 { return math.Sqrt(a) },
	)
}

func constrainInt(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func constrainFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func primConstrain(in *Interp) { in.Ternary(constrainInt, constrainFloat) }

func primAbs(in *Interp) {
	in.Unary(
		func(a int64) int64 {
			if a < 0 {
				return -a
			}
			return a
		},
		math.Abs,
	)
}

func primDeg(in *Interp) {
	toDeg := func(a float64) float64 { return a * 180.0 / math.Pi }
	in.Unary(func(a int64) int64 { return int64(toDeg(float64(a))) }, toDeg)
}

func primRad(in *Interp) {
	toRad := func(a float64) float64 { return a * math.Pi / 180.0 }
	in.Unary(func(a int64) int64 { return int64(toRad(float64(a))) }, toRad)
}

func primMin(in *Interp) {
	in.Binary(
		func(a, b int64) int64 {
			if a < b {
				return a
			}
			return b
		},
		func(a, b float64) float64 {
			if a < b {
				return a
			}
			return b
		},
	)
}

func primMax(in *Interp) {
	in.Binary(
		func(a, b int64) int64 {
			if a > b {
				return a
			}
			return b
		},
		func(a, b float64) float64 {
			if a > b {
				return a
			}
			return b
		},
	)
}

func primSin(in *Interp) {
	in.Unary(func(a int64) int64 { return int64(math.Sin(float64(a))) }, math.Sin)
}
func primCos(in *Interp) {
	in.Unary(func(a int64) int64 { return int64(math.Cos(float64(a))) }, math.Cos)
}
func primTan(in *Interp) {
	in.Unary(func(a int64) int64 { return int64(math.Tan(float64(a))) }, math.Tan)
}

func primPow(in *Interp) {
	dpow := func(a, b float64) float64 { return math.Pow(a, b) }
	in.Binary(func(a, b int64) int64 { return int64(dpow(float64(a), float64(b))) }, dpow)
}

// primRound, primCeil, primFloor: the int form is an identity, matching
// forth.cpp's oper_round/oper_ceil/oper_floor (rounding is meaningless on
// an already-integral value; only the float form does real work).
func primRound(in *Interp) {
	in.Unary(func(a int64) int64 { return a }, math.Round)
}
func primCeil(in *Interp) {
	in.Unary(func(a int64) int64 { return a }, math.Ceil)
}
func primFloor(in *Interp) {
	in.Unary(func(a int64) int64 { return a }, math.Floor)
}

func cmp(a, b int64) int64 {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// Comparison and logical primitives provide only the int form; the
// broadcast float-decision rule still applies (operands coerce via
// AsInt if a float form doesn't exist to pick from).
func primEq(in *Interp) { in.Binary(func(a, b int64) int64 { return boolInt(cmp(a, b) == 0) }, nil) }
func primNe(in *Interp) { in.Binary(func(a, b int64) int64 { return boolInt(cmp(a, b) != 0) }, nil) }
func primGt(in *Interp) { in.Binary(func(a, b int64) int64 { return boolInt(cmp(a, b) == 1) }, nil) }
func primLt(in *Interp) { in.Binary(func(a, b int64) int64 { return boolInt(cmp(a, b) == -1) }, nil) }
func primGe(in *Interp) { in.Binary(func(a, b int64) int64 { return boolInt(cmp(a, b) != -1) }, nil) }
func primLe(in *Interp) { in.Binary(func(a, b int64) int64 { return boolInt(cmp(a, b) != 1) }, nil) }

// and/or are value operators, not short-circuiting booleans: and returns
// a if b is non-zero else 0; or returns a if a is non-zero else b.
func primAnd(in *Interp) {
	in.Binary(func(a, b int64) int64 {
		if b != 0 {
			return a
		}
		return 0
	}, nil)
}

func primOr(in *Interp) {
	in.Binary(func(a, b int64) int64 {
		if a != 0 {
			return a
		}
		return b
	}, nil)
}

func primNot(in *Interp) {
	in.Unary(func(a int64) int64 { return boolInt(a == 0) }, nil)
}

// primSum reduces an Array to the sum of its elements; 0 for non-arrays.
// This is a reduction, not a broadcast, so it bypasses Unary.
func primSum(in *Interp) {
	v := in.Primary.PopValue()
	var total int64
	if v != nil {
		if v.Tag == Array {
			for _, e := range v.arr {
				total += int64(e)
			}
		}
		in.Alloc.Free(v)
	}
	in.Primary.Push(in.Alloc.NewInt(total))
}

// primSize pushes an Array's length; 0 for non-arrays. It inspects
// top-of-stack without consuming it, matching op_size.
func primSize(in *Interp) {
	v := in.Primary.Top()
	n := int64(0)
	if v != nil && v.Tag == Array {
		n = int64(len(v.arr))
	}
	in.Primary.Push(in.Alloc.NewInt(n))
}
