package rgbforth

// primArray: ( n -- arr ); allocates a zero-filled array of length n.
func primArray(in *Interp) {
	n := in.Primary.PopInt(in.Alloc)
	if n < 0 {
		n = 0
	}
	if in.Alloc.OverLimit() {
		in.logf("!", "array: mem limit reached, allocating length 0 instead of %d", n)
		n = 0
	}
	in.Primary.Push(in.Alloc.NewArray(int(n)))
}

// primIdentity: ( arr -- arr' ); fills arr in place with 0, 1, 2, ...,
// matching op_identity. Non-arrays pass through unchanged.
func primIdentity(in *Interp) {
	v := in.Primary.PopValue()
	if v == nil {
		return
	}
	if v.Tag == Array {
		for i := range v.arr {
			v.arr[i] = int32(i)
		}
	}
	in.Primary.Push(v)
}

// primIndex: ( indices idxarray -- indices ); the original compiles a
// body that pops idxarray, pops indices, then pushes indices straight
// back without touching either — an accidental no-op preserved exactly
// rather than "fixed" (§6 Open Questions).
func primIndex(in *Interp) {
	_ = in.Primary.PopValue()
	indices := in.Primary.PopValue()
	if indices != nil {
		in.Primary.Push(indices)
	}
}

// primGeta: ( arr i -- arr v ); reads arr[i], 0 if out of range or not an
// array. Does not consume arr.
func primGeta(in *Interp) {
	i := in.Primary.PopInt(in.Alloc)
	v := in.Primary.Top()
	var elem int32
	if v != nil && v.Tag == Array && i >= 0 && int(i) < len(v.arr) {
		elem = v.arr[i]
	}
	in.Primary.Push(in.Alloc.NewInt(int64(elem)))
}

// primPuta: ( arr i x -- arr ); writes x into arr[i] in place, leaving
// arr on the stack. Out-of-range i and non-array operands are ignored.
func primPuta(in *Interp) {
	x := in.Primary.PopInt(in.Alloc)
	i := in.Primary.PopInt(in.Alloc)
	v := in.Primary.Top()
	if v != nil && v.Tag == Array && i >= 0 && int(i) < len(v.arr) {
		v.arr[i] = int32(x)
	}
}

// primDgeta: ( name i -- v ); like geta but against an array bound in
// the dictionary by name rather than on the stack.
func primDgeta(in *Interp) {
	i := in.Primary.PopInt(in.Alloc)
	name := in.Primary.PopString(in.Alloc)
	v := in.Dict.Find(name)
	var elem int32
	if v != nil && v.Tag == Array && i >= 0 && int(i) < len(v.arr) {
		elem = v.arr[i]
	}
	in.Primary.Push(in.Alloc.NewInt(int64(elem)))
}

// primDputa: ( name i x -- ); like puta but against an array bound in
// the dictionary by name rather than on the stack.
func primDputa(in *Interp) {
	x := in.Primary.PopInt(in.Alloc)
	i := in.Primary.PopInt(in.Alloc)
	name := in.Primary.PopString(in.Alloc)
	v := in.Dict.Find(name)
	if v != nil && v.Tag == Array && i >= 0 && int(i) < len(v.arr) {
		v.arr[i] = int32(x)
	}
}
