package rgbforth

// primDup pushes a deep copy of the top-of-stack value. An empty stack
// hardens to pushing Int(0) rather than dereferencing a null top.
func primDup(in *Interp) {
	top := in.Primary.Top()
	if top == nil {
		in.Primary.Push(in.Alloc.NewInt(0))
		return
	}
	in.Primary.Push(in.Alloc.Clone(top))
}

func pushAt(in *Interp, n int) {
	v := in.Primary.At(n)
	if v == nil {
		in.Primary.Push(in.Alloc.NewInt(0))
		return
	}
	in.Primary.Push(in.Alloc.Clone(v))
}

func primOver(in *Interp) { pushAt(in, 1) }
func primAty(in *Interp)  { pushAt(in, 1) }
func primAtz(in *Interp)  { pushAt(in, 2) }
func primAtu(in *Interp)  { pushAt(in, 3) }
func primAtv(in *Interp)  { pushAt(in, 4) }
func primAtw(in *Interp)  { pushAt(in, 5) }

func primAt(in *Interp) {
	n := in.Primary.PopInt(in.Alloc)
	pushAt(in, int(n))
}

// primSwap exchanges the top two values.
func primSwap(in *Interp) {
	a, ok1 := in.Primary.Pop()
	if !ok1 {
		return
	}
	b, ok2 := in.Primary.Pop()
	if !ok2 {
		in.Primary.Push(a)
		return
	}
	in.Primary.Push(a)
	in.Primary.Push(b)
}

// primRot: pop v1 (top), v2, v3 (bottom); push v1, v3, v2 — matching
// op_rot exactly, including its non-obvious final order (v2 on top, then
// v3, then v1 on the bottom).
func primRot(in *Interp) {
	vs, ok := popN(in, 3)
	if !ok {
		pushBack(in, vs)
		return
	}
	// vs[2]=v1(top), vs[1]=v2, vs[0]=v3(bottom); push v1, v3, v2.
	in.Primary.Push(vs[2])
	in.Primary.Push(vs[0])
	in.Primary.Push(vs[1])
}

// primRup is rot's inverse: pop v1, v2, v3; push v2, v1, v3.
func primRup(in *Interp) {
	vs, ok := popN(in, 3)
	if !ok {
		pushBack(in, vs)
		return
	}
	in.Primary.Push(vs[1])
	in.Primary.Push(vs[2])
	in.Primary.Push(vs[0])
}

// primRot4: pop v1..v4 (top to bottom); push v1, v4, v3, v2.
func primRot4(in *Interp) {
	vs, ok := popN(in, 4)
	if !ok {
		pushBack(in, vs)
		return
	}
	// vs[3]=v1(top), vs[2]=v2, vs[1]=v3, vs[0]=v4(bottom).
	in.Primary.Push(vs[3])
	in.Primary.Push(vs[0])
	in.Primary.Push(vs[1])
	in.Primary.Push(vs[2])
}

// primRup4: pop v1..v4; push v3, v2, v1, v4.
func primRup4(in *Interp) {
	vs, ok := popN(in, 4)
	if !ok {
		pushBack(in, vs)
		return
	}
	in.Primary.Push(vs[1])
	in.Primary.Push(vs[2])
	in.Primary.Push(vs[3])
	in.Primary.Push(vs[0])
}

// primRotn: n popped from the stack; moves the current top element down
// to depth n, shifting the n-1 elements below it up by one (matching
// op_rotn's list splice, reimplemented through pop/push).
func primRotn(in *Interp) {
	n := int(in.Primary.PopInt(in.Alloc))
	if n < 2 {
		return
	}
	vs, ok := popN(in, n)
	if !ok {
		pushBack(in, vs)
		return
	}
	last := len(vs) - 1
	in.Primary.Push(vs[last])
	for i := 0; i < last; i++ {
		in.Primary.Push(vs[i])
	}
}

// primRupn is rotn's inverse: moves the element at depth n to the top,
// shifting the rest down by one.
func primRupn(in *Interp) {
	n := int(in.Primary.PopInt(in.Alloc))
	if n < 2 {
		return
	}
	vs, ok := popN(in, n)
	if !ok {
		pushBack(in, vs)
		return
	}
	for i := 1; i < len(vs); i++ {
		in.Primary.Push(vs[i])
	}
	in.Primary.Push(vs[0])
}

func primDrop(in *Interp) {
	if v, ok := in.Primary.Pop(); ok {
		in.Alloc.Free(v)
	}
}

func primDup2(in *Interp) {
	primOver(in)
	primOver(in)
}

func primDrop2(in *Interp) {
	primDrop(in)
	primDrop(in)
}

func primClst(in *Interp) {
	in.Primary.Clear(in.Alloc)
}

func primStash(in *Interp) {
	if v, ok := in.Primary.Pop(); ok {
		in.Stash.Push(v)
	}
}

func primUnstash(in *Interp) {
	if v, ok := in.Stash.Pop(); ok {
		in.Primary.Push(v)
	}
}

func primSwapStash(in *Interp) {
	in.Primary, in.Stash = in.Stash, in.Primary
}

func primStackSize(in *Interp) {
	in.Primary.Push(in.Alloc.NewInt(int64(in.Primary.Size())))
}

// popN pops n values top-first into vs[0..n-1] with vs[0] being the
// deepest (last popped); ok is false if the stack underflowed, in which
// case vs holds whatever was actually popped, topmost first, so callers
// can hand it to pushBack to restore the stack.
func popN(in *Interp, n int) (vs []*Value, ok bool) {
	popped := make([]*Value, 0, n)
	for i := 0; i < n; i++ {
		v, got := in.Primary.Pop()
		if !got {
			return popped, false
		}
		popped = append(popped, v)
	}
	// popped is topmost-first; reverse so vs[0] is deepest.
	vs = make([]*Value, n)
	for i, v := range popped {
		vs[n-1-i] = v
	}
	return vs, true
}

// pushBack restores values popped by popN's failure path, deepest-first
// order, so the stack ends up exactly as it was.
func pushBack(in *Interp, vs []*Value) {
	for i := len(vs) - 1; i >= 0; i-- {
		in.Primary.Push(vs[i])
	}
}
