package rgbforth

// primIf: ( seq test -- ); runs seq if test is non-zero.
func primIf(in *Interp) {
	test := in.Primary.PopInt(in.Alloc)
	seq := in.Primary.PopSeq(in.Alloc)
	if test != 0 && seq != nil {
		in.Run(seq)
	}
}

// primIfe: ( tseq eseq test -- ); runs tseq if test is non-zero, else eseq.
func primIfe(in *Interp) {
	test := in.Primary.PopInt(in.Alloc)
	eseq := in.Primary.PopSeq(in.Alloc)
	tseq := in.Primary.PopSeq(in.Alloc)
	if test != 0 {
		if tseq != nil {
			in.Run(tseq)
		}
	} else if eseq != nil {
		in.Run(eseq)
	}
}

// primLoop: ( seq begin end -- ); pushes i and runs seq for each i from
// begin toward end, exclusive of end. Ascending when begin < end,
// descending otherwise.
func primLoop(in *Interp) {
	end := in.Primary.PopInt(in.Alloc)
	begin := in.Primary.PopInt(in.Alloc)
	seq := in.Primary.PopSeq(in.Alloc)
	if seq == nil {
		return
	}
	if begin < end {
		for i := begin; i < end; i++ {
			in.Primary.Push(in.Alloc.NewInt(i))
			in.Run(seq)
		}
	} else {
		for i := begin; i > end; i-- {
			in.Primary.Push(in.Alloc.NewInt(i))
			in.Run(seq)
		}
	}
}

// primRepeat: ( seq n -- ); runs seq n times.
func primRepeat(in *Interp) {
	n := in.Primary.PopInt(in.Alloc)
	seq := in.Primary.PopSeq(in.Alloc)
	if seq == nil {
		return
	}
	for i := int64(0); i < n; i++ {
		in.Run(seq)
	}
}

// primCall: runs the current-func context's implicit sequence if one was
// carried (the parser attaches one when a plain word resolves to a
// sequence-valued dictionary entry); otherwise pops a name from the stack
// and runs its bound sequence.
func primCall(in *Interp) {
	if in.funcCtx != nil && in.funcCtx.fnSeq != nil {
		in.Run(in.funcCtx.fnSeq)
		return
	}
	word := in.Primary.PopString(in.Alloc)
	if v := in.Dict.Find(word); v != nil && v.Tag == Seq {
		in.Run(v.seq)
	}
}

// primMap: ( arr seq -- arr' ); runs seq once per array element, pushing
// the element first and storing the (coerced-to-int) result back at the
// same index.
func primMap(in *Interp) {
	seq := in.Primary.PopSeq(in.Alloc)
	v := in.Primary.PopValue()
	if v == nil {
		return
	}
	if v.Tag != Array || seq == nil {
		in.Primary.Push(v)
		return
	}
	for i := range v.arr {
		in.Primary.Push(in.Alloc.NewInt(int64(v.arr[i])))
		in.Run(seq)
		v.arr[i] = int32(in.Primary.PopInt(in.Alloc))
	}
	in.Primary.Push(v)
}
