package rgbforth

// Allocator is the process-wide free list of Value cells, recycling
// storage the way the original valloc()/vfree() pair does. Counters track
// malloc/alloc/free/current-allocated/current-freed plus a separate pair
// for array payload allocations, matching forth.cpp's MEMSTATS.
type Allocator struct {
	freeList *Value

	// limit is the live cell count at which OverLimit reports true; 0
	// means unbounded. Only array allocation sites check it (see
	// OverLimit); other cells are still allocated past the limit.
	limit int

	malloc           int
	allocated        int
	freed            int
	currentAllocated int
	currentFreed     int
	arrayMalloc      int
	arrayFreed       int
}

func (a *Allocator) alloc() *Value {
	if a.freeList != nil {
		v := a.freeList
		a.freeList = v.next
		zeroValue(v)
		a.allocated++
		a.currentAllocated++
		a.currentFreed--
		return v
	}
	a.malloc++
	a.allocated++
	a.currentAllocated++
	return &Value{}
}

// Free releases v's owned payload (Str needs none in Go; Array's backing
// slice is dropped) and recycles the cell onto the free list. A Seq value
// never frees the Sequence it references — sequences are owned by either
// a dictionary entry or a transient compile/execute context, never by a
// Seq value itself.
func (a *Allocator) Free(v *Value) {
	if v == nil {
		return
	}
	a.freed++
	a.currentAllocated--
	a.currentFreed++

	if v.Tag == Array && v.arr != nil {
		a.arrayFreed++
	}

	v.next = a.freeList
	a.freeList = v
	v.Tag = Free
	v.str = ""
	v.sym = nil
	v.fn = nil
	v.fnSeq = nil
	v.fnName = ""
	v.seq = nil
	v.arr = nil
}

func (a *Allocator) NewInt(n int64) *Value {
	v := a.alloc()
	v.Tag = Int
	v.i = n
	return v
}

func (a *Allocator) NewFloat(n float64) *Value {
	v := a.alloc()
	v.Tag = Float
	v.f = n
	return v
}

func (a *Allocator) NewStr(s string) *Value {
	v := a.alloc()
	v.Tag = Str
	v.str = s
	return v
}

func (a *Allocator) NewFunc(fn Primitive, implicit *Sequence) *Value {
	v := a.alloc()
	v.Tag = Func
	v.fn = fn
	v.fnSeq = implicit
	return v
}

// NewNamedFunc is NewFunc with a diagnostic name attached, used for the
// call-wrapper Func the parser synthesizes for sequence-valued words.
func (a *Allocator) NewNamedFunc(name string, fn Primitive, implicit *Sequence) *Value {
	v := a.NewFunc(fn, implicit)
	v.fnName = name
	return v
}

func (a *Allocator) NewSym(sym *SymEntry) *Value {
	v := a.alloc()
	v.Tag = Sym
	v.sym = sym
	return v
}

// NewSeq wraps a reference to seq. The returned Value does not own seq;
// freeing it never frees seq.
func (a *Allocator) NewSeq(seq *Sequence) *Value {
	v := a.alloc()
	v.Tag = Seq
	v.seq = seq
	return v
}

// NewArray allocates a length-n array of zeroed elements.
func (a *Allocator) NewArray(n int) *Value {
	v := a.alloc()
	v.Tag = Array
	v.arr = make([]int32, n)
	a.arrayMalloc++
	return v
}

// OverLimit reports whether the configured WithMemLimit has been reached.
func (a *Allocator) OverLimit() bool {
	return a.limit > 0 && a.currentAllocated >= a.limit
}

// Clone performs the deep_copy of §4.1: Str and Array payloads are copied,
// Seq is shared (not cloned), Sym and Func references are shared.
func (a *Allocator) Clone(src *Value) *Value {
	if src == nil {
		return a.NewInt(0)
	}
	v := a.alloc()
	v.Tag = src.Tag
	switch src.Tag {
	case Int:
		v.i = src.i
	case Float:
		v.f = src.f
	case Str:
		v.str = src.str
	case Func:
		v.fn = src.fn
		v.fnSeq = src.fnSeq
		v.fnName = src.fnName
	case Seq:
		v.seq = src.seq
	case Sym:
		v.sym = src.sym
	case Array:
		v.arr = append([]int32(nil), src.arr...)
		a.arrayMalloc++
	case Free:
		// cloning a Free cell yields another Free cell; never observed
		// in practice since Free values never reach user-visible stacks.
	}
	return v
}
