package rgbforth

// Tag identifies which payload of a Value is live. Exactly one is live at
// a time; Free means the cell is sitting in the allocator's free list.
type Tag int

const (
	Free Tag = iota
	Int
	Float
	Str
	Sym
	Func
	Seq
	Array
)

func (tag Tag) String() string {
	switch tag {
	case Int:
		return "Int"
	case Float:
		return "Float"
	case Str:
		return "Str"
	case Sym:
		return "Sym"
	case Func:
		return "Func"
	case Seq:
		return "Seq"
	case Array:
		return "Array"
	default:
		return "Free"
	}
}

// Primitive is the ABI every built-in and host-registered word follows:
// no arguments, no return, all communication through the stack and the
// interpreter's current-func context.
type Primitive func(in *Interp)

// Value is the tagged-variant cell at the heart of the language. Only one
// of the payload fields below is meaningful for a given Tag: Str and Array
// own heap storage that must be released on Free; Seq, Sym, and Func hold
// non-owning references into structures owned elsewhere (a Sequence's
// dictionary entry, or the transient parse/execute context).
type Value struct {
	Tag  Tag
	next *Value

	i   int64
	f   float64
	str string // Str payload; immutable once set, so no separate clone step is needed on read

	sym *SymEntry

	fn      Primitive
	fnSeq   *Sequence // implicit sequence parameter carried by a Func value
	fnName  string    // word this Func was bound to, for diagnostics only

	seq *Sequence

	arr []int32
}

func zeroValue(v *Value) {
	v.Tag = Free
	v.next = nil
	v.i = 0
	v.f = 0
	v.str = ""
	v.sym = nil
	v.fn = nil
	v.fnSeq = nil
	v.fnName = ""
	v.seq = nil
	v.arr = nil
}

// AsInt resolves v to an int, chasing Sym references. Str parses base-10
// (non-numeric text yields 0); Float truncates; unsupported tags yield 0.
func (v *Value) AsInt() int64 {
	if v == nil {
		return 0
	}
	switch v.Tag {
	case Int:
		return v.i
	case Float:
		return int64(v.f)
	case Str:
		return parseIntPrefix(v.str)
	case Sym:
		return v.sym.Value.AsInt()
	default:
		return 0
	}
}

// AsFloat resolves v to a float64, chasing Sym references.
func (v *Value) AsFloat() float64 {
	if v == nil {
		return 0
	}
	switch v.Tag {
	case Int:
		return float64(v.i)
	case Float:
		return v.f
	case Str:
		return parseFloatPrefix(v.str)
	case Sym:
		return v.sym.Value.AsFloat()
	default:
		return 0
	}
}

// AsString resolves v to a string, chasing Sym references.
func (v *Value) AsString() string {
	if v == nil {
		return ""
	}
	switch v.Tag {
	case Int:
		return formatInt(v.i)
	case Float:
		return formatFloat(v.f)
	case Str:
		return v.str
	case Sym:
		return v.sym.Value.AsString()
	default:
		return ""
	}
}

// AsSeq resolves v to its referenced Sequence, chasing Sym references.
// Returns nil if v does not carry a sequence.
func (v *Value) AsSeq() *Sequence {
	if v == nil {
		return nil
	}
	switch v.Tag {
	case Seq:
		return v.seq
	case Sym:
		return v.sym.Value.AsSeq()
	default:
		return nil
	}
}

// AsArray returns the Array payload, or nil for any other tag.
func (v *Value) AsArray() []int32 {
	if v == nil || v.Tag != Array {
		return nil
	}
	return v.arr
}

// isArrayish reports whether v should be treated as an integer container
// for the purposes of the broadcast float/int decision rule (§4.7): Int
// and Array both count, and so does a nil operand (an exhausted stack),
// which stands for the integer zero; everything else forces the float form
// when one is available.
func isArrayish(v *Value) bool {
	t := tagOf(v)
	return v == nil || t == Int || t == Array
}
