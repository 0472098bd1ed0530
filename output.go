package rgbforth

import (
	"strconv"

	"github.com/wmalkin/rgbforth/internal/runeio"
)

// displayString renders v the way the original firmware's prtvalue does:
// scalars print their value, compound/reference kinds print a bracketed
// tag rather than their contents.
func displayString(v *Value) string {
	if v == nil {
		return "<free>"
	}
	switch v.Tag {
	case Free:
		return "<free>"
	case Int:
		return strconv.FormatInt(v.i, 10)
	case Float:
		return formatFloat(v.f)
	case Str:
		return v.str
	case Func:
		return "<func>"
	case Seq:
		return "<seq>"
	case Array:
		return "<int[" + strconv.Itoa(len(v.arr)) + "]>"
	case Sym:
		return "<" + v.sym.Word + ">"
	default:
		return ""
	}
}

func (in *Interp) writeOut(s string) {
	if in.out != nil {
		runeio.WriteANSIString(in.out, s)
	}
	if in.tee != nil {
		runeio.WriteANSIString(in.tee, s)
	}
}

func (in *Interp) flushOut() {
	if in.out != nil {
		in.out.Flush()
	}
	if in.tee != nil {
		in.tee.Flush()
	}
}

// primDot: ( v -- ); prints v's display form followed by a space.
func primDot(in *Interp) {
	v := in.Primary.PopValue()
	in.writeOut(displayString(v))
	in.writeOut(" ")
	if v != nil {
		in.Alloc.Free(v)
	}
	in.flushOut()
}

func primCr(in *Interp) {
	in.writeOut("\n")
	in.flushOut()
}

// primPrtStk prints every value on Primary, top to bottom, without
// consuming any of them.
func primPrtStk(in *Interp) {
	for it := in.Primary.Top(); it != nil; it = it.next {
		in.writeOut(displayString(it))
		in.writeOut(" ")
	}
	in.writeOut("\n")
	in.flushOut()
}

// primPrtDict prints every dictionary entry, newest first, as "word: value".
func primPrtDict(in *Interp) {
	for sym := in.Dict.head; sym != nil; sym = sym.Next {
		in.writeOut(sym.Word)
		in.writeOut(": ")
		in.writeOut(displayString(sym.Value))
		in.writeOut("\n")
	}
	in.flushOut()
}
