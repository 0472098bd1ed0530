package rgbforth

import "fmt"

// Run executes seq head to tail against in's primary stack (§4.6).
// Control-flow primitives (if/ife/loop/repeat/call/map) recursively call
// Run on sequences they pop from the stack; each nesting level indents its
// trace lines one tab deeper, so a diagnostic logged from inside a loop
// body is visually distinguishable from one logged at its enclosing line.
func (in *Interp) Run(seq *Sequence) {
	defer in.trace.withLogPrefix("\t")()
	for it := seq.head; it != nil; it = it.next {
		in.runValue(it)
	}
}

// runValue executes a single compiled element.
func (in *Interp) runValue(it *Value) {
	switch {
	case it.Tag == Func:
		in.funcCtx = it
		in.invoke(it.fnName, it.fn)
	case it.Tag == Sym && it.sym.Value.Tag == Func:
		in.funcCtx = it.sym.Value
		in.invoke(it.sym.Word, it.sym.Value.fn)
	default:
		in.Primary.Push(in.Alloc.Clone(it))
	}
	if in.stepOn && in.stepCallback != nil {
		in.stepCallback(it)
	}
}

// invoke calls a primitive, recovering any panic so a bug in a
// host-registered word degrades to a logged diagnostic instead of
// crashing the host process — preserving §7's "no exceptions are raised
// to the host" invariant even against genuine Go panics, not just the
// language's documented soft-error paths.
func (in *Interp) invoke(name string, fn Primitive) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("%v", r)
			}
			in.recoveredPanics++
			in.logf("!", "%v", primitiveError{word: name, err: err})
		}
	}()
	fn(in)
}
