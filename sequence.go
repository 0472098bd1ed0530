package rgbforth

// Sequence is a compiled ordered list of values — the unit of execution.
// It shares Stack's head/tail/push/pop shape but additionally carries a
// parse-time outer back-reference, used only while the parser has this
// sequence open for nested '[' ... ']'; the reference is cleared by Close.
type Sequence struct {
	Stack
	outer *Sequence
}

// NewSequence allocates an empty sequence with the given outer link
// (nil for a top-level sequence).
func NewSequence(outer *Sequence) *Sequence {
	return &Sequence{outer: outer}
}

// Close returns the enclosing sequence (or seq itself if there is none)
// and clears seq's outer link, matching ValueStack::closeSequence. As a
// side effect, closing a nested sequence appends a Seq value referencing
// it onto the outer sequence's tail — this is how a bracketed literal
// `[ ... ]` or a `:name ... ;` body becomes a pushable element of its
// enclosing sequence.
func (seq *Sequence) Close(a *Allocator) *Sequence {
	if seq.outer != nil {
		outer := seq.outer
		seq.outer = nil
		outer.PushTail(a.NewSeq(seq))
		return outer
	}
	return seq
}

// DeepCopy clones seq's element list, recursively deep-copying any nested
// Seq values so the copy is fully independent of the original — this is
// what Dictionary.Define uses to turn a transient parsed sequence into a
// permanently owned definition body.
func (seq *Sequence) DeepCopy(a *Allocator) *Sequence {
	cp := NewSequence(nil)
	for it := seq.head; it != nil; it = it.next {
		nv := a.Clone(it)
		if nv.Tag == Seq && nv.seq != nil {
			nv.seq = nv.seq.DeepCopy(a)
		}
		cp.PushTail(nv)
	}
	return cp
}

// FreeTree frees every value in seq, and recursively frees any nested
// sequence reached through a Seq value — used when a transient top-level
// sequence finishes executing, or when a dictionary entry is forgotten.
func (seq *Sequence) FreeTree(a *Allocator) {
	it := seq.head
	for it != nil {
		nxt := it.next
		if it.Tag == Seq && it.seq != nil {
			it.seq.FreeTree(a)
		}
		a.Free(it)
		it = nxt
	}
	seq.head = nil
	seq.tail = nil
}
