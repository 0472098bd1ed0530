package rgbforth

// Stack is a singly linked list of *Value, matching ValueStack: push
// prepends at head, pushTail appends at tail, pop removes from head.
// Interp holds two: Primary and Stash.
type Stack struct {
	head *Value
	tail *Value
}

func (s *Stack) Push(v *Value) {
	v.next = s.head
	s.head = v
	if s.tail == nil {
		s.tail = v
	}
}

func (s *Stack) PushTail(v *Value) {
	v.next = nil
	if s.tail != nil {
		s.tail.next = v
	}
	s.tail = v
	if s.head == nil {
		s.head = v
	}
}

// Pop removes and returns the top value. ok is false on an empty stack;
// callers must treat that as "use the coercion zero" per §7/§9, never
// dereference the returned nil.
func (s *Stack) Pop() (v *Value, ok bool) {
	v = s.head
	if v == nil {
		return nil, false
	}
	s.head = v.next
	if s.head == nil {
		s.tail = nil
	}
	v.next = nil
	return v, true
}

func (s *Stack) Top() *Value  { return s.head }
func (s *Stack) Back() *Value { return s.tail }

// At returns the n-th value from the top (0-based); nil past the end.
func (s *Stack) At(n int) *Value {
	it := s.head
	for n > 0 && it != nil {
		n--
		it = it.next
	}
	return it
}

func (s *Stack) Size() int {
	n := 0
	for it := s.head; it != nil; it = it.next {
		n++
	}
	return n
}

// Clear frees every value remaining on the stack.
func (s *Stack) Clear(a *Allocator) {
	it := s.head
	for it != nil {
		nxt := it.next
		a.Free(it)
		it = nxt
	}
	s.head = nil
	s.tail = nil
}

func (s *Stack) Reverse() {
	var nhead *Value
	ntail := s.head
	it := s.head
	for it != nil {
		nxt := it.next
		it.next = nhead
		nhead = it
		it = nxt
	}
	s.head = nhead
	s.tail = ntail
}

// PopInt pops and coerces to int, freeing the consumed cell. Empty stack
// yields the coercion zero.
func (s *Stack) PopInt(a *Allocator) int64 {
	v, ok := s.Pop()
	if !ok {
		return 0
	}
	n := v.AsInt()
	a.Free(v)
	return n
}

func (s *Stack) PopFloat(a *Allocator) float64 {
	v, ok := s.Pop()
	if !ok {
		return 0
	}
	n := v.AsFloat()
	a.Free(v)
	return n
}

func (s *Stack) PopString(a *Allocator) string {
	v, ok := s.Pop()
	if !ok {
		return ""
	}
	str := v.AsString()
	a.Free(v)
	return str
}

func (s *Stack) PopSeq(a *Allocator) *Sequence {
	v, ok := s.Pop()
	if !ok {
		return nil
	}
	seq := v.AsSeq()
	a.Free(v)
	return seq
}

// PopValue pops the raw value without coercion or freeing, for primitives
// that need to inspect the tag (e.g. array ops) before deciding whether to
// free it. Returns nil on empty.
func (s *Stack) PopValue() *Value {
	v, _ := s.Pop()
	return v
}
