package rgbforth

// SymEntry is a dictionary entry: an owned name, an owned value, and the
// next entry in the (newest-first) intrusive linked list.
type SymEntry struct {
	Word  string
	Value *Value
	Next  *SymEntry
}

// Dictionary resolves names to values. It is searched head-first, and
// redefinition is implemented as forget-then-define, so the newest
// definition always wins on lookup; the redef word (primRedef) skips the
// forget, leaving
// the stale entry unreachable but allocated (§4.10, §5 — a documented,
// intentional leak).
type Dictionary struct {
	head *SymEntry
}

// Define prepends a new entry. If value is a Seq, the dictionary takes an
// owned deep copy of the referenced sequence — this is what turns a
// transient parsed sequence into a permanent, independently-owned
// definition body (§4.3).
func (d *Dictionary) Define(a *Allocator, word string, value *Value) {
	if value.Tag == Seq && value.seq != nil {
		value.seq = value.seq.DeepCopy(a)
	}
	d.head = &SymEntry{Word: word, Value: value, Next: d.head}
}

// Forget unlinks the first (newest) matching entry and frees its owned
// payload: the value, and — if the value was a Seq — the owned sequence
// tree it references.
func (d *Dictionary) Forget(a *Allocator, word string) {
	var prev *SymEntry
	cur := d.head
	for cur != nil && cur.Word != word {
		prev = cur
		cur = cur.Next
	}
	if cur == nil {
		return
	}
	if prev != nil {
		prev.Next = cur.Next
	} else {
		d.head = cur.Next
	}
	if cur.Value.Tag == Seq && cur.Value.seq != nil {
		cur.Value.seq.FreeTree(a)
	}
	a.Free(cur.Value)
}

// FindSym returns the first matching entry, or nil.
func (d *Dictionary) FindSym(word string) *SymEntry {
	for it := d.head; it != nil; it = it.Next {
		if it.Word == word {
			return it
		}
	}
	return nil
}

// Find returns the bound value of the first matching entry, or nil.
func (d *Dictionary) Find(word string) *Value {
	if sym := d.FindSym(word); sym != nil {
		return sym.Value
	}
	return nil
}

// Defined reports whether word has a binding.
func (d *Dictionary) Defined(word string) bool {
	return d.FindSym(word) != nil
}
