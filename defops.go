package rgbforth

// primDef: ( value name -- ); forgets any existing binding for name
// before defining it again, so a word's prior binding is always
// reclaimed rather than shadowed.
func primDef(in *Interp) {
	name := in.Primary.PopString(in.Alloc)
	v := in.Primary.PopValue()
	if v == nil {
		return
	}
	in.Dict.Forget(in.Alloc, name)
	in.Dict.Define(in.Alloc, name, v)
}

// primRedef binds name to value without forgetting any existing
// binding first, so the prior entry (if any) is shadowed rather than
// reclaimed and leaks.
func primRedef(in *Interp) {
	name := in.Primary.PopString(in.Alloc)
	v := in.Primary.PopValue()
	if v == nil {
		return
	}
	in.Dict.Define(in.Alloc, name, v)
}

func primForget(in *Interp) {
	name := in.Primary.PopString(in.Alloc)
	in.Dict.Forget(in.Alloc, name)
}

// primDefQuery pushes 1 if name is currently bound, else 0.
func primDefQuery(in *Interp) {
	name := in.Primary.PopString(in.Alloc)
	in.Primary.Push(in.Alloc.NewInt(boolInt(in.Dict.Defined(name))))
}

// primVget: ( name -- value ); pushes a deep copy of name's bound value,
// or 0 if name is unbound. The @name sigil compiles to the name string
// followed by this primitive; the word vget can also be called directly.
func primVget(in *Interp) {
	name := in.Primary.PopString(in.Alloc)
	sym := in.Dict.FindSym(name)
	if sym == nil {
		in.Primary.Push(in.Alloc.NewInt(0))
		return
	}
	in.Primary.Push(in.Alloc.Clone(sym.Value))
}
