package rgbforth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Dictionary_Define_newest_wins(t *testing.T) {
	var a Allocator
	var d Dictionary

	d.Define(&a, "x", a.NewInt(1))
	d.Define(&a, "x", a.NewInt(2))

	require.Equal(t, int64(2), d.Find("x").i, "FindSym/Find walk head-first, newest entry first")
}

func Test_Dictionary_Forget(t *testing.T) {
	var a Allocator
	var d Dictionary

	d.Define(&a, "x", a.NewInt(1))
	d.Forget(&a, "x")
	require.Nil(t, d.Find("x"))
	require.False(t, d.Defined("x"))

	require.NotPanics(t, func() { d.Forget(&a, "never-defined") })
}

func Test_Dictionary_Define_takes_deep_copy_of_seq(t *testing.T) {
	var a Allocator
	var d Dictionary

	seq := NewSequence(nil)
	seq.PushTail(a.NewInt(9))

	d.Define(&a, "word", a.NewSeq(seq))

	bound := d.Find("word")
	require.NotSame(t, seq, bound.seq, "Define must deep-copy the referenced sequence")
	require.Equal(t, int64(9), bound.seq.Top().i)
}

func Test_Dictionary_def_then_redef_leaks_the_shadowed_entry(t *testing.T) {
	// def is forget-then-define, so a second def reclaims the dictionary
	// slot; redef skips the forget, intentionally leaving the earlier
	// entry unreachable but still allocated (§3/§5 of the behavior this
	// mirrors).
	var a Allocator
	var d Dictionary

	d.Define(&a, "x", a.NewInt(1))
	d.Forget(&a, "x")
	d.Define(&a, "x", a.NewInt(2))
	require.Equal(t, 1, countEntries(&d, "x"), "def must not leave a shadowed entry behind")

	d.Define(&a, "x", a.NewInt(3)) // redef-style: no forget first
	require.Equal(t, 2, countEntries(&d, "x"), "redef-style definition must leak the shadowed entry")
	require.Equal(t, int64(3), d.Find("x").i, "lookup still returns the newest entry")
}

func countEntries(d *Dictionary, word string) int {
	n := 0
	for it := d.head; it != nil; it = it.Next {
		if it.Word == word {
			n++
		}
	}
	return n
}
