package rgbforth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Sequence_Close_nested_becomes_element_of_outer(t *testing.T) {
	var a Allocator

	outer := NewSequence(nil)
	inner := NewSequence(outer)
	inner.PushTail(a.NewInt(1))

	closed := inner.Close(&a)
	require.Same(t, outer, closed, "Close returns the enclosing sequence")
	require.Nil(t, inner.outer, "Close clears the outer link")

	v := outer.Top()
	require.NotNil(t, v)
	require.Equal(t, Seq, v.Tag)
	require.Same(t, inner, v.seq, "the closed sequence becomes a Seq element of its outer")
}

func Test_Sequence_Close_top_level_is_a_noop(t *testing.T) {
	var a Allocator
	seq := NewSequence(nil)
	closed := seq.Close(&a)
	require.Same(t, seq, closed, "closing a sequence with no outer link returns itself")
}

func Test_Sequence_DeepCopy_is_independent(t *testing.T) {
	var a Allocator

	inner := NewSequence(nil)
	inner.PushTail(a.NewInt(1))

	outer := NewSequence(nil)
	outer.PushTail(a.NewInt(0))
	outer.PushTail(a.NewSeq(inner))

	cp := outer.DeepCopy(&a)

	cpInner := cp.Top().next.seq
	require.NotSame(t, inner, cpInner, "nested sequences must be recursively copied, not shared")
	require.Equal(t, int64(1), cpInner.Top().i)

	cpInner.Top().i = 99
	require.Equal(t, int64(1), inner.Top().i, "mutating the copy must not affect the original")
}

func Test_Sequence_FreeTree_recurses_into_nested_sequences(t *testing.T) {
	var a Allocator

	inner := NewSequence(nil)
	inner.PushTail(a.NewInt(1))

	outer := NewSequence(nil)
	outer.PushTail(a.NewSeq(inner))

	outer.FreeTree(&a)

	require.Nil(t, outer.Top())
	require.Nil(t, inner.Top(), "FreeTree must recurse into a nested sequence reached through a Seq value")
}
