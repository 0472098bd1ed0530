package rgbforth

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func runLines(t *testing.T, in *Interp, lines ...string) {
	for _, line := range lines {
		require.False(t, in.IsOpen(), "must not feed a new line while one is still pending: %q", line)
		in.RunLine(line)
	}
}

func Test_Interp_arithmetic_and_print(t *testing.T) {
	var out bytes.Buffer
	in := New(WithOutput(&out))

	runLines(t, in, "1 2 + .")
	require.Equal(t, "3 ", out.String())
}

func Test_Interp_rot_matches_documented_example(t *testing.T) {
	var out bytes.Buffer
	in := New(WithOutput(&out))

	runLines(t, in, "1 2 3 rot .")
	require.Equal(t, "2 ", out.String(), "1 2 3 rot must leave 2 on top")
}

func Test_Interp_word_definition_and_call(t *testing.T) {
	var out bytes.Buffer
	in := New(WithOutput(&out))

	runLines(t, in, ": double dup + ;", "21 double .")
	require.Equal(t, "42 ", out.String())
}

func Test_Interp_multiline_definition_stays_open_until_semicolon(t *testing.T) {
	in := New()
	in.RunLine(": square")
	require.True(t, in.IsOpen(), "a pending definition must report open until ; closes it")
	in.RunLine("dup * ;")
	require.False(t, in.IsOpen())
	require.True(t, in.Dict.Defined("square"))
}

func Test_Interp_def_and_redef(t *testing.T) {
	var out bytes.Buffer
	in := New(WithOutput(&out))

	runLines(t, in, "10 !x", "@x .")
	require.Equal(t, "10 ", out.String())

	out.Reset()
	runLines(t, in, "20 !x", "@x .")
	require.Equal(t, "20 ", out.String())
}

func Test_Interp_vget_on_unbound_name_yields_zero(t *testing.T) {
	var out bytes.Buffer
	in := New(WithOutput(&out))
	runLines(t, in, "@never_defined .")
	require.Equal(t, "0 ", out.String())
}

func Test_Interp_if_else(t *testing.T) {
	var out bytes.Buffer
	in := New(WithOutput(&out))
	// 0 gt turns the raw value into a 0/1 test; 3 rupn then brings that
	// test, pushed before the two branch literals, back to the top where
	// ife expects it (tseq eseq test --).
	runLines(t, in, `: describe 0 gt [ 'pos . ] [ 'nonpos . ] 3 rupn ife ;`, "5 describe")
	require.Equal(t, "pos ", out.String())

	out.Reset()
	runLines(t, in, "-5 describe")
	require.Equal(t, "nonpos ", out.String())
}

func Test_Interp_loop_accumulates(t *testing.T) {
	var out bytes.Buffer
	in := New(WithOutput(&out))
	runLines(t, in,
		"0 !total",
		"[ @total + !total ] 1 5 loop",
		"@total .")
	require.Equal(t, "10 ", out.String(), "sum of 1..4 inclusive, loop excludes the end bound")
}

func Test_Interp_array_map_doubles_each_element(t *testing.T) {
	var out bytes.Buffer
	in := New(WithOutput(&out))
	runLines(t, in,
		"3 array !a",
		"@a identity !a",
		"@a [ 2 * ] map !a",
		"@a 0 geta .",
		"@a 1 geta .",
		"@a 2 geta .")
	require.Equal(t, "0 2 4 ", out.String())
}

func Test_Interp_line_comment_is_ignored(t *testing.T) {
	var out bytes.Buffer
	in := New(WithOutput(&out))
	runLines(t, in, "// this whole line is commentary", "1 .")
	require.Equal(t, "1 ", out.String())
}

func Test_Interp_block_comment_toggle(t *testing.T) {
	var out bytes.Buffer
	in := New(WithOutput(&out))
	runLines(t, in, "~~~", "this is elided entirely 1 2 3 . . .", "~~~", "7 .")
	require.Equal(t, "7 ", out.String())
}

func Test_Interp_unknown_word_parses_as_zero(t *testing.T) {
	var out bytes.Buffer
	in := New(WithOutput(&out))
	runLines(t, in, "totally_bogus_word .")
	require.Equal(t, "0 ", out.String())
}

func Test_Interp_recovers_from_a_panicking_host_primitive(t *testing.T) {
	var out bytes.Buffer
	var logs []string
	in := New(
		WithOutput(&out),
		WithLogf(func(mess string, args ...interface{}) { logs = append(logs, mess) }),
	)
	require.NoError(t, in.Register("boom", func(*Interp) { panic("kaboom") }))

	require.NotPanics(t, func() { in.RunLine("boom") })
	require.NotEmpty(t, logs, "a recovered primitive panic must be logged, not swallowed silently")

	runLines(t, in, "1 .")
	require.Equal(t, "1 ", out.String(), "the interpreter must remain usable after recovering from a panic")
}

func Test_Interp_Register_rejects_sigil_prefixed_names(t *testing.T) {
	in := New()
	err := in.Register("[weird", func(*Interp) {})
	require.Error(t, err)
}

func Test_Interp_mem_limit_caps_array_allocation(t *testing.T) {
	var out bytes.Buffer
	in := New(WithOutput(&out), WithMemLimit(1))
	// the limit is reached the moment one cell is live; a subsequent
	// array allocation must be capped to length 0 rather than growing.
	runLines(t, in, "5 array !a", "@a size .")
	require.Equal(t, "0 ", out.String())
}
