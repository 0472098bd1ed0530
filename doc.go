/*
Package rgbforth implements a small stack-based language for driving
addressable RGB LED animations on memory-constrained hosts.

The language is FORTH-shaped: a dictionary of named words, a data stack
(plus an auxiliary stash), and user-defined words compiled from bracketed
sequences. It has no loops or conditionals beyond the control-flow
primitives (if, ife, loop, repeat, call, map); a word body is a sequence of
other words, literals and nested sequences, run with Interp.Run.

Values are a small tagged union (Int, Float, Str, Sym, Func, Seq, Array)
recycled through a free-list Allocator rather than garbage collected, since
the primitive family (array-backed LED frames, packed-color blends, HSV
curves) is sized for a microcontroller's memory budget even when the host
running this package is not.

A host embeds the language by constructing an Interp with New, feeding it
program text with RunLine or LoadFile+DrainInput, and registering any
additional host-specific primitives with Register. cmd/rgbforth is a
minimal sample host reading a program from stdin.

Section layout, by file:

  - value.go, alloc.go: the tagged Value union and its allocator.
  - stack.go, sequence.go, dict.go: the data stack, compiled sequences, and
    the word dictionary.
  - parser.go: tokenizing and compiling program text into sequences.
  - exec.go: running a compiled sequence against the stack.
  - arithmetic.go, broadcast.go: scalar and array-broadcasting numeric words.
  - control.go, stackops.go, defops.go, arrayops.go, misc.go, output.go:
    the rest of the primitive families, one file per family.
  - interp.go, builtins.go: the host-facing Interp type and its dictionary
    setup.
*/
package rgbforth
