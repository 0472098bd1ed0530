package rgbforth

import (
	"io"
	"strings"

	"github.com/wmalkin/rgbforth/internal/fileinput"
	"github.com/wmalkin/rgbforth/internal/flushio"
	"github.com/wmalkin/rgbforth/internal/panicerr"
)

// Interp is the host-facing embeddable interpreter (§6 of the language's
// external interface): construct with New, feed it lines with RunLine or
// Values with Eval, and read results off Primary.
type Interp struct {
	Alloc   *Allocator
	Primary Stack
	Stash   Stack
	Dict    Dictionary

	funcCtx *Value

	stepOn          bool
	stepCallback    func(*Value)
	blockComment    bool
	parseCurrent    *Sequence
	parsePending    string
	parsePendingSet bool

	rgbFormat int

	out flushio.WriteFlusher
	tee flushio.WriteFlusher

	input *fileinput.Input

	trace           traceLog
	recoveredPanics int

	resetHook   func()
	freeMemHook func() int64
}

// InterpOption configures an Interp at construction time.
type InterpOption func(*Interp)

// WithInput queues r as a source of program text, consumed by DrainInput;
// multiple calls queue multiple sources in order, mirroring the teacher's
// bootstrap-then-interactive loader chain.
func WithInput(r io.Reader) InterpOption {
	return func(in *Interp) { in.LoadFile(r) }
}

// WithOutput sets the stream "." and friends print to. Defaults to a
// discarding writer if never set.
func WithOutput(w io.Writer) InterpOption {
	return func(in *Interp) { in.out = flushio.NewWriteFlusher(w) }
}

// WithTee mirrors everything written to the output stream to w as well,
// for a host that wants to log what went to hardware.
func WithTee(w io.Writer) InterpOption {
	return func(in *Interp) { in.tee = flushio.NewWriteFlusher(w) }
}

// WithLogf directs trace/diagnostic lines (recovered panics, mem-limit
// notices) through fn instead of discarding them.
func WithLogf(fn func(string, ...interface{})) InterpOption {
	return func(in *Interp) { in.trace.logfn = fn }
}

// WithStepCallback registers where step events are delivered; the `step`
// primitive is what actually turns step mode on from inside a program.
func WithStepCallback(fn func(*Value)) InterpOption {
	return func(in *Interp) { in.stepCallback = fn }
}

// WithBlockComment sets the initial block-comment toggle state, letting a
// host elide a saved program's leading commentary before feeding it.
func WithBlockComment(on bool) InterpOption {
	return func(in *Interp) { in.blockComment = on }
}

// WithMemLimit bounds array allocation: once the allocator's live cell
// count reaches n, further array allocations are capped to length 0
// rather than growing unbounded — the nearest analogue, for a tagged-value
// VM, of bounding a flat memory tape.
func WithMemLimit(n int) InterpOption {
	return func(in *Interp) { in.Alloc.limit = n }
}

// WithResetHook registers the host callback invoked by the `rb` primitive.
func WithResetHook(fn func()) InterpOption {
	return func(in *Interp) { in.resetHook = fn }
}

// WithFreeMemHook registers the host callback `mem:sram` reports; absent a
// hook, a runtime.MemStats.HeapIdle snapshot is used instead.
func WithFreeMemHook(fn func() int64) InterpOption {
	return func(in *Interp) { in.freeMemHook = fn }
}

// New constructs a ready-to-use Interp: allocator, stacks, dictionary, and
// every built-in primitive family registered.
func New(opts ...InterpOption) *Interp {
	in := &Interp{
		Alloc:        &Allocator{},
		parseCurrent: NewSequence(nil),
	}
	in.out = flushio.NewWriteFlusher(io.Discard)
	in.trace.markWidth = 1
	in.registerBuiltins()
	for _, opt := range opts {
		opt(in)
	}
	return in
}

func (in *Interp) logf(mark, format string, args ...interface{}) {
	in.trace.logf(mark, format, args...)
}

// IsOpen reports whether a sequence or pending definition is still open
// across line boundaries, per §7's "expose a query" requirement.
func (in *Interp) IsOpen() bool {
	return in.parseCurrent.outer != nil || in.parsePendingSet
}

// Register adds a host primitive under name. Sigil-prefixed names are
// rejected since the parser would never route a token to them by plain
// dictionary lookup.
func (in *Interp) Register(name string, fn Primitive) error {
	if name == "" {
		return sigilError{word: name}
	}
	switch name[0] {
	case '[', ']', '@', '!', '#', '\'', ':', ';', '(':
		return sigilError{word: name, ch: name[0]}
	}
	in.Dict.Define(in.Alloc, name, in.Alloc.NewNamedFunc(name, fn, nil))
	return nil
}

// SetStepCallback changes where step events are delivered.
func (in *Interp) SetStepCallback(fn func(*Value)) { in.stepCallback = fn }

// SetBlockComment lets a host toggle block-comment state externally (used
// to elide a saved program's file header before replaying it).
func (in *Interp) SetBlockComment(on bool) { in.blockComment = on }

// RunLine feeds one line of program text (§6): `//` comments and the
// `~~~` block-comment toggle are handled here, before tokens ever reach
// the parser; a line that leaves no sequence open executes immediately.
func (in *Interp) RunLine(text string) {
	err := panicerr.Recover("RunLine", func() error {
		in.runLine(text)
		return nil
	})
	in.reportRecovered("RunLine", err)
}

func (in *Interp) runLine(text string) {
	if strings.HasPrefix(text, "//") {
		return
	}
	if strings.TrimSpace(text) == "~~~" {
		in.blockComment = !in.blockComment
		return
	}
	if in.blockComment {
		return
	}
	for _, tok := range tokenize(text) {
		in.feedToken(tok)
	}
	if !in.IsOpen() {
		ready := in.parseCurrent
		in.parseCurrent = NewSequence(nil)
		in.Run(ready)
		ready.FreeTree(in.Alloc)
	}
}

// Eval runs a Seq value directly, or parses and runs a Str value as a
// one-shot line; any other tag is a no-op, matching the embedding
// interface's run(value).
func (in *Interp) Eval(v *Value) {
	err := panicerr.Recover("Eval", func() error {
		in.eval(v)
		return nil
	})
	in.reportRecovered("Eval", err)
}

func (in *Interp) eval(v *Value) {
	if v == nil {
		return
	}
	switch v.Tag {
	case Seq:
		in.Run(v.seq)
	case Str:
		in.runLine(v.str)
	}
}

func (in *Interp) reportRecovered(name string, err error) {
	if err == nil {
		return
	}
	in.recoveredPanics++
	in.logf("!", "%s recovered: %v", name, err)
}

// LoadFile queues r as a source of program text for DrainInput.
func (in *Interp) LoadFile(r io.Reader) {
	if in.input == nil {
		in.input = &fileinput.Input{}
	}
	in.input.Queue = append(in.input.Queue, r)
}

// DrainInput reads queued sources line by line, feeding each to RunLine,
// until every queued reader is exhausted.
func (in *Interp) DrainInput() error {
	if in.input == nil {
		return nil
	}
	var line strings.Builder
	for {
		r, _, err := in.input.ReadRune()
		if err != nil {
			if line.Len() > 0 {
				in.RunLine(line.String())
			}
			if err == io.EOF {
				return nil
			}
			return err
		}
		if r == '\n' {
			in.RunLine(line.String())
			line.Reset()
			continue
		}
		line.WriteRune(r)
	}
}
