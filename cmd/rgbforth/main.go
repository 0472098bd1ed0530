// Command rgbforth is a sample host for the rgbforth package: it feeds
// stdin to an Interp and prints whatever "." writes to stdout, the same
// role the Arduino firmware's serial loop plays for the original language.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/wmalkin/rgbforth"
	"github.com/wmalkin/rgbforth/internal/logio"
)

func main() {
	var timeout time.Duration
	var trace bool
	var memLimit int
	flag.DurationVar(&timeout, "timeout", 0, "exit once this much time has elapsed")
	flag.BoolVar(&trace, "trace", false, "enable trace logging of recovered panics and mem-limit notices")
	flag.IntVar(&memLimit, "mem-limit", 0, "cap live cell count, simulating a constrained device")
	flag.Parse()

	opts := []rgbforth.InterpOption{
		rgbforth.WithInput(os.Stdin),
		rgbforth.WithOutput(os.Stdout),
	}
	if trace {
		var tlog logio.Logger
		tlog.SetOutput(os.Stderr)
		defer tlog.Close()
		opts = append(opts, rgbforth.WithLogf(tlog.Leveledf("TRACE")))
	}
	if memLimit != 0 {
		opts = append(opts, rgbforth.WithMemLimit(memLimit))
	}

	in := rgbforth.New(opts...)

	done := make(chan error, 1)
	go func() { done <- in.DrainInput() }()

	if timeout == 0 {
		if err := <-done; err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
			os.Exit(1)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	select {
	case err := <-done:
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", ctx.Err())
		os.Exit(1)
	}
}
