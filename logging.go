package rgbforth

import (
	"fmt"
	"strings"
)

// traceLog generalizes the teacher's core.go logging struct: a settable
// logfn plus column-width bookkeeping so marks ("PARSE", "EXEC", "#") line
// up across a run's trace output.
type traceLog struct {
	logfn     func(mess string, args ...interface{})
	markWidth int
}

func (log *traceLog) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	if logfn == nil {
		return func() {}
	}
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() { log.logfn = logfn }
}

func (log *traceLog) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		for _, r := range mark {
			mark = strings.Repeat(string(r), n) + mark
			break
		}
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
