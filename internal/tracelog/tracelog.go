// Package tracelog provides an opt-in, verbose trace of constraint
// generation and solving — an ambient logging concern the core otherwise
// has no use for (spec §5: single-threaded, no I/O in the hot path). It
// mirrors the teacher's cmd/lsp use of github.com/mattn/go-isatty to decide
// whether terminal output should carry ANSI color, generalized here into a
// small logger any caller can attach to an inference run.
package tracelog

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Logger writes trace lines; the inference solver writes one per solved
// constraint, and constraint generation writes none. A nil *Logger is
// valid and silently discards all writes, so Logger.Tracef calls cost
// nothing when tracing is off.
type Logger struct {
	w     io.Writer
	color bool
}

// New creates a Logger writing to w. Color is enabled automatically when w
// is a terminal, matching the teacher's isatty-gated coloring.
func New(w io.Writer) *Logger {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Logger{w: w, color: color}
}

// Discard is a Logger that drops every line, for callers that want the same
// call sites as a real trace without conditionally nil-checking.
var Discard = &Logger{w: io.Discard}

// Tracef writes one trace line. Safe to call on a nil *Logger.
func (l *Logger) Tracef(format string, args ...any) {
	if l == nil || l.w == nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if l.color {
		fmt.Fprintf(l.w, "\x1b[90m[infer]\x1b[0m %s\n", msg)
		return
	}
	fmt.Fprintf(l.w, "[infer] %s\n", msg)
}
