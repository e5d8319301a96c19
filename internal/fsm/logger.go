package fsm

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Logger traces compilation and code generation. Lines are tagged with
// the scope opened by the latest Section, e.g. "[tablere/compile]".
type Logger struct {
	enabled bool
	out     io.Writer
	scope   string
}

// NewLogger returns a logger writing to stderr. A disabled logger
// discards everything.
func NewLogger(enabled bool) *Logger {
	return &Logger{
		enabled: enabled,
		out:     os.Stderr,
	}
}

// SetOutput redirects the trace.
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
}

// Enabled reports whether tracing is on.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Section opens a scope. Later lines carry its lowercased name.
func (l *Logger) Section(name string) {
	l.scope = strings.ToLower(strings.Join(strings.Fields(name), "-"))
	if l.enabled {
		fmt.Fprintf(l.out, "\n%s === %s ===\n", l.prefix(), name)
	}
}

// Log writes one formatted line in the current scope.
func (l *Logger) Log(format string, args ...interface{}) {
	if l.enabled {
		fmt.Fprintf(l.out, l.prefix()+" "+format+"\n", args...)
	}
}

// Column summarizes the actions of the column at state.
func (l *Logger) Column(state StateID, col *Column) {
	if !l.enabled {
		return
	}
	s := col.summary(state)
	l.Log("State %d: %d consume, %d epsilon, %d self-loop, %d fail",
		state, s.consume, s.epsilon, s.selfLoop, s.fail)
}

func (l *Logger) prefix() string {
	if l.scope == "" {
		return "[tablere]"
	}
	return "[tablere/" + l.scope + "]"
}
