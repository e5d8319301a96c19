// Package tablere compiles a small pattern language into a table-driven
// automaton and matches strings against it without backtracking.
//
// Patterns are built from literal ASCII symbols, '.' (any printable
// symbol in 33-126), a trailing '$' (end of input) and the postfix
// quantifiers '+' and '*'. Without '$' a pattern only has to match a
// prefix of the input.
package tablere

import (
	"errors"
	"fmt"
	"io"

	"github.com/KromDaniel/tablere/internal/fsm"
	"github.com/KromDaniel/tablere/internal/tablefb"
)

// CompileError reports the position of an invalid pattern symbol.
type CompileError = fsm.CompileError

var (
	// ErrUnsupportedSymbol is returned for pattern bytes outside ASCII.
	ErrUnsupportedSymbol = fsm.ErrUnsupportedSymbol

	// ErrMisplacedQuantifier is returned when '+' or '*' does not follow
	// a literal or '.'.
	ErrMisplacedQuantifier = fsm.ErrMisplacedQuantifier

	// ErrCorruptTable is returned by UnmarshalBinary for unusable data.
	ErrCorruptTable = fsm.ErrCorruptTable
)

// Config configures compilation.
type Config struct {
	// Verbose enables logging of every compilation step.
	Verbose bool

	// LogOutput receives verbose output. Defaults to stderr.
	LogOutput io.Writer
}

// Regex is a compiled pattern. It is safe for concurrent use.
//
// Only Compile, MustCompile and UnmarshalBinary produce a usable Regex.
// The zero value matches nothing and has an empty pattern.
type Regex struct {
	fsm *fsm.FSM
}

// ErrNotCompiled is returned when a zero Regex is marshaled.
var ErrNotCompiled = errors.New("tablere: regex not compiled")

// Compile parses a pattern and returns a Regex that can match against it.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, Config{})
}

// CompileWithConfig is like Compile with explicit configuration.
func CompileWithConfig(pattern string, cfg Config) (*Regex, error) {
	logger := fsm.NewLogger(cfg.Verbose)
	if cfg.LogOutput != nil {
		logger.SetOutput(cfg.LogOutput)
	}

	f, err := fsm.NewCompiler(logger).Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Regex{fsm: f}, nil
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// MatchString reports whether s matches the pattern.
func (re *Regex) MatchString(s string) bool {
	if re.fsm == nil {
		return false
	}
	return re.fsm.MatchString(s)
}

// MatchBytes reports whether b matches the pattern.
func (re *Regex) MatchBytes(b []byte) bool {
	if re.fsm == nil {
		return false
	}
	return re.fsm.MatchBytes(b)
}

// Pattern returns the source pattern.
func (re *Regex) Pattern() string {
	if re.fsm == nil {
		return ""
	}
	return re.fsm.Pattern()
}

// NumStates returns the number of table columns, placeholder included.
func (re *Regex) NumStates() int {
	if re.fsm == nil {
		return 0
	}
	return re.fsm.NumStates()
}

// Dump returns a printable form of the transition table for debugging.
// The format is not stable.
func (re *Regex) Dump() string {
	if re.fsm == nil {
		return ""
	}
	return re.fsm.Dump()
}

// WriteDump writes Dump output to w.
func (re *Regex) WriteDump(w io.Writer) error {
	if re.fsm == nil {
		return ErrNotCompiled
	}
	return re.fsm.WriteDump(w)
}

// Equal reports whether both patterns compiled to identical tables.
func (re *Regex) Equal(other *Regex) bool {
	if re == nil || other == nil {
		return re == other
	}
	if re.fsm == nil || other.fsm == nil {
		return re.fsm == other.fsm
	}
	return re.fsm.Equal(other.fsm)
}

func (re *Regex) String() string {
	return re.Pattern()
}

// MarshalBinary encodes the compiled table.
func (re *Regex) MarshalBinary() ([]byte, error) {
	if re.fsm == nil {
		return nil, ErrNotCompiled
	}
	return tablefb.Encode(re.fsm.Pattern(), re.fsm.Packed()), nil
}

// UnmarshalBinary replaces re with a table encoded by MarshalBinary.
func (re *Regex) UnmarshalBinary(data []byte) error {
	pattern, packed, err := tablefb.Decode(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptTable, err)
	}
	f, err := fsm.FromPacked(pattern, packed)
	if err != nil {
		return err
	}
	re.fsm = f
	return nil
}
