package fsm

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedSymbol is returned for pattern bytes outside 0-127.
	ErrUnsupportedSymbol = errors.New("symbol outside supported alphabet")

	// ErrMisplacedQuantifier is returned when '+' or '*' does not directly
	// follow a literal or '.'.
	ErrMisplacedQuantifier = errors.New("quantifier must follow a literal or '.'")
)

// CompileError reports the pattern position that could not be compiled.
type CompileError struct {
	Pattern string
	Pos     int
	Symbol  byte
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("tablere: compile %q: %v at offset %d (%q)", e.Pattern, e.Err, e.Pos, e.Symbol)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// ErrCorruptTable is returned when a serialized table cannot be loaded.
var ErrCorruptTable = errors.New("tablere: corrupt transition table")
