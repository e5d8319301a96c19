package fsm

// FSM is a compiled pattern. Column 0 is a placeholder so that a state
// identifier equals its column index. An FSM is never modified after
// compilation and may be shared between goroutines.
type FSM struct {
	pattern string
	cols    []Column
}

// Pattern returns the source pattern.
func (f *FSM) Pattern() string {
	return f.pattern
}

// NumStates returns the number of columns including the placeholder.
// Any state at or above it accepts.
func (f *FSM) NumStates() int {
	return len(f.cols)
}

// Action returns the action recorded for (state, sym). Out-of-range
// states and symbols yield FailAction.
func (f *FSM) Action(state StateID, sym Symbol) Action {
	if int(state) >= len(f.cols) {
		return FailAction
	}
	return f.cols[state].At(sym)
}

// Equal reports whether f and other have identical tables.
func (f *FSM) Equal(other *FSM) bool {
	if f == nil || other == nil {
		return f == other
	}
	if len(f.cols) != len(other.cols) {
		return false
	}
	for i := range f.cols {
		if f.cols[i] != other.cols[i] {
			return false
		}
	}
	return true
}

// Packed returns every action packed with Action.Pack, column by column.
func (f *FSM) Packed() []uint32 {
	out := make([]uint32, 0, len(f.cols)*AlphabetSize)
	for i := range f.cols {
		for _, a := range f.cols[i].actions {
			out = append(out, a.Pack())
		}
	}
	return out
}

// FromPacked rebuilds an FSM from the output of Packed, checking that the
// table is one the compiler could have produced the shape of.
func FromPacked(pattern string, packed []uint32) (*FSM, error) {
	if len(packed) == 0 || len(packed)%AlphabetSize != 0 {
		return nil, ErrCorruptTable
	}
	cols := make([]Column, len(packed)/AlphabetSize)
	for i := range cols {
		for sym := 0; sym < AlphabetSize; sym++ {
			a := UnpackAction(packed[i*AlphabetSize+sym])
			if i == 0 && !a.IsFail() {
				return nil, ErrCorruptTable
			}
			// Escapes must move strictly forward or matching may not terminate.
			if a.Move == Epsilon && int(a.Target) <= i {
				return nil, ErrCorruptTable
			}
			cols[i].actions[sym] = a
		}
	}
	return &FSM{pattern: pattern, cols: cols}, nil
}
