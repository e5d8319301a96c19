package fsm

// MatchString reports whether input matches. Without a trailing '$' a
// matching prefix is enough.
func (f *FSM) MatchString(input string) bool {
	n := StateID(len(f.cols))
	state := InitialState
	offset := 0
	for state > FailState && state < n && offset < len(input) {
		a := f.step(state, input[offset])
		state = a.Target
		if a.Move == Consume {
			offset++
		}
	}
	return f.settle(state)
}

// MatchBytes is like MatchString for a byte slice.
func (f *FSM) MatchBytes(input []byte) bool {
	n := StateID(len(f.cols))
	state := InitialState
	offset := 0
	for state > FailState && state < n && offset < len(input) {
		a := f.step(state, input[offset])
		state = a.Target
		if a.Move == Consume {
			offset++
		}
	}
	return f.settle(state)
}

func (f *FSM) step(state StateID, c byte) Action {
	if Symbol(c) >= MaxASCIISymbol {
		return FailAction
	}
	return f.cols[state].actions[c]
}

// settle resolves the end of input from state. Escapes are followed
// until the sentinel is consumed or the state leaves the table.
func (f *FSM) settle(state StateID) bool {
	n := StateID(len(f.cols))
	for state > FailState && state < n {
		a := f.cols[state].actions[EndOfInput]
		state = a.Target
		if a.Move == Consume {
			break
		}
	}
	return state >= n
}
