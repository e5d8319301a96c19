// Package fsm implements the table-driven automaton behind tablere: the
// pattern compiler, the matcher that walks the compiled table and a dump
// of the table for tracing.
package fsm

// Symbol is a code in the automaton alphabet.
type Symbol int

// Alphabet constants
const (
	// AlphabetSize is the number of actions stored per column.
	AlphabetSize = 130

	// MaxASCIISymbol is the exclusive upper bound of codes that input and
	// patterns may produce.
	MaxASCIISymbol Symbol = 128

	// WildcardFirst and WildcardLast bound the printable range matched by '.'.
	WildcardFirst Symbol = 33
	WildcardLast  Symbol = 126

	// Reserved is never produced by input.
	Reserved Symbol = 128

	// EndOfInput is looked up only after the input is exhausted.
	EndOfInput Symbol = 129
)

// Pattern metacharacters
const (
	tokenWildcard = '.'
	tokenAnchor   = '$'
	tokenPlus     = '+'
	tokenStar     = '*'
)

// StateID identifies a column by its position in the table.
type StateID uint32

// State constants
const (
	// FailState is the target of every unset action.
	FailState StateID = 0

	// InitialState is where matching starts.
	InitialState StateID = 1
)

// Move tells the matcher whether an action advances the input cursor.
type Move uint8

const (
	// Consume advances the cursor by one symbol.
	Consume Move = iota
	// Epsilon leaves the cursor in place. Only quantifier escapes use it.
	Epsilon
)

func (m Move) String() string {
	switch m {
	case Consume:
		return "consume"
	case Epsilon:
		return "epsilon"
	default:
		return "unknown"
	}
}

// Action is the transition recorded for one (state, symbol) pair.
type Action struct {
	Target StateID
	Move   Move
}

// FailAction is the default action of every column entry.
var FailAction = Action{Target: FailState, Move: Consume}

// IsFail reports whether a is the default failure action.
func (a Action) IsFail() bool {
	return a == FailAction
}

// Pack encodes a as target<<1 | epsilon. FailAction packs to 0.
func (a Action) Pack() uint32 {
	v := uint32(a.Target) << 1
	if a.Move == Epsilon {
		v |= 1
	}
	return v
}

// UnpackAction is the inverse of Action.Pack.
func UnpackAction(v uint32) Action {
	a := Action{Target: StateID(v >> 1), Move: Consume}
	if v&1 == 1 {
		a.Move = Epsilon
	}
	return a
}
