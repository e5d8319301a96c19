package fsm

// Column holds the actions of one automaton state, indexed by symbol.
// It is a value type: assigning a Column copies it.
type Column struct {
	actions [AlphabetSize]Action
}

// newColumn returns a column whose every entry is FailAction.
func newColumn() Column {
	var col Column
	for i := range col.actions {
		col.actions[i] = FailAction
	}
	return col
}

// At returns the action for sym. Codes outside the alphabet fail.
func (c *Column) At(sym Symbol) Action {
	if sym < 0 || int(sym) >= AlphabetSize {
		return FailAction
	}
	return c.actions[sym]
}

func (c *Column) set(sym Symbol, a Action) {
	c.actions[sym] = a
}

// setRange assigns a to every symbol in [first, last].
func (c *Column) setRange(first, last Symbol, a Action) {
	for sym := first; sym <= last; sym++ {
		c.actions[sym] = a
	}
}

// rewrite replaces every action through fn.
func (c *Column) rewrite(fn func(Action) Action) {
	for i, a := range c.actions {
		c.actions[i] = fn(a)
	}
}

// hasSingleTokenShape reports whether every entry is either FailAction
// or a consuming move to next, with at least one of the latter.
func (c *Column) hasSingleTokenShape(next StateID) bool {
	matched := false
	for _, a := range c.actions {
		switch {
		case a.IsFail():
		case a.Target == next && a.Move == Consume:
			matched = true
		default:
			return false
		}
	}
	return matched
}

// columnSummary counts the kinds of action in a column. Self-loops are
// counted separately from other consuming moves.
type columnSummary struct {
	consume  int
	epsilon  int
	selfLoop int
	fail     int
}

func (c *Column) summary(self StateID) columnSummary {
	var s columnSummary
	for _, a := range c.actions {
		switch {
		case a.IsFail():
			s.fail++
		case a.Move == Epsilon:
			s.epsilon++
		case a.Target == self:
			s.selfLoop++
		default:
			s.consume++
		}
	}
	return s
}
