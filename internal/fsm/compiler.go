package fsm

// tokenKind records what produced the most recent column.
type tokenKind int

const (
	kindNone tokenKind = iota
	kindLiteral
	kindWildcard
	kindAnchor
	kindQuantifier
)

// Compiler turns patterns into FSMs.
type Compiler struct {
	logger *Logger
}

// NewCompiler creates a compiler that traces through logger.
// A nil logger disables tracing.
func NewCompiler(logger *Logger) *Compiler {
	if logger == nil {
		logger = NewLogger(false)
	}
	return &Compiler{logger: logger}
}

// Compile compiles pattern with a silent compiler.
func Compile(pattern string) (*FSM, error) {
	return NewCompiler(nil).Compile(pattern)
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
func MustCompile(pattern string) *FSM {
	f, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return f
}

// Compile builds the transition table for pattern. Nothing is returned
// alongside an error.
func (c *Compiler) Compile(pattern string) (*FSM, error) {
	c.logger.Section("Compile")
	c.logger.Log("Pattern: %s", pattern)

	b := builder{
		cols: []Column{newColumn()},
		last: kindNone,
	}

	for pos := 0; pos < len(pattern); pos++ {
		ch := pattern[pos]
		if Symbol(ch) >= MaxASCIISymbol {
			return nil, &CompileError{Pattern: pattern, Pos: pos, Symbol: ch, Err: ErrUnsupportedSymbol}
		}

		var ok bool
		switch ch {
		case tokenPlus:
			ok = b.plus()
		case tokenStar:
			ok = b.star()
		case tokenWildcard:
			b.wildcard()
			ok = true
		case tokenAnchor:
			b.anchor()
			ok = true
		default:
			b.literal(Symbol(ch))
			ok = true
		}
		if !ok {
			c.logger.Log("Rejected %q at offset %d", ch, pos)
			return nil, &CompileError{Pattern: pattern, Pos: pos, Symbol: ch, Err: ErrMisplacedQuantifier}
		}
		c.logger.Log("Token %q at offset %d -> %d states", ch, pos, len(b.cols))
		last := len(b.cols) - 1
		c.logger.Column(StateID(last), &b.cols[last])
	}

	c.logger.Log("Compiled %d states", len(b.cols))
	return &FSM{pattern: pattern, cols: b.cols}, nil
}

// builder holds the column sequence while a pattern is compiled.
type builder struct {
	cols []Column
	last tokenKind
}

// next is the state the column appended for the current token moves to.
func (b *builder) next() StateID {
	return StateID(len(b.cols) + 1)
}

func (b *builder) literal(sym Symbol) {
	col := newColumn()
	col.set(sym, Action{Target: b.next(), Move: Consume})
	b.cols = append(b.cols, col)
	b.last = kindLiteral
}

func (b *builder) wildcard() {
	col := newColumn()
	col.setRange(WildcardFirst, WildcardLast, Action{Target: b.next(), Move: Consume})
	b.cols = append(b.cols, col)
	b.last = kindWildcard
}

func (b *builder) anchor() {
	col := newColumn()
	col.set(EndOfInput, Action{Target: b.next(), Move: Consume})
	b.cols = append(b.cols, col)
	b.last = kindAnchor
}

// quantifiable reports whether the previous column can be repeated.
func (b *builder) quantifiable() bool {
	if b.last != kindLiteral && b.last != kindWildcard {
		return false
	}
	n := StateID(len(b.cols))
	return b.cols[n-1].hasSingleTokenShape(n)
}

// plus appends a looping copy of the previous column. The copy consumes
// repeats in place and escapes to n+1 without consuming anything else.
func (b *builder) plus() bool {
	if !b.quantifiable() {
		return false
	}
	n := StateID(len(b.cols))
	clone := b.cols[n-1]
	clone.rewrite(func(a Action) Action {
		if a.Target == n {
			return a
		}
		return Action{Target: n + 1, Move: Epsilon}
	})
	b.cols = append(b.cols, clone)
	b.last = kindQuantifier
	return true
}

// star turns the previous column into a self-loop with a forward escape.
func (b *builder) star() bool {
	if !b.quantifiable() {
		return false
	}
	n := StateID(len(b.cols))
	b.cols[n-1].rewrite(func(a Action) Action {
		if a.Target == n {
			return Action{Target: n - 1, Move: Consume}
		}
		return Action{Target: n, Move: Epsilon}
	})
	b.last = kindQuantifier
	return true
}
