package automaton

// Builder Builds a deterministic automaton from accepted strings, one at a time. Entries that share a
// prefix share the chain of states for it; a new state is created only where an entry leaves the
// existing graph. The result is deterministic but not minimal.
type Builder struct {
	a *Automaton

	// Current position in the graph while an entry is consumed; back at the initial state between entries.
	pointer int
}

func NewBuilder(alphabet *Alphabet) *Builder {
	return &Builder{
		a: NewAutomaton(alphabet),
	}
}

// Add Adds entry to the accepted language. The entry is checked against the alphabet before anything
// is created, so a rejected entry leaves the builder unchanged.
func (b *Builder) Add(entry string) error {
	runes := []rune(entry)
	alphabet := b.a.Alphabet()
	for i, r := range runes {
		if !alphabet.Contains(r) {
			return &InvalidSymbolError{Entry: entry, Symbol: r, Position: i}
		}
	}

	if len(runes) == 0 {
		return b.a.SetAccept(0, true)
	}

	b.pointer = 0
	for i, symbol := range runes {
		last := i == len(runes)-1

		dest := b.a.Step(b.pointer, symbol)
		if dest == -1 {
			dest = b.a.CreateState()
			if err := b.a.AddTransition(b.pointer, dest, symbol); err != nil {
				return err
			}
		}

		if last {
			if err := b.a.SetAccept(dest, true); err != nil {
				return err
			}
			b.pointer = 0
		} else {
			b.pointer = dest
		}
	}
	return nil
}

// GetNumStates How many states have been created so far.
func (b *Builder) GetNumStates() int {
	return b.a.GetNumStates()
}

// Finish Returns the built automaton. The builder must not be used afterwards.
func (b *Builder) Finish() *Automaton {
	a := b.a
	b.a = nil
	return a
}

// Build Returns the prefix-sharing automaton accepting exactly the strings in whitelist, in the
// order given.
func Build(whitelist []string, alphabet *Alphabet) (*Automaton, error) {
	b := NewBuilder(alphabet)
	for _, entry := range whitelist {
		if err := b.Add(entry); err != nil {
			return nil, err
		}
	}
	return b.Finish(), nil
}
