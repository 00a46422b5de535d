package automaton

// Automata Factory for automata over a fixed alphabet. The zero value uses DefaultAlphabet.
type Automata struct {
	alphabet *Alphabet
}

func NewAutomata(alphabet *Alphabet) *Automata {
	return &Automata{alphabet: alphabet}
}

var defaultAutomata = &Automata{}

// MakeEmpty
// Returns a new (deterministic) automaton with the empty language.
func (r *Automata) MakeEmpty() *Automaton {
	return NewAutomaton(r.alphabet)
}

// MakeEmptyString
// Returns a new (deterministic) automaton that accepts only the empty string.
func (r *Automata) MakeEmptyString() *Automaton {
	a := NewAutomaton(r.alphabet)
	_ = a.SetAccept(0, true)
	return a
}

// MakeString
// Returns a new (deterministic) automaton that accepts the single given string.
func (r *Automata) MakeString(s string) (*Automaton, error) {
	return Build([]string{s}, r.alphabet)
}

// MakeStrings
// Returns a new (deterministic, not minimal) automaton that accepts exactly the given strings.
func (r *Automata) MakeStrings(strs ...string) (*Automaton, error) {
	return Build(strs, r.alphabet)
}
