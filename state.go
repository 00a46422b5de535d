package automaton

import "fmt"

const (
	START_LABEL  = "S"
	STATE_PREFIX = "Q"
	DEAD_LABEL   = "dead-state"

	// Appended to the label of accept states when rendering.
	ACCEPT_MARKER = "*"
)

// State A node of the automaton. Transitions refer to their targets by id; the owning Automaton
// resolves them, so removing a state from the automaton is enough to drop it.
type State struct {
	id          int
	label       string
	accept      bool
	transitions map[rune]int
}

func newState(id int, label string) *State {
	return &State{
		id:          id,
		label:       label,
		transitions: make(map[rune]int),
	}
}

func stateLabel(id int) string {
	if id == 0 {
		return START_LABEL
	}
	return fmt.Sprintf("%s%d", STATE_PREFIX, id)
}

func (s *State) ID() int {
	return s.id
}

func (s *State) Label() string {
	return s.label
}

func (s *State) IsAccept() bool {
	return s.accept
}

// Target Returns the state reached on symbol, if an explicit transition exists.
func (s *State) Target(symbol rune) (int, bool) {
	dest, ok := s.transitions[symbol]
	return dest, ok
}

func (s *State) NumTransitions() int {
	return len(s.transitions)
}

// String Returns the display name: the label, followed by ACCEPT_MARKER for accept states.
func (s *State) String() string {
	if s.accept {
		return s.label + ACCEPT_MARKER
	}
	return s.label
}

func (s *State) clone() *State {
	c := newState(s.id, s.label)
	c.accept = s.accept
	for symbol, dest := range s.transitions {
		c.transitions[symbol] = dest
	}
	return c
}
