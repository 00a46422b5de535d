package automaton

import (
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Automaton Represents a deterministic automaton and all its states and transitions. States are
// integers created using CreateState and owned by the automaton; they reference each other only by
// id. Mark a state as an accept state using SetAccept. Add transitions using AddTransition. State 0
// is always the initial state and exists for the lifetime of the automaton. A missing transition
// means the input is rejected.
type Automaton struct {
	alphabet *Alphabet

	// id -> state, for every live state.
	states map[int]*State

	// Next id handed out by CreateState; ids are never reused.
	nextState int

	// Id of the dead state while minimization runs, -1 otherwise.
	deadState int
}

// NewAutomaton Creates an automaton holding only the (non accepting) initial state. A nil alphabet
// selects DefaultAlphabet.
func NewAutomaton(alphabet *Alphabet) *Automaton {
	if alphabet == nil {
		alphabet = DefaultAlphabet()
	}
	a := &Automaton{
		alphabet:  alphabet,
		states:    make(map[int]*State),
		deadState: -1,
	}
	a.CreateState()
	return a
}

func (a *Automaton) Alphabet() *Alphabet {
	return a.alphabet
}

// CreateState Create a new state.
func (a *Automaton) CreateState() int {
	id := a.nextState
	a.states[id] = newState(id, stateLabel(id))
	a.nextState++
	return id
}

// State Returns the state with the given id, if it is tracked by this automaton.
func (a *Automaton) State(id int) (*State, bool) {
	s, ok := a.states[id]
	return s, ok
}

// SetAccept Set or clear this state as an accept state.
func (a *Automaton) SetAccept(state int, accept bool) error {
	s, ok := a.states[state]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownState, state)
	}
	s.accept = accept
	return nil
}

// IsAccept Returns true if this state is an accept state.
func (a *Automaton) IsAccept(state int) bool {
	s, ok := a.states[state]
	return ok && s.accept
}

// AddTransition Add a transition from source to dest on symbol, replacing any previous
// transition of source on that symbol.
func (a *Automaton) AddTransition(source, dest int, symbol rune) error {
	s, ok := a.states[source]
	if !ok {
		return fmt.Errorf("%w: source %d", ErrUnknownState, source)
	}
	if _, ok := a.states[dest]; !ok {
		return fmt.Errorf("%w: dest %d", ErrUnknownState, dest)
	}
	if !a.alphabet.Contains(symbol) {
		return fmt.Errorf("%w: %q", ErrInvalidSymbol, symbol)
	}
	s.transitions[symbol] = dest
	return nil
}

// Step Performs lookup in transitions. Returns the destination state, -1 if no matching outgoing
// transition.
func (a *Automaton) Step(state int, symbol rune) int {
	s, ok := a.states[state]
	if !ok {
		return -1
	}
	dest, ok := s.transitions[symbol]
	if !ok {
		return -1
	}
	return dest
}

// GetNumStates How many states this automaton has.
func (a *Automaton) GetNumStates() int {
	return len(a.states)
}

// GetNumTransitions How many transitions this automaton has.
func (a *Automaton) GetNumTransitions() int {
	count := 0
	for _, s := range a.states {
		count += len(s.transitions)
	}
	return count
}

// GetNumTransitionsWithState How many transitions this state has.
func (a *Automaton) GetNumTransitionsWithState(state int) int {
	s, ok := a.states[state]
	if !ok {
		return 0
	}
	return len(s.transitions)
}

// States Returns the ids of all states, ascending.
func (a *Automaton) States() []int {
	ids := make([]int, 0, len(a.states))
	for id := range a.states {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Symbols Returns the symbols state has explicit transitions on, in alphabet order.
func (a *Automaton) Symbols(state int) []rune {
	s, ok := a.states[state]
	if !ok {
		return nil
	}
	symbols := make([]rune, 0, len(s.transitions))
	for _, symbol := range a.alphabet.Symbols() {
		if _, ok := s.transitions[symbol]; ok {
			symbols = append(symbols, symbol)
		}
	}
	return symbols
}

// Clone Returns a deep copy sharing only the (immutable) alphabet.
func (a *Automaton) Clone() *Automaton {
	c := &Automaton{
		alphabet:  a.alphabet,
		states:    make(map[int]*State, len(a.states)),
		nextState: a.nextState,
		deadState: a.deadState,
	}
	for id, s := range a.states {
		c.states[id] = s.clone()
	}
	return c
}

// Returns accept states. If the bit is set then that state is an accept state.
func (a *Automaton) getAcceptStates() *bitset.BitSet {
	accept := bitset.New(uint(a.nextState))
	for id, s := range a.states {
		if s.accept {
			accept.Set(uint(id))
		}
	}
	return accept
}

func (a *Automaton) removeState(id int) {
	delete(a.states, id)
	if id == a.deadState {
		a.deadState = -1
	}
}

// checkInvariants Verifies that the initial state exists, every transition targets a tracked state
// and, while present, the dead state rejects and loops on every symbol.
func (a *Automaton) checkInvariants() error {
	if _, ok := a.states[0]; !ok {
		return &InvariantError{State: 0, Reason: "initial state missing"}
	}
	for _, id := range a.States() {
		s := a.states[id]
		for _, symbol := range a.Symbols(id) {
			dest := s.transitions[symbol]
			if _, ok := a.states[dest]; !ok {
				return &InvariantError{State: id, Symbol: symbol, Target: dest, Reason: "dangling transition"}
			}
		}
		if len(s.transitions) != len(a.Symbols(id)) {
			return &InvariantError{State: id, Reason: "transition on symbol outside alphabet"}
		}
	}
	if a.deadState != -1 {
		dead, ok := a.states[a.deadState]
		if !ok {
			return &InvariantError{State: a.deadState, Reason: "dead state missing"}
		}
		if dead.accept {
			return &InvariantError{State: a.deadState, Reason: "dead state accepts"}
		}
		for _, symbol := range a.alphabet.Symbols() {
			if dest, ok := dead.transitions[symbol]; !ok || dest != a.deadState {
				return &InvariantError{State: a.deadState, Symbol: symbol, Target: dest, Reason: "dead state is not absorbing"}
			}
		}
	}
	return nil
}
