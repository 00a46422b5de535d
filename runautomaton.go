package automaton

// RunAutomaton A compiled, read-only form of an Automaton for repeated matching. States are renumbered
// densely and transitions are stored in a table indexed by state and alphabet position.
type RunAutomaton struct {
	alphabet *Alphabet
	size     int

	// transitions[state*size+symbolIndex] is the destination, or -1.
	transitions []int
	accept      []bool
}

// NewRunAutomaton Compiles a. Later changes to a are not reflected.
func NewRunAutomaton(a *Automaton) *RunAutomaton {
	ids := a.States()
	dense := make(map[int]int, len(ids))
	for i, id := range ids {
		dense[id] = i
	}

	size := a.alphabet.Size()
	r := &RunAutomaton{
		alphabet:    a.alphabet,
		size:        size,
		transitions: make([]int, len(ids)*size),
		accept:      make([]bool, len(ids)),
	}
	for i := range r.transitions {
		r.transitions[i] = -1
	}
	for i, id := range ids {
		r.accept[i] = a.IsAccept(id)
		for _, symbol := range a.Symbols(id) {
			r.transitions[i*size+a.alphabet.Index(symbol)] = dense[a.Step(id, symbol)]
		}
	}
	return r
}

func (r *RunAutomaton) GetSize() int {
	return len(r.accept)
}

func (r *RunAutomaton) IsAccept(state int) bool {
	return r.accept[state]
}

// Step Returns the state after reading symbol in state, -1 if there is none.
func (r *RunAutomaton) Step(state int, symbol rune) int {
	i := r.alphabet.Index(symbol)
	if i == -1 {
		return -1
	}
	return r.transitions[state*r.size+i]
}

// Run Returns true if the given string is accepted by this automaton
func (r *RunAutomaton) Run(s string) bool {
	p := 0
	for _, v := range s {
		p = r.Step(p, v)
		if p == -1 {
			return false
		}
	}
	return r.accept[p]
}
