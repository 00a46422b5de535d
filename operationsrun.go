package automaton

// Run Returns true if s is accepted by a. A symbol without a transition rejects the input.
func Run(a *Automaton, s string) bool {
	state := 0
	for _, v := range s {
		nextState := a.Step(state, v)
		if nextState == -1 {
			return false
		}
		state = nextState
	}
	return a.IsAccept(state)
}
