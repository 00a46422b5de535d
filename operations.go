package automaton

import (
	"errors"
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// IsEmptyAutomaton
// Returns true if the given automaton accepts no strings.
func IsEmptyAutomaton(a *Automaton) bool {
	if a.IsAccept(0) {
		// Common case: it accepts the empty string
		return false
	}
	if a.GetNumTransitionsWithState(0) == 0 {
		// Common case: just one initial state
		return true
	}

	live := getLiveStatesFromInitial(a)
	return !live.Intersection(a.getAcceptStates()).Any()
}

// getLiveStatesFromInitial Returns the states reachable from the initial state.
func getLiveStatesFromInitial(a *Automaton) *bitset.BitSet {
	live := bitset.New(uint(a.nextState))
	if _, ok := a.State(0); !ok {
		return live
	}

	workList := []int{0}
	live.Set(0)
	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]
		for _, symbol := range a.Symbols(s) {
			dest := a.Step(s, symbol)
			if !live.Test(uint(dest)) {
				live.Set(uint(dest))
				workList = append(workList, dest)
			}
		}
	}
	return live
}

// IsFiniteAutomaton
// Returns true if the language of the given automaton is finite, that is no loop is reachable from
// the initial state. Automata built from a whitelist are always finite.
func IsFiniteAutomaton(a *Automaton) bool {
	if a.GetNumStates() == 0 {
		return true
	}
	path := bitset.New(uint(a.nextState))
	visited := bitset.New(uint(a.nextState))
	return isFinite(a, 0, path, visited)
}

// Checks whether there is a loop containing state.
func isFinite(a *Automaton, state int, path, visited *bitset.BitSet) bool {
	path.Set(uint(state))
	for _, symbol := range a.Symbols(state) {
		dest := a.Step(state, symbol)
		if path.Test(uint(dest)) || (!visited.Test(uint(dest)) && !isFinite(a, dest, path, visited)) {
			return false
		}
	}
	path.Clear(uint(state))
	visited.Set(uint(state))
	return true
}

// GetSingletonAutomaton
// Returns the only string accepted by a, and false if a accepts none or more than one string.
func GetSingletonAutomaton(a *Automaton) (string, bool) {
	builder := new(strings.Builder)
	visited := bitset.New(uint(a.nextState))
	s := 0
	for {
		visited.Set(uint(s))
		n := a.GetNumTransitionsWithState(s)
		if a.IsAccept(s) {
			if n == 0 {
				return builder.String(), true
			}
			return "", false
		}
		if n != 1 {
			return "", false
		}
		symbol := a.Symbols(s)[0]
		dest := a.Step(s, symbol)
		if visited.Test(uint(dest)) {
			return "", false
		}
		builder.WriteRune(symbol)
		s = dest
	}
}

// GetCommonPrefix
// Returns the longest string that is a prefix of all accepted strings. The automaton must not have
// states that reach no accept state (Minimize guarantees this).
func GetCommonPrefix(a *Automaton) string {
	if IsEmptyAutomaton(a) {
		return ""
	}
	builder := new(strings.Builder)
	s := 0
	for !a.IsAccept(s) && a.GetNumTransitionsWithState(s) == 1 {
		symbol := a.Symbols(s)[0]
		builder.WriteRune(symbol)
		s = a.Step(s, symbol)
		if s == 0 {
			break
		}
	}
	return builder.String()
}

var ErrTooManyStrings = errors.New("automaton accepts more strings than the limit")

// FiniteStrings
// Returns the strings accepted by a, sorted. A negative limit means no limit; otherwise
// ErrTooManyStrings is returned once more than limit strings are found. The automaton must be finite.
func FiniteStrings(a *Automaton, limit int) ([]string, error) {
	if !IsFiniteAutomaton(a) {
		return nil, errors.New("automaton accepts infinitely many strings")
	}

	type frame struct {
		state  int
		prefix []rune
	}
	result := make([]string, 0)
	stack := []frame{{state: 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if a.IsAccept(f.state) {
			if limit >= 0 && len(result) == limit {
				return nil, ErrTooManyStrings
			}
			result = append(result, string(f.prefix))
		}
		for _, symbol := range a.Symbols(f.state) {
			prefix := make([]rune, len(f.prefix), len(f.prefix)+1)
			copy(prefix, f.prefix)
			stack = append(stack, frame{state: a.Step(f.state, symbol), prefix: append(prefix, symbol)})
		}
	}
	slices.Sort(result)
	return result, nil
}

// SameLanguage
// Returns true if the two finite automata accept the same strings.
func SameLanguage(a1, a2 *Automaton) (bool, error) {
	s1, err := FiniteStrings(a1, -1)
	if err != nil {
		return false, err
	}
	s2, err := FiniteStrings(a2, -1)
	if err != nil {
		return false, err
	}
	return slices.Equal(s1, s2), nil
}
