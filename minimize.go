package automaton

import (
	"github.com/bits-and-blooms/bitset"
)

// MinimizationStats Summarizes one Minimize run. State counts do not include the dead state.
type MinimizationStats struct {
	StatesBefore int
	StatesAfter  int
	// Full passes over the state pairs until the table stopped changing, including the last one.
	Iterations int
	Merged     int
}

// IntPair An unordered pair of state ids.
type IntPair struct {
	n1 int
	n2 int
}

// distinguishabilityTable Square boolean table indexed by state id; a set bit means the pair has been
// proven distinguishable. Rows are kept symmetric.
type distinguishabilityTable struct {
	rows []*bitset.BitSet
}

func newDistinguishabilityTable(size int) *distinguishabilityTable {
	rows := make([]*bitset.BitSet, size)
	for i := range rows {
		rows[i] = bitset.New(uint(size))
	}
	return &distinguishabilityTable{rows: rows}
}

func (t *distinguishabilityTable) mark(p IntPair) {
	t.rows[p.n1].Set(uint(p.n2))
	t.rows[p.n2].Set(uint(p.n1))
}

func (t *distinguishabilityTable) marked(p IntPair) bool {
	return t.rows[p.n1].Test(uint(p.n2))
}

// Minimize
// Minimizes the given automaton in place using the table-filling algorithm. A dead state is added
// for the duration of the run so every state has a transition on every symbol; it is removed again
// before returning, as are all states merged into their class representative.
func Minimize(a *Automaton) (*MinimizationStats, error) {
	stats := &MinimizationStats{StatesBefore: a.GetNumStates()}

	if err := totalize(a); err != nil {
		return nil, err
	}

	table, iterations := fillTable(a)
	stats.Iterations = iterations

	if err := merge(a, table); err != nil {
		return nil, err
	}

	stats.StatesAfter = a.GetNumStates()
	stats.Merged = stats.StatesBefore - stats.StatesAfter
	return stats, nil
}

// IsMinimal Returns true if no two states of a are equivalent. The automaton is not modified.
func IsMinimal(a *Automaton) (bool, error) {
	classes, err := EquivalenceClasses(a)
	if err != nil {
		return false, err
	}
	return len(classes) == 0, nil
}

// EquivalenceClasses Returns every group of two or more mutually indistinguishable states of a,
// each group ascending, groups ordered by their lowest id. The automaton is not modified.
func EquivalenceClasses(a *Automaton) ([][]int, error) {
	c := a.Clone()
	if err := totalize(c); err != nil {
		return nil, err
	}
	table, _ := fillTable(c)
	part := indistinguishable(c, table)

	ids := c.States()
	classes := part.classes(ids)
	result := make([][]int, 0)
	for _, id := range ids {
		members, ok := classes[id]
		if !ok {
			continue
		}
		live := make([]int, 0, len(members))
		for _, m := range members {
			if m != c.deadState {
				live = append(live, m)
			}
		}
		if len(live) > 1 {
			result = append(result, live)
		}
	}
	return result, nil
}

// totalize Adds the dead state: non accepting, with a transition to itself on every symbol.
func totalize(a *Automaton) error {
	if a.deadState != -1 {
		return &InvariantError{State: a.deadState, Reason: "dead state already present"}
	}
	dead := a.CreateState()
	a.states[dead].label = DEAD_LABEL
	a.deadState = dead
	for _, symbol := range a.alphabet.Symbols() {
		if err := a.AddTransition(dead, dead, symbol); err != nil {
			return err
		}
	}
	return nil
}

// target Returns the state reached from state on symbol, substituting the dead state for a missing
// transition.
func (a *Automaton) target(state int, symbol rune) int {
	if dest, ok := a.states[state].transitions[symbol]; ok {
		return dest
	}
	return a.deadState
}

// fillTable Marks every distinguishable pair of states. The automaton must contain the dead state.
// Returns the table and the number of passes it took to reach the fixed point.
func fillTable(a *Automaton) (*distinguishabilityTable, int) {
	ids := a.States()
	table := newDistinguishabilityTable(a.nextState)

	// Pairs where exactly one state accepts.
	for i, p := range ids {
		for _, q := range ids[:i] {
			if a.IsAccept(p) != a.IsAccept(q) {
				table.mark(IntPair{p, q})
			}
		}
	}

	symbols := a.alphabet.Symbols()
	iterations := 0
	for changed := true; changed; {
		changed = false
		iterations++
		for i, p := range ids {
			for _, q := range ids[:i+1] {
				pair := IntPair{p, q}
				if table.marked(pair) {
					continue
				}
				for _, symbol := range symbols {
					if table.marked(IntPair{a.target(p, symbol), a.target(q, symbol)}) {
						table.mark(pair)
						changed = true
						break
					}
				}
			}
		}
	}
	return table, iterations
}

// indistinguishable Groups states whose pairs stayed unmarked into equivalence classes.
func indistinguishable(a *Automaton, table *distinguishabilityTable) *partition {
	ids := a.States()
	part := newPartition(a.nextState)
	for i, p := range ids {
		for _, q := range ids[:i] {
			if !table.marked(IntPair{p, q}) {
				part.union(p, q)
			}
		}
	}
	return part
}

// merge Collapses every equivalence class into its lowest id. Transitions into a class are redirected
// to the representative, which also takes over transitions only its partners had. States equivalent
// to the dead state accept nothing: transitions into them are dropped and they are removed along
// with the dead state, except the initial state, which survives without transitions.
func merge(a *Automaton, table *distinguishabilityTable) error {
	part := indistinguishable(a, table)
	ids := a.States()
	classes := part.classes(ids)
	deadRoot := part.find(a.deadState)

	for root, members := range classes {
		if root == deadRoot {
			continue
		}
		rep := a.states[root]
		redirected := make(map[rune]int, len(rep.transitions))
		for _, m := range members {
			for symbol, dest := range a.states[m].transitions {
				if _, ok := redirected[symbol]; ok {
					continue
				}
				if part.find(dest) == deadRoot {
					continue
				}
				redirected[symbol] = part.find(dest)
			}
		}
		rep.transitions = redirected
	}

	for _, id := range ids {
		switch {
		case id == 0:
			if part.find(0) == deadRoot {
				a.states[0].transitions = make(map[rune]int)
			}
		case part.find(id) == deadRoot, part.find(id) != id:
			a.removeState(id)
		}
	}

	// The dead state is removed above as a member of its own class.
	if a.deadState != -1 {
		return &InvariantError{State: a.deadState, Reason: "dead state survived minimization"}
	}
	return a.checkInvariants()
}
