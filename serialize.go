package automaton

import (
	"fmt"
	"io"
	"strings"
)

// String Returns the transition table of the automaton: one line "symbol,source, dest" per
// transition, ordered by source state id and then by alphabet order. Accept states carry a
// trailing ACCEPT_MARKER in their name.
func (a *Automaton) String() string {
	var sb strings.Builder
	for _, id := range a.States() {
		s := a.states[id]
		for _, symbol := range a.Symbols(id) {
			dest := a.states[s.transitions[symbol]]
			sb.WriteRune(symbol)
			sb.WriteString(",")
			sb.WriteString(s.String())
			sb.WriteString(", ")
			sb.WriteString(dest.String())
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// WriteTo Writes the transition table produced by String to w.
func (a *Automaton) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, a.String())
	return int64(n), err
}

// GenerateGraphviz Returns a Graphviz DOT representation of the automaton. Accept states are drawn
// as double circles; transitions between the same pair of states share one edge.
func (a *Automaton) GenerateGraphviz() string {
	var sb strings.Builder

	sb.WriteString("digraph DFA {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=circle];\n")
	sb.WriteString("\n")

	sb.WriteString("  start [shape=point];\n")
	sb.WriteString(fmt.Sprintf("  start -> %q;\n", a.states[0].String()))
	sb.WriteString("\n")

	ids := a.States()
	for _, id := range ids {
		s := a.states[id]
		if s.accept {
			sb.WriteString(fmt.Sprintf("  %q [shape=doublecircle];\n", s.String()))
		} else {
			sb.WriteString(fmt.Sprintf("  %q;\n", s.String()))
		}
	}
	sb.WriteString("\n")

	for _, id := range ids {
		s := a.states[id]
		labels := make(map[int][]rune)
		order := make([]int, 0)
		for _, symbol := range a.Symbols(id) {
			dest := s.transitions[symbol]
			if _, ok := labels[dest]; !ok {
				order = append(order, dest)
			}
			labels[dest] = append(labels[dest], symbol)
		}
		for _, dest := range order {
			sb.WriteString(fmt.Sprintf("  %q -> %q [label=%q];\n",
				s.String(), a.states[dest].String(), joinSymbols(labels[dest])))
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}

func joinSymbols(symbols []rune) string {
	parts := make([]string, len(symbols))
	for i, r := range symbols {
		parts[i] = string(r)
	}
	return strings.Join(parts, ",")
}
