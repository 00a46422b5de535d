package automaton

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutomaton_String(t *testing.T) {
	t.Run("UnminimizedOrder", func(t *testing.T) {
		a, err := Build([]string{"b1", "a"}, nil)
		require.NoError(t, err)
		// S -b-> Q1 -1-> Q2*, S -a-> Q3*; sources by id, symbols in alphabet order
		assert.Equal(t, "a,S, Q3*\nb,S, Q1\n1,Q1, Q2*\n", a.String())
	})

	t.Run("WriteTo", func(t *testing.T) {
		a, _ := minimized(t, "cat")
		var sb strings.Builder
		n, err := a.WriteTo(&sb)
		require.NoError(t, err)
		assert.Equal(t, int64(len(a.String())), n)
		assert.Equal(t, a.String(), sb.String())
	})
}

func TestAutomaton_GenerateGraphviz(t *testing.T) {
	a, _ := minimized(t, "cat", "car")
	dot := a.GenerateGraphviz()

	assert.True(t, strings.HasPrefix(dot, "digraph DFA {\n"))
	assert.Contains(t, dot, `start -> "S";`)
	assert.Contains(t, dot, `"Q3*" [shape=doublecircle];`)
	assert.Contains(t, dot, `"S" -> "Q1" [label="c"];`)
	assert.Contains(t, dot, `"Q2" -> "Q3*" [label="r,t"];`)
	assert.True(t, strings.HasSuffix(dot, "}\n"))
}
