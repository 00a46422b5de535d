package automaton

import (
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimized(t *testing.T, whitelist ...string) (*Automaton, *MinimizationStats) {
	t.Helper()
	a, err := Build(whitelist, nil)
	require.NoError(t, err)
	stats, err := Minimize(a)
	require.NoError(t, err)
	return a, stats
}

func TestMinimize(t *testing.T) {
	t.Run("NothingToMerge", func(t *testing.T) {
		a, stats := minimized(t, "cat")
		assert.Equal(t, 4, a.GetNumStates())
		assert.Equal(t, 0, stats.Merged)
		assert.True(t, Run(a, "cat"))
		assert.False(t, Run(a, "ca"))
		assert.False(t, Run(a, "cats"))
		assert.False(t, Run(a, ""))
	})

	t.Run("MergesAcceptingForks", func(t *testing.T) {
		a, stats := minimized(t, "cat", "car")
		assert.Equal(t, 4, a.GetNumStates())
		assert.Equal(t, 1, stats.Merged)

		ca := a.Step(a.Step(0, 'c'), 'a')
		require.NotEqual(t, -1, ca)
		assert.Equal(t, a.Step(ca, 't'), a.Step(ca, 'r'))

		assert.True(t, Run(a, "cat"))
		assert.True(t, Run(a, "car"))
		assert.False(t, Run(a, "ca"))
		assert.False(t, Run(a, "caT"))
		assert.False(t, Run(a, ""))
	})

	t.Run("EmptyString", func(t *testing.T) {
		a, stats := minimized(t, "")
		assert.Equal(t, 1, a.GetNumStates())
		assert.Equal(t, 0, stats.Merged)
		assert.True(t, Run(a, ""))
		assert.False(t, Run(a, "a"))
		assert.False(t, Run(a, "."))
	})

	t.Run("EmptyLanguage", func(t *testing.T) {
		a, _ := minimized(t)
		assert.Equal(t, 1, a.GetNumStates())
		assert.Equal(t, 0, a.GetNumTransitions())
		assert.False(t, Run(a, ""))
	})

	t.Run("ClassOfThree", func(t *testing.T) {
		a, stats := minimized(t, "ax", "bx", "cx")
		assert.Equal(t, 3, a.GetNumStates())
		assert.Equal(t, 4, stats.Merged)

		q := a.Step(0, 'a')
		assert.Equal(t, q, a.Step(0, 'b'))
		assert.Equal(t, q, a.Step(0, 'c'))
		f := a.Step(q, 'x')
		assert.True(t, a.IsAccept(f))
		assert.Equal(t, 0, a.GetNumTransitionsWithState(f))

		for _, s := range []string{"ax", "bx", "cx"} {
			assert.True(t, Run(a, s), s)
		}
		for _, s := range []string{"", "a", "dx", "axx", "x"} {
			assert.False(t, Run(a, s), s)
		}
	})

	t.Run("SharedSuffixChains", func(t *testing.T) {
		a, _ := minimized(t, "abcd", "xbcd", "ybcd", "zbcd")
		// S, one state per remaining suffix position, and the accept state.
		assert.Equal(t, 5, a.GetNumStates())
		strs, err := FiniteStrings(a, -1)
		require.NoError(t, err)
		assert.Equal(t, []string{"abcd", "xbcd", "ybcd", "zbcd"}, strs)
	})

	t.Run("AcceptingInnerStates", func(t *testing.T) {
		a, _ := minimized(t, "a", "ab", "b", "bb")
		// a and b lead to equivalent accept states.
		assert.Equal(t, 3, a.GetNumStates())
		for _, s := range []string{"a", "ab", "b", "bb"} {
			assert.True(t, Run(a, s), s)
		}
		assert.False(t, Run(a, "abb"))
		assert.False(t, Run(a, "ba"))
	})

	t.Run("DeadStateRemoved", func(t *testing.T) {
		a, _ := minimized(t, "cat", "dog")
		assert.Equal(t, -1, a.deadState)
		for _, id := range a.States() {
			s, _ := a.State(id)
			assert.NotEqual(t, DEAD_LABEL, s.Label())
		}
		assert.NoError(t, a.checkInvariants())
	})

	t.Run("InitialStateSurvives", func(t *testing.T) {
		a, _ := minimized(t, "a", "aa", "aaa")
		_, ok := a.State(0)
		assert.True(t, ok)
	})

	t.Run("Idempotent", func(t *testing.T) {
		a, _ := minimized(t, "cat", "car", "cart", "dog", "dot", "")
		before := a.String()

		stats, err := Minimize(a)
		require.NoError(t, err)
		assert.Equal(t, 0, stats.Merged)
		assert.Equal(t, before, a.String())
	})

	t.Run("DeadStateAlreadyPresent", func(t *testing.T) {
		a, err := Build([]string{"a"}, nil)
		require.NoError(t, err)
		require.NoError(t, totalize(a))
		_, err = Minimize(a)
		assert.ErrorIs(t, err, ErrInvariantViolation)
	})
}

func TestEquivalenceClasses(t *testing.T) {
	a, err := Build([]string{"ax", "bx", "cx"}, nil)
	require.NoError(t, err)

	classes, err := EquivalenceClasses(a)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 3, 5}, {2, 4, 6}}, classes)

	minimal, err := IsMinimal(a)
	require.NoError(t, err)
	assert.False(t, minimal)
	// a is left untouched
	assert.Equal(t, 7, a.GetNumStates())

	_, err = Minimize(a)
	require.NoError(t, err)
	minimal, err = IsMinimal(a)
	require.NoError(t, err)
	assert.True(t, minimal)
}

func TestPartition(t *testing.T) {
	p := newPartition(4)
	assert.True(t, p.union(3, 2))
	assert.True(t, p.union(2, 1))
	assert.False(t, p.union(1, 3))
	assert.Equal(t, 1, p.find(3))
	assert.Equal(t, 0, p.find(0))
	// grows on demand
	assert.Equal(t, 7, p.find(7))
	assert.Equal(t, map[int][]int{0: {0}, 1: {1, 2, 3}}, p.classes([]int{0, 1, 2, 3}))
}

// residualCount Returns the number of distinct right languages of the prefixes of whitelist, which is
// the number of states of its minimal automaton.
func residualCount(whitelist []string) int {
	seen := make(map[string]struct{})
	for _, w := range whitelist {
		for i := 0; i <= len(w); i++ {
			prefix := w[:i]
			suffixes := make([]string, 0)
			for _, v := range whitelist {
				if strings.HasPrefix(v, prefix) {
					suffixes = append(suffixes, v[len(prefix):])
				}
			}
			slices.Sort(suffixes)
			suffixes = slices.Compact(suffixes)
			seen[strings.Join(suffixes, "|")] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return 1
	}
	return len(seen)
}

func allStrings(symbols string, maxLen int) []string {
	result := []string{""}
	level := []string{""}
	for n := 0; n < maxLen; n++ {
		next := make([]string, 0, len(level)*len(symbols))
		for _, p := range level {
			for _, r := range symbols {
				next = append(next, p+string(r))
			}
		}
		result = append(result, next...)
		level = next
	}
	return result
}

func TestMinimizeRandomWhitelists(t *testing.T) {
	alphabet, err := NewAlphabet("abc")
	require.NoError(t, err)
	rnd := rand.New(rand.NewSource(42))
	candidates := allStrings("abc", 5)

	for i := 0; i < 200; i++ {
		n := rnd.Intn(8)
		set := make(map[string]struct{})
		whitelist := make([]string, 0, n)
		for j := 0; j < n; j++ {
			length := rnd.Intn(5)
			var sb strings.Builder
			for k := 0; k < length; k++ {
				sb.WriteByte("abc"[rnd.Intn(3)])
			}
			whitelist = append(whitelist, sb.String())
			set[sb.String()] = struct{}{}
		}

		a, err := Build(whitelist, alphabet)
		require.NoError(t, err)
		built := a.Clone()

		_, err = Minimize(a)
		require.NoError(t, err)

		for _, s := range candidates {
			_, want := set[s]
			assert.Equal(t, want, Run(a, s), "whitelist %v, input %q", whitelist, s)
		}

		same, err := SameLanguage(built, a)
		require.NoError(t, err)
		assert.True(t, same, "whitelist %v", whitelist)

		minimal, err := IsMinimal(a)
		require.NoError(t, err)
		assert.True(t, minimal, "whitelist %v", whitelist)

		uniq := make([]string, 0, len(set))
		for s := range set {
			uniq = append(uniq, s)
		}
		assert.Equal(t, residualCount(uniq), a.GetNumStates(), "whitelist %v", whitelist)
	}
}
