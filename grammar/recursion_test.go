package grammar

import (
	"fmt"
	"testing"
	"time"

	"github.com/arr-ai/frozen"
	"github.com/stretchr/testify/assert"
)

func TestLeftCorners(t *testing.T) {
	g := setupGrammar(t, []string{
		"a -> b x | c | empty | y",
		"b -> c",
		"c -> a d | x a",
		"a -> d",
	})

	corners := leftCorners(g.Rules())

	assert.Len(t, corners, 3)
	assert.True(t, corners["a"].EqualSet(frozen.NewSetFromStrings("b", "c")))
	assert.True(t, corners["b"].EqualSet(frozen.NewSetFromStrings("c")))
	assert.True(t, corners["c"].EqualSet(frozen.NewSetFromStrings("a")))
}

func TestLeftRecursionCycles(t *testing.T) {
	for _, test := range []struct {
		name   string
		rules  []string
		cycles []string
	}{
		{name: "none", rules: []string{"a -> 'a'"}},
		{name: "direct", rules: []string{"a -> a x | y"}, cycles: []string{"a > a"}},
		{
			name: "indirect",
			rules: []string{
				"c -> a z | w",
				"a -> b | c",
				"b -> c",
			},
			cycles: []string{"a > b > c > a"},
		},
		{
			name: "reached from elsewhere",
			rules: []string{
				"s -> a",
				"a -> b x",
				"b -> a y | q",
			},
			cycles: []string{"a > b > a"},
		},
		{
			name: "not in first position",
			rules: []string{
				"a -> x a",
				"b -> empty | x b",
			},
		},
	} {
		test := test
		t.Run(test.name, func(t *testing.T) {
			g := setupGrammar(t, test.rules)

			var actual []string
			for _, c := range g.LeftRecursionCycles() {
				actual = append(actual, c.String())
			}

			assert.Equal(t, test.cycles, actual)
			assert.Equal(t, len(test.cycles) > 0, g.IsLeftRecursive())
		})
	}
}

func TestCanonicalCycle(t *testing.T) {
	assert.Equal(t, Cycle{"a", "b", "c", "a"}, canonicalCycle([]string{"b", "c", "a", "b"}))
	assert.Equal(t, Cycle{"x", "x"}, canonicalCycle([]string{"x", "x"}))
}

// diamondRules chains n layers of A_i -> B_i | C_i, where both B_i and C_i
// begin with A_i+1, so the number of left-corner paths doubles per layer.
func diamondRules(n int, last string) []string {
	rules := make([]string, 0, 3*n+1)
	for i := 0; i < n; i++ {
		rules = append(rules,
			fmt.Sprintf("A%d -> B%d | C%d", i, i, i),
			fmt.Sprintf("B%d -> A%d b", i, i+1),
			fmt.Sprintf("C%d -> A%d c", i, i+1),
		)
	}
	return append(rules, fmt.Sprintf("A%d -> %s", n, last))
}

func TestLeftRecursionCyclesDiamonds(t *testing.T) {
	g := setupGrammar(t, diamondRules(60, "z"))

	start := time.Now()
	cycles := g.LeftRecursionCycles()
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Empty(t, cycles)
	assert.False(t, g.IsLeftRecursive())

	g = setupGrammar(t, diamondRules(60, "A0 q | z"))

	start = time.Now()
	cycles = g.LeftRecursionCycles()
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.NotEmpty(t, cycles)
	for _, c := range cycles {
		assert.Equal(t, "A0", c[0])
		assert.Equal(t, "A0", c[len(c)-1])
	}
}
