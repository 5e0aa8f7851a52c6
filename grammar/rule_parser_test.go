package grammar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRule(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect *Rule
		render string
	}{
		{
			name:   "empty and tokens",
			input:  "S -> empty | a S",
			expect: NewRule("S", Expr{}, Expr{"a", "S"}),
			render: "S -> empty | a S",
		},
		{
			name:   "single alternative",
			input:  "A -> a",
			expect: NewRule("A", Expr{"a"}),
			render: "A -> a",
		},
		{
			name:   "extra whitespace",
			input:  "  E\t->  E + T |\tT  ",
			expect: NewRule("E", Expr{"E", "+", "T"}, Expr{"T"}),
			render: "E -> E + T | T",
		},
		{
			name:   "duplicates are kept",
			input:  "A -> a | a | empty | empty",
			expect: NewRule("A", Expr{"a"}, Expr{"a"}, Expr{}, Expr{}),
			render: "A -> a | a | empty | empty",
		},
		{
			name:   "primed names are plain tokens",
			input:  "E' -> + T E' | empty",
			expect: NewRule("E'", Expr{"+", "T", "E'"}, Expr{}),
			render: "E' -> + T E' | empty",
		},
		{
			name:   "separator must stand alone",
			input:  "A -> a|b",
			expect: NewRule("A", Expr{"a|b"}),
			render: "A -> a|b",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := ParseRule(tc.input)
			if !assert.NoError(err) {
				return
			}

			assert.Equal(tc.expect.NonTerminal, actual.NonTerminal)
			assert.Equal(len(tc.expect.Alts), len(actual.Alts))
			for i := range tc.expect.Alts {
				if i < len(actual.Alts) {
					assert.True(tc.expect.Alts[i].Equal(actual.Alts[i]), "alt %d: %v != %v", i, tc.expect.Alts[i], actual.Alts[i])
				}
			}
			assert.Equal(tc.render, actual.String())
		})
	}
}

func TestParseRuleErrors(t *testing.T) {
	testCases := []struct {
		name         string
		input        string
		missingArrow bool
		col          int
	}{
		{name: "blank", input: "", missingArrow: true, col: 1},
		{name: "nonterminal only", input: "S", missingArrow: true, col: 2},
		{name: "wrong arrow", input: "S => a", col: 3},
		{name: "arrow glued to name", input: "S-> a", col: 5},
		{name: "no alternatives", input: "S ->", col: 5},
		{name: "trailing separator", input: "S -> a |", col: 8},
		{name: "leading separator", input: "S -> | a", col: 6},
		{name: "double separator", input: "S -> a | | b", col: 10},
		{name: "token after empty", input: "S -> empty a | b", col: 12},
		{name: "empty twice", input: "S -> empty empty", col: 12},
		{name: "empty after token", input: "S -> a empty", col: 8},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := ParseRule(tc.input)
			assert.Nil(actual)
			require.Error(t, err)

			if tc.missingArrow {
				var mae *MissingArrowError
				if assert.True(errors.As(err, &mae), "%T", err) {
					assert.Equal(tc.col, mae.Col)
				}
				return
			}
			var mre *MalformedRuleError
			if assert.True(errors.As(err, &mre), "%T", err) {
				assert.Equal(tc.col, mre.Col)
				assert.Equal(0, mre.LineNo)
				assert.NotEmpty(mre.Reason)
				assert.Contains(err.Error(), "invalid rule")
			}
		})
	}
}

func TestParseRuleErrorHighlight(t *testing.T) {
	_, err := ParseRule("S -> a empty | b")
	var mre *MalformedRuleError
	require.True(t, errors.As(err, &mre), "%T", err)
	assert.Equal(t, "S -> a \033[1;31mempty\033[0m | b", mre.Highlight())

	g, err := Parse("A -> a\nB => b\n", "g.txt")
	assert.Nil(t, g)
	require.True(t, errors.As(err, &mre), "%T", err)
	assert.Equal(t, "B \033[1;31m=>\033[0m b", mre.Highlight())

	_, err = ParseRule("S")
	var mae *MissingArrowError
	require.True(t, errors.As(err, &mae), "%T", err)
	assert.Equal(t, "S\033[1;31m\033[0m", mae.Highlight())
}
