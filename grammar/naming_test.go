package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameStyleNext(t *testing.T) {
	for _, test := range []struct {
		style  NameStyle
		name   string
		expect string
	}{
		{Primed, "E", "E'"},
		{Primed, "E'", "E''"},
		{Primed, "<expr>", "<expr>'"},
		{Tail, "E", "ETail"},
		{Tail, "Expr", "ExprTail"},
		{Tail, "ExprTail", "ExprTailTail"},
		{Tail, "expr", "exprTail"},
		{Tail, "arg_list", "argListTail"},
		{Tail, "<expr>", "<expr>'"},
		{Tail, "E'", "E''"},
	} {
		assert.Equal(t, test.expect, test.style.next(test.name), "%s.next(%q)", test.style, test.name)
	}
}

func TestNameStyleFreshName(t *testing.T) {
	assert.Equal(t, "A'", Primed.freshName("A", available("A")))
	assert.Equal(t, "A'''", Primed.freshName("A", available("A", "A'", "A''")))
	assert.Equal(t, "ATailTail", Tail.freshName("A", available("ATail")))
}

func TestParseNameStyle(t *testing.T) {
	for input, expect := range map[string]NameStyle{
		"":       Primed,
		"prime":  Primed,
		"Primed": Primed,
		" tail ": Tail,
	} {
		actual, err := ParseNameStyle(input)
		require.NoError(t, err, input)
		assert.Equal(t, expect, actual, input)
	}

	_, err := ParseNameStyle("suffix")
	assert.Error(t, err)
}
