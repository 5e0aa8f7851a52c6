package grammar

import "strings"

// EmptyLiteral is how the epsilon alternative is written in rule text.
const EmptyLiteral = "empty"

// Expr is one alternative of a rule: an ordered sequence of tokens. The empty
// Expr derives nothing.
type Expr []string

// Append adds a token to the end of e.
func (e *Expr) Append(token string) {
	*e = append(*e, token)
}

// Concat returns the tokens of e followed by those of other. Neither operand
// is modified and the result never shares storage with them.
func (e Expr) Concat(other Expr) Expr {
	out := make(Expr, 0, len(e)+len(other))
	out = append(out, e...)
	return append(out, other...)
}

func (e Expr) Equal(other Expr) bool {
	if len(e) != len(other) {
		return false
	}
	for i, t := range e {
		if other[i] != t {
			return false
		}
	}
	return true
}

// StartsWith reports whether the first token of e is token.
func (e Expr) StartsWith(token string) bool {
	return len(e) > 0 && e[0] == token
}

func (e Expr) IsEmpty() bool {
	return len(e) == 0
}

func (e Expr) Clone() Expr {
	return Expr{}.Concat(e)
}

func (e Expr) String() string {
	if len(e) == 0 {
		return EmptyLiteral
	}
	return strings.Join(e, " ")
}
