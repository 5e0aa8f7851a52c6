package grammar

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Rule is a nonterminal together with its alternatives, in order.
type Rule struct {
	NonTerminal string
	Alts        []Expr
}

func NewRule(nt string, alts ...Expr) *Rule {
	return &Rule{NonTerminal: nt, Alts: alts}
}

// Clone returns a deep copy of r.
func (r *Rule) Clone() *Rule {
	alts := make([]Expr, len(r.Alts))
	for i, alt := range r.Alts {
		alts[i] = alt.Clone()
	}
	return &Rule{NonTerminal: r.NonTerminal, Alts: alts}
}

func (r *Rule) String() string {
	alts := make([]string, len(r.Alts))
	for i, alt := range r.Alts {
		alts[i] = alt.String()
	}
	return r.NonTerminal + " -> " + strings.Join(alts, " | ")
}

// IsDirectlyLeftRecursive reports whether any alternative of r begins with
// r's own nonterminal.
func (r *Rule) IsDirectlyLeftRecursive() bool {
	for _, alt := range r.Alts {
		if alt.StartsWith(r.NonTerminal) {
			return true
		}
	}
	return false
}

// Simplify drops every alternative that is equal to an earlier one.
func (r *Rule) Simplify() {
	kept := r.Alts[:0]
	for _, alt := range r.Alts {
		dup := false
		for _, k := range kept {
			if k.Equal(alt) {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, alt)
		}
	}
	for i := len(kept); i < len(r.Alts); i++ {
		r.Alts[i] = nil
	}
	r.Alts = kept
}

// SubstituteNonTerminal expands, in place, every alternative of r that begins
// with other's nonterminal into one alternative per alternative of other.
//
// other must not be directly left recursive.
func (r *Rule) SubstituteNonTerminal(other *Rule) {
	nt := other.NonTerminal
	var out []Expr
	for i, alt := range r.Alts {
		if !alt.StartsWith(nt) {
			if out != nil {
				out = append(out, alt)
			}
			continue
		}
		if out == nil {
			out = append(make([]Expr, 0, len(r.Alts)+len(other.Alts)), r.Alts[:i]...)
		}
		rest := alt[1:]
		for _, expansion := range other.Alts {
			out = append(out, expansion.Concat(rest))
		}
		logrus.WithFields(logrus.Fields{
			"rule": r.NonTerminal,
			"alt":  alt.String(),
			"via":  nt,
		}).Trace("substituted leading nonterminal")
	}
	if out != nil {
		r.Alts = out
	}
}

// EliminateDirectLeftRecursion removes immediate left recursion from r,
// naming the helper nonterminal in the Primed style. See
// EliminateDirectLeftRecursionStyle.
//
// Each recursive alternative A -> A a yields one helper alternative
// A' -> a A', except the bare self-loop A -> A, which yields none: A -> A | b
// becomes A -> b A' and A' -> empty, not A' -> A' | empty. Keeping A' -> A'
// would make Grammar.EliminateLeftRecursion derive A'' from it, then A''',
// without end.
func (r *Rule) EliminateDirectLeftRecursion(isAvailable func(string) bool) ([]*Rule, error) {
	return r.EliminateDirectLeftRecursionStyle(isAvailable, Primed)
}

// EliminateDirectLeftRecursionStyle rewrites
//
//	A -> A a1 | ... | A an | b1 | ... | bm
//
// as
//
//	A  -> b1 A' | ... | bm A'
//	A' -> a1 A' | ... | an A' | empty
//
// and returns both rules. A rule without recursive alternatives is returned
// alone and untouched. A rule without base alternatives yields an
// *UnterminatableRuleError. The self-loop A -> A contributes no alternative
// to A' (see EliminateDirectLeftRecursion).
//
// The helper name is derived from the nonterminal with style until
// isAvailable accepts it. The alternatives of r are reused by the returned
// rules.
func (r *Rule) EliminateDirectLeftRecursionStyle(isAvailable func(string) bool, style NameStyle) ([]*Rule, error) {
	var base, recursive []Expr
	for _, alt := range r.Alts {
		if alt.StartsWith(r.NonTerminal) {
			recursive = append(recursive, alt)
		} else {
			base = append(base, alt)
		}
	}

	if len(base) == 0 {
		return nil, &UnterminatableRuleError{Rule: r}
	}
	if len(recursive) == 0 {
		return []*Rule{r}, nil
	}

	name := style.freshName(r.NonTerminal, isAvailable)

	for i := range base {
		base[i].Append(name)
	}
	tails := make([]Expr, 0, len(recursive)+1)
	for _, alt := range recursive {
		// A -> A would become A' -> A', which is recursive again and adds
		// nothing to the language.
		if len(alt) == 1 {
			continue
		}
		tail := alt[1:]
		tail.Append(name)
		tails = append(tails, tail)
	}
	tails = append(tails, Expr{})

	head := &Rule{NonTerminal: r.NonTerminal, Alts: base}
	helper := &Rule{NonTerminal: name, Alts: tails}
	helper.Simplify()

	logrus.WithFields(logrus.Fields{
		"rule":   r.NonTerminal,
		"helper": name,
	}).Debug("eliminated direct left recursion")

	return []*Rule{head, helper}, nil
}
