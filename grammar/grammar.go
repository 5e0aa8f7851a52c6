package grammar

import (
	"sort"
	"strings"

	"github.com/arr-ai/frozen"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/sirupsen/logrus"

	"github.com/arr-ai/unleft/parse"
)

// Grammar is an ordered list of rules. The order is significant: it is the
// order in which EliminateLeftRecursion processes rules, and a rule may only
// be rewritten in terms of rules before it.
//
// The terminal and nonterminal sets are derived from the rules by Classify and
// are not kept up to date by Add or AddRule.
type Grammar struct {
	// Style names the helper nonterminals introduced by
	// EliminateLeftRecursion.
	Style NameStyle

	rules        []*Rule
	nonTerminals frozen.Set
	terminals    frozen.Set
}

func New() *Grammar {
	return &Grammar{nonTerminals: frozen.NewSet(), terminals: frozen.NewSet()}
}

// Parse reads one rule per non-blank line of src. filename is only used in
// error messages and may be empty. The returned grammar is classified.
func Parse(src, filename string) (*Grammar, error) {
	g := New()
	for _, line := range parse.NewScannerWithFilename(src, filename).Lines() {
		line := line
		if line.IsBlank() {
			continue
		}
		rule, err := ParseRuleScanner(&line)
		if err != nil {
			return nil, err
		}
		g.Add(rule)
	}
	g.Classify()
	return g, nil
}

// AddRule parses text as a rule and appends it.
func (g *Grammar) AddRule(text string) error {
	rule, err := ParseRule(text)
	if err != nil {
		return err
	}
	g.Add(rule)
	return nil
}

func (g *Grammar) Add(rules ...*Rule) {
	g.rules = append(g.rules, rules...)
}

// Rules returns the rules of g in processing order. The rules are owned by g.
func (g *Grammar) Rules() []*Rule {
	return g.rules
}

// Clone returns a deep copy of g.
func (g *Grammar) Clone() *Grammar {
	out := &Grammar{
		Style:        g.Style,
		rules:        make([]*Rule, len(g.rules)),
		nonTerminals: g.nonTerminals,
		terminals:    g.terminals,
	}
	for i, r := range g.rules {
		out.rules[i] = r.Clone()
	}
	return out
}

// Classify derives the nonterminals (every rule's left-hand side) and the
// terminals (every other token) and simplifies each rule. It must be called
// after the last rule is added and before EliminateLeftRecursion.
func (g *Grammar) Classify() {
	g.nonTerminals = nonTerminalsOf(g.rules)
	for _, r := range g.rules {
		r.Simplify()
	}
	terms := frozen.NewSet()
	for _, r := range g.rules {
		for _, alt := range r.Alts {
			for _, tok := range alt {
				if !g.nonTerminals.Has(tok) {
					terms = terms.With(tok)
				}
			}
		}
	}
	g.terminals = terms
}

func nonTerminalsOf(rules []*Rule) frozen.Set {
	nts := frozen.NewSet()
	for _, r := range rules {
		nts = nts.With(r.NonTerminal)
	}
	return nts
}

func (g *Grammar) IsNonTerminal(name string) bool {
	return g.nonTerminals.Has(name)
}

func (g *Grammar) IsTerminal(name string) bool {
	return g.terminals.Has(name)
}

func (g *Grammar) NonTerminals() []string {
	return sortedSet(g.nonTerminals)
}

func (g *Grammar) Terminals() []string {
	return sortedSet(g.terminals)
}

// EliminateLeftRecursion rewrites g so that no rule is left recursive,
// directly or through earlier rules (Paull's algorithm). Each rule, in order,
// first has every leading nonterminal of an earlier rule substituted away and
// then has its direct left recursion removed, which may insert a helper rule
// right after it. Helper rules are themselves processed in turn.
//
// If some rule cannot terminate the result is an *InvalidGrammarError and g
// is left unchanged.
func (g *Grammar) EliminateLeftRecursion() error {
	work := arraylist.New()
	for _, r := range g.rules {
		work.Add(r.Clone())
	}
	nonTerminals := g.nonTerminals
	isAvailable := func(name string) bool {
		return !g.terminals.Has(name) && !nonTerminals.Has(name)
	}

	for i := 0; i < work.Size(); i++ {
		current := ruleAt(work, i)
		for j := 0; j < i; j++ {
			current.SubstituteNonTerminal(ruleAt(work, j))
		}

		split, err := current.EliminateDirectLeftRecursionStyle(isAvailable, g.Style)
		if err != nil {
			logrus.WithError(err).WithField("rule", current.NonTerminal).Debug("rule cannot terminate")
			cause, _ := err.(*UnterminatableRuleError)
			return &InvalidGrammarError{cause: cause}
		}
		work.Remove(i)
		for k, r := range split {
			work.Insert(i+k, r)
		}
		nonTerminals = nonTerminalsOf(rulesOf(work))
	}

	g.rules = rulesOf(work)
	g.nonTerminals = nonTerminals
	return nil
}

func ruleAt(l *arraylist.List, i int) *Rule {
	v, _ := l.Get(i)
	return v.(*Rule)
}

func rulesOf(l *arraylist.List) []*Rule {
	rules := make([]*Rule, 0, l.Size())
	it := l.Iterator()
	for it.Next() {
		rules = append(rules, it.Value().(*Rule))
	}
	return rules
}

// String renders g one rule per line.
func (g *Grammar) String() string {
	lines := make([]string, len(g.rules))
	for i, r := range g.rules {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}

func sortedSet(s frozen.Set) []string {
	out := make([]string, 0, s.Count())
	for _, x := range s.Elements() {
		out = append(out, x.(string))
	}
	sort.Strings(out)
	return out
}
