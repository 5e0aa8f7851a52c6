package grammar

import (
	"sort"
	"strings"

	"github.com/arr-ai/frozen"
)

/*
Left recursion shows up as a cycle in the left-corner graph, which has an
edge A > B whenever some alternative of A begins with the nonterminal B.

	A -> A x;            A > A
	A -> B x; B -> A y;  A > B > A

Only the first token of each alternative is considered, so recursion hidden
behind an alternative that can derive empty (A -> B A; B -> empty) is not
reported.
*/

// Cycle is a chain of nonterminals, each the left corner of the one before,
// that ends where it starts.
type Cycle []string

func (c Cycle) String() string {
	return strings.Join(c, " > ")
}

// LeftRecursionCycles returns the left-recursive cycles found by a single
// depth-first walk of the left-corner graph, one for each edge that leads
// back onto the current path. Every nonterminal is visited once, so a group
// of mutually recursive nonterminals may be reported by fewer cycles than it
// contains. Each cycle is rotated to start at its smallest nonterminal and
// the result is sorted without duplicates. The result is empty exactly when
// g has no left recursion.
func (g *Grammar) LeftRecursionCycles() []Cycle {
	w := &cycleWalk{
		corners: leftCorners(g.rules),
		colour:  map[string]colour{},
		found:   map[string]Cycle{},
	}
	for _, start := range sortedKeys(w.corners) {
		if w.colour[start] == unvisited {
			w.visit(start)
		}
	}

	cycles := make([]Cycle, 0, len(w.found))
	for _, key := range sortedKeys(w.found) {
		cycles = append(cycles, w.found[key])
	}
	return cycles
}

// IsLeftRecursive reports whether any rule of g is left recursive.
func (g *Grammar) IsLeftRecursive() bool {
	return len(g.LeftRecursionCycles()) > 0
}

// leftCorners maps every nonterminal to the nonterminals its alternatives
// begin with.
func leftCorners(rules []*Rule) map[string]frozen.Set {
	nts := nonTerminalsOf(rules)
	corners := map[string]frozen.Set{}
	for _, r := range rules {
		td, has := corners[r.NonTerminal]
		if !has {
			td = frozen.NewSet()
		}
		for _, alt := range r.Alts {
			if len(alt) > 0 && nts.Has(alt[0]) {
				td = td.With(alt[0])
			}
		}
		corners[r.NonTerminal] = td
	}
	return corners
}

type colour int

const (
	unvisited colour = iota
	onPath
	done
)

type cycleWalk struct {
	corners map[string]frozen.Set
	colour  map[string]colour
	path    []string
	found   map[string]Cycle
}

func (w *cycleWalk) visit(name string) {
	w.colour[name] = onPath
	w.path = append(w.path, name)
	for _, next := range sortedSet(w.corners[name]) {
		switch w.colour[next] {
		case unvisited:
			w.visit(next)
		case onPath:
			w.closeCycle(next)
		}
	}
	w.path = w.path[:len(w.path)-1]
	w.colour[name] = done
}

// closeCycle records the part of the current path from name onwards, which
// the edge just followed leads back to.
func (w *cycleWalk) closeCycle(name string) {
	for i := len(w.path) - 1; i >= 0; i-- {
		if w.path[i] == name {
			closed := make([]string, 0, len(w.path)-i+1)
			closed = append(closed, w.path[i:]...)
			c := canonicalCycle(append(closed, name))
			w.found[c.String()] = c
			return
		}
	}
}

// canonicalCycle rotates a closed path (first == last) so that it starts at
// its smallest element.
func canonicalCycle(path []string) Cycle {
	ring := path[:len(path)-1]
	start := 0
	for i, n := range ring {
		if n < ring[start] {
			start = i
		}
	}
	c := make(Cycle, 0, len(path))
	c = append(c, ring[start:]...)
	c = append(c, ring[:start]...)
	return append(c, ring[start])
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
