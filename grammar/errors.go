package grammar

import (
	"fmt"
	"strings"

	"github.com/arr-ai/unleft/gotree"
	"github.com/arr-ai/unleft/parse"
)

// location is where in the input a rule error was found.
type location struct {
	Filename string
	LineNo   int // 1-indexed, 0 if the rule was parsed on its own
	Col      int // 1-indexed column of the offending field
	Text     string

	context string
}

func locate(line parse.Scanner, at *parse.Scanner) location {
	loc := location{Filename: line.Filename(), Text: strings.TrimSpace(line.String())}
	if at == nil {
		at = line.Skip(line.Len())
	}
	lineNo, col := at.Position()
	if loc.Filename != "" || lineNo > 1 {
		loc.LineNo = lineNo
	}
	loc.Col = col
	loc.context = at.Context()
	return loc
}

// Highlight renders the rule's line with the offending field marked by
// terminal colour codes.
func (l location) Highlight() string {
	return l.context
}

func (l location) prefix() string {
	switch {
	case l.Filename != "":
		return fmt.Sprintf("%s:%d:%d: ", l.Filename, l.LineNo, l.Col)
	case l.LineNo > 0:
		return fmt.Sprintf("%d:%d: ", l.LineNo, l.Col)
	default:
		return fmt.Sprintf("col %d: ", l.Col)
	}
}

// MissingArrowError is returned for a rule line with fewer than two fields.
type MissingArrowError struct {
	location
}

func (e *MissingArrowError) Error() string {
	return fmt.Sprintf("%sexpected `->` after nonterminal in rule %q", e.prefix(), e.Text)
}

// MalformedRuleError is returned for a rule line that does not follow
// `NONTERMINAL -> alt | alt ...`.
type MalformedRuleError struct {
	location
	Reason string
}

func (e *MalformedRuleError) Error() string {
	return fmt.Sprintf("%sinvalid rule %q: %s", e.prefix(), e.Text, e.Reason)
}

// UnterminatableRuleError is returned when a rule has only alternatives that
// begin with its own nonterminal, so it can never derive a finite string.
type UnterminatableRuleError struct {
	Rule *Rule
}

func (e *UnterminatableRuleError) Error() string {
	tree := gotree.New("rule does not construct anything")
	node := tree.Add(e.Rule.String())
	for _, alt := range e.Rule.Alts {
		node.Add(fmt.Sprintf("%s: begins with %s", alt, e.Rule.NonTerminal))
	}
	return tree.Print()
}

// InvalidGrammarError is returned by Grammar.EliminateLeftRecursion when some
// rule cannot terminate. The message does not name the rule; use errors.As
// with *UnterminatableRuleError to recover it.
type InvalidGrammarError struct {
	cause *UnterminatableRuleError
}

func (e *InvalidGrammarError) Error() string {
	return "invalid grammar: some nonterminals cannot terminate"
}

func (e *InvalidGrammarError) Unwrap() error {
	if e.cause == nil {
		return nil
	}
	return e.cause
}
