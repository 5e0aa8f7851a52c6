package grammar

import (
	"github.com/arr-ai/unleft/parse"
)

const (
	arrow     = "->"
	separator = "|"
)

// ParseRule parses a single rule of the form
//
//	NONTERMINAL -> alt | alt ...
//
// where each alt is either the literal `empty` or one or more
// whitespace-separated tokens.
func ParseRule(text string) (*Rule, error) {
	return ParseRuleScanner(parse.NewScanner(text))
}

// ParseRuleScanner parses the rule held by line. Errors report positions
// relative to the source line was cut from.
func ParseRuleScanner(line *parse.Scanner) (*Rule, error) {
	fields := line.Fields()
	if len(fields) < 2 {
		return nil, &MissingArrowError{locate(*line, nil)}
	}
	malformed := func(at *parse.Scanner, reason string) error {
		return &MalformedRuleError{location: locate(*line, at), Reason: reason}
	}
	if fields[1].String() != arrow {
		return nil, malformed(&fields[1], "expected `->`, got "+fields[1].String())
	}

	rule := &Rule{NonTerminal: fields[0].String()}
	alt := Expr{}
	explicitEmpty := false
	closeAlt := func(at *parse.Scanner) error {
		if len(alt) == 0 && !explicitEmpty {
			return malformed(at, "alternative has no tokens; write `empty` for an empty alternative")
		}
		rule.Alts = append(rule.Alts, alt)
		alt = Expr{}
		explicitEmpty = false
		return nil
	}

	for i := 2; i < len(fields); i++ {
		f := &fields[i]
		switch tok := f.String(); {
		case tok == separator:
			if err := closeAlt(f); err != nil {
				return nil, err
			}
		case explicitEmpty:
			return nil, malformed(f, "`empty` must be the only token of its alternative")
		case tok == EmptyLiteral:
			if len(alt) > 0 {
				return nil, malformed(f, "`empty` must be the only token of its alternative")
			}
			explicitEmpty = true
		default:
			alt.Append(tok)
		}
	}

	var end *parse.Scanner
	if last := &fields[len(fields)-1]; last.String() == separator {
		end = last
	}
	if err := closeAlt(end); err != nil {
		return nil, err
	}
	return rule, nil
}
