package grammar

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

// NameStyle selects how helper nonterminals introduced by direct left
// recursion elimination are named.
type NameStyle int

const (
	// Primed appends a prime mark: E, E', E'', ...
	Primed NameStyle = iota
	// Tail appends "tail" in the case convention of the name: Expr, ExprTail,
	// ExprTailTail, ... Names that are not plain identifiers fall back to
	// Primed.
	Tail
)

const primeMark = "'"

var identRE = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

func ParseNameStyle(s string) (NameStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "prime", "primed":
		return Primed, nil
	case "tail":
		return Tail, nil
	}
	return Primed, fmt.Errorf("unknown name style %q (want prime or tail)", s)
}

func (s NameStyle) String() string {
	switch s {
	case Tail:
		return "tail"
	default:
		return "prime"
	}
}

// next derives the next candidate helper name from name.
func (s NameStyle) next(name string) string {
	if s == Tail && identRE.MatchString(name) {
		if r, _ := utf8.DecodeRuneInString(name); unicode.IsUpper(r) {
			return strcase.ToCamel(name + "_tail")
		}
		return strcase.ToLowerCamel(name + "_tail")
	}
	return name + primeMark
}

// freshName returns the first candidate derived from name that isAvailable
// accepts. name itself is never returned.
func (s NameStyle) freshName(name string, isAvailable func(string) bool) string {
	candidate := s.next(name)
	for !isAvailable(candidate) {
		candidate = s.next(candidate)
	}
	return candidate
}
