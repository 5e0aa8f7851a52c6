package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dekarrin/rosed"
	"github.com/urfave/cli"

	"github.com/arr-ai/unleft/gotree"
	"github.com/arr-ai/unleft/grammar"
)

const consoleOutputWidth = 80

var strictMode bool

var checkCommand = cli.Command{
	Name:    "check",
	Aliases: []string{"c"},
	Usage:   "Report the symbols and left recursion of a grammar",
	Action:  check,
	Flags: []cli.Flag{
		inputFlag,
		cli.BoolFlag{
			Name:        "strict",
			Usage:       "fail if the grammar is left recursive",
			Destination: &strictMode,
		},
		verboseFlag,
	},
}

func check(c *cli.Context) error {
	src, filename, err := readSource(inFile)
	if err != nil {
		return err
	}
	g, err := grammar.Parse(src, filename)
	if err != nil {
		return err
	}

	report, cycles := checkReport(g)
	if err := writeOutput("-", report); err != nil {
		return err
	}
	if (strictMode || settings.Strict) && g.IsLeftRecursive() {
		return fmt.Errorf("grammar is left recursive: %d cycle(s)", len(cycles))
	}
	return nil
}

// checkReport renders a table of the nonterminals of a classified grammar
// followed by its left-recursive cycles.
func checkReport(g *grammar.Grammar) (string, []grammar.Cycle) {
	var sb strings.Builder

	sb.WriteString(symbolTable(g))
	sb.WriteString("\n")
	if terms := g.Terminals(); len(terms) > 0 {
		sb.WriteString(rosed.Edit("terminals: " + strings.Join(terms, " ")).Wrap(consoleOutputWidth).String())
		sb.WriteString("\n")
	}

	cycles := g.LeftRecursionCycles()
	if len(cycles) == 0 {
		sb.WriteString("no left recursion\n")
		return sb.String(), nil
	}
	sb.WriteString(cycleTree(g, cycles).Print())
	return sb.String(), cycles
}

func symbolTable(g *grammar.Grammar) string {
	type row struct {
		alts   int
		direct bool
	}
	var order []string
	rows := map[string]*row{}
	for _, r := range g.Rules() {
		x, has := rows[r.NonTerminal]
		if !has {
			x = &row{}
			rows[r.NonTerminal] = x
			order = append(order, r.NonTerminal)
		}
		x.alts += len(r.Alts)
		x.direct = x.direct || r.IsDirectlyLeftRecursive()
	}

	data := [][]string{{"Nonterminal", "Alternatives", "Directly left recursive"}}
	for _, nt := range order {
		direct := "no"
		if rows[nt].direct {
			direct = "yes"
		}
		data = append(data, []string{nt, strconv.Itoa(rows[nt].alts), direct})
	}

	tableOpts := rosed.Options{
		TableHeaders:             true,
		NoTrailingLineSeparators: true,
	}
	return rosed.Edit("").
		InsertTableOpts(0, data, consoleOutputWidth, tableOpts).
		String()
}

// cycleTree lists each cycle with the rules that close it.
func cycleTree(g *grammar.Grammar, cycles []grammar.Cycle) gotree.Tree {
	tree := gotree.New(fmt.Sprintf("left recursion: %d cycle(s)", len(cycles)))
	for _, cycle := range cycles {
		node := tree.Add(cycle.String())
		for i := 0; i < len(cycle)-1; i++ {
			for _, r := range g.Rules() {
				if r.NonTerminal != cycle[i] {
					continue
				}
				for _, alt := range r.Alts {
					if alt.StartsWith(cycle[i+1]) {
						node.Add(r.NonTerminal + " -> " + alt.String())
					}
				}
			}
		}
	}
	return tree
}
