package cmd

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/arr-ai/unleft/grammar"
)

var inFile string
var outFile string
var nameStyle string
var verboseMode bool

var inputFlag = cli.StringFlag{
	Name:        "input",
	Usage:       "input grammar file, one rule per line (default: stdin)",
	Required:    false,
	TakesFile:   true,
	Destination: &inFile,
}

var verboseFlag = cli.BoolFlag{
	Name:        "v",
	Usage:       "verbose logging",
	Destination: &verboseMode,
}

var eliminateCommand = cli.Command{
	Name:    "eliminate",
	Aliases: []string{"e"},
	Usage:   "Rewrite a grammar without left recursion",
	Action:  eliminate,
	Flags: []cli.Flag{
		inputFlag,
		cli.StringFlag{
			Name:        "output",
			Usage:       "filename to write the output to (default: stdout)",
			Required:    false,
			TakesFile:   true,
			Destination: &outFile,
		},
		cli.StringFlag{
			Name:        "style",
			Usage:       "helper nonterminal naming: prime (E') or tail (ETail)",
			Destination: &nameStyle,
		},
		verboseFlag,
	},
}

func eliminate(c *cli.Context) error {
	if verboseMode {
		logrus.SetLevel(logrus.TraceLevel)
	}
	style, err := resolveStyle(nameStyle)
	if err != nil {
		return err
	}

	src, filename, err := readSource(inFile)
	if err != nil {
		return err
	}

	out, err := eliminateSource(src, filename, style)
	if err != nil {
		return err
	}
	return writeOutput(outFile, out)
}

// eliminateSource parses src, removes its left recursion and renders the
// result. Nothing is rendered if any step fails.
func eliminateSource(src, filename string, style grammar.NameStyle) (string, error) {
	g, err := grammar.Parse(src, filename)
	if err != nil {
		return "", err
	}
	logrus.WithFields(logrus.Fields{
		"rules":        len(g.Rules()),
		"nonterminals": len(g.NonTerminals()),
		"terminals":    len(g.Terminals()),
	}).Debug("grammar loaded")

	g.Style = style
	if err := g.EliminateLeftRecursion(); err != nil {
		var ure *grammar.UnterminatableRuleError
		if errors.As(err, &ure) {
			logrus.WithField("rule", ure.Rule.String()).Debug("unterminatable rule")
		}
		return "", err
	}

	for _, cycle := range g.LeftRecursionCycles() {
		logrus.WithField("cycle", cycle.String()).Warn("left recursion remains")
	}

	if len(g.Rules()) == 0 {
		return "", nil
	}
	return g.String() + "\n", nil
}
