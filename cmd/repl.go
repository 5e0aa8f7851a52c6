package cmd

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dekarrin/rosed"
	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/arr-ai/unleft/grammar"
	"github.com/arr-ai/unleft/input"
)

var forceDirect bool

var replCommand = cli.Command{
	Name:    "repl",
	Aliases: []string{"r"},
	Usage:   "Enter rules interactively",
	Action:  repl,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:        "style",
			Usage:       "helper nonterminal naming: prime (E') or tail (ETail)",
			Destination: &nameStyle,
		},
		cli.BoolFlag{
			Name:        "direct",
			Usage:       "read directly from stdin instead of going through readline",
			Destination: &forceDirect,
		},
		verboseFlag,
	},
}

const replHelp = `enter one rule per line, e.g. E -> E + T | T
.rules  show the rules entered so far
.check  report left recursion
.elim   show the rules without left recursion
.reset  forget all rules
.quit   leave (end of input runs .elim first)`

func repl(c *cli.Context) error {
	if verboseMode {
		logrus.SetLevel(logrus.TraceLevel)
	}
	style, err := resolveStyle(nameStyle)
	if err != nil {
		return err
	}

	var in input.LineReader
	useReadline := !forceDirect &&
		readline.IsTerminal(int(os.Stdin.Fd())) &&
		readline.IsTerminal(int(os.Stdout.Fd()))
	if useReadline {
		in, err = input.NewInteractiveReader("rule> ")
		if err != nil {
			return err
		}
	} else {
		in = input.NewDirectReader(os.Stdin)
	}
	defer in.Close()

	initDisplay()
	s := newSession(style, ptermReporter{})
	s.report.Info(replHelp)
	return s.run(in)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " INFO ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

type reporter interface {
	Info(msg string)
	Error(msg string)
	Print(text string)
}

type ptermReporter struct{}

func (ptermReporter) Info(msg string) { pterm.Info.Println(msg) }
func (ptermReporter) Print(text string) { pterm.Println(text) }
func (ptermReporter) Error(msg string) {
	pterm.Error.Println(rosed.Edit(msg).Wrap(consoleOutputWidth).String())
}

// highlighter is implemented by rule syntax errors.
type highlighter interface {
	Highlight() string
}

// session accumulates rules entered one line at a time. The rules it holds
// are never rewritten; .elim works on a copy.
type session struct {
	g      *grammar.Grammar
	style  grammar.NameStyle
	report reporter
}

func newSession(style grammar.NameStyle, report reporter) *session {
	return &session{g: grammar.New(), style: style, report: report}
}

func (s *session) run(in input.LineReader) error {
	for {
		line, err := in.ReadLine()
		switch {
		case err == io.EOF:
			s.eliminate()
			return nil
		case errors.Is(err, readline.ErrInterrupt):
			return nil
		case err != nil:
			return err
		}
		if quit := s.exec(line); quit {
			return nil
		}
	}
}

// exec handles one line of input and reports whether the session is over.
func (s *session) exec(line string) bool {
	switch line {
	case ".quit", ".q":
		return true
	case ".help", ".h":
		s.report.Info(replHelp)
	case ".rules":
		s.g.Classify()
		if len(s.g.Rules()) == 0 {
			s.report.Info("no rules")
			return false
		}
		s.report.Print(s.g.String())
	case ".check":
		s.g.Classify()
		report, _ := checkReport(s.g)
		s.report.Print(strings.TrimRight(report, "\n"))
	case ".elim":
		s.eliminate()
	case ".reset":
		s.g = grammar.New()
		s.report.Info("rules cleared")
	default:
		if strings.HasPrefix(line, ".") {
			s.report.Error("unknown command " + line + " (try .help)")
			return false
		}
		if err := s.g.AddRule(line); err != nil {
			s.report.Error(err.Error())
		}
	}
	return false
}

func (s *session) eliminate() {
	if len(s.g.Rules()) == 0 {
		return
	}
	s.g.Classify()
	g := s.g.Clone()
	g.Style = s.style
	if err := g.EliminateLeftRecursion(); err != nil {
		var ure *grammar.UnterminatableRuleError
		if errors.As(err, &ure) {
			s.report.Error(err.Error() + "\n" + ure.Error())
		} else {
			s.report.Error(err.Error())
		}
		return
	}
	s.report.Print(g.String())
}
