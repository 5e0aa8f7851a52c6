// Package input reads grammar rules and session commands line by line, either
// from any io.Reader or interactively from a terminal.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// LineReader reads non-blank lines of input with surrounding whitespace
// removed. At end of input ReadLine returns "" and io.EOF.
type LineReader interface {
	ReadLine() (string, error)
	Close() error
}

// DirectReader reads lines from a generic input stream. It does not sanitize
// the input of control and escape sequences.
type DirectReader struct {
	r *bufio.Reader
}

// InteractiveReader reads lines from stdin with line editing and history.
// It should in general only be used when connected to a TTY.
type InteractiveReader struct {
	rl *readline.Instance
}

func NewDirectReader(r io.Reader) *DirectReader {
	return &DirectReader{r: bufio.NewReader(r)}
}

// NewInteractiveReader initializes readline. Close must be called on the
// returned reader to restore the terminal.
func NewInteractiveReader(prompt string) (*InteractiveReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}

	return &InteractiveReader{rl: rl}, nil
}

func (dr *DirectReader) Close() error {
	return nil
}

func (ir *InteractiveReader) Close() error {
	return ir.rl.Close()
}

// ReadLine blocks until a line containing non-space characters is read.
func (dr *DirectReader) ReadLine() (string, error) {
	for {
		line, err := dr.r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
		if err == io.EOF {
			return "", err
		}
	}
}

// ReadLine blocks until a line containing non-space characters is read. An
// interrupt (ctrl-C) is reported as readline.ErrInterrupt.
func (ir *InteractiveReader) ReadLine() (string, error) {
	for {
		line, err := ir.rl.Readline()
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
	}
}
