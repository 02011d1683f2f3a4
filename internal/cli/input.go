package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// test seams for the terminal
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// Prompter reads interactive input.
type Prompter interface {
	// Line prints label and reads one trimmed line.
	Line(label string) (string, error)
	// Password prints label and reads a secret without echo when attached
	// to a terminal.
	Password(label string) (string, error)
}

type terminalPrompter struct {
	reader *bufio.Reader
	out    io.Writer
	fd     int
}

func newTerminalPrompter(in io.Reader, out io.Writer, fd int) *terminalPrompter {
	return &terminalPrompter{reader: bufio.NewReader(in), out: out, fd: fd}
}

func (p *terminalPrompter) Line(label string) (string, error) {
	if _, err := fmt.Fprint(p.out, label+": "); err != nil {
		return "", err
	}
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *terminalPrompter) Password(label string) (string, error) {
	if !isTerminal(p.fd) {
		return p.Line(label)
	}

	if _, err := fmt.Fprint(p.out, label+": "); err != nil {
		return "", err
	}
	pw, err := readPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}
