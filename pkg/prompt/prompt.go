// Package prompt collects per-run parameters from an operator.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Provider supplies answers to prompts.
type Provider interface {
	// Line reads a single line.
	Line(prompt string) (string, error)
	// Text reads lines until the end of input.
	Text(prompt string) (string, error)
	// Secret reads a single line without echoing it.
	Secret(prompt string) (string, error)
}

// Terminal is a Provider that reads answers from an input
// stream and writes the prompts to an output stream.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
	fd  uintptr
	tty bool
}

// NewTerminal creates a Terminal provider. If in is a terminal then
// secrets are read with echo turned off.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	t := &Terminal{in: bufio.NewReader(in), out: out}
	if f, ok := in.(*os.File); ok {
		t.fd = f.Fd()
		t.tty = isatty.IsTerminal(t.fd) || isatty.IsCygwinTerminal(t.fd)
	}
	return t
}

// Stdio returns a Terminal that uses standard input and output.
func Stdio() *Terminal {
	return NewTerminal(os.Stdin, os.Stdout)
}

// Line prints the prompt and reads one line.
func (t *Terminal) Line(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	return t.readLine()
}

// Text prints the prompt on its own line then reads lines until
// the end of input. Lines are joined with a newline.
func (t *Terminal) Text(prompt string) (string, error) {
	fmt.Fprintln(t.out, prompt)
	var lines []string
	for {
		line, err := t.in.ReadString('\n')
		if len(line) > 0 {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return strings.Join(lines, "\n"), nil
}

// Secret prints the prompt and reads a line without echo.
func (t *Terminal) Secret(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	if !t.tty {
		return t.readLine()
	}
	b, err := term.ReadPassword(int(t.fd))
	fmt.Fprintln(t.out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err == io.EOF && len(line) > 0 {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
