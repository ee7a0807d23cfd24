package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"mylib/internal/ports"

	"golang.org/x/term"
)

// Compile-time interface compliance check
var _ ports.TerminalInput = (*TerminalInput)(nil)

// TerminalInput provides terminal input operations using golang.org/x/term.
type TerminalInput struct {
	in     io.Reader
	reader *bufio.Reader
	out    io.Writer
}

// ProvideTerminalInput creates a new TerminalInput adapter bound to stdin and stdout.
func ProvideTerminalInput() *TerminalInput {
	return NewTerminalInput(os.Stdin, os.Stdout)
}

// NewTerminalInput creates a TerminalInput reading from in and writing prompts to out.
func NewTerminalInput(in io.Reader, out io.Writer) *TerminalInput {
	return &TerminalInput{
		in:     in,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// ReadLine prints the prompt and returns the next line without its line terminator.
// io.EOF is returned only when no characters were read before end of input.
func (t *TerminalInput) ReadLine(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	line, err := t.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadPassword prompts for a password and returns the input without echoing to the terminal.
func (t *TerminalInput) ReadPassword(prompt string) (string, error) {
	fd, ok := t.fd()
	if !ok {
		return "", fmt.Errorf("failed to read password: input is not a terminal")
	}
	fmt.Fprint(t.out, prompt)
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(t.out) // Print newline after password input
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

func (t *TerminalInput) Println(message string) {
	fmt.Fprintln(t.out, message)
}

// IsTerminal returns true if the input is connected to a terminal.
func (t *TerminalInput) IsTerminal() bool {
	fd, ok := t.fd()
	return ok && term.IsTerminal(fd)
}

func (t *TerminalInput) fd() (int, bool) {
	f, ok := t.in.(*os.File)
	if !ok {
		return 0, false
	}
	return int(f.Fd()), true
}
