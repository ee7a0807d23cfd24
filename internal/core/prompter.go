package core

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"mylib/internal/core/domain"
	"mylib/internal/ports"
)

var (
	ErrEndOfInput   = errors.New("end of input")
	ErrEmptyRange   = errors.New("empty number range")
	ErrNoOptions    = errors.New("no options to choose from")
	ErrNotATerminal = errors.New("no terminal available")
)

// Prompter asks questions on the terminal and re-prompts until the answer is valid.
// Every prompt returns ErrEndOfInput once input is exhausted.
type Prompter struct {
	terminalInput ports.TerminalInput
	fileSystem    ports.FileSystem
}

func ProvidePrompter(terminalInput ports.TerminalInput, fileSystem ports.FileSystem) *Prompter {
	return &Prompter{
		terminalInput: terminalInput,
		fileSystem:    fileSystem,
	}
}

func (p *Prompter) readLine(prompt string) (string, error) {
	line, err := p.terminalInput.ReadLine(prompt)
	if errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: %w", ErrEndOfInput, err)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return line, nil
}

// YesNo accepts y/ye/yes and n/no in any case.
func (p *Prompter) YesNo(message string) (bool, error) {
	for {
		answer, err := p.readLine(fmt.Sprintf("%s ([y]/N): ", message))
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "ye", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

// BoundedNumber returns an integer in [start, stop).
func (p *Prompter) BoundedNumber(message string, start, stop int) (int, error) {
	if stop <= start {
		return 0, fmt.Errorf("%w: [%d, %d)", ErrEmptyRange, start, stop)
	}

	p.terminalInput.Println(message)
	prompt := fmt.Sprintf("Please choose from %d to %d: ", start, stop-1)
	for {
		answer, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		number, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil {
			continue
		}
		if start <= number && number < stop {
			return number, nil
		}
	}
}

// Choose shows a numbered menu and returns the picked list value or map key.
func Choose[T any](p *Prompter, question string, options domain.Options[T], prefix, suffix string) (T, error) {
	var zero T
	if options.Len() == 0 {
		return zero, ErrNoOptions
	}

	var menu strings.Builder
	menu.WriteString(question)
	for i := 0; i < options.Len(); i++ {
		fmt.Fprintf(&menu, "\n%3d\t%s%s%s", i, prefix, options.Label(i), suffix)
	}

	index, err := p.BoundedNumber(menu.String(), 0, options.Len())
	if err != nil {
		return zero, err
	}
	return options.Pick(index), nil
}

// RequiredText returns the first non-blank answer, trimmed.
func (p *Prompter) RequiredText(message string) (string, error) {
	for {
		answer, err := p.readLine(message)
		if err != nil {
			return "", err
		}
		if answer = strings.TrimSpace(answer); answer != "" {
			return answer, nil
		}
	}
}

// ExistingFilePath returns a path that exists. Quotes are removed so that
// paths pasted from a file manager are accepted. A non-empty ext must equal
// the path's suffix exactly; an empty ext accepts any suffix, including none.
func (p *Prompter) ExistingFilePath(message, ext string) (string, error) {
	for {
		answer, err := p.readLine(message)
		if err != nil {
			return "", err
		}
		path := strings.ReplaceAll(strings.TrimSpace(answer), `"`, "")
		if path == "" {
			continue
		}
		if ext != "" && domain.Suffix(filepath.Base(path)) != ext {
			continue
		}
		if exists, err := p.fileSystem.FileExists(path); err == nil && exists {
			return path, nil
		}
	}
}

// Password reads hidden input and re-prompts on an empty answer.
func (p *Prompter) Password(message string) (string, error) {
	if !p.terminalInput.IsTerminal() {
		return "", ErrNotATerminal
	}
	for {
		password, err := p.terminalInput.ReadPassword(message)
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: %w", ErrEndOfInput, err)
		}
		if err != nil {
			return "", err
		}
		if password != "" {
			return password, nil
		}
	}
}
