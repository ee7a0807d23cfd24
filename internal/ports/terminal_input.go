package ports

// TerminalInput provides methods for reading user input from the terminal.
type TerminalInput interface {
	// ReadLine prints the prompt and returns one line of input without the line terminator.
	ReadLine(prompt string) (string, error)
	// ReadPassword prompts for a password and returns the input without echoing to the terminal.
	ReadPassword(prompt string) (string, error)
	// Println writes a message followed by a newline to the prompt output.
	Println(message string)
	// IsTerminal returns true if stdin is connected to a terminal.
	IsTerminal() bool
}
