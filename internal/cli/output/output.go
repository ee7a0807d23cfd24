package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ProvideStdout returns the writer command results are printed to.
func ProvideStdout() io.Writer {
	return os.Stdout
}

// ColorsEnabled returns true if terminal colors should be used.
// Respects NO_COLOR environment variable (https://no-color.org/)
func ColorsEnabled() bool {
	_, noColor := os.LookupEnv("NO_COLOR")
	if noColor {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd())) && initTerminal()
}

// Symbols for CLI output (ASCII-compatible)
const (
	SymbolSuccess = "+"
	SymbolError   = "x"
	SymbolWarning = "!"
	SymbolInfo    = "*"
	SymbolArrow   = "->"
	SymbolBullet  = "-"
)

func style(text string, attributes ...color.Attribute) string {
	if !ColorsEnabled() {
		return text
	}
	c := color.New(attributes...)
	c.EnableColor()
	return c.Sprint(text)
}

// Dim returns text in dim style (or plain if colors disabled)
func Dim(text string) string {
	return style(text, color.Faint)
}

// Success returns text styled for success messages
func Success(text string) string {
	return style(text, color.FgGreen)
}

// Error returns text styled for error messages
func Error(text string) string {
	return style(text, color.FgRed)
}

// Warning returns text styled for warning messages
func Warning(text string) string {
	return style(text, color.FgYellow)
}

// Info returns text styled for informational messages
func Info(text string) string {
	return style(text, color.FgCyan)
}

// Header returns text styled as a section header
func Header(text string) string {
	return style(text, color.Bold, color.FgWhite)
}

// PrintHeader prints a bold section header
func PrintHeader(text string) {
	fmt.Println(Header(text))
}

// PrintSuccess prints a success message with + symbol
func PrintSuccess(message string) {
	fmt.Printf("%s %s\n", Success(SymbolSuccess), Success(message))
}

// PrintError prints an error message with x symbol to stderr
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", Error(SymbolError), Error(message))
}

// PrintWarning prints a warning message with ! symbol to stderr
func PrintWarning(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", Warning(SymbolWarning), Warning(message))
}

// PrintInfo prints an info message with * symbol
func PrintInfo(message string) {
	fmt.Printf("%s %s\n", Info(SymbolInfo), Info(message))
}

// PrintStep prints a step being executed with arrow
func PrintStep(message string) {
	fmt.Printf("  %s %s\n", Dim(SymbolArrow), message)
}

// Plural returns the singular or plural form based on count
func Plural(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
