//go:build !windows

package output

// initTerminal reports whether stdout accepts ANSI escape sequences.
// Unix terminals generally support them by default.
func initTerminal() bool {
	return true
}
