//go:build windows

package output

import (
	"os"

	"golang.org/x/sys/windows"
)

// initTerminal attempts to enable Virtual Terminal Processing so that ANSI
// escape sequences are interpreted. Returns false if that is not possible.
func initTerminal() bool {
	handle := windows.Handle(os.Stdout.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return false
	}

	// ENABLE_VIRTUAL_TERMINAL_PROCESSING enables ANSI escape sequence support
	const enableVirtualTerminalProcessing = 0x0004
	if err := windows.SetConsoleMode(handle, mode|enableVirtualTerminalProcessing); err != nil {
		return false
	}

	return true
}
