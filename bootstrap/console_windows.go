//go:build windows

package bootstrap

import (
	"os"

	"golang.org/x/sys/windows"
)

// initConsole disables quick edit, a click in the console would otherwise pause the process.
func initConsole() {
	stdIn := windows.Handle(os.Stdin.Fd())
	var consoleMode uint32
	if err := windows.GetConsoleMode(stdIn, &consoleMode); err != nil {
		return
	}
	consoleMode = consoleMode&^windows.ENABLE_QUICK_EDIT_MODE | windows.ENABLE_EXTENDED_FLAGS
	_ = windows.SetConsoleMode(stdIn, consoleMode)
}
