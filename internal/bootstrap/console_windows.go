//go:build windows

package bootstrap

import "golang.org/x/sys/windows"

// allocDiagnosticConsole gives the injected library somewhere to print its
// diagnostic lines: the game hosts are GUI-subsystem binaries with no
// console of their own. Failure is ignored — a console may already exist
// when the host was started from a terminal.
func allocDiagnosticConsole() {
	kernel32 := windows.NewLazySystemDLL("kernel32.dll")
	_, _, _ = kernel32.NewProc("AllocConsole").Call()
}
