//go:build !windows

package bootstrap

// allocDiagnosticConsole is a no-op off Windows: the host's inherited stdio
// already reaches a terminal or log file.
func allocDiagnosticConsole() {}
