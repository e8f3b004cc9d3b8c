package resolve

import "github.com/hostbridge/rcon/internal/scanner"

// ABI is re-exported from internal/scanner rather than redeclared: the
// resolver and the scanners that feed it describe the exact same tagged
// variant, and internal/callconv needs to accept either package's value
// interchangeably.
type ABI = scanner.ABI

const (
	SysV64     = scanner.SysV64
	Win64      = scanner.Win64
	Cdecl32    = scanner.Cdecl32
	Stdcall32  = scanner.Stdcall32
	Fastcall32 = scanner.Fastcall32
)

// ResolvedSymbols is the process-wide record populated once by Resolve and
// read thereafter. Every field is optional; ConsoleCommandEntry
// != 0, or (ConsolePlayer != 0 && GiveArtifactEntry != 0), must hold for
// Armed to report true.
type ResolvedSymbols struct {
	// ConsoleCommandEntry is the callable "(cmd *byte, flags int)" that
	// submits a line of text to the host's console interpreter.
	ConsoleCommandEntry uintptr
	// ConsoleCommandABI is the calling convention ConsoleCommandEntry
	// expects. Only meaningful when ConsoleCommandEntry != 0.
	ConsoleCommandABI ABI

	// PrintfHookSite is the address inside the host's formatted-print
	// routine at which internal/trampoline redirects a CALL, if output
	// interception is available on this platform.
	PrintfHookSite uintptr

	// ConsolePlayer is the address of the global pointer to the local
	// player instance, used by the Russian-Doom fallback dispatch path.
	ConsolePlayer uintptr
	// GiveArtifactEntry is the callable "(player*, int, object*) -> int"
	// used as the Russian-Doom fallback's hard-coded dispatch action.
	GiveArtifactEntry uintptr
}

// Armed reports whether enough of ResolvedSymbols was populated for the RCON
// server to start servicing command dispatch.
func (s *ResolvedSymbols) Armed() bool {
	if s == nil {
		return false
	}
	if s.ConsoleCommandEntry != 0 {
		return true
	}
	return s.ConsolePlayer != 0 && s.GiveArtifactEntry != 0
}
