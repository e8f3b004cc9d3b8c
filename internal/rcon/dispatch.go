package rcon

import "strings"

// dispatchCommand routes payload — the raw bytes following the
// CLRC_COMMAND opcode, not yet truncated or NUL-terminated — to whichever
// dispatch target was resolved.
func (s *Server) dispatchCommand(payload []byte) {
	if !s.ready.Load() {
		s.logEvent("drop", "reason", "command received before login")
		return
	}

	if len(payload) > maxCommandBytes {
		payload = payload[:maxCommandBytes]
	}
	cmd := string(payload)

	switch {
	case s.symbols.Armed() && s.symbols.ConsoleCommandEntry != 0:
		if !s.calls.CanCall(s.symbols.ConsoleCommandABI) {
			s.logEvent("drop", "reason", "console command entry resolved but this build cannot call its ABI")
			return
		}
		s.calls.CallCommand(s.symbols.ConsoleCommandEntry, s.symbols.ConsoleCommandABI, cmd, 0)
		s.logEvent("dispatch", "command", cmd)

	case s.symbols.Armed() && s.symbols.ConsolePlayer != 0 && s.symbols.GiveArtifactEntry != 0:
		// Russian-Doom fallback: a hard-coded give-artifact call regardless
		// of the command text.
		s.calls.CallGiveArtifact(s.symbols.GiveArtifactEntry, s.symbols.ConsolePlayer, 1, 0)
		s.logEvent("dispatch", "command", strings.TrimSpace(cmd)+" (give-artifact fallback)")

	default:
		s.logEvent("drop", "reason", "no resolved dispatch target")
	}
}
