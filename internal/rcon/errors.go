package rcon

import (
	"encoding/json"
	"fmt"

	"github.com/hostbridge/rcon/internal/callconv"
	"github.com/hostbridge/rcon/internal/diagnostics"
	"github.com/hostbridge/rcon/internal/resolve"
)

// ReportError formats err as "echo ERROR: <prefix>: <description>" and
// submits it through console_command_entry if one is resolved and callable
// (the host's echo command surfaces the line in the game's UI). In either
// case it also records the line to the local diagnostic stream when diag is
// non-nil. It takes no Server, so it can be called before one exists.
func ReportError(symbols *resolve.ResolvedSymbols, calls callconv.Caller, diag *diagnostics.Log, prefix string, err error) {
	line := fmt.Sprintf("echo ERROR: %s: %s", prefix, err)

	if symbols.Armed() && symbols.ConsoleCommandEntry != 0 && calls != nil && calls.CanCall(symbols.ConsoleCommandABI) {
		calls.CallCommand(symbols.ConsoleCommandEntry, symbols.ConsoleCommandABI, line, 0)
	}

	if diag == nil {
		return
	}
	payload, _ := json.Marshal(map[string]string{"message": line})
	diag.Append("error", payload)
}
