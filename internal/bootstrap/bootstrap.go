// Package bootstrap wires the resolver, the RCON server, and the
// diagnostics log together into the single entry point pkg/bridge calls on
// library attach.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/hostbridge/rcon/internal/callconv"
	"github.com/hostbridge/rcon/internal/config"
	"github.com/hostbridge/rcon/internal/diagnostics"
	"github.com/hostbridge/rcon/internal/rcon"
	"github.com/hostbridge/rcon/internal/resolve"
	"github.com/hostbridge/rcon/internal/trampoline"
)

// diagCapacity bounds the in-memory diagnostics ring buffer kept for the
// lifetime of the attached process.
const diagCapacity = 4096

// Attach runs the full bootstrap sequence: clear the injection environment
// variable, capture and resolve the host image, and — only on a successful
// resolve — start the RCON server on its own goroutine. It returns promptly
// in every case; the server (if started) keeps running after Attach
// returns.
//
// ctx is checked once, before the host image is captured; capture, resolve
// and Serve do not observe it, and once Serve is running it has no
// cancellation path and runs until process exit.
func Attach(ctx context.Context) error {
	allocDiagnosticConsole()
	diag := diagnostics.NewMirrored(diagCapacity,
		slog.New(slog.NewTextHandler(os.Stdout, nil)))

	if cleared := config.ClearInjectionEnv(); cleared != "" {
		diag.Eventf("bootstrap", "cleared injection environment variable")
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	img, err := resolve.CaptureImage()
	if err != nil {
		diag.Eventf("bootstrap", "capture image failed: %v", err)
		return fmt.Errorf("bootstrap: capture image: %w", err)
	}

	symbols, err := resolve.Resolve(img)
	if err != nil {
		diag.Eventf("bootstrap", "resolve failed: %v", err)
		return fmt.Errorf("bootstrap: resolve: %w", err)
	}

	if !symbols.Armed() {
		diag.Eventf("bootstrap", "resolved symbols did not arm the server")
		return fmt.Errorf("bootstrap: resolved symbols do not satisfy the arming invariant")
	}

	diag.Eventf("bootstrap", "resolved symbols: console_command_entry=0x%x console_player=0x%x give_artifact_entry=0x%x",
		symbols.ConsoleCommandEntry, symbols.ConsolePlayer, symbols.GiveArtifactEntry)

	calls := callconv.New()
	server := rcon.New(symbols, calls, diag)

	installTrampoline(symbols, server, diag)

	go func() {
		if err := server.Serve(); err != nil {
			diag.Eventf("bootstrap", "rcon server exited: %v", err)
		}
	}()

	return nil
}

// installTrampoline wires up output interception when the resolver found a
// printf hook site and this build supports it. Failure is logged and
// non-fatal: the server continues without output mirroring.
func installTrampoline(symbols *resolve.ResolvedSymbols, sender trampoline.Sender, diag *diagnostics.Log) {
	if symbols.PrintfHookSite == 0 {
		return
	}

	t := trampoline.New()
	if !t.CanIntercept() {
		return
	}

	err := t.Install(symbols.PrintfHookSite, func(frame trampoline.SavedFrame) {
		trampoline.Capture(frame, sender)
	})
	if err != nil {
		diag.Eventf("bootstrap", "trampoline install failed: %v", err)
		return
	}
	diag.Eventf("bootstrap", "output interception trampoline installed")
}
