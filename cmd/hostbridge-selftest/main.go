// Command hostbridge-selftest runs the memory-map enumerator and signature
// scanners against the current process's own image — useful on a
// development box without a target game running — and prints whatever the
// resolver finds. With
// -http it additionally exposes the diagnostics log over a small read-only
// HTTP endpoint instead of exiting.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/hostbridge/rcon/internal/diagnostics"
	"github.com/hostbridge/rcon/internal/resolve"
)

func main() {
	httpAddr := flag.String("http", "", "serve the diagnostics dump over HTTP at this address instead of exiting (e.g. 127.0.0.1:9100)")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	diag := diagnostics.New(256)

	img, err := resolve.CaptureImage()
	if err != nil {
		logger.Error("capture image failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("captured process image",
		slog.Int("read_only_regions", len(img.ReadOnly)),
		slog.Int("exec_regions", len(img.Exec)),
	)

	symbols, err := resolve.Resolve(img)
	if err != nil {
		logger.Warn("no host profile matched", slog.Any("error", err))
		diag.Eventf("resolve", "no host profile matched: %v", err)
	} else {
		logger.Info("resolved symbols",
			slog.Uint64("console_command_entry", uint64(symbols.ConsoleCommandEntry)),
			slog.String("console_command_abi", symbols.ConsoleCommandABI.String()),
			slog.Uint64("printf_hook_site", uint64(symbols.PrintfHookSite)),
			slog.Uint64("console_player", uint64(symbols.ConsolePlayer)),
			slog.Uint64("give_artifact_entry", uint64(symbols.GiveArtifactEntry)),
			slog.Bool("armed", symbols.Armed()),
		)
		diag.Eventf("resolve", "armed=%v console_command_entry=0x%x", symbols.Armed(), symbols.ConsoleCommandEntry)
	}

	if *httpAddr == "" {
		printDump(diag)
		if err != nil {
			os.Exit(1)
		}
		return
	}

	serveDiagnostics(*httpAddr, diag, logger)
}

func printDump(diag *diagnostics.Log) {
	for _, e := range diag.Dump() {
		fmt.Printf("[%d] %s: %s\n", e.Seq, e.Kind, string(e.Payload))
	}
}

// serveDiagnostics exposes diag.Dump() as JSON at GET /diagnostics, blocking
// until the process is killed.
func serveDiagnostics(addr string, diag *diagnostics.Log, logger *slog.Logger) {
	r := chi.NewRouter()
	r.Get("/diagnostics", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(diag.Dump())
	})

	logger.Info("serving diagnostics", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Error("diagnostics server exited", slog.Any("error", err))
	}
}
