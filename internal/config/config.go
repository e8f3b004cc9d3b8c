// Package config provides environment-variable-driven configuration for the
// hostbridgectl command-line tool, plus ClearInjectionEnv for the bootstrap.
//
// The injected library itself (pkg/bridge, internal/bootstrap) takes no
// configuration at all — its listen address is hard-coded — so there is
// nothing here for it to load. This package exists purely for the external
// CLI collaborators, env-var-driven since there is no on-disk config for a
// thin UDP test client to read.
package config

import (
	"fmt"
	"os"
	"time"
)

// CLIConfig holds the settings cmd/hostbridgectl reads from the
// environment. Every field defaults to the server's
// hard-coded protocol values, so a bare invocation with no environment
// overrides needs no setup.
type CLIConfig struct {
	// ServerAddr is the RCON server's UDP address. Defaults to whatever
	// defaultAddr Load is called with (cmd/hostbridgectl passes
	// rcon.ListenAddr).
	ServerAddr string

	// DialTimeout bounds how long hostbridgectl waits for a reply before
	// reporting the server unreachable.
	DialTimeout time.Duration

	// LogLevel sets the minimum log severity: "debug", "info", "warn", or
	// "error". Defaults to "info".
	LogLevel string
}

const (
	envServerAddr  = "HOSTBRIDGE_ADDR"
	envDialTimeout = "HOSTBRIDGE_DIAL_TIMEOUT"
	envLogLevel    = "HOSTBRIDGE_LOG_LEVEL"

	defaultDialTimeout = 2 * time.Second
	defaultLogLevel    = "info"
)

// Load reads CLIConfig from the process environment, falling back to
// defaults for anything unset. defaultAddr is the caller's hard-coded
// fallback, kept as a parameter here to avoid this package importing
// internal/rcon just for one constant.
func Load(defaultAddr string) (CLIConfig, error) {
	cfg := CLIConfig{
		ServerAddr:  defaultAddr,
		DialTimeout: defaultDialTimeout,
		LogLevel:    defaultLogLevel,
	}

	if v := os.Getenv(envServerAddr); v != "" {
		cfg.ServerAddr = v
	}

	if v := os.Getenv(envDialTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return CLIConfig{}, fmt.Errorf("config: parse %s=%q: %w", envDialTimeout, v, err)
		}
		cfg.DialTimeout = d
	}

	if v := os.Getenv(envLogLevel); v != "" {
		if !isValidLogLevel(v) {
			return CLIConfig{}, fmt.Errorf("config: %s=%q is not one of debug, info, warn, error", envLogLevel, v)
		}
		cfg.LogLevel = v
	}

	return cfg, nil
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// injectionEnvVar is the environment variable a preload mechanism sets to
// coerce the host's loader into loading this library. The exact name is
// collaborator-defined — injection mechanics live outside this module —
// and this is the name hostbridge's own tooling uses.
const injectionEnvVar = "HOSTBRIDGE_INJECT"

// ClearInjectionEnv unsets injectionEnvVar so that any child process the
// host spawns does not also load this library. Returns the value it
// cleared, for diagnostic logging.
func ClearInjectionEnv() string {
	v := os.Getenv(injectionEnvVar)
	os.Unsetenv(injectionEnvVar)
	return v
}
