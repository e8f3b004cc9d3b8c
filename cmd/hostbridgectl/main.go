// Command hostbridgectl is a thin UDP client for exercising a running
// hostbridge RCON server, used for manual testing and as a runnable
// demonstration of the wire protocol without a real game host.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/hostbridge/rcon/internal/config"
	"github.com/hostbridge/rcon/internal/rcon"
)

func main() {
	addrFlag := flag.String("addr", "", "RCON server address (overrides HOSTBRIDGE_ADDR)")
	flag.Parse()

	cfg, err := config.Load(rcon.ListenAddr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hostbridgectl: %v\n", err)
		os.Exit(1)
	}
	if *addrFlag != "" {
		cfg.ServerAddr = *addrFlag
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	if args[0] == "listen" {
		runListenReconnecting(cfg.ServerAddr, cfg.DialTimeout, logger)
		return
	}

	conn, err := net.DialTimeout("udp4", cfg.ServerAddr, cfg.DialTimeout)
	if err != nil {
		logger.Error("dial failed", slog.String("addr", cfg.ServerAddr), slog.Any("error", err))
		os.Exit(1)
	}
	defer conn.Close()

	switch args[0] {
	case "connect":
		runConnect(conn, cfg.DialTimeout, logger)
	case "cmd":
		if len(args) < 2 {
			usage()
			os.Exit(2)
		}
		runConnect(conn, cfg.DialTimeout, logger)
		runCommand(conn, strings.Join(args[1:], " "), logger)
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: hostbridgectl [-addr host:port] <connect|cmd <text>|listen>")
}

// runConnect sends CLRC_BEGINCONNECTION and waits for SVRC_LOGGEDIN.
func runConnect(conn net.Conn, timeout time.Duration, logger *slog.Logger) {
	if _, err := conn.Write([]byte{0xFF, 52}); err != nil {
		logger.Error("send login failed", slog.Any("error", err))
		os.Exit(1)
	}

	conn.SetReadDeadline(time.Now().Add(timeout))
	buf := make([]byte, 16)
	n, err := conn.Read(buf)
	if err != nil {
		logger.Error("no reply to login", slog.Any("error", err))
		os.Exit(1)
	}
	if n != 2 || buf[0] != 0xFF || buf[1] != 35 {
		logger.Error("unexpected login reply", slog.Any("bytes", buf[:n]))
		os.Exit(1)
	}
	logger.Info("logged in")
}

// runCommand sends one CLRC_COMMAND datagram containing text.
func runCommand(conn net.Conn, text string, logger *slog.Logger) {
	datagram := append([]byte{0xFF, 54}, []byte(text)...)
	if _, err := conn.Write(datagram); err != nil {
		logger.Error("send command failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("command sent", slog.String("text", text))
}

// runListenReconnecting dials addr, logs in, and prints every SVRC_MESSAGE
// datagram received, forever. A dial or read failure reconnects after an
// exponential back-off rather than exiting — a dropped RCON session is
// routine (the host may still be starting up), not fatal to the listener.
func runListenReconnecting(addr string, dialTimeout time.Duration, logger *slog.Logger) {
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = 0 // retry forever

	for {
		conn, err := net.DialTimeout("udp4", addr, dialTimeout)
		if err != nil {
			wait := b.NextBackOff()
			logger.Warn("dial failed, retrying", slog.String("addr", addr), slog.Any("error", err), slog.Duration("wait", wait))
			time.Sleep(wait)
			continue
		}

		runConnectNonFatal(conn, dialTimeout, logger)
		b.Reset()
		listenUntilError(conn, logger)
		conn.Close()

		wait := b.NextBackOff()
		logger.Warn("connection lost, reconnecting", slog.Duration("wait", wait))
		time.Sleep(wait)
	}
}

// runConnectNonFatal is runConnect without the os.Exit(1) calls, since the
// reconnect loop needs to retry rather than terminate on a failed login.
func runConnectNonFatal(conn net.Conn, timeout time.Duration, logger *slog.Logger) {
	if _, err := conn.Write([]byte{0xFF, 52}); err != nil {
		logger.Warn("send login failed", slog.Any("error", err))
		return
	}
	conn.SetReadDeadline(time.Now().Add(timeout))
	buf := make([]byte, 16)
	n, err := conn.Read(buf)
	if err != nil {
		logger.Warn("no reply to login", slog.Any("error", err))
		return
	}
	if n != 2 || buf[0] != 0xFF || buf[1] != 35 {
		logger.Warn("unexpected login reply", slog.Any("bytes", buf[:n]))
		return
	}
	logger.Info("logged in")
}

// listenUntilError prints every SVRC_MESSAGE datagram received until conn
// errors, then returns so the caller can reconnect.
func listenUntilError(conn net.Conn, logger *slog.Logger) {
	logger.Info("listening for mirrored output, press ctrl-c to stop")
	buf := make([]byte, 4200)
	conn.SetReadDeadline(time.Time{})
	for {
		n, err := conn.Read(buf)
		if err != nil {
			logger.Warn("read failed", slog.Any("error", err))
			return
		}
		if n < 2 || buf[0] != 0xFF || buf[1] != 37 {
			continue
		}
		fmt.Println(string(buf[2:n]))
	}
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
