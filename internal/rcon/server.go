package rcon

import (
	"encoding/json"
	"fmt"
	"net"
	"sync/atomic"

	"github.com/hostbridge/rcon/internal/callconv"
	"github.com/hostbridge/rcon/internal/diagnostics"
	"github.com/hostbridge/rcon/internal/resolve"
)

// Server is the UDP RCON loop.
//
// client and ready are written only from the receive loop goroutine
// (Serve); the trampoline's transient capture callback reads them from a
// different goroutine, so both fields are atomics rather than plain fields.
type Server struct {
	conn *net.UDPConn

	client atomic.Pointer[net.UDPAddr]
	ready  atomic.Bool

	symbols *resolve.ResolvedSymbols
	calls   callconv.Caller
	diag    *diagnostics.Log
}

// New constructs a Server over symbols and calls. diag must not be nil.
func New(symbols *resolve.ResolvedSymbols, calls callconv.Caller, diag *diagnostics.Log) *Server {
	return &Server{symbols: symbols, calls: calls, diag: diag}
}

// Serve binds the loopback RCON port and services datagrams until the
// socket errors; a receive failure is reported through ReportError and ends
// the loop, with Serve returning nil.
func (s *Server) Serve() error {
	addr, err := net.ResolveUDPAddr("udp4", ListenAddr)
	if err != nil {
		return fmt.Errorf("rcon: resolve %s: %w", ListenAddr, err)
	}

	conn, err := net.ListenUDP("udp4", addr)
	if err != nil {
		s.reportError("bind", err)
		return fmt.Errorf("rcon: listen %s: %w", ListenAddr, err)
	}
	s.conn = conn
	defer conn.Close()

	buf := make([]byte, maxCommandBytes+16)
	for {
		n, peer, err := conn.ReadFromUDP(buf)
		if err != nil {
			s.reportError("recvfrom", err)
			return nil
		}
		s.handleDatagram(peer, buf[:n])
	}
}

// IsReady reports whether a client has ever successfully logged in
// (monotonic; it never resets).
func (s *Server) IsReady() bool {
	return s.ready.Load()
}

// Client returns the currently registered client endpoint, or nil if none
// has logged in yet.
func (s *Server) Client() *net.UDPAddr {
	return s.client.Load()
}

// SendMessage implements internal/trampoline.Sender: it frames nothing
// itself (the caller already built an SVRC_MESSAGE datagram) and simply
// delivers payload to whichever client is currently registered, doing
// nothing if none has logged in.
func (s *Server) SendMessage(payload []byte) {
	peer := s.client.Load()
	if peer == nil || s.conn == nil {
		return
	}
	_, _ = s.conn.WriteToUDP(payload, peer)
}

func (s *Server) handleDatagram(peer *net.UDPAddr, data []byte) {
	if len(data) < 2 || data[0] != protoPrefix {
		return
	}

	switch data[1] {
	case clrcBeginConnection:
		s.client.Store(peer)
		s.ready.Store(true)
		_, _ = s.conn.WriteToUDP(loggedInDatagram, peer)
		s.logEvent("login", "endpoint", peer.String())

	case clrcCommand:
		s.dispatchCommand(data[2:])

	default:
		// Unknown opcode: silently ignored.
	}
}

func (s *Server) logEvent(kind, key, value string) {
	if s.diag == nil {
		return
	}
	payload, _ := json.Marshal(map[string]string{key: value})
	s.diag.Append(kind, payload)
}

func (s *Server) reportError(prefix string, err error) {
	ReportError(s.symbols, s.calls, s.diag, prefix, err)
}
