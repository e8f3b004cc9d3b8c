// Package diagnostics provides an in-memory, hash-chained event log used by
// the resolver and the RCON server to record what they discovered and
// dispatched.
//
// Each entry is SHA-256 hash-chained to its predecessor so a Dump is
// tamper-evident within the process's lifetime, but nothing is written to
// disk — the library keeps no persisted state at all — so the chain lives
// entirely in a bounded ring buffer and is discarded on process exit.
package diagnostics

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// GenesisHash is the all-zero SHA-256 hex digest used as the prev_hash of
// the first entry in the chain.
const GenesisHash = "0000000000000000000000000000000000000000000000000000000000000000"

// Entry is one diagnostic record.
type Entry struct {
	Seq       int64           `json:"seq"`
	Timestamp time.Time       `json:"ts"`
	Kind      string          `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	PrevHash  string          `json:"prev_hash"`
	EventHash string          `json:"event_hash"`
}

// entryContent is hashed to produce EventHash; it excludes EventHash itself.
type entryContent struct {
	Seq       int64           `json:"seq"`
	Timestamp time.Time       `json:"ts"`
	Kind      string          `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	PrevHash  string          `json:"prev_hash"`
}

// Log is a bounded, in-memory, hash-chained ring buffer. The zero value is
// not usable; construct with New. Safe for concurrent use — internal/bootstrap
// and the RCON server's receive loop both append to the same Log.
type Log struct {
	mu       sync.Mutex
	cap      int
	entries  []Entry
	prevHash string
	seq      int64
	mirror   *slog.Logger
}

// New returns a Log retaining at most capacity entries; older entries are
// evicted once that bound is reached. A capacity <= 0 means unbounded, which
// is only appropriate for tests and hostbridge-selftest's short-lived runs.
func New(capacity int) *Log {
	return &Log{cap: capacity, prevHash: GenesisHash}
}

// NewMirrored is New plus a mirror: every appended entry is also emitted
// through logger as one human-readable line. The bootstrap uses this so
// each resolved address and dispatched command is printed to the process's
// standard output, while the ring buffer keeps the structured form for
// Dump.
func NewMirrored(capacity int, logger *slog.Logger) *Log {
	l := New(capacity)
	l.mirror = logger
	return l
}

// Append records one event of the given kind with an arbitrary JSON
// payload, returning the assigned Entry.
func (l *Log) Append(kind string, payload json.RawMessage) Entry {
	if payload == nil {
		payload = json.RawMessage("null")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	seq := l.seq + 1
	ts := time.Now().UTC()
	prevHash := l.prevHash

	content := entryContent{Seq: seq, Timestamp: ts, Kind: kind, Payload: payload, PrevHash: prevHash}
	eventHash := hashContent(content)

	e := Entry{Seq: seq, Timestamp: ts, Kind: kind, Payload: payload, PrevHash: prevHash, EventHash: eventHash}

	l.entries = append(l.entries, e)
	if l.cap > 0 && len(l.entries) > l.cap {
		l.entries = l.entries[len(l.entries)-l.cap:]
	}
	l.seq = seq
	l.prevHash = eventHash

	if l.mirror != nil {
		l.mirror.Info(kind, slog.String("payload", string(payload)))
	}

	return e
}

// Eventf is a convenience wrapper around Append for plain-text diagnostic
// lines.
func (l *Log) Eventf(kind, format string, args ...any) Entry {
	msg := fmt.Sprintf(format, args...)
	payload, _ := json.Marshal(struct {
		Message string `json:"message"`
	}{Message: msg})
	return l.Append(kind, payload)
}

// Dump returns a snapshot of the entries currently retained, oldest first.
func (l *Log) Dump() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func hashContent(c entryContent) string {
	raw, err := json.Marshal(c)
	if err != nil {
		panic(fmt.Sprintf("diagnostics: marshal entryContent: %v", err))
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
