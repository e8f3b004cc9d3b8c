package trampoline

import "strconv"

// svrcMessagePrefix is the two-byte SVRC_MESSAGE datagram header (0xFF,
// opcode 37). Duplicated here rather than shared with internal/rcon, whose
// opcode constants are unexported; the wire header is a fixed two bytes,
// not an implementation detail worth sharing a package over.
var svrcMessagePrefix = [2]byte{0xFF, 37}

const (
	// maxCaptureBytes bounds the formatted output buffer the capture
	// callback builds.
	maxCaptureBytes = 4094

	// formatStringStackOffset and varargsStackOffset are the stack-slot
	// offsets (in machine words, above the stub's saved stack pointer) at
	// which the original format string pointer and its first variadic
	// argument live. They are empirically tuned to one host binary and are
	// not invariant across host versions.
	formatStringStackOffset = 13
	varargsStackOffset      = 14
)

// SavedFrame is a view over the PUSHA-saved stack frame the stub passes to
// the capture callback. In production the read functions dereference live
// process memory at the saved stack pointer; tests substitute fakes over a
// plain byte slice.
type SavedFrame struct {
	// StackPointer is ESP's value at the point the stub began saving
	// registers.
	StackPointer uintptr
	// ReadWord reads the 32-bit word at StackPointer + offsetWords*4.
	ReadWord func(offsetWords int) uint32
	// ReadCString reads a NUL-terminated ASCII string starting at addr.
	ReadCString func(addr uintptr) string
}

// Sender delivers a captured, SVRC_MESSAGE-framed datagram to whatever
// client endpoint is currently registered. internal/rcon.Server implements
// this.
type Sender interface {
	SendMessage(payload []byte)
}

// Capture recovers the original format string and its variadic arguments
// from frame, renders a bounded human-readable line, frames it as an
// SVRC_MESSAGE datagram, and hands it to sender. It does nothing if the
// recovered format-string pointer is null.
func Capture(frame SavedFrame, sender Sender) {
	fmtAddr := uintptr(frame.ReadWord(formatStringStackOffset))
	if fmtAddr == 0 {
		return
	}

	rendered := renderFormat(frame.ReadCString(fmtAddr), frame)
	if len(rendered) > maxCaptureBytes {
		rendered = rendered[:maxCaptureBytes]
	}

	out := make([]byte, 0, len(svrcMessagePrefix)+len(rendered))
	out = append(out, svrcMessagePrefix[:]...)
	out = append(out, rendered...)
	sender.SendMessage(out)
}

// renderFormat is a minimal printf-style renderer covering the specifiers
// the host's console-output calls actually use (%s, %d/%i, %%); each %s,
// %d or %i consumes one word starting at varargsStackOffset, walking
// forward one word per specifier, and %% consumes none.
func renderFormat(format string, frame SavedFrame) string {
	var out []byte
	argWord := varargsStackOffset

	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' || i+1 >= len(format) {
			out = append(out, c)
			continue
		}

		spec := format[i+1]
		i++
		switch spec {
		case 's':
			addr := uintptr(frame.ReadWord(argWord))
			out = append(out, frame.ReadCString(addr)...)
			argWord++
		case 'd', 'i':
			out = append(out, strconv.Itoa(int(int32(frame.ReadWord(argWord))))...)
			argWord++
		case '%':
			out = append(out, '%')
		default:
			out = append(out, '%', spec)
		}
	}

	return string(out)
}
