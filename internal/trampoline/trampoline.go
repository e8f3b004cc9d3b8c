// Package trampoline implements the optional output-interception stub:
// redirecting one CALL inside the host's formatted-print function to a
// capture callback that mirrors the host's console text back to the RCON
// client.
//
// The stub itself is intrinsically x86-32 machine code tied to a specific
// Windows calling convention and cannot be expressed
// architecture-agnostically. Every platform this doesn't apply to gets the
// capability predicate CanIntercept() == false instead, so the rest of the
// server works identically with or without it.
package trampoline

import "errors"

// ErrUnsupported is returned by Install on any build where CanIntercept
// reports false.
var ErrUnsupported = errors.New("trampoline: output interception is not supported on this build")

// ErrCallSiteNotFound is returned by Install when the argument-preparation
// idiom (a PUSH of some register, then MOV ECX, imm32) cannot be located
// between printfHookSite and the next 0xCC padding byte.
var ErrCallSiteNotFound = errors.New("trampoline: no redirectable call site found before padding")

// CaptureFunc is invoked, on a transient thread, once per redirected call,
// with a SavedFrame describing the register state the stub saved.
type CaptureFunc func(frame SavedFrame)

// Trampoline installs the output-interception stub. Construct one with New.
type Trampoline interface {
	// CanIntercept reports whether this build is capable of installing the
	// stub at all.
	CanIntercept() bool

	// Install patches the call site found by scanning forward from
	// printfHookSite so that it first runs onCapture (on a transient
	// thread) and then tail-executes the original instruction. Returns
	// ErrUnsupported when CanIntercept is false.
	Install(printfHookSite uintptr, onCapture CaptureFunc) error
}
