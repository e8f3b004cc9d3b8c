//go:build !cgo

package callconv

import "github.com/hostbridge/rcon/internal/scanner"

// stubCaller is used on builds without cgo: it cannot invoke any host
// function pointer at all, so CanCall reports false for every ABI (the
// console-command dispatch path above it then logs and drops), and
// CallCommand and CallGiveArtifact do nothing.
type stubCaller struct{}

// New returns the no-op Caller for builds without cgo.
func New() Caller { return stubCaller{} }

func (stubCaller) CanCall(scanner.ABI) bool { return false }

func (stubCaller) CallCommand(uintptr, scanner.ABI, string, int32) {}

func (stubCaller) CallGiveArtifact(uintptr, uintptr, int32, uintptr) int32 { return 0 }
