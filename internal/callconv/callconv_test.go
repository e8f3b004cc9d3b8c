package callconv

import (
	"testing"

	"github.com/hostbridge/rcon/internal/scanner"
)

// TestNew_ImplementsCaller exercises whichever Caller this build produces
// (cgo_unix.go, cgo_windows.go, or nocgo_stub.go): it must satisfy Caller,
// and CanCall must answer for every ABI tag without panicking. No host
// function pointer is called.
func TestNew_ImplementsCaller(t *testing.T) {
	var c Caller = New()

	for _, abi := range []scanner.ABI{
		scanner.SysV64, scanner.Win64, scanner.Cdecl32, scanner.Stdcall32, scanner.Fastcall32,
	} {
		_ = c.CanCall(abi)
	}
}
