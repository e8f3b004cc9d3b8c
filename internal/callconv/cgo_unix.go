//go:build cgo && !windows

package callconv

/*
#include <stdint.h>
#include <stdlib.h>

typedef void (*console_command_fn)(const char *cmd, int flags);
typedef int  (*give_artifact_fn)(void *player, int item_type, void *obj);

static void hb_call_console_command(uintptr_t fn, const char *cmd, int flags) {
	((console_command_fn)fn)(cmd, flags);
}

static int hb_call_give_artifact(uintptr_t fn, uintptr_t player_global, int item_type, void *obj) {
	return ((give_artifact_fn)fn)(*(void **)player_global, item_type, obj);
}
*/
import "C"

import (
	"unsafe"

	"github.com/hostbridge/rcon/internal/scanner"
)

// cgoCaller is the SysV x86-64 Caller: the console-command entry and the
// give-artifact entry are both plain C functions under this ABI, so a
// single typedef'd function-pointer cast suffices for each.
type cgoCaller struct{}

// New returns the cgo-backed Caller for this platform.
func New() Caller { return cgoCaller{} }

func (cgoCaller) CanCall(abi scanner.ABI) bool {
	switch abi {
	case scanner.SysV64, scanner.Cdecl32:
		return true
	default:
		return false
	}
}

func (cgoCaller) CallCommand(entry uintptr, _ scanner.ABI, cmd string, flags int32) {
	cCmd := C.CString(cmd)
	defer C.free(unsafe.Pointer(cCmd))
	C.hb_call_console_command(C.uintptr_t(entry), cCmd, C.int(flags))
}

func (cgoCaller) CallGiveArtifact(entry uintptr, playerGlobal uintptr, itemType int32, obj uintptr) int32 {
	return int32(C.hb_call_give_artifact(
		C.uintptr_t(entry),
		C.uintptr_t(playerGlobal),
		C.int(itemType),
		unsafe.Pointer(obj),
	))
}
