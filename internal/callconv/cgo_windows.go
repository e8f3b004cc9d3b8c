//go:build cgo && windows

package callconv

/*
#include <stdint.h>
#include <stdlib.h>

typedef void (__cdecl    *console_command_cdecl_fn)(const char *cmd, int flags);
typedef void (__stdcall  *console_command_stdcall_fn)(const char *cmd, int flags);
typedef void (__fastcall *console_command_fastcall_fn)(const char *cmd, int flags);
typedef int  (__cdecl    *give_artifact_fn)(void *player, int item_type, void *obj);

static void hb_call_console_command_cdecl(uintptr_t fn, const char *cmd, int flags) {
	((console_command_cdecl_fn)fn)(cmd, flags);
}

static void hb_call_console_command_stdcall(uintptr_t fn, const char *cmd, int flags) {
	((console_command_stdcall_fn)fn)(cmd, flags);
}

static void hb_call_console_command_fastcall(uintptr_t fn, const char *cmd, int flags) {
	((console_command_fastcall_fn)fn)(cmd, flags);
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

// cgoCaller is the Windows Caller: the console-command entry may be
// stdcall (callee-pops) or fastcall (first argument in ECX) on 32-bit
// builds, per the ABI tag internal/resolve recorded; give_artifact_entry is
// always cdecl.
type cgoCaller struct{}

// New returns the cgo-backed Caller for this platform.
func New() Caller { return cgoCaller{} }

func (cgoCaller) CanCall(abi scanner.ABI) bool {
	switch abi {
	case scanner.Win64, scanner.Cdecl32, scanner.Stdcall32, scanner.Fastcall32:
		return true
	default:
		return false
	}
}

func (cgoCaller) CallCommand(entry uintptr, abi scanner.ABI, cmd string, flags int32) {
	cCmd := C.CString(cmd)
	defer C.free(unsafe.Pointer(cCmd))

	switch abi {
	case scanner.Stdcall32:
		C.hb_call_console_command_stdcall(C.uintptr_t(entry), cCmd, C.int(flags))
	case scanner.Fastcall32:
		C.hb_call_console_command_fastcall(C.uintptr_t(entry), cCmd, C.int(flags))
	default:
		C.hb_call_console_command_cdecl(C.uintptr_t(entry), cCmd, C.int(flags))
	}
}

func (cgoCaller) CallGiveArtifact(entry uintptr, playerGlobal uintptr, itemType int32, obj uintptr) int32 {
	return int32(C.hb_call_give_artifact(
		C.uintptr_t(entry),
		C.uintptr_t(playerGlobal),
		C.int(itemType),
		unsafe.Pointer(obj),
	))
}
