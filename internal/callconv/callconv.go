package callconv

import "github.com/hostbridge/rcon/internal/scanner"

// Caller invokes host function pointers whose calling convention is only
// known once internal/resolve has run.
type Caller interface {
	// CanCall reports whether this build can invoke a pointer with the
	// given ABI at all. It is always false on a build without cgo.
	CanCall(abi scanner.ABI) bool

	// CallCommand invokes entry as console_command_entry:
	// "(cmd *byte, flags int) -> void", in the convention abi specifies.
	CallCommand(entry uintptr, abi scanner.ABI, cmd string, flags int32)

	// CallGiveArtifact invokes entry as give_artifact_entry:
	// "(player*, int, object*) -> int", the Russian-Doom fallback's
	// hard-coded dispatch action. playerGlobal is the address of the host
	// global holding the player pointer; the shim dereferences it at call
	// time so the host's current player instance is passed, not the
	// global's own address. This entry point only ever uses the host's
	// default cdecl-family convention, so no ABI tag is needed.
	CallGiveArtifact(entry uintptr, playerGlobal uintptr, itemType int32, obj uintptr) int32
}
