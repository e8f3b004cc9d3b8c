package scanner

import "github.com/hostbridge/rcon/internal/bytesig"

// leaPrefixWindows is the 3-byte opcode for "LEA RCX, [RIP+disp32]", used by
// MSVC-compiled ZDoom builds to reference a string literal as the first
// argument of a call.
var leaPrefixWindows = []byte{0x48, 0x8D, 0x0D}

// leaPrefixOther is the 3-byte opcode for "LEA RDI, [RIP+disp32]", used on
// non-Windows (SysV x86-64) targets for the same purpose.
var leaPrefixOther = []byte{0x48, 0x8D, 0x3D}

// CodeRefRIP64 locates a 64-bit RIP-relative LEA referencing q.Target, then
// the CALL that follows it within maxCallLookahead bytes, and returns that
// call's target address — the address of the host function that consumes
// the referenced string.
//
// windows selects the opcode prefix and call-target acceptance rule (CC
// padding vs a single 0x00 byte) appropriate to the host's toolchain.
func CodeRefRIP64(regionBase uintptr, buf []byte, q Query, windows bool) (uintptr, bool) {
	prefix := leaPrefixOther
	if windows {
		prefix = leaPrefixWindows
	}

	searchFrom := 0
	for {
		rel := bytesig.Index(buf[searchFrom:], prefix)
		if rel < 0 {
			return 0, false
		}
		i := searchFrom + rel
		searchFrom = i + 1 // resume past this candidate on the next loop

		dispOff := i + len(prefix)
		if dispOff+4 > len(buf) {
			continue
		}
		disp := bytesig.Int32At(buf, dispOff)
		ripAfter := regionBase + uintptr(dispOff) + 4
		ref := uintptr(int64(ripAfter) + int64(disp))
		if ref != q.Target {
			continue
		}

		callTarget, ok := findCallTarget(regionBase, buf, dispOff+4)
		if !ok {
			continue
		}
		if !acceptCallTarget(regionBase, buf, callTarget, windows) {
			continue
		}
		return callTarget, true
	}
}
