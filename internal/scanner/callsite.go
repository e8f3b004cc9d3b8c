package scanner

import "github.com/hostbridge/rcon/internal/bytesig"

// maxCallLookahead bounds how far past a resolved LEA/PUSH/MOV reference the
// scanners look for the CALL opcode that consumes it.
const maxCallLookahead = 64

// findCallTarget looks for the first 0xE8 (near CALL, rel32) byte in
// buf[from:from+maxCallLookahead] and, if found, returns the absolute
// address the call transfers to: (address-of-E8 + 5) + rel32.
//
// regionBase is the absolute address buf[0] corresponds to.
func findCallTarget(regionBase uintptr, buf []byte, from int) (uintptr, bool) {
	end := from + maxCallLookahead
	if end > len(buf) {
		end = len(buf)
	}
	for i := from; i < end; i++ {
		if buf[i] != 0xE8 {
			continue
		}
		if i+5 > len(buf) {
			return 0, false
		}
		rel := bytesig.Int32At(buf, i+1)
		callInstrEnd := regionBase + uintptr(i) + 5
		target := uintptr(int64(callInstrEnd) + int64(rel))
		return target, true
	}
	return 0, false
}

// acceptCallTarget is the "is this really a function entry" guard: accept
// a resolved call target only if it is preceded
// by the padding bytes this platform uses between functions, or if it begins
// with the standard amd64 SysV prologue (push rbp; mov rbp, rsp).
//
// target is an absolute address; regionBase/buf describe the buffer it must
// fall within for the surrounding bytes to be inspectable. If target falls
// outside buf, acceptCallTarget fails closed (returns false) rather than
// guessing.
func acceptCallTarget(regionBase uintptr, buf []byte, target uintptr, windowsPadding bool) bool {
	if target < regionBase {
		return false
	}
	off := int(target - regionBase)
	if off < 0 || off >= len(buf) {
		return false
	}

	// Function prologue: 55 48 89 E5.
	if off+4 <= len(buf) &&
		buf[off] == 0x55 && buf[off+1] == 0x48 && buf[off+2] == 0x89 && buf[off+3] == 0xE5 {
		return true
	}

	if windowsPadding {
		if off < 3 {
			return false
		}
		return buf[off-1] == 0xCC && buf[off-2] == 0xCC && buf[off-3] == 0xCC
	}

	if off < 1 {
		return false
	}
	return buf[off-1] == 0x00
}
