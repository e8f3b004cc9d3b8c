package scanner

import "github.com/hostbridge/rcon/internal/bytesig"

// movLoadOpcode is the 1-byte opcode for "MOV EAX, [addr]" (A1 imm32),
// commonly used by 32-bit builds to load a module-scope global.
const movLoadOpcode = 0xA1

// maxBackwardSteps bounds the 16-byte-unit backward walk used by both
// DataLoadFunc and DataLoad to locate a function prologue marker.
const maxBackwardSteps = 16

// align16Down rounds addr down to the nearest 16-byte boundary.
func align16Down(addr uintptr) uintptr {
	return addr &^ 0xF
}

// findLoadMatch locates "A1 <imm32>" where imm32 == target, returning the
// absolute address of the matched instruction (the 'A1' byte) and true on
// success.
func findLoadMatch(regionBase uintptr, buf []byte, target uintptr) (uintptr, bool) {
	pattern := make([]byte, 5)
	pattern[0] = movLoadOpcode
	bytesig.PutUint32(pattern, 1, uint32(target))
	off := bytesig.Index(buf, pattern)
	if off < 0 {
		return 0, false
	}
	return regionBase + uintptr(off), true
}

// hasPrologueMarker reports whether candidate (an absolute address within
// buf) looks like a function entry: either it begins with 0x55 (push rbp /
// push ebp), or the byte immediately before it is 0x90 (NOP padding) or 0xC3
// (RET), indicating the tail of a preceding function aligned against
// padding.
func hasPrologueMarker(regionBase uintptr, buf []byte, candidate uintptr) bool {
	if candidate < regionBase {
		return false
	}
	off := int(candidate - regionBase)
	if off < 0 || off >= len(buf) {
		return false
	}
	if buf[off] == 0x55 {
		return true
	}
	if off == 0 {
		return false
	}
	return buf[off-1] == 0x90 || buf[off-1] == 0xC3
}

// walkBackwardForPrologue performs the shared 16-byte-unit backward walk
// from the matched load instruction, returning the candidate address where a
// prologue marker was found.
func walkBackwardForPrologue(regionBase uintptr, buf []byte, matchAddr uintptr) (uintptr, bool) {
	base := align16Down(matchAddr)
	for step := 0; step < maxBackwardSteps; step++ {
		candidate := base - uintptr(step)*16
		if candidate > base {
			// Underflowed past address 0.
			break
		}
		if hasPrologueMarker(regionBase, buf, candidate) {
			return candidate, true
		}
	}
	return 0, false
}

// DataLoadFunc locates "A1 <addr>" where addr == q.Target, walks backward
// in 16-byte steps for a function prologue marker, and returns the
// function's start address.
func DataLoadFunc(regionBase uintptr, buf []byte, q Query) (uintptr, bool) {
	matchAddr, ok := findLoadMatch(regionBase, buf, q.Target)
	if !ok {
		return 0, false
	}
	return walkBackwardForPrologue(regionBase, buf, matchAddr)
}

// DataLoad performs the same backward walk as DataLoadFunc to confirm the
// load sits inside a recognizable function, but returns the address of the
// matched "A1 <addr>" instruction itself rather than the function's start.
func DataLoad(regionBase uintptr, buf []byte, q Query) (uintptr, bool) {
	matchAddr, ok := findLoadMatch(regionBase, buf, q.Target)
	if !ok {
		return 0, false
	}
	if _, ok := walkBackwardForPrologue(regionBase, buf, matchAddr); !ok {
		return 0, false
	}
	return matchAddr, true
}
