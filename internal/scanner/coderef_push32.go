package scanner

import "github.com/hostbridge/rcon/internal/bytesig"

// CodeRefPush32 searches for the 6-byte idiom
// "68 <imm32=target> E8 <rel32>" — a 32-bit PUSH of the target address
// immediately followed by a near CALL — and returns the call's target
// address. This is the stdcall/cdecl calling shape: the target address is
// pushed as an argument before the call.
func CodeRefPush32(regionBase uintptr, buf []byte, q Query) (uintptr, bool) {
	return scanImmPushCall(regionBase, buf, q.Target, 0x68)
}

// scanImmPushCall is shared by CodeRefPush32 (opcode 0x68, PUSH imm32) and
// CodeRefFastcall32 (opcode 0xB9, MOV ECX, imm32): both place target as the
// 4-byte immediate of a single-byte-opcode instruction immediately followed
// by E8 <rel32>.
func scanImmPushCall(regionBase uintptr, buf []byte, target uintptr, opcode byte) (uintptr, bool) {
	pattern := make([]byte, 6)
	pattern[0] = opcode
	bytesig.PutUint32(pattern, 1, uint32(target))
	pattern[5] = 0xE8

	off := bytesig.Index(buf, pattern)
	if off < 0 {
		return 0, false
	}
	if off+10 > len(buf) {
		return 0, false
	}
	rel := bytesig.Int32At(buf, off+6)
	callInstrEnd := regionBase + uintptr(off) + 10
	return uintptr(int64(callInstrEnd) + int64(rel)), true
}
