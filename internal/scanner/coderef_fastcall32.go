package scanner

// CodeRefFastcall32 is identical to CodeRefPush32 except the leading
// opcode is 0xB9 (MOV ECX, imm32) rather than 0x68 (PUSH imm32) — the
// fastcall calling shape, where the first argument is loaded into ECX
// instead of pushed. Callers should only try this after CodeRefPush32 has
// failed, and should flag the resolved callable as Fastcall32 when it
// succeeds.
func CodeRefFastcall32(regionBase uintptr, buf []byte, q Query) (uintptr, bool) {
	return scanImmPushCall(regionBase, buf, q.Target, 0xB9)
}
