package scanner

import "github.com/hostbridge/rcon/internal/bytesig"

// storeArgPrefix is the 3-byte opcode for "MOV DWORD PTR [ESP+disp8], imm32"
// (C7 44 24), used to write a literal into a stack argument slot just before
// a call.
var storeArgPrefix = []byte{0xC7, 0x44, 0x24}

// LoadArg verifies q.FuncBase lies inside the scanned region, then searches
// forward from it for "C7 44 24 <disp8> <imm32>" with
// disp8 == q.ArgIndex*wordSize and imm32 == q.Literal. The CALL following
// within maxCallLookahead bytes is the target, accepted only if its address
// is 16-byte aligned.
func LoadArg(regionBase uintptr, buf []byte, q Query) (uintptr, bool) {
	if q.FuncBase < regionBase {
		return 0, false
	}
	start := int(q.FuncBase - regionBase)
	if start < 0 || start >= len(buf) {
		return 0, false
	}

	wantDisp := byte(q.ArgIndex * wordSize)

	searchFrom := start
	for {
		rel := bytesig.Index(buf[searchFrom:], storeArgPrefix)
		if rel < 0 {
			return 0, false
		}
		i := searchFrom + rel
		searchFrom = i + 1

		if i+8 > len(buf) {
			continue
		}
		if buf[i+3] != wantDisp {
			continue
		}
		imm := bytesig.Uint32At(buf, i+4)
		if imm != q.Literal {
			continue
		}

		callTarget, ok := findCallTarget(regionBase, buf, i+8)
		if !ok {
			continue
		}
		if callTarget%16 != 0 {
			continue
		}
		return callTarget, true
	}
}
