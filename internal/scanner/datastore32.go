package scanner

import "github.com/hostbridge/rcon/internal/bytesig"

// movImmPrefix is the 2-byte opcode for "MOV DWORD PTR [addr], imm32"
// (C7 05), used by 32-bit builds to initialize a global variable with a
// literal value.
var movImmPrefix = []byte{0xC7, 0x05}

// DataStore32 locates "C7 05 <addr> <value>" where value equals q.Target
// and returns addr — the address of the destination global.
func DataStore32(_ uintptr, buf []byte, q Query) (uintptr, bool) {
	searchFrom := 0
	for {
		rel := bytesig.Index(buf[searchFrom:], movImmPrefix)
		if rel < 0 {
			return 0, false
		}
		i := searchFrom + rel
		searchFrom = i + 1

		if i+10 > len(buf) {
			continue
		}
		value := bytesig.Uint32At(buf, i+6)
		if uintptr(value) != q.Target {
			continue
		}
		addr := bytesig.Uint32At(buf, i+2)
		return uintptr(addr), true
	}
}
