package scanner

import "github.com/hostbridge/rcon/internal/bytesig"

// mulAddAnchor is the fixed 6-byte prefix of the multiply-add idiom:
// "MOV [ESP+4], EAX" followed by the start of "IMUL EAX, [addr], imm32".
var mulAddAnchor = []byte{0x89, 0x44, 0x24, 0x04, 0x69, 0x05}

// The constants below are the fixed bytes following the multiply immediate and the
// add immediate: "ADD EAX, imm32" opcode, then "MOV [ESP], EAX", then the
// start of the trailing CALL.
const (
	mulAddAddOpcode  = 0x05
	mulAddStoreBytes = "\x89\x04\x24"
	mulAddCallOpcode = 0xE8
)

// MulAdd matches the fixed multiply-add-then-call sequence and returns the
// address of the indexed global the multiply scales.
//
//	89 44 24 04 | 69 05 <addr> <mul> | 05 <add> | 89 04 24 | E8 <rel32>
func MulAdd(_ uintptr, buf []byte, _ Query) (uintptr, bool) {
	searchFrom := 0
	for {
		rel := bytesig.Index(buf[searchFrom:], mulAddAnchor)
		if rel < 0 {
			return 0, false
		}
		i := searchFrom + rel
		searchFrom = i + 1

		// Layout relative to i (start of the anchor):
		//   i+0..6   anchor (89 44 24 04 69 05)
		//   i+6..10  addr
		//   i+10..14 mul
		//   i+14     add opcode (05)
		//   i+15..19 add
		//   i+19..22 "89 04 24"
		//   i+22     E8
		//   i+23..27 rel32
		const total = 27
		if i+total > len(buf) {
			continue
		}
		if buf[i+14] != mulAddAddOpcode {
			continue
		}
		if string(buf[i+19:i+22]) != mulAddStoreBytes {
			continue
		}
		if buf[i+22] != mulAddCallOpcode {
			continue
		}

		addr := bytesig.Uint32At(buf, i+6)
		return uintptr(addr), true
	}
}
