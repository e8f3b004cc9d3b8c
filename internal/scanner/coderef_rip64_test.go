package scanner

import (
	"testing"

	"github.com/hostbridge/rcon/internal/bytesig"
)

func TestCodeRefRIP64_NonWindows(t *testing.T) {
	const regionBase = uintptr(0x401000)
	const target = uintptr(0x300400) // lives in a different (read-only) region

	buf := make([]byte, 0x200)

	const leaOff = 0x10
	copy(buf[leaOff:], leaPrefixOther)
	dispOff := leaOff + 3
	ripAfter := regionBase + uintptr(dispOff) + 4
	disp := int32(int64(target) - int64(ripAfter))
	bytesig.PutInt32(buf, dispOff, disp)

	callOff := dispOff + 4 + 10 // well within the 64-byte lookahead window
	buf[callOff] = 0xE8

	const prologueOff = 0x150
	callInstrEnd := regionBase + uintptr(callOff) + 5
	wantCallTarget := regionBase + prologueOff
	rel := int32(int64(wantCallTarget) - int64(callInstrEnd))
	bytesig.PutInt32(buf, callOff+1, rel)

	buf[prologueOff+0] = 0x55
	buf[prologueOff+1] = 0x48
	buf[prologueOff+2] = 0x89
	buf[prologueOff+3] = 0xE5

	got, ok := CodeRefRIP64(regionBase, buf, Query{Target: target}, false)
	if !ok {
		t.Fatal("expected a match")
	}
	if got != wantCallTarget {
		t.Errorf("got %#x, want %#x", got, wantCallTarget)
	}
}

func TestCodeRefRIP64_Windows_CCPadding(t *testing.T) {
	const regionBase = uintptr(0x10000000)
	const target = uintptr(0x10040000)

	buf := make([]byte, 0x300)

	const leaOff = 0x20
	copy(buf[leaOff:], leaPrefixWindows)
	dispOff := leaOff + 3
	ripAfter := regionBase + uintptr(dispOff) + 4
	disp := int32(int64(target) - int64(ripAfter))
	bytesig.PutInt32(buf, dispOff, disp)

	callOff := dispOff + 4 + 5
	buf[callOff] = 0xE8

	const targetOff = 0x200
	buf[targetOff-1] = 0xCC
	buf[targetOff-2] = 0xCC
	buf[targetOff-3] = 0xCC

	callInstrEnd := regionBase + uintptr(callOff) + 5
	wantCallTarget := regionBase + targetOff
	rel := int32(int64(wantCallTarget) - int64(callInstrEnd))
	bytesig.PutInt32(buf, callOff+1, rel)

	got, ok := CodeRefRIP64(regionBase, buf, Query{Target: target}, true)
	if !ok {
		t.Fatal("expected a match")
	}
	if got != wantCallTarget {
		t.Errorf("got %#x, want %#x", got, wantCallTarget)
	}
}

func TestCodeRefRIP64_NoMatch(t *testing.T) {
	buf := make([]byte, 0x100)
	if _, ok := CodeRefRIP64(0x1000, buf, Query{Target: 0xdeadbeef}, false); ok {
		t.Error("expected no match against an empty buffer")
	}
}
