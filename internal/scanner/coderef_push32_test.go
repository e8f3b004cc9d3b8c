package scanner

import (
	"testing"

	"github.com/hostbridge/rcon/internal/bytesig"
)

func TestCodeRefPush32(t *testing.T) {
	const regionBase = uintptr(0x00401000)
	const target = uintptr(0x00500500)

	buf := make([]byte, 0x100)
	const off = 0x10
	buf[off] = 0x68
	bytesig.PutUint32(buf, off+1, uint32(target))
	buf[off+5] = 0xE8

	wantCallTarget := uintptr(0x00401080)
	callInstrEnd := regionBase + off + 10
	rel := int32(int64(wantCallTarget) - int64(callInstrEnd))
	bytesig.PutInt32(buf, off+6, rel)

	got, ok := CodeRefPush32(regionBase, buf, Query{Target: target})
	if !ok {
		t.Fatal("expected match")
	}
	if got != wantCallTarget {
		t.Errorf("got %#x, want %#x", got, wantCallTarget)
	}
}

func TestCodeRefFastcall32_FallsBackAfterPushFails(t *testing.T) {
	const regionBase = uintptr(0x00401000)
	const target = uintptr(0x00500600)

	buf := make([]byte, 0x100)
	const off = 0x20
	buf[off] = 0xB9 // MOV ECX, imm32 — fastcall idiom, no 0x68 present anywhere
	bytesig.PutUint32(buf, off+1, uint32(target))
	buf[off+5] = 0xE8

	wantCallTarget := uintptr(0x00401090)
	callInstrEnd := regionBase + off + 10
	rel := int32(int64(wantCallTarget) - int64(callInstrEnd))
	bytesig.PutInt32(buf, off+6, rel)

	if _, ok := CodeRefPush32(regionBase, buf, Query{Target: target}); ok {
		t.Fatal("push/call scan should not match a fastcall-only buffer")
	}

	got, ok := CodeRefFastcall32(regionBase, buf, Query{Target: target})
	if !ok {
		t.Fatal("expected the fastcall scan to match")
	}
	if got != wantCallTarget {
		t.Errorf("got %#x, want %#x", got, wantCallTarget)
	}
}
