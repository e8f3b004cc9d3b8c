package scanner

import (
	"testing"

	"github.com/hostbridge/rcon/internal/bytesig"
)

func TestMulAdd(t *testing.T) {
	const wantAddr = uintptr(0x00601100)

	buf := make([]byte, 0x80)
	const i = 0x10
	copy(buf[i:], mulAddAnchor)
	bytesig.PutUint32(buf, i+6, uint32(wantAddr)) // addr
	bytesig.PutUint32(buf, i+10, 0x0000001E)      // mul immediate
	buf[i+14] = mulAddAddOpcode
	bytesig.PutUint32(buf, i+15, 0x00000004) // add immediate
	copy(buf[i+19:], mulAddStoreBytes)
	buf[i+22] = mulAddCallOpcode
	bytesig.PutInt32(buf, i+23, 0x100) // rel32, unchecked by MulAdd

	got, ok := MulAdd(0, buf, Query{})
	if !ok {
		t.Fatal("expected match")
	}
	if got != wantAddr {
		t.Errorf("got %#x, want %#x", got, wantAddr)
	}
}

func TestMulAdd_RejectsWrongTailBytes(t *testing.T) {
	buf := make([]byte, 0x80)
	const i = 0x10
	copy(buf[i:], mulAddAnchor)
	bytesig.PutUint32(buf, i+6, 0x1000)
	bytesig.PutUint32(buf, i+10, 0x20)
	buf[i+14] = mulAddAddOpcode
	bytesig.PutUint32(buf, i+15, 0x4)
	copy(buf[i+19:], mulAddStoreBytes)
	buf[i+22] = 0x90 // not a CALL opcode

	if _, ok := MulAdd(0, buf, Query{}); ok {
		t.Error("expected rejection when the trailing CALL opcode is missing")
	}
}

func TestMulAdd_NoAnchor(t *testing.T) {
	buf := make([]byte, 0x40)
	if _, ok := MulAdd(0, buf, Query{}); ok {
		t.Error("expected no match against a buffer with no anchor")
	}
}
