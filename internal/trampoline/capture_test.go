package trampoline

import (
	"encoding/binary"
	"strings"
	"testing"
)

// fakeFrame builds a SavedFrame over a plain slice of stack words, with
// string data looked up by address in strTab so ReadCString can resolve a
// pointer word without real memory.
type fakeFrame struct {
	words  []uint32
	strTab map[uintptr]string
}

func (f *fakeFrame) frame() SavedFrame {
	return SavedFrame{
		StackPointer: 0,
		ReadWord: func(offsetWords int) uint32 {
			if offsetWords < 0 || offsetWords >= len(f.words) {
				return 0
			}
			return f.words[offsetWords]
		},
		ReadCString: func(addr uintptr) string {
			return f.strTab[addr]
		},
	}
}

type fakeSender struct {
	sent [][]byte
}

func (s *fakeSender) SendMessage(payload []byte) {
	s.sent = append(s.sent, append([]byte(nil), payload...))
}

func TestCapture_FormatsStringAndIntArgs(t *testing.T) {
	const nameAddr = 0x1000
	words := make([]uint32, varargsStackOffset+2)
	words[formatStringStackOffset] = 0x2000 // format string pointer
	words[varargsStackOffset] = nameAddr    // %s arg
	words[varargsStackOffset+1] = 7         // %d arg

	f := &fakeFrame{
		words: words,
		strTab: map[uintptr]string{
			0x2000:   "player %s picked up %d items",
			nameAddr: "zim",
		},
	}

	sender := &fakeSender{}
	Capture(f.frame(), sender)

	if len(sender.sent) != 1 {
		t.Fatalf("expected exactly one send, got %d", len(sender.sent))
	}
	got := sender.sent[0]
	if got[0] != 0xFF || got[1] != 37 {
		t.Fatalf("unexpected SVRC_MESSAGE header: %v", got[:2])
	}
	body := string(got[2:])
	want := "player zim picked up 7 items"
	if body != want {
		t.Fatalf("body = %q, want %q", body, want)
	}
}

func TestCapture_NullFormatPointerSendsNothing(t *testing.T) {
	words := make([]uint32, varargsStackOffset+1)
	f := &fakeFrame{words: words, strTab: map[uintptr]string{}}

	sender := &fakeSender{}
	Capture(f.frame(), sender)

	if len(sender.sent) != 0 {
		t.Fatalf("expected no sends for a null format pointer, got %d", len(sender.sent))
	}
}

func TestCapture_TruncatesAtMaxCaptureBytes(t *testing.T) {
	words := make([]uint32, varargsStackOffset+1)
	words[formatStringStackOffset] = 0x3000

	long := strings.Repeat("x", maxCaptureBytes+500)
	f := &fakeFrame{
		words:  words,
		strTab: map[uintptr]string{0x3000: long},
	}

	sender := &fakeSender{}
	Capture(f.frame(), sender)

	if len(sender.sent) != 1 {
		t.Fatalf("expected exactly one send, got %d", len(sender.sent))
	}
	body := sender.sent[0][2:]
	if len(body) != maxCaptureBytes {
		t.Fatalf("body length = %d, want %d", len(body), maxCaptureBytes)
	}
}

func TestRenderFormat_PercentLiteralAndUnknownSpecifier(t *testing.T) {
	words := make([]uint32, varargsStackOffset+1)
	f := &fakeFrame{words: words, strTab: map[uintptr]string{}}

	got := renderFormat("100%% done (%q)", f.frame())
	want := "100% done (%q)"
	if got != want {
		t.Fatalf("renderFormat = %q, want %q", got, want)
	}
}

func TestRenderFormat_MultipleArgsAdvanceInOrder(t *testing.T) {
	const aAddr, bAddr = 0x10, 0x20
	words := make([]uint32, varargsStackOffset+3)
	words[varargsStackOffset] = aAddr
	words[varargsStackOffset+1] = 1
	words[varargsStackOffset+2] = bAddr

	f := &fakeFrame{
		words: words,
		strTab: map[uintptr]string{
			aAddr: "first",
			bAddr: "second",
		},
	}

	got := renderFormat("%s/%d/%s", f.frame())
	want := "first/1/second"
	if got != want {
		t.Fatalf("renderFormat = %q, want %q", got, want)
	}
}

// TestWordLayout_LittleEndianRoundTrip is a small sanity check that a
// 32-bit stack word round-trips through little-endian encoding, the layout
// the real stub's frame has (one word per stack slot). It does not exercise
// fakeFrame or Capture.
func TestWordLayout_LittleEndianRoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint32(buf[4:], 42)
	w := binary.LittleEndian.Uint32(buf[4:])
	if w != 42 {
		t.Fatalf("sanity check failed: got %d", w)
	}
}
