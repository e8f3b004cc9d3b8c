package scanner

import "testing"

func TestStringLiteral(t *testing.T) {
	needle := []byte("toggle idmypos")
	buf := make([]byte, 0x600)
	copy(buf[0x500:], needle)

	got, ok := StringLiteral(0x400000, buf, Query{Needle: needle})
	if !ok {
		t.Fatal("expected match")
	}
	want := uintptr(0x400000 + 0x500)
	if got != want {
		t.Errorf("got %#x, want %#x", got, want)
	}
}

func TestStringLiteral_NotFound(t *testing.T) {
	buf := []byte("nothing interesting here")
	if _, ok := StringLiteral(0, buf, Query{Needle: []byte("missing")}); ok {
		t.Error("expected no match")
	}
}

// A needle that straddles what would be a region boundary in the real host
// must not match when it is not actually present in THIS region's buffer —
// scanners operate per-region and never see bytes from a neighbouring one.
func TestStringLiteral_DoesNotCrossRegionBoundary(t *testing.T) {
	needle := []byte("toggle idmypos")
	// Region buffer ends mid-needle; the rest lives in a notional next
	// region that this scan never sees.
	buf := append([]byte("xxxxxxx"), needle[:8]...)
	if _, ok := StringLiteral(0, buf, Query{Needle: needle}); ok {
		t.Error("expected no match across a region boundary")
	}
}
