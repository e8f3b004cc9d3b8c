package bootstrap

import (
	"context"
	"testing"
)

// TestAttach_CancelledContextShortCircuits verifies Attach checks ctx before
// doing any expensive work (memory capture, scanning).
func TestAttach_CancelledContextShortCircuits(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := Attach(ctx); err == nil {
		t.Fatal("expected an error for an already-cancelled context")
	}
}

// TestAttach_NoHostSignaturesReturnsError exercises the real resolve path
// against this test binary's own memory image, which does not carry any of
// the ZDoom or Russian-Doom signatures the resolver looks for — this must
// fail gracefully rather than panic, since an unsupported host is expected
// to degrade to a silent no-op.
func TestAttach_NoHostSignaturesReturnsError(t *testing.T) {
	err := Attach(context.Background())
	if err == nil {
		t.Fatal("expected Attach to fail against a non-host test binary")
	}
}
