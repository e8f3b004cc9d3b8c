package diagnostics

import "testing"

func TestLog_AppendChainsHashes(t *testing.T) {
	l := New(0)
	e1 := l.Eventf("resolve", "resolved console_command_entry=%#x", 0x401000)
	e2 := l.Eventf("resolve", "resolved printf_hook_site=%#x", 0x402000)

	if e1.PrevHash != GenesisHash {
		t.Errorf("first entry PrevHash = %q, want genesis", e1.PrevHash)
	}
	if e2.PrevHash != e1.EventHash {
		t.Errorf("second entry PrevHash = %q, want %q", e2.PrevHash, e1.EventHash)
	}
	if e1.EventHash == "" || e2.EventHash == "" {
		t.Error("expected non-empty event hashes")
	}

	dump := l.Dump()
	if len(dump) != 2 {
		t.Fatalf("Dump: got %d entries, want 2", len(dump))
	}
}

func TestLog_BoundedCapacityEvicts(t *testing.T) {
	l := New(3)
	for i := 0; i < 10; i++ {
		l.Eventf("drop", "datagram %d dropped", i)
	}
	dump := l.Dump()
	if len(dump) != 3 {
		t.Fatalf("got %d entries, want 3", len(dump))
	}
	if dump[len(dump)-1].Seq != 10 {
		t.Errorf("last retained Seq = %d, want 10", dump[len(dump)-1].Seq)
	}
	// The chain remains valid across eviction: each retained entry's
	// PrevHash still equals its predecessor's EventHash.
	for i := 1; i < len(dump); i++ {
		if dump[i].PrevHash != dump[i-1].EventHash {
			t.Errorf("chain broken at retained index %d", i)
		}
	}
}
