//go:build linux

package memscan

import "testing"

func TestParseAddrRange(t *testing.T) {
	cases := []struct {
		in       string
		wantBase uintptr
		wantSize uintptr
		wantOK   bool
	}{
		{"00400000-00452000", 0x00400000, 0x00452000 - 0x00400000, true},
		{"7ffff7a0d000-7ffff7bf4000", 0x7ffff7a0d000, 0x7ffff7bf4000 - 0x7ffff7a0d000, true},
		{"not-hex", 0, 0, false},
		{"missing", 0, 0, false},
		{"0010-0000", 0, 0, false}, // end before start
	}
	for _, c := range cases {
		base, size, ok := parseAddrRange(c.in)
		if ok != c.wantOK {
			t.Errorf("parseAddrRange(%q) ok = %v, want %v", c.in, ok, c.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if base != c.wantBase || size != c.wantSize {
			t.Errorf("parseAddrRange(%q) = (%#x, %#x), want (%#x, %#x)", c.in, base, size, c.wantBase, c.wantSize)
		}
	}
}

// TestEnumerateReadOnlySelf sanity-checks that Enumerate can walk this very
// test binary's own read-only mappings without error. It does not assert on
// specific addresses since those vary by build.
func TestEnumerateReadOnlySelf(t *testing.T) {
	var count int
	_, err := Enumerate(ReadOnly, func(r Region) uintptr {
		count++
		if r.Size == 0 {
			t.Errorf("region with zero size at %#x", r.Base)
		}
		if count > 3 {
			// Not a boundary aborting case — just keep the scan short.
			return 1
		}
		return 0
	})
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
}
