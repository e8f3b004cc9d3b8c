// Linux mapping enumerator. Parses /proc/self/maps line by line and stops
// at the first anonymous mapping: see quirkAnonymousBreak.
//
//go:build linux

package memscan

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// quirkAnonymousBreak documents a deliberate behavioural quirk: encountering
// a mapping whose device field is "00:00" (anonymous — heap, stack, or this
// very library's own freshly-injected pages) terminates the *entire* scan,
// rather than skipping just that one line. The assumption is that on these
// targets /proc/self/maps lists all file-backed (host image) regions before
// the first anonymous one, so nothing useful is lost by stopping there —
// and scanning past it risks matching this library's own strings and code
// instead of the host's.
const quirkAnonymousBreak = true

// enumerate implements Enumerate on Linux by walking /proc/self/maps.
func enumerate(proto Protection, cb Callback) (uintptr, error) {
	f, err := os.Open("/proc/self/maps")
	if err != nil {
		return 0, err
	}
	defer f.Close()

	want := proto.String()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 4096), 4096)
	for sc.Scan() {
		line := sc.Text()

		// Each line: "<addr range> <perm> <offset> <dev> <inode> [path]"
		fields := strings.Fields(line)
		if len(fields) < 5 {
			break
		}
		addrRange := fields[0]
		perm := fields[1]
		dev := fields[3]

		if dev == "00:00" && quirkAnonymousBreak {
			break
		}

		if perm != want {
			continue
		}

		base, size, ok := parseAddrRange(addrRange)
		if !ok {
			continue
		}

		if addr := cb(Region{Base: base, Size: size}); addr != 0 {
			return addr, nil
		}
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	return 0, nil
}

// parseAddrRange parses "<hexstart>-<hexend>" into a base address and size.
func parseAddrRange(s string) (base, size uintptr, ok bool) {
	dash := strings.IndexByte(s, '-')
	if dash < 0 {
		return 0, 0, false
	}
	start, err := strconv.ParseUint(s[:dash], 16, 64)
	if err != nil {
		return 0, 0, false
	}
	end, err := strconv.ParseUint(s[dash+1:], 16, 64)
	if err != nil || end < start {
		return 0, 0, false
	}
	return uintptr(start), uintptr(end - start), true
}
