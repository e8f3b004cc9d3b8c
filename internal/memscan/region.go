// Package memscan enumerates the host process's own memory mappings so the
// signature scanners in internal/scanner can search them. It never reads
// another process's memory: everything here runs inside the address space
// it inspects.
package memscan

import "errors"

// Protection identifies the permission class a scan is restricted to. The
// scanners in internal/scanner only ever look at read-only data (string
// literals, globals) or executable-and-readable code; the host's writable
// pages are never scanned.
type Protection int

const (
	// ReadOnly selects mappings backed by the host image's read-only data
	// segments (rodata). Linux: permission word "r--p". Windows:
	// PAGE_READONLY.
	ReadOnly Protection = iota
	// ExecRead selects mappings backed by the host image's code segment.
	// Linux: permission word "r-xp". Windows: PAGE_EXECUTE_READ.
	ExecRead
)

func (p Protection) String() string {
	switch p {
	case ReadOnly:
		return "r--p"
	case ExecRead:
		return "r-xp"
	default:
		return "unknown"
	}
}

// Region is one mapped range of the host's own address space. It is
// produced on demand by Enumerate and is not retained past the scan that
// created it.
type Region struct {
	Base uintptr
	Size uintptr
}

// ErrUnsupportedPlatform is returned by Enumerate on platforms for which no
// mapping enumerator is implemented.
var ErrUnsupportedPlatform = errors.New("memscan: unsupported platform")

// Callback receives one Region at a time. Returning a non-zero address
// aborts enumeration; that address is propagated out of Enumerate as its
// result. Returning 0 continues the scan.
type Callback func(r Region) uintptr

// Enumerate walks the regions of the current process's own address space
// matching proto, invoking cb for each. The first non-zero value returned by
// cb short-circuits the walk and becomes Enumerate's return value. If cb
// never returns non-zero, or no matching region exists, Enumerate returns 0.
//
// Enumerate is implemented per platform: region_linux.go, region_windows.go,
// and region_other.go provide the platform-specific body.
func Enumerate(proto Protection, cb Callback) (uintptr, error) {
	return enumerate(proto, cb)
}
