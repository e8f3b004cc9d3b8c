// Package resolve orchestrates internal/scanner's kernels into the two
// supported target profiles and publishes a ResolvedSymbols value once at
// startup.
package resolve

import (
	"unsafe"

	"github.com/hostbridge/rcon/internal/memscan"
)

// RegionBuf pairs a region's base address with a []byte view of its
// contents, letting the scan helpers below and the synthetic fixtures in
// resolve_test.go share one representation whether the bytes came from the
// live process image or a fake "host image" buffer.
type RegionBuf struct {
	Base uintptr
	Data []byte
}

// Image is the subset of the host's address space the resolver searches:
// its read-only data (string literals, globals) and its executable code
// (the LEA/PUSH/MOV code-reference idioms).
type Image struct {
	ReadOnly []RegionBuf
	Exec     []RegionBuf
}

// CaptureImage enumerates the current process's own read-only and
// executable-and-readable regions (internal/memscan) and wraps each in a
// RegionBuf backed directly by the live memory, with no copy.
func CaptureImage() (Image, error) {
	var img Image

	if _, err := memscan.Enumerate(memscan.ReadOnly, func(r memscan.Region) uintptr {
		if r.Size > 0 {
			img.ReadOnly = append(img.ReadOnly, RegionBuf{Base: r.Base, Data: viewOf(r)})
		}
		return 0
	}); err != nil {
		return Image{}, err
	}

	if _, err := memscan.Enumerate(memscan.ExecRead, func(r memscan.Region) uintptr {
		if r.Size > 0 {
			img.Exec = append(img.Exec, RegionBuf{Base: r.Base, Data: viewOf(r)})
		}
		return 0
	}); err != nil {
		return Image{}, err
	}

	return img, nil
}

// viewOf reinterprets a mapped region as a []byte without copying it. The
// region came from this process's own address space (internal/memscan never
// reaches into another process), so this is exactly as safe as the host's
// own code reading that memory.
func viewOf(r memscan.Region) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(r.Base)), int(r.Size))
}
