// Windows mapping enumerator. Walks the process's address space with
// VirtualQuery, keeping only committed pages that belong to the current
// module's own allocation (the host executable image) and match the
// requested protection exactly.
//
//go:build windows

package memscan

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// enumerate implements Enumerate on Windows.
func enumerate(proto Protection, cb Callback) (uintptr, error) {
	current, err := windows.GetModuleHandle("")
	if err != nil {
		return 0, err
	}
	currentBase := uintptr(current)

	want := protectFlag(proto)

	var addr uintptr
	for {
		var mbi windows.MemoryBasicInformation
		err := windows.VirtualQuery(addr, &mbi, unsafe.Sizeof(mbi))
		if err != nil {
			break
		}

		next := mbi.BaseAddress + mbi.RegionSize
		if next <= addr {
			// Guard against a non-advancing query near the top of the
			// address space.
			break
		}

		if mbi.AllocationBase == currentBase &&
			mbi.State == windows.MEM_COMMIT &&
			mbi.Protect == want {
			if res := cb(Region{Base: mbi.BaseAddress, Size: mbi.RegionSize}); res != 0 {
				return res, nil
			}
		}

		addr = next
	}

	return 0, nil
}

// protectFlag maps our Protection enum onto the Win32 PAGE_* constant a
// region's protection must equal exactly.
func protectFlag(p Protection) uint32 {
	switch p {
	case ReadOnly:
		return windows.PAGE_READONLY
	case ExecRead:
		return windows.PAGE_EXECUTE_READ
	default:
		return 0
	}
}
