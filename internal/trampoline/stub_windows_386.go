//go:build windows && 386

package trampoline

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// winTrampoline installs the real stub on 32-bit Windows hosts.
type winTrampoline struct{}

// New returns the Windows/386 Trampoline.
func New() Trampoline { return winTrampoline{} }

func (winTrampoline) CanIntercept() bool { return true }

// maxCallSiteScan bounds how far past printfHookSite Install looks for the
// redirectable call site before giving up.
const maxCallSiteScan = 4096

func (winTrampoline) Install(printfHookSite uintptr, onCapture CaptureFunc) error {
	callSite, ok := findRedirectableCallSite(printfHookSite)
	if !ok {
		return ErrCallSiteNotFound
	}

	origBytes := readBytes(callSite, 5)

	threadProc := windows.NewCallback(func(lpParam uintptr) uintptr {
		onCapture(savedFrameAt(lpParam))
		return 0
	})

	page, err := allocStubPage()
	if err != nil {
		return fmt.Errorf("trampoline: %w", err)
	}

	stub := assembleStub(origBytes, threadProc)
	copy(unsafe.Slice((*byte)(unsafe.Pointer(page)), len(stub)), stub)

	if err := patchCallSite(callSite, page); err != nil {
		return fmt.Errorf("trampoline: patch call site: %w", err)
	}
	return nil
}

// findRedirectableCallSite scans forward from printfHookSite for the
// argument-preparation idiom: a MOV ECX, imm32
// (0xB9) whose preceding byte's high nibble is 0x5 (a PUSH of some
// register), stopping at the first 0xCC padding byte.
func findRedirectableCallSite(printfHookSite uintptr) (uintptr, bool) {
	buf := unsafe.Slice((*byte)(unsafe.Pointer(printfHookSite)), maxCallSiteScan)
	for i := 1; i < len(buf); i++ {
		if buf[i] == 0xCC {
			return 0, false
		}
		if buf[i] == 0xB9 && buf[i-1]&0xF0 == 0x50 {
			return printfHookSite + uintptr(i) - 1, true
		}
	}
	return 0, false
}

// allocStubPage reserves and commits one execute-read-write page to hold
// the assembled stub.
func allocStubPage() (uintptr, error) {
	const pageSize = 4096
	addr, err := windows.VirtualAlloc(0, pageSize, windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_EXECUTE_READWRITE)
	if err != nil {
		return 0, fmt.Errorf("allocate stub page: %w", err)
	}
	return addr, nil
}

// assembleStub builds the 54-byte (padded) stub:
// save all registers, arrange the capture thread's arguments, call
// CreateThread with threadProc as its start routine and the saved stack
// pointer as its parameter, wait for it to finish, restore registers, run
// the original displaced bytes, and return to the call site.
func assembleStub(origBytes []byte, threadProc uintptr) []byte {
	var b []byte

	emit := func(bs ...byte) { b = append(b, bs...) }
	emitU32 := func(v uint32) {
		var tmp [4]byte
		binary.LittleEndian.PutUint32(tmp[:], v)
		emit(tmp[:]...)
	}

	// PUSHA: save all general-purpose registers. ESP now points at the
	// saved-frame block the capture callback reads from.
	emit(0x60)

	// CreateThread's six arguments, rightmost first: lpThreadId and
	// dwCreationFlags (both zero), lpParameter (the saved-frame pointer),
	// lpStartAddress, dwStackSize (default), lpThreadAttributes (null
	// security descriptor).
	emit(0x6A, 0x00) // PUSH 0 (lpThreadId)
	emit(0x6A, 0x00) // PUSH 0 (dwCreationFlags)
	emit(0x54)       // PUSH ESP (lpParameter)
	emit(0x68)       // PUSH threadProc (lpStartAddress)
	emitU32(uint32(threadProc))
	emit(0x6A, 0x00) // PUSH 0 (dwStackSize: default)
	emit(0x6A, 0x00) // PUSH 0 (lpThreadAttributes)
	// CALL CreateThread (address resolved at install time via
	// GetProcAddress; kept as an absolute call through EAX, loaded just
	// before use to keep the encoding simple).
	emit(0xB8)
	emitU32(uint32(procAddr("kernel32.dll", "CreateThread")))
	emit(0xFF, 0xD0) // CALL EAX; EAX now holds the thread handle.

	// PUSH INFINITE.
	emit(0x68)
	emitU32(0xFFFFFFFF)
	// PUSH EAX (the handle CreateThread returned).
	emit(0x50)
	emit(0xB8)
	emitU32(uint32(procAddr("kernel32.dll", "WaitForSingleObject")))
	emit(0xFF, 0xD0)

	// POPA: restore all general-purpose registers.
	emit(0x61)

	// The original displaced bytes, so the host's intended call still
	// executes.
	emit(origBytes...)

	// RET: the E8 that redirected here pushed the address of the
	// instruction after the displaced call, so a plain return resumes the
	// host exactly where it left off.
	emit(0xC3)

	for len(b) < 54 {
		emit(0x90) // NOP padding.
	}

	return b
}

// patchCallSite overwrites the original 5-byte CALL at callSite with
// "E8 <rel32-to-stub>". The call site lives in a PAGE_EXECUTE_READ page, so
// the write goes through WriteProcessMemory rather than a plain store.
func patchCallSite(callSite, stubAddr uintptr) error {
	patch := make([]byte, 5)
	patch[0] = 0xE8
	rel := int32(int64(stubAddr) - int64(callSite+5))
	binary.LittleEndian.PutUint32(patch[1:], uint32(rel))

	var written uintptr
	return windows.WriteProcessMemory(windows.CurrentProcess(), callSite, &patch[0], uintptr(len(patch)), &written)
}

// readBytes copies n bytes of live process memory starting at addr.
func readBytes(addr uintptr, n int) []byte {
	src := unsafe.Slice((*byte)(unsafe.Pointer(addr)), n)
	out := make([]byte, n)
	copy(out, src)
	return out
}

// procAddr resolves a WinAPI entry point by module and name.
func procAddr(dll, name string) uintptr {
	mod := windows.NewLazySystemDLL(dll)
	return mod.NewProc(name).Addr()
}

// savedFrameAt wraps the PUSHA-saved stack block at addr in a SavedFrame
// that reads live process memory.
func savedFrameAt(addr uintptr) SavedFrame {
	return SavedFrame{
		StackPointer: addr,
		ReadWord: func(offsetWords int) uint32 {
			p := (*uint32)(unsafe.Pointer(addr + uintptr(offsetWords)*4))
			return *p
		},
		ReadCString: func(strAddr uintptr) string {
			if strAddr == 0 {
				return ""
			}
			var bs []byte
			for i := 0; i < maxCaptureBytes; i++ {
				c := *(*byte)(unsafe.Pointer(strAddr + uintptr(i)))
				if c == 0 {
					break
				}
				bs = append(bs, c)
			}
			return string(bs)
		},
	}
}
