package resolve

import (
	"runtime"

	"github.com/hostbridge/rcon/internal/scanner"
)

// findString returns the address of the first occurrence of needle across
// every read-only region in img.
func findString(img Image, needle []byte) (uintptr, bool) {
	for _, rb := range img.ReadOnly {
		if addr, ok := scanner.StringLiteral(rb.Base, rb.Data, scanner.Query{Needle: needle}); ok {
			return addr, true
		}
	}
	return 0, false
}

// findCodeRef resolves the call site that consumes a reference to target,
// trying each code-reference kernel in turn: the 64-bit RIP-relative LEA
// idiom (non-Windows, then Windows padding rule), then the 32-bit push/call
// idiom (tagged Stdcall32 on Windows, Cdecl32 elsewhere), then the 32-bit
// fastcall/MOV-ECX idiom. Exactly one of these
// encodings is ever present in a real host image of a given architecture and
// toolchain, so trying all four in sequence resolves the right one without
// a compile-time architecture switch — and keeps this function exercisable
// against either architecture's synthetic fixture in resolve_test.go.
func findCodeRef(img Image, target uintptr) (uintptr, ABI, bool) {
	for _, rb := range img.Exec {
		if addr, ok := scanner.CodeRefRIP64(rb.Base, rb.Data, scanner.Query{Target: target}, false); ok {
			return addr, SysV64, true
		}
	}
	for _, rb := range img.Exec {
		if addr, ok := scanner.CodeRefRIP64(rb.Base, rb.Data, scanner.Query{Target: target}, true); ok {
			return addr, Win64, true
		}
	}
	pushABI := Cdecl32
	if runtime.GOOS == "windows" {
		pushABI = Stdcall32
	}
	for _, rb := range img.Exec {
		if addr, ok := scanner.CodeRefPush32(rb.Base, rb.Data, scanner.Query{Target: target}); ok {
			return addr, pushABI, true
		}
	}
	for _, rb := range img.Exec {
		if addr, ok := scanner.CodeRefFastcall32(rb.Base, rb.Data, scanner.Query{Target: target}); ok {
			return addr, Fastcall32, true
		}
	}
	return 0, 0, false
}

// findDataStore runs the data-store scan across every executable region in
// img.
func findDataStore(img Image, target uintptr) (uintptr, bool) {
	for _, rb := range img.Exec {
		if addr, ok := scanner.DataStore32(rb.Base, rb.Data, scanner.Query{Target: target}); ok {
			return addr, true
		}
	}
	return 0, false
}

// findLoadFunc runs the load-func variant of the data-load scan.
func findLoadFunc(img Image, target uintptr) (uintptr, bool) {
	for _, rb := range img.Exec {
		if addr, ok := scanner.DataLoadFunc(rb.Base, rb.Data, scanner.Query{Target: target}); ok {
			return addr, true
		}
	}
	return 0, false
}

// findLoad runs the load variant of the data-load scan.
func findLoad(img Image, target uintptr) (uintptr, bool) {
	for _, rb := range img.Exec {
		if addr, ok := scanner.DataLoad(rb.Base, rb.Data, scanner.Query{Target: target}); ok {
			return addr, true
		}
	}
	return 0, false
}

// findLoadArg runs the load-argument scan, restricted to the region that actually
// contains funcBase (scanner.LoadArg already rejects a funcBase outside the
// region it's given, but regionOf avoids calling it against regions that
// can't possibly match).
func findLoadArg(img Image, funcBase uintptr, argIndex int, literal uint32) (uintptr, bool) {
	rb, ok := regionOf(img.Exec, funcBase)
	if !ok {
		return 0, false
	}
	return scanner.LoadArg(rb.Base, rb.Data, scanner.Query{FuncBase: funcBase, ArgIndex: argIndex, Literal: literal})
}

// findMulAdd runs the multiply-add scan, searching forward from "from" (the sector-9
// handler in the Russian-Doom fallback) within whichever region contains it.
func findMulAdd(img Image, from uintptr) (uintptr, bool) {
	rb, ok := regionOf(img.Exec, from)
	if !ok {
		return 0, false
	}
	off := int(from - rb.Base)
	return scanner.MulAdd(rb.Base, rb.Data[off:], scanner.Query{})
}

// regionOf returns the RegionBuf in regions that contains addr.
func regionOf(regions []RegionBuf, addr uintptr) (RegionBuf, bool) {
	for _, rb := range regions {
		if addr >= rb.Base && addr < rb.Base+uintptr(len(rb.Data)) {
			return rb, true
		}
	}
	return RegionBuf{}, false
}
