// Package callconv invokes a resolved host function pointer using whichever
// calling convention internal/resolve determined it expects at runtime.
//
// Go has no way to call an arbitrary uintptr as a function with a calling
// convention chosen at runtime: a Go func value always uses Go's own
// internal convention. cgo is the FFI facility that exposes C calling
// conventions explicitly, and a small typedef'd C function-pointer cast
// lets the platform's own C compiler get cdecl/stdcall/fastcall right
// instead of a hand-assembled prologue.
package callconv
