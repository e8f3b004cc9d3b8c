// Command bridge is the library's host-facing entry point: the one
// exported symbol a loader calls to attach hostbridge to the process it has
// just been loaded into.
//
// Nothing here is meant to be imported by other Go code in this module or
// by any other Go program — it exists to be built with -buildmode=c-shared
// and linked/injected into a ZDoom-family or Russian-Doom host binary, in
// the role a DllMain or __attribute__((constructor)) initializer plays for
// a native shared library.
package main
