package main

// #include <stdlib.h>
import "C"

import (
	"context"

	"github.com/hostbridge/rcon/internal/bootstrap"
)

// Attach is the cgo-exported attach point. Built with -buildmode=c-shared,
// it becomes a plain C symbol the host's loader (or an injector acting on
// its behalf) can call once the shared object is mapped into the host
// process.
//
// It launches bootstrap.Attach in a detached goroutine and returns
// immediately — the host's loader must not be kept waiting on the resolver,
// which can take an unbounded amount of time walking the process's memory
// map.
//
//export Attach
func Attach() {
	go func() {
		_ = bootstrap.Attach(context.Background())
	}()
}

// main is required by -buildmode=c-shared but never runs; the host only
// ever calls the exported Attach symbol above.
func main() {}
