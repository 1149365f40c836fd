// SPDX-License-Identifier: MIT

package config

import "sync/atomic"

// global holds the process-wide default Config behind an atomic pointer.
// Per the concurrency model: reconfiguring concurrently with active matrix
// operations is undefined — SetGlobal is meant to be called once at
// program start, or between computations, never mid-run. Reads are lock-free.
var global atomic.Pointer[Config]

func init() {
	d := Default()
	global.Store(&d)
}

// Global returns the current process-wide default Config. Safe to call
// concurrently; each call observes a consistent, fully-built snapshot.
func Global() Config {
	return *global.Load()
}

// SetGlobal replaces the process-wide default Config. Callers must not
// invoke this while other goroutines are mid-computation against the old
// default — see the package doc comment and spec.md's concurrency model.
func SetGlobal(c Config) {
	global.Store(&c)
}
