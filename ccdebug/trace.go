// Package ccdebug provides opt-in verbose event logging for the cc and
// ccsync packages, generalizing the debug-name/event-log hook in
// original_source/src/debug.rs from a test-only facility into a runtime,
// environment-gated one — Go has no conditional-compilation test
// attribute to mirror the source's #[cfg(test)] directly.
package ccdebug

import (
	"fmt"
	"os"
	"sync/atomic"
)

var enabled atomic.Bool

func init() {
	if v := os.Getenv("CC_TRACE"); v != "" && v != "0" {
		enabled.Store(true)
	}
}

// Enabled reports whether verbose tracing is currently on.
func Enabled() bool { return enabled.Load() }

// SetEnabled turns verbose tracing on or off. Safe for concurrent use.
func SetEnabled(v bool) { enabled.Store(v) }

// Tracef writes a formatted line to stderr if tracing is enabled,
// otherwise it does nothing — callers are expected to call this
// unconditionally on hot paths rather than guard it with Enabled first.
func Tracef(format string, args ...any) {
	if !enabled.Load() {
		return
	}
	fmt.Fprintf(os.Stderr, "cc: "+format+"\n", args...)
}
