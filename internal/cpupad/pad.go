// Package cpupad provides cache-line padding for hot, frequently-contended
// fields, mirroring the informal counter-padding in the teacher's
// internal/runtime metrics code but sized from the real
// golang.org/x/sys/cpu constant instead of a hardcoded guess.
package cpupad

import "golang.org/x/sys/cpu"

// Pad is a cpu.CacheLinePadSize-byte array; placed between two
// cache-line-sensitive fields, it keeps them from sharing a cache line.
type Pad [cpu.CacheLinePadSize]byte
