package cc

import "unsafe"

// Tracer is the trace contract (C6) every type stored in a Cc[T] or
// Weak[T] must satisfy.
type Tracer interface {
	// IsTypeTracked reports whether values of this type may participate
	// in a reference cycle. A type whose transitive owned references only
	// ever reach non-tracked types may return false to skip the ring
	// entirely; always returning true is correct but spends a ring slot
	// (and the accompanying GC header) on every value.
	IsTypeTracked() bool

	// Trace invokes v exactly once for every Cc-shaped (strong) field this
	// value owns (Weak fields are never reported; Weak has no Trace
	// method), including ones reached through intermediate containers
	// (slices, maps, plain structs) whether or not those containers are
	// themselves tracked — see cc/tracetypes for forwarding helpers.
	// Trace must be pure: no refcount-changing side effects of its own,
	// no panics on the happy path. It is called both by CollectCycles
	// (for bookkeeping only) and by the ordinary drop path (to cascade
	// the release), so it must report every edge unconditionally.
	Trace(v Visitor)
}

// Visitor receives one owned edge per call from Trace. It is produced by
// the library (the collector or the drop cascade) and consumed by
// Cc[T].Trace and Any.Trace; user Trace implementations never construct
// one, they only forward it: call field.Trace(v) for every owned field.
type Visitor func(edge)

// edge is an opaque descriptor for one owned strong reference, produced
// by Cc[T].Trace. header is nil when the pointee was never tracked — such
// edges cannot be part of a cycle and the collector ignores them, but the
// ordinary drop cascade still releases them.
type edge struct {
	rc     *refCount
	ops    *traceOps
	obj    unsafe.Pointer
	header *header
}

// Finalizer is an optional, non-resurrecting cleanup hook. It is not part
// of the Trace contract: the library calls Finalize at most once, after a
// value's owned Cc edges have already been released, for types that
// hold a non-GC resource (a file handle, a socket) alongside their traced
// fields.
type Finalizer interface {
	Finalize()
}

// releaseEdge decrements one owned strong edge and, if that was the last
// strong reference, destroys the pointee (cascading into its own owned
// edges) and, for a tracked pointee with no weak holders left, unlinks
// and frees its header. This is the type-erased half of the drop
// lifecycle (§3): it is reachable both from Cc[T].Drop, which knows T,
// and from inside another value's Trace-driven destroy, which does not.
func releaseEdge(e edge) {
	if e.rc.decStrong() != 0 {
		return
	}
	e.ops.destroy(e.obj)
	e.rc.setDropped()
	if e.header != nil && e.rc.weakCount() == 0 {
		h := e.header
		space := h.space
		h.unlink()
		if space != nil {
			space.untrack()
		}
		e.ops.release(h)
	}
}
