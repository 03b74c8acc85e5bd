package ccsync

import "unsafe"

// Tracer is ccsync's counterpart of cc.Tracer (C6). A type used with
// Acc[T] implements this interface, not cc.Tracer: the two packages use
// different edge/Visitor shapes (atomic vs plain refcount cells), so a
// value must pick which pointer family it's tracked by, exactly as the
// source's single Trace trait is parameterized per-ObjectSpace via its
// RefCount/Header associated types.
type Tracer interface {
	IsTypeTracked() bool
	Trace(v Visitor)
}

// Visitor receives one owned edge per call, reported by a Trace
// implementation for each field it owns.
type Visitor func(edge)

type edge struct {
	rc     *refCount
	ops    *traceOps
	obj    unsafe.Pointer
	header *header
}

// Finalizer, if implemented by a value held in an Acc[T] (tracked or
// not), runs once after all of
// that value's owned edges have been released, mirroring cc.Finalizer.
type Finalizer interface {
	Finalize()
}

// releaseEdge decrements e's strong count and, on last reference, runs
// the drop cascade: destroy, mark dropped, and — if tracked with no weak
// holders — unlink and return storage to its pool.
//
// releaseEdge never touches a collector lock itself. It is only ever
// reached from inside a call tree whose root (Acc.Drop, WeakAcc.Drop,
// collectCycles' own Pass D) already holds the appropriate lock for the
// whole cascade; recursive releases triggered by destroy's own Trace
// call happen inside that same critical section. See AtomicObjectSpace's
// doc comment for why this sidesteps the reentrant-reader-lock problem
// the source solves with parking_lot's read_recursive.
func releaseEdge(e edge) {
	if e.rc.decStrong() != 0 {
		return
	}
	e.ops.destroy(e.obj)
	e.rc.setDropped()
	if e.header != nil && e.rc.weakCount() == 0 {
		h := e.header
		space := h.space
		if space != nil {
			space.unlinkLocked(h)
		} else {
			h.unlink()
		}
		e.ops.release(h)
	}
}
