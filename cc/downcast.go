package cc

import "unsafe"

// ErrTypeMismatch would be the error form of a failed Downcast; the
// package instead reports failure via Downcast's bool result so the
// caller keeps its Any on a mismatch, matching spec §6's
// downcast_ref/downcast pairing.
var ErrTypeMismatch = errTypeMismatch{}

type errTypeMismatch struct{}

func (errTypeMismatch) Error() string { return "cc: type mismatch in Downcast" }

// Any is a type-erased Cc pointer (spec §6's as_any/downcast support,
// supplemented from original_source/src/trace.rs). It carries the same
// refcount cell and dispatch table as the concrete Cc[T] it came from;
// IntoDyn and Downcast never touch the refcount.
type Any struct {
	obj    unsafe.Pointer
	ops    *traceOps
	header *header
}

// IntoDyn erases c's concrete type. c must not be used after the call;
// the returned Any now holds the strong reference c held.
func IntoDyn[T Tracer](c Cc[T]) Any {
	return Any{obj: unsafe.Pointer(c.ptr), ops: c.ptr.ops, header: c.headerIfTracked()}
}

// Downcast attempts to recover a Cc[T] from a. It succeeds only if a was
// built from exactly T, checked via the library's per-type dispatch table
// identity rather than any reflection-based shape comparison. On failure
// it returns the zero Cc[T] and false and leaves a untouched, so the
// caller still holds the reference through a.
func Downcast[T Tracer](a Any) (Cc[T], bool) {
	if a.ops != opsFor[T]() {
		return Cc[T]{}, false
	}
	return Cc[T]{ptr: (*object[T])(a.obj)}, true
}

// StrongCount returns the block's current strong count without needing
// to know its concrete type.
func (a Any) StrongCount() int { return int((*refCount)(a.obj).strongCount()) }

// IsTracked reports whether a's block is tracked.
func (a Any) IsTracked() bool { return (*refCount)(a.obj).isTracked() }

// PtrEq reports whether a and other refer to the same block, regardless
// of whether they were erased from the same concrete type.
func (a Any) PtrEq(other Any) bool { return a.obj == other.obj }

// IsTypeTracked always reports true for Any, per §9's resolution for
// polymorphic/trait-object field references: once a field's concrete
// type has been erased, there is no T left to ask, and "always tracked"
// is the answer the spec requires to stay correct (never incorrectly
// reporting untracked) rather than the answer that minimizes bookkeeping.
func (Any) IsTypeTracked() bool { return true }

// Trace lets a struct that owns an Any field report it to the collector
// the same way Cc[T].Trace reports a concrete edge.
func (a Any) Trace(v Visitor) {
	if a.obj == nil {
		return
	}
	v(edge{rc: (*refCount)(a.obj), ops: a.ops, obj: a.obj, header: a.header})
}
