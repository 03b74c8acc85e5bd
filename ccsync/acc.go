package ccsync

import (
	"fmt"
	"unsafe"

	"github.com/orizon-lang/cc/ccdebug"
)

// ErrDropped mirrors cc.ErrDropped for callers that want to turn an
// Upgrade failure into an error value.
var ErrDropped = fmt.Errorf("ccsync: block already dropped")

// Acc is the threaded counterpart of cc.Cc[T] (C4 / C8): an atomically
// reference-counted, possibly cycle-tracked smart pointer safe to clone,
// drop and borrow from multiple goroutines. It corresponds to the
// source's Acc<T> = AbstractCc<T, AccObjectSpace>.
type Acc[T Tracer] struct {
	ptr *object[T]
}

// New allocates value in the package-level DefaultSpace.
func New[T Tracer](value T) Acc[T] {
	return NewIn(DefaultSpace, value)
}

// NewIn allocates value in s: tracked (placed on s's ring) if
// value.IsTypeTracked() reports true, untracked otherwise.
func NewIn[T Tracer](s *AtomicObjectSpace, value T) Acc[T] {
	if value.IsTypeTracked() {
		to := newTracked(value)
		s.link(&to.hdr)
		ccdebug.Tracef("new tracked (sync) %s", to.ops.debugName(unsafe.Pointer(&to.object)))
		return Acc[T]{ptr: &to.object}
	}
	o := newUntracked(value)
	ccdebug.Tracef("new untracked (sync) %s", o.ops.debugName(unsafe.Pointer(o)))
	return Acc[T]{ptr: o}
}

func (a Acc[T]) headerIfTracked() *header {
	if a.ptr.rc.isTracked() {
		return headerOf(a.ptr)
	}
	return nil
}

func (a Acc[T]) space() *AtomicObjectSpace {
	if h := a.headerIfTracked(); h != nil {
		return h.space
	}
	return nil
}

// Clone increments the strong count and returns a new handle to the same
// block. Safe to call concurrently with other Clone/Drop/Borrow calls on
// any handle to the same block; blocks only while a CollectCycles pass
// is in flight on the owning space.
func (a Acc[T]) Clone() Acc[T] {
	if s := a.space(); s != nil {
		s.enterMutator()
		defer s.exitMutator()
	}
	a.ptr.rc.incStrong()
	return Acc[T]{ptr: a.ptr}
}

// Drop releases a's strong reference, running the same cascade as
// cc.Cc[T].Drop. After Drop, a must not be used again.
func (a *Acc[T]) Drop() {
	if a.ptr == nil {
		return
	}
	s := a.space()
	if s != nil {
		s.enterMutator()
		defer s.exitMutator()
	}
	releaseEdge(edge{
		rc:     &a.ptr.rc,
		ops:    a.ptr.ops,
		obj:    unsafe.Pointer(a.ptr),
		header: a.headerIfTracked(),
	})
	a.ptr = nil
}

// Borrow returns a guard granting read access to the held value for as
// long as the guard is alive. It is the only way to reach T through an
// Acc[T]: unlike cc.Cc[T].Value, which returns a bare *T because nothing
// else can mutate it out from under a single-threaded caller, ccsync
// must hand back something that keeps the collector from running a
// concurrent collection pass while the caller still holds the pointer.
func (a Acc[T]) Borrow() Borrow[T] {
	s := a.space()
	if s != nil {
		s.enterMutator()
	}
	if a.ptr.rc.isDropped() {
		if s != nil {
			s.exitMutator()
		}
		panic("ccsync: deref of dropped Acc")
	}
	return Borrow[T]{ptr: a.ptr, space: s}
}

// StrongCount returns the number of live strong references to a's block.
func (a Acc[T]) StrongCount() int { return int(a.ptr.rc.strongCount()) }

// WeakCount returns the number of live weak references to a's block.
func (a Acc[T]) WeakCount() int { return int(a.ptr.rc.weakCount()) }

// IsTracked reports whether a's block was placed on an AtomicObjectSpace
// ring.
func (a Acc[T]) IsTracked() bool { return a.ptr.rc.isTracked() }

// PtrEq reports whether a and other refer to the same block.
func (a Acc[T]) PtrEq(other Acc[T]) bool { return a.ptr == other.ptr }

// Downgrade produces a WeakAcc[T] observing the same block, without
// affecting the strong count.
func (a Acc[T]) Downgrade() WeakAcc[T] {
	a.ptr.rc.incWeak()
	return WeakAcc[T]{ptr: a.ptr}
}

// IsTypeTracked makes Acc[T] itself satisfy Tracer, forwarding to T's
// own answer, the same relationship cc.Cc[T] has with cc.Tracer.
func (a Acc[T]) IsTypeTracked() bool {
	var zero T
	return zero.IsTypeTracked()
}

// Trace reports a's single owned edge.
func (a Acc[T]) Trace(v Visitor) {
	if a.ptr == nil {
		return
	}
	v(edge{
		rc:     &a.ptr.rc,
		ops:    a.ptr.ops,
		obj:    unsafe.Pointer(a.ptr),
		header: a.headerIfTracked(),
	})
}
