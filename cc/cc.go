package cc

import (
	"fmt"
	"unsafe"

	"github.com/orizon-lang/cc/ccdebug"
)

// ErrDropped is returned by operations that reject an already-dropped
// block instead of panicking (currently none in this package — Value
// panics per §7 — but Weak.Upgrade reports failure via its bool result,
// and this sentinel documents what that failure means when a caller wants
// to turn it into an error instead).
var ErrDropped = fmt.Errorf("cc: block already dropped")

// Cc is a single-threaded, possibly cycle-tracked smart pointer (C4). Its
// zero value is not a valid pointer — only New/NewIn, or cloning an
// existing Cc[T], produce one.
type Cc[T Tracer] struct {
	ptr *object[T]
}

// New allocates value in the package-level DefaultSpace.
func New[T Tracer](value T) Cc[T] {
	return NewIn(DefaultSpace, value)
}

// NewIn allocates value in s: tracked (placed on s's ring) if
// value.IsTypeTracked() reports true, untracked otherwise.
func NewIn[T Tracer](s *ObjectSpace, value T) Cc[T] {
	if value.IsTypeTracked() {
		to := newTracked(value)
		s.link(&to.hdr)
		ccdebug.Tracef("new tracked %s", to.ops.debugName(unsafe.Pointer(&to.object)))
		return Cc[T]{ptr: &to.object}
	}
	o := newUntracked(value)
	ccdebug.Tracef("new untracked %s", o.ops.debugName(unsafe.Pointer(o)))
	return Cc[T]{ptr: o}
}

// headerIfTracked returns c's header, or nil if c's block was never
// tracked.
func (c Cc[T]) headerIfTracked() *header {
	if c.ptr.rc.isTracked() {
		return headerOf(c.ptr)
	}
	return nil
}

// Clone increments the strong count and returns a new handle to the same
// block.
func (c Cc[T]) Clone() Cc[T] {
	c.ptr.rc.incStrong()
	ccdebug.Tracef("clone %s -> strong=%d", c.ptr.ops.debugName(unsafe.Pointer(c.ptr)), c.ptr.rc.strongCount())
	return Cc[T]{ptr: c.ptr}
}

// Drop releases c's strong reference. If it was the last one, the value's
// owned edges are released, any Finalizer is run, and — if the block was
// tracked and has no weak holders left — its header is unlinked and its
// storage returned to its pool. After Drop, c must not be used again.
func (c *Cc[T]) Drop() {
	if c.ptr == nil {
		return
	}
	ccdebug.Tracef("drop %s strong=%d", c.ptr.ops.debugName(unsafe.Pointer(c.ptr)), c.ptr.rc.strongCount())
	releaseEdge(edge{
		rc:     &c.ptr.rc,
		ops:    c.ptr.ops,
		obj:    unsafe.Pointer(c.ptr),
		header: c.headerIfTracked(),
	})
	c.ptr = nil
}

// Value returns a pointer to the held value. It panics if the block has
// already been dropped — dereferencing a dropped block is a programmer
// error, not a recoverable condition (§7).
func (c Cc[T]) Value() *T {
	if c.ptr == nil || c.ptr.rc.isDropped() {
		panic("cc: deref of dropped Cc")
	}
	return &c.ptr.value
}

// StrongCount returns the number of live strong references to c's block.
func (c Cc[T]) StrongCount() int { return int(c.ptr.rc.strongCount()) }

// WeakCount returns the number of live weak references to c's block.
func (c Cc[T]) WeakCount() int { return int(c.ptr.rc.weakCount()) }

// IsTracked reports whether c's block was placed on an ObjectSpace ring.
func (c Cc[T]) IsTracked() bool { return c.ptr.rc.isTracked() }

// PtrEq reports whether c and other refer to the same block.
func (c Cc[T]) PtrEq(other Cc[T]) bool { return c.ptr == other.ptr }

// Downgrade produces a Weak[T] observing the same block, without
// affecting the strong count.
func (c Cc[T]) Downgrade() Weak[T] {
	c.ptr.rc.incWeak()
	return Weak[T]{ptr: c.ptr}
}

// IsTypeTracked makes Cc[T] itself satisfy Tracer, forwarding to T's own
// answer — the same relationship the source's impl<T: Trace> Trace for
// Cc<T> has, so a struct that embeds a Cc[T] field directly can decide
// its own trackedness in terms of T's.
func (c Cc[T]) IsTypeTracked() bool {
	var zero T
	return zero.IsTypeTracked()
}

// Trace reports c's single owned edge. It is non-recursive by design: it
// never calls into T's own Trace — that only happens when the collector
// or the drop cascade later calls ops.trace on c's own header/object.
func (c Cc[T]) Trace(v Visitor) {
	if c.ptr == nil {
		return
	}
	v(edge{
		rc:     &c.ptr.rc,
		ops:    c.ptr.ops,
		obj:    unsafe.Pointer(c.ptr),
		header: c.headerIfTracked(),
	})
}
