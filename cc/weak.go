package cc

// Weak is a non-owning handle to a Cc[T] block: it keeps the block's
// storage alive (so Upgrade is safe to attempt) without keeping the value
// alive (Upgrade fails once strong has reached zero).
type Weak[T Tracer] struct {
	ptr *object[T]
}

// Drop releases w's weak reference. If the block's strong count had
// already reached zero and this was the last weak holder, the block is
// unlinked (if tracked) and its storage returned to its pool.
func (w *Weak[T]) Drop() {
	if w.ptr == nil {
		return
	}
	rc := &w.ptr.rc
	if rc.decWeak() == 0 && rc.strongCount() == 0 && rc.isTracked() {
		h := headerOf(w.ptr)
		space := h.space
		h.unlink()
		if space != nil {
			space.untrack()
		}
		w.ptr.ops.release(h)
	}
	w.ptr = nil
}

// Upgrade attempts to produce a new strong Cc[T] to the same block,
// succeeding only if the value has not yet been dropped.
func (w Weak[T]) Upgrade() (Cc[T], bool) {
	rc := &w.ptr.rc
	if rc.isDropped() || rc.strongCount() == 0 {
		return Cc[T]{}, false
	}
	rc.incStrong()
	return Cc[T]{ptr: w.ptr}, true
}

// StrongCount returns the block's current strong count (0 once dropped).
func (w Weak[T]) StrongCount() int { return int(w.ptr.rc.strongCount()) }

// WeakCount returns the block's current weak count, including w itself.
func (w Weak[T]) WeakCount() int { return int(w.ptr.rc.weakCount()) }

// PtrEq reports whether w and other observe the same block.
func (w Weak[T]) PtrEq(other Weak[T]) bool { return w.ptr == other.ptr }
