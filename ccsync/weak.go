package ccsync

// WeakAcc is the threaded counterpart of cc.Weak[T]: a non-owning handle
// that keeps a tracked block's storage (not its value) alive.
type WeakAcc[T Tracer] struct {
	ptr *object[T]
}

// Drop releases w's weak reference, returning the block's storage to its
// pool if this was the last holder of any kind.
func (w *WeakAcc[T]) Drop() {
	if w.ptr == nil {
		return
	}
	if s := (Acc[T]{ptr: w.ptr}).space(); s != nil {
		s.enterMutator()
		defer s.exitMutator()
	}
	rc := &w.ptr.rc
	if rc.decWeak() == 0 && rc.strongCount() == 0 && rc.isTracked() {
		h := headerOf(w.ptr)
		if space := h.space; space != nil {
			space.unlinkLocked(h)
		} else {
			h.unlink()
		}
		w.ptr.ops.release(h)
	}
	w.ptr = nil
}

// Upgrade attempts to produce a new strong Acc[T] to the same block,
// succeeding only if the value has not yet been dropped. Safe to race
// with a concurrent Drop of the last strong reference: the two cannot
// both observe strong > 0 and strong == 0 for the same decrement.
func (w WeakAcc[T]) Upgrade() (Acc[T], bool) {
	if s := (Acc[T]{ptr: w.ptr}).space(); s != nil {
		s.enterMutator()
		defer s.exitMutator()
	}
	rc := &w.ptr.rc
	for {
		cur := rc.strongCount()
		if rc.isDropped() || cur == 0 {
			return Acc[T]{}, false
		}
		if rc.strong.CompareAndSwap(cur, cur+1) {
			return Acc[T]{ptr: w.ptr}, true
		}
	}
}

// StrongCount returns the block's current strong count (0 once dropped).
func (w WeakAcc[T]) StrongCount() int { return int(w.ptr.rc.strongCount()) }

// WeakCount returns the block's current weak count, including w itself.
func (w WeakAcc[T]) WeakCount() int { return int(w.ptr.rc.weakCount()) }

// PtrEq reports whether w and other observe the same block.
func (w WeakAcc[T]) PtrEq(other WeakAcc[T]) bool { return w.ptr == other.ptr }
