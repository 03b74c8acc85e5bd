package cc

// refCount is the per-object state cell (C1): a strong count, a weak
// count, and two one-way latches — tracked (this block was placed on an
// ObjectSpace's ring at construction) and dropped (the value slot has
// already been destroyed, strong is permanently 0).
//
// It carries no lock of its own; the single-threaded cc package assumes
// single-goroutine access to a given ObjectSpace and its objects, exactly
// as spec.md scopes this variant. See ccsync.refCount for the threaded
// equivalent.
type refCount struct {
	strong  int32
	weak    int32
	tracked bool
	dropped bool
}

func newRefCount(tracked bool) refCount {
	return refCount{strong: 1, tracked: tracked}
}

func (r *refCount) isTracked() bool { return r.tracked }
func (r *refCount) isDropped() bool { return r.dropped }

// setDropped latches dropped. Calling it twice is a bug in the caller;
// it does not itself guard against that, since each call site reaches it
// once per block: releaseEdge right after strong has hit zero, and
// collectCycles' Pass D while it still holds its pin on the block.
func (r *refCount) setDropped() { r.dropped = true }

func (r *refCount) incStrong() int32 { r.strong++; return r.strong }
func (r *refCount) decStrong() int32 { r.strong--; return r.strong }
func (r *refCount) incWeak() int32   { r.weak++; return r.weak }
func (r *refCount) decWeak() int32   { r.weak--; return r.weak }

func (r *refCount) strongCount() int32 { return r.strong }
func (r *refCount) weakCount() int32   { return r.weak }
