package ccsync

import (
	"sync/atomic"

	"github.com/orizon-lang/cc/internal/cpupad"
)

// refCount is the atomic counterpart of cc.refCount (C1), grounded on
// original_source/src/sync/ref_count.rs's ThreadedRefCount. The source
// packs strong count, tracked and dropped into a single AtomicUsize word
// and keeps weak in a second one; Go's typed atomics make that packing
// unnecessary; strong and weak each get their own int32, and tracked/
// dropped (set once, read often, never contended the way strong/weak are)
// get a bool and an atomic.Bool respectively.
//
// _ cpupad.Pad sits between the hot strong/weak words and the cold
// tracked/dropped fields so two refCount cells that land on the same
// cache line don't false-share on the clone/drop fast path — the same
// concern the source's collector_lock sharing addresses by construction
// (one Arc<RwLock<()>> per space, not per object) and the teacher's
// region/metrics counters pad for.
type refCount struct {
	strong atomic.Int32
	weak   atomic.Int32

	_ cpupad.Pad

	tracked bool
	dropped atomic.Bool
}

func newRefCount(tracked bool) refCount {
	rc := refCount{tracked: tracked}
	rc.strong.Store(1)
	return rc
}

func (r *refCount) isTracked() bool { return r.tracked }
func (r *refCount) isDropped() bool { return r.dropped.Load() }
func (r *refCount) setDropped()     { r.dropped.Store(true) }

func (r *refCount) incStrong() int32 { return r.strong.Add(1) }
func (r *refCount) decStrong() int32 { return r.strong.Add(-1) }
func (r *refCount) incWeak() int32   { return r.weak.Add(1) }
func (r *refCount) decWeak() int32   { return r.weak.Add(-1) }

func (r *refCount) strongCount() int32 { return r.strong.Load() }
func (r *refCount) weakCount() int32   { return r.weak.Load() }
