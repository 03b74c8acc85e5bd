package ccsync

import (
	"sync"

	"github.com/orizon-lang/cc/ccdebug"
)

type SpaceConfig struct {
	Name string
}

// AtomicObjectSpace is the threaded counterpart of cc.ObjectSpace (C5),
// grounded on original_source/src/sync/collect.rs's AccObjectSpace. It
// splits its locking the same way the source does:
//
//   - listMu guards the ring's prev/next pointers and the tracked count,
//     matching the source's linked_list_lock (held by insert/remove and,
//     separately, by collect_cycles alongside the collector lock).
//   - collectorLock is a reader/writer lock: mutators (Clone, Drop,
//     Borrow, Upgrade) hold the read side for the duration of their call,
//     CollectCycles holds the write side for the duration of a pass,
//     matching the source's "wait for complex operations (drop); block
//     operations (drop, deref)" comment on collect_cycles.
//
// Nested drops (a destroyed value's Trace releasing further edges) never
// re-enter either lock: the whole cascade runs inside the single RLock
// (or, during collection, the single Lock) acquired by the call that
// started it, so Go's non-reentrant sync.RWMutex never needs a recursive
// read — see releaseEdge's doc comment.
type AtomicObjectSpace struct {
	collectorLock sync.RWMutex

	listMu   sync.Mutex
	sentinel *header
	tracked  int

	cfg SpaceConfig
}

func NewSpace(cfg SpaceConfig) *AtomicObjectSpace {
	return &AtomicObjectSpace{sentinel: newSentinel(), cfg: cfg}
}

// DefaultSpace is the package-level space New/NewIn-less callers land in,
// mirroring cc.DefaultSpace.
var DefaultSpace = NewSpace(SpaceConfig{Name: "default"})

func (s *AtomicObjectSpace) link(h *header) {
	s.listMu.Lock()
	h.linkAfter(s.sentinel)
	h.space = s
	s.tracked++
	s.listMu.Unlock()
}

// unlinkLocked removes h from the ring and decrements the tracked count.
// Called from the ordinary (non-collector) drop paths; CollectCycles'
// own Pass D unlinks the blocks it reclaims itself, already holding
// listMu, and updates s.tracked in bulk instead.
func (s *AtomicObjectSpace) unlinkLocked(h *header) {
	s.listMu.Lock()
	h.unlink()
	s.tracked--
	s.listMu.Unlock()
}

func (s *AtomicObjectSpace) CountTracked() int {
	s.listMu.Lock()
	defer s.listMu.Unlock()
	return s.tracked
}

// enterMutator blocks while a collection is in progress on s, and must
// be paired with a deferred exitMutator by every Acc/WeakAcc method that
// touches a tracked block's refcount or ring membership.
func (s *AtomicObjectSpace) enterMutator() { s.collectorLock.RLock() }
func (s *AtomicObjectSpace) exitMutator()  { s.collectorLock.RUnlock() }

// CollectCycles runs the four-pass trial-deletion algorithm (C7) over s,
// blocking new mutators for its duration, and returns the number of
// blocks reclaimed.
func (s *AtomicObjectSpace) CollectCycles() int {
	s.collectorLock.Lock()
	defer s.collectorLock.Unlock()
	s.listMu.Lock()
	defer s.listMu.Unlock()

	n := collectCycles(s)
	s.tracked -= n
	ccdebug.Tracef("ccsync collect: reclaimed %d from %q", n, s.cfg.Name)
	return n
}

// Leak drops s's entire ring without running destructors or releasing
// storage, matching cc.ObjectSpace.Leak's use for process-teardown
// shortcuts where correctness no longer matters.
func (s *AtomicObjectSpace) Leak() {
	s.listMu.Lock()
	defer s.listMu.Unlock()
	s.sentinel = newSentinel()
	s.tracked = 0
}
