package cc

import (
	"sync"

	"github.com/orizon-lang/cc/ccdebug"
)

// SpaceConfig configures an ObjectSpace. The zero value is the default
// configuration.
type SpaceConfig struct {
	// Name is used only in debug logging (ccdebug), to tell multiple
	// spaces apart in a trace.
	Name string
}

// ObjectSpace owns one tracked-object ring (C5). Every tracked Cc[T] is
// linked onto exactly one space at construction and stays there until its
// last strong and weak references are released or CollectCycles reclaims
// it (and no Weak to it remains); there is no cross-space
// cycle collection (§1 Non-goals).
type ObjectSpace struct {
	mu       sync.Mutex
	sentinel *header
	tracked  int
	cfg      SpaceConfig
}

// NewSpace returns a fresh, empty ObjectSpace.
func NewSpace(cfg SpaceConfig) *ObjectSpace {
	return &ObjectSpace{sentinel: newSentinel(), cfg: cfg}
}

// DefaultSpace is the space New allocates into. spec.md's "thread-local
// default space" (§4.5) is resolved here to one package-level space
// rather than one per OS thread, since goroutines are not 1:1 with OS
// threads; a program wanting isolation creates its own ObjectSpace with
// NewSpace and allocates into it via NewIn.
var DefaultSpace = NewSpace(SpaceConfig{Name: "default"})

func (s *ObjectSpace) link(h *header) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h.linkAfter(s.sentinel)
	h.space = s
	s.tracked++
}

// untrack records that a previously linked header has left the ring
// through the ordinary drop path (as opposed to CollectCycles, which
// adjusts s.tracked itself while already holding s.mu).
func (s *ObjectSpace) untrack() {
	s.mu.Lock()
	s.tracked--
	s.mu.Unlock()
}

// CountTracked returns the number of tracked blocks currently linked onto
// s's ring, including ones whose strong count has reached zero but which
// are kept alive by a surviving Weak.
func (s *ObjectSpace) CountTracked() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracked
}

// CollectCycles runs the four-pass trial-deletion algorithm (§4.7) over
// s's ring and returns the number of blocks reclaimed. It is not
// reentrant: calling it from within a Trace, Finalize, or another
// CollectCycles call on the same space is undefined, matching §9's
// documented poisoning-on-panic open question.
func (s *ObjectSpace) CollectCycles() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := collectCycles(s)
	s.tracked -= n
	ccdebug.Tracef("collect: reclaimed %d from %q", n, s.cfg.Name)
	return n
}

// Leak intentionally forgets about every tracked block, without running
// destructors or unlinking anything — a deliberate, documented escape
// hatch for processes that are about to exit and want to skip collection
// entirely. After Leak, CountTracked reports 0 and further CollectCycles
// calls are no-ops until new blocks are tracked.
func (s *ObjectSpace) Leak() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sentinel = newSentinel()
	s.tracked = 0
}
