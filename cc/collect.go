package cc

import (
	"fmt"
)

// collectCycles implements §4.7's four-pass trial deletion over s's ring.
// It assumes the caller already holds s.mu.
//
//   - Pass A snapshots every header's strong refcount into gcRefcount
//     and marks it COLLECTING.
//   - Pass B subtracts one from a target's gcRefcount for every internal
//     edge discovered by tracing each COLLECTING header's value, catching
//     a Trace implementation that reports the same edge twice within one
//     call (§7).
//   - Pass C re-floods from every header whose gcRefcount is still
//     positive (it has a reference from outside the collecting set),
//     clearing COLLECTING on everything it reaches.
//   - Pass D reclaims whatever is still COLLECTING: pins each with an
//     extra strong reference, runs destructors, asserts nothing but the
//     pin still references it (a violated Trace contract would show up
//     here as a panic), then releases the pins. A block that still has
//     Weak holders stays linked until the last Weak drops.
func collectCycles(s *ObjectSpace) int {
	sentinel := s.sentinel
	if sentinel.next == sentinel {
		return 0
	}

	var headers []*header
	for h := sentinel.next; h != sentinel; h = h.next {
		headers = append(headers, h)
		if r := h.rc().strongCount(); r > 0 {
			h.gcRefcount = int(r)
			h.gcFlags = flagCollecting
		} else {
			// Another drop is already in flight for this block (its
			// strong count just hit zero); leave it out of this
			// collection entirely.
			h.gcFlags = 0
		}
	}

	// Pass B.
	for _, h := range headers {
		if !h.isCollecting() {
			continue
		}
		var touched []*header
		h.ops.trace(h.obj, func(e edge) {
			c := e.header
			if c == nil || !c.isCollecting() {
				return
			}
			if c.gcFlags&flagVisited != 0 {
				panic(fmt.Sprintf("cc: Trace on %s visited the same edge twice in one call", h.ops.debugName(h.obj)))
			}
			c.gcFlags |= flagVisited
			touched = append(touched, c)
			c.gcRefcount--
		})
		for _, c := range touched {
			c.gcFlags &^= flagVisited
		}
	}

	// Pass C.
	for _, h := range headers {
		if h.isCollecting() && h.gcRefcount > 0 {
			reviveReachable(h)
		}
	}

	// Pass D.
	var unreachable []*header
	for _, h := range headers {
		if h.isCollecting() {
			unreachable = append(unreachable, h)
		}
	}
	n := len(unreachable)
	if n == 0 {
		for _, h := range headers {
			h.gcFlags = 0
			h.gcRefcount = 0
		}
		return 0
	}

	for _, h := range unreachable {
		h.rc().incStrong()
	}
	for _, h := range unreachable {
		h.ops.destroy(h.obj)
		h.rc().setDropped()
	}
	for _, h := range unreachable {
		if h.rc().strongCount() != 1 {
			panic(fmt.Sprintf("cc: trace contract violated: %s has external references at reclaim time", h.ops.debugName(h.obj)))
		}
	}
	for _, h := range unreachable {
		if h.rc().decStrong() != 0 {
			continue
		}
		if h.rc().weakCount() == 0 {
			h.unlink()
			h.ops.release(h)
		} else {
			// Still linked; Weak.Drop unlinks and untracks it later, so
			// offset the caller's bulk s.tracked -= n for it here.
			s.tracked++
		}
	}

	for _, h := range headers {
		h.gcFlags = 0
		h.gcRefcount = 0
	}

	return n
}

// reviveReachable clears flagCollecting on h and every header transitively
// reachable from it that is still marked COLLECTING, giving each a
// positive gcRefcount so nested re-floods also proceed (§4.7 Pass C).
func reviveReachable(h *header) {
	h.gcFlags &^= flagCollecting
	h.ops.trace(h.obj, func(e edge) {
		c := e.header
		if c == nil || !c.isCollecting() {
			return
		}
		if c.gcRefcount == 0 {
			c.gcRefcount = 1
		}
		reviveReachable(c)
	})
}
