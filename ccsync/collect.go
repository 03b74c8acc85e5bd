package ccsync

import "fmt"

// collectCycles runs passes A-D exactly as cc's single-threaded
// collectCycles does (C7 is unchanged by C8; see SPEC_FULL.md §1). It
// assumes the caller (AtomicObjectSpace.CollectCycles) already holds
// both collectorLock (write) and listMu, so no header's refcount or ring
// membership can change underneath it.
func collectCycles(s *AtomicObjectSpace) int {
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
				panic(fmt.Sprintf("ccsync: Trace on %s visited the same edge twice in one call", h.ops.debugName(h.obj)))
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
			panic(fmt.Sprintf("ccsync: trace contract violated: %s has external references at reclaim time", h.ops.debugName(h.obj)))
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
			// Still linked; WeakAcc.Drop unlinks and untracks it later, so
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
