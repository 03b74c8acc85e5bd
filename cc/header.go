package cc

import "unsafe"

// gcFlag bits are only meaningful during a CollectCycles call; outside of
// one, every header's gcFlags is zero.
type gcFlag uint8

const (
	// flagCollecting marks a header as a live candidate for this
	// collection pass — set in Pass A, cleared by Pass C's re-flood when
	// the object is proven reachable, read by Pass D to find the
	// unreachable set.
	flagCollecting gcFlag = 1 << iota
	// flagVisited guards against a single Trace call reporting the same
	// edge twice (§7's "double-visit within one trace" diagnostic). It is
	// set and cleared entirely within one header's Pass B walk; it never
	// carries state between objects.
	flagVisited
)

// header is the intrusive ring node prepended to every tracked block (C2).
// obj always points at the object[T] this header belongs to — the same
// address the object's Cc[T] holds — which doubles as a *refCount via the
// zero-offset cast in rc(), since refCount is object[T]'s first field for
// every T.
type header struct {
	prev, next *header

	obj   unsafe.Pointer
	ops   *traceOps
	space *ObjectSpace // the ring this header is linked onto, set at link time

	gcRefcount int
	gcFlags    gcFlag
}

func (h *header) rc() *refCount { return (*refCount)(h.obj) }

func (h *header) isCollecting() bool { return h.gcFlags&flagCollecting != 0 }

// linkAfter inserts h immediately after anchor in anchor's ring.
func (h *header) linkAfter(anchor *header) {
	next := anchor.next
	h.prev = anchor
	h.next = next
	anchor.next = h
	next.prev = h
}

// unlink removes h from whatever ring it is part of and resets its
// prev/next to nil. Calling it again on an already-unlinked header
// panics on the nil prev.
func (h *header) unlink() {
	h.prev.next = h.next
	h.next.prev = h.prev
	h.prev = nil
	h.next = nil
}

// newSentinel returns a header that is its own ring: empty ObjectSpace
// state, matching the source's self-referential GC_LIST sentinel.
func newSentinel() *header {
	h := &header{}
	h.prev = h
	h.next = h
	return h
}
