// Package headerpool reuses fixed-shape heap allocations across repeated
// create/destroy cycles. It is grounded on the size-classed sync.Pool
// idiom in the teacher's internal/allocator package, retargeted at the one
// allocation shape that is safe to pool in a garbage-collected language: a
// Go-heap value holding only well-typed fields the runtime already knows
// how to scan (never a raw byte arena standing in for an arbitrary T).
package headerpool

import "sync"

// Pool reuses *T allocations. One Pool is meant to be shared by every
// tracked block of a given concrete type, cut from the per-type registry
// the cycle-collecting package keeps.
type Pool[T any] struct {
	pool sync.Pool
}

// New returns a Pool whose zero value, on first Get, allocates a fresh T.
func New[T any]() *Pool[T] {
	return &Pool[T]{pool: sync.Pool{New: func() any { return new(T) }}}
}

// Get returns a *T ready for reinitialization. Its contents are zeroed so a
// destroyed value's fields (which may include pointers into the Go heap)
// are not observable through a reused allocation.
func (p *Pool[T]) Get() *T {
	v := p.pool.Get().(*T)
	var zero T
	*v = zero
	return v
}

// Put returns v to the pool. The caller must not read or write through v
// again; Put does not zero v itself — the next Get does, so whatever v
// still references stays reachable while it sits in the pool.
func (p *Pool[T]) Put(v *T) {
	p.pool.Put(v)
}
