package cc

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"

	"github.com/orizon-lang/cc/internal/headerpool"
)

// object is the allocation block shared by tracked and untracked Cc[T]
// values (C3). rc is the first field so that, for any T, a *object[T] can
// be reinterpreted as a *refCount via a zero-offset unsafe.Pointer cast —
// the mechanism header.rc and the type-erased Any type both rely on.
type object[T Tracer] struct {
	rc    refCount
	ops   *traceOps
	value T
}

// trackedObject additionally carries a GC header immediately before the
// object. A *object[T] obtained from a tracked allocation always lives at
// the tail of a trackedObject[T]; headerOf recovers the header from that
// address via the one constant-offset cast this library needs (spec §3's
// "the GC header sits at block − sizeof(header)").
type trackedObject[T Tracer] struct {
	hdr header
	object[T]
}

// headerOf recovers the GC header for a tracked block from the pointer
// the user's Cc[T] holds. Calling it on an object that was never tracked
// is undefined — callers must check refCount.isTracked() first.
func headerOf[T Tracer](o *object[T]) *header {
	var probe trackedObject[T]
	offset := unsafe.Offsetof(probe.object)
	return (*header)(unsafe.Pointer(uintptr(unsafe.Pointer(o)) - offset))
}

// traceOps is the type-erased dispatch table captured once per concrete T
// and paired with the header-adjacent object pointer, realizing spec
// §4.2/§9's "pairing the header-adjacent address with the dispatch
// pointer" without a user-visible fat-pointer-to-trait-object type to copy
// verbatim. Every function takes the object[T] address, not a pointer to
// the value, so callers holding only an untyped obj pointer (the
// collector, Any) never need to know T's field layout.
type traceOps struct {
	typeKey   reflect.Type
	trace     func(obj unsafe.Pointer, v Visitor)
	destroy   func(obj unsafe.Pointer)
	debugName func(obj unsafe.Pointer) string
	release   func(h *header) // returns a reclaimed tracked block to its pool
}

var opsRegistry sync.Map // reflect.Type -> *traceOps

// opsFor returns the (memoized) dispatch table for T, built once per
// concrete type and shared by every object[T] ever created.
func opsFor[T Tracer]() *traceOps {
	var zero T
	key := reflect.TypeOf(&zero).Elem()
	if v, ok := opsRegistry.Load(key); ok {
		return v.(*traceOps)
	}
	ops := &traceOps{
		typeKey: key,
		trace: func(obj unsafe.Pointer, v Visitor) {
			(*object[T])(obj).value.Trace(v)
		},
		destroy: func(obj unsafe.Pointer) {
			o := (*object[T])(obj)
			o.value.Trace(func(e edge) { releaseEdge(e) })
			if f, ok := any(o.value).(Finalizer); ok {
				f.Finalize()
			}
			var zero T
			o.value = zero
		},
		debugName: func(obj unsafe.Pointer) string {
			return fmt.Sprintf("%T", (*object[T])(obj).value)
		},
		release: releaseToPool[T],
	}
	actual, _ := opsRegistry.LoadOrStore(key, ops)
	return actual.(*traceOps)
}

var headerPoolRegistry sync.Map // reflect.Type -> *headerpool.Pool[trackedObject[T]]

func poolFor[T Tracer]() *headerpool.Pool[trackedObject[T]] {
	var zero T
	key := reflect.TypeOf(&zero).Elem()
	if v, ok := headerPoolRegistry.Load(key); ok {
		return v.(*headerpool.Pool[trackedObject[T]])
	}
	p := headerpool.New[trackedObject[T]]()
	actual, _ := headerPoolRegistry.LoadOrStore(key, p)
	return actual.(*headerpool.Pool[trackedObject[T]])
}

func newTracked[T Tracer](value T) *trackedObject[T] {
	ops := opsFor[T]()
	to := poolFor[T]().Get()
	to.rc = newRefCount(true)
	to.ops = ops
	to.value = value
	to.hdr.obj = unsafe.Pointer(&to.object)
	to.hdr.ops = ops
	return to
}

func newUntracked[T Tracer](value T) *object[T] {
	return &object[T]{rc: newRefCount(false), ops: opsFor[T](), value: value}
}

// releaseToPool returns a reclaimed tracked block's storage to its type's
// pool. h.obj is the embedded object[T]'s address, which coincides with
// the enclosing trackedObject[T]'s address offset by -hdr's size; since
// hdr is trackedObject[T]'s first field, the trackedObject itself starts
// exactly at h's own address.
func releaseToPool[T Tracer](h *header) {
	to := (*trackedObject[T])(unsafe.Pointer(h))
	poolFor[T]().Put(to)
}
