package ccsync

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"

	"github.com/orizon-lang/cc/internal/headerpool"
)

// object is ccsync's counterpart of cc.object[T] (C3): refCount is still
// the block's first field, so any unsafe.Pointer to an object[T] of any T
// can be reinterpreted as a *refCount, the same trick Any/header.rc()
// rely on in the single-threaded package.
type object[T Tracer] struct {
	rc    refCount
	ops   *traceOps
	value T
}

type trackedObject[T Tracer] struct {
	hdr header
	object[T]
}

func headerOf[T Tracer](o *object[T]) *header {
	var probe trackedObject[T]
	offset := unsafe.Offsetof(probe.object)
	return (*header)(unsafe.Pointer(uintptr(unsafe.Pointer(o)) - offset))
}

type traceOps struct {
	typeKey   reflect.Type
	trace     func(obj unsafe.Pointer, v Visitor)
	destroy   func(obj unsafe.Pointer)
	debugName func(obj unsafe.Pointer) string
	release   func(h *header)
}

var opsRegistry sync.Map // reflect.Type -> *traceOps

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

func releaseToPool[T Tracer](h *header) {
	to := (*trackedObject[T])(unsafe.Pointer(h))
	poolFor[T]().Put(to)
}
