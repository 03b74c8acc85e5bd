// Package tracetypes provides blanket Trace-forwarding helpers for common
// Go container shapes, the reduced Go equivalent of the derive/blanket-impl
// zoo original_source/src/trace_impls.rs supplies for Vec<T>, Option<T>
// and friends — Go has no derive macros, so only the handful of shapes a
// typical Trace implementation actually needs are provided here, not an
// exhaustive mirror of the Rust standard library.
package tracetypes

import (
	"fmt"
	"reflect"

	"github.com/orizon-lang/cc/cc"
)

// Slice calls field.Trace(v) for every element of s.
func Slice[T cc.Tracer](s []T, v cc.Visitor) {
	for i := range s {
		s[i].Trace(v)
	}
}

// Map calls value.Trace(v) for every value of m. Map keys are never
// traced: only the map's values participate in the Trace contract.
func Map[K comparable, T cc.Tracer](m map[K]T, v cc.Visitor) {
	for k := range m {
		val := m[k]
		val.Trace(v)
	}
}

// Ptr traces through a possibly-nil pointer.
func Ptr[T cc.Tracer](p *T, v cc.Visitor) {
	if p != nil {
		(*p).Trace(v)
	}
}

// Array calls field.Trace(v) for every element of a, which must be a Go
// array (not a slice) of some [N]T. Go's type parameters have no way to
// range over array length the way they do over element type, so unlike
// Slice/Map/Ptr this can't be a [T cc.Tracer] generic function over the
// array type itself — a is taken as any and inspected with reflect,
// which is also how the length-erased array case in the source's own
// derive output (one arm per fixed N) collapses in a language without
// const generics over array length. Panics if a is not an array.
func Array[T cc.Tracer](a any, v cc.Visitor) {
	rv := reflect.ValueOf(a)
	if rv.Kind() != reflect.Array {
		panic(fmt.Sprintf("tracetypes: Array called with %T, want a fixed-size array", a))
	}
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i).Interface().(T)
		elem.Trace(v)
	}
}
