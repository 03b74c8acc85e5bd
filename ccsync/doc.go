// Package ccsync is the multi-threaded counterpart of cc: Acc[T] behaves
// like cc.Cc[T] but is safe to clone, drop and borrow from multiple
// goroutines, and AtomicObjectSpace runs the same four-pass trial
// deletion as cc.ObjectSpace while holding a reader/writer lock that
// blocks mutators for the duration of a collection pass.
//
// The split mirrors original_source/src/sync: a thin atomic-refcount
// layer (ref_count.rs) over the same collection algorithm (collect.rs).
// ccsync keeps its own copy of that algorithm in collect.go, since its
// header and refcount types differ from cc's.
//
// A type is tracked by at most one of cc.Tracer or ccsync.Tracer: the
// two packages use different edge/Visitor shapes, so pick whichever
// pointer family a given value is meant to live behind.
package ccsync
