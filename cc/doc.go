// Package cc implements a single-threaded, cycle-collecting reference
// counted smart pointer, Cc[T]. It behaves like an ordinary refcounted
// pointer on the fast path (clone increments, drop decrements) but backs
// every tracked allocation with an intrusive ring so that CollectCycles can
// find and reclaim strongly-connected components of tracked objects that
// plain refcounting would otherwise leak forever.
//
// The design is a Go port of the generational/trial-deletion cycle
// collector used by CPython's gc module, by way of the quark-zju/gcmodule
// Rust crate: values opt in to tracking via the Tracer contract
// (IsTypeTracked, Trace), and CollectCycles runs a four-pass trial
// deletion over all tracked objects in an ObjectSpace to discover and drop
// unreachable cycles.
//
// See cc/ccsync for the multi-threaded variant (Acc[T]), and DESIGN.md at
// the repository root for how each piece is grounded.
package cc

// CC_TRACE=1 in the environment enables verbose event logging via the
// cc/ccdebug package; see ccdebug.Enabled.
