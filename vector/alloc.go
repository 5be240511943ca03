package vector

import (
	"runtime"
	"sync/atomic"
)

// liveLeafNodes and liveInnerNodes mirror steady::vector's
// leaf_node<T>::_debug_count / inode<T>::_debug_count: process-wide
// diagnostic counters, touched only for observability and never consulted
// by the tree algorithms themselves. Global counters like these are fine
// for diagnostics precisely because nothing about correctness depends on
// them.
//
// Unlike the C++ original, nothing here manually frees a node, so the
// counters can't be decremented at a deterministic "destructor" point.
// Instead each node gets a finalizer that decrements its counter once the
// garbage collector has proven the node unreachable — a tracing collector
// standing in for manual refcounting, which is an equally valid way to
// learn when a node is truly gone.
var (
	liveLeafNodes  atomic.Int64
	liveInnerNodes atomic.Int64
)

func registerLeafAlloc[T any](n *leafNode[T]) {
	liveLeafNodes.Add(1)
	runtime.SetFinalizer(n, func(*leafNode[T]) {
		liveLeafNodes.Add(-1)
	})
}

func registerInnerAlloc[T any](n *innerNode[T]) {
	liveInnerNodes.Add(1)
	runtime.SetFinalizer(n, func(*innerNode[T]) {
		liveInnerNodes.Add(-1)
	})
}

// LiveNodeCount returns the number of leaf and inner nodes, across every
// element type, that have been allocated by this package and not yet
// reclaimed by the garbage collector. It is a diagnostic: tests that want
// to observe "the node count returns to baseline" after dropping every
// Sequence referencing a tree should call runtime.GC() (possibly more than
// once, since finalizers run on their own schedule) before reading it.
func LiveNodeCount() (leaves, inners int64) {
	return liveLeafNodes.Load(), liveInnerNodes.Load()
}
