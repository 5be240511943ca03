package vector

import (
	"runtime"
	"testing"
)

// forceGCAndCount runs the garbage collector a few times to give
// finalizers a chance to fire, then returns LiveNodeCount. Finalizer
// scheduling isn't synchronous, so a single GC isn't always enough.
func forceGCAndCount(t *testing.T) (leaves, inners int64) {
	t.Helper()
	for i := 0; i < 5; i++ {
		runtime.GC()
		runtime.Gosched()
	}
	return LiveNodeCount()
}
