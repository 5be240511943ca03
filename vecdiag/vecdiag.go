// Package vecdiag prints the block layout of a vector.Sequence for
// debugging, a reduced counterpart of the text diagram that
// steady::vector::trace_internals / internals::trace_node print of a
// steady::vector tree.
//
// It works entirely through vector's exported API (Len, BlockCount,
// Block); it has no access to node internals and cannot observe or affect
// sharing between Sequences, only the values a Sequence exposes and how
// many blocks they're grouped into.
package vecdiag

import (
	"fmt"
	"io"
	"log"

	"github.com/stdyvec/stdyvec/vector"
)

// Trace writes a line-oriented diagram of s to w: one line giving its
// length and block count, then one line per block listing the block's
// values.
func Trace[T any](w io.Writer, s vector.Sequence[T]) {
	l := log.New(w, "", 0)
	l.Printf("<sequence> len=%d blocks=%d", s.Len(), s.BlockCount())
	for k := 0; k < s.BlockCount(); k++ {
		block := s.Block(k)
		l.Printf("#%d\t%s", k, formatBlock(block))
	}
}

func formatBlock[T any](block []T) string {
	s := "["
	for i, v := range block {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprint(v)
	}
	return s + "]"
}

// Discard is a Logger that ignores all loggings, for callers that want to
// pass a *log.Logger to code instrumented with optional tracing without
// actually printing anything.
var Discard = log.New(io.Discard, "", 0)

// LiveNodes reports how many leaf and inner nodes, across every Sequence
// element type, have been allocated and not yet reclaimed by the garbage
// collector. It forwards to vector.LiveNodeCount: the counters themselves
// have to live in package vector, since they're updated from unexported
// node constructors this package has no access to.
func LiveNodes() (leaves, inners int64) {
	return vector.LiveNodeCount()
}
