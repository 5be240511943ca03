// Package vector implements a persistent, indexed sequence.
//
// Sequence[T] is a wide-branching radix tree in the style of Clojure's
// PersistentVector: every operation that looks like a mutation (Set,
// PushBack, PopBack, Concat) returns a new Sequence that shares as much of
// its internal tree as possible with the one it was derived from. Reading
// (At, Block) and copying a Sequence by value are both cheap; indexed
// reads and single-element appends are near-constant time, and building a
// Sequence from a batch of values is the fast path — it streams whole
// leaves into the tree instead of appending one element at a time.
//
// The tree is built out of two kinds of frozen node: leaf nodes, which hold
// up to BranchingFactor values, and inner nodes, which hold up to
// BranchingFactor child references. Nodes are never mutated after
// construction; a Set or PushBack clones only the nodes on the path from
// the root to the change and reuses every other subtree by reference.
package vector

// BranchingFactor is the fan-out of every inner and leaf node: the number of
// values a leaf holds, and the number of children an inner node holds. It
// is fixed at build time and is always a power of two.
const BranchingFactor = 1 << shiftBits

const (
	// shiftBits is the number of index bits consumed per tree level
	// (log2(BranchingFactor)).
	shiftBits = 5
	// chunkMask extracts the low shiftBits bits of an index: the child (or
	// slot) index at whichever level is currently being addressed.
	chunkMask = BranchingFactor - 1
	// emptyShift is the sentinel shift value for the empty sequence: "no
	// levels at all". It is never exposed on the public Sequence API.
	emptyShift = -shiftBits
)
