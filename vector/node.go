package vector

import "sync/atomic"

// kind tags a node handle: it is either empty, or it points at an inner
// node, or it points at a leaf node. Using a small tagged union rather than
// an interface or a class hierarchy keeps the hot descent path
// (handle.kind switch) free of virtual dispatch, and makes "all non-empty
// children are the same kind" (see innerNode) a cheap check.
type kind int8

const (
	kindEmpty kind = iota
	kindInner
	kindLeaf
)

func (k kind) String() string {
	switch k {
	case kindEmpty:
		return "empty"
	case kindInner:
		return "inner"
	case kindLeaf:
		return "leaf"
	default:
		return "invalid"
	}
}

// leafNode holds exactly BranchingFactor values. Slots beyond the owning
// Sequence's size hold zero values or, after a PopBack that keeps the leaf
// shared, the value that was popped; either way they are never observed
// through the public API. A leaf itself carries no count of its own.
//
// rc is a diagnostic share count, not the thing that frees the node — Go's
// garbage collector does that. It records how many handles currently point
// at a node (read through handle.shareCount and checked by
// CheckInvariants), mirroring the intrusive refcount of steady::vector's
// nodes.
type leafNode[T any] struct {
	values [BranchingFactor]T
	rc     atomic.Int32
}

func newLeafNode[T any]() *leafNode[T] {
	n := &leafNode[T]{}
	registerLeafAlloc[T](n)
	return n
}

// cloneLeaf copies a leaf's value array into a fresh leaf. Used by
// replaceValue (Set, and PushBack into a partially filled last leaf): the
// original leaf is left untouched so sequences that still reference it keep
// seeing its old contents.
func cloneLeaf[T any](n *leafNode[T]) *leafNode[T] {
	m := newLeafNode[T]()
	m.values = n.values
	return m
}

// innerNode holds exactly BranchingFactor child handles. All non-empty
// children are the same kind (enforced by construction, never mixed); empty
// slots, if any, form a suffix — once a slot is empty every higher-indexed
// slot in the same inner node is empty too.
type innerNode[T any] struct {
	children [BranchingFactor]handle[T]
	rc       atomic.Int32
}

func newInnerNode[T any]() *innerNode[T] {
	n := &innerNode[T]{}
	registerInnerAlloc[T](n)
	return n
}

// cloneInner copies an inner node's child-handle array into a fresh inner
// node, retaining every non-empty child along the way (the clone and the
// original now both own a reference to each shared child).
func cloneInner[T any](n *innerNode[T]) *innerNode[T] {
	m := newInnerNode[T]()
	for i := range n.children {
		m.children[i] = n.children[i].retain()
	}
	return m
}

// usedChildren counts the leading non-empty slots of an inner node.
func (n *innerNode[T]) usedChildren() int {
	i := 0
	for i < BranchingFactor && n.children[i].kind != kindEmpty {
		i++
	}
	return i
}
