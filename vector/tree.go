package vector

// This file holds the internal tree algorithms: the copy-on-write
// primitives that every public Sequence operation is built from. They
// mirror the copy-on-write primitives of a C++ persistent-vector
// implementation in the Clojure PersistentVector family (find the leaf that
// holds an index, clone-and-replace a single value or a whole leaf along
// the path to it, splice a freshly built leaf or spine into a saturated
// root, stream many values in without a per-element allocation).

// spliceChild returns a clone of n with slot idx replaced by newChild. It
// is the common shape behind replaceValue, replaceLeaf, and appendLeaf:
// clone the child array (retaining every child, including the one about to
// be overwritten), release the now-redundant retain on the overwritten
// slot, then install the new child.
func spliceChild[T any](n *innerNode[T], idx int, newChild handle[T]) *innerNode[T] {
	m := cloneInner(n)
	m.children[idx].release()
	m.children[idx] = newChild
	return m
}

// findLeaf walks from node at the given shift down to the leaf that holds
// index i.
func findLeaf[T any](node handle[T], shift, i int) handle[T] {
	n := node
	for s := shift; s > 0; s -= shiftBits {
		idx := (i >> s) & chunkMask
		n = n.child(idx)
	}
	return n
}

// replaceValue returns a copy of the tree rooted at node with the value at
// index i replaced by v. Only nodes on the path from node to the target
// leaf are cloned; every sibling subtree is shared with the original.
func replaceValue[T any](node handle[T], shift, i int, v T) handle[T] {
	if shift == 0 {
		nl := cloneLeaf(node.leaf)
		nl.values[i&chunkMask] = v
		return leafHandle(nl)
	}
	idx := (i >> shift) & chunkMask
	newChild := replaceValue(node.child(idx), shift-shiftBits, i, v)
	return innerHandle(spliceChild(node.inner, idx, newChild))
}

// replaceLeaf is shaped like replaceValue but substitutes an entire leaf in
// one call, addressed by the index of its first element. Used by the
// tail-fill phase of pushBackBatch.
func replaceLeaf[T any](node handle[T], shift, leafBaseIndex int, newLeaf handle[T]) handle[T] {
	if shift == 0 {
		return newLeaf
	}
	idx := (leafBaseIndex >> shift) & chunkMask
	newChild := replaceLeaf(node.child(idx), shift-shiftBits, leafBaseIndex, newLeaf)
	return innerHandle(spliceChild(node.inner, idx, newChild))
}

// makeSpine builds a right-spine of length shift/shiftBits — a chain of
// inner nodes, each holding the previous as its sole child in slot 0 — with
// leaf at the bottom. Used whenever a brand-new rightmost path needs to be
// created through levels that were previously empty.
func makeSpine[T any](shift int, leaf handle[T]) handle[T] {
	if shift == 0 {
		return leaf
	}
	child := makeSpine(shift-shiftBits, leaf)
	n := newInnerNode[T]()
	n.children[0] = child
	return innerHandle(n)
}

// appendLeaf adds leaf as the new rightmost leaf of the tree rooted at
// node, where atIndex equals the tree's current size (so at every level,
// the computed child index identifies the slot one past the current
// tail). The caller (pushBackLeaf) is responsible for knowing that there
// is room: appendLeaf never grows the tree's depth.
func appendLeaf[T any](node handle[T], shift, atIndex int, leaf handle[T]) handle[T] {
	idx := (atIndex >> shift) & chunkMask
	if shift == shiftBits {
		// Lowest inner level: children are leaves.
		return innerHandle(spliceChild(node.inner, idx, leaf))
	}
	child := node.child(idx)
	var newChild handle[T]
	if child.kind == kindEmpty {
		newChild = makeSpine(shift-shiftBits, leaf)
	} else {
		newChild = appendLeaf(child, shift-shiftBits, atIndex, leaf)
	}
	return innerHandle(spliceChild(node.inner, idx, newChild))
}

// pushBackLeaf adds a pre-filled leaf as the tree's new rightmost leaf.
// Precondition: seq's size is a multiple of BranchingFactor, and
// 1 <= leafItemCount <= BranchingFactor.
func pushBackLeaf[T any](seq Sequence[T], leaf handle[T], leafItemCount int) Sequence[T] {
	if seq.n == 0 {
		return Sequence[T]{root: leaf, n: leafItemCount, shift: 0}
	}
	maxValues := capacityForShift(seq.shift)
	if seq.n+leafItemCount <= maxValues {
		root := appendLeaf(seq.root, seq.shift, seq.n, leaf)
		return Sequence[T]{root: root, n: seq.n + leafItemCount, shift: seq.shift}
	}
	// Root saturated: grow depth by one. The old root becomes slot 0 of a
	// fresh root; a brand-new spine down to leaf becomes slot 1.
	spine := makeSpine(seq.shift, leaf)
	newRoot := newInnerNode[T]()
	newRoot.children[0] = seq.root.retain()
	newRoot.children[1] = spine
	return Sequence[T]{root: innerHandle(newRoot), n: seq.n + leafItemCount, shift: seq.shift + shiftBits}
}

// pushBackOne appends a single value, choosing between two cases: write into
// the spare capacity of the current last leaf via a plain replaceValue, or,
// when the last leaf is already full, start a fresh leaf and delegate to
// pushBackLeaf.
func pushBackOne[T any](seq Sequence[T], v T) Sequence[T] {
	if seq.n&chunkMask != 0 {
		root := replaceValue(seq.root, seq.shift, seq.n, v)
		return Sequence[T]{root: root, n: seq.n + 1, shift: seq.shift}
	}
	leaf := newLeafNode[T]()
	leaf.values[0] = v
	return pushBackLeaf(seq, leafHandle(leaf), 1)
}

// pushBackBatch is the prime construction path: it streams values into the
// tree without allocating or touching one node per element. It proceeds in
// two phases — pad out the current last leaf if it's partial, then stream
// whole leaves (the last one possibly partial) via pushBackLeaf.
func pushBackBatch[T any](seq Sequence[T], values []T) Sequence[T] {
	if len(values) == 0 {
		return seq
	}
	result := seq
	pos := 0

	if lastLeafSize := result.n & chunkMask; lastLeafSize > 0 {
		lastLeafBaseIndex := result.n &^ chunkMask
		copyCount := min(BranchingFactor-lastLeafSize, len(values))

		prevLeaf := findLeaf(result.root, result.shift, lastLeafBaseIndex)
		newLeaf := newLeafNode[T]()
		copy(newLeaf.values[:lastLeafSize], prevLeaf.leaf.values[:lastLeafSize])
		copy(newLeaf.values[lastLeafSize:lastLeafSize+copyCount], values[pos:pos+copyCount])

		newRoot := replaceLeaf(result.root, result.shift, lastLeafBaseIndex, leafHandle(newLeaf))
		result = Sequence[T]{root: newRoot, n: result.n + copyCount, shift: result.shift}
		pos += copyCount
	}

	for pos < len(values) {
		batchCount := min(len(values)-pos, BranchingFactor)
		newLeaf := newLeafNode[T]()
		copy(newLeaf.values[:batchCount], values[pos:pos+batchCount])
		result = pushBackLeaf(result, leafHandle(newLeaf), batchCount)
		pos += batchCount
	}

	return result
}

// popBackOne removes the last element of a non-empty sequence. The
// original's own pop_back rebuilds the whole tree from to_vec() and is
// marked "correct but inefficient" in its own comment; this mirrors
// pushBackOne/pushBackLeaf in reverse instead: if the rightmost leaf has
// more than one element, this is just a count decrement on a shared root,
// otherwise the whole tail leaf is dropped from the tree and the depth
// shrinks back down to match.
func popBackOne[T any](seq Sequence[T]) Sequence[T] {
	newSize := seq.n - 1
	if newSize == 0 {
		return Sequence[T]{}
	}
	if seq.n&chunkMask != 1 {
		// The tail leaf still has other elements in it: no structural
		// change, just stop counting the last slot. The slot's old value
		// is never observed again because Block/At only expose newSize
		// elements, so leaving the leaf untouched (and shared) is safe.
		return Sequence[T]{root: seq.root.retain(), n: newSize, shift: seq.shift}
	}

	// seq.n - 1 is itself a multiple of BranchingFactor: it is the base
	// index of the (single-element) tail leaf being dropped entirely.
	tailBase := seq.n - 1
	newRoot := removeTailLeaf(seq.root, seq.shift, tailBase)

	newShift := shiftForSize(newSize)
	for s := seq.shift; s > newShift; s -= shiftBits {
		child := newRoot.child(0).retain()
		newRoot.release()
		newRoot = child
	}
	return Sequence[T]{root: newRoot, n: newSize, shift: newShift}
}

// removeTailLeaf returns a copy of the tree rooted at node with the leaf
// based at tailBase removed. idx == 0 means the leaf was this node's only
// child, so the whole node collapses to the empty handle; the caller one
// level up stores that into its own slot idx, preserving the "occupied
// slots form a prefix" invariant.
func removeTailLeaf[T any](node handle[T], shift, tailBase int) handle[T] {
	idx := (tailBase >> shift) & chunkMask
	if idx == 0 {
		return handle[T]{}
	}
	if shift == shiftBits {
		// node's children are leaves; idx is the one being dropped.
		return innerHandle(spliceChild(node.inner, idx, handle[T]{}))
	}
	newChild := removeTailLeaf(node.child(idx), shift-shiftBits, tailBase)
	return innerHandle(spliceChild(node.inner, idx, newChild))
}
