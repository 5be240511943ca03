package vector

import "fmt"

// Sequence is a persistent, indexed sequence of values of type T. The zero
// value is the empty sequence and is ready to use.
//
// A Sequence is an immutable value: every method that looks like a
// mutation returns a new Sequence and leaves the receiver untouched. Two
// Sequences derived from one another typically share most of their
// internal tree, so copying a Sequence by value, or holding on to an old
// one after deriving a new one, is cheap.
type Sequence[T any] struct {
	root  handle[T]
	n     int
	shift int
}

// Of builds a Sequence holding the given values, in order.
func Of[T any](values ...T) Sequence[T] {
	return FromSlice(values)
}

// FromSlice builds a Sequence holding a copy of values, in order. This is
// the fast path for bulk construction: it streams whole leaves into the
// tree instead of appending one value at a time.
func FromSlice[T any](values []T) Sequence[T] {
	return pushBackBatch(Sequence[T]{}, values)
}

// Len returns the number of values in s.
func (s Sequence[T]) Len() int {
	return s.n
}

// IsEmpty reports whether s holds no values.
func (s Sequence[T]) IsEmpty() bool {
	return s.n == 0
}

// At returns the value at index i. It panics if i is out of range.
func (s Sequence[T]) At(i int) T {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("vector: index %d out of range for length %d", i, s.n))
	}
	leaf := findLeaf(s.root, s.shift, i)
	return leaf.leaf.values[i&chunkMask]
}

// Set returns a copy of s with the value at index i replaced by v. It
// panics if i is out of range.
func (s Sequence[T]) Set(i int, v T) Sequence[T] {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("vector: index %d out of range for length %d", i, s.n))
	}
	return Sequence[T]{root: replaceValue(s.root, s.shift, i, v), n: s.n, shift: s.shift}
}

// PushBack returns a copy of s with v appended.
func (s Sequence[T]) PushBack(v T) Sequence[T] {
	return pushBackOne(s, v)
}

// PushBackAll returns a copy of s with values appended, in order. It is
// the fast path for appending many values at once: prefer it over calling
// PushBack in a loop.
func (s Sequence[T]) PushBackAll(values ...T) Sequence[T] {
	return pushBackBatch(s, values)
}

// PopBack returns a copy of s with its last value removed. It panics if s
// is empty.
func (s Sequence[T]) PopBack() Sequence[T] {
	if s.n == 0 {
		panic("vector: PopBack of empty sequence")
	}
	return popBackOne(s)
}

// Back returns the last value in s. It panics if s is empty.
func (s Sequence[T]) Back() T {
	if s.n == 0 {
		panic("vector: Back of empty sequence")
	}
	return s.At(s.n - 1)
}

// BlockCount returns the number of contiguous blocks s.Block exposes.
// Every block holds up to BranchingFactor values; only the last may hold
// fewer. Walking a Sequence block by block, rather than index by index,
// amortizes the cost of descending the tree to a single leaf visit per
// BranchingFactor values.
func (s Sequence[T]) BlockCount() int {
	if s.n == 0 {
		return 0
	}
	return (s.n-1)/BranchingFactor + 1
}

// Block returns the k-th contiguous block of values, as a slice sharing
// the underlying leaf's backing array. The caller must not mutate it. It
// panics if k is out of range.
func (s Sequence[T]) Block(k int) []T {
	count := s.BlockCount()
	if k < 0 || k >= count {
		panic(fmt.Sprintf("vector: block %d out of range for %d blocks", k, count))
	}
	base := k * BranchingFactor
	leaf := findLeaf(s.root, s.shift, base)
	size := BranchingFactor
	if k == count-1 {
		size = s.n - base
	}
	return leaf.leaf.values[:size]
}

// ForEach calls f with every value in s, in order, stopping early if f
// returns false.
func (s Sequence[T]) ForEach(f func(i int, v T) bool) {
	i := 0
	for k := 0; k < s.BlockCount(); k++ {
		for _, v := range s.Block(k) {
			if !f(i, v) {
				return
			}
			i++
		}
	}
}

// ToSlice copies every value of s into a new slice, in order.
func (s Sequence[T]) ToSlice() []T {
	out := make([]T, 0, s.n)
	for k := 0; k < s.BlockCount(); k++ {
		out = append(out, s.Block(k)...)
	}
	return out
}

// Concat returns a Sequence holding s's values followed by other's,
// streaming other's blocks into s's tree rather than appending one value
// at a time.
func (s Sequence[T]) Concat(other Sequence[T]) Sequence[T] {
	if other.n == 0 {
		return s
	}
	if s.n == 0 {
		return other
	}
	result := s
	for k := 0; k < other.BlockCount(); k++ {
		result = pushBackBatch(result, other.Block(k))
	}
	return result
}

// Equal reports whether s and other hold the same values in the same
// order, using eq to compare individual values. It checks size, then
// emptiness, then root identity before falling back to a block-wise
// comparison, so two Sequences that happen to share a root (the common
// case when one is derived from the other without changing that part of
// the tree) compare equal without visiting a single element.
func (s Sequence[T]) Equal(other Sequence[T], eq func(a, b T) bool) bool {
	if s.n != other.n {
		return false
	}
	if s.n == 0 {
		return true
	}
	if s.root.kind == other.root.kind && samePointer(s.root, other.root) {
		return true
	}
	for k := 0; k < s.BlockCount(); k++ {
		sb, ob := s.Block(k), other.Block(k)
		for i := range sb {
			if !eq(sb[i], ob[i]) {
				return false
			}
		}
	}
	return true
}

// samePointer reports whether two handles of the same kind refer to the
// identical node. Used by Equal as a short-circuit: two roots that are
// the same node can only hold equal content.
func samePointer[T any](a, b handle[T]) bool {
	switch a.kind {
	case kindLeaf:
		return a.leaf == b.leaf
	case kindInner:
		return a.inner == b.inner
	default:
		return true // both empty
	}
}
