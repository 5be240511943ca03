package vector

import (
	"fmt"

	"github.com/stdyvec/stdyvec/internal/except"
	"github.com/stdyvec/stdyvec/internal/merr"
)

// CheckInvariants walks s's tree and reports every structural invariant it
// finds violated: the size/shift relationship, the "occupied children form
// a prefix" rule for inner nodes, and non-negative share counts. It is
// meant for tests, not the hot path — every public operation already
// maintains these invariants by construction, so a violation here means a
// bug in this package, not in caller code.
//
// Each individual check raises a payload exception via except.Throw the
// moment it finds something wrong, rather than threading an error return
// through the recursive descent; CheckInvariants recovers each one with
// except.PCall and combines whatever comes back with merr.Multi so that
// one call reports everything wrong at once instead of just the first
// problem found.
func CheckInvariants[T any](s Sequence[T]) error {
	shift := s.shift
	if s.n == 0 {
		// See checkShift: the empty sequence's shift field is unconstrained
		// (its zero value is 0, not emptyShift), so checkTree is given the
		// sentinel explicitly rather than whatever happens to be stored.
		shift = emptyShift
	}
	return merr.Multi(
		except.PCall(func() { checkShift(s) }),
		except.PCall(func() { checkTree(s.root, shift, 0) }),
	)
}

func checkShift[T any](s Sequence[T]) {
	if s.n == 0 {
		// The empty sequence's shift field is never consulted by any tree
		// algorithm (every one of them branches on n == 0 first), so
		// nothing constrains its value — including the zero value a bare
		// var Sequence[T] starts with, which is 0 rather than emptyShift.
		return
	}
	if want := shiftForSize(s.n); s.shift != want {
		except.Throw(fmt.Errorf("vector: size %d should have shift %d, has %d", s.n, want, s.shift))
	}
}

// checkTree validates the node at the given shift, which is known to be
// reachable with baseIndex as the index of its first (leftmost) element.
func checkTree[T any](node handle[T], shift, baseIndex int) {
	switch node.kind {
	case kindEmpty:
		if shift != emptyShift {
			except.Throw(fmt.Errorf("vector: empty node reached at shift %d, base %d", shift, baseIndex))
		}
	case kindLeaf:
		if shift != 0 {
			except.Throw(fmt.Errorf("vector: leaf node reached at non-zero shift %d, base %d", shift, baseIndex))
		}
		if count := node.leaf.rc.Load(); count < 0 {
			except.Throw(fmt.Errorf("vector: leaf at base %d has negative share count %d", baseIndex, count))
		}
	case kindInner:
		if shift <= 0 {
			except.Throw(fmt.Errorf("vector: inner node reached at shift %d, base %d", shift, baseIndex))
		}
		if count := node.inner.rc.Load(); count < 0 {
			except.Throw(fmt.Errorf("vector: inner node at base %d has negative share count %d", baseIndex, count))
		}
		used := node.inner.usedChildren()
		for i := used; i < BranchingFactor; i++ {
			if node.inner.children[i].kind != kindEmpty {
				except.Throw(fmt.Errorf("vector: inner node at base %d has a non-empty child after an empty one, at slot %d", baseIndex, i))
			}
		}
		childCapacity := capacityForShift(shift - shiftBits)
		for i := 0; i < used; i++ {
			checkTree(node.inner.children[i], shift-shiftBits, baseIndex+i*childCapacity)
		}
	}
}
