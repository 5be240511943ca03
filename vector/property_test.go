package vector

import (
	"testing"
	"testing/quick"
)

// buildRandom replays a scripted sequence of PushBack/PopBack/Set
// operations driven by ops, starting from the empty sequence, and returns
// the resulting Sequence alongside a plain slice built the same way, so
// the two can be compared.
func buildRandom(ops []int8) (Sequence[int], []int) {
	var s Sequence[int]
	var want []int
	for i, op := range ops {
		switch {
		case op >= 0 || len(want) == 0:
			v := int(op)
			s = s.PushBack(v)
			want = append(want, v)
		case op == -1 && len(want) > 0:
			s = s.PopBack()
			want = want[:len(want)-1]
		default:
			idx := i % len(want)
			v := int(op)
			s = s.Set(idx, v)
			want[idx] = v
		}
	}
	return s, want
}

func TestRandomOpsMatchSliceSemantics(t *testing.T) {
	err := quick.Check(func(ops []int8) bool {
		s, want := buildRandom(ops)
		if s.Len() != len(want) {
			return false
		}
		for i, v := range want {
			if s.At(i) != v {
				return false
			}
		}
		return true
	}, &quick.Config{MaxCount: 200})
	if err != nil {
		t.Error(err)
	}
}

func TestRandomOpsSatisfyInvariants(t *testing.T) {
	err := quick.Check(func(ops []int8) bool {
		s, _ := buildRandom(ops)
		if err := CheckInvariants(s); err != nil {
			t.Logf("invariant violation: %v", err)
			return false
		}
		return true
	}, &quick.Config{MaxCount: 200})
	if err != nil {
		t.Error(err)
	}
}

func TestSetSharesUntouchedSubtrees(t *testing.T) {
	n := BranchingFactor*BranchingFactor*2 + 3
	values := make([]int, n)
	s := FromSlice(values)
	updated := s.Set(0, 99)

	if s.root.kind != kindInner || updated.root.kind != kindInner {
		t.Fatalf("expected both roots to be inner nodes for n=%d", n)
	}
	// Everything but slot 0 of the root must be shared by pointer with the
	// original: only the path down to index 0 was cloned.
	for i := 1; i < BranchingFactor; i++ {
		orig := s.root.inner.children[i]
		after := updated.root.inner.children[i]
		if orig.kind != after.kind {
			continue
		}
		if orig.kind == kindEmpty {
			continue
		}
		if (orig.kind == kindInner && orig.inner != after.inner) ||
			(orig.kind == kindLeaf && orig.leaf != after.leaf) {
			t.Errorf("slot %d was not shared between original and updated root", i)
		}
	}
}

func TestConcatInvariants(t *testing.T) {
	sizes := []int{0, 1, BranchingFactor, BranchingFactor + 1, BranchingFactor*BranchingFactor + 7}
	for _, an := range sizes {
		for _, bn := range sizes {
			a := FromSlice(make([]int, an))
			b := FromSlice(make([]int, bn))
			got := a.Concat(b)
			if err := CheckInvariants(got); err != nil {
				t.Errorf("Concat(%d, %d) violates invariants: %v", an, bn, err)
			}
			if got.Len() != an+bn {
				t.Errorf("Concat(%d, %d).Len() = %d, want %d", an, bn, got.Len(), an+bn)
			}
		}
	}
}
