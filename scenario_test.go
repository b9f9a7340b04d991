package btree

import (
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// twentyKeys builds the degree-3 tree holding 1…20, inserted in ascending
// order.
func twentyKeys(t *testing.T) *Tree[int] {
	t.Helper()
	return makeTree(t, 3, keyRange(1, 20)...)
}

func TestSequentialInsertShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "btree")
	defer teardown()
	//
	tree := twentyKeys(t)
	assertShape(t, tree, [][][]int{
		{{9}},
		{{3, 6}, {12, 15}},
		{{1, 2}, {4, 5}, {7, 8}, {10, 11}, {13, 14}, {16, 17, 18, 19, 20}},
	})
	if tree.Height() != 3 || tree.Len() != 20 {
		t.Fatalf("expected height 3 and 20 keys, got height=%d len=%d", tree.Height(), tree.Len())
	}
	st := tree.Stats()
	if st.Splits != 6 || st.RootGrowths != 2 {
		t.Fatalf("unexpected split statistics: %+v", st)
	}
	if !slices.Equal(collectKeys(tree), keyRange(1, 20)) {
		t.Fatalf("in-order keys mismatch: %v", collectKeys(tree))
	}
}

func TestSearchFoundAndAbsent(t *testing.T) {
	tree := twentyKeys(t)
	loc, ok := tree.Search(13)
	if !ok {
		t.Fatalf("expected to find 13")
	}
	if loc.Key() != 13 || !loc.IsLeaf() || loc.Index() != 0 || !slices.Equal(loc.Keys(), []int{13, 14}) {
		t.Fatalf("unexpected location for 13: key=%d leaf=%t index=%d keys=%v",
			loc.Key(), loc.IsLeaf(), loc.Index(), loc.Keys())
	}
	loc, ok = tree.Search(9)
	if !ok || loc.IsLeaf() || loc.Key() != 9 {
		t.Fatalf("expected to find 9 in the internal root")
	}
	if _, ok := tree.Search(99); ok {
		t.Fatalf("did not expect to find 99")
	}
	if _, ok := tree.Search(0); ok {
		t.Fatalf("did not expect to find 0")
	}
	if lo, _ := tree.Min(); lo != 1 {
		t.Fatalf("expected min 1, got %d", lo)
	}
	if hi, _ := tree.Max(); hi != 20 {
		t.Fatalf("expected max 20, got %d", hi)
	}
}

func TestDeleteLeftmostTriggersRebalancing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "btree")
	defer teardown()
	//
	tree := twentyKeys(t)
	for _, k := range []int{1, 2, 3, 4} {
		if !tree.Delete(k) {
			t.Fatalf("expected %d to be deleted", k)
		}
	}
	if tree.Stats().Rebalances() == 0 {
		t.Fatalf("expected deletions to rebalance the leftmost subtree")
	}
	if tree.Stats().Merges != 3 || tree.Stats().RootShrinks != 1 {
		t.Fatalf("unexpected rebalancing statistics: %+v", tree.Stats())
	}
	assertShape(t, tree, [][][]int{
		{{9, 12, 15}},
		{{5, 6, 7, 8}, {10, 11}, {13, 14}, {16, 17, 18, 19, 20}},
	})
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
	if !slices.Equal(collectKeys(tree), keyRange(5, 20)) {
		t.Fatalf("in-order keys mismatch: %v", collectKeys(tree))
	}
}

func TestDeleteDemonstrationSequence(t *testing.T) {
	tree := twentyKeys(t)
	for _, k := range []int{1, 2, 3, 4} {
		tree.Delete(k)
	}
	// After the merges above, 6 lives in a leaf and is removed directly.
	loc, ok := tree.Search(6)
	if !ok || !loc.IsLeaf() {
		t.Fatalf("expected 6 in a leaf")
	}
	tree.Delete(6)
	// 11 sits in a minimal leaf, which has to borrow from its left sibling.
	borrows := tree.Stats().BorrowsLeft
	tree.Delete(11)
	if tree.Stats().BorrowsLeft != borrows+1 {
		t.Fatalf("expected a borrow from the left sibling, stats=%+v", tree.Stats())
	}
	assertShape(t, tree, [][][]int{
		{{8, 12, 15}},
		{{5, 7}, {9, 10}, {13, 14}, {16, 17, 18, 19, 20}},
	})
	for _, k := range []int{1, 2, 3, 4, 6, 11} {
		if tree.Contains(k) {
			t.Fatalf("deleted key %d still present", k)
		}
	}
	if tree.Len() != 14 {
		t.Fatalf("expected 14 keys, have %d", tree.Len())
	}
}

func TestDeleteInternalKeyByMerge(t *testing.T) {
	tree := twentyKeys(t)
	// 9 is the root key; both of its children are minimal.
	if !tree.Delete(9) {
		t.Fatalf("expected 9 to be deleted")
	}
	st := tree.Stats()
	if st.Merges != 2 || st.PredecessorSwaps != 0 || st.SuccessorSwaps != 0 {
		t.Fatalf("expected two merges and no key replacement, got %+v", st)
	}
	assertShape(t, tree, [][][]int{
		{{3, 6, 12, 15}},
		{{1, 2}, {4, 5}, {7, 8, 10, 11}, {13, 14}, {16, 17, 18, 19, 20}},
	})
}

func TestDeleteInternalKeyBySuccessor(t *testing.T) {
	tree := twentyKeys(t)
	// After merging the root's children, 15 is internal with a minimal left
	// child and a rich right child.
	if !tree.Delete(15) {
		t.Fatalf("expected 15 to be deleted")
	}
	if tree.Stats().SuccessorSwaps != 1 {
		t.Fatalf("expected successor replacement, got %+v", tree.Stats())
	}
	assertShape(t, tree, [][][]int{
		{{3, 6, 9, 12, 16}},
		{{1, 2}, {4, 5}, {7, 8}, {10, 11}, {13, 14}, {17, 18, 19, 20}},
	})
}

func TestDeleteInternalKeyByPredecessor(t *testing.T) {
	tree := twentyKeys(t)
	for _, k := range []int{1, 2, 3, 4, 6, 11} {
		tree.Delete(k)
	}
	tree.Insert(11) // left child of 12 becomes [9 10 11]
	loc, ok := tree.Search(12)
	if !ok || loc.IsLeaf() {
		t.Fatalf("expected 12 in an internal node")
	}
	if !tree.Delete(12) {
		t.Fatalf("expected 12 to be deleted")
	}
	if tree.Stats().PredecessorSwaps != 1 {
		t.Fatalf("expected predecessor replacement, got %+v", tree.Stats())
	}
	assertShape(t, tree, [][][]int{
		{{8, 11, 15}},
		{{5, 7}, {9, 10}, {13, 14}, {16, 17, 18, 19, 20}},
	})
}

func TestDeleteBorrowFromRightAndMergeLeft(t *testing.T) {
	tree := twentyKeys(t)
	for _, k := range []int{1, 2, 3, 4, 6, 11} {
		tree.Delete(k)
	}
	tree.Delete(14) // [13 14] borrows 15 from the parent, 16 rises
	if tree.Stats().BorrowsRight != 1 {
		t.Fatalf("expected a borrow from the right sibling, got %+v", tree.Stats())
	}
	assertShape(t, tree, [][][]int{
		{{8, 12, 16}},
		{{5, 7}, {9, 10}, {13, 15}, {17, 18, 19, 20}},
	})
	tree.Delete(17)
	tree.Delete(18)
	merges := tree.Stats().Merges
	tree.Delete(20) // rightmost child [19 20] merges into its left sibling
	if tree.Stats().Merges != merges+1 {
		t.Fatalf("expected a merge with the left sibling, got %+v", tree.Stats())
	}
	assertShape(t, tree, [][][]int{
		{{8, 12}},
		{{5, 7}, {9, 10}, {13, 15, 16, 19}},
	})
}
