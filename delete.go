package btree

// Delete removes key from the tree and reports whether it was present.
// Deleting an absent key is a no-op.
//
// Deletion runs top-down: every child the descent is about to enter is
// first grown to at least t keys, by borrowing from a sibling or by merging
// with one. Hence removing a key from a leaf never leaves it with fewer
// than t-1 keys, and no repair pass back up the tree is needed.
func (t *Tree[K]) Delete(key K) bool {
	removed := t.deleteFrom(t.root, key)
	if removed {
		t.length--
	}
	t.demoteRoot()
	t.verify("delete")
	return removed
}

// deleteFrom removes key from the subtree rooted at n. Unless n is the root,
// the caller has made sure that n holds at least t keys.
func (t *Tree[K]) deleteFrom(n *node[K], key K) bool {
	i, found := n.find(key)
	if found {
		if n.leaf {
			n.removeKeyAt(i)
			return true
		}
		return t.deleteInternalKey(n, i)
	}
	if n.leaf {
		return false
	}
	if n.children[i].isDeficient(t.cfg) {
		t.growChild(n, i)
		// Keys of n have shifted; the key cannot have moved into n itself.
		i, found = n.find(key)
		assert(!found, "deleteFrom: key moved into parent during rebalancing")
	}
	return t.deleteFrom(n.children[i], key)
}

// deleteInternalKey removes n.keys[i] from internal node n.
//
// If one of the two adjacent children can spare a key, the key is replaced
// by its predecessor (or successor), which is then deleted from that child's
// subtree. Otherwise both children are merged around the key and deletion
// continues in the merged node.
func (t *Tree[K]) deleteInternalKey(n *node[K], i int) bool {
	left, right := n.children[i], n.children[i+1]
	switch {
	case left.canLend(t.cfg):
		pred := left.rightmostKey()
		tracer().Debugf("btree: replace %v by predecessor %v", n.keys[i], pred)
		n.keys[i] = pred
		t.stats.PredecessorSwaps++
		return t.deleteFrom(left, pred)
	case right.canLend(t.cfg):
		succ := right.leftmostKey()
		tracer().Debugf("btree: replace %v by successor %v", n.keys[i], succ)
		n.keys[i] = succ
		t.stats.SuccessorSwaps++
		return t.deleteFrom(right, succ)
	}
	key := n.keys[i]
	t.mergeChildren(n, i)
	return t.deleteFrom(left, key)
}

// growChild makes sure that the child at slot i of parent holds at least t
// keys. Preference order is borrow-left, borrow-right, merge-right,
// merge-left.
func (t *Tree[K]) growChild(parent *node[K], i int) {
	hasLeft := i > 0
	hasRight := i+1 < len(parent.children)
	switch {
	case hasLeft && parent.children[i-1].canLend(t.cfg):
		t.borrowFromLeft(parent, i)
	case hasRight && parent.children[i+1].canLend(t.cfg):
		t.borrowFromRight(parent, i)
	case hasRight:
		t.mergeChildren(parent, i)
	default:
		assert(hasLeft, "growChild: child has no siblings")
		t.mergeChildren(parent, i-1)
	}
}

// borrowFromLeft rotates the separator parent.keys[i-1] down to the front of
// child i and moves the last key of the left sibling up to replace it. For
// internal nodes the last child of the sibling moves across as well.
func (t *Tree[K]) borrowFromLeft(parent *node[K], i int) {
	child, sibling := parent.children[i], parent.children[i-1]
	child.insertKeyAt(0, parent.keys[i-1])
	parent.keys[i-1] = sibling.popKey()
	if !child.leaf {
		child.insertChildAt(0, sibling.popChild())
	}
	t.stats.BorrowsLeft++
	tracer().Debugf("btree: child %d borrowed from left sibling, separator now %v", i, parent.keys[i-1])
}

// borrowFromRight is the mirror image of borrowFromLeft.
func (t *Tree[K]) borrowFromRight(parent *node[K], i int) {
	child, sibling := parent.children[i], parent.children[i+1]
	child.keys = append(child.keys, parent.keys[i])
	parent.keys[i] = sibling.removeKeyAt(0)
	if !child.leaf {
		child.children = append(child.children, sibling.removeChildAt(0))
	}
	t.stats.BorrowsRight++
	tracer().Debugf("btree: child %d borrowed from right sibling, separator now %v", i, parent.keys[i])
}

// mergeChildren merges child i+1 and the separator parent.keys[i] into
// child i. The right child is unlinked from parent and dropped.
func (t *Tree[K]) mergeChildren(parent *node[K], i int) {
	left, right := parent.children[i], parent.children[i+1]
	assert(len(left.keys)+len(right.keys)+1 <= t.cfg.maxKeys(), "mergeChildren would overflow node")
	assert(left.leaf == right.leaf, "mergeChildren: siblings at different levels")
	sep := parent.removeKeyAt(i)
	left.keys = append(left.keys, sep)
	left.keys = append(left.keys, right.keys...)
	if !left.leaf {
		left.children = append(left.children, right.children...)
	}
	parent.removeChildAt(i + 1)
	t.stats.Merges++
	tracer().Debugf("btree: merged children %d and %d around %v", i, i+1, sep)
}
