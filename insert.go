package btree

// Insert adds key to the tree. It returns false, leaving the set of keys
// unchanged, if key is already present.
//
// Full nodes on the path from the root to the target leaf are split before
// the descent enters them. A full root is split first, which is the only
// way the tree grows in height.
func (t *Tree[K]) Insert(key K) bool {
	if t.root.isFull(t.cfg) {
		t.promoteRoot()
	}
	inserted := t.insertNonFull(t.root, key)
	if inserted {
		t.length++
	}
	t.verify("insert")
	return inserted
}

// insertNonFull inserts key into the subtree rooted at n. n must not be full.
func (t *Tree[K]) insertNonFull(n *node[K], key K) bool {
	assert(!n.isFull(t.cfg), "insertNonFull called on full node")
	i, found := n.find(key)
	if found {
		return false
	}
	if n.leaf {
		n.insertKeyAt(i, key)
		return true
	}
	if n.children[i].isFull(t.cfg) {
		t.splitChild(n, i)
		// The median of the split child is now n.keys[i]; we may have to
		// change direction.
		switch {
		case key == n.keys[i]:
			return false
		case key > n.keys[i]:
			i++
		}
	}
	return t.insertNonFull(n.children[i], key)
}

// splitChild splits the full child at slot i of parent.
//
// With t the minimum degree, the child holds 2t-1 keys. Keys [0,t-2] stay in
// the child, key t-1 (the median) moves up into parent at position i, and
// keys [t,2t-2] move to a new right sibling, which is linked into parent at
// slot i+1. Children of an internal node are divided likewise: [0,t-1] stay,
// [t,2t-1] move.
func (t *Tree[K]) splitChild(parent *node[K], i int) {
	assert(!parent.leaf, "splitChild called with leaf parent")
	assert(!parent.isFull(t.cfg), "splitChild called with full parent")
	child := parent.children[i]
	assert(child.isFull(t.cfg), "splitChild called for non-full child")

	deg := t.cfg.Degree
	median := child.keys[deg-1]
	sibling := &node[K]{leaf: child.leaf}
	sibling.keys = append(sibling.keys, child.keys[deg:]...)
	clear(child.keys[deg-1:])
	child.keys = child.keys[:deg-1]
	if !child.leaf {
		sibling.children = append(sibling.children, child.children[deg:]...)
		clear(child.children[deg:])
		child.children = child.children[:deg]
	}
	parent.insertKeyAt(i, median)
	parent.insertChildAt(i+1, sibling)
	t.stats.Splits++
	tracer().Debugf("btree: split node at slot %d, median %v", i, median)
}
