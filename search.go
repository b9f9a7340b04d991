package btree

import "cmp"

// Location is a handle to a key inside the tree, as returned by Search.
//
// A Location is valid only as long as the tree is not modified; any Insert
// or Delete may move keys between nodes.
type Location[K cmp.Ordered] struct {
	node  *node[K]
	index int
}

// Key returns the key at the location.
func (loc Location[K]) Key() K {
	assert(loc.node != nil, "Key called on zero Location")
	return loc.node.keys[loc.index]
}

// Index returns the position of the key within its node.
func (loc Location[K]) Index() int {
	return loc.index
}

// IsLeaf reports whether the key lives in a leaf node.
func (loc Location[K]) IsLeaf() bool {
	return loc.node != nil && loc.node.leaf
}

// Keys returns a copy of all keys of the node holding the location.
func (loc Location[K]) Keys() []K {
	if loc.node == nil {
		return nil
	}
	return append([]K(nil), loc.node.keys...)
}

// Search looks up key. If the key is present, Search returns its location
// and true. Otherwise it returns a zero Location and false.
func (t *Tree[K]) Search(key K) (Location[K], bool) {
	if t == nil || t.root == nil {
		return Location[K]{}, false
	}
	return searchNode(t.root, key)
}

func searchNode[K cmp.Ordered](n *node[K], key K) (Location[K], bool) {
	i, found := n.find(key)
	if found {
		return Location[K]{node: n, index: i}, true
	}
	if n.leaf {
		return Location[K]{}, false
	}
	return searchNode(n.children[i], key)
}

// Contains reports whether key is present in the tree.
func (t *Tree[K]) Contains(key K) bool {
	_, ok := t.Search(key)
	return ok
}

// Min returns the smallest key of the tree, or false if the tree is empty.
func (t *Tree[K]) Min() (K, bool) {
	var zero K
	if t.IsEmpty() {
		return zero, false
	}
	return t.root.leftmostKey(), true
}

// Max returns the largest key of the tree, or false if the tree is empty.
func (t *Tree[K]) Max() (K, bool) {
	var zero K
	if t.IsEmpty() {
		return zero, false
	}
	return t.root.rightmostKey(), true
}
