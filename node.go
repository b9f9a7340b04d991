package btree

import (
	"cmp"
	"slices"
)

// node is a single B-tree node. Leaves have nil children; an internal node
// always has exactly len(keys)+1 children.
type node[K cmp.Ordered] struct {
	leaf     bool
	keys     []K
	children []*node[K]
}

func newLeaf[K cmp.Ordered]() *node[K] {
	return &node[K]{leaf: true}
}

func newInner[K cmp.Ordered]() *node[K] {
	return &node[K]{}
}

func (n *node[K]) isFull(cfg Config) bool {
	return len(n.keys) == cfg.maxKeys()
}

// isDeficient reports whether n holds the minimum number of keys and cannot
// give one up without dropping below t-1.
func (n *node[K]) isDeficient(cfg Config) bool {
	return len(n.keys) <= cfg.minKeys()
}

// canLend reports whether n can give a key to a sibling or to a parent.
func (n *node[K]) canLend(cfg Config) bool {
	return len(n.keys) >= cfg.Degree
}

// find returns the index of the first key >= key, and whether that key is
// equal to key. The index doubles as the child slot to descend into.
func (n *node[K]) find(key K) (int, bool) {
	return slices.BinarySearch(n.keys, key)
}

func (n *node[K]) insertKeyAt(idx int, key K) {
	assert(idx >= 0 && idx <= len(n.keys), "insertKeyAt index out of range")
	n.keys = slices.Insert(n.keys, idx, key)
}

func (n *node[K]) removeKeyAt(idx int) K {
	assert(idx >= 0 && idx < len(n.keys), "removeKeyAt index out of range")
	key := n.keys[idx]
	n.keys = slices.Delete(n.keys, idx, idx+1)
	return key
}

func (n *node[K]) popKey() K {
	return n.removeKeyAt(len(n.keys) - 1)
}

func (n *node[K]) insertChildAt(idx int, child *node[K]) {
	assert(!n.leaf, "insertChildAt called on leaf")
	assert(idx >= 0 && idx <= len(n.children), "insertChildAt index out of range")
	n.children = slices.Insert(n.children, idx, child)
}

func (n *node[K]) removeChildAt(idx int) *node[K] {
	assert(!n.leaf, "removeChildAt called on leaf")
	assert(idx >= 0 && idx < len(n.children), "removeChildAt index out of range")
	child := n.children[idx]
	n.children = slices.Delete(n.children, idx, idx+1)
	return child
}

func (n *node[K]) popChild() *node[K] {
	return n.removeChildAt(len(n.children) - 1)
}

// rightmostKey descends along the right spine of n and returns the largest
// key of the subtree.
func (n *node[K]) rightmostKey() K {
	for !n.leaf {
		n = n.children[len(n.children)-1]
	}
	assert(len(n.keys) > 0, "rightmostKey reached an empty leaf")
	return n.keys[len(n.keys)-1]
}

// leftmostKey descends along the left spine of n and returns the smallest
// key of the subtree.
func (n *node[K]) leftmostKey() K {
	for !n.leaf {
		n = n.children[0]
	}
	assert(len(n.keys) > 0, "leftmostKey reached an empty leaf")
	return n.keys[0]
}
