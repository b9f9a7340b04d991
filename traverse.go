package btree

// NodeInfo describes a single node as seen by Traverse.
type NodeInfo[K any] struct {
	Depth  int  // distance from the root, which has depth 0
	Keys   []K  // copy of the node's keys
	IsLeaf bool // leaves have no children
}

// Traverse visits every node depth-first, a parent before its children and
// children from left to right. It stops early if fn returns false.
//
// Traverse is a read-only diagnostic view of the tree's shape, e.g. for
// printing or for structural tests.
func (t *Tree[K]) Traverse(fn func(NodeInfo[K]) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	t.traverseNode(t.root, 0, fn)
}

func (t *Tree[K]) traverseNode(n *node[K], depth int, fn func(NodeInfo[K]) bool) bool {
	info := NodeInfo[K]{
		Depth:  depth,
		Keys:   append([]K(nil), n.keys...),
		IsLeaf: n.leaf,
	}
	if !fn(info) {
		return false
	}
	for _, child := range n.children {
		if !t.traverseNode(child, depth+1, fn) {
			return false
		}
	}
	return true
}
