package btree

import (
	"cmp"
	"fmt"
)

// Tree is an ordered B-tree over keys of type K.
//
// The zero value is not usable; create trees with New or NewWithDegree.
type Tree[K cmp.Ordered] struct {
	cfg    Config
	root   *node[K]
	length int // number of keys
	height int // number of node levels, 1 for a leaf root
	stats  Stats
}

// New creates an empty tree with validated configuration.
func New[K cmp.Ordered](cfg Config) (*Tree[K], error) {
	if err := cfg.validate(); err != nil {
		tracer().Errorf("btree: %v", err)
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[K]{
		cfg:    cfg,
		root:   newLeaf[K](),
		height: 1,
	}, nil
}

// NewWithDegree creates an empty tree of minimum degree t.
func NewWithDegree[K cmp.Ordered](t int) (*Tree[K], error) {
	if t == 0 {
		return nil, fmt.Errorf("%w: degree must be >= %d, is 0", ErrInvalidConfig, MinDegree)
	}
	return New[K](Config{Degree: t})
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K]) Config() Config {
	return t.cfg
}

// Degree returns the minimum degree t of the tree.
func (t *Tree[K]) Degree() int {
	return t.cfg.Degree
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	if t == nil {
		return 0
	}
	return t.length
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t.Len() == 0
}

// Height returns the number of node levels, where a tree consisting of a
// single leaf root has height 1.
func (t *Tree[K]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Stats returns a snapshot of the rebalancing counters.
func (t *Tree[K]) Stats() Stats {
	return t.stats
}

// --- Root management -------------------------------------------------------

// promoteRoot grows the tree by one level. The current (full) root becomes
// the only child of a new root and is split immediately, so the new root
// holds exactly one key.
func (t *Tree[K]) promoteRoot() {
	assert(t.root.isFull(t.cfg), "promoteRoot called on non-full root")
	old := t.root
	t.root = newInner[K]()
	t.root.children = append(t.root.children, old)
	t.splitChild(t.root, 0)
	t.height++
	t.stats.RootGrowths++
	tracer().Debugf("btree: root promoted, height now %d", t.height)
}

// demoteRoot shrinks the tree by one level if the root ran out of keys.
// An empty leaf root stays in place and represents the empty tree.
func (t *Tree[K]) demoteRoot() {
	if len(t.root.keys) > 0 || t.root.leaf {
		return
	}
	assert(len(t.root.children) == 1, "empty internal root must have exactly one child")
	t.root = t.root.children[0]
	t.height--
	t.stats.RootShrinks++
	tracer().Debugf("btree: root demoted, height now %d", t.height)
}

// verify runs the invariant checker in paranoid mode.
func (t *Tree[K]) verify(op string) {
	if !t.cfg.Paranoid {
		return
	}
	if err := t.Check(); err != nil {
		panic(fmt.Errorf("after %s: %w", op, err))
	}
}
