package btree

import (
	"cmp"
	"fmt"
)

// Check validates the structural invariants of the tree:
//
//   - keys within each node are strictly increasing,
//   - every key of children[i] lies between keys[i-1] and keys[i],
//   - non-root nodes hold between t-1 and 2t-1 keys, the root at most 2t-1,
//   - internal nodes have exactly len(keys)+1 children,
//   - all leaves are at the same depth,
//   - the cached length and height match the actual tree.
//
// A non-nil error wraps ErrInvariantViolation and always indicates a bug.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		return fmt.Errorf("%w: tree has no root", ErrInvariantViolation)
	}
	if !t.root.leaf && len(t.root.keys) == 0 {
		return fmt.Errorf("%w: internal root without keys", ErrInvariantViolation)
	}
	count, height, err := t.checkNode(t.root, true, bounds[K]{})
	if err != nil {
		return err
	}
	if height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvariantViolation, height, t.height)
	}
	if count != t.length {
		return fmt.Errorf("%w: length mismatch (%d != %d)", ErrInvariantViolation, count, t.length)
	}
	return nil
}

// bounds holds the open key interval a subtree has to respect.
type bounds[K cmp.Ordered] struct {
	lower, upper       K
	hasLower, hasUpper bool
}

func (b bounds[K]) contains(key K) bool {
	return (!b.hasLower || key > b.lower) && (!b.hasUpper || key < b.upper)
}

func (b bounds[K]) child(n *node[K], i int) bounds[K] {
	c := b
	if i > 0 {
		c.lower, c.hasLower = n.keys[i-1], true
	}
	if i < len(n.keys) {
		c.upper, c.hasUpper = n.keys[i], true
	}
	return c
}

func (t *Tree[K]) checkNode(n *node[K], isRoot bool, b bounds[K]) (keys int, height int, err error) {
	if n == nil {
		return 0, 0, fmt.Errorf("%w: nil node", ErrInvariantViolation)
	}
	if len(n.keys) > t.cfg.maxKeys() {
		return 0, 0, fmt.Errorf("%w: node holds %d keys, max is %d",
			ErrInvariantViolation, len(n.keys), t.cfg.maxKeys())
	}
	if !isRoot && len(n.keys) < t.cfg.minKeys() {
		return 0, 0, fmt.Errorf("%w: node holds %d keys, min is %d",
			ErrInvariantViolation, len(n.keys), t.cfg.minKeys())
	}
	for i, key := range n.keys {
		if i > 0 && !(n.keys[i-1] < key) {
			return 0, 0, fmt.Errorf("%w: keys not strictly increasing at index %d (%v, %v)",
				ErrInvariantViolation, i, n.keys[i-1], key)
		}
		if !b.contains(key) {
			return 0, 0, fmt.Errorf("%w: key %v out of subtree range", ErrInvariantViolation, key)
		}
	}
	if n.leaf {
		if len(n.children) != 0 {
			return 0, 0, fmt.Errorf("%w: leaf has %d children", ErrInvariantViolation, len(n.children))
		}
		return len(n.keys), 1, nil
	}
	if len(n.children) != len(n.keys)+1 {
		return 0, 0, fmt.Errorf("%w: internal node has %d keys but %d children",
			ErrInvariantViolation, len(n.keys), len(n.children))
	}
	total := len(n.keys)
	var childHeight int
	for i, child := range n.children {
		cKeys, cHeight, cErr := t.checkNode(child, false, b.child(n, i))
		if cErr != nil {
			return 0, 0, cErr
		}
		total += cKeys
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, 0, fmt.Errorf("%w: leaves at different depths", ErrInvariantViolation)
		}
	}
	return total, childHeight + 1, nil
}
