/*
Package inspect renders the structure of a B-tree for debugging.

It works purely on the diagnostic traversal of package btree and never
touches tree nodes directly. Outline produces an indented, optionally
colored text listing; Dot produces Graphviz input.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package inspect

import (
	"github.com/npillmayer/btree"
)

// Traversable is implemented by *btree.Tree.
type Traversable[K any] interface {
	Traverse(fn func(btree.NodeInfo[K]) bool)
}
