/*
Package btree implements an ordered, in-memory B-tree of configurable minimum
degree.

B-trees

A B-tree of minimum degree t keeps between t-1 and 2t-1 keys in every node
except the root, and all leaves sit at the same depth. Search, insertion and
deletion therefore touch O(log n) nodes. This package is meant to serve as the
indexing core of a storage layer: it stores keys only, in strict ascending
order, and does not support duplicates.

All mutating operations run in a single top-down pass. Before descending into
a child, insertion splits it if it is full and deletion grows it if it holds
only t-1 keys. No operation ever walks back up the tree to repair it.

From Cormen, Leiserson, Rivest and Stein, Introduction to Algorithms, ch. 18:

A B-tree T is a rooted tree having the following properties: […] Every node
other than the root must have at least t-1 keys. […] Every node may contain at
most 2t-1 keys. […] All leaves have the same depth, which is the tree's height h.

Usage

	tree, err := btree.New[int](btree.Config{Degree: 3})
	if err != nil {
		…
	}
	for k := 1; k <= 20; k++ {
		tree.Insert(k)
	}
	if loc, ok := tree.Search(13); ok {
		fmt.Println(loc.Key())
	}
	tree.Delete(6)

A Tree is not safe for concurrent use. Clients sharing a tree between
goroutines have to guard every call with a lock of their own.

Tracing

The package traces structural changes (splits, borrows, merges, root changes)
to the tracer selected by key 'btree'.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package btree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'btree'.
func tracer() tracing.Trace {
	return tracing.Select("btree")
}

// assert panics if condition does not hold. A failing assertion always
// indicates a bug in the tree algorithms, never an input error.
func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
