package inspect

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/btree"
)

// Dot outputs the node structure of a tree in Graphviz DOT format.
//
// Nodes are numbered in traversal order, starting with 1 for the root.
// Edges are reconstructed from node depths: the parent of a node is the
// most recently visited node one level above it.
func Dot[K any](w io.Writer, tree Traversable[K]) error {
	var nodelist, edgelist strings.Builder
	var path []int // IDs of the nodes on the path from the root
	id := 0
	tree.Traverse(func(info btree.NodeInfo[K]) bool {
		id++
		path = append(path[:info.Depth], id)
		fmt.Fprintf(&nodelist, "\t\"%d\" [label=\"%s\"%s];\n", id, dotLabel(info.Keys), nodeDotStyles(info.IsLeaf))
		if info.Depth > 0 {
			fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\";\n", path[info.Depth-1], id)
		}
		return true
	})
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	b.WriteString(nodelist.String())
	b.WriteString(edgelist.String())
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func dotLabel[K any](keys []K) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strings.ReplaceAll(fmt.Sprint(k), `"`, `\"`)
	}
	return strings.Join(parts, " | ")
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=record"
	}
	return s
}
