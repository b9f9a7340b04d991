package inspect

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/btree"
	"golang.org/x/term"
)

// ColorMode selects whether Outline colors its output.
type ColorMode int

const (
	// ColorAuto colors output if the writer is a terminal.
	ColorAuto ColorMode = iota
	// ColorAlways colors output regardless of the writer.
	ColorAlways
	// ColorNever produces plain text.
	ColorNever
)

// Outline writes one line per node, indented by depth, parents before
// children:
//
//	Level 0 (Keys: 1, Leaf: false): [9]
//	  Level 1 (Keys: 2, Leaf: false): [3 6]
//	    Level 2 (Keys: 2, Leaf: true): [1 2]
//	…
//
// Leaf and inner node markers are colored if w is a terminal.
func Outline[K any](w io.Writer, tree Traversable[K]) error {
	return OutlineMode(w, tree, ColorAuto)
}

// OutlineMode is Outline with explicit control over coloring.
func OutlineMode[K any](w io.Writer, tree Traversable[K], mode ColorMode) error {
	inner := color.New(color.FgBlue, color.Bold)
	leaf := color.New(color.FgGreen)
	if useColor(w, mode) {
		inner.EnableColor()
		leaf.EnableColor()
	} else {
		inner.DisableColor()
		leaf.DisableColor()
	}
	var err error
	tree.Traverse(func(info btree.NodeInfo[K]) bool {
		marker := inner
		if info.IsLeaf {
			marker = leaf
		}
		header := marker.Sprintf("Level %d", info.Depth)
		_, err = fmt.Fprintf(w, "%s%s (Keys: %d, Leaf: %t): %v\n",
			strings.Repeat("  ", info.Depth), header, len(info.Keys), info.IsLeaf, info.Keys)
		return err == nil
	})
	return err
}

func useColor(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
