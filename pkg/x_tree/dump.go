package x_tree

import (
	"fmt"
	"io"
	"strings"
)

//---------------------
// Tree Dump (Debug)
//---------------------

// Dump writes an indented representation of the tree to w.
func (t *Tree) Dump(w io.Writer) {
	if t.root == nil {
		fmt.Fprintln(w, "EMPTY")
		return
	}
	fmt.Fprintf(w, "%s ROOT: %d\n", dumpPre(0), t.root.Value)
	dump(w, t.root, 1)
}

// dump writes the children of n (recursive).
func dump(w io.Writer, n *Node, depth int) {
	for _, s := range []side{sideLeft, sideRight} {
		c := s.child(n)
		if c == nil {
			continue
		}
		fmt.Fprintf(w, "%s %s: %d\n", dumpPre(depth), s, c.Value)
		dump(w, c, depth+1)
	}
}

//---------------------
// Indentation Helper
//---------------------

func dumpPre(depth int) string {
	if depth == 0 {
		return "--"
	}
	return strings.Repeat("  ", depth) + "|__"
}
