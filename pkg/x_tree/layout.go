package x_tree

import (
	"github.com/rskv-p/bintree/constant"
)

//---------------------
// Levels
//---------------------

// Slot is a node's horizontal index within its depth. Slots follow the
// array layout of a complete binary tree: children of p are 2p and 2p+1.
type Slot struct {
	Pos   int
	Value int
}

// Levels holds the occupied slots of every depth, index 0 is the root row.
type Levels [][]Slot

// MaxDepth returns the deepest index, -1 when empty.
func (l Levels) MaxDepth() int { return len(l) - 1 }

// ComputeLayout collects (slot, value) pairs per depth in preorder.
func ComputeLayout(root *Node) Levels {
	var levels Levels
	var walk func(n *Node, depth, pos int)
	walk = func(n *Node, depth, pos int) {
		if n == nil {
			return
		}
		if depth == len(levels) {
			levels = append(levels, nil)
		}
		levels[depth] = append(levels[depth], Slot{Pos: pos, Value: n.Value})
		walk(n.Left, depth+1, pos*2)
		walk(n.Right, depth+1, pos*2+1)
	}
	walk(root, 0, 0)
	return levels
}

//---------------------
// Positions
//---------------------

// Cell is a placed node with the connectors drawn below it.
type Cell struct {
	Slot
	Column int
	Left   bool
	Right  bool
}

// Row is one depth of a Layout.
type Row struct {
	Depth int
	Cells []Cell
}

// Layout is the printable form of a tree.
type Layout struct {
	MaxDepth int
	Spacing  int
	Rows     []Row
}

// Spacing returns the width of the full bottom row for a tree of maxDepth.
func Spacing(maxDepth int) int {
	return pow2(maxDepth) * constant.NodeWidth
}

// Column returns the offset of slot pos at depth, centred within the span
// the slot's subtree would cover in a complete tree.
func Column(pos, depth, spacing int) int {
	return pos*spacing/pow2(depth) + spacing/pow2(depth+1)
}

// RenderPositions assigns columns and connector flags to levels.
func RenderPositions(levels Levels, maxDepth int) Layout {
	if len(levels) == 0 || maxDepth < 0 {
		return Layout{MaxDepth: -1}
	}
	spacing := Spacing(maxDepth)
	out := Layout{MaxDepth: maxDepth, Spacing: spacing, Rows: make([]Row, 0, maxDepth+1)}

	for d := 0; d <= maxDepth && d < len(levels); d++ {
		var below map[int]bool
		if d < maxDepth && d+1 < len(levels) {
			below = make(map[int]bool, len(levels[d+1]))
			for _, s := range levels[d+1] {
				below[s.Pos] = true
			}
		}

		row := Row{Depth: d, Cells: make([]Cell, len(levels[d]))}
		for i, s := range levels[d] {
			row.Cells[i] = Cell{
				Slot:   s,
				Column: Column(s.Pos, d, spacing),
				Left:   below[s.Pos*2],
				Right:  below[s.Pos*2+1],
			}
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// Layout computes the printable layout of the whole tree.
func (t *Tree) Layout() Layout {
	levels := ComputeLayout(t.root)
	return RenderPositions(levels, levels.MaxDepth())
}
