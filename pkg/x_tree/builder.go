package x_tree

import (
	"fmt"
)

//---------------------
// Validation
//---------------------

// Validate checks that totalNodes lies in [maxLevel+1, 2^(maxLevel+1)-1].
// Below the range maxLevel can never be reached; above it the tree cannot
// hold the nodes without exceeding maxLevel.
func Validate(maxLevel, totalNodes int) error {
	if maxLevel < 1 {
		return fmt.Errorf("%w: level %d < 1", ErrConfigViolation, maxLevel)
	}
	lo, hi := maxLevel+1, pow2(maxLevel+1)-1
	if totalNodes < lo || totalNodes > hi {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrConfigViolation, totalNodes, lo, hi)
	}
	return nil
}

//---------------------
// Build
//---------------------

// Build draws unique values from the configured range and inserts them until
// the tree holds TotalNodes nodes.
func (t *Tree) Build() error {
	span := t.valueMax - t.valueMin + 1
	need := t.TotalNodes - t.NodeCount
	if span <= 0 || need > span-len(t.picked) {
		return fmt.Errorf("%w: need %d more values, range [%d, %d] has %d left",
			ErrRangeExhausted, need, t.valueMin, t.valueMax, max(span-len(t.picked), 0))
	}

	for t.NodeCount < t.TotalNodes {
		v := t.valueMin + t.src.Intn(span)
		if t.Has(v) {
			continue
		}
		if err := t.Insert(v); err != nil {
			return err
		}
	}
	return nil
}

//---------------------
// Insert
//---------------------

// Insert places a new node holding value.
//
// While NodeCount <= MaxLevel the new node extends the existing chain, so
// the first MaxLevel+1 nodes always reach depth MaxLevel. After that the
// descent is random, and reaching depth MaxLevel restarts it at the root.
func (t *Tree) Insert(value int) error {
	if t.Has(value) {
		return fmt.Errorf("%w: %d", ErrDuplicateValue, value)
	}
	n := &Node{Value: value}

	if t.root == nil {
		t.root = n
		t.add(value)
		return nil
	}

	cur, level, restarts := t.root, 0, 0
	for {
		// chain phase: node count, not depth, decides
		if t.NodeCount <= t.MaxLevel {
			switch {
			case cur.isLeaf():
				t.place(cur, coinSide(t.src.Coin()), n)
				return nil
			case cur.Left != nil:
				cur = cur.Left
			default:
				cur = cur.Right
			}
			continue
		}

		if level == t.MaxLevel {
			if restarts == t.maxRestarts {
				return fmt.Errorf("%w: value %d after %d restarts", ErrPlacementExhausted, value, restarts)
			}
			restarts++
			cur, level = t.root, 0
			continue
		}

		switch {
		case cur.isLeaf():
			t.place(cur, coinSide(t.src.Coin()), n)
			return nil
		case cur.Left == nil:
			if t.fillOrDescend(&cur, sideLeft, n) {
				return nil
			}
		case cur.Right == nil:
			if t.fillOrDescend(&cur, sideRight, n) {
				return nil
			}
		default:
			cur = coinSide(t.src.Coin()).child(cur)
		}
		level++
	}
}

// fillOrDescend flips a coin: heads puts n into the free slot of *cur,
// tails moves *cur to the occupied child. It reports whether n was placed.
func (t *Tree) fillOrDescend(cur **Node, free side, n *Node) bool {
	if t.src.Coin() {
		t.place(*cur, free, n)
		return true
	}
	if free == sideLeft {
		*cur = (*cur).Right
	} else {
		*cur = (*cur).Left
	}
	return false
}

func (t *Tree) place(parent *Node, s side, n *Node) {
	s.attach(parent, n)
	t.add(n.Value)
}

func (t *Tree) add(value int) {
	t.picked[value] = struct{}{}
	t.NodeCount++
}
