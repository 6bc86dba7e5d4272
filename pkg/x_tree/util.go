package x_tree

//---------------------
// Side Selector
//---------------------

type side uint8

const (
	sideLeft side = iota
	sideRight
)

// child returns the child of n on side s.
func (s side) child(n *Node) *Node {
	if s == sideLeft {
		return n.Left
	}
	return n.Right
}

// attach stores c as the child of n on side s.
func (s side) attach(n, c *Node) {
	if s == sideLeft {
		n.Left = c
		return
	}
	n.Right = c
}

func (s side) String() string {
	if s == sideLeft {
		return "L"
	}
	return "R"
}

// coinSide maps a coin flip to a side, heads is left.
func coinSide(heads bool) side {
	if heads {
		return sideLeft
	}
	return sideRight
}

//---------------------
// Utilities
//---------------------

// pow2 returns 2^n for n >= 0.
func pow2(n int) int {
	return 1 << n
}
