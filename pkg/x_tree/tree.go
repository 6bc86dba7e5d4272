// Package x_tree builds random binary trees under a depth-forcing placement
// policy and turns their shape into printable layout data.
package x_tree

import (
	"errors"

	"github.com/rskv-p/bintree/constant"
)

var (
	ErrInvalidTraversalKind = errors.New("x_tree: invalid traversal kind")
	ErrRangeExhausted       = errors.New("x_tree: value range exhausted")
	ErrConfigViolation      = errors.New("x_tree: node count outside allowed range")
	ErrDuplicateValue       = errors.New("x_tree: value already in tree")
	ErrPlacementExhausted   = errors.New("x_tree: placement restarts exhausted")
)

//---------------------
// Node
//---------------------

// Node owns at most two children. There are no parent links.
type Node struct {
	Value int
	Left  *Node
	Right *Node
}

func (n *Node) isLeaf() bool { return n.Left == nil && n.Right == nil }

//---------------------
// Tree
//---------------------

// Tree is populated once by Build and read-only afterwards.
type Tree struct {
	root *Node

	NodeCount  int
	MaxLevel   int
	TotalNodes int
	Kind       Traversal

	picked      map[int]struct{}
	src         Source
	valueMin    int
	valueMax    int
	maxRestarts int
}

// Option configures a Tree.
type Option func(*Tree)

// WithSource replaces the random source used for values and placement.
func WithSource(src Source) Option {
	return func(t *Tree) {
		if src != nil {
			t.src = src
		}
	}
}

// WithValueRange sets the inclusive range values are drawn from.
func WithValueRange(lo, hi int) Option {
	return func(t *Tree) {
		t.valueMin, t.valueMax = lo, hi
	}
}

// WithMaxRestarts bounds how often a single insertion may restart at the root.
func WithMaxRestarts(n int) Option {
	return func(t *Tree) {
		if n > 0 {
			t.maxRestarts = n
		}
	}
}

// New returns an empty tree. It fails with ErrInvalidTraversalKind when kind
// does not name a known traversal.
func New(maxLevel, totalNodes int, kind string, opts ...Option) (*Tree, error) {
	k, err := ParseTraversal(kind)
	if err != nil {
		return nil, err
	}

	t := &Tree{
		MaxLevel:    maxLevel,
		TotalNodes:  totalNodes,
		Kind:        k,
		picked:      make(map[int]struct{}, totalNodes),
		valueMin:    constant.DefaultValueMin,
		valueMax:    constant.DefaultValueMax,
		maxRestarts: constant.MaxRestarts,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.src == nil {
		t.src = NewSource(0)
	}
	return t, nil
}

// Root returns the root node, nil for an empty tree.
func (t *Tree) Root() *Node { return t.root }

// Has reports whether value is already used by a node.
func (t *Tree) Has(value int) bool {
	_, ok := t.picked[value]
	return ok
}

// Depth returns the depth of the deepest node, -1 for an empty tree.
func (t *Tree) Depth() int {
	return depth(t.root)
}

func depth(n *Node) int {
	if n == nil {
		return -1
	}
	return 1 + max(depth(n.Left), depth(n.Right))
}
