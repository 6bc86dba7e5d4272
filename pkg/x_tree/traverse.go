package x_tree

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/rskv-p/bintree/constant"
)

// Traversal selects the order in which node values are emitted.
type Traversal int

const (
	Preorder Traversal = iota + 1
	Inorder
	Postorder
)

var traversalNames = map[Traversal]string{
	Preorder:  constant.TraversalPreorder,
	Inorder:   constant.TraversalInorder,
	Postorder: constant.TraversalPostorder,
}

// Traversals lists the supported orders.
func Traversals() []Traversal {
	return []Traversal{Preorder, Inorder, Postorder}
}

func (k Traversal) String() string {
	if name, ok := traversalNames[k]; ok {
		return name
	}
	return fmt.Sprintf("traversal(%d)", int(k))
}

// Valid reports whether k is one of the supported orders.
func (k Traversal) Valid() bool {
	_, ok := traversalNames[k]
	return ok
}

// ParseTraversal maps "preorder", "inorder" or "postorder" to a Traversal.
func ParseTraversal(s string) (Traversal, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range traversalNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidTraversalKind, s)
}

//---------------------
// Walk
//---------------------

// Walk returns the values below root in the given order. The sequence is
// lazy and may be ranged over any number of times.
func Walk(root *Node, kind Traversal) (iter.Seq[int], error) {
	var visit func(*Node, func(int) bool) bool
	switch kind {
	case Preorder:
		visit = preorder
	case Inorder:
		visit = inorder
	case Postorder:
		visit = postorder
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidTraversalKind, kind)
	}
	return func(yield func(int) bool) {
		visit(root, yield)
	}, nil
}

// Traverse walks the tree in its own traversal order.
func (t *Tree) Traverse() (iter.Seq[int], error) {
	return Walk(t.root, t.Kind)
}

// Values collects the tree's values in the given order.
func (t *Tree) Values(kind Traversal) ([]int, error) {
	seq, err := Walk(t.root, kind)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

func preorder(n *Node, yield func(int) bool) bool {
	if n == nil {
		return true
	}
	return yield(n.Value) && preorder(n.Left, yield) && preorder(n.Right, yield)
}

func inorder(n *Node, yield func(int) bool) bool {
	if n == nil {
		return true
	}
	return inorder(n.Left, yield) && yield(n.Value) && inorder(n.Right, yield)
}

func postorder(n *Node, yield func(int) bool) bool {
	if n == nil {
		return true
	}
	return postorder(n.Left, yield) && postorder(n.Right, yield) && yield(n.Value)
}
