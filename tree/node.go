package tree

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Comparable is the contract for items stored in a tree.
// CompareTo returns a negative number, zero or a positive number
// when the receiver is less than, equal to or greater than the argument.
// Two items are equal when CompareTo returns zero.
//
// Items must not change their ordering while they are in a tree.
// For example if we defined:
//
//	type IntPtr *int
//
// and then implemented:
//
//	func (ip IntPtr) CompareTo(ip2 IntPtr) int {
//		return (*ip2)-(*ip)
//	}
//
// client code could mutate *IntPtr at any time, ruining our tree invariants.
type Comparable[T any] interface {
	CompareTo(T) int
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func (o Order) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "<invalid tree.Order>"
	}
}

func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}

// CompareItems is Compare for Comparable items.
// It normalises the result of l.CompareTo(r) to an Order.
func CompareItems[T Comparable[T]](l, r T) Order {
	c := l.CompareTo(r)
	if c < 0 {
		return Less
	} else if c > 0 {
		return Greater
	} else {
		return Equal
	}
}

// Node is a node of a binary tree.
// X is extra per-node state owned by the tree implementation,
// for example the balance factor of an AVL tree.
//
// A Node owns its children. The parent link is a back-reference only.
// SetLeft, SetRight and Replace keep both directions in sync, so client
// code should never need to (and must not) link nodes any other way.
type Node[T any, X any] struct {
	item                T
	left, right, parent *Node[T, X]

	Extra X
}

func NodeOf[T any, X any](item T, extra X) *Node[T, X] {
	return &Node[T, X]{
		item:  item,
		Extra: extra,
	}
}

// BasicNodeOf returns a node without extra state.
func BasicNodeOf[T any](item T) *Node[T, struct{}] {
	return &Node[T, struct{}]{
		item: item,
	}
}

func (n *Node[T, _]) Item() T {
	return n.item
}

func (n *Node[T, X]) Left() *Node[T, X] {
	return n.left
}

func (n *Node[T, X]) Right() *Node[T, X] {
	return n.right
}

func (n *Node[T, X]) Parent() *Node[T, X] {
	return n.parent
}

// SetLeft makes c the left child of n.
// The previous left child, if any, is detached from n.
// c is detached from wherever it was before.
// c may be nil, which clears the slot.
func (n *Node[T, X]) SetLeft(c *Node[T, X]) {
	n.setChild(&n.left, c)
}

// SetRight makes c the right child of n. See SetLeft.
func (n *Node[T, X]) SetRight(c *Node[T, X]) {
	n.setChild(&n.right, c)
}

func (n *Node[T, X]) setChild(slot **Node[T, X], c *Node[T, X]) {
	old := *slot
	if old == c {
		if c != nil {
			c.parent = n
		}
		return
	}

	if old != nil && old.parent == n {
		old.parent = nil
	}

	if c != nil {
		c.detach()
		c.parent = n
	}

	*slot = c
}

// detach removes n from its parent's child slot.
func (n *Node[T, X]) detach() {
	p := n.parent
	if p == nil {
		return
	}

	if p.left == n {
		p.left = nil
	} else if p.right == n {
		p.right = nil
	}

	n.parent = nil
}

// Replace puts r in the place n occupies under n's parent, and
// leaves n without a parent. If n is a root, r becomes a root.
// r may be nil, and it may be a descendant of n.
// The caller is responsible for the tree's own root reference.
func (n *Node[T, X]) Replace(r *Node[T, X]) {
	p := n.parent
	if p == nil {
		if r != nil {
			r.detach()
		}
		return
	}

	if p.left == n {
		p.SetLeft(r)
	} else if p.right == n {
		p.SetRight(r)
	} else {
		panic("parent does not own node")
	}
}

// Children returns the present children of n, left first.
func (n *Node[T, X]) Children() []*Node[T, X] {
	out := make([]*Node[T, X], 0, 2)
	if n.left != nil {
		out = append(out, n.left)
	}
	if n.right != nil {
		out = append(out, n.right)
	}
	return out
}

// Height returns the number of edges on the longest path from n down to
// a leaf. A leaf has height 0 and a nil node has height -1.
// This walks the whole subtree.
func (n *Node[T, X]) Height() int {
	if n == nil {
		return -1
	}

	l, r := n.left.Height(), n.right.Height()
	if l > r {
		return l + 1
	}
	return r + 1
}

func (n *Node[T, X]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

func (n *Node[T, X]) IsRoot() bool {
	return n.parent == nil
}

func (n *Node[T, X]) IsChild() bool {
	return n.parent != nil
}

// Level returns the distance from n to the root. The root is at level 0.
func (n *Node[T, X]) Level() int {
	level := 0
	for p := n.parent; p != nil; p = p.parent {
		level++
	}
	return level
}

// Min returns the left-most node of the subtree rooted at n.
func (n *Node[T, X]) Min() *Node[T, X] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// Max returns the right-most node of the subtree rooted at n.
func (n *Node[T, X]) Max() *Node[T, X] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// IdealHeight returns the height of a complete tree with n nodes,
// the lowest height any tree with n nodes can have. It is -1 for n == 0.
func IdealHeight(n int) int {
	return bits.Len(uint(n)) - 1
}
