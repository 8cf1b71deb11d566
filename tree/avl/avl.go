// Package avl implements a self-balancing binary search tree.
package avl

import (
	"context"
	"fmt"

	"go.lepak.sg/forest/chops"
	"go.lepak.sg/forest/item"
	"go.lepak.sg/forest/tree"
	"go.lepak.sg/forest/tree/iterator"
)

// Stat is the per-node state kept by the AVL tree.
// Height is cached so that rebalancing never walks a subtree.
type Stat struct {
	// Balance is the height of the left subtree minus the height of the
	// right subtree. It is always -1, 0 or 1 between operations.
	Balance int
	Height  int
}

// AVL is a self-balancing binary search tree. After every Insert or
// Remove, the heights of the two subtrees of any node differ by at most
// one, which keeps the height of the tree within about 1.44*log2(n+2).
//
// The zero AVL may be used immediately. It is not safe for concurrent
// reads and writes.
//
// Items are unique: inserting an item equal to one already in the tree
// does nothing.
type AVL[T tree.Comparable[T]] struct {
	root    *tree.Node[T, Stat]
	count   int
	factory item.Factory[T]
}

// Option configures an AVL.
type Option[T tree.Comparable[T]] func(*AVL[T])

// WithFactory sets the factory used by InsertValue and RemoveValue
// to turn raw values into items.
func WithFactory[T tree.Comparable[T]](f item.Factory[T]) Option[T] {
	return func(t *AVL[T]) {
		t.factory = f
	}
}

func New[T tree.Comparable[T]](opts ...Option[T]) *AVL[T] {
	t := &AVL[T]{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// result tells the caller of insertAt what happened to the subtree.
type result int

const (
	// the subtree kept its height
	unchanged result = iota
	// the subtree is one taller
	grew
	// the subtree was rotated back to its height before the insert
	rotated
	// the item was already there
	duplicate
)

func height[T any](n *tree.Node[T, Stat]) int {
	if n == nil {
		return -1
	}
	return n.Extra.Height
}

func update[T any](n *tree.Node[T, Stat]) {
	l, r := height(n.Left()), height(n.Right())
	n.Extra.Balance = l - r
	n.Extra.Height = max(l, r) + 1
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// rebalance restores the balance of n, whose children are balanced,
// and returns the new root of the subtree.
func rebalance[T any](n *tree.Node[T, Stat]) *tree.Node[T, Stat] {
	switch b := n.Extra.Balance; {
	case b > 1:
		if n.Left().Extra.Balance < 0 {
			// left-right
			l := n.Left().RotateLeft()
			update(l.Left())
			update(l)
		}
		p := n.RotateRight()
		update(n)
		update(p)
		return p
	case b < -1:
		if n.Right().Extra.Balance > 0 {
			// right-left
			r := n.Right().RotateRight()
			update(r.Right())
			update(r)
		}
		p := n.RotateLeft()
		update(n)
		update(p)
		return p
	default:
		return n
	}
}

// Search returns the node holding an item equal to k, or nil.
func (t *AVL[T]) Search(k T) *tree.Node[T, Stat] {
	n := t.root

	for n != nil {
		switch tree.CompareItems(k, n.Item()) {
		case tree.Less:
			n = n.Left()
		case tree.Greater:
			n = n.Right()
		case tree.Equal:
			return n
		default:
			panic("unreachable")
		}
	}

	return nil
}

// Contains searches for k in the tree and returns true if it was found.
func (t *AVL[T]) Contains(k T) bool {
	return t.Search(k) != nil
}

// Insert inserts k into the tree and rebalances it.
// If an equal item is already in the tree, nothing changes.
func (t *AVL[T]) Insert(k T) *AVL[T] {
	root, res := t.insertAt(t.root, k)
	t.root = root
	if res != duplicate {
		t.count++
	}
	return t
}

func (t *AVL[T]) insertAt(n *tree.Node[T, Stat], k T) (*tree.Node[T, Stat], result) {
	if n == nil {
		return tree.NodeOf(k, Stat{}), grew
	}

	var res result
	switch tree.CompareItems(k, n.Item()) {
	case tree.Equal:
		return n, duplicate
	case tree.Less:
		var c *tree.Node[T, Stat]
		c, res = t.insertAt(n.Left(), k)
		n.SetLeft(c)
	case tree.Greater:
		var c *tree.Node[T, Stat]
		c, res = t.insertAt(n.Right(), k)
		n.SetRight(c)
	default:
		panic("unreachable")
	}

	switch res {
	case duplicate:
		return n, duplicate
	case unchanged, rotated:
		return n, unchanged
	}

	h := n.Extra.Height
	update(n)
	if abs(n.Extra.Balance) > 1 {
		return rebalance(n), rotated
	}
	if n.Extra.Height == h {
		return n, unchanged
	}
	return n, grew
}

// Remove removes the item equal to k from the tree and rebalances it.
// If there is no such item, the tree is left as it is.
//
// A node with two children is replaced by its in-order successor node,
// which is moved, not copied, so nodes held by the caller keep their item.
func (t *AVL[T]) Remove(k T) *AVL[T] {
	n := t.Search(k)
	if n == nil {
		return t
	}

	// lowest node whose subtree changed
	var start *tree.Node[T, Stat]

	if n.Left() == nil || n.Right() == nil {
		child := n.Left()
		if child == nil {
			child = n.Right()
		}

		start = n.Parent()
		n.Replace(child)
		if t.root == n {
			t.root = child
		}
	} else {
		s := n.Right().Min()
		if s.Parent() == n {
			start = s
		} else {
			start = s.Parent()
			s.Replace(s.Right())
			s.SetRight(n.Right())
		}
		s.SetLeft(n.Left())

		n.Replace(s)
		if t.root == n {
			t.root = s
		}
	}

	n.Extra = Stat{}
	t.count--
	t.retrace(start)

	return t
}

// retrace walks from n to the root, updating every node and rotating
// every node that went out of balance.
func (t *AVL[T]) retrace(n *tree.Node[T, Stat]) {
	for n != nil {
		update(n)
		if abs(n.Extra.Balance) > 1 {
			n = rebalance(n)
		}
		if n.Parent() == nil {
			t.root = n
		}
		n = n.Parent()
	}
}

// InsertValue converts raw into an item, using it as is if it already
// is a T and the tree's factory otherwise, and inserts it.
// On error the tree is not changed.
func (t *AVL[T]) InsertValue(raw any) (*AVL[T], error) {
	k, err := item.From(t.factory, raw)
	if err != nil {
		return t, fmt.Errorf("insert %v: %w", raw, err)
	}
	return t.Insert(k), nil
}

// RemoveValue is like InsertValue, but for Remove.
func (t *AVL[T]) RemoveValue(raw any) (*AVL[T], error) {
	k, err := item.From(t.factory, raw)
	if err != nil {
		return t, fmt.Errorf("remove %v: %w", raw, err)
	}
	return t.Remove(k), nil
}

func (t *AVL[T]) Count() int {
	return t.count
}

func (t *AVL[T]) IsEmpty() bool {
	return t.root == nil
}

// Height returns the height of the tree, which is -1 if the tree is empty.
// It does not walk the tree.
func (t *AVL[T]) Height() int {
	return height(t.root)
}

// IdealHeight returns the height of a complete tree with as many items
// as this tree. Height is never more than about 1.44 times this.
func (t *AVL[T]) IdealHeight() int {
	return tree.IdealHeight(t.count)
}

// Root returns the root node of the tree.
// The tree must not be modified through it.
func (t *AVL[T]) Root() *tree.Node[T, Stat] {
	return t.root
}

// Check verifies the structure of the tree, the cached Stat of every
// node and the count, and returns the first problem found.
func (t *AVL[T]) Check() error {
	if err := tree.CheckParents(t.root); err != nil {
		return err
	}
	if err := tree.CheckOrder(t.root, false); err != nil {
		return err
	}

	n, err := checkStats(t.root)
	if err != nil {
		return err
	}
	if n != t.count {
		return fmt.Errorf("count is %d but tree has %d items", t.count, n)
	}
	return nil
}

// checkStats returns the number of nodes under n.
func checkStats[T any](n *tree.Node[T, Stat]) (int, error) {
	if n == nil {
		return 0, nil
	}

	nl, err := checkStats(n.Left())
	if err != nil {
		return 0, err
	}
	nr, err := checkStats(n.Right())
	if err != nil {
		return 0, err
	}

	l, r := height(n.Left()), height(n.Right())
	switch {
	case n.Extra.Height != max(l, r)+1:
		return 0, fmt.Errorf("node %v: cached height %d, actual %d",
			n.Item(), n.Extra.Height, max(l, r)+1)
	case n.Extra.Balance != l-r:
		return 0, fmt.Errorf("node %v: cached balance %d, actual %d",
			n.Item(), n.Extra.Balance, l-r)
	case abs(l-r) > 1:
		return 0, fmt.Errorf("node %v is unbalanced: left height %d, right height %d",
			n.Item(), l, r)
	}

	return nl + nr + 1, nil
}

// ToSlice returns all items of the tree in the given order.
func (t *AVL[T]) ToSlice(order tree.Traversal) []T {
	out := make([]T, 0, t.count)
	t.Walk(order, func(k T) bool {
		out = append(out, k)
		return true
	})
	return out
}

// Iterator returns an iterator visiting the tree in the given order.
func (t *AVL[T]) Iterator(order tree.Traversal) iterator.Iterator[T] {
	return iterator.New(order, t.root)
}

// InOrderIterator returns an in-order iterator that does not use the
// parent pointers. The height of an AVL tree is known, so the
// iterator's stack never grows.
func (t *AVL[T]) InOrderIterator() *iterator.InOrderStack[T, Stat] {
	return iterator.NewInOrderStack(t.root, t.Height())
}

// Walk applies f to each item in the tree in the given order.
// If f returns false, the iteration is stopped early.
func (t *AVL[T]) Walk(order tree.Traversal, f func(k T) bool) {
	i := t.Iterator(order)
	for i.Next() {
		if !f(i.Item()) {
			return
		}
	}
}

// Coroutine starts coroutine-style iteration in the given order.
// See chops.CoIterate.
func (t *AVL[T]) Coroutine(ctx context.Context, order tree.Traversal) chops.CoIterator[T] {
	return chops.CoIterate[T](ctx, t.Iterator(order))
}

func (t *AVL[T]) String() string {
	return t.root.String()
}
