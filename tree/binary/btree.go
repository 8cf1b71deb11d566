package binary

import (
	"context"
	"fmt"

	"go.lepak.sg/forest/chops"
	"go.lepak.sg/forest/item"
	"go.lepak.sg/forest/tree"
	"go.lepak.sg/forest/tree/iterator"
)

// Tree is a binary search tree. It is safe for concurrent reads
// (searching, iterating, etc) but not for concurrent reads and writes
// (inserting, removing).
//
// The zero Tree may be used immediately. Tree should not be passed
// around as a value (ie. just use &Tree{} or New when creating one).
//
// This tree is not self-balancing. Inserting sorted items degenerates
// it into a list, so every operation walks the tree iteratively.
//
// Invariants:
//   - At any node N in the tree, all items in the subtree rooted at N.Left
//     compare less than or equal to N.Item
//   - At any node N in the tree, all items in the subtree rooted at N.Right
//     compare greater than N.Item
//   - Equal items are allowed. A later insert of an equal item ends up
//     in the left subtree of the earlier one.
type Tree[T tree.Comparable[T]] struct {
	// the tree is rooted here.
	// Root returns it for inspection only.
	root    *tree.Node[T, struct{}]
	count   int
	factory item.Factory[T]
}

// Option configures a Tree.
type Option[T tree.Comparable[T]] func(*Tree[T])

// WithFactory sets the factory used by InsertValue and RemoveValue
// to turn raw values into items.
func WithFactory[T tree.Comparable[T]](f item.Factory[T]) Option[T] {
	return func(t *Tree[T]) {
		t.factory = f
	}
}

func New[T tree.Comparable[T]](opts ...Option[T]) *Tree[T] {
	t := &Tree[T]{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Search returns the first node found holding an item equal to k,
// or nil if there is none.
func (t *Tree[T]) Search(k T) *tree.Node[T, struct{}] {
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
func (t *Tree[T]) Contains(k T) bool {
	return t.Search(k) != nil
}

// Insert inserts k into the binary tree. Equal items are kept,
// each in its own node.
func (t *Tree[T]) Insert(k T) *Tree[T] {
	newnode := tree.BasicNodeOf(k)
	t.count++

	if t.root == nil {
		t.root = newnode
		return t
	}

	n := t.root
	for {
		if tree.CompareItems(n.Item(), k) != tree.Less {
			// ties go left
			if n.Left() == nil {
				n.SetLeft(newnode)
				return t
			}
			n = n.Left()
		} else {
			if n.Right() == nil {
				n.SetRight(newnode)
				return t
			}
			n = n.Right()
		}
	}
}

// Remove removes one item equal to k from the tree.
// If there is no such item, the tree is left as it is.
//
// When the removed node has two children, its right child takes its
// place, and its left subtree is hung off the smallest node of the
// right subtree.
func (t *Tree[T]) Remove(k T) *Tree[T] {
	n := t.Search(k)
	if n == nil {
		return t
	}

	var r *tree.Node[T, struct{}]
	switch {
	case n.Left() == nil:
		r = n.Right()
	case n.Right() == nil:
		r = n.Left()
	default:
		r = n.Right()
		r.Min().SetLeft(n.Left())
	}

	n.Replace(r)
	if t.root == n {
		t.root = r
	}
	t.count--

	return t
}

// InsertValue converts raw into an item, using it as is if it already
// is a T and the tree's factory otherwise, and inserts it.
// On error the tree is not changed.
func (t *Tree[T]) InsertValue(raw any) (*Tree[T], error) {
	k, err := item.From(t.factory, raw)
	if err != nil {
		return t, fmt.Errorf("insert %v: %w", raw, err)
	}
	return t.Insert(k), nil
}

// RemoveValue is like InsertValue, but for Remove.
func (t *Tree[T]) RemoveValue(raw any) (*Tree[T], error) {
	k, err := item.From(t.factory, raw)
	if err != nil {
		return t, fmt.Errorf("remove %v: %w", raw, err)
	}
	return t.Remove(k), nil
}

// Count returns the number of items in the tree.
func (t *Tree[T]) Count() int {
	return t.count
}

func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Root returns the root node of the tree.
// The tree must not be modified through it.
func (t *Tree[T]) Root() *tree.Node[T, struct{}] {
	return t.root
}

// Height returns the height of the tree, which is -1 if the tree is empty.
func (t *Tree[T]) Height() int {
	return t.root.Height()
}

// IdealHeight returns the height of a complete tree with as many items
// as this tree.
func (t *Tree[T]) IdealHeight() int {
	return tree.IdealHeight(t.count)
}

// Balanced returns true if the heights of the two subtrees of every
// node differ by at most one.
func (t *Tree[T]) Balanced() bool {
	_, err := tree.CheckBalance(t.root)
	return err == nil
}

// Check verifies the structure of the tree and returns the first
// problem found.
func (t *Tree[T]) Check() error {
	if err := tree.CheckParents(t.root); err != nil {
		return err
	}
	if err := tree.CheckOrder(t.root, true); err != nil {
		return err
	}

	n := 0
	for i := t.InOrderIterator(); i.Next(); {
		n++
	}
	if n != t.count {
		return fmt.Errorf("count is %d but tree has %d items", t.count, n)
	}
	return nil
}

// ToSlice returns all items of the tree in the given order.
func (t *Tree[T]) ToSlice(order tree.Traversal) []T {
	out := make([]T, 0, t.count)
	i := t.Iterator(order)
	for i.Next() {
		out = append(out, i.Item())
	}
	return out
}

// Iterator returns an iterator visiting the tree in the given order.
func (t *Tree[T]) Iterator(order tree.Traversal) iterator.Iterator[T] {
	return iterator.New(order, t.root)
}

// InOrderIterator returns an iterator object that yields
// items from the tree in-order.
func (t *Tree[T]) InOrderIterator() *iterator.InOrder[T, struct{}] {
	return iterator.NewInOrder(t.root)
}

// Walk applies f to each item in the tree in the given order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) Walk(order tree.Traversal, f func(k T) bool) {
	i := t.Iterator(order)
	for i.Next() {
		if !f(i.Item()) {
			return
		}
	}
}

// Coroutine starts coroutine-style iteration in the given order.
// The usage is as follows:
//
//	co := t.Coroutine(ctx, tree.TraverseInOrder)
//	for k := range co.Items() {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// Note: Coroutine starts a goroutine, which exits when either
// Stop() is called, ctx is done or the iteration is finished.
func (t *Tree[T]) Coroutine(ctx context.Context, order tree.Traversal) chops.CoIterator[T] {
	// ?? Why can't T be inferred for CoIterate ??
	return chops.CoIterate[T](ctx, t.Iterator(order))
}

// String returns a string representation of the tree.
// A complete binary tree with height 2 would look like this:
//
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
func (t *Tree[T]) String() string {
	return t.root.String()
}
