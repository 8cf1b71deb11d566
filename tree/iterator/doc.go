// Package iterator provides tree iterators for use
// by tree implementations.
package iterator

import (
	"fmt"

	"go.lepak.sg/forest/chops"
	"go.lepak.sg/forest/tree"
)

// Iterator describes the common interface for all
// iterators in this package.
// Next must always be called before Item, even for
// the first round of iteration.
// If Next returns false, Item must not be called.
// Next may be called any number of times, and keeps
// returning false once the iteration is over.
// Item may be called any number of times if the
// last call to Next returned true.
// The iterator may be abandoned at any time.
//
// The usual usage of an Iterator is like this:
//
//	i := someTree.Iterator(tree.TraverseInOrder)
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k, or break ...
//	}
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// Make sure this Iterator is kept in sync with the one in chops.
var _ chops.Iterator[int] = (Iterator[int])(nil)

// New returns an iterator visiting the tree rooted at root in the given order.
// It panics if order is not one of the tree.Traverse constants.
func New[T any, X any](order tree.Traversal, root *tree.Node[T, X]) Iterator[T] {
	switch order {
	case tree.TraverseInOrder:
		return NewInOrder(root)
	case tree.TraversePreOrder:
		return NewPreOrder(root)
	case tree.TraversePostOrder:
		return NewPostOrder(root)
	case tree.TraverseLevelOrder:
		return NewLevelOrder(root)
	case tree.TraverseReverseOrder:
		return NewInOrderReverse(root)
	default:
		panic(fmt.Sprintf("unknown traversal %d", int(order)))
	}
}

// Collect exhausts i and returns the items in the order they were yielded.
// It returns nil if i yields nothing.
func Collect[T any](i Iterator[T]) []T {
	var out []T
	for i.Next() {
		out = append(out, i.Item())
	}
	return out
}
