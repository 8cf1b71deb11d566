package iterator

import (
	"go.lepak.sg/forest/chops"
	"go.lepak.sg/forest/tree"
)

var _ chops.Iterator[int] = (*InOrderReverse[int, any])(nil)

// InOrderReverse is an iterator object over a binary tree.
// Iteration starts from the *largest* element and runs to
// the *smallest* element.
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrderReverse[T any, X any] struct {
	root, at *tree.Node[T, X]
	done     bool
}

// NewInOrderReverse returns a new InOrderReverse iterator over the tree
// rooted at root.
// Note: This is meant to be called by other tree implementations.
func NewInOrderReverse[T any, X any](
	root *tree.Node[T, X]) *InOrderReverse[T, X] {
	return &InOrderReverse[T, X]{
		root: root,
	}
}

// Next returns true if there is a next node to yield with Item.
// Next must always be called before Item.
func (i *InOrderReverse[T, X]) Next() bool {
	// Basically InOrder.Next but left and right are flipped.
	if i == nil || i.done {
		return false
	}

	if i.at == nil {
		i.at = i.root.Max()
		i.done = i.at == nil
		return !i.done
	}

	if i.at.Left() != nil {
		i.at = i.at.Left().Max()
		return true
	}

	var child *tree.Node[T, X]
	for i.at != i.root {
		i.at, child = i.at.Parent(), i.at
		if i.at.Right() == child {
			return true
		}
	}

	i.done = true
	return false
}

// Item returns the current item of the iterator.
func (i *InOrderReverse[T, _]) Item() T {
	return i.at.Item()
}
