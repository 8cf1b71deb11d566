package iterator

import (
	"go.lepak.sg/forest/chops"
	"go.lepak.sg/forest/tree"
)

var _ chops.Iterator[int] = (*InOrder[int, any])(nil)

// InOrder is an iterator object over a binary tree.
// The usage should be pretty familiar:
//
//	i := someBinaryTree.InOrderIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
//
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrder[T any, X any] struct {
	root, at *tree.Node[T, X]
	done     bool
}

// NewInOrder returns a new InOrder iterator over the tree rooted at root.
// Note: This is meant to be called by other tree implementations.
func NewInOrder[T any, X any](root *tree.Node[T, X]) *InOrder[T, X] {
	return &InOrder[T, X]{
		root: root,
	}
}

// Next returns true if there is a next node to yield with Item.
// Next must always be called before Item.
func (i *InOrder[T, X]) Next() bool {
	// https://www.cs.odu.edu/~zeil/cs361/latest/Public/treetraversal/index.html
	if i == nil || i.done {
		return false
	}

	if i.at == nil {
		i.at = i.root.Min()
		i.done = i.at == nil
		return !i.done
	}

	if i.at.Right() != nil {
		i.at = i.at.Right().Min()
		return true
	}

	// climb until we come up from a left child, but never above root
	var child *tree.Node[T, X]
	for i.at != i.root {
		i.at, child = i.at.Parent(), i.at
		if i.at.Left() == child {
			return true
		}
	}

	i.done = true
	return false
}

// Item returns the current item of the iterator.
func (i *InOrder[T, _]) Item() T {
	return i.at.Item()
}
