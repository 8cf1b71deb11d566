package iterator

import (
	"go.lepak.sg/forest/tree"
)

var _ Iterator[int] = (*PreOrder[int, any])(nil)

// PreOrder yields every node before its left subtree, and its
// left subtree before its right subtree.
// Pending right subtrees are kept on a stack, so at most one
// node per level is held at any time.
type PreOrder[T any, X any] struct {
	root    *tree.Node[T, X]
	at      *tree.Node[T, X]
	stack   []*tree.Node[T, X]
	started bool
}

func NewPreOrder[T any, X any](root *tree.Node[T, X]) *PreOrder[T, X] {
	return &PreOrder[T, X]{
		root: root,
	}
}

func (i *PreOrder[T, X]) Next() bool {
	if !i.started {
		i.started = true
		i.at = i.root
		return i.at != nil
	}

	if i.at == nil {
		return false
	}

	if r := i.at.Right(); r != nil {
		i.stack = append(i.stack, r)
	}

	if l := i.at.Left(); l != nil {
		i.at = l
		return true
	}

	if len(i.stack) == 0 {
		i.at = nil
		return false
	}

	i.at = i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	return true
}

func (i *PreOrder[T, X]) Item() T {
	return i.at.Item()
}
