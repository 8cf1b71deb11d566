package iterator

import (
	"go.lepak.sg/forest/tree"
)

var _ Iterator[int] = (*PostOrder[int, any])(nil)

// PostOrder yields the left subtree, then the right subtree, then the node.
// The top of the stack is always the current node, and the rest of the
// stack is its chain of ancestors.
type PostOrder[T any, X any] struct {
	root    *tree.Node[T, X]
	stack   []*tree.Node[T, X]
	started bool
}

func NewPostOrder[T any, X any](root *tree.Node[T, X]) *PostOrder[T, X] {
	return &PostOrder[T, X]{
		root: root,
	}
}

// descend pushes the path from n to the first node visited in
// post-order in the subtree of n: go left when possible, else right,
// until a leaf.
func (i *PostOrder[T, X]) descend(n *tree.Node[T, X]) {
	for n != nil {
		i.stack = append(i.stack, n)
		if n.Left() != nil {
			n = n.Left()
		} else {
			n = n.Right()
		}
	}
}

func (i *PostOrder[T, X]) Next() bool {
	if !i.started {
		i.started = true
		i.descend(i.root)
		return len(i.stack) > 0
	}

	if len(i.stack) == 0 {
		return false
	}

	done := i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	if len(i.stack) == 0 {
		return false
	}

	// coming up from a left child, the right subtree is next
	top := i.stack[len(i.stack)-1]
	if top.Left() == done && top.Right() != nil {
		i.descend(top.Right())
	}

	return true
}

func (i *PostOrder[T, X]) Item() T {
	return i.stack[len(i.stack)-1].Item()
}
