package main

import (
	"context"
	"fmt"
	"io"

	"go.lepak.sg/forest/chops"
	"go.lepak.sg/forest/tree"
	"go.lepak.sg/forest/tree/avl"
	"go.lepak.sg/forest/tree/binary"
)

// searchTree is what the commands need from either kind of tree.
type searchTree[T tree.Comparable[T]] interface {
	Insert(k T)
	Remove(k T)
	Count() int
	Height() int
	IdealHeight() int
	ToSlice(order tree.Traversal) []T
	Coroutine(ctx context.Context, order tree.Traversal) chops.CoIterator[T]
	String() string
}

type binaryTree[T tree.Comparable[T]] struct {
	*binary.Tree[T]
}

func (b binaryTree[T]) Insert(k T) { b.Tree.Insert(k) }
func (b binaryTree[T]) Remove(k T) { b.Tree.Remove(k) }

type avlTree[T tree.Comparable[T]] struct {
	*avl.AVL[T]
}

func (a avlTree[T]) Insert(k T) { a.AVL.Insert(k) }
func (a avlTree[T]) Remove(k T) { a.AVL.Remove(k) }

func newTree[T tree.Comparable[T]](kind string) (searchTree[T], error) {
	switch kind {
	case kindBinary:
		return binaryTree[T]{binary.New[T]()}, nil
	case kindAVL:
		return avlTree[T]{avl.New[T]()}, nil
	default:
		return nil, checkKind(kind)
	}
}

// printTraversal streams the items of t in the given order to w.
func printTraversal[T tree.Comparable[T]](ctx context.Context, w io.Writer,
	t searchTree[T], order tree.Traversal) {
	it := t.Coroutine(ctx, order)
	defer it.Stop()

	fmt.Fprintf(w, "%s-order:", order)
	for k := range it.Items() {
		fmt.Fprintf(w, " %v", k)
	}
	fmt.Fprintln(w)
}

func printShape[T tree.Comparable[T]](w io.Writer, t searchTree[T]) {
	fmt.Fprintln(w, "tree:")
	fmt.Fprint(w, t.String())
	fmt.Fprintln(w, "count:", t.Count())
	fmt.Fprintln(w, "height:", t.Height(), "ideal:", t.IdealHeight())
}
