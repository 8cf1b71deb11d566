package iterator

import (
	"github.com/emirpasic/gods/v2/queues/linkedlistqueue"

	"go.lepak.sg/forest/tree"
)

var _ Iterator[int] = (*LevelOrder[int, any])(nil)

// LevelOrder visits the tree breadth first: the root, then every node
// at level 1 from left to right, then level 2, and so on.
type LevelOrder[T any, X any] struct {
	at    *tree.Node[T, X]
	queue *linkedlistqueue.Queue[*tree.Node[T, X]]
}

func NewLevelOrder[T any, X any](root *tree.Node[T, X]) *LevelOrder[T, X] {
	q := linkedlistqueue.New[*tree.Node[T, X]]()
	if root != nil {
		q.Enqueue(root)
	}
	return &LevelOrder[T, X]{
		queue: q,
	}
}

func (i *LevelOrder[T, X]) Next() bool {
	n, ok := i.queue.Dequeue()
	if !ok {
		i.at = nil
		return false
	}

	for _, c := range n.Children() {
		i.queue.Enqueue(c)
	}
	i.at = n
	return true
}

func (i *LevelOrder[T, X]) Item() T {
	return i.at.Item()
}

// Pending returns the number of nodes seen but not yet visited.
func (i *LevelOrder[T, X]) Pending() int {
	return i.queue.Size()
}
