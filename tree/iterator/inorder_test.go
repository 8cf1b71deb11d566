package iterator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/forest/tree"
)

type node = tree.Node[int, struct{}]

func leaf(k int) *node {
	return tree.BasicNodeOf(k)
}

func branch(l *node, k int, r *node) *node {
	n := tree.BasicNodeOf(k)
	if l != nil {
		n.SetLeft(l)
	}
	if r != nil {
		n.SetRight(r)
	}
	return n
}

func newCompleteTree_2Tall() *node {
	return branch(
		branch(leaf(1), 2, leaf(3)),
		4,
		branch(leaf(5), 6, leaf(7)),
	)
}

// 8 has a left subtree that zigzags down to 6
func newDogleg() *node {
	return branch(
		branch(leaf(1), 5, branch(leaf(6), 7, nil)),
		8,
		leaf(9),
	)
}

func TestInOrder(t *testing.T) {
	tests := []struct {
		name   string
		create func() *node
		post   func(t *testing.T, i *InOrder[int, struct{}])
	}{
		{
			name: "empty",
			create: func() *node {
				return nil
			},
			post: func(t *testing.T, i *InOrder[int, struct{}]) {
				assert.False(t, i.Next(), "first")
				assert.False(t, i.Next(), "again")
			},
		},
		{
			name: "one",
			create: func() *node {
				return leaf(1)
			},
			post: func(t *testing.T, i *InOrder[int, struct{}]) {
				assert.True(t, i.Next(), "first")
				assert.Equal(t, 1, i.Item())
				assert.False(t, i.Next(), "second")
				assert.False(t, i.Next(), "stays done")
			},
		},
		{
			name:   "height=2",
			create: newCompleteTree_2Tall,
			post: func(t *testing.T, i *InOrder[int, struct{}]) {
				assert.True(t, i.Next(), "first")
				assert.Equal(t, 1, i.Item())
				assert.True(t, i.Next(), "second")
				assert.Equal(t, 2, i.Item())
				assert.True(t, i.Next(), "third")
				assert.Equal(t, 3, i.Item())
				assert.True(t, i.Next(), "fourth")
				assert.Equal(t, 4, i.Item())
				assert.True(t, i.Next(), "fifth")
				assert.Equal(t, 5, i.Item())
				assert.True(t, i.Next(), "sixth")
				assert.Equal(t, 6, i.Item())
				assert.True(t, i.Next(), "seventh")
				assert.Equal(t, 7, i.Item())
				assert.False(t, i.Next(), "eighth")
			},
		},
		{
			name: "subtree only",
			create: func() *node {
				return newCompleteTree_2Tall().Right()
			},
			post: func(t *testing.T, i *InOrder[int, struct{}]) {
				assert.Equal(t, []int{5, 6, 7}, Collect[int](i))
			},
		},
		{
			name:   "dogleg",
			create: newDogleg,
			post: func(t *testing.T, i *InOrder[int, struct{}]) {
				assert.Equal(t, []int{1, 5, 6, 7, 8, 9}, Collect[int](i))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.post(t, NewInOrder(tt.create()))
		})
	}
}

func TestInOrder_NilReceiver(t *testing.T) {
	var i *InOrder[int, struct{}]
	assert.False(t, i.Next())
}
