package binary

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sync"

	"go.lepak.sg/forest/item"
	"go.lepak.sg/forest/tree"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNothingToBuild  = errors.New("nothing to build")
	ErrLengthMismatch  = errors.New("pre- and in-order traversals have different lengths")
	ErrDuplicateItem   = errors.New("duplicated item in traversal")
	ErrItemNotFound    = errors.New("pre-order item not found in in-order traversal")
	ErrTooManyAttempts = errors.New("too many attempts")
	ErrNegativeSize    = errors.New("negative tree size")
)

const defaultMaxAttempts = 100000

// BuildRandom builds a binary tree with num nodes.
// Node items are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
// BuildRandom panics if num is negative.
func BuildRandom(num int, seed int64) *Tree[item.Int] {
	if num < 0 {
		panic(fmt.Sprintf("BuildRandom: %d nodes: %v", num, ErrNegativeSize))
	}
	return buildShuffled(num, rand.New(rand.NewSource(seed)))
}

func buildShuffled(num int, rd *rand.Rand) *Tree[item.Int] {
	nodes := make([]item.Int, num)
	for i := 0; i < num; i++ {
		nodes[i] = item.Int(i)
	}

	rd.Shuffle(num, func(i, j int) {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	})

	tr := New[item.Int]()
	for _, n := range nodes {
		tr.Insert(n)
	}

	return tr
}

type buildConfig struct {
	workers     int
	maxAttempts int
}

// BuildOption configures BuildRandomBalanced.
type BuildOption func(*buildConfig)

// WithWorkers sets the number of trees built at the same time.
// The default is GOMAXPROCS.
func WithWorkers(n int) BuildOption {
	return func(c *buildConfig) {
		c.workers = n
	}
}

// WithMaxAttempts limits the number of trees built before giving up.
// Zero or less means no limit; the search then only ends when a
// balanced tree is found or the context is done.
func WithMaxAttempts(n int) BuildOption {
	return func(c *buildConfig) {
		c.maxAttempts = n
	}
}

// BuildRandomBalanced builds a balanced binary tree with num nodes.
// Node items are in the range [0, num) and are inserted in a random order.
// Each attempt shuffles the items with its own seed, derived from seed
// and the attempt number, and attempts run concurrently.
// The tree returned is always the one from the first balanced attempt,
// so results are repeatable no matter how many workers are used.
// Along the created binary tree, the number of that attempt is returned.
//
// If no balanced tree is found within the attempt limit, the error
// wraps ErrTooManyAttempts. If ctx is done first, it wraps ctx.Err().
// A negative num gives ErrNegativeSize.
func BuildRandomBalanced(ctx context.Context, num int, seed int64,
	opts ...BuildOption) (*Tree[item.Int], int, error) {
	if num < 0 {
		return nil, 0, fmt.Errorf("build balanced tree of %d: %w", num, ErrNegativeSize)
	}

	cfg := buildConfig{
		workers:     runtime.GOMAXPROCS(0),
		maxAttempts: defaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)

	var mu sync.Mutex
	var best *Tree[item.Int]
	bestAttempt := 0

	found := func() bool {
		mu.Lock()
		defer mu.Unlock()
		return best != nil
	}

	for attempt := 1; cfg.maxAttempts <= 0 || attempt <= cfg.maxAttempts; attempt++ {
		if found() || gctx.Err() != nil {
			break
		}

		attempt := attempt
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			tr := buildShuffled(num, rand.New(rand.NewSource(seed+int64(attempt))))
			if !tr.Balanced() {
				return nil
			}

			mu.Lock()
			defer mu.Unlock()
			if best == nil || attempt < bestAttempt {
				best, bestAttempt = tr, attempt
			}
			return nil
		})
	}

	err := g.Wait()
	if best != nil {
		return best, bestAttempt, nil
	}
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return nil, 0, fmt.Errorf("build balanced tree: %w", err)
	}
	return nil, cfg.maxAttempts, fmt.Errorf("build balanced tree of %d after %d attempts: %w",
		num, cfg.maxAttempts, ErrTooManyAttempts)
}

// BuildFromPreAndInOrderIter iteratively builds a binary tree
// from its pre- and in-order traversal.
// The shape of the tree is taken from the traversals alone. Items are
// only compared for equality, so the result is a search tree only if
// in is sorted.
func BuildFromPreAndInOrderIter[S ~[]T, T interface {
	comparable
	tree.Comparable[T]
}](pre, in S) (*Tree[T], error) {
	// Iterative method. Time O(N^2) Space O(N) (1x nodes, 1x the inOrderMap)
	if len(in) == 0 {
		return nil, ErrNothingToBuild
	}

	if len(in) != len(pre) {
		return nil, ErrLengthMismatch
	}

	inOrderMap := make(map[T]int, len(in))
	for i, v := range in {
		if _, ok := inOrderMap[v]; ok {
			return nil, fmt.Errorf("in-order %v: %w", v, ErrDuplicateItem)
		}
		inOrderMap[v] = i
	}

	if _, ok := inOrderMap[pre[0]]; !ok {
		return nil, fmt.Errorf("%v: %w", pre[0], ErrItemNotFound)
	}
	tr := New[T]()
	tr.root = tree.BasicNodeOf(pre[0])
	tr.count = 1

	for _, toInsert := range pre[1:] {
		toInsertIdx, ok := inOrderMap[toInsert]
		if !ok {
			return nil, fmt.Errorf("%v: %w", toInsert, ErrItemNotFound)
		}

		// The idea: walk down the tree to find where toInsert should go
		current, parent := tr.root, (*tree.Node[T, struct{}])(nil)

		var result tree.Order
		for current != nil {
			currentIdx, ok := inOrderMap[current.Item()]
			if !ok {
				// This is actually impossible as
				// previous items in the pre-order traversal
				// would definitely exist in the tree at this point
				panic("current node item not found in in-order traversal")
			}
			// not actually tree-related, this Compare function is just handy
			result = tree.Compare(toInsertIdx, currentIdx)
			switch result {
			case tree.Less:
				// toInsert is first - go left
				current, parent = current.Left(), current
			case tree.Greater:
				// current node item is first - go right
				current, parent = current.Right(), current
			default:
				// since we've already checked that the in-order traversal
				// doesn't contain any duplicate items while building inOrderMap,
				// this can only be caused by:
				return nil, fmt.Errorf("pre-order %v: %w", toInsert, ErrDuplicateItem)
			}
		}

		newnode := tree.BasicNodeOf(toInsert)
		switch result {
		case tree.Less:
			parent.SetLeft(newnode)
		case tree.Greater:
			parent.SetRight(newnode)
		default:
			panic("unreachable")
		}
		tr.count++
	}

	return tr, nil
}

// BuildFromPreAndInOrderRec recursively builds a binary tree
// from its pre- and in-order traversal.
// See BuildFromPreAndInOrderIter.
func BuildFromPreAndInOrderRec[S ~[]T, T interface {
	comparable
	tree.Comparable[T]
}](pre, in S) (*Tree[T], error) {
	// A dog on the internet told me how to do this
	// Recursive method. Time O(N^2) Space O(N) (stack frames)
	if len(in) == 0 {
		return nil, ErrNothingToBuild
	}

	if len(in) != len(pre) {
		return nil, ErrLengthMismatch
	}

	seen := make(map[T]struct{}, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			return nil, fmt.Errorf("in-order %v: %w", v, ErrDuplicateItem)
		}
		seen[v] = struct{}{}
	}

	root, err := buildFromPreAndInOrderRecVisit(pre, in)
	if err != nil {
		return nil, err
	}

	tr := New[T]()
	tr.root = root
	tr.count = len(in)
	return tr, nil
}

func buildFromPreAndInOrderRecVisit[S ~[]T, T comparable](
	pre, in S) (*tree.Node[T, struct{}], error) {
	// N = len(pre) = len(in)
	// At least N calls to this function

	if len(pre) != len(in) {
		panic(fmt.Sprintf("invariant broken: "+
			"(len(pre) == %d) != (len(in) == %d)", len(pre), len(in)))
	}

	if len(pre) == 0 {
		return nil, nil
	}

	x := pre[0]
	// O(N) but this gets smaller
	xi := slices.Index(in, x)
	if xi < 0 {
		return nil, fmt.Errorf("%v: %w", x, ErrItemNotFound)
	}

	inleft, inright := in[0:xi], in[xi+1:]
	preleft, preright := pre[1:xi+1], pre[xi+1:]

	n := tree.BasicNodeOf(x)

	l, err := buildFromPreAndInOrderRecVisit(preleft, inleft)
	if err != nil {
		return nil, err
	}
	r, err := buildFromPreAndInOrderRecVisit(preright, inright)
	if err != nil {
		return nil, err
	}

	n.SetLeft(l)
	n.SetRight(r)
	return n, nil
}
