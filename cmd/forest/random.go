package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"go.lepak.sg/forest/item"
	"go.lepak.sg/forest/tree"
	"go.lepak.sg/forest/tree/avl"
	"go.lepak.sg/forest/tree/binary"
)

func newRandomCmd() *cobra.Command {
	var (
		num         int
		seed        int64
		kind        string
		orderName   string
		balanced    bool
		workers     int
		maxAttempts int
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Build a tree from the numbers 0 to n-1 in random order",
		Long: `random inserts the numbers 0 to n-1 in a shuffled order and prints
the pre- and in-order traversals, which can be fed back to build,
followed by the requested traversal and the tree itself.

With -b, a plain binary tree is rebuilt from new shuffles until one is
balanced. Shuffles are tried concurrently.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("num") {
				num = config.Size
			}
			if !flags.Changed("seed") {
				seed = config.Seed
			}
			if !flags.Changed("kind") {
				kind = config.Kind
			}
			if !flags.Changed("order") {
				orderName = config.Order
			}
			if !flags.Changed("workers") {
				workers = config.Workers
			}
			if !flags.Changed("max-attempts") {
				maxAttempts = config.MaxAttempts
			}

			if num < 0 {
				return fmt.Errorf("number of nodes must not be negative, got %d", num)
			}
			order, err := parseOrder(orderName)
			if err != nil {
				return err
			}
			if err := checkKind(kind); err != nil {
				return err
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			log.Infof("random %s tree: n=%d seed=%d balanced=%t", kind, num, seed, balanced)

			var t searchTree[item.Int]
			attempts := 0

			switch {
			case kind == kindAVL:
				t = avlTree[item.Int]{buildRandomAVL(num, seed)}
			case balanced:
				opts := []binary.BuildOption{binary.WithMaxAttempts(maxAttempts)}
				if workers > 0 {
					opts = append(opts, binary.WithWorkers(workers))
				}

				var tr *binary.Tree[item.Int]
				tr, attempts, err = binary.BuildRandomBalanced(cmd.Context(), num, seed, opts...)
				if err != nil {
					return err
				}
				log.Infof("balanced after %d attempts", attempts)
				t = binaryTree[item.Int]{tr}
			default:
				t = binaryTree[item.Int]{binary.BuildRandom(num, seed)}
			}

			out := cmd.OutOrStdout()
			printTraversal(cmd.Context(), out, t, tree.TraversePreOrder)
			printTraversal(cmd.Context(), out, t, tree.TraverseInOrder)
			if order != tree.TraversePreOrder && order != tree.TraverseInOrder {
				printTraversal(cmd.Context(), out, t, order)
			}
			printShape(out, t)

			if balanced && kind == kindBinary {
				fmt.Fprintln(out, "attempts:", attempts)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&num, "num", "n", defaultConfig.Size, "number of nodes in the tree")
	flags.Int64VarP(&seed, "seed", "s", 0, "seed (default current unix time in ns)")
	flags.StringVar(&kind, "kind", defaultConfig.Kind, "tree kind: binary or avl")
	flags.StringVar(&orderName, "order", defaultConfig.Order, "traversal to print: in, pre, post, level or reverse")
	flags.BoolVarP(&balanced, "balanced", "b", false, "keep building the binary tree until it is balanced")
	flags.IntVar(&workers, "workers", 0, "trees built at the same time with -b (default GOMAXPROCS)")
	flags.IntVar(&maxAttempts, "max-attempts", defaultConfig.MaxAttempts, "give up -b after this many trees, 0 for no limit")

	return cmd
}

// buildRandomAVL inserts the numbers [0, num) into an AVL tree in an
// order shuffled by seed.
func buildRandomAVL(num int, seed int64) *avl.AVL[item.Int] {
	rd := rand.New(rand.NewSource(seed))
	t := avl.New[item.Int]()
	for _, i := range rd.Perm(num) {
		t.Insert(item.Int(i))
	}
	return t
}
