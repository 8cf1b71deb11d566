package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"go.lepak.sg/forest/item"
	"go.lepak.sg/forest/tree/binary"
)

func newBuildCmd() *cobra.Command {
	var impl string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Rebuild a tree from its in-order and pre-order traversals",
		Long: `build reads two lines of space separated integers from standard
input, the in-order traversal first and the pre-order traversal second,
and prints the tree they describe.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var build func(pre, in []item.Int) (*binary.Tree[item.Int], error)
			switch impl {
			case "iter":
				// type params cannot be inferred from the variable's type
				build = binary.BuildFromPreAndInOrderIter[[]item.Int, item.Int]
			case "rec":
				build = binary.BuildFromPreAndInOrderRec[[]item.Int, item.Int]
			default:
				return fmt.Errorf("unknown implementation %q, want iter or rec", impl)
			}

			r := bufio.NewReader(cmd.InOrStdin())
			in, err := readInts(r)
			if err != nil {
				return fmt.Errorf("in-order: %w", err)
			}
			pre, err := readInts(r)
			if err != nil {
				return fmt.Errorf("pre-order: %w", err)
			}
			log.Debugf("build %s: in=%v pre=%v", impl, in, pre)

			tr, err := build(pre, in)
			if err != nil {
				return err
			}

			printShape[item.Int](cmd.OutOrStdout(), binaryTree[item.Int]{tr})
			return nil
		},
	}

	cmd.Flags().StringVar(&impl, "impl", "iter", "builder to use: iter or rec")
	return cmd
}

// readInts reads one line of integers.
func readInts(r *bufio.Reader) ([]item.Int, error) {
	line, err := r.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return nil, err
	}

	fields := strings.Fields(line)
	out := make([]item.Int, len(fields))
	for i, f := range fields {
		out[i], err = item.IntFactory(f)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
