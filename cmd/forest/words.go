package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"go.lepak.sg/forest/item"
)

func newWordsCmd() *cobra.Command {
	var (
		kind      string
		orderName string
		remove    []string
	)

	cmd := &cobra.Command{
		Use:   "words [FILE]...",
		Short: "Insert the words of some files into a tree",
		Long: `words inserts every whitespace separated word of the given files,
or of standard input if there are none, into a tree. Words are compared
without regard to case. The words given with --remove are then removed,
and the requested traversal is printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("kind") {
				kind = config.Kind
			}
			if !cmd.Flags().Changed("order") {
				orderName = config.Order
			}

			order, err := parseOrder(orderName)
			if err != nil {
				return err
			}
			t, err := newTree[item.String](kind)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				if err := insertWords(t, cmd.InOrStdin()); err != nil {
					return fmt.Errorf("stdin: %w", err)
				}
			}
			for _, name := range args {
				if err := insertFile(t, name); err != nil {
					return err
				}
			}
			log.Infof("inserted %d words into %s tree", t.Count(), kind)

			for _, w := range remove {
				t.Remove(item.String(w))
			}

			out := cmd.OutOrStdout()
			printTraversal(cmd.Context(), out, t, order)
			fmt.Fprintln(out, "count:", t.Count())
			fmt.Fprintln(out, "height:", t.Height())
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&kind, "kind", defaultConfig.Kind, "tree kind: binary or avl")
	flags.StringVar(&orderName, "order", defaultConfig.Order, "traversal to print: in, pre, post, level or reverse")
	flags.StringSliceVar(&remove, "remove", nil, "words to remove after inserting")

	return cmd
}

func insertFile(t searchTree[item.String], name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := insertWords(t, f); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func insertWords(t searchTree[item.String], r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		t.Insert(item.String(sc.Text()))
	}
	return sc.Err()
}
