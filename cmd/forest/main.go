package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/spf13/cobra"

	"go.lepak.sg/forest/tree"
)

const (
	kindBinary = "binary"
	kindAVL    = "avl"
)

var (
	configPath string
	config     *Config
	log        *logger.L
)

func checkKind(kind string) error {
	switch kind {
	case kindBinary, kindAVL:
		return nil
	default:
		return fmt.Errorf("unknown tree kind %q, want %s or %s", kind, kindBinary, kindAVL)
	}
}

func parseOrder(s string) (tree.Traversal, error) {
	order, ok := tree.ParseTraversal(s)
	if !ok {
		return 0, fmt.Errorf("unknown traversal %q, want in, pre, post, level or reverse", s)
	}
	return order, nil
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "forest",
		Short: "Build binary search trees and look at them",
		Long: `forest builds plain and AVL binary search trees from random
numbers, traversals or words, then prints their traversals and shape.

Defaults can be set in a YAML file given with --config.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			config, err = LoadConfig(configPath)
			if err != nil {
				return err
			}

			if log == nil {
				if err := logger.Initialise(config.Logging); err != nil {
					return fmt.Errorf("start logging: %w", err)
				}
				log = logger.New("forest")
			}
			log.Debugf("config: %+v", *config)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file with defaults")

	rootCmd.AddCommand(newRandomCmd(), newBuildCmd(), newWordsCmd())
	return rootCmd
}

func main() {
	err := newRootCmd().Execute()

	// log is only set once logging has started
	if log != nil {
		if err != nil {
			log.Errorf("%s", err)
		}
		logger.Finalise()
	}

	if err != nil {
		os.Exit(1)
	}
}
