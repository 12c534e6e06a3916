package main

import (
	"fmt"
	"strconv"

	"github.com/g-m-twostay/go-splay/Trees"
	"github.com/spf13/cobra"
)

var sortDepth int

var sortCmd = &cobra.Command{
	Use:   "sort <int>...",
	Short: "Insert the numbers and print them in order, without duplicates",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree := Trees.New[int, uint]()
		for _, a := range args {
			v, err := strconv.Atoi(a)
			if err != nil {
				return fmt.Errorf("not an integer: %w", err)
			}
			if _, added := tree.Insert(v); !added {
				log.Debug("dropping duplicate %d", v)
			}
		}
		log.Info("sorted %d distinct of %d numbers", tree.Size(), len(args))
		fmt.Fprintln(cmd.OutOrStdout(), tree.StringDepth(sortDepth))
		return nil
	},
}

func init() {
	sortCmd.Flags().IntVar(&sortDepth, "depth", Trees.DefaultStringDepth, "stop printing below this depth")
	rootCmd.AddCommand(sortCmd)
}
