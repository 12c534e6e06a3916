package main

import (
	"fmt"
	"math/rand"

	"github.com/g-m-twostay/go-splay/Trees"
	"github.com/spf13/cobra"
)

var (
	runOps   int
	runSeed  int64
	runRange int
	runCheck bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run random operations and report the shape of the tree",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if runOps < 0 || runRange <= 0 {
			return fmt.Errorf("--ops must be >= 0 and --range > 0")
		}
		st, err := randomOps(runOps, runRange, runSeed, runCheck)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "size %d, depth %d..%d, hits %d/%d\n", st.size, st.minDepth, st.maxDepth, st.hits, st.searches)
		return nil
	},
}

func init() {
	runCmd.Flags().IntVar(&runOps, "ops", 10000, "number of operations")
	runCmd.Flags().Int64Var(&runSeed, "seed", 0, "random seed")
	runCmd.Flags().IntVar(&runRange, "range", 1000, "values are drawn from [0, range)")
	runCmd.Flags().BoolVar(&runCheck, "check", false, "verify the tree after every operation")
	rootCmd.AddCommand(runCmd)
}

type runStats struct {
	size, minDepth, maxDepth uint
	hits, searches           int
}

func randomOps(ops, valRange int, seed int64, check bool) (runStats, error) {
	var st runStats
	rg := rand.New(rand.NewSource(seed))
	tree := Trees.New[int, uint]()
	for i := 0; i < ops; i++ {
		v := rg.Intn(valRange)
		switch rg.Intn(4) {
		case 0, 1:
			tree.Insert(v)
		case 2:
			tree.Delete(v)
		default:
			st.searches++
			if _, has := tree.Search(v); has {
				st.hits++
			}
		}
		if check && tree.Corrupt() {
			return st, fmt.Errorf("tree corrupt after operation %d", i)
		}
	}
	st.size, st.minDepth, st.maxDepth = tree.Size(), tree.MinDepth(), tree.MaxDepth()
	log.Notice("%d operations, seed %d: %s", ops, seed, tree.StringDepth(8))
	return st, nil
}
