package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/op/go-logging.v1"
)

var log = logging.MustGetLogger("splay")

var verbosity string

var rootCmd = &cobra.Command{
	Use:   "splay",
	Short: "Play with a splay tree of integers",
	Long: `splay builds a splay tree of integers and runs operations on it.

Examples:
  splay sort 5 3 7 2 4 6 8
  echo "insert 3
search 3
levels" | splay script
  splay run --ops 100000 --seed 7`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging(verbosity)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&verbosity, "verbosity", "v", "warning", "log level: critical, error, warning, notice, info or debug")
}

func initLogging(level string) error {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return fmt.Errorf("bad --verbosity: %w", err)
	}
	backend := logging.NewBackendFormatter(logging.NewLogBackend(os.Stderr, "", 0),
		logging.MustStringFormatter(`%{time:15:04:05.000} %{level:7s}: %{message}`))
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)
	return nil
}
