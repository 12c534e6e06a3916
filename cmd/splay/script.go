package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/g-m-twostay/go-splay/Trees"
	"github.com/spf13/cobra"
)

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Run operations read from stdin, one per line",
	Long: `script reads one operation per line from stdin and prints one result per line.

Operations taking a number: insert, delete, search, has, next, prev.
Operations without: min, max, size, root, print, levels, clear.
Blank lines and lines starting with # are skipped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScript(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(scriptCmd)
}

func runScript(r io.Reader, w io.Writer) error {
	tree := Trees.New[int, uint]()
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		out, err := apply(tree, strings.Fields(text))
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		log.Debug("line %d: %s -> %s", line, text, out)
		fmt.Fprintln(w, out)
	}
	return sc.Err()
}

func found(v int, has bool) string {
	if !has {
		return "not found"
	}
	return strconv.Itoa(v)
}

func apply(tree *Trees.SplayTree[int, uint], f []string) (string, error) {
	op := f[0]
	switch op {
	case "insert", "delete", "search", "has", "next", "prev":
		if len(f) != 2 {
			return "", fmt.Errorf("%s takes one number", op)
		}
		v, err := strconv.Atoi(f[1])
		if err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
		switch op {
		case "insert":
			_, added := tree.Insert(v)
			return strconv.FormatBool(added), nil
		case "delete":
			return strconv.FormatBool(tree.Delete(v)), nil
		case "search":
			return found(tree.Search(v)), nil
		case "has":
			return strconv.FormatBool(tree.Has(v)), nil
		case "next":
			return found(tree.Next(v)), nil
		default:
			return found(tree.Prev(v)), nil
		}
	case "min":
		return found(tree.Min()), nil
	case "max":
		return found(tree.Max()), nil
	case "root":
		return found(tree.Root()), nil
	case "size":
		return strconv.FormatUint(uint64(tree.Size()), 10), nil
	case "print":
		return tree.String(), nil
	case "levels":
		return fmt.Sprint(tree.Levels()), nil
	case "clear":
		tree.Clear()
		return "ok", nil
	}
	return "", fmt.Errorf("unknown operation %q", op)
}
