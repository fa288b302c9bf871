package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dhamidi/junparse/format"
	"github.com/dhamidi/junparse/java/tree"
)

func newDumpCmd() *cobra.Command {
	var stats bool

	cmd := &cobra.Command{
		Use:   "dump <file.json>",
		Short: "Decode a JSON syntax tree and print it in normalized form",
		Long: `Decode a JSON syntax tree and print it again in the normalized JSON form:
upstream shorthands such as bare-string labels and list-valued dimensions
are expanded, and empty members are dropped.

Use --stats to print the number of nodes of each kind instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open tree: %w", err)
			}
			defer f.Close()

			n, err := tree.Decode(f)
			if err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}

			if stats {
				printStats(tree.CountKinds(n))
				return nil
			}
			if err := format.NewJSONEncoder(os.Stdout).Encode(n); err != nil {
				return fmt.Errorf("encode json: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&stats, "stats", false, "print node counts per kind")

	return cmd
}

func printStats(counts map[tree.Kind]int) {
	kinds := make([]tree.Kind, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool {
		return kinds[i].String() < kinds[j].String()
	})
	for _, k := range kinds {
		fmt.Printf("%-30s %d\n", k, counts[k])
	}
}
