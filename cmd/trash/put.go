package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	trash "github.com/rohithgilla12/trashcan"
)

var putWorkers int

var putCmd = &cobra.Command{
	Use:   "put <path>...",
	Short: "Move one or more paths into the trash",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := make([]string, len(args))
		for i, a := range args {
			abs, err := filepath.Abs(a)
			if err != nil {
				return fmt.Errorf("resolve %q: %w", a, err)
			}
			paths[i] = abs
		}

		results := trash.TrashAll(context.Background(), paths, currentOptions(), putWorkers)

		failed := 0
		for _, r := range results {
			if r.Err != nil {
				failed++
				fmt.Fprintln(os.Stderr, colorize("31", fmt.Sprintf("failed: %s: %v", r.Path, r.Err)))
				continue
			}
			fmt.Fprintln(stdout, colorize("32", "trashed: "+r.Path))
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d paths failed", failed, len(results))
		}
		return nil
	},
}

func init() {
	putCmd.Flags().IntVar(&putWorkers, "workers", 0, "concurrent workers (0 = number of CPUs)")
}
