package main

import (
	"fmt"

	"github.com/spf13/cobra"

	trash "github.com/rohithgilla12/trashcan"
)

var restoreCmd = &cobra.Command{
	Use:   "restore <name>",
	Short: "Restore a trashed item by its trashed name back to its original location",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		t, err := trash.New()
		if err != nil {
			return err
		}
		defer t.Close()

		item, ok := findByName(t, name)
		if !ok {
			return fmt.Errorf("no trashed item named %q", name)
		}

		if err := t.Restore(item); err != nil {
			return err
		}
		fmt.Fprintln(stdout, colorize("32", "restored: "+item.OriginalPath))
		return nil
	},
}

// findByName scans the trash for the first item whose trashed name
// matches. A multi-match disambiguation UI, as in the xtrash example
// CLI this was grounded on, is left to a future --timestamp-equivalent
// flag; this CLI restores the first match.
func findByName(t *trash.Trashcan, name string) (trash.Item, bool) {
	it := t.ByItem()
	for it.Next() {
		if item := it.Item(); item.Name == name {
			return item, true
		}
	}
	return trash.Item{}, false
}
