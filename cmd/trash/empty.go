package main

import (
	"fmt"

	"github.com/spf13/cobra"

	trash "github.com/rohithgilla12/trashcan"
)

var emptyCmd = &cobra.Command{
	Use:   "empty",
	Short: "Permanently erase every item currently in the trash",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := trash.New()
		if err != nil {
			return err
		}
		defer t.Close()

		if err := t.EmptyAll(); err != nil {
			return err
		}
		fmt.Fprintln(stdout, colorize("32", "trash emptied"))
		return nil
	},
}
