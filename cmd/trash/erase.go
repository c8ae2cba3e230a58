package main

import (
	"fmt"

	"github.com/spf13/cobra"

	trash "github.com/rohithgilla12/trashcan"
)

var eraseCmd = &cobra.Command{
	Use:   "erase <name>",
	Short: "Permanently erase a single trashed item",
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

		if err := t.Erase(item); err != nil {
			return err
		}
		fmt.Fprintln(stdout, colorize("32", "erased: "+name))
		return nil
	},
}
