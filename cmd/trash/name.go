package main

import (
	"fmt"

	"github.com/spf13/cobra"

	trash "github.com/rohithgilla12/trashcan"
)

var nameCmd = &cobra.Command{
	Use:   "name",
	Short: "Print the platform's (possibly localized) trash can display name",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := trash.New()
		if err != nil {
			return err
		}
		defer t.Close()

		fmt.Fprintln(stdout, t.DisplayName())
		return nil
	},
}
