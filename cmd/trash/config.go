package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rohithgilla12/trashcan/internal/trashconfig"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or persist the default placement options",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := trashconfig.Get()
		fmt.Fprintf(stdout, "useTopDirs       %t\n", cfg.UseTopDirs)
		fmt.Fprintf(stdout, "checkStickyBit   %t\n", cfg.CheckStickyBit)
		fmt.Fprintf(stdout, "fallbackToUserDir %t\n", cfg.FallbackToUserDir)
		fmt.Fprintf(stdout, "fallbackToHomeDir %t\n", cfg.FallbackToHomeDir)
		fmt.Fprintf(stdout, "bypassTrash      %t\n", cfg.BypassTrash)
		return nil
	},
}

var configSetPermanentCmd = &cobra.Command{
	Use:   "set-permanent <true|false>",
	Short: "Persist whether trash operations bypass the trash can by default",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bypass, err := parseBool(args[0])
		if err != nil {
			return err
		}
		cfg := trashconfig.Get()
		cfg.BypassTrash = bypass
		return trashconfig.Save(cfg)
	},
}

func parseBool(s string) (bool, error) {
	switch s {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", s)
	}
}

func init() {
	configCmd.AddCommand(configSetPermanentCmd)
}
