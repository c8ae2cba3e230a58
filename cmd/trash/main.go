// Command trash is a thin CLI front end over the root package: put, list,
// restore, erase, empty and the display name lookup, each a direct call
// into a library operation. Modeled on the other_examples xtrash cobra
// CLI's command style (one cobra.Command var per verb, flags read inline
// in Run), generalized from xtrash's single flat trash directory to this
// package's multi-root, multi-platform Trashcan.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/rohithgilla12/trashcan/internal/buildinfo"
	"github.com/rohithgilla12/trashcan/internal/trashconfig"
	trash "github.com/rohithgilla12/trashcan"
)

var stdout = colorable.NewColorableStdout()

func colorize(code, s string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

var rootCmd = &cobra.Command{
	Use:     "trash",
	Short:   "Move files to, list, restore and erase items from the platform trash can",
	Version: buildinfo.Version,
}

var permanentFlag bool

func main() {
	rootCmd.PersistentFlags().BoolVar(&permanentFlag, "permanent", false, "bypass the trash and delete immediately")
	rootCmd.AddCommand(putCmd, lsCmd, restoreCmd, eraseCmd, emptyCmd, nameCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, colorize("31", err.Error()))
		os.Exit(1)
	}
}

// currentOptions starts from the persisted trashconfig defaults (falling
// back to trash.DefaultOptions when nothing was ever saved) and applies
// --permanent as a per-invocation override of BypassTrash.
func currentOptions() trash.Options {
	cfg := trashconfig.Get()
	o := trash.Options{
		UseTopDirs:        cfg.UseTopDirs,
		CheckStickyBit:    cfg.CheckStickyBit,
		FallbackToUserDir: cfg.FallbackToUserDir,
		FallbackToHomeDir: cfg.FallbackToHomeDir,
		BypassTrash:       cfg.BypassTrash,
	}
	if permanentFlag {
		o.BypassTrash = true
	}
	return o
}
