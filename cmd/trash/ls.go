package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	trash "github.com/rohithgilla12/trashcan"
)

type row struct{ name, size, when, original string }

var lsGlob string

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List items currently in the trash",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := trash.New()
		if err != nil {
			return err
		}
		defer t.Close()

		var items []trash.Item
		it := t.ByItem()
		for it.Next() {
			items = append(items, it.Item())
		}
		if err := it.Err(); err != nil {
			return err
		}

		if lsGlob != "" {
			items = lo.Filter(items, func(item trash.Item, _ int) bool {
				matched, _ := filepath.Match(lsGlob, item.Name)
				return matched
			})
		}

		rows := lo.Map(items, func(item trash.Item, _ int) row {
			return row{
				name:     item.Name,
				size:     strconv.FormatInt(item.Size, 10),
				when:     item.DeletionDate.Format("2006-01-02 15:04:05"),
				original: item.OriginalPath,
			}
		})

		nameWidth, sizeWidth := displayWidth("NAME"), displayWidth("SIZE")
		for _, r := range rows {
			nameWidth = max(nameWidth, displayWidth(r.name))
			sizeWidth = max(sizeWidth, displayWidth(r.size))
		}

		printRow(nameWidth, sizeWidth, "NAME", "SIZE", "DELETED", "ORIGINAL PATH")
		for _, r := range rows {
			printRow(nameWidth, sizeWidth, r.name, r.size, r.when, r.original)
		}
		return nil
	},
}

func init() {
	lsCmd.Flags().StringVar(&lsGlob, "glob", "", "only list items whose trashed name matches this glob")
}

// displayWidth measures a string's terminal column width rather than its
// byte or rune count, so names carrying wide (e.g. CJK) or combining
// characters still line up.
func displayWidth(s string) int {
	return uniseg.StringWidth(s)
}

func padTo(s string, width int) string {
	if gap := width - displayWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func printRow(nameWidth, sizeWidth int, name, size, when, original string) {
	fmt.Fprintf(stdout, "%s  %s  %-19s  %s\n", padTo(name, nameWidth), padTo(size, sizeWidth), when, original)
}
