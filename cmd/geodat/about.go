package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/idanyas/geodat"
)

// aboutCmd prints the structure metadata of a database file.
var aboutCmd = &cobra.Command{
	Use:   "about <file>",
	Short: "Show edition and layout information for a database file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := geodat.Open(args[0])
		if err != nil {
			return err
		}
		defer db.Close()

		about := db.About()
		keys := make([]string, 0, len(about))
		for k := range about {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s %v\n", keyStyle.Width(20).Render(k), valStyle.Render(fmt.Sprint(about[k])))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}
