package main

import (
	"context"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <collection>",
	Short: "List the records in a collection",
	Long: `List shows the id and name of every record in one of the document
collections: fermentables, hop_varieties, cultures,
miscellaneous_ingredients, profiles, styles, mashes or recipes.`,
	GroupID: "records",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := newBackend()
		if err != nil {
			return err
		}
		defer b.Close()

		rows, err := b.List(context.Background(), args[0])
		if err != nil {
			return err
		}

		if jsonOutput {
			printJSON(rows)
		} else {
			printEntityTable(args[0], rows)
		}
		return nil
	},
}
