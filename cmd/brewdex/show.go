package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:     "show <collection> <id>",
	Short:   "Show one record as a BeerJSON fragment",
	GroupID: "records",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseEntityID(args[1])
		if err != nil {
			return err
		}

		b, err := newBackend()
		if err != nil {
			return err
		}
		defer b.Close()

		fragment, err := b.Show(context.Background(), args[0], id)
		if err != nil {
			return err
		}

		// The fragment is the record in document form, so JSON is the
		// output either way.
		printJSON(fragment)
		return nil
	},
}

func parseEntityID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}
