package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <collection> <id>",
	Short:   "Delete a record and everything it owns",
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

		if err := b.Delete(context.Background(), args[0], id); err != nil {
			return err
		}

		fmt.Printf("deleted %s/%d\n", args[0], id)
		return nil
	},
}
