package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:     "export",
	Short:   "Export every stored record as a BeerJSON document",
	GroupID: "documents",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := newBackend()
		if err != nil {
			return err
		}
		defer b.Close()

		doc, err := b.Export(context.Background())
		if err != nil {
			return err
		}

		if exportOutput == "" || exportOutput == "-" {
			_, err := os.Stdout.Write(doc)
			return err
		}
		if err := os.WriteFile(exportOutput, doc, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %d bytes to %s\n", len(doc), exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write the document to a file instead of stdout")
}
