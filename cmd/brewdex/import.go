package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a BeerJSON document",
	Long: `Import reads a BeerJSON document from a file (or stdin when the file
is "-") and stores every record it contains. A document that fails schema
validation, or that cannot be stored completely, leaves the database
unchanged.`,
	GroupID: "documents",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := readDocument(args[0])
		if err != nil {
			return err
		}

		b, err := newBackend()
		if err != nil {
			return err
		}
		defer b.Close()

		out, err := b.Import(context.Background(), doc)
		if err != nil {
			return err
		}

		if jsonOutput {
			printJSON(out)
		} else {
			printImportOutcome(out)
		}

		if !out.OK {
			return errors.New("import rejected")
		}
		return nil
	},
}

// readDocument reads a document from path, or from stdin when path is "-".
func readDocument(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	return os.ReadFile(path)
}
