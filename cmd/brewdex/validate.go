package main

import (
	"errors"
	"fmt"

	"github.com/grainbill/brewdex/internal/beerjson"
	"github.com/grainbill/brewdex/internal/ui"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:     "validate <file>",
	Short:   "Check a document against the BeerJSON schema without storing it",
	GroupID: "documents",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := readDocument(args[0])
		if err != nil {
			return err
		}

		ok, problems := beerjson.NewValidator().Validate(doc)

		if jsonOutput {
			out := map[string]any{"valid": ok}
			if len(problems) > 0 {
				out["problems"] = problems
			}
			printJSON(out)
		} else if ok {
			fmt.Println(ui.RenderStored("valid"))
		} else {
			fmt.Println(ui.RenderError("invalid"))
			for _, p := range problems {
				fmt.Printf("  %s\n", p)
			}
		}

		if !ok {
			return errors.New("document is not valid BeerJSON")
		}
		return nil
	},
}
