package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/grainbill/brewdex/internal/mapping"
	"github.com/grainbill/brewdex/internal/ui"
)

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func printImportOutcome(out importOutcome) {
	switch {
	case !out.OK:
		fmt.Println(ui.RenderError(out.Message))
	case out.Stats.TotalSkipped() > 0:
		fmt.Println(ui.RenderSkipped(out.Message))
	default:
		fmt.Println(ui.RenderStored(out.Message))
	}
	printStats(out.Stats)
	if out.JobID != "" {
		fmt.Println(ui.RenderMuted("job " + out.JobID))
	}
}

// printStats renders the per-type stored/skipped counts of an import.
func printStats(stats mapping.Stats) {
	seen := make(map[string]bool, len(stats.Stored)+len(stats.Skipped))
	var types []string
	for t := range stats.Stored {
		seen[t] = true
		types = append(types, t)
	}
	for t := range stats.Skipped {
		if !seen[t] {
			types = append(types, t)
		}
	}
	if len(types) == 0 {
		return
	}
	sort.Strings(types)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tSTORED\tSKIPPED")
	for _, t := range types {
		fmt.Fprintf(w, "%s\t%d\t%d\n", t, stats.Stored[t], stats.Skipped[t])
	}
	w.Flush()
}

func printEntityTable(collection string, rows []entityRow) {
	if len(rows) == 0 {
		fmt.Printf("no records in %s\n", collection)
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%s\n", r.ID, r.Name)
	}
	w.Flush()
	fmt.Printf("\nTotal: %d\n", len(rows))
}
