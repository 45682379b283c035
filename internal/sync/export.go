package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/grainbill/brewdex/internal/mapping"
	"github.com/grainbill/brewdex/internal/store"
)

// ExportSnapshot writes everything in the store as one indented BeerJSON
// document. The export runs inside a single transaction so a destination
// never receives a half-imported batch.
func ExportSnapshot(ctx context.Context, s store.Store, coding *mapping.Coding, w io.Writer) error {
	var doc map[string]any
	err := s.RunInTransaction(ctx, func(tx store.Store) error {
		var err error
		doc, err = coding.WriteDocument(ctx, tx)
		return err
	})
	if err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return nil
}
