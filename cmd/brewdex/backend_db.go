package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/grainbill/brewdex/internal/beerjson"
	"github.com/grainbill/brewdex/internal/idgen"
	"github.com/grainbill/brewdex/internal/mapping"
	"github.com/grainbill/brewdex/internal/store"
	"github.com/grainbill/brewdex/internal/store/postgres"
	brewsync "github.com/grainbill/brewdex/internal/sync"
)

// dbBackend runs data commands straight against the database, with no
// server in between. Deletes skip event publishing on this path.
type dbBackend struct {
	store       store.Store
	coding      *mapping.Coding
	collections map[string]string // collection name -> entity type
}

func newDBBackend(databaseURL string) (*dbBackend, error) {
	st, err := postgres.New(databaseURL)
	if err != nil {
		return nil, err
	}
	coding := beerjson.Default()
	collections := make(map[string]string)
	for _, f := range coding.Root().Fields {
		if f.Type == mapping.FieldArray {
			name := f.Path.String()
			collections[name] = coding.Definition(name).EntityType
		}
	}
	return &dbBackend{store: st, coding: coding, collections: collections}, nil
}

func (b *dbBackend) entityType(collection string) (string, error) {
	et, ok := b.collections[collection]
	if !ok {
		return "", fmt.Errorf("unknown collection %q", collection)
	}
	return et, nil
}

func (b *dbBackend) Import(ctx context.Context, doc []byte) (importOutcome, error) {
	jobID, err := idgen.Generate()
	if err != nil {
		return importOutcome{}, fmt.Errorf("generate job id: %w", err)
	}
	res := b.coding.ValidateAndStore(ctx, b.store, doc)
	return importOutcome{JobID: jobID, ImportResult: res}, nil
}

func (b *dbBackend) Export(ctx context.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := brewsync.ExportSnapshot(ctx, b.store, b.coding, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (b *dbBackend) List(ctx context.Context, collection string) ([]entityRow, error) {
	et, err := b.entityType(collection)
	if err != nil {
		return nil, err
	}
	entities, err := b.store.List(ctx, et)
	if err != nil {
		return nil, err
	}
	rows := make([]entityRow, 0, len(entities))
	for _, e := range entities {
		rows = append(rows, entityRow{ID: e.GetID(), Name: e.GetName()})
	}
	return rows, nil
}

func (b *dbBackend) Show(ctx context.Context, collection string, id int64) (map[string]any, error) {
	et, err := b.entityType(collection)
	if err != nil {
		return nil, err
	}
	e, err := b.store.Find(ctx, et, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, errors.New("entity not found")
	}
	return b.coding.WriteEntityDocument(ctx, b.store, e)
}

func (b *dbBackend) Delete(ctx context.Context, collection string, id int64) error {
	et, err := b.entityType(collection)
	if err != nil {
		return err
	}
	e, err := b.store.Find(ctx, et, id)
	if err != nil {
		return err
	}
	if e == nil {
		return errors.New("entity not found")
	}
	return b.store.Delete(ctx, et, id)
}

func (b *dbBackend) Close() error {
	return b.store.Close()
}
