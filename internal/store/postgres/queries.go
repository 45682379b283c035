package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/grainbill/brewdex/internal/mapping"
)

// executor is the interface satisfied by both *sql.DB and *sql.Tx.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// insertSQL builds the INSERT statement for a spec. The id comes from the
// table's sequence and is returned to the caller.
func insertSQL(spec *tableSpec) string {
	cols := dbColumns(spec)
	places := make([]string, len(cols))
	for i := range cols {
		places[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		spec.table, strings.Join(cols, ", "), strings.Join(places, ", "))
}

// updateSQL builds the UPDATE statement for a spec; the id is the final
// placeholder.
func updateSQL(spec *tableSpec) string {
	cols := dbColumns(spec)
	sets := make([]string, len(cols))
	for i, c := range cols {
		sets[i] = fmt.Sprintf("%s = $%d", c, i+1)
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		spec.table, strings.Join(sets, ", "), len(cols)+1)
}

// selectSQL builds the SELECT prefix whose column order scanEntity expects.
func selectSQL(spec *tableSpec) string {
	return fmt.Sprintf("SELECT id, %s FROM %s",
		strings.Join(dbColumns(spec), ", "), spec.table)
}

func queryInsert(ctx context.Context, db executor, spec *tableSpec, e mapping.Entity) (int64, error) {
	var id int64
	err := db.QueryRowContext(ctx, insertSQL(spec), args(e, spec)...).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert %s: %w", spec.entityType, err)
	}
	return id, nil
}

func queryUpdate(ctx context.Context, db executor, spec *tableSpec, e mapping.Entity) error {
	vals := append(args(e, spec), e.GetID())
	if _, err := db.ExecContext(ctx, updateSQL(spec), vals...); err != nil {
		return fmt.Errorf("update %s %d: %w", spec.entityType, e.GetID(), err)
	}
	return nil
}

func queryDelete(ctx context.Context, db executor, spec *tableSpec, id int64) error {
	// Zero rows affected is fine: the row may already be gone, and owned
	// rows go with their owner through ON DELETE CASCADE.
	_, err := db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", spec.table), id)
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", spec.entityType, id, err)
	}
	return nil
}

func queryFind(ctx context.Context, db executor, spec *tableSpec, id int64) (mapping.Entity, error) {
	row := db.QueryRowContext(ctx, selectSQL(spec)+" WHERE id = $1", id)
	e, err := scanEntity(row, spec)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find %s %d: %w", spec.entityType, id, err)
	}
	return e, nil
}

func queryFindByName(ctx context.Context, db executor, spec *tableSpec, name string) (mapping.Entity, error) {
	row := db.QueryRowContext(ctx, selectSQL(spec)+" WHERE name = $1 ORDER BY id LIMIT 1", name)
	e, err := scanEntity(row, spec)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find %s %q: %w", spec.entityType, name, err)
	}
	return e, nil
}

// queryFindEquivalent narrows the candidates in SQL to rows sharing the
// candidate's base name (renamed copies included), then lets the entity
// decide equivalence in Go. Owned entity types have no independent
// equivalence and always miss.
func queryFindEquivalent(ctx context.Context, db executor, spec *tableSpec, candidate mapping.Entity) (mapping.Entity, error) {
	if spec.owned {
		return nil, nil
	}
	base := mapping.BaseName(candidate.GetName())
	q := selectSQL(spec) + " WHERE id <> $1 AND (name = $2 OR name LIKE $2 || ' (%') ORDER BY id"
	rows, err := db.QueryContext(ctx, q, candidate.GetID(), base)
	if err != nil {
		return nil, fmt.Errorf("find equivalent %s: %w", spec.entityType, err)
	}
	defer rows.Close()

	found, err := scanEntities(rows, spec)
	if err != nil {
		return nil, fmt.Errorf("find equivalent %s: %w", spec.entityType, err)
	}
	for _, e := range found {
		if candidate.EquivalentTo(e) {
			return e, nil
		}
	}
	return nil, nil
}

func queryList(ctx context.Context, db executor, spec *tableSpec) ([]mapping.Entity, error) {
	rows, err := db.QueryContext(ctx, selectSQL(spec)+" ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", spec.entityType, err)
	}
	defer rows.Close()
	return scanEntities(rows, spec)
}

func queryListOwned(ctx context.Context, db executor, spec *tableSpec, ownerType string, ownerID int64) ([]mapping.Entity, error) {
	q := fmt.Sprintf("%s WHERE %s_id = $1 ORDER BY id", selectSQL(spec), ownerType)
	rows, err := db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list %s of %s %d: %w", spec.entityType, ownerType, ownerID, err)
	}
	defer rows.Close()
	return scanEntities(rows, spec)
}
