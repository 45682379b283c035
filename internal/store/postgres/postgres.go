// Package postgres implements the store.Store interface backed by PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"

	"github.com/grainbill/brewdex/internal/mapping"
	"github.com/grainbill/brewdex/internal/store"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// PostgresStore implements store.Store backed by a PostgreSQL database.
type PostgresStore struct {
	db *sql.DB
}

// Compile-time check that PostgresStore implements store.Store.
var _ store.Store = (*PostgresStore)(nil)

// New opens a connection to the PostgreSQL database at the given URL,
// configures the connection pool, and runs any pending migrations.
func New(databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func runMigrations(db *sql.DB) error {
	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	dbDriver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create migration db driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "postgres", dbDriver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}

// specFor resolves an entity type to its table spec.
func specFor(entityType string) (*tableSpec, error) {
	spec, ok := specByType[entityType]
	if !ok {
		return nil, fmt.Errorf("no table for entity type %q", entityType)
	}
	return spec, nil
}

// Close closes the underlying database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) Insert(ctx context.Context, e mapping.Entity) (int64, error) {
	spec, err := specFor(e.EntityType())
	if err != nil {
		return 0, err
	}
	return queryInsert(ctx, s.db, spec, e)
}

func (s *PostgresStore) Update(ctx context.Context, e mapping.Entity) error {
	spec, err := specFor(e.EntityType())
	if err != nil {
		return err
	}
	return queryUpdate(ctx, s.db, spec, e)
}

func (s *PostgresStore) Delete(ctx context.Context, entityType string, id int64) error {
	spec, err := specFor(entityType)
	if err != nil {
		return err
	}
	return queryDelete(ctx, s.db, spec, id)
}

func (s *PostgresStore) Find(ctx context.Context, entityType string, id int64) (mapping.Entity, error) {
	spec, err := specFor(entityType)
	if err != nil {
		return nil, err
	}
	return queryFind(ctx, s.db, spec, id)
}

func (s *PostgresStore) FindEquivalent(ctx context.Context, candidate mapping.Entity) (mapping.Entity, error) {
	spec, err := specFor(candidate.EntityType())
	if err != nil {
		return nil, err
	}
	return queryFindEquivalent(ctx, s.db, spec, candidate)
}

func (s *PostgresStore) FindByName(ctx context.Context, entityType, name string) (mapping.Entity, error) {
	spec, err := specFor(entityType)
	if err != nil {
		return nil, err
	}
	return queryFindByName(ctx, s.db, spec, name)
}

func (s *PostgresStore) List(ctx context.Context, entityType string) ([]mapping.Entity, error) {
	spec, err := specFor(entityType)
	if err != nil {
		return nil, err
	}
	return queryList(ctx, s.db, spec)
}

func (s *PostgresStore) ListOwned(ctx context.Context, entityType, ownerType string, ownerID int64) ([]mapping.Entity, error) {
	spec, err := specFor(entityType)
	if err != nil {
		return nil, err
	}
	return queryListOwned(ctx, s.db, spec, ownerType, ownerID)
}

// RunInTransaction begins a database transaction, creates a txStore that
// delegates to it, calls fn, and commits on success or rolls back on error.
func (s *PostgresStore) RunInTransaction(ctx context.Context, fn func(tx store.Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	txS := &txStore{tx: tx}
	if err := fn(txS); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// txStore implements store.Store using a *sql.Tx.
type txStore struct {
	tx *sql.Tx
}

// Compile-time check that txStore implements store.Store.
var _ store.Store = (*txStore)(nil)

func (s *txStore) Insert(ctx context.Context, e mapping.Entity) (int64, error) {
	spec, err := specFor(e.EntityType())
	if err != nil {
		return 0, err
	}
	return queryInsert(ctx, s.tx, spec, e)
}

func (s *txStore) Update(ctx context.Context, e mapping.Entity) error {
	spec, err := specFor(e.EntityType())
	if err != nil {
		return err
	}
	return queryUpdate(ctx, s.tx, spec, e)
}

func (s *txStore) Delete(ctx context.Context, entityType string, id int64) error {
	spec, err := specFor(entityType)
	if err != nil {
		return err
	}
	return queryDelete(ctx, s.tx, spec, id)
}

func (s *txStore) Find(ctx context.Context, entityType string, id int64) (mapping.Entity, error) {
	spec, err := specFor(entityType)
	if err != nil {
		return nil, err
	}
	return queryFind(ctx, s.tx, spec, id)
}

func (s *txStore) FindEquivalent(ctx context.Context, candidate mapping.Entity) (mapping.Entity, error) {
	spec, err := specFor(candidate.EntityType())
	if err != nil {
		return nil, err
	}
	return queryFindEquivalent(ctx, s.tx, spec, candidate)
}

func (s *txStore) FindByName(ctx context.Context, entityType, name string) (mapping.Entity, error) {
	spec, err := specFor(entityType)
	if err != nil {
		return nil, err
	}
	return queryFindByName(ctx, s.tx, spec, name)
}

func (s *txStore) List(ctx context.Context, entityType string) ([]mapping.Entity, error) {
	spec, err := specFor(entityType)
	if err != nil {
		return nil, err
	}
	return queryList(ctx, s.tx, spec)
}

func (s *txStore) ListOwned(ctx context.Context, entityType, ownerType string, ownerID int64) ([]mapping.Entity, error) {
	spec, err := specFor(entityType)
	if err != nil {
		return nil, err
	}
	return queryListOwned(ctx, s.tx, spec, ownerType, ownerID)
}

// RunInTransaction on a txStore reuses the existing transaction (no nesting).
func (s *txStore) RunInTransaction(ctx context.Context, fn func(tx store.Store) error) error {
	return fn(s)
}

// Close is a no-op for a transaction store; the parent store owns the connection.
func (s *txStore) Close() error {
	return nil
}
