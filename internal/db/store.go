//-------------------------------------------------------------------------
//
// pgEdge Trade Data Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// ForeignKey describes a column that references another table's key.
type ForeignKey struct {
	Column    string
	RefTable  string
	RefColumn string
}

// Table describes one relation of a schema.
type Table struct {
	Name string

	// PrimaryKey lists the key columns in order.
	PrimaryKey []string

	ForeignKeys []ForeignKey

	// DDL is the CREATE TABLE statement.
	DDL string
}

// Store is the destination a generation run writes to. Writes are pending
// until Commit; Rollback discards everything since the last Commit.
type Store interface {
	// DropSchema removes the given tables and all of their rows.
	DropSchema(ctx context.Context, tables []Table) error

	// CreateSchema creates the given tables in order.
	CreateSchema(ctx context.Context, tables []Table) error

	// BulkInsert writes rows into table in one operation and returns the
	// number of rows written.
	BulkInsert(ctx context.Context, table string, columns []string, rows [][]any) (int64, error)

	// Commit makes pending writes durable.
	Commit(ctx context.Context) error

	// Rollback discards pending writes.
	Rollback(ctx context.Context) error
}

// PgStore is a Store backed by a single PostgreSQL connection. A
// transaction is opened on the first write after each Commit or Rollback.
type PgStore struct {
	conn DB
	tx   pgx.Tx
}

// NewPgStore creates a store over conn.
func NewPgStore(conn DB) *PgStore {
	return &PgStore{conn: conn}
}

func (s *PgStore) begin(ctx context.Context) (pgx.Tx, error) {
	if s.tx != nil {
		return s.tx, nil
	}
	tx, err := s.conn.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	s.tx = tx
	return tx, nil
}

// DropSchema drops tables in reverse order.
func (s *PgStore) DropSchema(ctx context.Context, tables []Table) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	for i := len(tables) - 1; i >= 0; i-- {
		name := pgx.Identifier{tables[i].Name}.Sanitize()
		if _, err := tx.Exec(ctx, "DROP TABLE IF EXISTS "+name+" CASCADE"); err != nil {
			return fmt.Errorf("failed to drop %s: %w", tables[i].Name, err)
		}
	}
	return nil
}

// CreateSchema runs each table's DDL.
func (s *PgStore) CreateSchema(ctx context.Context, tables []Table) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	for _, t := range tables {
		if _, err := tx.Exec(ctx, t.DDL); err != nil {
			return fmt.Errorf("failed to create %s: %w", t.Name, err)
		}
	}
	return nil
}

// BulkInsert copies rows into table with the COPY protocol.
func (s *PgStore) BulkInsert(ctx context.Context, table string, columns []string, rows [][]any) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	tx, err := s.begin(ctx)
	if err != nil {
		return 0, err
	}
	n, err := tx.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return n, fmt.Errorf("failed to copy into %s: %w", table, err)
	}
	return n, nil
}

// Commit commits the open transaction, if any.
func (s *PgStore) Commit(ctx context.Context) error {
	if s.tx == nil {
		return nil
	}
	tx := s.tx
	s.tx = nil
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Rollback rolls back the open transaction, if any.
func (s *PgStore) Rollback(ctx context.Context) error {
	if s.tx == nil {
		return nil
	}
	tx := s.tx
	s.tx = nil
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("failed to roll back: %w", err)
	}
	return nil
}
