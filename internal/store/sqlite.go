package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // register sqlite driver
)

// SQLite is the default store. It implements both Sink and Reader.
type SQLite struct {
	tableSink
	reader
	db *sql.DB
	tx *sql.Tx // set between Begin and Commit/Rollback
}

// OpenSQLite opens or creates the database at dbPath and applies the schema.
func OpenSQLite(dbPath string) (*SQLite, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}
	// A single connection keeps the foreign_keys pragma and transactions on
	// the same handle.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	s := &SQLite{db: db}
	s.tableSink = tableSink{ins: s}
	s.reader = reader{q: sqlQueryer{db: db}}
	return s, nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Begin opens the transaction that later Reset and Insert calls join.
func (s *SQLite) Begin(ctx context.Context) error {
	if s.tx != nil {
		return errTxOpen
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	s.tx = tx
	return nil
}

// Commit commits the open transaction.
func (s *SQLite) Commit(context.Context) error {
	if s.tx == nil {
		return errNoTx
	}
	tx := s.tx
	s.tx = nil
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

// Rollback discards the open transaction. It is a no-op without one.
func (s *SQLite) Rollback(context.Context) error {
	if s.tx == nil {
		return nil
	}
	tx := s.tx
	s.tx = nil
	// database/sql rolls back on its own when the Begin context ends.
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("rolling back: %w", err)
	}
	return nil
}

// inTx runs fn in the open transaction, or in a transaction of its own.
func (s *SQLite) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	if s.tx != nil {
		return fn(s.tx)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// Reset drops every table and recreates the schema.
func (s *SQLite) Reset(ctx context.Context) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		for i := len(allTables) - 1; i >= 0; i-- {
			if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+allTables[i].name); err != nil {
				return fmt.Errorf("dropping %s: %w", allTables[i].name, err)
			}
		}
		if _, err := tx.ExecContext(ctx, sqliteSchema); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
		return nil
	})
}

func (s *SQLite) insertRows(ctx context.Context, t table, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	return s.inTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, insertSQL(t, func(int) string { return "?" }))
		if err != nil {
			return fmt.Errorf("preparing %s insert: %w", t.name, err)
		}
		defer func() { _ = stmt.Close() }()

		for _, row := range rows {
			if _, err := stmt.ExecContext(ctx, row...); err != nil {
				return fmt.Errorf("inserting into %s (%v): %w", t.name, row[0], err)
			}
		}
		return nil
	})
}

// insertSQL builds an INSERT for t using placeholder(i) for the i-th column.
func insertSQL(t table, placeholder func(i int) string) string {
	marks := make([]string, len(t.columns))
	for i := range t.columns {
		marks[i] = placeholder(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.name, strings.Join(t.columns, ", "), strings.Join(marks, ", "))
}

// sqlQueryer adapts database/sql to the reader.
type sqlQueryer struct {
	db *sql.DB
}

func (q sqlQueryer) query(ctx context.Context, query string, args ...any) (rowIter, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{rows}, nil
}

type sqlRows struct {
	*sql.Rows
}

func (r sqlRows) Close() { _ = r.Rows.Close() }
