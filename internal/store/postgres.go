package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres stores a dataset in PostgreSQL. It implements Sink and Reader.
type Postgres struct {
	tableSink
	reader
	pool *pgxpool.Pool
	tx   pgx.Tx // set between Begin and Commit/Rollback
}

// OpenPostgres connects to dsn and applies the schema.
func OpenPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres: empty dsn")
	}
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing postgres dsn: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	p := &Postgres{pool: pool}
	p.tableSink = tableSink{ins: p}
	p.reader = reader{q: pgQueryer{pool: pool}}
	return p, nil
}

// Close releases the connection pool.
func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}

// Begin opens the transaction that later Reset and Insert calls join.
func (p *Postgres) Begin(ctx context.Context) error {
	if p.tx != nil {
		return errTxOpen
	}
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	p.tx = tx
	return nil
}

// Commit commits the open transaction.
func (p *Postgres) Commit(ctx context.Context) error {
	if p.tx == nil {
		return errNoTx
	}
	tx := p.tx
	p.tx = nil
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

// Rollback discards the open transaction. It is a no-op without one.
func (p *Postgres) Rollback(ctx context.Context) error {
	if p.tx == nil {
		return nil
	}
	tx := p.tx
	p.tx = nil
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("rolling back: %w", err)
	}
	return nil
}

// inTx runs fn in the open transaction, or in a transaction of its own.
func (p *Postgres) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	if p.tx != nil {
		return fn(p.tx)
	}
	return pgx.BeginFunc(ctx, p.pool, fn)
}

// Reset drops every table and recreates the schema.
func (p *Postgres) Reset(ctx context.Context) error {
	names := make([]string, 0, len(allTables))
	for i := len(allTables) - 1; i >= 0; i-- {
		names = append(names, allTables[i].name)
	}
	return p.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "DROP TABLE IF EXISTS "+strings.Join(names, ", ")+" CASCADE"); err != nil {
			return fmt.Errorf("dropping tables: %w", err)
		}
		if _, err := tx.Exec(ctx, postgresSchema); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
		return nil
	})
}

func (p *Postgres) insertRows(ctx context.Context, t table, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	return p.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.CopyFrom(ctx, pgx.Identifier{t.name}, t.columns, pgx.CopyFromRows(rows)); err != nil {
			return fmt.Errorf("copying into %s: %w", t.name, err)
		}
		return nil
	})
}

type pgQueryer struct {
	pool *pgxpool.Pool
}

func (q pgQueryer) query(ctx context.Context, query string, args ...any) (rowIter, error) {
	return q.pool.Query(ctx, rebind(query), args...)
}

// rebind rewrites '?' placeholders to Postgres positional parameters.
func rebind(query string) string {
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
