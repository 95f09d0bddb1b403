package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// clickhouseBatchSize caps the rows sent per batch.
const clickhouseBatchSize = 1000

// ClickHouse mirrors a dataset into MergeTree tables for analytics. It is
// write-only and does not enforce foreign keys.
//
// ClickHouse has no multi-table transactions, so between Begin and Commit
// the reset and all rows are held in memory and only sent on Commit. A
// Commit that fails partway can leave the mirror partially written.
type ClickHouse struct {
	tableSink
	conn driver.Conn

	staging      bool
	resetPending bool
	pending      []stagedRows
}

type stagedRows struct {
	t    table
	rows [][]any
}

// OpenClickHouse connects using a clickhouse:// DSN and creates the tables.
// An empty dsn connects to localhost:9000 as the default user.
func OpenClickHouse(ctx context.Context, dsn string) (*ClickHouse, error) {
	opts := &clickhouse.Options{
		Addr: []string{"localhost:9000"},
		Auth: clickhouse.Auth{Database: "default", Username: "default"},
	}
	if dsn != "" {
		parsed, err := clickhouse.ParseDSN(dsn)
		if err != nil {
			return nil, fmt.Errorf("parsing clickhouse dsn: %w", err)
		}
		opts = parsed
	}
	opts.Settings = clickhouse.Settings{"max_execution_time": 60}
	opts.Compression = &clickhouse.Compression{Method: clickhouse.CompressionLZ4}

	conn, err := clickhouse.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("connecting to clickhouse: %w", err)
	}
	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("pinging clickhouse: %w", err)
	}

	c := &ClickHouse{conn: conn}
	c.tableSink = tableSink{ins: c}
	if err := c.createTables(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return c, nil
}

// Close closes the connection.
func (c *ClickHouse) Close() error {
	return c.conn.Close()
}

// Begin starts holding writes until Commit.
func (c *ClickHouse) Begin(context.Context) error {
	if c.staging {
		return errTxOpen
	}
	c.staging = true
	return nil
}

// Commit applies the held reset and sends the held rows in table order.
func (c *ClickHouse) Commit(ctx context.Context) error {
	if !c.staging {
		return errNoTx
	}
	reset, pending := c.resetPending, c.pending
	c.discard()

	if reset {
		if err := c.Reset(ctx); err != nil {
			return err
		}
	}
	for _, p := range pending {
		if err := c.insertRows(ctx, p.t, p.rows); err != nil {
			return err
		}
	}
	return nil
}

// Rollback drops the held writes. Nothing has reached the server yet.
func (c *ClickHouse) Rollback(context.Context) error {
	c.discard()
	return nil
}

func (c *ClickHouse) discard() {
	c.staging = false
	c.resetPending = false
	c.pending = nil
}

// Reset drops and recreates every table.
func (c *ClickHouse) Reset(ctx context.Context) error {
	if c.staging {
		c.resetPending = true
		c.pending = nil
		return nil
	}
	for i := len(allTables) - 1; i >= 0; i-- {
		if err := c.conn.Exec(ctx, "DROP TABLE IF EXISTS "+allTables[i].name); err != nil {
			return fmt.Errorf("dropping %s: %w", allTables[i].name, err)
		}
	}
	return c.createTables(ctx)
}

func (c *ClickHouse) createTables(ctx context.Context) error {
	for _, stmt := range clickhouseSchema {
		if err := c.conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	return nil
}

func (c *ClickHouse) insertRows(ctx context.Context, t table, rows [][]any) error {
	if c.staging {
		c.pending = append(c.pending, stagedRows{t: t, rows: rows})
		return nil
	}
	query := fmt.Sprintf("INSERT INTO %s (%s)", t.name, strings.Join(t.columns, ", "))
	for start := 0; start < len(rows); start += clickhouseBatchSize {
		end := min(start+clickhouseBatchSize, len(rows))
		batch, err := c.conn.PrepareBatch(ctx, query)
		if err != nil {
			return fmt.Errorf("preparing %s batch: %w", t.name, err)
		}
		for _, row := range rows[start:end] {
			if err := batch.Append(row...); err != nil {
				_ = batch.Abort()
				return fmt.Errorf("appending to %s batch: %w", t.name, err)
			}
		}
		if err := batch.Send(); err != nil {
			return fmt.Errorf("sending %s batch: %w", t.name, err)
		}
	}
	return nil
}
