package store

import (
	"context"
	"testing"
)

func TestClickHouse_StagesUntilCommit(t *testing.T) {
	ctx := context.Background()
	// No connection: anything that reaches the server would panic.
	c := &ClickHouse{}
	c.tableSink = tableSink{ins: c}

	if err := c.Begin(ctx); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := c.Begin(ctx); err == nil {
		t.Fatal("nested Begin succeeded")
	}
	if err := c.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	ds := testDataset(t, 42)
	if err := c.InsertBusinesses(ctx, ds.Businesses); err != nil {
		t.Fatalf("InsertBusinesses: %v", err)
	}
	if err := c.InsertProjects(ctx, ds.Projects); err != nil {
		t.Fatalf("InsertProjects: %v", err)
	}
	if !c.resetPending || len(c.pending) != 2 {
		t.Fatalf("staged reset=%v tables=%d, want reset and 2 tables", c.resetPending, len(c.pending))
	}
	if c.pending[1].t.name != "projects" || len(c.pending[1].rows) != len(ds.Projects) {
		t.Fatalf("second staged table = %s with %d rows", c.pending[1].t.name, len(c.pending[1].rows))
	}

	if err := c.Rollback(ctx); err != nil {
		t.Fatalf("Rollback: %v", err)
	}
	if c.staging || c.resetPending || c.pending != nil {
		t.Fatal("rollback left staged writes behind")
	}
	if err := c.Commit(ctx); err == nil {
		t.Fatal("Commit without Begin succeeded")
	}
}
