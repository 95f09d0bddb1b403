package store

import (
	"bytes"
	"context"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/constructioncheck/ccgen/internal/aace"
	"github.com/constructioncheck/ccgen/internal/config"
	"github.com/constructioncheck/ccgen/internal/generate"
	"github.com/constructioncheck/ccgen/internal/model"
	"github.com/constructioncheck/ccgen/internal/rng"
)

var testWindow = generate.Window{
	Start: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC),
}

func testDataset(t *testing.T, seed int64) model.Dataset {
	t.Helper()
	var (
		ds  model.Dataset
		err error
	)
	if ds.Businesses, err = generate.Businesses(rng.New(seed, rng.Businesses), 12, testWindow); err != nil {
		t.Fatalf("Businesses: %v", err)
	}
	if ds.Estimators, err = generate.Estimators(rng.New(seed, rng.Estimators), 4, 6, testWindow); err != nil {
		t.Fatalf("Estimators: %v", err)
	}
	if ds.Expertise, err = generate.Expertise(rng.New(seed, rng.Expertise), ds.Estimators, testWindow); err != nil {
		t.Fatalf("Expertise: %v", err)
	}
	if ds.Projects, err = generate.Projects(rng.New(seed, rng.Projects), ds.Businesses, config.DefaultRegions(), 60, testWindow); err != nil {
		t.Fatalf("Projects: %v", err)
	}
	res, err := generate.Estimates(rng.New(seed, rng.Estimates), ds.Projects, ds.Estimators, generate.EstimateParams{ProgressiveRate: 0.40, MaxSequence: 5})
	if err != nil {
		t.Fatalf("Estimates: %v", err)
	}
	ds.Estimates = res.Estimates
	if ds.Reviews, err = generate.Reviews(rng.New(seed, rng.Reviews), ds.Projects, ds.Businesses, ds.Estimators, 0.5); err != nil {
		t.Fatalf("Reviews: %v", err)
	}
	return ds
}

func openTestDB(t *testing.T) *SQLite {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func load(t *testing.T, s Sink, ds model.Dataset) {
	t.Helper()
	ctx := context.Background()
	steps := []struct {
		name string
		fn   func() error
	}{
		{"businesses", func() error { return s.InsertBusinesses(ctx, ds.Businesses) }},
		{"estimators", func() error { return s.InsertEstimators(ctx, ds.Estimators) }},
		{"expertise", func() error { return s.InsertExpertise(ctx, ds.Expertise) }},
		{"projects", func() error { return s.InsertProjects(ctx, ds.Projects) }},
		{"estimates", func() error { return s.InsertEstimates(ctx, ds.Estimates) }},
		{"reviews", func() error { return s.InsertReviews(ctx, ds.Reviews) }},
	}
	for _, st := range steps {
		if err := st.fn(); err != nil {
			t.Fatalf("inserting %s: %v", st.name, err)
		}
	}
}

func TestSQLite_Counts(t *testing.T) {
	ds := testDataset(t, 42)
	db := openTestDB(t)
	load(t, db, ds)

	c, err := db.Counts(context.Background())
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	want := Counts{
		Businesses: len(ds.Businesses),
		Estimators: len(ds.Estimators),
		Expertise:  len(ds.Expertise),
		Projects:   len(ds.Projects),
		Estimates:  len(ds.Estimates),
		Reviews:    len(ds.Reviews),
	}
	progressive := map[string]bool{}
	for _, e := range ds.Estimates {
		if e.Sequence > 1 {
			progressive[e.ProjectID] = true
		}
	}
	want.ProgressiveProjects = len(progressive)
	if c != want {
		t.Fatalf("Counts = %+v, want %+v", c, want)
	}
}

func TestSQLite_ProjectEstimatesRoundTrip(t *testing.T) {
	ds := testDataset(t, 42)
	db := openTestDB(t)
	load(t, db, ds)

	byProject := map[string]int{}
	byID := map[string]model.Estimate{}
	for _, e := range ds.Estimates {
		byProject[e.ProjectID]++
		byID[e.ID] = e
	}

	ctx := context.Background()
	for id, n := range byProject {
		got, err := db.ProjectEstimates(ctx, id)
		if err != nil {
			t.Fatalf("ProjectEstimates(%s): %v", id, err)
		}
		if len(got) != n {
			t.Fatalf("project %s: %d estimates, want %d", id, len(got), n)
		}
		for i, g := range got {
			if i > 0 && g.Sequence < got[i-1].Sequence {
				t.Fatalf("project %s not ordered by sequence", id)
			}
			w, ok := byID[g.ID]
			if !ok {
				t.Fatalf("unknown estimate %s", g.ID)
			}
			if g.Sequence != w.Sequence || g.Class != w.Class || g.Status != w.Status || g.EstimatorID != w.EstimatorID {
				t.Fatalf("estimate %s = %+v, want %+v", g.ID, g, w)
			}
			if g.EstimatedTotalCost != w.EstimatedTotalCost || g.ConfidenceLow != w.ConfidenceLow || g.ConfidenceHigh != w.ConfidenceHigh {
				t.Fatalf("estimate %s costs did not round trip", g.ID)
			}
			if !g.SubmittedDate.Equal(w.SubmittedDate) {
				t.Fatalf("estimate %s submitted %v, want %v", g.ID, g.SubmittedDate, w.SubmittedDate)
			}
			if g.Breakdown != w.Breakdown {
				t.Fatalf("estimate %s breakdown %+v, want %+v", g.ID, g.Breakdown, w.Breakdown)
			}
			if g.ActualCost != nil || g.VariancePercent != nil {
				t.Fatalf("estimate %s reserved columns should be NULL", g.ID)
			}
		}
	}
}

func TestSQLite_ProjectsRoundTrip(t *testing.T) {
	ds := testDataset(t, 7)
	db := openTestDB(t)
	load(t, db, ds)

	got, err := db.Projects(context.Background())
	if err != nil {
		t.Fatalf("Projects: %v", err)
	}
	want := map[string]model.Project{}
	for _, p := range ds.Projects {
		want[p.ID] = p
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for _, g := range got {
		w := want[g.ID]
		if g.BudgetMin != w.BudgetMin || g.BudgetMax != w.BudgetMax || g.RegionalCostMultiplier != w.RegionalCostMultiplier {
			t.Fatalf("project %s budget did not round trip", g.ID)
		}
		if g.Status != w.Status || g.State != w.State || g.Subtype != w.Subtype {
			t.Fatalf("project %s = %+v, want %+v", g.ID, g, w)
		}
		if !g.PostedDate.Equal(w.PostedDate) || !g.EstimateNeededBy.Equal(w.EstimateNeededBy) {
			t.Fatalf("project %s dates did not round trip", g.ID)
		}
		if g.ActualCost != nil {
			t.Fatalf("project %s actual cost should be NULL", g.ID)
		}
	}
}

func TestSQLite_ForeignKeyViolation(t *testing.T) {
	ds := testDataset(t, 42)
	db := openTestDB(t)

	// Estimates before their projects exist.
	err := db.InsertEstimates(context.Background(), ds.Estimates[:1])
	if err == nil {
		t.Fatal("expected foreign key error")
	}
	if !strings.Contains(err.Error(), "estimates") {
		t.Fatalf("error %q does not name the table", err)
	}
}

func TestSQLite_DuplicateKeyRollsBack(t *testing.T) {
	ds := testDataset(t, 42)
	db := openTestDB(t)
	ctx := context.Background()

	dup := append([]model.Business{}, ds.Businesses[:3]...)
	dup = append(dup, ds.Businesses[0])
	if err := db.InsertBusinesses(ctx, dup); err == nil {
		t.Fatal("expected primary key error")
	}
	c, err := db.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if c.Businesses != 0 {
		t.Fatalf("businesses = %d after failed insert, want 0", c.Businesses)
	}
}

func TestSQLite_Reset(t *testing.T) {
	ds := testDataset(t, 42)
	db := openTestDB(t)
	load(t, db, ds)

	ctx := context.Background()
	if err := db.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	c, err := db.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if c != (Counts{}) {
		t.Fatalf("Counts after reset = %+v", c)
	}
	load(t, db, ds)
}

func TestDump_Deterministic(t *testing.T) {
	dump := func(ds model.Dataset) []byte {
		db := openTestDB(t)
		load(t, db, ds)
		var buf bytes.Buffer
		if err := db.Dump(context.Background(), &buf); err != nil {
			t.Fatalf("Dump: %v", err)
		}
		return buf.Bytes()
	}

	a := dump(testDataset(t, 42))
	b := dump(testDataset(t, 42))
	if !bytes.Equal(a, b) {
		t.Fatal("same seed produced different dumps")
	}
	if c := dump(testDataset(t, 43)); bytes.Equal(a, c) {
		t.Fatal("different seeds produced identical dumps")
	}
	for _, tbl := range allTables {
		if !bytes.Contains(a, []byte("# "+tbl.name+"\n")) {
			t.Fatalf("dump is missing table %s", tbl.name)
		}
	}
}

func TestReader_ClassDistribution(t *testing.T) {
	ds := testDataset(t, 42)
	db := openTestDB(t)
	load(t, db, ds)

	stats, err := db.ClassDistribution(context.Background())
	if err != nil {
		t.Fatalf("ClassDistribution: %v", err)
	}
	total := 0
	for i, cs := range stats {
		total += cs.Estimates
		if i > 0 && cs.Class >= stats[i-1].Class {
			t.Fatalf("classes out of order: %v after %v", cs.Class, stats[i-1].Class)
		}
		if cs.Accepted > cs.Estimates {
			t.Fatalf("%v: accepted %d > estimates %d", cs.Class, cs.Accepted, cs.Estimates)
		}
		if cs.AvgWidthPct <= 0 {
			t.Fatalf("%v: width %.2f", cs.Class, cs.AvgWidthPct)
		}
	}
	if total != len(ds.Estimates) {
		t.Fatalf("distribution covers %d estimates, want %d", total, len(ds.Estimates))
	}
}

func TestReader_EstimatesByClass(t *testing.T) {
	ds := testDataset(t, 42)
	db := openTestDB(t)
	load(t, db, ds)

	ctx := context.Background()
	total := 0
	for _, c := range aace.Progression() {
		got, err := db.EstimatesByClass(ctx, c)
		if err != nil {
			t.Fatalf("EstimatesByClass(%v): %v", c, err)
		}
		for _, e := range got {
			if e.Class != c {
				t.Fatalf("got %v in %v query", e.Class, c)
			}
		}
		total += len(got)
	}
	all, err := db.AllEstimates(ctx)
	if err != nil {
		t.Fatalf("AllEstimates: %v", err)
	}
	if total != len(all) || total != len(ds.Estimates) {
		t.Fatalf("by class %d, all %d, generated %d", total, len(all), len(ds.Estimates))
	}
}

func TestReader_RegionalComparison(t *testing.T) {
	ds := testDataset(t, 42)
	db := openTestDB(t)
	load(t, db, ds)

	ctx := context.Background()
	all, err := db.RegionalComparison(ctx, 0)
	if err != nil {
		t.Fatalf("RegionalComparison: %v", err)
	}
	projects := 0
	for i, rs := range all {
		projects += rs.Projects
		if i > 0 && rs.Multiplier > all[i-1].Multiplier {
			t.Fatal("regions not ordered by multiplier")
		}
		if want := config.DefaultRegions().Multiplier(rs.State); rs.Multiplier != want {
			t.Fatalf("%s multiplier %.2f, want %.2f", rs.State, rs.Multiplier, want)
		}
		if got := rs.AvgNationalCost * rs.Multiplier; math.Abs(got-rs.AvgAdjustedCost) > 0.01*rs.AvgAdjustedCost {
			t.Fatalf("%s: national %.2f x %.2f != adjusted %.2f", rs.State, rs.AvgNationalCost, rs.Multiplier, rs.AvgAdjustedCost)
		}
	}
	if projects != len(ds.Projects) {
		t.Fatalf("regions cover %d projects, want %d", projects, len(ds.Projects))
	}

	top, err := db.RegionalComparison(ctx, 3)
	if err != nil {
		t.Fatalf("RegionalComparison(3): %v", err)
	}
	if len(top) != min(3, len(all)) {
		t.Fatalf("limit 3 returned %d rows", len(top))
	}
}

func TestReader_AccuracyRows(t *testing.T) {
	ds := testDataset(t, 42)
	db := openTestDB(t)
	load(t, db, ds)

	projects := map[string]model.Project{}
	for _, p := range ds.Projects {
		projects[p.ID] = p
	}
	rows, err := db.AccuracyRows(context.Background())
	if err != nil {
		t.Fatalf("AccuracyRows: %v", err)
	}
	for _, r := range rows {
		p := projects[r.ProjectID]
		if p.Status != model.StatusCompleted {
			t.Fatalf("row for %s project %s", p.Status, p.ID)
		}
		if math.Abs(r.Actual-p.BaseCost()) > 0.01 {
			t.Fatalf("actual %.2f, want budget midpoint %.2f", r.Actual, p.BaseCost())
		}
		if math.Abs(r.VarianceAmount-(r.Actual-r.Estimated)) > 0.01 {
			t.Fatalf("variance amount %.2f", r.VarianceAmount)
		}
		if r.EstimatorName == "" {
			t.Fatal("missing estimator name")
		}
	}
}

func TestReader_ProgressiveProjects(t *testing.T) {
	ds := testDataset(t, 42)
	db := openTestDB(t)
	load(t, db, ds)

	ctx := context.Background()
	got, err := db.ProgressiveProjects(ctx, 0)
	if err != nil {
		t.Fatalf("ProgressiveProjects: %v", err)
	}
	c, err := db.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if len(got) != c.ProgressiveProjects {
		t.Fatalf("listed %d progressive projects, counted %d", len(got), c.ProgressiveProjects)
	}
	for i, ps := range got {
		if ps.Steps < 2 || ps.Steps > 5 {
			t.Fatalf("project %s has %d steps", ps.ID, ps.Steps)
		}
		if i > 0 && ps.Steps > got[i-1].Steps {
			t.Fatal("not ordered by step count")
		}
	}
}

func TestOpenReader_ClickHouseIsWriteOnly(t *testing.T) {
	_, err := OpenReader(context.Background(), DriverClickHouse, "", "")
	if !errors.Is(err, ErrReadUnsupported) {
		t.Fatalf("err = %v, want ErrReadUnsupported", err)
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	if _, err := OpenSink(context.Background(), "mysql", "", ""); err == nil {
		t.Fatal("expected error for unknown driver")
	}
	if _, err := OpenReader(context.Background(), "mysql", "", ""); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestOpenSink_SQLiteDefaultPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cc.db")
	s, err := OpenSink(context.Background(), DriverSQLite, "", path)
	if err != nil {
		t.Fatalf("OpenSink: %v", err)
	}
	_ = s.Close()
	if !config.Exists(path) {
		t.Fatalf("database not created at %s", path)
	}
}

func TestSQLite_RollbackDiscardsResetAndInserts(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	load(t, db, testDataset(t, 42))
	before, err := db.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}

	if err := db.Begin(ctx); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := db.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	other := testDataset(t, 7)
	if err := db.InsertBusinesses(ctx, other.Businesses); err != nil {
		t.Fatalf("InsertBusinesses: %v", err)
	}
	if err := db.Rollback(ctx); err != nil {
		t.Fatalf("Rollback: %v", err)
	}

	after, err := db.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if after != before {
		t.Fatalf("counts after rollback = %+v, want %+v", after, before)
	}
}

func TestSQLite_CommitPersists(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	ds := testDataset(t, 42)

	if err := db.Begin(ctx); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := db.Begin(ctx); err == nil {
		t.Fatal("nested Begin succeeded")
	}
	load(t, db, ds)
	if err := db.Commit(ctx); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if err := db.Commit(ctx); err == nil {
		t.Fatal("Commit without Begin succeeded")
	}
	if err := db.Rollback(ctx); err != nil {
		t.Fatalf("Rollback without Begin: %v", err)
	}

	c, err := db.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if c.Estimates != len(ds.Estimates) || c.Reviews != len(ds.Reviews) {
		t.Fatalf("Counts = %+v after commit", c)
	}
}

func TestSQLite_MalformedDatesAreErrors(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	ds := testDataset(t, 42)
	load(t, db, ds)

	p := ds.Projects[0]
	if _, err := db.db.ExecContext(ctx, "UPDATE projects SET posted_date = 'yesterday' WHERE project_id = ?", p.ID); err != nil {
		t.Fatalf("corrupting project: %v", err)
	}
	_, err := db.Projects(ctx)
	if err == nil || !strings.Contains(err.Error(), p.ID) || !strings.Contains(err.Error(), "posted_date") {
		t.Fatalf("Projects err = %v, want it to name %s and posted_date", err, p.ID)
	}

	e := ds.Estimates[0]
	if _, err := db.db.ExecContext(ctx, "UPDATE estimates SET submitted_date = '2024-13-45' WHERE estimate_id = ?", e.ID); err != nil {
		t.Fatalf("corrupting estimate: %v", err)
	}
	_, err = db.ProjectEstimates(ctx, e.ProjectID)
	if err == nil || !strings.Contains(err.Error(), e.ID) {
		t.Fatalf("ProjectEstimates err = %v, want it to name %s", err, e.ID)
	}
}
