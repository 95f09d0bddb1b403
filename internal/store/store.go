// Package store persists generated datasets and serves the read queries
// dashboards depend on.
package store

//go:generate mockgen -destination=mocks/mock_store.go -package=mock_store github.com/constructioncheck/ccgen/internal/store Sink,Reader

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/constructioncheck/ccgen/internal/aace"
	"github.com/constructioncheck/ccgen/internal/model"
)

// Supported drivers.
const (
	DriverSQLite     = "sqlite"
	DriverPostgres   = "postgres"
	DriverClickHouse = "clickhouse"
)

// ErrReadUnsupported is returned when the read contract is requested from a
// write-only mirror.
var ErrReadUnsupported = errors.New("driver does not support reads")

var (
	errTxOpen = errors.New("transaction already open")
	errNoTx   = errors.New("no open transaction")
)

// Sink receives one generated dataset. Each Insert call persists a whole
// entity type and must be made in foreign-key order.
//
// Calls made between Begin and Commit, Reset included, form one unit of
// work: Rollback discards all of them and leaves the store as it was before
// Begin. Outside Begin each call commits on its own.
type Sink interface {
	Begin(ctx context.Context) error
	Reset(ctx context.Context) error
	InsertBusinesses(ctx context.Context, bs []model.Business) error
	InsertEstimators(ctx context.Context, es []model.Estimator) error
	InsertExpertise(ctx context.Context, xs []model.Expertise) error
	InsertProjects(ctx context.Context, ps []model.Project) error
	InsertEstimates(ctx context.Context, es []model.Estimate) error
	InsertReviews(ctx context.Context, rs []model.Review) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	Close() error
}

// Reader is the query surface used by reports, the HTTP API and verify.
type Reader interface {
	ProjectEstimates(ctx context.Context, projectID string) ([]model.Estimate, error)
	EstimatesByClass(ctx context.Context, class aace.Class) ([]model.Estimate, error)
	AllEstimates(ctx context.Context) ([]model.Estimate, error)
	Projects(ctx context.Context) ([]model.Project, error)
	ClassDistribution(ctx context.Context) ([]ClassStat, error)
	RegionalComparison(ctx context.Context, limit int) ([]RegionStat, error)
	AccuracyRows(ctx context.Context) ([]AccuracyRow, error)
	Counts(ctx context.Context) (Counts, error)
	ProgressiveProjects(ctx context.Context, limit int) ([]ProjectSummary, error)
	Dump(ctx context.Context, w io.Writer) error
	Close() error
}

// ClassStat aggregates estimates of one AACE class.
type ClassStat struct {
	Class          aace.Class
	Estimates      int
	Accepted       int
	AvgCost        float64
	AvgWidthPct    float64 // interval width as a share of project base cost
	AvgEngineering float64
	AvgContingency float64
}

// RegionStat compares project costs in one state with the national baseline.
type RegionStat struct {
	State           string
	Multiplier      float64
	Projects        int
	AvgAdjustedCost float64
	AvgNationalCost float64
}

// PremiumPct is the regional premium over the national baseline.
func (r RegionStat) PremiumPct() float64 {
	return (r.Multiplier - 1) * 100
}

// AccuracyRow pairs an accepted estimate on a completed project with the
// project's final cost. Projects without a recorded actual cost use the
// budget midpoint.
type AccuracyRow struct {
	EstimateID      string
	ProjectID       string
	EstimatorName   string
	Class           aace.Class
	Estimated       float64
	Actual          float64
	VarianceAmount  float64
	VariancePercent float64
}

// Counts holds table cardinalities.
type Counts struct {
	Businesses          int
	Estimators          int
	Expertise           int
	Projects            int
	Estimates           int
	Reviews             int
	ProgressiveProjects int
}

// ProjectSummary is a project that received a progressive estimate sequence.
type ProjectSummary struct {
	ID       string
	Title    string
	State    string
	BaseCost float64
	Status   model.ProjectStatus
	Steps    int
}

// OpenSink opens a Sink for driver. An empty sqlite dsn falls back to
// defaultPath.
func OpenSink(ctx context.Context, driver, dsn, defaultPath string) (Sink, error) {
	switch driver {
	case DriverSQLite, "":
		if dsn == "" {
			dsn = defaultPath
		}
		return OpenSQLite(dsn)
	case DriverPostgres:
		return OpenPostgres(ctx, dsn)
	case DriverClickHouse:
		return OpenClickHouse(ctx, dsn)
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}

// OpenReader opens a Reader for driver.
func OpenReader(ctx context.Context, driver, dsn, defaultPath string) (Reader, error) {
	switch driver {
	case DriverSQLite, "":
		if dsn == "" {
			dsn = defaultPath
		}
		return OpenSQLite(dsn)
	case DriverPostgres:
		return OpenPostgres(ctx, dsn)
	case DriverClickHouse:
		return nil, fmt.Errorf("%s: %w", driver, ErrReadUnsupported)
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}
