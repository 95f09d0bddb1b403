package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/constructioncheck/ccgen/internal/aace"
	"github.com/constructioncheck/ccgen/internal/model"
)

// rowIter is the subset of a result set the reader needs. pgx.Rows satisfies
// it directly; database/sql rows are wrapped by sqlRows.
type rowIter interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// queryer runs a query written with '?' placeholders.
type queryer interface {
	query(ctx context.Context, query string, args ...any) (rowIter, error)
}

// reader implements the Reader queries for any SQL backend.
type reader struct {
	q queryer
}

var (
	estimateSelect = "SELECT " + strings.Join(estimatesTable.columns, ", ") + " FROM estimates"
	projectSelect  = "SELECT " + strings.Join(projectsTable.columns, ", ") + " FROM projects"
)

// ProjectEstimates returns the estimates for one project ordered by sequence.
func (r reader) ProjectEstimates(ctx context.Context, projectID string) ([]model.Estimate, error) {
	return r.estimates(ctx, estimateSelect+" WHERE project_id = ? ORDER BY estimate_sequence, estimate_id", projectID)
}

// EstimatesByClass returns every estimate of class c.
func (r reader) EstimatesByClass(ctx context.Context, c aace.Class) ([]model.Estimate, error) {
	return r.estimates(ctx, estimateSelect+" WHERE aace_class = ? ORDER BY project_id, estimate_sequence, estimate_id", c.String())
}

// AllEstimates returns every estimate grouped by project in sequence order.
func (r reader) AllEstimates(ctx context.Context) ([]model.Estimate, error) {
	return r.estimates(ctx, estimateSelect+" ORDER BY project_id, estimate_sequence, estimate_id")
}

func (r reader) estimates(ctx context.Context, query string, args ...any) ([]model.Estimate, error) {
	rows, err := r.q.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying estimates: %w", err)
	}
	defer rows.Close()

	var out []model.Estimate
	for rows.Next() {
		var (
			e                        model.Estimate
			class, status, submitted string
			varianceAmount           *float64
		)
		b := &e.Breakdown
		if err := rows.Scan(
			&e.ID, &e.ProjectID, &e.EstimatorID, &e.Sequence,
			&class, &e.EngineeringCompletion, &e.EstimatedTotalCost,
			&e.ConfidenceLow, &e.ConfidenceHigh,
			&b.Labor, &b.Materials, &b.Equipment, &b.Subcontractor,
			&b.Overhead, &b.Profit, &e.ContingencyPercent, &e.ContingencyAmount,
			&e.EstimatedDurationDays, &e.EstimationMethod, &status, &submitted,
			&e.ActualCost, &varianceAmount, &e.VariancePercent,
		); err != nil {
			return nil, err
		}
		if e.Class, err = aace.Parse(class); err != nil {
			return nil, fmt.Errorf("estimate %s: %w", e.ID, err)
		}
		e.Status = model.EstimateStatus(status)
		if e.SubmittedDate, err = parseTimestamp(submitted); err != nil {
			return nil, fmt.Errorf("estimate %s: submitted_date: %w", e.ID, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Projects returns every project ordered by id.
func (r reader) Projects(ctx context.Context) ([]model.Project, error) {
	rows, err := r.q.query(ctx, projectSelect+" ORDER BY project_id")
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer rows.Close()

	var out []model.Project
	for rows.Next() {
		var (
			p                        model.Project
			neededBy, status, posted string
		)
		if err := rows.Scan(
			&p.ID, &p.BusinessID, &p.Title, &p.Description,
			&p.ProjectType, &p.Sector, &p.Subtype, &p.City, &p.State,
			&p.Zip, &p.RegionalCostMultiplier, &p.SquareFootage,
			&p.BudgetMin, &p.BudgetMax, &neededBy,
			&status, &posted, &p.UrgencyLevel, &p.ActualCost, &p.CostVariancePercent,
		); err != nil {
			return nil, err
		}
		if p.EstimateNeededBy, err = parseDate(neededBy); err != nil {
			return nil, fmt.Errorf("project %s: estimate_needed_by: %w", p.ID, err)
		}
		p.Status = model.ProjectStatus(status)
		if p.PostedDate, err = parseTimestamp(posted); err != nil {
			return nil, fmt.Errorf("project %s: posted_date: %w", p.ID, err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

const classDistributionSQL = `
SELECT e.aace_class,
       COUNT(*),
       SUM(CASE WHEN e.status = 'accepted' THEN 1 ELSE 0 END),
       AVG(e.estimated_total_cost),
       AVG((e.confidence_interval_high - e.confidence_interval_low)
           / ((p.estimated_budget_min + p.estimated_budget_max) / 2) * 100),
       AVG(e.engineering_completion_percent),
       AVG(e.contingency_percent)
FROM estimates e
JOIN projects p ON p.project_id = e.project_id
GROUP BY e.aace_class
ORDER BY e.aace_class DESC`

// ClassDistribution aggregates estimates per class, least mature first.
func (r reader) ClassDistribution(ctx context.Context) ([]ClassStat, error) {
	rows, err := r.q.query(ctx, classDistributionSQL)
	if err != nil {
		return nil, fmt.Errorf("querying class distribution: %w", err)
	}
	defer rows.Close()

	var out []ClassStat
	for rows.Next() {
		var (
			cs    ClassStat
			class string
		)
		if err := rows.Scan(&class, &cs.Estimates, &cs.Accepted, &cs.AvgCost,
			&cs.AvgWidthPct, &cs.AvgEngineering, &cs.AvgContingency); err != nil {
			return nil, err
		}
		if cs.Class, err = aace.Parse(class); err != nil {
			return nil, err
		}
		out = append(out, cs)
	}
	return out, rows.Err()
}

const regionalComparisonSQL = `
SELECT project_state,
       MAX(regional_cost_multiplier),
       COUNT(*),
       AVG((estimated_budget_min + estimated_budget_max) / 2),
       AVG((estimated_budget_min + estimated_budget_max) / 2 / regional_cost_multiplier)
FROM projects
GROUP BY project_state
ORDER BY MAX(regional_cost_multiplier) DESC, project_state`

// RegionalComparison reports per-state costs, most expensive region first.
// A limit of zero or less returns every state.
func (r reader) RegionalComparison(ctx context.Context, limit int) ([]RegionStat, error) {
	query, args := withLimit(regionalComparisonSQL, limit)
	rows, err := r.q.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying regional comparison: %w", err)
	}
	defer rows.Close()

	var out []RegionStat
	for rows.Next() {
		var rs RegionStat
		if err := rows.Scan(&rs.State, &rs.Multiplier, &rs.Projects, &rs.AvgAdjustedCost, &rs.AvgNationalCost); err != nil {
			return nil, err
		}
		out = append(out, rs)
	}
	return out, rows.Err()
}

const accuracySQL = `
SELECT e.estimate_id, e.project_id, est.display_name, e.aace_class, e.estimated_total_cost,
       COALESCE(p.actual_cost, (p.estimated_budget_min + p.estimated_budget_max) / 2)
FROM estimates e
JOIN projects p ON p.project_id = e.project_id
JOIN estimators est ON est.estimator_id = e.estimator_id
WHERE e.status = 'accepted' AND p.status = 'completed'
ORDER BY e.estimate_id`

// AccuracyRows pairs accepted estimates with completed project costs.
func (r reader) AccuracyRows(ctx context.Context) ([]AccuracyRow, error) {
	rows, err := r.q.query(ctx, accuracySQL)
	if err != nil {
		return nil, fmt.Errorf("querying accuracy: %w", err)
	}
	defer rows.Close()

	var out []AccuracyRow
	for rows.Next() {
		var (
			ar    AccuracyRow
			class string
		)
		if err := rows.Scan(&ar.EstimateID, &ar.ProjectID, &ar.EstimatorName, &class, &ar.Estimated, &ar.Actual); err != nil {
			return nil, err
		}
		if ar.Class, err = aace.Parse(class); err != nil {
			return nil, err
		}
		ar.VarianceAmount = model.RoundCents(ar.Actual - ar.Estimated)
		if ar.Estimated != 0 {
			ar.VariancePercent = model.Round((ar.Actual-ar.Estimated)/ar.Estimated*100, 2)
		}
		out = append(out, ar)
	}
	return out, rows.Err()
}

const countsSQL = `
SELECT (SELECT COUNT(*) FROM businesses),
       (SELECT COUNT(*) FROM estimators),
       (SELECT COUNT(*) FROM expertise),
       (SELECT COUNT(*) FROM projects),
       (SELECT COUNT(*) FROM estimates),
       (SELECT COUNT(*) FROM reviews),
       (SELECT COUNT(DISTINCT project_id) FROM estimates WHERE estimate_sequence > 1)`

// Counts returns the size of every table plus the number of projects that
// received a progressive sequence.
func (r reader) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	rows, err := r.q.query(ctx, countsSQL)
	if err != nil {
		return c, fmt.Errorf("querying counts: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&c.Businesses, &c.Estimators, &c.Expertise, &c.Projects,
			&c.Estimates, &c.Reviews, &c.ProgressiveProjects); err != nil {
			return c, err
		}
	}
	return c, rows.Err()
}

const progressiveProjectsSQL = `
SELECT p.project_id, p.project_title, p.project_state,
       (p.estimated_budget_min + p.estimated_budget_max) / 2,
       p.status, COUNT(*)
FROM projects p
JOIN estimates e ON e.project_id = p.project_id
GROUP BY p.project_id, p.project_title, p.project_state,
         p.estimated_budget_min, p.estimated_budget_max, p.status
HAVING MAX(e.estimate_sequence) > 1
ORDER BY COUNT(*) DESC, p.project_id`

// ProgressiveProjects lists projects with more than one sequenced estimate,
// longest sequences first.
func (r reader) ProgressiveProjects(ctx context.Context, limit int) ([]ProjectSummary, error) {
	query, args := withLimit(progressiveProjectsSQL, limit)
	rows, err := r.q.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying progressive projects: %w", err)
	}
	defer rows.Close()

	var out []ProjectSummary
	for rows.Next() {
		var (
			ps     ProjectSummary
			status string
		)
		if err := rows.Scan(&ps.ID, &ps.Title, &ps.State, &ps.BaseCost, &status, &ps.Steps); err != nil {
			return nil, err
		}
		ps.Status = model.ProjectStatus(status)
		out = append(out, ps)
	}
	return out, rows.Err()
}

func withLimit(query string, limit int) (string, []any) {
	if limit <= 0 {
		return query, nil
	}
	return query + "\nLIMIT ?", []any{limit}
}
