// Package verify re-checks the progressive-estimate invariants on a stored
// or in-memory dataset.
package verify

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/constructioncheck/ccgen/internal/aace"
	"github.com/constructioncheck/ccgen/internal/model"
)

// Rules checked by Check.
const (
	RuleMonotonicWidth     = "monotonic_width"
	RuleClassProgression   = "class_progression"
	RuleTemporalOrder      = "temporal_order"
	RuleTerminalAcceptance = "terminal_acceptance"
	RulePositiveCost       = "positive_cost"
	RuleOrphanEstimate     = "orphan_estimate"
)

// Step bounds between consecutive progressive submissions.
const (
	MinStepDays = 7
	MaxStepDays = 21
)

// Source supplies the rows to verify. store.Reader satisfies it.
type Source interface {
	Projects(ctx context.Context) ([]model.Project, error)
	AllEstimates(ctx context.Context) ([]model.Estimate, error)
}

// Violation is one broken invariant.
type Violation struct {
	Rule       string
	ProjectID  string
	EstimateID string
	Detail     string
}

func (v Violation) String() string {
	if v.EstimateID != "" {
		return fmt.Sprintf("%s: project %s estimate %s: %s", v.Rule, v.ProjectID, v.EstimateID, v.Detail)
	}
	return fmt.Sprintf("%s: project %s: %s", v.Rule, v.ProjectID, v.Detail)
}

// Report summarises a verification pass.
type Report struct {
	Projects            int
	ProgressiveProjects int
	Estimates           int
	Violations          []Violation
}

// OK reports whether no invariant was broken.
func (r Report) OK() bool { return len(r.Violations) == 0 }

// Run loads every project and estimate from src and checks them.
func Run(ctx context.Context, src Source) (Report, error) {
	projects, err := src.Projects(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("loading projects: %w", err)
	}
	estimates, err := src.AllEstimates(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("loading estimates: %w", err)
	}
	return Check(projects, estimates), nil
}

// Check verifies estimates against their projects. A project is treated as
// progressive when any of its estimates has a sequence above one.
func Check(projects []model.Project, estimates []model.Estimate) Report {
	rep := Report{Projects: len(projects), Estimates: len(estimates)}

	byID := make(map[string]model.Project, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
	}
	groups := make(map[string][]model.Estimate)
	var order []string
	for _, e := range estimates {
		if _, ok := groups[e.ProjectID]; !ok {
			order = append(order, e.ProjectID)
		}
		groups[e.ProjectID] = append(groups[e.ProjectID], e)
	}
	sort.Strings(order)

	for _, pid := range order {
		seq := groups[pid]
		p, ok := byID[pid]
		if !ok {
			rep.add(RuleOrphanEstimate, pid, seq[0].ID, "project does not exist")
			continue
		}
		for _, e := range seq {
			checkPositive(&rep, e)
		}
		if !isProgressive(seq) {
			continue
		}
		rep.ProgressiveProjects++
		sort.SliceStable(seq, func(i, j int) bool { return seq[i].Sequence < seq[j].Sequence })
		checkSequence(&rep, p, seq)
	}
	return rep
}

func isProgressive(seq []model.Estimate) bool {
	for _, e := range seq {
		if e.Sequence > 1 {
			return true
		}
	}
	return false
}

func checkPositive(rep *Report, e model.Estimate) {
	b := e.Breakdown
	switch {
	case e.EstimatedTotalCost <= 0:
		rep.add(RulePositiveCost, e.ProjectID, e.ID, fmt.Sprintf("total %.2f", e.EstimatedTotalCost))
	case e.ConfidenceLow <= 0 || e.ConfidenceHigh <= e.ConfidenceLow:
		rep.add(RulePositiveCost, e.ProjectID, e.ID, fmt.Sprintf("interval [%.2f, %.2f]", e.ConfidenceLow, e.ConfidenceHigh))
	case b.Labor <= 0 || b.Materials <= 0 || b.Equipment <= 0 || b.Subcontractor <= 0 || b.Overhead <= 0 || b.Profit <= 0:
		rep.add(RulePositiveCost, e.ProjectID, e.ID, fmt.Sprintf("breakdown %+v", b))
	}
}

// checkSequence verifies one progressive sequence already sorted by
// estimate_sequence.
func checkSequence(rep *Report, p model.Project, seq []model.Estimate) {
	prev := p.PostedDate
	for i, e := range seq {
		if e.Sequence != i+1 {
			rep.add(RuleClassProgression, p.ID, e.ID, fmt.Sprintf("sequence %d at position %d", e.Sequence, i+1))
		}
		if want := aace.Class5 - aace.Class(i); e.Class != want {
			rep.add(RuleClassProgression, p.ID, e.ID, fmt.Sprintf("step %d is %s, want %s", i+1, e.Class, want))
		}
		if i > 0 && e.IntervalWidth() >= seq[i-1].IntervalWidth() {
			rep.add(RuleMonotonicWidth, p.ID, e.ID,
				fmt.Sprintf("width %.2f not narrower than %.2f", e.IntervalWidth(), seq[i-1].IntervalWidth()))
		}
		if gap := e.SubmittedDate.Sub(prev); gap < MinStepDays*24*time.Hour || gap > MaxStepDays*24*time.Hour {
			rep.add(RuleTemporalOrder, p.ID, e.ID, fmt.Sprintf("submitted %s after previous step", gap))
		}
		prev = e.SubmittedDate

		last := i == len(seq)-1
		switch {
		case last && e.Status != model.EstimateAccepted:
			rep.add(RuleTerminalAcceptance, p.ID, e.ID, fmt.Sprintf("final step is %s", e.Status))
		case !last && e.Status != model.EstimateSuperseded:
			rep.add(RuleTerminalAcceptance, p.ID, e.ID, fmt.Sprintf("step %d is %s, want superseded", i+1, e.Status))
		}
	}
}

func (r *Report) add(rule, projectID, estimateID, detail string) {
	r.Violations = append(r.Violations, Violation{Rule: rule, ProjectID: projectID, EstimateID: estimateID, Detail: detail})
}
