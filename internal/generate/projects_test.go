package generate

import (
	"errors"
	"math"
	"testing"

	"github.com/constructioncheck/ccgen/internal/config"
	"github.com/constructioncheck/ccgen/internal/model"
	"github.com/constructioncheck/ccgen/internal/rng"
)

func testBusinesses(t *testing.T, n int) []model.Business {
	t.Helper()
	bs, err := Businesses(rng.New(42, rng.Businesses), n, testWindow)
	if err != nil {
		t.Fatalf("Businesses: %v", err)
	}
	return bs
}

func TestProjects_BudgetsFollowRegion(t *testing.T) {
	projects, err := Projects(rng.New(42, rng.Projects), testBusinesses(t, 20), config.DefaultRegions(), 500, testWindow)
	if err != nil {
		t.Fatalf("Projects: %v", err)
	}
	if len(projects) != 500 {
		t.Fatalf("len = %d", len(projects))
	}
	for _, p := range projects {
		if want := config.DefaultRegions().Multiplier(p.State); p.RegionalCostMultiplier != want {
			t.Fatalf("%s multiplier = %.2f, want %.2f", p.State, p.RegionalCostMultiplier, want)
		}
		if p.BudgetMin > p.BudgetMax {
			t.Fatalf("budget min %.2f > max %.2f", p.BudgetMin, p.BudgetMax)
		}
		if ratio := p.BudgetMax / p.BudgetMin; math.Abs(ratio-1.5) > 0.01 {
			t.Fatalf("budget max/min = %.4f, want 1.5", ratio)
		}
	}
}

func TestBudget_RegionalRoundTrip(t *testing.T) {
	s := rng.New(42, rng.Projects)
	regions := config.DefaultRegions()
	for _, code := range regions.Codes() {
		mult := regions.Multiplier(code)
		for range 50 {
			draw := s.LogNormal(BaseCostMu, BaseCostSigma)
			lo, hi := budget(draw, mult)
			p := model.Project{BudgetMin: lo, BudgetMax: hi, RegionalCostMultiplier: mult}

			recovered := p.BaseCost() / mult
			if rel := math.Abs(recovered-draw) / draw; rel > 0.2 {
				t.Fatalf("%s: recovered %.2f from draw %.2f (off by %.3f)", code, recovered, draw, rel)
			}
			if lo > recovered*mult || hi < recovered*mult {
				t.Fatalf("%s: adjusted base %.2f outside [%.2f, %.2f]", code, recovered*mult, lo, hi)
			}
		}
	}
}

func TestBudget_NewYorkScenario(t *testing.T) {
	lo, hi := budget(1_000_000, config.DefaultRegions().Multiplier("NY"))
	if lo != 1_080_000 || hi != 1_620_000 {
		t.Fatalf("NY budget = [%.2f, %.2f], want [1080000, 1620000]", lo, hi)
	}
	p := model.Project{BudgetMin: lo, BudgetMax: hi, RegionalCostMultiplier: 1.35}
	if math.Abs(p.BaseCost()-1_350_000) > 0.01 {
		t.Fatalf("BaseCost = %.2f, want 1350000", p.BaseCost())
	}
}

func TestProjects_OwnersAndWindow(t *testing.T) {
	businesses := testBusinesses(t, 5)
	owners := map[string]bool{}
	for _, b := range businesses {
		owners[b.ID] = true
	}
	projects, err := Projects(rng.New(3, rng.Projects), businesses, config.DefaultRegions(), 200, testWindow)
	if err != nil {
		t.Fatalf("Projects: %v", err)
	}
	for _, p := range projects {
		if !owners[p.BusinessID] {
			t.Fatalf("project owned by unknown business %s", p.BusinessID)
		}
		if p.PostedDate.Before(testWindow.Start) || p.PostedDate.After(testWindow.End) {
			t.Fatalf("posted %v outside window", p.PostedDate)
		}
		if p.EstimateNeededBy.Before(dateOnly(p.PostedDate)) {
			t.Fatalf("needed-by %v before posting %v", p.EstimateNeededBy, p.PostedDate)
		}
		if _, ok := projectSubtypes[p.Sector]; !ok {
			t.Fatalf("unknown sector %q", p.Sector)
		}
	}
}

func TestProjects_EmptyBusinessPool(t *testing.T) {
	_, err := Projects(rng.New(1, rng.Projects), nil, config.DefaultRegions(), 10, testWindow)
	if !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("err = %v, want ErrEmptyPool", err)
	}
}

func TestStatusBrackets(t *testing.T) {
	allowed := func(days int) map[model.ProjectStatus]bool {
		m := map[model.ProjectStatus]bool{}
		for _, st := range bracketFor(days).statuses {
			m[st] = true
		}
		return m
	}

	tests := []struct {
		days int
		want []model.ProjectStatus
	}{
		{400, []model.ProjectStatus{model.StatusCompleted, model.StatusCancelled, model.StatusInProgress}},
		{301, []model.ProjectStatus{model.StatusCompleted, model.StatusCancelled, model.StatusInProgress}},
		{300, []model.ProjectStatus{model.StatusInProgress, model.StatusEstimateDelivered, model.StatusCompleted}},
		{151, []model.ProjectStatus{model.StatusInProgress, model.StatusEstimateDelivered, model.StatusCompleted}},
		{150, []model.ProjectStatus{model.StatusMatched, model.StatusEstimateInProgress, model.StatusInProgress}},
		{61, []model.ProjectStatus{model.StatusMatched, model.StatusEstimateInProgress, model.StatusInProgress}},
		{60, []model.ProjectStatus{model.StatusPosted, model.StatusInBidding, model.StatusMatched}},
		{0, []model.ProjectStatus{model.StatusPosted, model.StatusInBidding, model.StatusMatched}},
	}
	for _, tt := range tests {
		got := allowed(tt.days)
		if len(got) != len(tt.want) {
			t.Fatalf("days %d: %v", tt.days, got)
		}
		for _, st := range tt.want {
			if !got[st] {
				t.Fatalf("days %d: %s missing from bracket", tt.days, st)
			}
		}
	}
}

func TestStatusBrackets_WeightsSumToOne(t *testing.T) {
	for _, b := range statusBrackets {
		var sum float64
		for _, w := range b.weights {
			sum += w
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Fatalf("bracket after %d days sums to %v", b.afterDays, sum)
		}
		if len(b.weights) != len(b.statuses) {
			t.Fatalf("bracket after %d days has mismatched lengths", b.afterDays)
		}
	}
}

func TestDrawStatus_OldProjectsMostlyCompleted(t *testing.T) {
	s := rng.New(21, rng.Projects)
	completed := 0
	for range 2000 {
		if drawStatus(s, 500) == model.StatusCompleted {
			completed++
		}
	}
	if share := float64(completed) / 2000; share < 0.55 || share > 0.65 {
		t.Fatalf("completed share = %.3f, want about 0.6", share)
	}
}

func TestProjectTitle(t *testing.T) {
	if got := projectTitle("Modern", "commercial", "office_building"); got != "Modern Commercial Office Building" {
		t.Fatalf("projectTitle = %q", got)
	}
}
