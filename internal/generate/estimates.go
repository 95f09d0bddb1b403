package generate

import (
	"fmt"
	"time"

	"github.com/constructioncheck/ccgen/internal/aace"
	"github.com/constructioncheck/ccgen/internal/model"
	"github.com/constructioncheck/ccgen/internal/rng"
)

// Mode is how a project's estimates were produced.
type Mode int

const (
	// Independent: one to three estimators bid once each.
	Independent Mode = iota
	// Progressive: a single estimator refines the estimate from class 5
	// toward class 1 over time.
	Progressive
)

func (m Mode) String() string {
	if m == Progressive {
		return "progressive"
	}
	return "independent"
}

// EstimateParams controls mode selection and sequence length.
type EstimateParams struct {
	ProgressiveRate float64 // probability a project is progressive
	MaxSequence     int     // upper bound on progressive sequence length, 2..5
}

// Ranges used by every estimate regardless of mode.
const (
	minProgressiveSteps = 2
	minStepDays         = 7
	maxStepDays         = 21
	minBidDelayDays     = 1
	maxBidDelayDays     = 14
	maxBidders          = 3
	bidAcceptRate       = 0.30
	engineeringJitterLo = -5
	engineeringJitterHi = 10
	contingencyJitter   = 2.0
	minDurationDays     = 30
	maxDurationDays     = 720
)

// componentRange is the [lo,hi) share of the point estimate for one cost
// component.
type componentRange struct{ lo, hi float64 }

var (
	laborShare         = componentRange{0.30, 0.45}
	materialsShare     = componentRange{0.25, 0.40}
	equipmentShare     = componentRange{0.05, 0.15}
	subcontractorShare = componentRange{0.10, 0.25}
	overheadShare      = componentRange{0.08, 0.15}
	profitShare        = componentRange{0.05, 0.12}
)

// ProjectEstimates is the generated estimate set for one project.
type ProjectEstimates struct {
	ProjectID string
	Mode      Mode
	Estimates []model.Estimate
}

// EstimateResult aggregates estimates over all projects.
type EstimateResult struct {
	Estimates   []model.Estimate
	Progressive int // projects generated in progressive mode
}

// Estimates generates the estimate set for every project in order.
func Estimates(s *rng.Stream, projects []model.Project, estimators []model.Estimator, p EstimateParams) (EstimateResult, error) {
	var res EstimateResult
	for _, proj := range projects {
		pe, err := EstimateSequence(s, proj, estimators, p)
		if err != nil {
			return res, err
		}
		if pe.Mode == Progressive {
			res.Progressive++
		}
		res.Estimates = append(res.Estimates, pe.Estimates...)
	}
	return res, nil
}

// EstimateSequence picks a mode for proj and generates its estimates.
func EstimateSequence(s *rng.Stream, proj model.Project, estimators []model.Estimator, p EstimateParams) (ProjectEstimates, error) {
	if len(estimators) == 0 {
		return ProjectEstimates{}, fmt.Errorf("estimates for project %s: %w of estimators", proj.ID, ErrEmptyPool)
	}
	if s.Bernoulli(p.ProgressiveRate) {
		return ProjectEstimates{
			ProjectID: proj.ID,
			Mode:      Progressive,
			Estimates: progressiveEstimates(s, proj, estimators, p.MaxSequence),
		}, nil
	}
	return ProjectEstimates{
		ProjectID: proj.ID,
		Mode:      Independent,
		Estimates: independentBids(s, proj, estimators),
	}, nil
}

// progressiveEstimates walks classes 5..(6-N) with one estimator. Each
// step is submitted 7 to 21 days after the previous one (the first after
// the posting date); only the last step is accepted.
func progressiveEstimates(s *rng.Stream, proj model.Project, estimators []model.Estimator, maxSeq int) []model.Estimate {
	est := rng.Pick(s, estimators)
	n := s.IntRange(minProgressiveSteps, max(minProgressiveSteps, min(maxSeq, len(aace.Progression()))))
	classes := aace.Progression()[:n]

	out := make([]model.Estimate, 0, n)
	submitted := proj.PostedDate
	for i, class := range classes {
		submitted = submitted.AddDate(0, 0, s.IntRange(minStepDays, maxStepDays))

		status := model.EstimateSuperseded
		if i == n-1 {
			status = model.EstimateAccepted
		}

		e := drawEstimate(s, proj, est.ID, class)
		e.Sequence = i + 1
		e.EstimationMethod = methodForStep(i)
		e.Status = status
		e.SubmittedDate = submitted
		out = append(out, e)
	}
	return out
}

// independentBids draws one to three distinct estimators, each submitting
// a single estimate of a random class.
func independentBids(s *rng.Stream, proj model.Project, estimators []model.Estimator) []model.Estimate {
	bidders := rng.Sample(s, estimators, s.IntRange(1, maxBidders))
	progression := aace.Progression()

	out := make([]model.Estimate, 0, len(bidders))
	for _, est := range bidders {
		class := rng.Pick(s, progression)

		e := drawEstimate(s, proj, est.ID, class)
		e.Sequence = 1
		e.EstimationMethod = rng.Pick(s, EstimationMethods)
		e.SubmittedDate = proj.PostedDate.Add(time.Duration(s.IntRange(minBidDelayDays, maxBidDelayDays)) * 24 * time.Hour)
		e.Status = model.EstimatePending
		if s.Bernoulli(bidAcceptRate) {
			e.Status = model.EstimateAccepted
		}
		out = append(out, e)
	}
	return out
}

// drawEstimate fills the class-dependent figures shared by both modes. The
// confidence interval is fixed by the class on the project base cost; the
// point estimate is a uniform draw inside it.
func drawEstimate(s *rng.Stream, proj model.Project, estimatorID string, class aace.Class) model.Estimate {
	info := aace.MustInfo(class)
	base := proj.BaseCost()

	point := base * (1 + s.Uniform(info.LowRatio(), info.HighRatio()))
	low, high := info.Interval(base)

	engineering := model.Clamp(info.EngineeringCompletionPct+float64(s.IntRange(engineeringJitterLo, engineeringJitterHi)), 0, 100)
	contingency := info.ContingencyPct + s.Uniform(-contingencyJitter, contingencyJitter)

	return model.Estimate{
		ID:                    s.UUID(),
		ProjectID:             proj.ID,
		EstimatorID:           estimatorID,
		Class:                 class,
		EngineeringCompletion: engineering,
		EstimatedTotalCost:    model.RoundCents(point),
		ConfidenceLow:         model.RoundCents(low),
		ConfidenceHigh:        model.RoundCents(high),
		Breakdown:             drawBreakdown(s, point),
		ContingencyPercent:    model.RoundCents(contingency),
		ContingencyAmount:     model.RoundCents(point * contingency / 100),
		EstimatedDurationDays: s.IntRange(minDurationDays, maxDurationDays),
	}
}

// drawBreakdown samples each component independently; the result is not
// normalized to the total.
func drawBreakdown(s *rng.Stream, total float64) model.Breakdown {
	share := func(r componentRange) float64 {
		return model.RoundCents(total * s.Uniform(r.lo, r.hi))
	}
	return model.Breakdown{
		Labor:         share(laborShare),
		Materials:     share(materialsShare),
		Equipment:     share(equipmentShare),
		Subcontractor: share(subcontractorShare),
		Overhead:      share(overheadShare),
		Profit:        share(profitShare),
	}
}

// methodForStep maps a progressive step to the estimating technique
// typical for its maturity.
func methodForStep(i int) string {
	if i < len(EstimationMethods) {
		return EstimationMethods[i]
	}
	return EstimationMethods[len(EstimationMethods)-1]
}
