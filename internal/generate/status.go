package generate

import (
	"math"

	"github.com/constructioncheck/ccgen/internal/model"
	"github.com/constructioncheck/ccgen/internal/rng"
)

// statusBracket is the outcome distribution for projects posted more than
// afterDays days before the end of the window.
type statusBracket struct {
	afterDays int
	statuses  []model.ProjectStatus
	weights   []float64
}

// statusBrackets is ordered oldest first; the first match wins.
var statusBrackets = []statusBracket{
	{
		afterDays: 300,
		statuses:  []model.ProjectStatus{model.StatusCompleted, model.StatusCancelled, model.StatusInProgress},
		weights:   []float64{0.6, 0.1, 0.3},
	},
	{
		afterDays: 150,
		statuses:  []model.ProjectStatus{model.StatusInProgress, model.StatusEstimateDelivered, model.StatusCompleted},
		weights:   []float64{0.5, 0.3, 0.2},
	},
	{
		afterDays: 60,
		statuses:  []model.ProjectStatus{model.StatusMatched, model.StatusEstimateInProgress, model.StatusInProgress},
		weights:   []float64{0.3, 0.4, 0.3},
	},
	{
		afterDays: math.MinInt,
		statuses:  []model.ProjectStatus{model.StatusPosted, model.StatusInBidding, model.StatusMatched},
		weights:   []float64{0.3, 0.5, 0.2},
	},
}

func bracketFor(daysSincePosted int) statusBracket {
	for _, b := range statusBrackets {
		if daysSincePosted > b.afterDays {
			return b
		}
	}
	return statusBrackets[len(statusBrackets)-1]
}

// drawStatus picks a lifecycle status for a project of the given age.
func drawStatus(s *rng.Stream, daysSincePosted int) model.ProjectStatus {
	b := bracketFor(daysSincePosted)
	return rng.Weighted(s, b.statuses, b.weights)
}
