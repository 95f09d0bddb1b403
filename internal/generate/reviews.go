package generate

import (
	"errors"
	"fmt"

	"github.com/constructioncheck/ccgen/internal/model"
	"github.com/constructioncheck/ccgen/internal/rng"
)

// ErrNotCompleted is returned when a review is requested for a project
// that has not completed.
var ErrNotCompleted = errors.New("project not completed")

// Rating thresholds for the review flags.
const (
	RecommendThreshold = 4.0
	WorkAgainThreshold = 4.5
)

// Reviews gives each completed project a business review of a random
// estimator with probability rate.
func Reviews(s *rng.Stream, projects []model.Project, businesses []model.Business, estimators []model.Estimator, rate float64) ([]model.Review, error) {
	if len(estimators) == 0 {
		return nil, fmt.Errorf("reviews: %w of estimators", ErrEmptyPool)
	}
	owners := make(map[string]bool, len(businesses))
	for _, b := range businesses {
		owners[b.ID] = true
	}

	var out []model.Review
	for _, p := range projects {
		if p.Status != model.StatusCompleted {
			continue
		}
		if !s.Bernoulli(rate) {
			continue
		}
		if !owners[p.BusinessID] {
			return out, fmt.Errorf("review for project %s: unknown business %s", p.ID, p.BusinessID)
		}
		r, err := Review(s, p, rng.Pick(s, estimators))
		if err != nil {
			return out, err
		}
		out = append(out, r)
	}
	return out, nil
}

// Review rates reviewee on behalf of the business that owns p.
func Review(s *rng.Stream, p model.Project, reviewee model.Estimator) (model.Review, error) {
	if p.Status != model.StatusCompleted {
		return model.Review{}, fmt.Errorf("review for project %s (%s): %w", p.ID, p.Status, ErrNotCompleted)
	}

	overall := model.Round(s.Beta(8, 2)*4+1, 1)
	sub := func() float64 {
		return model.Round(model.Clamp(overall+s.Uniform(-0.5, 0.5), 1, 5), 1)
	}

	r := model.Review{
		ID:             s.UUID(),
		ProjectID:      p.ID,
		ReviewerID:     p.BusinessID,
		ReviewerType:   "business",
		RevieweeID:     reviewee.ID,
		RevieweeType:   "estimator",
		Overall:        overall,
		WouldRecommend: overall >= RecommendThreshold,
		WouldWorkAgain: overall >= WorkAgainThreshold,
		Verified:       true,
	}
	r.Communication = sub()
	r.Professionalism = sub()
	r.Accuracy = sub()
	r.Timeliness = sub()
	r.Value = sub()
	r.Title = rng.Pick(s, reviewTitles)
	r.Text = s.Faker().Sentence(30)
	return r, nil
}
