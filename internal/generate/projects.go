package generate

import (
	"fmt"
	"strings"
	"time"

	"github.com/constructioncheck/ccgen/internal/model"
	"github.com/constructioncheck/ccgen/internal/rng"
)

// Budget spread around the regionally adjusted base cost.
const (
	BudgetMinFactor = 0.8
	BudgetMaxFactor = 1.2
)

// Parameters of the log-normal base cost draw.
const (
	BaseCostMu    = 13.0
	BaseCostSigma = 1.2
)

// RegionLookup resolves a state code to its cost multiplier.
type RegionLookup interface {
	Multiplier(code string) float64
}

// Projects creates n projects, each owned by a uniformly chosen business.
func Projects(s *rng.Stream, businesses []model.Business, regions RegionLookup, n int, w Window) ([]model.Project, error) {
	if len(businesses) == 0 {
		return nil, fmt.Errorf("projects: %w of businesses", ErrEmptyPool)
	}

	f := s.Faker()
	out := make([]model.Project, 0, n)
	for range n {
		owner := rng.Pick(s, businesses)
		city := rng.Pick(s, MajorCities)
		posted := s.Between(w.Start, w.End)

		sector := rng.Pick(s, projectSectors)
		subtype := rng.Pick(s, projectSubtypes[sector])

		mult := regions.Multiplier(city.State)
		budgetMin, budgetMax := budget(s.LogNormal(BaseCostMu, BaseCostSigma), mult)

		age := int(w.End.Sub(posted) / (24 * time.Hour))

		out = append(out, model.Project{
			ID:                     s.UUID(),
			BusinessID:             owner.ID,
			Title:                  projectTitle(rng.Pick(s, titlePrefixes), sector, subtype),
			Description:            f.Sentence(40),
			ProjectType:            rng.Pick(s, projectTypes),
			Sector:                 sector,
			Subtype:                subtype,
			City:                   city.Name,
			State:                  city.State,
			Zip:                    f.Zip(),
			RegionalCostMultiplier: mult,
			SquareFootage:          s.IntRange(1000, 500000),
			BudgetMin:              budgetMin,
			BudgetMax:              budgetMax,
			EstimateNeededBy:       dateOnly(posted.AddDate(0, 0, s.IntRange(7, 30))),
			Status:                 drawStatus(s, age),
			PostedDate:             posted,
			UrgencyLevel:           rng.Weighted(s, urgencyLevels, urgencyWeights),
		})
	}
	return out, nil
}

// budget applies the regional multiplier to a base cost draw and spreads
// it into a min/max range.
func budget(draw, mult float64) (lo, hi float64) {
	adjusted := draw * mult
	return model.RoundCents(adjusted * BudgetMinFactor), model.RoundCents(adjusted * BudgetMaxFactor)
}

// projectTitle renders e.g. "Modern Commercial Office Building".
func projectTitle(prefix, sector, subtype string) string {
	words := append([]string{prefix, sector}, strings.Split(subtype, "_")...)
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
