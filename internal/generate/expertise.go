package generate

import (
	"fmt"

	"github.com/constructioncheck/ccgen/internal/model"
	"github.com/constructioncheck/ccgen/internal/rng"
)

// Expertise creates one to three specializations per estimator. About half
// carry a certification; only certified records are marked verified.
func Expertise(s *rng.Stream, estimators []model.Estimator, w Window) ([]model.Expertise, error) {
	if len(estimators) == 0 {
		return nil, fmt.Errorf("expertise: %w of estimators", ErrEmptyPool)
	}

	out := make([]model.Expertise, 0, len(estimators)*2)
	for _, est := range estimators {
		n := s.IntRange(1, 3)
		for range n {
			var cert *model.Certification
			if s.Float64() > 0.5 {
				def := rng.Pick(s, certifications)
				cert = &model.Certification{
					Code:         def.code,
					Name:         def.name,
					Organization: def.org,
					IssueDate:    daysBefore(w.End, s.IntRange(365, 3650)),
					ExpiryDate:   w.End.AddDate(0, 0, s.IntRange(365, 1825)),
				}
			}

			out = append(out, model.Expertise{
				ID:               s.UUID(),
				EstimatorID:      est.ID,
				Specialization:   rng.Pick(s, specializations),
				ProjectTypes:     rng.Sample(s, industrySectors, s.IntRange(2, 4)),
				Certification:    cert,
				Software:         rng.Sample(s, estimatingSoftware, s.IntRange(2, 4)),
				YearsInSpecialty: s.IntRange(2, max(2, est.YearsExperience)),
				Verified:         cert != nil,
			})
		}
	}
	return out, nil
}
