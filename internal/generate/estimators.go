package generate

import (
	"fmt"
	"strings"
	"time"

	"github.com/constructioncheck/ccgen/internal/model"
	"github.com/constructioncheck/ccgen/internal/rng"
)

// Estimators creates the consultant pool followed by the freelancer pool.
func Estimators(s *rng.Stream, consultants, freelancers int, w Window) ([]model.Estimator, error) {
	total := consultants + freelancers
	if consultants < 0 || freelancers < 0 || total == 0 {
		return nil, fmt.Errorf("estimators: %w (consultants %d, freelancers %d)", ErrEmptyPool, consultants, freelancers)
	}

	f := s.Faker()
	regEnd := daysBefore(w.End, 90)
	out := make([]model.Estimator, 0, total)

	for i := 0; i < total; i++ {
		typ := model.FreelanceExpert
		if i < consultants {
			typ = model.Consultant
		}
		city := rng.Pick(s, MajorCities)
		first, last := f.FirstName(), f.LastName()

		var years int
		var rate, minFee float64
		if typ == model.Consultant {
			years = s.IntRange(8, 35)
			rate = s.Uniform(125, 350)
			minFee = s.Uniform(5000, 25000)
		} else {
			years = s.IntRange(3, 25)
			rate = s.Uniform(75, 200)
			minFee = s.Uniform(2000, 10000)
		}

		var diversity *string
		if d := rng.Pick(s, diversityClassifications); d != "" {
			diversity = &d
		}

		out = append(out, model.Estimator{
			ID:                      s.UUID(),
			FirstName:               first,
			LastName:                last,
			DisplayName:             first + " " + last,
			Headline:                rng.Pick(s, headlinePrefixes) + " Cost Estimator",
			Bio:                     f.Sentence(25),
			Type:                    typ,
			City:                    city.Name,
			State:                   city.State,
			ZipCode:                 f.Zip(),
			WillingToTravel:         s.Bernoulli(0.5),
			YearsExperience:         years,
			EducationLevel:          rng.Pick(s, educationLevels),
			HourlyRate:              model.RoundCents(rate),
			MinimumProjectFee:       model.RoundCents(minFee),
			RegistrationDate:        dateOnly(s.Between(w.Start, regEnd)),
			VerificationStatus:      rng.Weighted(s, businessVerification, estimatorVerificationW),
			BackgroundCheck:         s.Bernoulli(0.5),
			InsuranceVerified:       s.Bernoulli(0.5),
			Email:                   uniqueEmail(f, first+last, i),
			Phone:                   f.Phone(),
			LinkedInURL:             "https://linkedin.com/in/" + strings.ToLower(strings.ReplaceAll(first+last, " ", "")),
			AvgTurnaroundHours:      model.RoundCents(s.Uniform(24, 120)),
			AvgResponseHours:        model.RoundCents(s.Uniform(1, 24)),
			AccuracyRate:            model.RoundCents(s.Beta(9, 2) * 100),
			SatisfactionScore:       model.RoundCents(s.Beta(8, 2)*4 + 1),
			DiversityClassification: diversity,
			LastLogin:               daysBefore(w.End, s.IntRange(0, 14)),
			LastActive:              w.End.Add(-time.Duration(s.IntRange(1, 168)) * time.Hour),
		})
	}
	return out, nil
}
