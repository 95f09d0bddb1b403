package generate

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/constructioncheck/ccgen/internal/model"
	"github.com/constructioncheck/ccgen/internal/rng"
)

// Businesses creates n client organizations registered inside the window.
func Businesses(s *rng.Stream, n int, w Window) ([]model.Business, error) {
	if n <= 0 {
		return nil, fmt.Errorf("businesses: %w (requested %d)", ErrEmptyPool, n)
	}

	f := s.Faker()
	regEnd := daysBefore(w.End, 180)
	out := make([]model.Business, 0, n)

	for i := 0; i < n; i++ {
		city := rng.Pick(s, MajorCities)
		company := f.Company()

		out = append(out, model.Business{
			ID:                 s.UUID(),
			CompanyName:        company,
			IndustrySector:     rng.Pick(s, industrySectors),
			BusinessType:       rng.Pick(s, businessTypes),
			StreetAddress:      f.Street(),
			City:               city.Name,
			State:              city.State,
			ZipCode:            f.Zip(),
			CompanySize:        rng.Pick(s, companySizes),
			AnnualRevenue:      model.RoundCents(s.LogNormal(15, 1.5)),
			YearsInBusiness:    s.IntRange(1, 50),
			RegistrationDate:   dateOnly(s.Between(w.Start, regEnd)),
			VerificationStatus: rng.Weighted(s, businessVerification, businessVerificationW),
			SubscriptionTier:   rng.Weighted(s, subscriptionTiers, subscriptionTierWeights),
			PrimaryContact:     f.Name(),
			Email:              uniqueEmail(f, company, i),
			Phone:              f.Phone(),
			ReputationScore:    model.Round(s.Beta(8, 2)*4+1, 2),
			LastLogin:          daysBefore(w.End, s.IntRange(0, 30)),
		})
	}
	return out, nil
}

// uniqueEmail builds an address from a display name. The sequence number
// keeps addresses unique within a run.
func uniqueEmail(f *gofakeit.Faker, name string, seq int) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	local := b.String()
	if local == "" {
		local = "user"
	}
	return fmt.Sprintf("%s.%d@%s", local, seq, f.DomainName())
}
