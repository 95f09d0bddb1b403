package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/constructioncheck/ccgen/internal/model"
)

// Column encodings shared by every driver. Timestamps and dates are stored
// as text so exports compare byte for byte across runs.
const (
	timestampLayout = "2006-01-02T15:04:05Z"
	dateLayout      = "2006-01-02"
)

// table is a destination table and its insert column order.
type table struct {
	name    string
	key     string
	columns []string
}

// Tables in foreign-key order.
var (
	businessesTable = table{"businesses", "business_id", []string{
		"business_id", "company_name", "industry_sector", "business_type",
		"street_address", "city", "state", "zip_code", "company_size", "annual_revenue",
		"years_in_business", "registration_date", "verification_status",
		"subscription_tier", "primary_contact", "email", "phone", "reputation_score", "last_login",
	}}
	estimatorsTable = table{"estimators", "estimator_id", []string{
		"estimator_id", "first_name", "last_name", "display_name", "profile_headline",
		"bio", "estimator_type", "city", "state", "zip_code", "willing_to_travel",
		"years_experience", "education_level", "hourly_rate", "minimum_project_fee",
		"registration_date", "verification_status", "background_check", "insurance_verified",
		"email", "phone", "linkedin_url", "average_turnaround_hours", "average_response_hours",
		"estimate_accuracy_rate", "client_satisfaction_score", "diversity_classification",
		"last_login", "last_active",
	}}
	expertiseTable = table{"expertise", "expertise_id", []string{
		"expertise_id", "estimator_id", "specialization_type", "project_types",
		"certification_code", "certification_name", "issuing_organization", "issue_date", "expiry_date",
		"software_proficiency", "years_in_specialty", "verified",
	}}
	projectsTable = table{"projects", "project_id", []string{
		"project_id", "business_id", "project_title", "project_description",
		"project_type", "project_sector", "project_subtype", "project_city", "project_state",
		"project_zip", "regional_cost_multiplier", "square_footage",
		"estimated_budget_min", "estimated_budget_max", "estimate_needed_by",
		"status", "posted_date", "urgency_level", "actual_cost", "cost_variance_percent",
	}}
	estimatesTable = table{"estimates", "estimate_id", []string{
		"estimate_id", "project_id", "estimator_id", "estimate_sequence",
		"aace_class", "engineering_completion_percent", "estimated_total_cost",
		"confidence_interval_low", "confidence_interval_high",
		"labor_cost", "materials_cost", "equipment_cost", "subcontractor_cost",
		"overhead_cost", "profit_margin", "contingency_percent", "contingency_amount",
		"estimated_duration_days", "estimation_method", "status", "submitted_date",
		"actual_cost", "variance_amount", "variance_percent",
	}}
	reviewsTable = table{"reviews", "review_id", []string{
		"review_id", "project_id", "reviewer_id", "reviewer_type",
		"reviewee_id", "reviewee_type", "overall_rating", "communication_rating",
		"professionalism_rating", "accuracy_rating", "timeliness_rating",
		"value_rating", "review_title", "review_text", "would_recommend",
		"would_work_again", "verified_review",
	}}

	allTables = []table{businessesTable, estimatorsTable, expertiseTable, projectsTable, estimatesTable, reviewsTable}
)

// bulkInserter writes pre-encoded rows into one table.
type bulkInserter interface {
	insertRows(ctx context.Context, t table, rows [][]any) error
}

// tableSink implements the Insert half of Sink on top of a bulkInserter.
type tableSink struct {
	ins bulkInserter
}

func (s tableSink) InsertBusinesses(ctx context.Context, bs []model.Business) error {
	return s.ins.insertRows(ctx, businessesTable, encodeAll(bs, businessRow))
}

func (s tableSink) InsertEstimators(ctx context.Context, es []model.Estimator) error {
	return s.ins.insertRows(ctx, estimatorsTable, encodeAll(es, estimatorRow))
}

func (s tableSink) InsertExpertise(ctx context.Context, xs []model.Expertise) error {
	return s.ins.insertRows(ctx, expertiseTable, encodeAll(xs, expertiseRow))
}

func (s tableSink) InsertProjects(ctx context.Context, ps []model.Project) error {
	return s.ins.insertRows(ctx, projectsTable, encodeAll(ps, projectRow))
}

func (s tableSink) InsertEstimates(ctx context.Context, es []model.Estimate) error {
	return s.ins.insertRows(ctx, estimatesTable, encodeAll(es, estimateRow))
}

func (s tableSink) InsertReviews(ctx context.Context, rs []model.Review) error {
	return s.ins.insertRows(ctx, reviewsTable, encodeAll(rs, reviewRow))
}

func encodeAll[T any](items []T, encode func(T) []any) [][]any {
	rows := make([][]any, len(items))
	for i, it := range items {
		rows[i] = encode(it)
	}
	return rows
}

func businessRow(b model.Business) []any {
	return []any{
		b.ID, b.CompanyName, b.IndustrySector, b.BusinessType,
		b.StreetAddress, b.City, b.State, b.ZipCode, b.CompanySize, b.AnnualRevenue,
		int64(b.YearsInBusiness), formatDate(b.RegistrationDate), b.VerificationStatus,
		b.SubscriptionTier, b.PrimaryContact, b.Email, b.Phone, b.ReputationScore, formatTimestamp(b.LastLogin),
	}
}

func estimatorRow(e model.Estimator) []any {
	return []any{
		e.ID, e.FirstName, e.LastName, e.DisplayName, e.Headline,
		e.Bio, string(e.Type), e.City, e.State, e.ZipCode, flag(e.WillingToTravel),
		int64(e.YearsExperience), e.EducationLevel, e.HourlyRate, e.MinimumProjectFee,
		formatDate(e.RegistrationDate), e.VerificationStatus, flag(e.BackgroundCheck), flag(e.InsuranceVerified),
		e.Email, e.Phone, e.LinkedInURL, e.AvgTurnaroundHours, e.AvgResponseHours,
		e.AccuracyRate, e.SatisfactionScore, e.DiversityClassification,
		formatTimestamp(e.LastLogin), formatTimestamp(e.LastActive),
	}
}

func expertiseRow(x model.Expertise) []any {
	var code, name, org, issued, expires *string
	if c := x.Certification; c != nil {
		code, name, org = &c.Code, &c.Name, &c.Organization
		issued, expires = ptr(formatDate(c.IssueDate)), ptr(formatDate(c.ExpiryDate))
	}
	return []any{
		x.ID, x.EstimatorID, x.Specialization, jsonList(x.ProjectTypes),
		code, name, org, issued, expires,
		jsonList(x.Software), int64(x.YearsInSpecialty), flag(x.Verified),
	}
}

func projectRow(p model.Project) []any {
	return []any{
		p.ID, p.BusinessID, p.Title, p.Description,
		p.ProjectType, p.Sector, p.Subtype, p.City, p.State,
		p.Zip, p.RegionalCostMultiplier, int64(p.SquareFootage),
		p.BudgetMin, p.BudgetMax, formatDate(p.EstimateNeededBy),
		string(p.Status), formatTimestamp(p.PostedDate), p.UrgencyLevel, p.ActualCost, p.CostVariancePercent,
	}
}

func estimateRow(e model.Estimate) []any {
	var varianceAmount *float64
	if e.ActualCost != nil {
		varianceAmount = ptr(model.RoundCents(*e.ActualCost - e.EstimatedTotalCost))
	}
	b := e.Breakdown
	return []any{
		e.ID, e.ProjectID, e.EstimatorID, int64(e.Sequence),
		e.Class.String(), e.EngineeringCompletion, e.EstimatedTotalCost,
		e.ConfidenceLow, e.ConfidenceHigh,
		b.Labor, b.Materials, b.Equipment, b.Subcontractor,
		b.Overhead, b.Profit, e.ContingencyPercent, e.ContingencyAmount,
		int64(e.EstimatedDurationDays), e.EstimationMethod, string(e.Status), formatTimestamp(e.SubmittedDate),
		e.ActualCost, varianceAmount, e.VariancePercent,
	}
}

func reviewRow(r model.Review) []any {
	return []any{
		r.ID, r.ProjectID, r.ReviewerID, r.ReviewerType,
		r.RevieweeID, r.RevieweeType, r.Overall, r.Communication,
		r.Professionalism, r.Accuracy, r.Timeliness,
		r.Value, r.Title, r.Text, flag(r.WouldRecommend),
		flag(r.WouldWorkAgain), flag(r.Verified),
	}
}

func flag(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func ptr[T any](v T) *T { return &v }

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(timestampLayout, s)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func jsonList(items []string) string {
	if items == nil {
		items = []string{}
	}
	data, _ := json.Marshal(items)
	return string(data)
}
