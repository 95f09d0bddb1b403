package model

import (
	"time"

	"github.com/constructioncheck/ccgen/internal/aace"
)

// EstimatorType distinguishes firm consultants from independent experts.
type EstimatorType string

const (
	Consultant      EstimatorType = "consultant"
	FreelanceExpert EstimatorType = "freelance_expert"
)

// ProjectStatus is the lifecycle state of a posted project.
type ProjectStatus string

const (
	StatusPosted             ProjectStatus = "posted"
	StatusInBidding          ProjectStatus = "in_bidding"
	StatusMatched            ProjectStatus = "matched"
	StatusEstimateInProgress ProjectStatus = "estimate_in_progress"
	StatusEstimateDelivered  ProjectStatus = "estimate_delivered"
	StatusInProgress         ProjectStatus = "in_progress"
	StatusCompleted          ProjectStatus = "completed"
	StatusCancelled          ProjectStatus = "cancelled"
)

// EstimateStatus is the decision state of a single estimate.
type EstimateStatus string

const (
	EstimatePending    EstimateStatus = "pending"
	EstimateAccepted   EstimateStatus = "accepted"
	EstimateSuperseded EstimateStatus = "superseded"
)

// Business is a client organization that posts projects.
type Business struct {
	ID                 string
	CompanyName        string
	IndustrySector     string
	BusinessType       string
	StreetAddress      string
	City               string
	State              string
	ZipCode            string
	CompanySize        string
	AnnualRevenue      float64
	YearsInBusiness    int
	RegistrationDate   time.Time
	VerificationStatus string
	SubscriptionTier   string
	PrimaryContact     string
	Email              string
	Phone              string
	ReputationScore    float64 // [1,5]
	LastLogin          time.Time
}

// Estimator is a professional who produces estimates.
type Estimator struct {
	ID                      string
	FirstName               string
	LastName                string
	DisplayName             string
	Headline                string
	Bio                     string
	Type                    EstimatorType
	City                    string
	State                   string
	ZipCode                 string
	WillingToTravel         bool
	YearsExperience         int
	EducationLevel          string
	HourlyRate              float64
	MinimumProjectFee       float64
	RegistrationDate        time.Time
	VerificationStatus      string
	BackgroundCheck         bool
	InsuranceVerified       bool
	Email                   string
	Phone                   string
	LinkedInURL             string
	AvgTurnaroundHours      float64
	AvgResponseHours        float64
	AccuracyRate            float64 // [0,100]
	SatisfactionScore       float64 // [1,5]
	DiversityClassification *string
	LastLogin               time.Time
	LastActive              time.Time
}

// Certification is a professional credential attached to an expertise record.
type Certification struct {
	Code         string
	Name         string
	Organization string
	IssueDate    time.Time
	ExpiryDate   time.Time
}

// Expertise is one specialization of an estimator.
type Expertise struct {
	ID               string
	EstimatorID      string
	Specialization   string
	ProjectTypes     []string
	Certification    *Certification
	Software         []string
	YearsInSpecialty int
	Verified         bool
}

// Project is a construction project posted by a business.
type Project struct {
	ID                     string
	BusinessID             string
	Title                  string
	Description            string
	ProjectType            string
	Sector                 string
	Subtype                string
	City                   string
	State                  string
	Zip                    string
	RegionalCostMultiplier float64
	SquareFootage          int
	BudgetMin              float64
	BudgetMax              float64
	EstimateNeededBy       time.Time
	Status                 ProjectStatus
	PostedDate             time.Time
	UrgencyLevel           string
	ActualCost             *float64
	CostVariancePercent    *float64
}

// BaseCost is the budget midpoint, the reference value every estimate for
// the project is drawn around.
func (p Project) BaseCost() float64 {
	return (p.BudgetMin + p.BudgetMax) / 2
}

// Breakdown splits an estimate into cost components. The components are
// drawn independently and do not sum to the estimate total.
type Breakdown struct {
	Labor         float64
	Materials     float64
	Equipment     float64
	Subcontractor float64
	Overhead      float64
	Profit        float64
}

// Sum adds every component.
func (b Breakdown) Sum() float64 {
	return b.Labor + b.Materials + b.Equipment + b.Subcontractor + b.Overhead + b.Profit
}

// Estimate is one cost estimate for a project.
type Estimate struct {
	ID                    string
	ProjectID             string
	EstimatorID           string
	Sequence              int
	Class                 aace.Class
	EngineeringCompletion float64
	EstimatedTotalCost    float64
	ConfidenceLow         float64
	ConfidenceHigh        float64
	Breakdown             Breakdown
	ContingencyPercent    float64
	ContingencyAmount     float64
	EstimatedDurationDays int
	EstimationMethod      string
	Status                EstimateStatus
	SubmittedDate         time.Time
	ActualCost            *float64
	VariancePercent       *float64
}

// IntervalWidth returns ConfidenceHigh - ConfidenceLow.
func (e Estimate) IntervalWidth() float64 {
	return e.ConfidenceHigh - e.ConfidenceLow
}

// Review is a business's rating of an estimator after a completed project.
type Review struct {
	ID              string
	ProjectID       string
	ReviewerID      string
	ReviewerType    string
	RevieweeID      string
	RevieweeType    string
	Overall         float64
	Communication   float64
	Professionalism float64
	Accuracy        float64
	Timeliness      float64
	Value           float64
	Title           string
	Text            string
	WouldRecommend  bool
	WouldWorkAgain  bool
	Verified        bool
}

// Dataset is one complete generated run.
type Dataset struct {
	Businesses []Business
	Estimators []Estimator
	Expertise  []Expertise
	Projects   []Project
	Estimates  []Estimate
	Reviews    []Review
}
