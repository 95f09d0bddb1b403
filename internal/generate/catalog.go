package generate

// City is a metro area that projects and users are placed in.
type City struct {
	Name  string
	State string
}

// MajorCities is the placement table for businesses, estimators and projects.
var MajorCities = []City{
	{"New York", "NY"}, {"Los Angeles", "CA"}, {"Chicago", "IL"},
	{"Houston", "TX"}, {"Phoenix", "AZ"}, {"Philadelphia", "PA"},
	{"San Antonio", "TX"}, {"San Diego", "CA"}, {"Dallas", "TX"},
	{"Austin", "TX"}, {"Jacksonville", "FL"}, {"San Jose", "CA"},
	{"Fort Worth", "TX"}, {"Columbus", "OH"}, {"Charlotte", "NC"},
	{"Indianapolis", "IN"}, {"Seattle", "WA"}, {"Denver", "CO"},
	{"Boston", "MA"}, {"Portland", "OR"}, {"Atlanta", "GA"},
	{"Miami", "FL"}, {"Las Vegas", "NV"}, {"Detroit", "MI"},
	{"Nashville", "TN"}, {"Minneapolis", "MN"}, {"Tampa", "FL"},
}

var industrySectors = []string{
	"commercial", "residential", "infrastructure",
	"industrial", "mixed_use", "institutional",
}

var businessTypes = []string{
	"general_contractor", "developer", "owner",
	"architect", "engineer", "property_manager",
}

var companySizes = []string{"small", "medium", "large", "enterprise"}

var projectTypes = []string{
	"new_construction", "renovation", "addition",
	"infrastructure", "demolition", "tenant_improvement",
}

// projectSectors fixes the iteration order of projectSubtypes.
var projectSectors = []string{"commercial", "residential", "infrastructure", "industrial", "institutional"}

var projectSubtypes = map[string][]string{
	"commercial":     {"office_building", "retail", "restaurant", "warehouse", "hotel"},
	"residential":    {"single_family", "multi_family", "townhome", "condo", "apartment"},
	"infrastructure": {"road", "bridge", "utility", "parking", "site_work"},
	"industrial":     {"manufacturing", "distribution", "processing", "research"},
	"institutional":  {"school", "hospital", "government", "religious", "civic"},
}

var specializations = []string{
	"cost_estimating", "quantity_surveying", "value_engineering",
	"forensic_estimating", "conceptual_estimating", "detailed_estimating",
}

type certificationDef struct {
	code, name, org string
}

var certifications = []certificationDef{
	{"CCP", "Certified Cost Professional", "AACE International"},
	{"PSP", "Planning and Scheduling Professional", "AACE International"},
	{"CPE", "Certified Professional Estimator", "ASPE"},
	{"MRICS", "Member Royal Institution of Chartered Surveyors", "RICS"},
	{"PMP", "Project Management Professional", "PMI"},
	{"LEED AP", "Leadership in Energy and Environmental Design", "USGBC"},
}

var estimatingSoftware = []string{"Sage Estimating", "Bluebeam", "PlanSwift", "CostX", "ProEst"}

// EstimationMethods in order of increasing maturity.
var EstimationMethods = []string{"parametric", "analogical", "engineering", "detailed_takeoff"}

// diversityClassifications includes "" for no classification.
var diversityClassifications = []string{
	"minority_owned", "women_owned", "veteran_owned",
	"lgbtq_owned", "disabled_owned", "",
}

var headlinePrefixes = []string{"Senior", "Professional", "Expert", "Certified"}

var educationLevels = []string{"bachelors", "masters", "professional"}

var titlePrefixes = []string{"New", "Modern", "Premium"}

var reviewTitles = []string{
	"Excellent work", "Great experience", "Professional service",
	"Highly recommend", "Outstanding estimator", "Will work with again",
}

var (
	businessVerification    = []string{"verified", "pending"}
	businessVerificationW   = []float64{0.85, 0.15}
	estimatorVerificationW  = []float64{0.9, 0.1}
	subscriptionTiers       = []string{"basic", "professional", "enterprise"}
	subscriptionTierWeights = []float64{0.5, 0.35, 0.15}
	urgencyLevels           = []string{"low", "normal", "high", "urgent"}
	urgencyWeights          = []float64{0.2, 0.5, 0.2, 0.1}
)
