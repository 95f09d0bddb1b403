package store

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS businesses (
    business_id          TEXT PRIMARY KEY,
    company_name         TEXT NOT NULL,
    industry_sector      TEXT,
    business_type        TEXT,
    street_address       TEXT,
    city                 TEXT,
    state                TEXT,
    zip_code             TEXT,
    company_size         TEXT,
    annual_revenue       REAL,
    years_in_business    INTEGER,
    registration_date    TEXT NOT NULL,
    verification_status  TEXT,
    subscription_tier    TEXT,
    primary_contact      TEXT,
    email                TEXT UNIQUE NOT NULL,
    phone                TEXT,
    reputation_score     REAL CHECK (reputation_score BETWEEN 1.0 AND 5.0),
    last_login           TEXT
);

CREATE TABLE IF NOT EXISTS estimators (
    estimator_id              TEXT PRIMARY KEY,
    first_name                TEXT NOT NULL,
    last_name                 TEXT NOT NULL,
    display_name              TEXT,
    profile_headline          TEXT,
    bio                       TEXT,
    estimator_type            TEXT NOT NULL CHECK (estimator_type IN ('consultant', 'freelance_expert')),
    city                      TEXT,
    state                     TEXT,
    zip_code                  TEXT,
    willing_to_travel         INTEGER NOT NULL DEFAULT 0,
    years_experience          INTEGER,
    education_level           TEXT,
    hourly_rate               REAL,
    minimum_project_fee       REAL,
    registration_date         TEXT NOT NULL,
    verification_status       TEXT,
    background_check          INTEGER NOT NULL DEFAULT 0,
    insurance_verified        INTEGER NOT NULL DEFAULT 0,
    email                     TEXT UNIQUE NOT NULL,
    phone                     TEXT,
    linkedin_url              TEXT,
    average_turnaround_hours  REAL,
    average_response_hours    REAL,
    estimate_accuracy_rate    REAL CHECK (estimate_accuracy_rate BETWEEN 0 AND 100),
    client_satisfaction_score REAL CHECK (client_satisfaction_score BETWEEN 1.0 AND 5.0),
    diversity_classification  TEXT,
    last_login                TEXT,
    last_active               TEXT
);

CREATE TABLE IF NOT EXISTS expertise (
    expertise_id         TEXT PRIMARY KEY,
    estimator_id         TEXT NOT NULL REFERENCES estimators(estimator_id),
    specialization_type  TEXT NOT NULL,
    project_types        TEXT,
    certification_code   TEXT,
    certification_name   TEXT,
    issuing_organization TEXT,
    issue_date           TEXT,
    expiry_date          TEXT,
    software_proficiency TEXT,
    years_in_specialty   INTEGER,
    verified             INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS projects (
    project_id               TEXT PRIMARY KEY,
    business_id              TEXT NOT NULL REFERENCES businesses(business_id),
    project_title            TEXT NOT NULL,
    project_description      TEXT,
    project_type             TEXT,
    project_sector           TEXT,
    project_subtype          TEXT,
    project_city             TEXT,
    project_state            TEXT,
    project_zip              TEXT,
    regional_cost_multiplier REAL NOT NULL DEFAULT 1.0,
    square_footage           INTEGER,
    estimated_budget_min     REAL,
    estimated_budget_max     REAL,
    estimate_needed_by       TEXT NOT NULL,
    status                   TEXT NOT NULL DEFAULT 'posted',
    posted_date              TEXT NOT NULL,
    urgency_level            TEXT,
    actual_cost              REAL,
    cost_variance_percent    REAL,
    CHECK (estimated_budget_min <= estimated_budget_max)
);

CREATE TABLE IF NOT EXISTS estimates (
    estimate_id                    TEXT PRIMARY KEY,
    project_id                     TEXT NOT NULL REFERENCES projects(project_id),
    estimator_id                   TEXT NOT NULL REFERENCES estimators(estimator_id),
    estimate_sequence              INTEGER NOT NULL DEFAULT 1 CHECK (estimate_sequence >= 1),
    aace_class                     TEXT NOT NULL CHECK (aace_class IN ('class_1', 'class_2', 'class_3', 'class_4', 'class_5')),
    engineering_completion_percent REAL,
    estimated_total_cost           REAL NOT NULL,
    confidence_interval_low        REAL,
    confidence_interval_high       REAL,
    labor_cost                     REAL,
    materials_cost                 REAL,
    equipment_cost                 REAL,
    subcontractor_cost             REAL,
    overhead_cost                  REAL,
    profit_margin                  REAL,
    contingency_percent            REAL,
    contingency_amount             REAL,
    estimated_duration_days        INTEGER,
    estimation_method              TEXT,
    status                         TEXT NOT NULL CHECK (status IN ('pending', 'accepted', 'superseded')),
    submitted_date                 TEXT NOT NULL,
    actual_cost                    REAL,
    variance_amount                REAL,
    variance_percent               REAL
);

CREATE TABLE IF NOT EXISTS reviews (
    review_id              TEXT PRIMARY KEY,
    project_id             TEXT NOT NULL REFERENCES projects(project_id),
    reviewer_id            TEXT NOT NULL,
    reviewer_type          TEXT NOT NULL,
    reviewee_id            TEXT NOT NULL,
    reviewee_type          TEXT NOT NULL,
    overall_rating         REAL NOT NULL CHECK (overall_rating BETWEEN 1.0 AND 5.0),
    communication_rating   REAL CHECK (communication_rating BETWEEN 1.0 AND 5.0),
    professionalism_rating REAL CHECK (professionalism_rating BETWEEN 1.0 AND 5.0),
    accuracy_rating        REAL CHECK (accuracy_rating BETWEEN 1.0 AND 5.0),
    timeliness_rating      REAL CHECK (timeliness_rating BETWEEN 1.0 AND 5.0),
    value_rating           REAL CHECK (value_rating BETWEEN 1.0 AND 5.0),
    review_title           TEXT,
    review_text            TEXT,
    would_recommend        INTEGER,
    would_work_again       INTEGER,
    verified_review        INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_projects_business ON projects(business_id);
CREATE INDEX IF NOT EXISTS idx_projects_status ON projects(status);
CREATE INDEX IF NOT EXISTS idx_projects_state ON projects(project_state);
CREATE INDEX IF NOT EXISTS idx_estimates_project ON estimates(project_id);
CREATE INDEX IF NOT EXISTS idx_estimates_estimator ON estimates(estimator_id);
CREATE INDEX IF NOT EXISTS idx_estimates_class ON estimates(aace_class);
CREATE INDEX IF NOT EXISTS idx_estimates_sequence ON estimates(project_id, estimate_sequence);
CREATE INDEX IF NOT EXISTS idx_expertise_estimator ON expertise(estimator_id);
`

// postgresSchema mirrors sqliteSchema with Postgres column types. Dates stay
// TEXT so both drivers export identically.
const postgresSchema = `
CREATE TABLE IF NOT EXISTS businesses (
    business_id          TEXT PRIMARY KEY,
    company_name         TEXT NOT NULL,
    industry_sector      TEXT,
    business_type        TEXT,
    street_address       TEXT,
    city                 TEXT,
    state                TEXT,
    zip_code             TEXT,
    company_size         TEXT,
    annual_revenue       DOUBLE PRECISION,
    years_in_business    INTEGER,
    registration_date    TEXT NOT NULL,
    verification_status  TEXT,
    subscription_tier    TEXT,
    primary_contact      TEXT,
    email                TEXT UNIQUE NOT NULL,
    phone                TEXT,
    reputation_score     DOUBLE PRECISION CHECK (reputation_score BETWEEN 1.0 AND 5.0),
    last_login           TEXT
);

CREATE TABLE IF NOT EXISTS estimators (
    estimator_id              TEXT PRIMARY KEY,
    first_name                TEXT NOT NULL,
    last_name                 TEXT NOT NULL,
    display_name              TEXT,
    profile_headline          TEXT,
    bio                       TEXT,
    estimator_type            TEXT NOT NULL CHECK (estimator_type IN ('consultant', 'freelance_expert')),
    city                      TEXT,
    state                     TEXT,
    zip_code                  TEXT,
    willing_to_travel         INTEGER NOT NULL DEFAULT 0,
    years_experience          INTEGER,
    education_level           TEXT,
    hourly_rate               DOUBLE PRECISION,
    minimum_project_fee       DOUBLE PRECISION,
    registration_date         TEXT NOT NULL,
    verification_status       TEXT,
    background_check          INTEGER NOT NULL DEFAULT 0,
    insurance_verified        INTEGER NOT NULL DEFAULT 0,
    email                     TEXT UNIQUE NOT NULL,
    phone                     TEXT,
    linkedin_url              TEXT,
    average_turnaround_hours  DOUBLE PRECISION,
    average_response_hours    DOUBLE PRECISION,
    estimate_accuracy_rate    DOUBLE PRECISION CHECK (estimate_accuracy_rate BETWEEN 0 AND 100),
    client_satisfaction_score DOUBLE PRECISION CHECK (client_satisfaction_score BETWEEN 1.0 AND 5.0),
    diversity_classification  TEXT,
    last_login                TEXT,
    last_active               TEXT
);

CREATE TABLE IF NOT EXISTS expertise (
    expertise_id         TEXT PRIMARY KEY,
    estimator_id         TEXT NOT NULL REFERENCES estimators(estimator_id),
    specialization_type  TEXT NOT NULL,
    project_types        TEXT,
    certification_code   TEXT,
    certification_name   TEXT,
    issuing_organization TEXT,
    issue_date           TEXT,
    expiry_date          TEXT,
    software_proficiency TEXT,
    years_in_specialty   INTEGER,
    verified             INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS projects (
    project_id               TEXT PRIMARY KEY,
    business_id              TEXT NOT NULL REFERENCES businesses(business_id),
    project_title            TEXT NOT NULL,
    project_description      TEXT,
    project_type             TEXT,
    project_sector           TEXT,
    project_subtype          TEXT,
    project_city             TEXT,
    project_state            TEXT,
    project_zip              TEXT,
    regional_cost_multiplier DOUBLE PRECISION NOT NULL DEFAULT 1.0,
    square_footage           INTEGER,
    estimated_budget_min     DOUBLE PRECISION,
    estimated_budget_max     DOUBLE PRECISION,
    estimate_needed_by       TEXT NOT NULL,
    status                   TEXT NOT NULL DEFAULT 'posted',
    posted_date              TEXT NOT NULL,
    urgency_level            TEXT,
    actual_cost              DOUBLE PRECISION,
    cost_variance_percent    DOUBLE PRECISION,
    CHECK (estimated_budget_min <= estimated_budget_max)
);

CREATE TABLE IF NOT EXISTS estimates (
    estimate_id                    TEXT PRIMARY KEY,
    project_id                     TEXT NOT NULL REFERENCES projects(project_id),
    estimator_id                   TEXT NOT NULL REFERENCES estimators(estimator_id),
    estimate_sequence              INTEGER NOT NULL DEFAULT 1 CHECK (estimate_sequence >= 1),
    aace_class                     TEXT NOT NULL CHECK (aace_class IN ('class_1', 'class_2', 'class_3', 'class_4', 'class_5')),
    engineering_completion_percent DOUBLE PRECISION,
    estimated_total_cost           DOUBLE PRECISION NOT NULL,
    confidence_interval_low        DOUBLE PRECISION,
    confidence_interval_high       DOUBLE PRECISION,
    labor_cost                     DOUBLE PRECISION,
    materials_cost                 DOUBLE PRECISION,
    equipment_cost                 DOUBLE PRECISION,
    subcontractor_cost             DOUBLE PRECISION,
    overhead_cost                  DOUBLE PRECISION,
    profit_margin                  DOUBLE PRECISION,
    contingency_percent            DOUBLE PRECISION,
    contingency_amount             DOUBLE PRECISION,
    estimated_duration_days        INTEGER,
    estimation_method              TEXT,
    status                         TEXT NOT NULL CHECK (status IN ('pending', 'accepted', 'superseded')),
    submitted_date                 TEXT NOT NULL,
    actual_cost                    DOUBLE PRECISION,
    variance_amount                DOUBLE PRECISION,
    variance_percent               DOUBLE PRECISION
);

CREATE TABLE IF NOT EXISTS reviews (
    review_id              TEXT PRIMARY KEY,
    project_id             TEXT NOT NULL REFERENCES projects(project_id),
    reviewer_id            TEXT NOT NULL,
    reviewer_type          TEXT NOT NULL,
    reviewee_id            TEXT NOT NULL,
    reviewee_type          TEXT NOT NULL,
    overall_rating         DOUBLE PRECISION NOT NULL CHECK (overall_rating BETWEEN 1.0 AND 5.0),
    communication_rating   DOUBLE PRECISION CHECK (communication_rating BETWEEN 1.0 AND 5.0),
    professionalism_rating DOUBLE PRECISION CHECK (professionalism_rating BETWEEN 1.0 AND 5.0),
    accuracy_rating        DOUBLE PRECISION CHECK (accuracy_rating BETWEEN 1.0 AND 5.0),
    timeliness_rating      DOUBLE PRECISION CHECK (timeliness_rating BETWEEN 1.0 AND 5.0),
    value_rating           DOUBLE PRECISION CHECK (value_rating BETWEEN 1.0 AND 5.0),
    review_title           TEXT,
    review_text            TEXT,
    would_recommend        INTEGER,
    would_work_again       INTEGER,
    verified_review        INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_projects_business ON projects(business_id);
CREATE INDEX IF NOT EXISTS idx_projects_status ON projects(status);
CREATE INDEX IF NOT EXISTS idx_projects_state ON projects(project_state);
CREATE INDEX IF NOT EXISTS idx_estimates_project ON estimates(project_id);
CREATE INDEX IF NOT EXISTS idx_estimates_estimator ON estimates(estimator_id);
CREATE INDEX IF NOT EXISTS idx_estimates_class ON estimates(aace_class);
CREATE INDEX IF NOT EXISTS idx_estimates_sequence ON estimates(project_id, estimate_sequence);
CREATE INDEX IF NOT EXISTS idx_expertise_estimator ON expertise(estimator_id);
`

// clickhouseSchema is executed one statement at a time. The mirror has no
// foreign keys; ORDER BY keys follow the dashboard access paths.
var clickhouseSchema = []string{
	`CREATE TABLE IF NOT EXISTS businesses (
		business_id String, company_name String, industry_sector String, business_type String,
		street_address String, city String, state String, zip_code String, company_size String,
		annual_revenue Float64, years_in_business Int64, registration_date String,
		verification_status String, subscription_tier String, primary_contact String,
		email String, phone String, reputation_score Float64, last_login String
	) ENGINE = MergeTree ORDER BY business_id`,
	`CREATE TABLE IF NOT EXISTS estimators (
		estimator_id String, first_name String, last_name String, display_name String,
		profile_headline String, bio String, estimator_type LowCardinality(String),
		city String, state String, zip_code String, willing_to_travel Int64,
		years_experience Int64, education_level String, hourly_rate Float64, minimum_project_fee Float64,
		registration_date String, verification_status String, background_check Int64, insurance_verified Int64,
		email String, phone String, linkedin_url String, average_turnaround_hours Float64,
		average_response_hours Float64, estimate_accuracy_rate Float64, client_satisfaction_score Float64,
		diversity_classification Nullable(String), last_login String, last_active String
	) ENGINE = MergeTree ORDER BY estimator_id`,
	`CREATE TABLE IF NOT EXISTS expertise (
		expertise_id String, estimator_id String, specialization_type String, project_types String,
		certification_code Nullable(String), certification_name Nullable(String),
		issuing_organization Nullable(String), issue_date Nullable(String), expiry_date Nullable(String),
		software_proficiency String, years_in_specialty Int64, verified Int64
	) ENGINE = MergeTree ORDER BY (estimator_id, expertise_id)`,
	`CREATE TABLE IF NOT EXISTS projects (
		project_id String, business_id String, project_title String, project_description String,
		project_type String, project_sector LowCardinality(String), project_subtype String,
		project_city String, project_state LowCardinality(String), project_zip String,
		regional_cost_multiplier Float64, square_footage Int64,
		estimated_budget_min Float64, estimated_budget_max Float64, estimate_needed_by String,
		status LowCardinality(String), posted_date String, urgency_level String,
		actual_cost Nullable(Float64), cost_variance_percent Nullable(Float64)
	) ENGINE = MergeTree ORDER BY (project_state, project_id)`,
	`CREATE TABLE IF NOT EXISTS estimates (
		estimate_id String, project_id String, estimator_id String, estimate_sequence Int64,
		aace_class LowCardinality(String), engineering_completion_percent Float64, estimated_total_cost Float64,
		confidence_interval_low Float64, confidence_interval_high Float64,
		labor_cost Float64, materials_cost Float64, equipment_cost Float64, subcontractor_cost Float64,
		overhead_cost Float64, profit_margin Float64, contingency_percent Float64, contingency_amount Float64,
		estimated_duration_days Int64, estimation_method String, status LowCardinality(String), submitted_date String,
		actual_cost Nullable(Float64), variance_amount Nullable(Float64), variance_percent Nullable(Float64)
	) ENGINE = MergeTree ORDER BY (project_id, estimate_sequence, estimate_id)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		review_id String, project_id String, reviewer_id String, reviewer_type String,
		reviewee_id String, reviewee_type String, overall_rating Float64, communication_rating Float64,
		professionalism_rating Float64, accuracy_rating Float64, timeliness_rating Float64,
		value_rating Float64, review_title String, review_text String, would_recommend Int64,
		would_work_again Int64, verified_review Int64
	) ENGINE = MergeTree ORDER BY (project_id, review_id)`,
}
