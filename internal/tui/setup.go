package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/constructioncheck/ccgen/internal/config"
	"github.com/constructioncheck/ccgen/internal/logging"
	"github.com/constructioncheck/ccgen/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// SetupValues holds the form fields as edited text. huh inputs bind to
// strings, so numbers are parsed in Apply.
type SetupValues struct {
	Seed            string
	WindowStart     string
	WindowEnd       string
	Businesses      string
	Consultants     string
	Freelancers     string
	Projects        string
	ProgressiveRate string
	MaxSequence     int
	ReviewRate      string
	Driver          string
	DSN             string
	LogLevel        string
	Theme           string
}

// ValuesFrom seeds the form from an existing config.
func ValuesFrom(cfg config.Config) SetupValues {
	g := cfg.Generation
	return SetupValues{
		Seed:            strconv.FormatInt(g.Seed, 10),
		WindowStart:     g.WindowStart,
		WindowEnd:       g.WindowEnd,
		Businesses:      strconv.Itoa(g.Businesses),
		Consultants:     strconv.Itoa(g.Consultants),
		Freelancers:     strconv.Itoa(g.Freelancers),
		Projects:        strconv.Itoa(g.Projects),
		ProgressiveRate: strconv.FormatFloat(g.ProgressiveRate, 'f', -1, 64),
		MaxSequence:     g.MaxSequence,
		ReviewRate:      strconv.FormatFloat(g.ReviewRate, 'f', -1, 64),
		Driver:          cfg.Store.Driver,
		DSN:             cfg.Store.DSN,
		LogLevel:        cfg.Log.Level,
		Theme:           cfg.Appearance.Theme,
	}
}

// Apply parses the values onto base and validates the result.
func (v SetupValues) Apply(base config.Config) (config.Config, error) {
	cfg := base
	var errs []error
	parseInt := func(name, raw string, dst *int) {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %q is not a whole number", name, raw))
			return
		}
		*dst = n
	}
	parseRate := func(name, raw string, dst *float64) {
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %q is not a number", name, raw))
			return
		}
		*dst = f
	}

	seed, err := strconv.ParseInt(strings.TrimSpace(v.Seed), 10, 64)
	if err != nil {
		errs = append(errs, fmt.Errorf("seed: %q is not a whole number", v.Seed))
	}
	cfg.Generation.Seed = seed
	cfg.Generation.WindowStart = strings.TrimSpace(v.WindowStart)
	cfg.Generation.WindowEnd = strings.TrimSpace(v.WindowEnd)
	parseInt("businesses", v.Businesses, &cfg.Generation.Businesses)
	parseInt("consultants", v.Consultants, &cfg.Generation.Consultants)
	parseInt("freelancers", v.Freelancers, &cfg.Generation.Freelancers)
	parseInt("projects", v.Projects, &cfg.Generation.Projects)
	parseRate("progressive rate", v.ProgressiveRate, &cfg.Generation.ProgressiveRate)
	parseRate("review rate", v.ReviewRate, &cfg.Generation.ReviewRate)
	cfg.Generation.MaxSequence = v.MaxSequence

	cfg.Store.Driver = v.Driver
	cfg.Store.DSN = strings.TrimSpace(v.DSN)
	cfg.Log.Level = v.LogLevel
	cfg.Appearance.Theme = v.Theme

	if err := errors.Join(errs...); err != nil {
		return base, err
	}
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

func validateWholeNumber(s string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return errors.New("enter a whole number")
	}
	return nil
}

func validateRate(s string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 || f > 1 {
		return errors.New("enter a number between 0 and 1")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse(config.DateLayout, strings.TrimSpace(s)); err != nil {
		return errors.New("use YYYY-MM-DD")
	}
	return nil
}

func validateLevel(s string) error {
	_, err := logging.ParseLevel(s)
	return err
}

// NewSetupForm builds the setup form bound to v.
func NewSetupForm(v *SetupValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Seed").
				Description("Same seed, same dataset.").
				Value(&v.Seed).Validate(func(s string) error {
				if _, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err != nil {
					return errors.New("enter a whole number")
				}
				return nil
			}),
			huh.NewInput().Title("Window start").Placeholder("2023-12-01").
				Value(&v.WindowStart).Validate(validateDate),
			huh.NewInput().Title("Window end").Placeholder("2025-11-30").
				Value(&v.WindowEnd).Validate(validateDate),
		).Title("Generation"),

		huh.NewGroup(
			huh.NewInput().Title("Businesses").Value(&v.Businesses).Validate(validateWholeNumber),
			huh.NewInput().Title("Consultants").Value(&v.Consultants).Validate(validateWholeNumber),
			huh.NewInput().Title("Freelancers").Value(&v.Freelancers).Validate(validateWholeNumber),
			huh.NewInput().Title("Projects").Value(&v.Projects).Validate(validateWholeNumber),
		).Title("Volumes"),

		huh.NewGroup(
			huh.NewInput().Title("Progressive rate").
				Description("Share of projects that get a Class 5 to Class 1 sequence.").
				Value(&v.ProgressiveRate).Validate(validateRate),
			huh.NewSelect[int]().Title("Longest sequence").
				Options(
					huh.NewOption("2 steps (Class 5 → 4)", 2),
					huh.NewOption("3 steps (Class 5 → 3)", 3),
					huh.NewOption("4 steps (Class 5 → 2)", 4),
					huh.NewOption("5 steps (Class 5 → 1)", 5),
				).
				Value(&v.MaxSequence),
			huh.NewInput().Title("Review rate").
				Description("Share of completed projects that get a review.").
				Value(&v.ReviewRate).Validate(validateRate),
		).Title("Estimates"),

		huh.NewGroup(
			huh.NewSelect[string]().Title("Store driver").
				Options(huh.NewOptions("sqlite", "postgres", "clickhouse")...).
				Value(&v.Driver),
			huh.NewInput().Title("DSN").
				Description("Leave blank for the default SQLite file.").
				Value(&v.DSN),
			huh.NewSelect[string]().Title("Log level").
				Options(huh.NewOptions("debug", "info", "warn", "error")...).
				Value(&v.LogLevel).Validate(validateLevel),
			huh.NewSelect[string]().Title("Theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&v.Theme),
		).Title("Output"),
	).WithTheme(theme.Active.Form())
}

// Setup wraps the setup form and saves the config when it completes.
type Setup struct {
	form   *huh.Form
	values *SetupValues
	base   config.Config
	path   string

	saved   bool
	aborted bool
	err     error
}

// NewSetup builds a setup model that edits cfg and saves it to path.
func NewSetup(cfg config.Config, path string) Setup {
	v := ValuesFrom(cfg)
	return Setup{
		form:   NewSetupForm(&v),
		values: &v,
		base:   cfg,
		path:   path,
	}
}

// Init implements tea.Model.
func (s Setup) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model.
func (s Setup) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	switch s.form.State {
	case huh.StateCompleted:
		s.err = s.save()
		s.saved = s.err == nil
		return s, tea.Quit
	case huh.StateAborted:
		s.aborted = true
		return s, tea.Quit
	}
	return s, cmd
}

func (s Setup) save() error {
	cfg, err := s.values.Apply(s.base)
	if err != nil {
		return err
	}
	if err := config.Save(cfg, s.path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}

// View implements tea.Model.
func (s Setup) View() string {
	if s.saved || s.aborted || s.err != nil {
		return ""
	}
	return s.form.View()
}

// Outcome reports whether the config was saved, and any error.
func (s Setup) Outcome() (saved, aborted bool, err error) {
	return s.saved, s.aborted, s.err
}
