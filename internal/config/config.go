// Package config holds ccgen configuration and the static pricing tables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// DateLayout is the layout used for window dates in the config file.
const DateLayout = "2006-01-02"

// ErrInvalidConfig marks configuration precondition violations.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all ccgen configuration.
type Config struct {
	Generation GenerationConfig   `toml:"generation"`
	Store      StoreConfig        `toml:"store"`
	Log        LogConfig          `toml:"log"`
	Appearance AppearanceConfig   `toml:"appearance"`
	Regions    map[string]float64 `toml:"regions,omitempty"`
}

// GenerationConfig controls dataset volume and the stochastic model.
type GenerationConfig struct {
	Seed            int64   `toml:"seed"`
	WindowStart     string  `toml:"window_start"`
	WindowEnd       string  `toml:"window_end"`
	Businesses      int     `toml:"businesses"`
	Consultants     int     `toml:"consultants"`
	Freelancers     int     `toml:"freelancers"`
	Projects        int     `toml:"projects"`
	ProgressiveRate float64 `toml:"progressive_rate"`
	MaxSequence     int     `toml:"max_sequence"`
	ReviewRate      float64 `toml:"review_rate"`
}

// StoreConfig selects the persistence driver.
type StoreConfig struct {
	Driver string `toml:"driver"` // sqlite, postgres, clickhouse
	DSN    string `toml:"dsn,omitempty"`
}

// LogConfig holds slog settings.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // text, json
}

// AppearanceConfig holds terminal UI preferences.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Generation: GenerationConfig{
			Seed:            42,
			WindowStart:     "2023-12-01",
			WindowEnd:       "2025-11-30",
			Businesses:      150,
			Consultants:     100,
			Freelancers:     250,
			Projects:        800,
			ProgressiveRate: 0.40,
			MaxSequence:     5,
			ReviewRate:      0.5,
		},
		Store: StoreConfig{
			Driver: "sqlite",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ccgen")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "ccgen")
}

// Path returns the full path to the default config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DefaultDBPath returns where the sqlite store lives when no DSN is set.
func DefaultDBPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "ccgen", "construction_check.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "ccgen", "construction_check.db")
}

// Load reads the default config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config at path and applies environment overrides.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if dsn := os.Getenv("CCGEN_DB_DSN"); dsn != "" {
		cfg.Store.DSN = dsn
	}
	if driver := os.Getenv("CCGEN_DB_DRIVER"); driver != "" {
		cfg.Store.Driver = driver
	}
	if raw := os.Getenv("CCGEN_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("parsing CCGEN_SEED: %w", err)
		}
		cfg.Generation.Seed = seed
	}
	return nil
}

// Save writes the config to path, creating parent directories.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if a config file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Window returns the parsed generation window.
func (g GenerationConfig) Window() (start, end time.Time, err error) {
	start, err = time.Parse(DateLayout, g.WindowStart)
	if err != nil {
		return start, end, fmt.Errorf("%w: window_start: %v", ErrInvalidConfig, err)
	}
	end, err = time.Parse(DateLayout, g.WindowEnd)
	if err != nil {
		return start, end, fmt.Errorf("%w: window_end: %v", ErrInvalidConfig, err)
	}
	return start, end, nil
}

// Validate checks generation preconditions. Every failure wraps
// ErrInvalidConfig.
func (c Config) Validate() error {
	g := c.Generation
	start, end, err := g.Window()
	if err != nil {
		return err
	}
	if !end.After(start) {
		return fmt.Errorf("%w: window_end %s is not after window_start %s", ErrInvalidConfig, g.WindowEnd, g.WindowStart)
	}
	if g.Businesses <= 0 {
		return fmt.Errorf("%w: businesses must be positive", ErrInvalidConfig)
	}
	if g.Consultants < 0 || g.Freelancers < 0 || g.Consultants+g.Freelancers == 0 {
		return fmt.Errorf("%w: estimator pool is empty", ErrInvalidConfig)
	}
	if g.Projects < 0 {
		return fmt.Errorf("%w: projects must not be negative", ErrInvalidConfig)
	}
	if g.ProgressiveRate < 0 || g.ProgressiveRate > 1 {
		return fmt.Errorf("%w: progressive_rate %g outside [0,1]", ErrInvalidConfig, g.ProgressiveRate)
	}
	if g.ReviewRate < 0 || g.ReviewRate > 1 {
		return fmt.Errorf("%w: review_rate %g outside [0,1]", ErrInvalidConfig, g.ReviewRate)
	}
	if g.MaxSequence < 2 || g.MaxSequence > 5 {
		return fmt.Errorf("%w: max_sequence %d outside [2,5]", ErrInvalidConfig, g.MaxSequence)
	}
	switch c.Store.Driver {
	case "sqlite", "postgres", "clickhouse":
	default:
		return fmt.Errorf("%w: unknown store driver %q", ErrInvalidConfig, c.Store.Driver)
	}
	if _, err := NewRegionTable(c.Regions); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// RegionTable returns the built-in regions with config overrides applied.
func (c Config) RegionTable() (RegionTable, error) {
	return NewRegionTable(c.Regions)
}
