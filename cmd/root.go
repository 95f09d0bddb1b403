// Package cmd implements the ccgen CLI commands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/constructioncheck/ccgen/internal/cli"
	"github.com/constructioncheck/ccgen/internal/config"
	"github.com/constructioncheck/ccgen/internal/logging"
	"github.com/constructioncheck/ccgen/internal/store"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagDB       string
	flagDriver   string
	flagQuiet    bool
	flagLogLevel string
)

// cfg is loaded once per invocation by the root pre-run hook.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "ccgen",
	Short: "Construction Check demo-data generator",
	Long: "Generate a reproducible Construction Check dataset: businesses, estimators,\n" +
		"projects, AACE progressive estimate sequences and reviews.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Config file (default "+config.Path()+")")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Store DSN or SQLite path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDriver, "driver", "", "Store driver: sqlite, postgres, clickhouse")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// setup loads .env, the config file and the logger before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	loaded, err := loadConfig()
	if err != nil {
		return err
	}
	cfg = loaded

	logger, err := logging.Setup(os.Stderr, cfg.Log)
	if err != nil {
		return err
	}
	logger = logger.With("command", cmd.Name())
	cmd.SetContext(logging.WithContext(cmd.Context(), logger))

	logger.Debug("config loaded", "path", configPath(), "driver", cfg.Store.Driver)
	return nil
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.Path()
}

// loadConfig reads the config file and applies flag overrides on top of the
// file and environment.
func loadConfig() (config.Config, error) {
	c, err := config.LoadFrom(configPath())
	if err != nil {
		return c, err
	}
	if flagDriver != "" {
		c.Store.Driver = flagDriver
	}
	if flagDB != "" {
		c.Store.DSN = flagDB
	}
	if flagLogLevel != "" {
		c.Log.Level = flagLogLevel
	}
	if flagQuiet && flagLogLevel == "" {
		c.Log.Level = "warn"
	}
	return c, nil
}

// openReader opens the configured store for queries.
func openReader(ctx context.Context) (store.Reader, error) {
	r, err := store.OpenReader(ctx, cfg.Store.Driver, cfg.Store.DSN, config.DefaultDBPath())
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", cfg.Store.Driver, err)
	}
	return r, nil
}

func formatNumber(n int) string {
	return cli.FormatNumber(int64(n))
}
