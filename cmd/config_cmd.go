package cmd

import (
	"fmt"
	"sort"

	"github.com/constructioncheck/ccgen/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	path := configPath()
	fmt.Printf("  Config file: %s\n", path)
	if config.Exists(path) {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	g := cfg.Generation
	fmt.Println("  [Generation]")
	fmt.Printf("    Seed:             %d\n", g.Seed)
	fmt.Printf("    Window:           %s → %s\n", g.WindowStart, g.WindowEnd)
	fmt.Printf("    Businesses:       %s\n", formatNumber(g.Businesses))
	fmt.Printf("    Estimators:       %s consultants, %s freelancers\n", formatNumber(g.Consultants), formatNumber(g.Freelancers))
	fmt.Printf("    Projects:         %s\n", formatNumber(g.Projects))
	fmt.Printf("    Progressive rate: %.2f\n", g.ProgressiveRate)
	fmt.Printf("    Max sequence:     %d\n", g.MaxSequence)
	fmt.Printf("    Review rate:      %.2f\n", g.ReviewRate)
	fmt.Println()

	fmt.Println("  [Store]")
	fmt.Printf("    Driver: %s\n", cfg.Store.Driver)
	if cfg.Store.DSN != "" {
		fmt.Printf("    DSN:    %s\n", maskDSN(cfg.Store.DSN))
	} else {
		fmt.Printf("    DSN:    %s (default)\n", config.DefaultDBPath())
	}
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level:  %s\n", cfg.Log.Level)
	fmt.Printf("    Format: %s\n", cfg.Log.Format)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	if len(cfg.Regions) > 0 {
		fmt.Println("  [Regions]")
		codes := make([]string, 0, len(cfg.Regions))
		for code := range cfg.Regions {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		for _, code := range codes {
			fmt.Printf("    %s: %.2f\n", code, cfg.Regions[code])
		}
		fmt.Println()
	}

	if err := cfg.Validate(); err != nil {
		fmt.Printf("  Warning: %v\n\n", err)
	}

	fmt.Println("  Run `ccgen setup` to reconfigure.")
	return nil
}
