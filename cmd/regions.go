package cmd

import (
	"fmt"

	"github.com/constructioncheck/ccgen/internal/cli"
	"github.com/constructioncheck/ccgen/internal/config"

	"github.com/spf13/cobra"
)

var (
	flagRegionsLimit int
	flagRegionsTable bool
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "Regional cost premiums against the national baseline",
	Long: "Compare stored project costs by state with the national baseline.\n" +
		"With --table, print the configured multiplier table instead.",
	RunE:  runRegions,
}

func init() {
	regionsCmd.Flags().IntVarP(&flagRegionsLimit, "limit", "l", 15, "States to show (0 for all)")
	regionsCmd.Flags().BoolVar(&flagRegionsTable, "table", false, "Show the configured multipliers, no store needed")
	rootCmd.AddCommand(regionsCmd)
}

func runRegions(cmd *cobra.Command, _ []string) error {
	if flagRegionsTable {
		return printRegionTable()
	}

	ctx := cmd.Context()
	r, err := openReader(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	stats, err := r.RegionalComparison(ctx, flagRegionsLimit)
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("\n  No projects in the store.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("REGIONAL COMPARISON"))
	fmt.Println()

	rows := make([][]string, 0, len(stats))
	for _, rs := range stats {
		rows = append(rows, []string{
			rs.State,
			fmt.Sprintf("%.2f×", rs.Multiplier),
			cli.FormatSignedPct(rs.PremiumPct()),
			formatNumber(rs.Projects),
			cli.FormatCompactCost(rs.AvgAdjustedCost),
			cli.FormatCompactCost(rs.AvgNationalCost),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"State", "Multiplier", "Premium", "Projects", "Avg Local", "Avg National"},
		Rows:    rows,
	}))
	return nil
}

func printRegionTable() error {
	table, err := cfg.RegionTable()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("REGIONAL MULTIPLIERS"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"State", "Multiplier", "Premium", "Source"},
		Rows:    regionTableRows(table, config.DefaultRegions()),
	}))
	fmt.Println(cli.Muted(fmt.Sprintf("\n  Unlisted states use %.2f×", config.DefaultRegionalMultiplier)))
	return nil
}

// regionTableRows lists every code in table and where its multiplier comes
// from relative to the built-in defaults.
func regionTableRows(table, defaults config.RegionTable) [][]string {
	codes := table.Codes()
	rows := make([][]string, 0, len(codes))
	for _, code := range codes {
		mult := table.Multiplier(code)
		source := "built-in"
		switch {
		case !defaults.Known(code):
			source = "config"
		case defaults.Multiplier(code) != mult:
			source = "override"
		}
		rows = append(rows, []string{
			code,
			fmt.Sprintf("%.2f×", mult),
			cli.FormatSignedPct((mult - 1) * 100),
			source,
		})
	}
	return rows
}
