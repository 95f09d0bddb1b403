package cmd

import (
	"fmt"

	"github.com/constructioncheck/ccgen/internal/cli"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Row counts of the stored dataset",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	r, err := openReader(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	c, err := r.Counts(ctx)
	if err != nil {
		return err
	}
	if c.Projects == 0 {
		fmt.Println("\n  The store is empty.")
		fmt.Println("  Run `ccgen generate` first.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("CONSTRUCTION CHECK  Dataset"))
	fmt.Println()

	rows := [][]string{
		{"Businesses", formatNumber(c.Businesses)},
		{"Estimators", formatNumber(c.Estimators)},
		{"Expertise", formatNumber(c.Expertise)},
		{"---"},
		{"Projects", formatNumber(c.Projects)},
		{"Estimates", formatNumber(c.Estimates)},
		{"Estimates/project", fmt.Sprintf("%.2f", ratio(c.Estimates, c.Projects))},
		{"Progressive", fmt.Sprintf("%s (%s)", formatNumber(c.ProgressiveProjects),
			cli.FormatPercent(ratio(c.ProgressiveProjects, c.Projects)))},
		{"---"},
		{"Reviews", formatNumber(c.Reviews)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))
	return nil
}
