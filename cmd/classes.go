package cmd

import (
	"fmt"

	"github.com/constructioncheck/ccgen/internal/aace"
	"github.com/constructioncheck/ccgen/internal/cli"
	"github.com/constructioncheck/ccgen/internal/store"

	"github.com/spf13/cobra"
)

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "Estimate counts and interval widths per AACE class",
	RunE:  runClasses,
}

func init() {
	rootCmd.AddCommand(classesCmd)
}

func runClasses(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	r, err := openReader(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	stats, err := r.ClassDistribution(ctx)
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("\n  No estimates in the store.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("AACE CLASS DISTRIBUTION"))
	fmt.Println()

	rows := make([][]string, 0, len(stats))
	for _, cs := range stats {
		info := aace.MustInfo(cs.Class)
		rows = append(rows, []string{
			info.Name,
			formatNumber(cs.Estimates),
			formatNumber(cs.Accepted),
			cli.FormatCompactCost(cs.AvgCost),
			cli.FormatBand(info.ConfidenceLowPct, info.ConfidenceHighPct),
			cli.FormatPct(cs.AvgWidthPct),
			cli.FormatPct(cs.AvgEngineering),
			cli.FormatPct(cs.AvgContingency),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Class", "Estimates", "Accepted", "Avg Cost", "Band", "Avg Width", "Eng.", "Cont."},
		Rows:    rows,
	}))
	fmt.Printf("\n  Estimates by class  %s  %s\n", classSparkline(stats), cli.Muted("Class 5 → Class 1"))
	return nil
}

// classSparkline plots estimate counts from Class 5 to Class 1. Classes
// without estimates plot as zero.
func classSparkline(stats []store.ClassStat) string {
	counts := make(map[aace.Class]int, len(stats))
	for _, cs := range stats {
		counts[cs.Class] = cs.Estimates
	}
	order := aace.Progression()
	values := make([]float64, 0, len(order))
	for _, c := range order {
		values = append(values, float64(counts[c]))
	}
	return cli.RenderSparkline(values)
}
