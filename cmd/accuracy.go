package cmd

import (
	"fmt"
	"math"

	"github.com/constructioncheck/ccgen/internal/aace"
	"github.com/constructioncheck/ccgen/internal/cli"
	"github.com/constructioncheck/ccgen/internal/store"

	"github.com/spf13/cobra"
)

var flagAccuracyRows int

var accuracyCmd = &cobra.Command{
	Use:   "accuracy",
	Short: "Accepted estimates against final project cost",
	RunE:  runAccuracy,
}

func init() {
	accuracyCmd.Flags().IntVarP(&flagAccuracyRows, "rows", "r", 15, "Individual rows to print (0 for none)")
	rootCmd.AddCommand(accuracyCmd)
}

func runAccuracy(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	r, err := openReader(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	rows, err := r.AccuracyRows(ctx)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("\n  No accepted estimates on completed projects.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("ESTIMATE ACCURACY  %s estimates", formatNumber(len(rows)))))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "By class",
		Headers: []string{"Class", "Estimates", "Mean Var.", "Mean |Var.|", "Within Band"},
		Rows:    accuracyByClass(rows),
	}))

	if flagAccuracyRows > 0 {
		n := min(flagAccuracyRows, len(rows))
		detail := make([][]string, 0, n)
		for _, a := range rows[:n] {
			detail = append(detail, []string{
				a.ProjectID,
				truncate(a.EstimatorName, 22),
				a.Class.Label(),
				cli.FormatCompactCost(a.Estimated),
				cli.FormatCompactCost(a.Actual),
				cli.FormatSignedPct(a.VariancePercent),
			})
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Project", "Estimator", "Class", "Estimated", "Actual", "Variance"},
			Rows:    detail,
		}))
	}
	return nil
}

// accuracyByClass summarises variance per class, and how often the actual
// cost fell inside the class's accuracy band.
func accuracyByClass(rows []store.AccuracyRow) [][]string {
	type agg struct {
		n, within   int
		sum, sumAbs float64
	}
	by := map[aace.Class]*agg{}
	for _, a := range rows {
		g := by[a.Class]
		if g == nil {
			g = &agg{}
			by[a.Class] = g
		}
		g.n++
		g.sum += a.VariancePercent
		g.sumAbs += math.Abs(a.VariancePercent)
		info := aace.MustInfo(a.Class)
		if a.VariancePercent >= info.ConfidenceLowPct && a.VariancePercent <= info.ConfidenceHighPct {
			g.within++
		}
	}

	var out [][]string
	for _, c := range aace.Progression() {
		g := by[c]
		if g == nil {
			continue
		}
		out = append(out, []string{
			c.Label(),
			formatNumber(g.n),
			cli.FormatSignedPct(g.sum / float64(g.n)),
			cli.FormatPct(g.sumAbs / float64(g.n)),
			cli.FormatPercent(ratio(g.within, g.n)),
		})
	}
	return out
}
