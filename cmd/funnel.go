package cmd

import (
	"fmt"
	"math"

	"github.com/constructioncheck/ccgen/internal/aace"
	"github.com/constructioncheck/ccgen/internal/cli"
	"github.com/constructioncheck/ccgen/internal/model"

	"github.com/spf13/cobra"
)

var flagFunnelList int

var funnelCmd = &cobra.Command{
	Use:   "funnel [project-id]",
	Short: "Show how a project's estimate interval narrows class by class",
	Long: "Show a project's estimates in sequence order with their confidence intervals.\n" +
		"Without a project id, list the projects with the longest progressive sequences.",
	Args: cobra.MaximumNArgs(1),
	RunE: runFunnel,
}

func init() {
	funnelCmd.Flags().IntVarP(&flagFunnelList, "limit", "l", 10, "Projects to list when no id is given")
	rootCmd.AddCommand(funnelCmd)
}

func runFunnel(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	r, err := openReader(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	if len(args) == 0 {
		ps, err := r.ProgressiveProjects(ctx, flagFunnelList)
		if err != nil {
			return err
		}
		if len(ps) == 0 {
			fmt.Println("\n  No progressive sequences in the store.")
			return nil
		}
		rows := make([][]string, 0, len(ps))
		for _, p := range ps {
			rows = append(rows, []string{p.ID, truncate(p.Title, 34), p.State, cli.FormatCompactCost(p.BaseCost), string(p.Status), fmt.Sprintf("%d", p.Steps)})
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Progressive projects",
			Headers: []string{"Project", "Title", "State", "Base", "Status", "Steps"},
			Rows:    rows,
		}))
		fmt.Println(cli.Muted("\n  ccgen funnel <project-id> to see one sequence"))
		return nil
	}

	id := args[0]
	es, err := r.ProjectEstimates(ctx, id)
	if err != nil {
		return err
	}
	if len(es) == 0 {
		return fmt.Errorf("no estimates for project %q", id)
	}

	scale := 0.0
	for _, e := range es {
		scale = max(scale, e.ConfidenceHigh)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("ESTIMATE FUNNEL  " + id))
	fmt.Println()

	gaps := stepGaps(es)
	rows := make([][]string, 0, len(es))
	for i, e := range es {
		info := aace.MustInfo(e.Class)
		rows = append(rows, []string{
			fmt.Sprintf("%d", e.Sequence),
			e.Class.Label(),
			cli.FormatDate(e.SubmittedDate),
			gaps[i],
			cli.FormatCompactCost(e.EstimatedTotalCost),
			cli.FormatCompactCost(e.ConfidenceLow) + " – " + cli.FormatCompactCost(e.ConfidenceHigh),
			cli.FormatBand(info.ConfidenceLowPct, info.ConfidenceHighPct),
			string(e.Status),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"#", "Class", "Submitted", "Gap", "Estimate", "Interval", "Band", "Status"},
		Rows:    rows,
	}))

	fmt.Println()
	for _, e := range es {
		fmt.Printf("  %-8s %s\n", e.Class.Label(), cli.RenderIntervalBar(e.ConfidenceLow, e.EstimatedTotalCost, e.ConfidenceHigh, scale, 48))
	}
	fmt.Println()
	return nil
}

// stepGaps formats the days between consecutive submissions. The first
// estimate has no gap.
func stepGaps(es []model.Estimate) []string {
	gaps := make([]string, len(es))
	for i, e := range es {
		if i == 0 {
			gaps[i] = "-"
			continue
		}
		days := int(math.Round(e.SubmittedDate.Sub(es[i-1].SubmittedDate).Hours() / 24))
		gaps[i] = cli.FormatDays(days)
	}
	return gaps
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
