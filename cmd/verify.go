package cmd

import (
	"fmt"

	"github.com/constructioncheck/ccgen/internal/cli"
	"github.com/constructioncheck/ccgen/internal/verify"

	"github.com/spf13/cobra"
)

var flagVerifyShow int

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Re-check the progressive estimate invariants on the stored dataset",
	RunE:  runVerify,
}

func init() {
	verifyCmd.Flags().IntVar(&flagVerifyShow, "show", 20, "Violations to print")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	r, err := openReader(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	rep, err := verify.Run(ctx, r)
	if err != nil {
		return err
	}
	printVerifyReport(rep)
	if !rep.OK() {
		return fmt.Errorf("%d invariant violations", len(rep.Violations))
	}
	return nil
}

func printVerifyReport(rep verify.Report) {
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Check", "Value"},
		Rows: [][]string{
			{"Projects", formatNumber(rep.Projects)},
			{"Progressive", formatNumber(rep.ProgressiveProjects)},
			{"Estimates", formatNumber(rep.Estimates)},
			{"---"},
			{"Violations", formatNumber(len(rep.Violations))},
			{"Result", cli.Status(rep.OK())},
		},
	}))

	if rep.OK() {
		return
	}
	fmt.Println()
	for i, v := range rep.Violations {
		if i == flagVerifyShow {
			fmt.Println(cli.Muted(fmt.Sprintf("  ... %d more", len(rep.Violations)-i)))
			break
		}
		fmt.Println("  " + cli.Warn(v.String()))
	}
}
