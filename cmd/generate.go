package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/constructioncheck/ccgen/internal/cli"
	"github.com/constructioncheck/ccgen/internal/config"
	"github.com/constructioncheck/ccgen/internal/pipeline"
	"github.com/constructioncheck/ccgen/internal/store"
	"github.com/constructioncheck/ccgen/internal/tui"
	"github.com/constructioncheck/ccgen/internal/tui/theme"
	"github.com/constructioncheck/ccgen/internal/verify"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	flagGenReset    bool
	flagGenSeed     int64
	flagGenProjects int
	flagGenVerify   bool
	flagGenPlain    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the demo dataset and write it to the store",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&flagGenReset, "reset", true, "Drop and recreate tables before writing")
	generateCmd.Flags().Int64Var(&flagGenSeed, "seed", 0, "Random seed (overrides config)")
	generateCmd.Flags().IntVar(&flagGenProjects, "projects", 0, "Number of projects (overrides config)")
	generateCmd.Flags().BoolVar(&flagGenVerify, "verify", false, "Re-check the estimate invariants after writing")
	generateCmd.Flags().BoolVar(&flagGenPlain, "plain", false, "Print progress lines instead of the interactive view")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	gen := cfg
	if cmd.Flags().Changed("seed") {
		gen.Generation.Seed = flagGenSeed
	}
	if cmd.Flags().Changed("projects") {
		gen.Generation.Projects = flagGenProjects
	}
	// Fail on bad config before a store is opened or reset.
	if err := gen.Validate(); err != nil {
		return err
	}

	sink, err := store.OpenSink(ctx, gen.Store.Driver, gen.Store.DSN, config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("opening %s store: %w", gen.Store.Driver, err)
	}
	defer func() { _ = sink.Close() }()

	opts := pipeline.Options{Reset: flagGenReset}

	var res *pipeline.Result
	switch {
	case flagQuiet:
		res, err = pipeline.Run(ctx, gen, sink, opts)
	case flagGenPlain || !isatty.IsTerminal(os.Stderr.Fd()):
		opts.Progress = printProgress
		res, err = pipeline.Run(ctx, gen, sink, opts)
	default:
		res, err = runGenerateTUI(ctx, gen, sink, opts)
	}
	if err != nil {
		return err
	}

	if !flagQuiet {
		printGenerateSummary(gen, res)
	}

	if flagGenVerify {
		return verifyDataset(res)
	}
	return nil
}

// runGenerateTUI drives the pipeline from the bubbletea progress view. The
// pipeline logger is silenced so log lines don't tear the view.
func runGenerateTUI(ctx context.Context, gen config.Config, sink store.Sink, opts pipeline.Options) (*pipeline.Result, error) {
	theme.SetActive(gen.Appearance.Theme)
	opts.Logger = slog.New(slog.DiscardHandler)

	run := func(ctx context.Context, progress pipeline.ProgressFunc) (*pipeline.Result, error) {
		opts.Progress = progress
		return pipeline.Run(ctx, gen, sink, opts)
	}

	final, err := tea.NewProgram(tui.NewGenerate(ctx, run), tea.WithOutput(os.Stderr)).Run()
	if err != nil {
		return nil, fmt.Errorf("progress view: %w", err)
	}
	g := final.(tui.Generate)
	if g.Interrupted() {
		return nil, errors.New("generation cancelled")
	}
	return g.Result()
}

func printProgress(ev pipeline.Event) {
	if !ev.Done {
		fmt.Fprintf(os.Stderr, "  [%d/%d] %s...", ev.Index+1, ev.Total, ev.Entity)
		return
	}
	fmt.Fprintf(os.Stderr, " %s rows\n", formatNumber(ev.Rows))
}

func printGenerateSummary(gen config.Config, res *pipeline.Result) {
	ds := res.Dataset

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DATASET  seed %d", gen.Generation.Seed)))
	fmt.Println()

	target := gen.Store.DSN
	if target == "" {
		target = config.DefaultDBPath()
	}

	rows := [][]string{
		{"Businesses", formatNumber(len(ds.Businesses))},
		{"Estimators", formatNumber(len(ds.Estimators))},
		{"Expertise", formatNumber(len(ds.Expertise))},
		{"Projects", formatNumber(len(ds.Projects))},
		{"Estimates", formatNumber(len(ds.Estimates))},
		{"Reviews", formatNumber(len(ds.Reviews))},
		{"---"},
		{"Progressive", fmt.Sprintf("%s (%s of projects)",
			formatNumber(res.Progressive), cli.FormatPercent(ratio(res.Progressive, len(ds.Projects))))},
		{"Window", gen.Generation.WindowStart + " → " + gen.Generation.WindowEnd},
		{"Store", gen.Store.Driver + "  " + target},
		{"Elapsed", cli.FormatElapsed(res.Elapsed)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Table", "Rows"},
		Rows:    rows,
	}))
}

func verifyDataset(res *pipeline.Result) error {
	rep := verify.Check(res.Dataset.Projects, res.Dataset.Estimates)
	printVerifyReport(rep)
	if !rep.OK() {
		return fmt.Errorf("%d invariant violations", len(rep.Violations))
	}
	return nil
}

func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}
