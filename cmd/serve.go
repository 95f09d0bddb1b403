package cmd

import (
	"time"

	"github.com/constructioncheck/ccgen/internal/logging"
	"github.com/constructioncheck/ccgen/internal/serve"

	"github.com/spf13/cobra"
)

var (
	flagServeAddr         string
	flagServeInterval     time.Duration
	flagServeEventsBuffer int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the stored dataset over a read-only JSON API",
	Long: "Serve the stored dataset over HTTP.\n\n" +
		"  GET /healthz\n" +
		"  GET /v1/status                    poll state and row counts\n" +
		"  GET /v1/summary                   row counts\n" +
		"  GET /v1/classes                   AACE class distribution\n" +
		"  GET /v1/regions?limit=N           regional cost comparison\n" +
		"  GET /v1/accuracy                  accepted estimates vs final cost\n" +
		"  GET /v1/projects/progressive      projects with progressive sequences\n" +
		"  GET /v1/projects/{id}/estimates   one project's estimate funnel\n" +
		"  GET /v1/estimates?class=class_3   estimates of one class\n" +
		"  GET /v1/events, /v1/stream        dataset change events (JSON, SSE)",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", "127.0.0.1:8787", "HTTP listen address")
	serveCmd.Flags().DurationVar(&flagServeInterval, "interval", 15*time.Second, "Store polling interval")
	serveCmd.Flags().IntVar(&flagServeEventsBuffer, "events-buffer", 200, "Max in-memory events retained")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	r, err := openReader(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	svc := serve.New(serve.Config{
		Addr:         flagServeAddr,
		PollInterval: flagServeInterval,
		EventsBuffer: flagServeEventsBuffer,
	}, r, logging.FromContext(ctx).With("component", "serve"))

	return svc.Run(ctx)
}
