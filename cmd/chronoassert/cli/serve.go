package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"digital.vasic.chronoassert/pkg/assertion"
	"digital.vasic.chronoassert/pkg/logging"
	"digital.vasic.chronoassert/pkg/metrics"
	"digital.vasic.chronoassert/pkg/monitor"
	"digital.vasic.chronoassert/pkg/report"
)

func (c *command) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve FILE|DIR...",
		Short: "Re-evaluate assertion banks periodically and stream results",
		Long: `Evaluate the given banks every interval and publish each result as
a WebSocket event on /events. Aggregate counts are served on /stats
and Prometheus metrics on /metrics.
Banks are reloaded on every pass, so edits are picked up without a restart.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return c.runServe(ctx, cmd, args)
		},
	}

	cmd.Flags().String("addr", ":8089", "listen address for the event stream")
	cmd.Flags().Duration("interval", 30*time.Second, "time between evaluation passes")
	mustBind(c.v, cmd.Flags(), "monitor.addr", "addr")
	mustBind(c.v, cmd.Flags(), "monitor.interval", "interval")

	return cmd
}

func (c *command) runServe(ctx context.Context, cmd *cobra.Command, args []string) error {
	app, logger, err := c.setup(cmd)
	if err != nil {
		return err
	}
	defer logger.Close()

	collector := monitor.NewEventCollector()
	stats := metrics.NewPrometheusMetrics("")
	server := monitor.NewServer(app.Monitor.Addr, collector, logger)
	server.Handle("/metrics", stats.Handler())
	engine := assertion.NewEngine(
		assertion.WithLogger(logger),
		assertion.WithObserver(collector.Observe),
		assertion.WithObserver(stats.Observe),
	)

	serveErr := make(chan error, 1)
	go func() { serveErr <- server.Start(ctx) }()

	pass := func() {
		defs, err := loadAll(args)
		if err != nil {
			logger.Error("unable to load assertions", logging.ErrorField(err))
			return
		}
		summary := report.Summarize(engine.EvaluateAll(defs))
		stats.RecordPass(summary.Total, summary.Failed)
		logger.Info("evaluation pass complete",
			logging.LogField("total", summary.Total),
			logging.LogField("failed", summary.Failed),
		)
	}

	ticker := time.NewTicker(app.Monitor.Interval)
	defer ticker.Stop()

	pass()
	for {
		select {
		case err := <-serveErr:
			return err
		case <-ctx.Done():
			if err := <-serveErr; err != nil {
				return fmt.Errorf("shutting down: %w", err)
			}
			return nil
		case <-ticker.C:
			pass()
		}
	}
}
