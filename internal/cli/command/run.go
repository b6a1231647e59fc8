package command

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/encodebench/internal/cli/output"
	"github.com/yndnr/encodebench/internal/config"
	"github.com/yndnr/encodebench/internal/core/bench"
	"github.com/yndnr/encodebench/internal/infra/clock"
	"github.com/yndnr/encodebench/internal/telemetry/logger"
	"github.com/yndnr/encodebench/internal/telemetry/metric"
)

// runBenchmark is the default action: one timed loop, one report.
func runBenchmark(c *cli.Context) error {
	if c.Args().Present() {
		return fmt.Errorf("unexpected argument %q", c.Args().First())
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: stderr(c),
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.SetDefault(log)

	clk, err := clock.ByName(cfg.Bench.Clock)
	if err != nil {
		return err
	}
	mode, err := bench.ParseMode(cfg.Bench.Mode)
	if err != nil {
		return err
	}
	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	metrics := metric.NewRegistry()
	runner := bench.NewRunner(benchConfig(cfg, mode),
		bench.WithClock(clk),
		bench.WithLogger(log),
		bench.WithMetrics(metrics),
	)

	ctx := logger.WithLogger(c.Context, log)
	res, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	if err := report(ctx, stdout(c), format, res); err != nil {
		return err
	}

	if path := cfg.Metrics.Textfile; path != "" {
		if err := metrics.WriteTextfile(path); err != nil {
			return err
		}
		log.Info("metrics written", "path", path)
	}

	return nil
}

// report writes the result unless ctx was canceled while the loop ran.
// The loop is never interrupted, so a signal that arrives mid-run is only
// seen here; the measurement is discarded and the run fails.
func report(ctx context.Context, w io.Writer, format output.Format, res *bench.Result) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("run %s interrupted: %w", res.RunID, err)
	}
	if err := output.NewFormatter(format).Format(w, res); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func benchConfig(cfg *config.Config, mode bench.Mode) bench.Config {
	return bench.Config{
		Iterations: cfg.Bench.Iterations,
		Input:      cfg.Bench.Input,
		Offset:     byte(cfg.Bench.Offset),
		Mode:       mode,
	}
}
