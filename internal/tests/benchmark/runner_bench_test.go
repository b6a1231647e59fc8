package benchmark

import (
	"context"
	"testing"

	"github.com/yndnr/encodebench/internal/core/bench"
	"github.com/yndnr/encodebench/internal/telemetry/logger"
	"github.com/yndnr/encodebench/internal/telemetry/metric"
)

// BenchmarkRunner measures a full reference run per mode.
func BenchmarkRunner(b *testing.B) {
	for _, mode := range []bench.Mode{bench.ModeAlloc, bench.ModeScoped} {
		b.Run(string(mode), func(b *testing.B) {
			cfg := bench.DefaultConfig()
			cfg.Mode = mode
			runner := bench.NewRunner(cfg,
				bench.WithLogger(logger.Nop()),
				bench.WithMetrics(metric.NewRegistry()),
			)

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				if _, err := runner.Run(context.Background()); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
