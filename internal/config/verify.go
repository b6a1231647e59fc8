package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yndnr/encodebench/internal/infra/clock"
	"github.com/yndnr/encodebench/internal/telemetry/logger"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Verify validates the configuration. All problems are reported together.
func Verify(cfg *Config) error {
	errs := append(verifyBench(&cfg.Bench), verifyOutput(&cfg.Output)...)
	errs = append(errs, verifyLog(&cfg.Log)...)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

func verifyBench(cfg *BenchSection) []error {
	var errs []error

	if cfg.Iterations <= 0 {
		errs = append(errs, fmt.Errorf("bench.iterations must be positive, got %d", cfg.Iterations))
	}
	if cfg.Offset < 0 || cfg.Offset > 255 {
		errs = append(errs, fmt.Errorf("bench.offset must be in 0..255, got %d", cfg.Offset))
	}

	switch strings.ToLower(cfg.Mode) {
	case ModeAlloc, ModeScoped:
	default:
		errs = append(errs, fmt.Errorf("bench.mode must be %q or %q, got %q", ModeAlloc, ModeScoped, cfg.Mode))
	}

	if _, err := clock.ByName(cfg.Clock); err != nil {
		errs = append(errs, fmt.Errorf("bench.clock: %w", err))
	}

	return errs
}

func verifyOutput(cfg *OutputSection) []error {
	switch strings.ToLower(cfg.Format) {
	case "text", "table", "json", "yaml":
		return nil
	}
	return []error{fmt.Errorf("output.format must be text, table, json or yaml, got %q", cfg.Format)}
}

func verifyLog(cfg *LogSection) []error {
	var errs []error

	if _, err := logger.ParseLevel(cfg.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	switch strings.ToLower(cfg.Format) {
	case "text", "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", cfg.Format))
	}

	return errs
}
