package bench

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/yndnr/encodebench/internal/core/shifter"
	"github.com/yndnr/encodebench/internal/infra/clock"
	"github.com/yndnr/encodebench/internal/telemetry/logger"
	"github.com/yndnr/encodebench/internal/telemetry/metric"
)

// Defaults reproduce the reference benchmark.
const (
	DefaultIterations = 1_000_000
	DefaultInput      = "Hello, World!"
)

// Mode selects how output buffers are handled.
type Mode string

const (
	// ModeAlloc allocates a fresh output buffer on every call.
	ModeAlloc Mode = "alloc"
	// ModeScoped reuses one buffer sized to the input for the whole loop.
	ModeScoped Mode = "scoped"
)

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeAlloc, "":
		return ModeAlloc, nil
	case ModeScoped:
		return ModeScoped, nil
	default:
		return "", fmt.Errorf("bench: unknown mode %q", s)
	}
}

// Config holds the loop parameters.
type Config struct {
	Iterations int
	Input      string
	Offset     byte
	Mode       Mode
}

// DefaultConfig returns the reference loop: one million shifts of
// "Hello, World!" by 3, allocating each output.
func DefaultConfig() Config {
	return Config{
		Iterations: DefaultIterations,
		Input:      DefaultInput,
		Offset:     shifter.DefaultOffset,
		Mode:       ModeAlloc,
	}
}

// IntoFunc is the signature of the allocation-free shifter used in
// ModeScoped.
type IntoFunc func(dst, src []byte, offset byte) (int, error)

// Runner executes the benchmark loop.
type Runner struct {
	cfg     Config
	shift   shifter.Func
	into    IntoFunc
	clock   clock.Clock
	log     logger.Logger
	metrics *metric.Registry
	runID   func() string
}

// Option configures a Runner.
type Option func(*Runner)

// WithShifter replaces the shifter called in ModeAlloc.
func WithShifter(fn shifter.Func) Option {
	return func(r *Runner) {
		r.shift = fn
	}
}

// WithShifterInto replaces the shifter called in ModeScoped.
func WithShifterInto(fn IntoFunc) Option {
	return func(r *Runner) {
		r.into = fn
	}
}

// WithClock sets the time source. Defaults to the wall clock.
func WithClock(c clock.Clock) Option {
	return func(r *Runner) {
		r.clock = c
	}
}

// WithLogger sets the logger. Defaults to the logger in the Run context.
func WithLogger(l logger.Logger) Option {
	return func(r *Runner) {
		r.log = l
	}
}

// WithMetrics records every run in reg.
func WithMetrics(reg *metric.Registry) Option {
	return func(r *Runner) {
		r.metrics = reg
	}
}

// WithRunID sets the run ID generator. Defaults to a new ULID per run.
func WithRunID(fn func() string) Option {
	return func(r *Runner) {
		r.runID = fn
	}
}

// NewRunner creates a runner for cfg.
func NewRunner(cfg Config, opts ...Option) *Runner {
	if cfg.Mode == "" {
		cfg.Mode = ModeAlloc
	}

	r := &Runner{
		cfg:   cfg,
		shift: shifter.TryShift,
		into:  shifter.ShiftInto,
		clock: clock.Wall(),
		runID: func() string { return ulid.Make().String() },
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run executes the loop once and returns its result.
//
// A context that is already done aborts before the clock starts. Once the
// loop begins it runs to completion unless the shifter fails.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.cfg.Iterations < 0 {
		return nil, fmt.Errorf("bench: negative iteration count %d", r.cfg.Iterations)
	}

	runID := r.runID()
	ctx = logger.WithRunID(ctx, runID)
	if r.log != nil {
		ctx = logger.WithLogger(ctx, r.log)
	}
	log := logger.L(ctx)

	log.Debug("benchmark starting",
		"iterations", r.cfg.Iterations,
		"input_len", len(r.cfg.Input),
		"offset", r.cfg.Offset,
		"mode", r.cfg.Mode,
		"clock", r.clock.Name())

	src := []byte(r.cfg.Input)
	startedAt := time.Now()

	var s span
	switch r.cfg.Mode {
	case ModeAlloc:
		s = r.loopAlloc(src)
	case ModeScoped:
		s = r.loopScoped(src)
	default:
		s.err = fmt.Errorf("bench: unknown mode %q", r.cfg.Mode)
	}

	if s.err != nil {
		if r.metrics != nil {
			r.metrics.ObserveError()
		}
		log.Error("benchmark aborted", "error", s.err, "elapsed", s.elapsed())
		return nil, s.err
	}

	res := &Result{
		RunID:        runID,
		StartedAt:    startedAt,
		Iterations:   r.cfg.Iterations,
		Input:        r.cfg.Input,
		Offset:       r.cfg.Offset,
		Mode:         r.cfg.Mode,
		Clock:        r.clock.Name(),
		Elapsed:      s.elapsed(),
		BytesShifted: s.total,
		Digest:       digest(s.last),
	}

	if r.metrics != nil {
		r.metrics.ObserveRun(res.Sample())
	}

	log.Info("benchmark finished",
		"elapsed", res.Elapsed,
		"bytes_shifted", res.BytesShifted,
		"digest", res.Digest)

	return res, nil
}
