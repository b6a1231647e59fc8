package config

import "github.com/yndnr/encodebench/internal/infra/clock"

// Default configuration values.
const (
	DefaultIterations = 1_000_000
	DefaultInput      = "Hello, World!"
	DefaultOffset     = 3
	DefaultMode       = ModeAlloc
	DefaultClock      = clock.NameWall

	DefaultOutputFormat = "text"

	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Buffer modes.
const (
	ModeAlloc  = "alloc"
	ModeScoped = "scoped"
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Bench: BenchSection{
			Iterations: DefaultIterations,
			Input:      DefaultInput,
			Offset:     DefaultOffset,
			Mode:       DefaultMode,
			Clock:      DefaultClock,
		},
		Output: OutputSection{
			Format: DefaultOutputFormat,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
