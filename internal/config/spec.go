package config

// Config is the root configuration for encodebench.
type Config struct {
	Bench   BenchSection   `koanf:"bench" yaml:"bench"`
	Output  OutputSection  `koanf:"output" yaml:"output"`
	Metrics MetricsSection `koanf:"metrics" yaml:"metrics"`
	Log     LogSection     `koanf:"log" yaml:"log"`
}

// BenchSection configures the timed loop.
type BenchSection struct {
	// Iterations is the number of shifter calls in the loop.
	Iterations int `koanf:"iterations" yaml:"iterations"`

	// Input is the constant string shifted on every iteration.
	Input string `koanf:"input" yaml:"input"`

	// Offset is added to every byte, modulo 256. Must be 0..255.
	Offset int `koanf:"offset" yaml:"offset"`

	// Mode selects buffer handling: "alloc" allocates a fresh output per
	// call, "scoped" reuses one buffer sized to the input.
	Mode string `koanf:"mode" yaml:"mode"`

	// Clock selects the time source: "wall" or "cpu".
	Clock string `koanf:"clock" yaml:"clock"`
}

// OutputSection configures the report.
type OutputSection struct {
	// Format is one of text, table, json, yaml.
	Format string `koanf:"format" yaml:"format"`
}

// MetricsSection configures metrics export.
type MetricsSection struct {
	// Textfile is a path for the Prometheus text exposition. Empty disables.
	Textfile string `koanf:"textfile" yaml:"textfile"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level" yaml:"level"`
	Format string `koanf:"format" yaml:"format"`
}
