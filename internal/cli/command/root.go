package command

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/encodebench/internal/config"
	"github.com/yndnr/encodebench/internal/infra/buildinfo"
	"github.com/yndnr/encodebench/internal/infra/confloader"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:            "encodebench",
		Usage:           "Time a byte-shift encoder over a constant string",
		Version:         buildinfo.String(),
		Flags:           globalFlags(),
		HideHelpCommand: true,
		Action:          runBenchmark,
		Commands: []*cli.Command{
			ConfigCommand(),
			VersionCommand(),
		},
	}
}

// globalFlags returns the global CLI flags.
//
// Flag values override the config file and ENCODEBENCH_* environment only
// when set explicitly; the Value fields document the defaults in --help.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to a YAML configuration file",
			EnvVars: []string{"ENCODEBENCH_CONFIG"},
		},
		&cli.IntFlag{
			Name:    "iterations",
			Aliases: []string{"n"},
			Usage:   "Number of shifter calls in the timed loop",
			Value:   config.DefaultIterations,
		},
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "String shifted on every iteration",
			Value:   config.DefaultInput,
		},
		&cli.IntFlag{
			Name:  "offset",
			Usage: "Value added to every byte, modulo 256 (0..255)",
			Value: config.DefaultOffset,
		},
		&cli.StringFlag{
			Name:  "mode",
			Usage: "Buffer handling: alloc, scoped",
			Value: config.DefaultMode,
		},
		&cli.StringFlag{
			Name:  "clock",
			Usage: "Time source: wall, cpu",
			Value: config.DefaultClock,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: text, table, json, yaml",
			Value:   config.DefaultOutputFormat,
		},
		&cli.StringFlag{
			Name:  "metrics-textfile",
			Usage: "Write Prometheus metrics to this file after the run",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
			Value: config.DefaultLogLevel,
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text, json",
			Value: config.DefaultLogFormat,
		},
	}
}

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"iterations":       "bench.iterations",
	"input":            "bench.input",
	"offset":           "bench.offset",
	"mode":             "bench.mode",
	"clock":            "bench.clock",
	"output":           "output.format",
	"metrics-textfile": "metrics.textfile",
	"log-level":        "log.level",
	"log-format":       "log.format",
}

// flagOverrides collects the explicitly set flags as configuration keys.
func flagOverrides(c *cli.Context) map[string]any {
	overrides := make(map[string]any)
	for name, key := range flagKeys {
		if !c.IsSet(name) {
			continue
		}
		switch name {
		case "iterations", "offset":
			overrides[key] = c.Int(name)
		default:
			overrides[key] = c.String(name)
		}
	}
	return overrides
}

// loadConfig builds the effective configuration:
// defaults < config file < environment < flags.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()

	loader := confloader.NewLoader(
		confloader.WithConfigFile(c.String("config")),
		confloader.WithOverrides(flagOverrides(c)),
	)
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	cfg = config.Normalize(cfg)
	if err := config.Verify(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func stdout(c *cli.Context) io.Writer {
	if c.App.Writer != nil {
		return c.App.Writer
	}
	return os.Stdout
}

func stderr(c *cli.Context) io.Writer {
	if c.App.ErrWriter != nil {
		return c.App.ErrWriter
	}
	return os.Stderr
}

// PrintError prints an error message to stderr.
func PrintError(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "error: "+format+"\n", args...)
}
