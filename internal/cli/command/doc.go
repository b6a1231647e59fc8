// Package command provides the CLI for encodebench using urfave/cli/v2:
//
//   - root.go: the application, global flags, configuration loading
//   - run.go: the default action, which runs the benchmark once
//   - config.go: the config subcommand group (show, validate)
//   - version.go: the version subcommand
//
// Running the binary with no arguments reproduces the reference benchmark
// and prints a single report line on stdout.
package command
