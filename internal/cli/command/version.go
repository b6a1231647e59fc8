package command

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/encodebench/internal/infra/buildinfo"
)

// VersionCommand returns the version subcommand.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print build information",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print as JSON",
			},
		},
		Action: func(c *cli.Context) error {
			info := buildinfo.Get()
			w := stdout(c)

			if c.Bool("json") {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}

			fmt.Fprintf(w, "Version:    %s\n", info.Version)
			fmt.Fprintf(w, "Commit:     %s\n", info.Commit)
			fmt.Fprintf(w, "Build Time: %s\n", info.BuildTime)
			fmt.Fprintf(w, "Go Version: %s\n", info.GoVersion)
			fmt.Fprintf(w, "Platform:   %s\n", info.Platform)
			return nil
		},
	}
}
