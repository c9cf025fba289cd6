package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/mongosession"
	"github.com/dmitrymomot/mongosession/pkg/config"
)

// Build information, set via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

const configKey = "config"

var errMissingID = errors.New("session id is required")

// newApp builds the CLI. A non-nil environ replaces the process environment
// when reading the configuration.
func newApp(environ map[string]string) *cli.App {
	return &cli.App{
		Name:    "sessionctl",
		Usage:   "Manage a server-side session store",
		Version: fmt.Sprintf("%s (commit: %s)", Version, Commit),
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "Load variables from `FILE` before reading the configuration",
			},
			&cli.StringFlag{
				Name:    "backend",
				Aliases: []string{"b"},
				Usage:   "Override the configured backend: mongo, redis or memory",
			},
		},
		Commands: []*cli.Command{
			purgeCommand(),
			showCommand(),
			dropCommand(),
			generateCommand(),
			serveCommand(),
		},
		Before: func(c *cli.Context) error {
			if err := config.LoadEnv(c.StringSlice("env-file")...); err != nil {
				return err
			}

			var opts []config.Option
			if environ != nil {
				opts = append(opts, config.WithEnvironment(environ))
			}
			cfg, err := mongosession.LoadConfig(opts...)
			if err != nil {
				return err
			}
			if b := c.String("backend"); b != "" {
				cfg.Backend = b
			}

			c.App.Metadata[configKey] = cfg
			return nil
		},
	}
}

// openService opens the configured store. The caller closes it.
func openService(c *cli.Context, opts ...mongosession.Option) (*mongosession.Service, error) {
	cfg, _ := c.App.Metadata[configKey].(mongosession.Config)
	return mongosession.Open(c.Context, cfg, opts...)
}

func sessionID(c *cli.Context) (string, error) {
	if c.NArg() != 1 || c.Args().First() == "" {
		return "", errMissingID
	}
	return c.Args().First(), nil
}
