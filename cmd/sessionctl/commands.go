package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/mongosession/pkg/session"
)

func purgeCommand() *cli.Command {
	return &cli.Command{
		Name:  "purge",
		Usage: "Delete every expired session",
		Action: func(c *cli.Context) error {
			svc, err := openService(c)
			if err != nil {
				return err
			}
			defer svc.Close(c.Context)

			n, err := svc.Store.PurgeExpired(c.Context)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "purged %d expired sessions\n", n)
			return nil
		},
	}
}

type recordView struct {
	ID       string         `yaml:"id"`
	ExpireAt string         `yaml:"expire_at"`
	Fresh    bool           `yaml:"fresh"`
	Data     map[string]any `yaml:"data"`
}

func showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Aliases:   []string{"get"},
		Usage:     "Print a stored session as YAML",
		ArgsUsage: "SESSION_ID",
		Action: func(c *cli.Context) error {
			id, err := sessionID(c)
			if err != nil {
				return err
			}

			svc, err := openService(c)
			if err != nil {
				return err
			}
			defer svc.Close(c.Context)

			rec, err := svc.Store.Find(c.Context, id)
			if errors.Is(err, session.ErrRecordNotFound) {
				return fmt.Errorf("session %q not found", id)
			}
			if err != nil {
				return err
			}

			view := recordView{
				ID:       rec.ID,
				ExpireAt: "never",
				Fresh:    session.IsFresh(rec, time.Now()),
				Data:     rec.Data,
			}
			if !rec.NeverExpires() {
				view.ExpireAt = rec.ExpireAt.UTC().Format(time.RFC3339)
			}

			enc := yaml.NewEncoder(c.App.Writer)
			enc.SetIndent(2)
			if err := enc.Encode(view); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func dropCommand() *cli.Command {
	return &cli.Command{
		Name:      "drop",
		Aliases:   []string{"rm"},
		Usage:     "Delete a stored session",
		ArgsUsage: "SESSION_ID",
		Action: func(c *cli.Context) error {
			id, err := sessionID(c)
			if err != nil {
				return err
			}

			svc, err := openService(c)
			if err != nil {
				return err
			}
			defer svc.Close(c.Context)

			if err := svc.Store.Destroy(c.Context, session.Concurrent, id); err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "session %s dropped\n", id)
			return nil
		},
	}
}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "gen-id",
		Usage: "Print an id no stored session uses",
		Action: func(c *cli.Context) error {
			svc, err := openService(c)
			if err != nil {
				return err
			}
			defer svc.Close(c.Context)

			id, err := svc.Store.GenerateID(c.Context, session.Concurrent)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, id)
			return nil
		},
	}
}
