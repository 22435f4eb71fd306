package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/sylver/apps/go-viz/internal/controller"
	"github.com/robalobadob/sylver/apps/go-viz/internal/logging"
	"github.com/robalobadob/sylver/apps/go-viz/internal/position"
)

var errNoLookup = errors.New("lookup not issued")

func newGetCmd(a *app) *cobra.Command {
	var (
		children bool
		format   string
	)
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Look up one position and print it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			closer, err := logging.Setup(a.cfg.LogLevel, a.cfg.LogFile, logging.Console)
			if err != nil {
				return err
			}
			defer closer.Close()

			opts := append(a.controllerOptions(),
				controller.WithChildren(children),
				controller.WithContext(cmd.Context()),
			)
			p, err := lookup(controller.New(a.client(), opts...))
			if err != nil {
				return err
			}
			return writePosition(cmd.OutOrStdout(), p, format)
		},
	}
	boardFlags(cmd)
	cmd.Flags().BoolVar(&children, "children", true, "ask for child statuses")
	cmd.Flags().StringVar(&format, "format", "grid", "output format: grid, json or yaml")
	return cmd
}

// lookup submits the controller's input once and waits for the result.
func lookup(ctl *controller.Controller) (*position.Position, error) {
	fetch := ctl.Update(controller.SubmitInput{})
	if fetch == nil {
		if snap := ctl.Snapshot(); snap.Blocked != nil {
			return nil, snap.Blocked
		}
		return nil, errNoLookup
	}
	ctl.Update(fetch())

	snap := ctl.Snapshot()
	if snap.Err != nil {
		return nil, snap.Err
	}
	return snap.Position, nil
}

func writePosition(w io.Writer, p *position.Position, format string) error {
	switch format {
	case "grid":
		return writeGrid(w, p)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q (want grid, json or yaml)", format)
}
