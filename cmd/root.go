// cmd/root.go
//
// Command-line entry point.
// Responsibilities:
//   - Build the cobra command tree (tui, serve, get).
//   - Bind flags into viper and load the validated config before any
//     subcommand runs.
//   - Construct the service client shared by every front end.

package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/robalobadob/sylver/apps/go-viz/internal/config"
	"github.com/robalobadob/sylver/apps/go-viz/internal/controller"
	"github.com/robalobadob/sylver/apps/go-viz/internal/sylverapi"
)

// app is the state shared by one command tree.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	config.SetDefaults(a.v)

	root := &cobra.Command{
		Use:           "sylver-viz",
		Short:         "Explore Sylver Coinage positions",
		Long:          `sylver-viz queries a Sylver Coinage computation service and lets you walk the game tree in a terminal or a browser.`,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Flags().VisitAll(func(f *pflag.Flag) {
				if f.Name == "config" {
					return
				}
				_ = a.v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
			})
			cfg, err := config.Load(a.v, a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (YAML)")
	pf.String("service-url", "", "computation service base URL")
	pf.String("log-level", "", "log level (trace, debug, info, warn, error)")

	root.AddCommand(newTUICmd(a), newServeCmd(a), newGetCmd(a))
	return root
}

func (a *app) client() *sylverapi.Client {
	return sylverapi.New(a.cfg.ServiceURL,
		sylverapi.WithTimeout(a.cfg.Timeout),
		sylverapi.WithRateLimit(a.cfg.RateLimit, a.cfg.Burst),
	)
}

// controllerOptions seeds a controller from the configured length and input.
func (a *app) controllerOptions() []controller.Option {
	return []controller.Option{
		controller.WithLength(a.cfg.Length),
		controller.WithInput(a.cfg.Input),
	}
}

// boardFlags adds the --length/--input pair shared by tui and get.
func boardFlags(cmd *cobra.Command) {
	cmd.Flags().Int("length", 0, "board length (minimum 100)")
	cmd.Flags().String("input", "", `generators, comma separated (e.g. "9,11")`)
}
