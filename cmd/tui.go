package cmd

import (
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/sylver/apps/go-viz/internal/controller"
	"github.com/robalobadob/sylver/apps/go-viz/internal/logging"
	"github.com/robalobadob/sylver/apps/go-viz/internal/tui"
)

func newTUICmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Explore positions in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			closer, err := logging.Setup(a.cfg.LogLevel, a.cfg.LogFile, logging.Screen)
			if err != nil {
				return err
			}
			defer closer.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
			defer stop()

			opts := append(a.controllerOptions(), controller.WithContext(ctx))
			ctl := controller.New(a.client(), opts...)

			log.Info().Str("service", a.cfg.ServiceURL).Msg("starting terminal UI")
			p := tea.NewProgram(tui.New(ctl),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(ctx),
			)
			if _, err := p.Run(); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}
	boardFlags(cmd)
	return cmd
}

