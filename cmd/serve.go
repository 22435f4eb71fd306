package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/sylver/apps/go-viz/internal/controller"
	"github.com/robalobadob/sylver/apps/go-viz/internal/httpserver"
	"github.com/robalobadob/sylver/apps/go-viz/internal/logging"
	"github.com/robalobadob/sylver/apps/go-viz/internal/store"
)

const (
	sweepEvery      = time.Minute
	shutdownTimeout = 10 * time.Second
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the browser front end",
		RunE: func(cmd *cobra.Command, _ []string) error {
			closer, err := logging.Setup(a.cfg.LogLevel, a.cfg.LogFile, logging.JSON)
			if err != nil {
				return err
			}
			defer closer.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
	cmd.Flags().String("addr", "", "listen address (default :5175)")
	return cmd
}

// serve runs the web front end until ctx is cancelled, then drains
// in-flight requests.
func (a *app) serve(ctx context.Context) error {
	client := a.client()
	opts := append(a.controllerOptions(), controller.WithContext(ctx))
	srv := httpserver.New(store.NewMemoryStore(), func() *controller.Controller {
		return controller.New(client, opts...)
	}, httpserver.Options{
		JWTSecret:      a.cfg.JWTSecret,
		ClientOrigin:   a.cfg.ClientOrigin,
		SessionTTL:     a.cfg.SessionTTL,
		RequestTimeout: a.cfg.Timeout + 5*time.Second,
	})

	hs := &http.Server{
		Addr:              a.cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", a.cfg.Addr).Str("service", a.cfg.ServiceURL).Msg("starting sylver-viz")
		if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return srv.SweepSessions(gctx, sweepEvery)
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info().Msg("shutting down")
		return hs.Shutdown(sctx)
	})
	return g.Wait()
}
