package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/99minutos/user-registry/internal/api"
)

const shutdownTimeout = 15 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, log, err := bootstrap(ctx)
			if err != nil {
				return err
			}

			svc, store, err := openService(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer func() {
				if err := store.Close(context.Background()); err != nil {
					log.Warn().Err(err).Msg("closing store")
				}
			}()

			e := api.NewRouter(api.Deps{
				Users:     svc,
				Checks:    store.Checks,
				JWTSecret: cfg.JWTSecret,
				Logger:    log,
			})

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				log.Info().Str("port", cfg.Port).Str("backend", cfg.Store.Backend).Msg("http server listening")
				if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				<-gctx.Done()
				log.Info().Msg("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return e.Shutdown(shutdownCtx)
			})
			return g.Wait()
		},
	}
}
