package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/99minutos/user-registry/internal/core/service"
	"github.com/99minutos/user-registry/internal/infrastructure/config"
	"github.com/99minutos/user-registry/internal/infrastructure/db"
	"github.com/99minutos/user-registry/internal/pkg/idgen"
	"github.com/99minutos/user-registry/pkg/logger"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "userregistry",
		Short:         "User registry service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newDemoCmd())
	cmd.AddCommand(newUserCmd())
	return cmd
}

// bootstrap loads configuration and initialises the global logger.
func bootstrap(ctx context.Context) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "user-registry",
	})
	return cfg, log, nil
}

// openService connects the configured store and builds the user service on
// top of it. The id clock resumes after the largest id already stored. The
// returned Store must be closed by the caller.
func openService(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*service.UserService, *db.Store, error) {
	store, err := db.Open(ctx, cfg, log.With().Str("component", "store").Logger())
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	ids := idgen.New()
	if err := service.ResumeIDs(ctx, store.Repo, ids); err != nil {
		if cerr := store.Close(context.Background()); cerr != nil {
			log.Warn().Err(cerr).Msg("closing store")
		}
		return nil, nil, err
	}
	svc := service.NewUserService(
		service.NewFactory(ids),
		store.Repo,
		log.With().Str("component", "users").Logger(),
	)
	return svc, store, nil
}
