package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	_ "github.com/companyhub/directory-api/docs" // registers the OpenAPI document
	"github.com/companyhub/directory-api/internal/api"
	"github.com/companyhub/directory-api/internal/core/service"
	"github.com/companyhub/directory-api/internal/infrastructure/config"
	"github.com/companyhub/directory-api/internal/infrastructure/db/postgres"
	"github.com/companyhub/directory-api/pkg/logger"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	var autoMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), autoMigrate)
		},
	}
	cmd.Flags().BoolVar(&autoMigrate, "migrate", false, "apply pending migrations before serving")

	return cmd
}

func runServe(ctx context.Context, autoMigrate bool) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return oops.Code("CONFIG_INVALID").Wrap(err)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Pretty(),
		Service: "directory-api",
	})

	if autoMigrate {
		m, err := openMigrator(cfg.Database.URL)
		if err != nil {
			return err
		}
		err = m.Up()
		if cerr := m.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("close migrator")
		}
		if err != nil {
			return oops.Code("MIGRATION_FAILED").With("operation", "run migrations").Wrap(err)
		}
		log.Info().Msg("migrations applied")
	}

	pool, err := postgres.Connect(ctx, postgres.Config{
		URL:      cfg.Database.URL,
		MaxConns: cfg.Database.MaxConns,
	})
	if err != nil {
		return oops.Code("DB_CONNECT_FAILED").With("operation", "connect to database").Wrap(err)
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)
	companies := postgres.NewCompanyRepository(pool)
	services := postgres.NewServiceRepository(pool)

	creds := service.NewCredentials(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL(), cfg.Auth.BcryptSaltRounds)

	e := api.NewRouter(api.Deps{
		Auth:           service.NewAuthService(users, creds, logger.Component("auth")),
		Gate:           service.NewGate(creds, users, logger.Component("gate")),
		Users:          service.NewUserService(users, logger.Component("users")),
		Companies:      service.NewCompanyService(companies, services, users, logger.Component("companies")),
		Catalog:        service.NewCatalogService(services, companies, logger.Component("catalog")),
		DB:             pool,
		Logger:         logger.Component("http"),
		RequestTimeout: cfg.RequestTimeout,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return oops.Code("SERVER_FAILED").Wrap(err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return oops.Code("SHUTDOWN_FAILED").Wrap(err)
	}
	log.Info().Msg("server stopped")
	return nil
}
