package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"

	"github.com/ferdiebergado/gatekeep/internal/config"
	"github.com/ferdiebergado/gatekeep/internal/middleware"
	"github.com/ferdiebergado/gatekeep/internal/pkg/logging"
	"github.com/ferdiebergado/gatekeep/internal/platform/db"
	"github.com/ferdiebergado/gatekeep/internal/platform/router"
)

const (
	envFile = ".env"
	cfgFile = "config.json"
)

// Run loads the configuration, opens the credential store and serves HTTP
// until ctx is canceled.
func Run(ctx context.Context) error {
	slog.Info("Initializing...")

	if os.Getenv("APP_ENV") != config.EnvProduction {
		if _, err := os.Stat(envFile); err == nil {
			if err := env.Load(envFile); err != nil {
				return fmt.Errorf("load env: %w", err)
			}
		}
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.SetupLogger(cfg.App.Env, cfg.App.LogLevel, os.Stdout)

	dbConn, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	if dbConn != nil {
		defer dbConn.Close()
	}

	provider, err := NewProvider(cfg, dbConn)
	if err != nil {
		return err
	}

	api := New(cfg, provider, Middlewares(cfg))
	if err := api.Start(ctx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return api.Shutdown()
}

// Middlewares returns the global middleware chain in the order it runs.
func Middlewares(cfg *config.Config) []router.Middleware {
	return []router.Middleware{
		middleware.InjectWriter,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
		middleware.SecureHeaders(cfg.IsProduction()),
	}
}

// openStore connects to postgres when it is the configured store. It returns
// a nil *sql.DB for the in-memory store.
//nolint:nilnil //A nil connection selects the in-memory store.
func openStore(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	if cfg.Store.Driver != config.StorePostgres {
		slog.Info("Using the in-memory credential store.")
		return nil, nil
	}

	conn, err := db.Connect(ctx, cfg.DB, cfg.Store.DSN)
	if err != nil {
		return nil, err
	}

	if cfg.DB.Migrate {
		if err := db.Migrate(ctx, conn); err != nil {
			conn.Close()
			return nil, err
		}
	}

	return conn, nil
}
