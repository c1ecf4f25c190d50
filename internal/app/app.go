package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/ferdiebergado/gatekeep/internal/auth"
	"github.com/ferdiebergado/gatekeep/internal/config"
	"github.com/ferdiebergado/gatekeep/internal/middleware"
	"github.com/ferdiebergado/gatekeep/internal/platform/router"
	"github.com/ferdiebergado/gatekeep/internal/user"
)

type App struct {
	server          *http.Server
	config          *config.Config
	provider        *Provider
	middlewares     []router.Middleware
	handler         http.Handler
	stop            context.CancelFunc
	shutdownTimeout time.Duration
}

func (a *App) registerMiddlewares() {
	for _, mw := range a.middlewares {
		a.provider.Router.Use(mw)
	}
}

func (a *App) setupRoutes() {
	r := a.provider.Router
	maxBodySize := a.config.Server.MaxBodyBytes

	userModule := user.NewModule(user.NewRepository(a.provider.DB), a.provider.Hasher)
	authModule := auth.NewModule(&auth.Provider{
		Signer:  a.provider.Signer,
		UserSvc: userModule.Service(),
	})
	guard := authModule.Guard()

	mountAuthRoutes(r, authModule.Handler(), a.provider.Validator, guard, maxBodySize)
	mountUserRoutes(r, userModule.Handler(), a.provider.Validator, guard, maxBodySize)
	mountDocRoutes(r)
}

// Handler returns the fully wired HTTP handler. CORS wraps the router so that
// preflight requests are answered for any path.
func (a *App) Handler() http.Handler {
	return a.handler
}

func (a *App) Start(ctx context.Context) error {
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening...", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		slog.Info("Server has stopped.")
		serverErr <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received.")
		return nil
	case err := <-serverErr:
		return err
	}
}

func (a *App) Shutdown() error {
	slog.Info("Shutting down server...")
	a.stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

func New(cfg *config.Config, provider *Provider, middlewares []router.Middleware) *App {
	serverCtx, stop := context.WithCancel(context.Background())
	serverCfg := cfg.Server

	a := &App{
		config:          cfg,
		provider:        provider,
		middlewares:     middlewares,
		stop:            stop,
		shutdownTimeout: serverCfg.ShutdownTimeout.Duration,
	}

	a.registerMiddlewares()
	a.setupRoutes()
	a.handler = middleware.CORS(cfg.CORS.AllowedOrigin)(provider.Router)

	a.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", serverCfg.Port),
		Handler: a.handler,
		BaseContext: func(_ net.Listener) context.Context {
			return serverCtx
		},
		ReadTimeout:  serverCfg.ReadTimeout.Duration,
		WriteTimeout: serverCfg.WriteTimeout.Duration,
		IdleTimeout:  serverCfg.IdleTimeout.Duration,
	}

	return a
}
