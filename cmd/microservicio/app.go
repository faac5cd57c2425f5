package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/microservicio/config"
	"github.com/ncobase/microservicio/data"
	"github.com/ncobase/microservicio/handler"
	"github.com/ncobase/microservicio/logging/logger"
	"github.com/ncobase/microservicio/logging/observes"
	"github.com/ncobase/microservicio/metrics"
	"github.com/ncobase/microservicio/middleware"
)

const shutdownTimeout = 30 * time.Second

// App represents the main application.
type App struct {
	config  *config.Config
	server  *config.Server
	sentry  *config.Sentry
	logger  *logger.Logger
	handler *handler.Handler
	metrics *metrics.Metrics
	srv     *http.Server
}

// NewApp creates a new application instance.
func NewApp(
	cfg *config.Config,
	server *config.Server,
	sentry *config.Sentry,
	logger *logger.Logger,
	h *handler.Handler,
	m *metrics.Metrics,
) *App {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	return &App{
		config:  cfg,
		server:  server,
		sentry:  sentry,
		logger:  logger,
		handler: h,
		metrics: m,
	}
}

// Router builds the gin engine with middlewares and routes.
func (a *App) Router() *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.Recovery(a.logger),
		middleware.Trace(),
		middleware.Logger(a.logger),
		middleware.Metrics(a.metrics),
		middleware.CORS(a.server.CORSOrigins),
	)
	if a.server.Metrics {
		router.GET("/metrics", gin.WrapH(a.metrics.Handler()))
	}
	a.handler.RegisterRoutes(router)
	return router
}

// Run starts the application server and blocks until ctx is cancelled or
// SIGINT/SIGTERM arrives, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	flush, err := observes.NewSentry(a.sentry, a.config.AppName, a.config.AppVersion)
	if err != nil {
		a.logger.Warn(ctx, "sentry disabled", "error", err)
	} else {
		defer flush()
	}

	addr := a.server.Addr()
	a.srv = &http.Server{
		Addr:         addr,
		Handler:      a.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info(ctx, "Starting server", "addr", addr, "name", a.config.AppName, "version", a.config.AppVersion,
			"drivers", data.ListRegisteredDrivers())
		if err := a.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			a.logger.Error(context.Background(), "Server failed", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info(context.Background(), "Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error(context.Background(), "Server forced to shutdown", "error", err)
		return err
	}

	a.logger.Info(context.Background(), "Server exited")
	return nil
}
