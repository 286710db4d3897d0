package internal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"portfolio/internal/auth"
	"portfolio/internal/backup/interfaces"
	"portfolio/internal/controllers"
	"portfolio/internal/providers"
	"portfolio/internal/storage"
	"portfolio/internal/structures"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

type App struct {
	WebServer *http.Server
	Handler   http.Handler

	conf      *structures.Config
	logger    providers.Logger
	scheduler interfaces.SchedulerInterface
	backend   storage.Backend
}

// NewHandler mounts the infra endpoints next to the instrumented API router
// and wraps both in CORS when origins are configured.
func NewHandler(healthController *controllers.HealthController, conf *structures.Config, router providers.RouterProviderInterface, metrics providers.MetricsProviderInterface, logger providers.Logger) http.Handler {
	api := router.Router()
	api.Use(func(next http.Handler) http.Handler {
		return providers.AccessLogMiddleware(logger, next)
	})
	api.Use(func(next http.Handler) http.Handler {
		return providers.MetricsMiddleware(metrics, next)
	})
	api.Use(func(next http.Handler) http.Handler {
		return providers.LatencyMiddleware(conf.Api.SimulatedLatency, next)
	})

	root := mux.NewRouter()
	root.HandleFunc("/health", healthController.Health)
	if conf.Metrics.Enabled {
		root.Handle("/metrics", promhttp.Handler())
	}
	root.PathPrefix("/").Handler(api)

	if len(conf.Cors.AllowedOrigins) == 0 {
		return root
	}
	return cors.New(cors.Options{
		AllowedOrigins:   conf.Cors.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}).Handler(root)
}

func NewApp(
	healthController *controllers.HealthController,
	guard auth.GuardInterface,
	scheduler interfaces.SchedulerInterface,
	backend storage.Backend,
	conf *structures.Config,
	logger providers.Logger,
	router providers.RouterProviderInterface,
	metrics providers.MetricsProviderInterface,
) *App {
	guard.OnTransition(auth.MetricsListener(metrics))
	guard.OnTransition(func(t auth.Transition) {
		logger.Debugf(providers.TypeAuth, "Auth transition %s for %q", t.Kind, t.Username)
	})

	handler := NewHandler(healthController, conf, router, metrics, logger)
	return &App{
		Handler: handler,
		WebServer: &http.Server{
			Addr:         conf.WebServer.Host + ":" + strconv.Itoa(conf.WebServer.Port),
			Handler:      handler,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10*time.Second + conf.Api.SimulatedLatency,
			IdleTimeout:  60 * time.Second,
		},
		conf:      conf,
		logger:    logger,
		scheduler: scheduler,
		backend:   backend,
	}
}

// Run serves until SIGINT/SIGTERM, then shuts down and writes a final backup.
func (app *App) Run() error {
	app.logger.Infof(providers.TypeApp, "Starting %s", app.conf.AppName)
	if err := app.scheduler.Restore(); err != nil {
		app.logger.Errorf(providers.TypeApp, "Restore error: %s", err)
	}
	app.scheduler.Init()

	serverErr := make(chan error, 1)
	go func() {
		app.logger.Infof(providers.TypeApp, "Listening HTTP clients on %s:%d", app.conf.WebServer.Host, app.conf.WebServer.Port)
		if err := app.WebServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		app.logger.Infof(providers.TypeApp, "Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	}

	app.scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.WebServer.Shutdown(ctx); err != nil {
		return err
	}
	if err := app.scheduler.Persist(); err != nil {
		return err
	}
	if err := app.backend.Close(); err != nil {
		app.logger.Warnf(providers.TypeStorage, "Closing store: %s", err)
	}
	app.logger.Infof(providers.TypeApp, "gracefully stopped")
	return nil
}
