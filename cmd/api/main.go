// Package main is the entrypoint for the Quotedesk API server.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/quotedesk/quotedesk/internal/config"
	"github.com/quotedesk/quotedesk/internal/handler"
	"github.com/quotedesk/quotedesk/internal/metrics"
	"github.com/quotedesk/quotedesk/internal/middleware"
	"github.com/quotedesk/quotedesk/internal/server"
	"github.com/quotedesk/quotedesk/internal/service"
	"github.com/quotedesk/quotedesk/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	// All broker state lives in this one aggregate, seeded with the admin
	// directory entry before the first request is served.
	st := store.New(cfg.AdminCredential)

	recorder := metrics.NewInMemory()

	quoteService := service.NewQuoteService(st, recorder)
	directoryService := service.NewDirectoryService(st, recorder)

	h := handler.New()
	healthHandler := handler.NewHealthHandler(st)
	metricsHandler := handler.NewMetricsHandler(recorder)
	quoteHandler := handler.NewQuoteHandler(quoteService, logger)
	userHandler := handler.NewUserHandler(directoryService, logger)
	agentHandler := handler.NewAgentHandler(directoryService, logger)

	r := setupRouter(h, healthHandler, metricsHandler, quoteHandler, userHandler, agentHandler, cfg, logger)

	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	srv.OnShutdown("metrics", func(ctx context.Context) error {
		snap := recorder.Snapshot()
		logger.Info("final metrics",
			"quotes_assigned", snap.QuotesSubmittedAssigned,
			"quotes_unassigned", snap.QuotesSubmittedUnassigned,
			"quotes_responded", snap.QuotesResponded,
			"users_created", snap.UsersCreated,
		)
		return nil
	})

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupRouter configures the chi router with all routes and middleware.
//
// Every operational endpoint is unauthenticated: login is a boolean
// credential check consumed by the front end, not an access-control gate.
// That is the inherited contract of this API and is documented as a known
// weakness rather than silently changed.
func setupRouter(
	h *handler.Handler,
	healthHandler *handler.HealthHandler,
	metricsHandler *handler.MetricsHandler,
	quoteHandler *handler.QuoteHandler,
	userHandler *handler.UserHandler,
	agentHandler *handler.AgentHandler,
	cfg *config.Config,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.GetCORSAllowedOrigins()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Security())
	r.Use(middleware.CORS(corsCfg))
	r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))

	// Health endpoints
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)

	// Metrics endpoint
	r.Get("/metrics", metricsHandler.Metrics)

	// Root info endpoint
	r.Get("/", h.Hello)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/quotes", func(r chi.Router) {
			r.Post("/", quoteHandler.Submit)
			r.Get("/pending", quoteHandler.ListPending)
			r.Post("/respond", quoteHandler.Respond)
			r.Get("/response/{plate}", quoteHandler.PollResponse)
			r.Post("/clear", quoteHandler.Clear)
		})

		r.Post("/login", userHandler.Login)

		r.Route("/users", func(r chi.Router) {
			r.Post("/", userHandler.Create)
			r.Get("/", userHandler.List)
			r.Delete("/{username}", userHandler.Delete)
		})

		r.Route("/agents", func(r chi.Router) {
			r.Put("/active", agentHandler.SetActive)
			r.Get("/active", agentHandler.GetActive)
		})
	})

	// 404 and 405 handlers
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}
