package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mathaaaaaaaaaar/localli-landing/pkg/api"
	"github.com/mathaaaaaaaaaar/localli-landing/pkg/config"
	"github.com/mathaaaaaaaaaar/localli-landing/pkg/logger"
	"github.com/mathaaaaaaaaaar/localli-landing/pkg/metrics"
	"github.com/mathaaaaaaaaaar/localli-landing/pkg/middleware"
	"github.com/mathaaaaaaaaaar/localli-landing/pkg/services"
	"github.com/mathaaaaaaaaaar/localli-landing/pkg/store"
	"github.com/mathaaaaaaaaaar/localli-landing/pkg/web"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLog, err := logger.New(cfg.LogLevel, cfg.Environment)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() { _ = zapLog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Initialize the external store
	inserter, closeStore, err := store.New(ctx, cfg.Store, zapLog)
	if err != nil {
		zapLog.Fatal("Error connecting to store", zap.Error(err), zap.String("backend", cfg.Store.Backend))
	}
	defer closeStore()

	// Initialize services
	submissionService := services.NewSubmissionService(
		inserter,
		services.Tables{Leads: cfg.Store.LeadsTable, EarlyUsers: cfg.Store.EarlyUsersTable},
		cfg.Store.Timeout,
		metrics.NewSubmissionMetrics(registry),
		zapLog,
	)

	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(
		middleware.Recovery(zapLog),
		middleware.RequestID(),
		middleware.RequestLogger(zapLog),
		middleware.Metrics(metrics.NewHTTPMetrics(registry)),
		middleware.CORS(cfg.AllowedOrigins),
	)

	// Register routes
	handlers := api.NewHandlers(submissionService, zapLog)
	handlers.RegisterRoutes(router)

	page := web.NewPage(submissionService, cfg.LaunchDate, cfg.BusinessFormDemo, zapLog)
	page.RegisterRoutes(router)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		zapLog.Info("Server starting", zap.String("port", cfg.Port), zap.String("store", cfg.Store.Backend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Error("Error starting server", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	zapLog.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Server forced to shutdown", zap.Error(err))
		return
	}
	zapLog.Info("Server stopped")
}
