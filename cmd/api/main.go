package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/therealutkarshpriyadarshi/subfix/internal/cache"
	"github.com/therealutkarshpriyadarshi/subfix/internal/config"
	"github.com/therealutkarshpriyadarshi/subfix/internal/database"
	"github.com/therealutkarshpriyadarshi/subfix/internal/logging"
	"github.com/therealutkarshpriyadarshi/subfix/internal/metrics"
	"github.com/therealutkarshpriyadarshi/subfix/internal/middleware"
	"github.com/therealutkarshpriyadarshi/subfix/internal/storage"
	"github.com/therealutkarshpriyadarshi/subfix/internal/tracing"
)

func main() {
	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		stdlog.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.NewLogger(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		stdlog.Fatalf("Failed to initialize logger: %v", err)
	}

	// Initialize tracing
	if cfg.Tracing.Enabled {
		_, closer, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.JaegerEndpoint)
		if err != nil {
			logger.Fatalf("Failed to initialize tracer: %v", err)
		}
		defer closer.Close()
	}

	api := &API{
		log:            logger,
		maxUploadBytes: cfg.Analyzer.MaxUploadBytes,
	}

	// Initialize database
	if cfg.Database.Enabled {
		db, err := database.New(cfg.Database)
		if err != nil {
			logger.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		api.store = database.NewRepository(db)
	}

	// Initialize report cache
	if cfg.Redis.Enabled {
		reportCache, err := cache.NewCache(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
		if err != nil {
			logger.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer reportCache.Close()

		api.cache = reportCache
	}

	// Initialize storage
	if cfg.Storage.Enabled {
		stor, err := storage.New(cfg.Storage)
		if err != nil {
			logger.Fatalf("Failed to initialize storage: %v", err)
		}
		api.storage = stor
	}

	// Start metrics server
	if cfg.Metrics.Enabled {
		metricsServer := metrics.NewServer(cfg.Metrics.Port)
		go func() {
			logger.Infof("Starting metrics server on :%d", cfg.Metrics.Port)
			if err := metricsServer.Start(); err != nil {
				logger.ErrorWithErr("Metrics server stopped", err)
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			_ = metricsServer.Shutdown(ctx)
		}()
	}

	// Setup router
	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := setupRouter(api, cfg, logger)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Infof("Starting API server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped")
}

func setupRouter(api *API, cfg *config.Config, logger *logging.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
	router.Use(middleware.RateLimit(middleware.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)))

	router.MaxMultipartMemory = cfg.Analyzer.MaxUploadBytes

	// Health check
	router.GET("/health", api.healthCheck)

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Subtitle analysis
		v1.POST("/subtitles/analyze", api.analyzeSubtitle)
		v1.POST("/subtitles/fix", api.fixSubtitle)

		// Analysis history
		v1.GET("/reports", api.listReports)
		v1.GET("/reports/:id", api.getReport)
		v1.GET("/reports/:id/download", api.downloadReport)
	}

	return router
}
