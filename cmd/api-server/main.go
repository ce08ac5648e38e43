package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"licportal/database"
	"licportal/internal/cache"
	"licportal/internal/config"
	"licportal/internal/handler"
	"licportal/internal/repository"
	"licportal/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	pageCache, err := newPageCache(cfg, logger)
	if err != nil {
		log.Fatalf("could not set up page cache: %v", err)
	}

	// Repositories
	ratingRepo := repository.NewRatingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	queryRepo := repository.NewQueryRepository(db)

	// Services
	aggregateService := service.NewAggregateService(ratingRepo, reviewRepo, logger)
	ratingService := service.NewRatingService(ratingRepo)
	reviewService := service.NewReviewService(reviewRepo)
	feedbackService := service.NewFeedbackService(feedbackRepo)
	queryService := service.NewQueryService(queryRepo)

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(handler.CORS(cfg.CORSOrigins))

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	if cfg.PrometheusEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Server-rendered landing page
	pageHandler := handler.NewPageHandler(aggregateService, pageCache, cfg.PageCacheTTL, logger)
	pageHandler.RegisterRoutes(r)

	// JSON API
	writeLimiter := handler.WriteLimiter(cfg.WriteRatePerSec, cfg.WriteRateBurst)
	api := r.Group("/api/lic")
	handler.NewFeedbackHandler(feedbackService).RegisterRoutes(api, writeLimiter)
	handler.NewQueryHandler(queryService).RegisterRoutes(api, writeLimiter)
	handler.NewReviewHandler(reviewService).RegisterRoutes(api, writeLimiter)
	handler.NewRatingHandler(ratingService).RegisterRoutes(api, writeLimiter)

	// Static assets plus the SPA shell for client-side routes
	r.Static("/assets", filepath.Join(cfg.StaticDir, "assets"))
	r.NoRoute(func(ctx *gin.Context) {
		if strings.HasPrefix(ctx.Request.URL.Path, "/api/") {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		if ctx.Request.Method != http.MethodGet {
			ctx.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
			return
		}
		ctx.File(filepath.Join(cfg.StaticDir, "index.html"))
	})

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		logger.Info("Server running", "addr", addr, "env", cfg.GoEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
	logger.Info("Server exited")
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func newPageCache(cfg *config.Config, logger *slog.Logger) (cache.PageCache, error) {
	if cfg.CacheBackend == "redis" {
		return cache.NewRedis(cfg.RedisURL, cfg.RedisPassword, cfg.PageCacheTTL, logger)
	}
	return cache.NewMemory(cfg.PageCacheTTL, cache.RealClock()), nil
}
