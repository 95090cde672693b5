package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/lexica-cloud/wordrank/internal/config"
	"github.com/lexica-cloud/wordrank/internal/db"
	dbRedis "github.com/lexica-cloud/wordrank/internal/db/redis"
	logpkg "github.com/lexica-cloud/wordrank/internal/logger"
	"github.com/lexica-cloud/wordrank/internal/metrics"
	"github.com/lexica-cloud/wordrank/internal/repository/wordlist"
	chiTransport "github.com/lexica-cloud/wordrank/internal/transport/chi"
	openaiScorer "github.com/lexica-cloud/wordrank/internal/transport/openai"
	extractuc "github.com/lexica-cloud/wordrank/internal/usecase/extract"
	healthuc "github.com/lexica-cloud/wordrank/internal/usecase/health"
	scoringuc "github.com/lexica-cloud/wordrank/internal/usecase/scoring"
	"github.com/lexica-cloud/wordrank/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting wordrank API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Bool("ai_scoring", cfg.Scoring.Provider.APIKey != ""),
	)

	// Register scoring metrics explicitly (no init())
	metrics.RegisterScoringMetrics()

	// Optional word-list cache store
	var store db.Store
	if cfg.Cache.Enabled {
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Password: cfg.Cache.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer store.Close()

		ctx := context.Background()
		if err := store.WaitForReady(ctx, 10*time.Second); err != nil {
			logger.Fatal("Cache store not ready", zap.Error(err))
		}
		logger.Info("Connected to cache store")
	}

	// Loader: HTTP fetcher, optionally wrapped in the cache decorator
	var fetcher wordlist.Fetcher = wordlist.NewHTTPFetcher(
		time.Duration(cfg.Sources.FetchTimeoutSec) * time.Second,
	)
	if store != nil {
		fetcher = wordlist.NewCachedFetcher(
			fetcher, store,
			time.Duration(cfg.Cache.TTLSec)*time.Second,
			metrics.WordlistCacheTotal, logger,
		)
	}
	loader := wordlist.NewLoader(
		wordlist.NewSources(cfg.Sources.Fields), fetcher, cfg.Sources.PoolCap, logger,
	)

	// Scorer: the provider credential toggles AI-assisted mode
	var provider scoringuc.Provider
	var scoringHealth healthuc.ScoringChecker
	if cfg.Scoring.Provider.APIKey != "" {
		scorer := openaiScorer.NewScorer(&openaiScorer.Config{
			APIKey:  cfg.Scoring.Provider.APIKey,
			BaseURL: cfg.Scoring.Provider.BaseURL,
			Model:   cfg.Scoring.Provider.Model,
			Logger:  logger,
		})
		provider = scoringTimeoutProvider{
			inner:   scorer,
			timeout: time.Duration(cfg.Scoring.TimeoutSec) * time.Second,
		}
		scoringHealth = scorer
	}
	scorer := scoringuc.New(provider, cfg.Scoring.BatchSize, metrics.ScoringBatchesTotal, logger)
	logger.Info("Scorer created",
		zap.Bool("ai_enabled", scorer.AIEnabled()),
		zap.String("model", cfg.Scoring.Provider.Model),
		zap.Int("batch_size", cfg.Scoring.BatchSize),
	)

	// Use case services
	extractSvc := extractuc.New(loader, scorer, logger)

	var cachePinger healthuc.CachePinger
	if store != nil {
		cachePinger = store
	}
	healthSvc := healthuc.New(cachePinger, scoringHealth)

	// HTTP server
	server := chiTransport.NewServer(extractSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.CORSMiddleware())
	r.Use(metrics.Middleware())
	server.Mount(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// scoringTimeoutProvider bounds each provider call; the scoring API
// itself has no request timeout of its own.
type scoringTimeoutProvider struct {
	inner   scoringuc.Provider
	timeout time.Duration
}

func (p scoringTimeoutProvider) ScoreBatch(
	ctx context.Context, words []string,
) ([]scoringuc.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.inner.ScoreBatch(ctx, words)
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"error": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
