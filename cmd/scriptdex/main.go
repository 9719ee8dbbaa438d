package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/scriptdex/internal/config"
	"github.com/kailas-cloud/scriptdex/internal/domain"
	logpkg "github.com/kailas-cloud/scriptdex/internal/logger"
	"github.com/kailas-cloud/scriptdex/internal/metrics"
	"github.com/kailas-cloud/scriptdex/internal/repository/corpus"
	chiTransport "github.com/kailas-cloud/scriptdex/internal/transport/chi"
	"github.com/kailas-cloud/scriptdex/internal/usecase/analysis"
	"github.com/kailas-cloud/scriptdex/internal/usecase/catalog"
	"github.com/kailas-cloud/scriptdex/internal/usecase/compare"
	healthuc "github.com/kailas-cloud/scriptdex/internal/usecase/health"
	searchuc "github.com/kailas-cloud/scriptdex/internal/usecase/search"
	"github.com/kailas-cloud/scriptdex/internal/version"
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

	logger.Info("Starting scriptdex API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("corpus_root", cfg.Corpus.Root),
		zap.String("script_file", cfg.Corpus.ScriptFile),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The corpus root must exist before serving
	repo := corpus.New(cfg.Corpus.Root, cfg.Corpus.Layout())
	if err := repo.Ping(ctx); err != nil {
		if errors.Is(err, domain.ErrCorpusUnavailable) {
			logger.Fatal("Corpus unavailable", zap.Error(err))
		}
		logger.Fatal("Failed to check corpus", zap.Error(err))
	}
	logger.Info("Corpus ready")

	// Register metrics explicitly (no init())
	metrics.RegisterCorpusMetrics()
	metrics.RegisterHTTPMetrics()

	// Create use case services
	meta := catalog.NewMetadataLoader(repo, metrics.MetadataWarningsTotal, logger)
	catalogSvc := catalog.New(repo, meta, logger,
		catalog.WithScheme(cfg.Corpus.URIScheme),
		catalog.WithDiscoveredGauge(metrics.ExamplesDiscovered),
	)
	searchSvc := searchuc.New(repo, metrics.SearchMatches, logger)
	analysisSvc := analysis.New(repo)
	compareSvc := compare.New(repo)
	healthSvc := healthuc.New(repo)

	// Create chi server
	server := chiTransport.NewServer(
		catalogSvc, searchSvc, analysisSvc, compareSvc, healthSvc, cfg.Corpus.Title, logger,
	)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware(chiTransport.Operations))
	chiTransport.HandlerWithOptions(server, chiTransport.ServerOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, _ *http.Request, err error) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(chiTransport.ErrorResponse{
				Code:    chiTransport.ErrorResponseCodeBadRequest,
				Message: err.Error(),
			})
		},
	})

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		return
	}

	logger.Info("Server stopped gracefully")
}
