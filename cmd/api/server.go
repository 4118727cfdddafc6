package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"

	_ "article-service/docs" // swagger docs
	"article-service/internal/config"
	hhttp "article-service/internal/handler/http"
	harticle "article-service/internal/handler/http/article"
	"article-service/internal/handler/http/requestid"
	pgRepo "article-service/internal/infra/adapter/persistence/postgres"
	sqliteRepo "article-service/internal/infra/adapter/persistence/sqlite"
	"article-service/internal/infra/db"
	"article-service/internal/observability/tracing"
	"article-service/internal/repository"
	artUC "article-service/internal/usecase/article"
)

// serve opens the store, bootstraps the schema and runs the HTTP server
// until ctx is canceled.
func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	shutdownTracing := tracing.Setup(cfg.Version, cfg.Tracing.SampleRatio)
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("failed to flush traces", slog.Any("error", err))
		}
	}()

	database, err := db.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	if err := db.MigrateUp(ctx, database, cfg.Database.Driver); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	handler, err := newHandler(database, cfg, logger)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", cfg.HTTP.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.HTTP.Addr, err)
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Slowloris 対策
	}
	logger.Info("server starting",
		slog.String("addr", ln.Addr().String()),
		slog.String("driver", cfg.Database.Driver),
		slog.String("version", cfg.Version))

	return runServer(ctx, srv, ln, cfg.HTTP.ShutdownTimeout, logger)
}

// runServer serves on ln until ctx is done, then drains in-flight requests
// for at most shutdownTimeout.
func runServer(ctx context.Context, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	err := g.Wait()
	logger.Info("server stopped")
	return err
}

// newArticleRepo picks the adapter matching the configured driver.
func newArticleRepo(driver string, database *sql.DB) (repository.ArticleRepository, error) {
	switch driver {
	case db.DriverPostgres:
		return pgRepo.NewArticleRepo(database), nil
	case db.DriverSQLite:
		return sqliteRepo.NewArticleRepo(database), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// newHandler registers all routes and wraps them in the middleware chain.
func newHandler(database *sql.DB, cfg *config.Config, logger *slog.Logger) (http.Handler, error) {
	repo, err := newArticleRepo(cfg.Database.Driver, database)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	harticle.Register(mux, artUC.Service{Repo: repo})

	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Driver: cfg.Database.Driver, Version: cfg.Version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /live", hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Request ID → Tracing → Recovery → Logging → Timeout → Body Limit → Metrics
	return hhttp.Chain(mux,
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Recover(logger),
		hhttp.Logging(logger),
		hhttp.Timeout(cfg.HTTP.RequestTimeout),
		hhttp.LimitRequestBody(cfg.HTTP.MaxBodyBytes),
		hhttp.MetricsMiddleware,
	), nil
}
