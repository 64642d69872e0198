package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"resort-cms/internal/common/pagination"
	hhttp "resort-cms/internal/handler/http"
	harticle "resort-cms/internal/handler/http/article"
	hauth "resort-cms/internal/handler/http/auth"
	hauthor "resort-cms/internal/handler/http/author"
	"resort-cms/internal/handler/http/requestid"
	htaxonomy "resort-cms/internal/handler/http/taxonomy"
	pgRepo "resort-cms/internal/infra/adapter/persistence/postgres"
	"resort-cms/internal/infra/db"
	"resort-cms/internal/observability/logging"
	"resort-cms/internal/resilience/circuitbreaker"
	artUC "resort-cms/internal/usecase/article"
	authorUC "resort-cms/internal/usecase/author"
	"resort-cms/internal/usecase/publish"
	taxUC "resort-cms/internal/usecase/taxonomy"
)

func main() {
	// A missing .env is fine in production; variables come from the runtime.
	_ = godotenv.Load()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	validateJWTSecret(logger)

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	// The allow-list lookup runs on every management request; a breaker
	// keeps a struggling database from stalling the whole request path.
	authorRepo := circuitbreaker.NewAuthorRepository(pgRepo.NewAuthorRepo(database))

	articleSvc := &artUC.Service{Repo: pgRepo.NewArticleRepo(database)}
	taxonomySvc := &taxUC.Service{
		Tags:       pgRepo.NewTagRepo(database),
		Sections:   pgRepo.NewSectionRepo(database),
		Categories: pgRepo.NewCategoryRepo(database),
		Articles:   articleSvc.Repo,
	}
	authorSvc := &authorUC.Service{Repo: authorRepo}

	publisher := publish.New(articleSvc.Repo, logger, publish.Config{
		Interval: publishIntervalFromEnv(),
	})

	handler := setupRoutes(database, logger, articleSvc, taxonomySvc, authorSvc, authorRepo, publisher)
	handler = applyMiddleware(logger, handler)

	runServer(logger, handler, publisher)
}

// validateJWTSecret enforces minimal strength requirements on JWT_SECRET.
func validateJWTSecret(logger *slog.Logger) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Error("JWT_SECRET must be set")
		os.Exit(1)
	}
	if len(secret) < 32 {
		logger.Error("JWT_SECRET must be at least 32 characters (256 bits)")
		os.Exit(1)
	}
	weakSecrets := []string{"secret", "password", "test", "admin", "default"}
	for _, weak := range weakSecrets {
		if secret == weak || secret == weak+"123" {
			logger.Error("JWT_SECRET must not be a common weak value")
			os.Exit(1)
		}
	}
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// publishIntervalFromEnv reads PUBLISH_CHECK_INTERVAL (a Go duration) or
// falls back to the 60 second default.
func publishIntervalFromEnv() time.Duration {
	if raw := os.Getenv("PUBLISH_CHECK_INTERVAL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			return d
		}
	}
	return publish.DefaultInterval
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupRoutes registers all HTTP routes, public and protected.
func setupRoutes(
	database *sql.DB,
	logger *slog.Logger,
	articleSvc *artUC.Service,
	taxonomySvc *taxUC.Service,
	authorSvc *authorUC.Service,
	authorRepo *circuitbreaker.AuthorRepository,
	publisher *publish.Publisher,
) http.Handler {
	paginationCfg := pagination.LoadFromEnv()

	// guard: verified identity resolved against the allow-list.
	// adminGuard: same, plus the admin role.
	requireAuthor := hauth.RequireAuthor(authorRepo)
	guard := func(h http.Handler) http.Handler {
		return hauth.RequireIdentity(requireAuthor(h))
	}
	adminGuard := func(h http.Handler) http.Handler {
		return guard(hauth.RequireAdmin(h))
	}

	mux := http.NewServeMux()

	mux.Handle("GET /healthz", hhttp.HealthHandler{
		DB:               database,
		Version:          getVersion(),
		PublisherRunning: publisher.Running,
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	harticle.Register(mux, articleSvc, paginationCfg, logger, guard)
	htaxonomy.Register(mux, taxonomySvc, guard, adminGuard)
	hauthor.Register(mux, authorSvc, adminGuard)

	return mux
}

// applyMiddleware wraps the handler with the shared middleware chain.
// Order (outermost first): request ID, recovery, logging, write rate limit,
// body size limit, metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	writeLimiter := hhttp.NewWriteLimiter(rate.Limit(5), 10)

	chain := handler
	chain = hhttp.Metrics(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = writeLimiter.Limit(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// runServer starts the HTTP server and the scheduled publisher, then blocks
// until SIGINT/SIGTERM and shuts both down gracefully.
func runServer(logger *slog.Logger, handler http.Handler, publisher *publish.Publisher) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	if err := publisher.Start(ctx); err != nil {
		logger.Error("failed to start scheduled publisher", slog.Any("error", err))
		os.Exit(1)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		publisher.Stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
