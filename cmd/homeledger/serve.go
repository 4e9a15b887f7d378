package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	portsrepo "github.com/SscSPs/homeledger/internal/core/ports/repositories"
	"github.com/SscSPs/homeledger/internal/core/services"
	"github.com/SscSPs/homeledger/internal/handlers"
	"github.com/SscSPs/homeledger/internal/middleware"
	"github.com/SscSPs/homeledger/internal/platform/config"
	"github.com/SscSPs/homeledger/internal/platform/logging"
	"github.com/SscSPs/homeledger/internal/platform/metrics"
	"github.com/SscSPs/homeledger/internal/platform/mirror"
	"github.com/SscSPs/homeledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/homeledger/internal/repositories/memory"
	"github.com/SscSPs/homeledger/internal/utils"
	"github.com/SscSPs/homeledger/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API (default)",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := logging.Setup(os.Stdout, cfg.LogLevel, cfg.IsProduction)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()
	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	recordMirror, closeMirror, err := setupMirror(ctx, cfg, logger, m)
	if err != nil {
		return err
	}
	defer closeMirror()

	store := memory.NewStore()
	if cfg.SeedDemoData {
		store.SeedDemoData(time.Now(), cfg.Location)
		logger.Info("Demo data seeded")
	}
	repos := memory.NewRepositoryProvider(store, recordMirror)

	options := []services.ServiceOption{services.WithMetrics(m)}
	if posthogClient.IsInitialized() {
		options = append(options, services.WithEventTracker(posthogClient))
	}
	serviceContainer := services.NewServiceContainer(cfg, repos, options...)

	router, err := newRouter(cfg, logger, m, posthogClient)
	if err != nil {
		return err
	}
	handlers.RegisterRoutes(router, cfg, serviceContainer, m)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed to run: %w", err)
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
		return err
	}
	logger.Info("Server stopped")
	return nil
}

func newRouter(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics, posthogClient *utils.PosthogClientWrapper) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT: %w", err)
	}

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:  []string{cfg.FrontendBaseURL},
			AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.UserIDHeader, "X-Request-ID"},
			ExposeHeaders: []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
			MaxAge:        12 * time.Hour,
		}),
		middleware.MetricsMiddleware(m),
		middleware.RateLimit(rateLimiter),
		middleware.PosthogMiddleware(posthogClient),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}
	return r, nil
}

// setupMirror returns the record mirror for the services and its cleanup.
// Without PGSQL_URL records are discarded. An unreachable database is fatal
// only when ENABLE_DB_CHECK is set.
func setupMirror(ctx context.Context, cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) (portsrepo.RecordMirror, func(), error) {
	noop := func() {}
	if cfg.DatabaseURL == "" {
		logger.Info("Record mirror disabled")
		return mirror.Discard{}, noop, nil
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, database.PoolOptions{
		MaxConns:       cfg.DBMaxConns,
		ConnectTimeout: cfg.DBConnTimeout,
	}, logger)
	if err != nil {
		if cfg.EnableDBCheck {
			return nil, noop, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		logger.Warn("Record store unreachable, mirroring disabled", slog.String("error", err.Error()))
		return mirror.Discard{}, noop, nil
	}
	if err := runMigrations(cfg, logger, false); err != nil {
		database.ClosePgxPool(pool, logger)
		return nil, noop, err
	}

	worker := mirror.NewWorker(
		mirror.RecordSink{Writer: pgsql.NewRecordRepository(pool)},
		cfg.MirrorBufferSize,
		mirror.WithLogger(logger),
		mirror.WithMetrics(m),
		mirror.WithWriteTimeout(cfg.DBConnTimeout),
	)
	worker.Start()
	logger.Info("Record mirror started", slog.Int("buffer_size", cfg.MirrorBufferSize))

	return worker, func() {
		worker.Shutdown()
		database.ClosePgxPool(pool, logger)
	}, nil
}
