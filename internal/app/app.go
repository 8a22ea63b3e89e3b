package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/ShivenPandit/Super-Mall-Web-App/internal/auditlog"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/auth"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/catalog"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/config"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/domain"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/event"
	handler "github.com/ShivenPandit/Super-Mall-Web-App/internal/handler/http"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/migrations"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/repository/postgres"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/service"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/session"
	"github.com/ShivenPandit/Super-Mall-Web-App/pkg/database"
	"github.com/ShivenPandit/Super-Mall-Web-App/pkg/health"
	pkgkafka "github.com/ShivenPandit/Super-Mall-Web-App/pkg/kafka"
	"github.com/ShivenPandit/Super-Mall-Web-App/pkg/middleware"
	"github.com/ShivenPandit/Super-Mall-Web-App/pkg/tracing"
)

// App wires together all dependencies and runs the portal service.
type App struct {
	cfg            *config.Config
	logger         *slog.Logger
	pool           *pgxpool.Pool
	redis          *redis.Client
	producer       *pkgkafka.Producer
	httpServer     *http.Server
	tracerShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
// The audit buffer is handed in alongside the logger so that the caller can
// tee structured logs into it before the App exists.
func NewApp(cfg *config.Config, logger *slog.Logger, auditBuffer *auditlog.Buffer) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize OpenTelemetry tracing.
	tracerShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:    "portal",
		ServiceVersion: "0.1.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTELEndpoint,
		SampleRate:     cfg.OTELSampleRate,
		Enabled:        cfg.OTELEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	// Initialize PostgreSQL connection pool.
	pgCfg := database.PostgresConfig{
		Host:            cfg.PostgresHost,
		Port:            cfg.PostgresPort,
		User:            cfg.PostgresUser,
		Password:        cfg.PostgresPass,
		DBName:          cfg.PostgresDB,
		SSLMode:         cfg.PostgresSSL,
		MaxConns:        cfg.DBMaxConns,
		MinConns:        cfg.DBMinConns,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: 30 * time.Minute,
	}

	pool, err := database.NewPostgresPoolWithLogger(ctx, &pgCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	logger.Info("connected to PostgreSQL",
		slog.String("host", cfg.PostgresHost),
		slog.Int("port", cfg.PostgresPort),
		slog.String("database", cfg.PostgresDB),
	)
	database.RegisterPoolMetrics(pool, "portal")

	// Run database migrations.
	if cfg.MigrateOnStartup {
		if err := database.RunMigrations(ctx, pool, migrations.FS, logger); err != nil {
			pool.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("database migrations completed")
	}

	// Configure slow query logging.
	if cfg.SlowQueryMillis > 0 {
		database.SetSlowQueryLogging(time.Duration(cfg.SlowQueryMillis)*time.Millisecond, logger)
	}

	// Redis backs the admin session markers.
	redisClient, err := database.NewRedisClient(ctx, database.RedisConfig{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	logger.Info("connected to Redis", slog.String("host", cfg.RedisHost), slog.Int("port", cfg.RedisPort))

	// Initialize Kafka producer.
	kafkaCfg := pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers)
	producer := pkgkafka.NewProducer(kafkaCfg, logger)
	logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))

	// Build the dependency graph.
	// Session markers live exactly as long as the refresh token they back.
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.AccessExpiry(), cfg.RefreshExpiry())
	sessions := session.NewStore(redisClient, jwtManager.RefreshExpiry())

	shopRepo := postgres.NewShopRepository(pool)
	offerRepo := postgres.NewOfferRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	floorRepo := postgres.NewFloorRepository(pool)
	adminRepo := postgres.NewAdminRepository(pool)

	shopCache := catalog.NewCache[domain.Shop]("shops")
	offerCache := catalog.NewCache[domain.Offer]("offers")
	categoryCache := catalog.NewCache[domain.Category]("categories")
	floorCache := catalog.NewCache[domain.Floor]("floors")

	// Warm the catalog caches. A failed warm-up is not fatal: the caches
	// reload lazily on first read and after every mutation.
	warmups := []struct {
		name string
		load func(context.Context) error
	}{
		{shopCache.Name(), func(ctx context.Context) error { return shopCache.Reload(ctx, shopRepo.List) }},
		{offerCache.Name(), func(ctx context.Context) error { return offerCache.Reload(ctx, offerRepo.List) }},
		{categoryCache.Name(), func(ctx context.Context) error { return categoryCache.Reload(ctx, categoryRepo.List) }},
		{floorCache.Name(), func(ctx context.Context) error { return floorCache.Reload(ctx, floorRepo.List) }},
	}
	for _, w := range warmups {
		if err := w.load(ctx); err != nil {
			logger.Warn("catalog warm-up failed", slog.String("collection", w.name), slog.String("error", err.Error()))
		}
	}

	eventProducer := event.NewProducer(producer, logger)

	shopService := service.NewShopService(shopRepo, shopCache, eventProducer, logger)
	offerService := service.NewOfferService(offerRepo, shopRepo, offerCache, eventProducer, logger)
	categoryService := service.NewCategoryService(categoryRepo, categoryCache, eventProducer, logger)
	floorService := service.NewFloorService(floorRepo, floorCache, eventProducer, logger)
	browseService := service.NewBrowseService(shopCache, offerCache, categoryCache, floorCache)
	authService := service.NewAuthService(adminRepo, jwtManager, sessions, eventProducer, logger)

	// Health checks. Kafka is non-critical: event publishing is best-effort
	// and a broker outage must not take the portal out of rotation.
	healthHandler := health.NewHandler()
	healthHandler.RegisterCritical("postgres", func(ctx context.Context) error {
		return pool.Ping(ctx)
	})
	healthHandler.RegisterCritical("redis", func(ctx context.Context) error {
		return redisClient.Ping(ctx).Err()
	})
	healthHandler.RegisterNonCritical("kafka", func(ctx context.Context) error {
		return producer.Ping(ctx)
	})

	// HTTP router.
	router := handler.NewRouter(handler.RouterDeps{
		Shops:      shopService,
		Offers:     offerService,
		Categories: categoryService,
		Floors:     floorService,
		Browse:     browseService,
		Auth:       authService,
		JWT:        jwtManager,
		AuditLog:   auditBuffer,
		Health:     healthHandler,
		Logger:     logger,
		CORS: middleware.CORSConfig{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			Environment:    cfg.Environment,
		},
	})

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &App{
		cfg:            cfg,
		logger:         logger,
		pool:           pool,
		redis:          redisClient,
		producer:       producer,
		httpServer:     httpServer,
		tracerShutdown: tracerShutdown,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components in the correct order:
// 1. HTTP server (drain in-flight requests)
// 2. Tracer (flush pending spans from drained requests)
// 3. Kafka producer
// 4. Redis client
// 5. PostgreSQL pool
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	var errs []error

	// 1. Drain in-flight HTTP requests (5s budget).
	httpCtx, httpCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer httpCancel()
	if err := a.httpServer.Shutdown(httpCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	// 2. Flush pending spans after HTTP drain so in-flight request spans are captured.
	if a.tracerShutdown != nil {
		tracerCtx, tracerCancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer tracerCancel()
		if err := a.tracerShutdown(tracerCtx); err != nil {
			a.logger.Error("tracer shutdown error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	// 3. Close Kafka producer.
	if err := a.producer.Close(); err != nil {
		a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	// 4. Close Redis client.
	if err := a.redis.Close(); err != nil {
		a.logger.Error("redis close error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	// 5. Close PostgreSQL pool.
	a.pool.Close()

	a.logger.Info("application shutdown complete")
	return errors.Join(errs...)
}
