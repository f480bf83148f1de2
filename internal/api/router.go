package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/carminelamberti/smoobu-cleaning-app/internal/api/handler"
	"github.com/carminelamberti/smoobu-cleaning-app/internal/api/middleware"
	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/ports"
	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/service"
	"github.com/carminelamberti/smoobu-cleaning-app/internal/infrastructure/config"
	"github.com/carminelamberti/smoobu-cleaning-app/internal/infrastructure/db/postgres"
	"github.com/carminelamberti/smoobu-cleaning-app/internal/infrastructure/db/redis"
	"github.com/carminelamberti/smoobu-cleaning-app/internal/infrastructure/queue"
	"github.com/carminelamberti/smoobu-cleaning-app/internal/infrastructure/smoobu"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Auth core ---
	codec, err := service.NewJWTCodec(cfg.JWTSecret)
	if err != nil {
		return nil, err
	}

	operatorRepo := postgres.NewOperatorRepository(pool)
	propertyRepo := postgres.NewPropertyRepository(pool)
	jobRepo := postgres.NewCleaningJobRepository(pool)
	reservationRepo := postgres.NewReservationRepository(pool)

	authService := service.NewAuthService(operatorRepo, codec, log)
	cleaningService := service.NewCleaningService(jobRepo, log)
	propertyService := service.NewPropertyService(propertyRepo)

	// --- Smoobu sync (disabled until an API key is configured) ---
	var (
		dispatcher   ports.SyncDispatcher
		smoobuClient ports.SmoobuClient
	)
	if cfg.Smoobu.APIKey != "" {
		client, err := smoobu.NewClient(smoobu.Config{
			BaseURL: cfg.Smoobu.BaseURL,
			APIKey:  cfg.Smoobu.APIKey,
		})
		if err != nil {
			return nil, err
		}
		smoobuClient = client
		propertySync := service.NewPropertySync(client, reservationRepo, jobRepo, log)
		dispatcher = queue.NewDispatcher(cfg.Sync.Workers, propertySync, log)
	} else {
		log.Warn().Msg("SMOOBU_API_KEY not set, synchronization disabled")
	}
	syncService := service.NewSyncService(propertyRepo, redis.NewSyncLock(rdb), dispatcher, smoobuClient, log)

	authHandler := handler.NewAuthHandler(authService)
	jobHandler := handler.NewJobHandler(cleaningService)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	syncHandler := handler.NewSyncHandler(syncService)
	authMiddleware := middleware.Auth(codec)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)

	// --- Ownership-scoped data routes ---
	e.GET("/my-properties", propertyHandler.List, authMiddleware)
	e.GET("/cleaning-jobs", jobHandler.List, authMiddleware)
	e.PUT("/cleaning-jobs", jobHandler.Update, authMiddleware)
	e.POST("/sync-smoobu", syncHandler.Run, authMiddleware)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Prometheus metrics ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e, nil
}
