package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	dashboardapp "github.com/propertyhub/backend/internal/application/dashboard"
	documentapp "github.com/propertyhub/backend/internal/application/document"
	appevent "github.com/propertyhub/backend/internal/application/event"
	financeapp "github.com/propertyhub/backend/internal/application/finance"
	identityapp "github.com/propertyhub/backend/internal/application/identity"
	inspectionapp "github.com/propertyhub/backend/internal/application/inspection"
	leasingapp "github.com/propertyhub/backend/internal/application/leasing"
	maintenanceapp "github.com/propertyhub/backend/internal/application/maintenance"
	propertyapp "github.com/propertyhub/backend/internal/application/property"
	"github.com/propertyhub/backend/internal/domain/document"
	"github.com/propertyhub/backend/internal/domain/finance"
	"github.com/propertyhub/backend/internal/infrastructure/auth"
	"github.com/propertyhub/backend/internal/infrastructure/cache"
	"github.com/propertyhub/backend/internal/infrastructure/config"
	"github.com/propertyhub/backend/internal/infrastructure/event"
	"github.com/propertyhub/backend/internal/infrastructure/logger"
	"github.com/propertyhub/backend/internal/infrastructure/migration"
	"github.com/propertyhub/backend/internal/infrastructure/pdf"
	"github.com/propertyhub/backend/internal/infrastructure/persistence"
	"github.com/propertyhub/backend/internal/infrastructure/scheduler"
	"github.com/propertyhub/backend/internal/infrastructure/storage"
	"github.com/propertyhub/backend/internal/infrastructure/telemetry"
	"github.com/propertyhub/backend/internal/interfaces/http/handler"
	"github.com/propertyhub/backend/internal/interfaces/http/middleware"
	"github.com/propertyhub/backend/internal/interfaces/http/router"
	"github.com/propertyhub/backend/migrations"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/propertyhub/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

//	@title			PropertyHub API
//	@version		1.0
//	@description	Property management backend: portfolios, leases, maintenance, bookkeeping and inspections for multi-organization teams.

//	@contact.name	API Support
//	@contact.email	support@propertyhub.example.com

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	baseLog, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(baseLog)
	}()

	startCtx := context.Background()

	// Telemetry providers. Disabled providers are no-ops.
	tracerProvider, err := telemetry.NewTracerProvider(startCtx, cfg.Telemetry, cfg.App.Env, baseLog)
	if err != nil {
		baseLog.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	meterProvider, err := telemetry.NewMeterProvider(startCtx, cfg.Telemetry, cfg.App.Env, baseLog)
	if err != nil {
		baseLog.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	loggerProvider, err := telemetry.NewLoggerProvider(startCtx, cfg.Telemetry, cfg.App.Env, baseLog)
	if err != nil {
		baseLog.Fatal("Failed to initialize logger provider", zap.Error(err))
	}

	// Ship logs to the collector as well when OTLP logs are on
	log := baseLog
	if loggerProvider.IsEnabled() {
		level, err := zapcore.ParseLevel(cfg.Log.Level)
		if err != nil {
			level = zapcore.InfoLevel
		}
		log = loggerProvider.Bridge(baseLog, level)
	}

	profiler, err := telemetry.NewProfiler(cfg.Profiling, cfg.App.Name, cfg.App.Env, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	if profiler.IsEnabled() && cfg.Profiling.SpanProfiles {
		tracerProvider.EnableSpanProfiles()
	}
	meter := meterProvider.Meter("propertyhub")

	log.Info("Starting PropertyHub backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	if cfg.Database.AutoMigrate {
		if err := runMigrations(&cfg.Database, log); err != nil {
			log.Fatal("Failed to apply migrations", zap.Error(err))
		}
	}

	// Create GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh),
	)

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	log.Info("Database connected successfully")

	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled:         cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
		SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
	}, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}
	dbMetrics, err := telemetry.RegisterDBMetrics(db.DB, meter, cfg.Telemetry.DBSlowQueryThresh, log)
	if err != nil {
		log.Fatal("Failed to register database metrics", zap.Error(err))
	}

	// Redis backs the token blacklist, dashboard cache and event dedup
	var redisClient *redis.Client
	var blacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(startCtx, cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to redis", zap.Error(err))
		}
		blacklist = auth.NewRedisTokenBlacklist(redisClient)
		log.Info("Redis connected", zap.String("addr", cfg.Redis.Addr()))
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
	}
	stores := cache.NewStores(redisClient, log)

	// Initialize repositories
	orgRepo := persistence.NewGormOrganizationRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	memberRepo := persistence.NewGormTeamMemberRepository(db.DB)
	settingsRepo := persistence.NewGormSettingsRepository(db.DB)
	propertyRepo := persistence.NewGormPropertyRepository(db.DB)
	unitRepo := persistence.NewGormUnitRepository(db.DB)
	tenantRepo := persistence.NewGormTenantRepository(db.DB)
	leaseRepo := persistence.NewGormLeaseRepository(db.DB)
	requestRepo := persistence.NewGormMaintenanceRepository(db.DB)
	transactionRepo := persistence.NewGormTransactionRepository(db.DB)
	inspectionRepo := persistence.NewGormInspectionRepository(db.DB)
	documentRepo := persistence.NewGormDocumentRepository(db.DB)
	txManager := persistence.NewTxManager(db.DB)

	eventBus := event.NewInMemoryEventBus(log)
	publisher := appevent.NewPublisher(eventBus, log)

	// Object storage for documents
	var objectStorage document.ObjectStorage
	if cfg.Storage.Enabled {
		s3Storage, err := storage.NewS3ObjectStorage(startCtx, cfg.Storage, log)
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		if err := s3Storage.EnsureBucket(startCtx); err != nil {
			log.Fatal("Failed to verify storage bucket", zap.Error(err))
		}
		objectStorage = s3Storage
	} else {
		log.Warn("Object storage disabled, document uploads use stub URLs")
		objectStorage = storage.NewStubObjectStorage()
	}

	// Statement PDFs. Left nil when disabled so statements report the
	// renderer as unavailable.
	var statementRenderer finance.StatementRenderer
	var chromeRenderer *pdf.ChromeRenderer
	if cfg.PDF.Enabled {
		chromeRenderer = pdf.NewChromeRenderer(cfg.PDF, log)
		sr, err := pdf.NewStatementRenderer(chromeRenderer)
		if err != nil {
			log.Fatal("Failed to initialize statement renderer", zap.Error(err))
		}
		statementRenderer = sr
	}

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(
		orgRepo, userRepo, memberRepo, settingsRepo, txManager, jwtService, blacklist, publisher,
		identityapp.AuthServiceConfig{
			MaxLoginAttempts: cfg.Auth.MaxLoginAttempts,
			LockDuration:     cfg.Auth.LockDuration,
		},
		log,
	)
	teamService := identityapp.NewTeamService(memberRepo, userRepo, txManager, blacklist, cfg.JWT.AccessTokenExpiration, publisher, log)
	settingsService := identityapp.NewSettingsService(settingsRepo, orgRepo, publisher, log)
	propertyService := propertyapp.NewPropertyService(propertyRepo, unitRepo, publisher, log)
	unitService := propertyapp.NewUnitService(unitRepo, propertyRepo, publisher, log)
	tenantService := leasingapp.NewTenantService(tenantRepo, leaseRepo, publisher, log)
	leaseService := leasingapp.NewLeaseService(leaseRepo, tenantRepo, unitRepo, transactionRepo, orgRepo, txManager, publisher, log)
	requestService := maintenanceapp.NewRequestService(requestRepo, propertyRepo, unitRepo, tenantRepo, memberRepo, publisher, log)
	inspectionService := inspectionapp.NewInspectionService(inspectionRepo, propertyRepo, unitRepo, leaseRepo, memberRepo, publisher, log)
	transactionService := financeapp.NewTransactionService(transactionRepo, orgRepo, settingsRepo,
		financeapp.LinkRepositories{
			Properties:  propertyRepo,
			Units:       unitRepo,
			Leases:      leaseRepo,
			Tenants:     tenantRepo,
			Maintenance: requestRepo,
		},
		statementRenderer, publisher, log,
	)
	documentService := documentapp.NewDocumentService(documentRepo, objectStorage,
		documentapp.EntityRepositories{
			Properties:  propertyRepo,
			Units:       unitRepo,
			Tenants:     tenantRepo,
			Leases:      leaseRepo,
			Maintenance: requestRepo,
			Inspections: inspectionRepo,
		},
		documentapp.URLExpiry{
			Upload:   cfg.Storage.UploadURLExpiry,
			Download: cfg.Storage.DownloadExpiry,
		},
		publisher, log,
	)
	dashboardService := dashboardapp.NewDashboardService(dashboardapp.Repositories{
		Properties:   propertyRepo,
		Units:        unitRepo,
		Leases:       leaseRepo,
		Maintenance:  requestRepo,
		Transactions: transactionRepo,
		Inspections:  inspectionRepo,
		Settings:     settingsRepo,
		Orgs:         orgRepo,
	}, stores.Dashboard, cfg.Cache.DashboardTTL, log)

	// Register event handlers for cross-context integration. Handlers that
	// write are deduplicated by event ID.
	maintenanceCompletedHandler := financeapp.NewMaintenanceCompletedHandler(transactionRepo, orgRepo, publisher, log)
	cacheInvalidationHandler := dashboardapp.NewCacheInvalidationHandler(dashboardService, log)
	businessMetrics, err := telemetry.NewBusinessMetrics(meter)
	if err != nil {
		log.Fatal("Failed to initialize business metrics", zap.Error(err))
	}
	eventBus.Subscribe(event.NewIdempotentHandler(maintenanceCompletedHandler, stores.Idempotency, 0, log))
	eventBus.Subscribe(event.NewIdempotentHandler(cacheInvalidationHandler, stores.Idempotency, 0, log))
	eventBus.Subscribe(businessMetrics)

	log.Info("Event handlers registered",
		zap.Strings("maintenance_completed_events", maintenanceCompletedHandler.EventTypes()),
		zap.Strings("cache_invalidation_events", cacheInvalidationHandler.EventTypes()),
		zap.Strings("business_metric_events", businessMetrics.EventTypes()),
	)

	if err := eventBus.Start(startCtx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}

	// Background jobs: lease expiry and stale upload cleanup
	var jobScheduler *scheduler.Scheduler
	var jobTrigger *scheduler.IntervalTrigger
	if cfg.Scheduler.Enabled {
		jobs := scheduler.NewRouter().
			Handle(scheduler.JobTypeLeaseExpiry, leaseService.ExpireLeases).
			Handle(scheduler.JobTypeStaleUploads, documentService.PurgeStaleUploads).
			OnResult(func(job *scheduler.Job, affected int) {
				if affected > 0 {
					log.Info("Scheduled job changed records",
						zap.String("job_type", string(job.Type)),
						zap.String("org_id", job.OrgID.String()),
						zap.Int("affected", affected),
					)
				}
			})

		jobScheduler, err = scheduler.NewScheduler(cfg.Scheduler, jobs, log)
		if err != nil {
			log.Fatal("Failed to create scheduler", zap.Error(err))
		}
		if err := jobScheduler.WithMetrics(meter); err != nil {
			log.Warn("Failed to register scheduler metrics", zap.Error(err))
		}
		if err := jobScheduler.Start(startCtx); err != nil {
			log.Fatal("Failed to start scheduler", zap.Error(err))
		}

		jobTrigger = scheduler.NewIntervalTrigger(cfg.Scheduler.Interval, jobs.Types(), cfg.Scheduler.RetryAttempts, jobScheduler, orgRepo, log)
		if err := jobTrigger.Start(startCtx); err != nil {
			log.Fatal("Failed to start scheduler trigger", zap.Error(err))
		}
		log.Info("Scheduler started",
			zap.Duration("interval", cfg.Scheduler.Interval),
			zap.Int("max_concurrent_jobs", cfg.Scheduler.MaxConcurrentJobs),
		)
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := middleware.SetupValidator(); err != nil {
		log.Fatal("Failed to register validators", zap.Error(err))
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Global middleware, outermost first
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))
	engine.Use(middleware.HTTPMetrics(meter, log))
	engine.Use(middleware.CORSWithConfig(cfg.HTTP))
	engine.Use(middleware.Secure())
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	var apiLimiter *middleware.RateLimiter
	if cfg.HTTP.RateLimitEnabled {
		apiLimiter = middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(apiLimiter))
	}
	// Signup, login and refresh share a tighter per-IP budget
	authLimiter := middleware.NewRateLimiter(10, time.Minute)

	systemHandler := handler.NewSystemHandler(db, version)
	engine.GET("/health", systemHandler.Health)

	if cfg.Swagger.Enabled {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		log.Info("Swagger UI enabled", zap.String("path", "/swagger/index.html"))
	}

	handlers := router.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Team:        handler.NewTeamHandler(teamService),
		Settings:    handler.NewSettingsHandler(settingsService),
		Property:    handler.NewPropertyHandler(propertyService),
		Unit:        handler.NewUnitHandler(unitService),
		Tenant:      handler.NewTenantHandler(tenantService),
		Lease:       handler.NewLeaseHandler(leaseService),
		Maintenance: handler.NewMaintenanceHandler(requestService),
		Transaction: handler.NewTransactionHandler(transactionService),
		Inspection:  handler.NewInspectionHandler(inspectionService),
		Document:    handler.NewDocumentHandler(documentService),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
	}

	jwtConfig := middleware.DefaultJWTConfig(authService)
	jwtConfig.Logger = log

	r := router.NewRouter(engine).
		Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig)).
		Use(middleware.SpanEnricher()).
		Use(middleware.Profiling(middleware.ProfilingConfig{Enabled: profiler.IsEnabled()}))
	for _, group := range router.APIGroups(handlers, router.RouteOptions{
		AuthRateLimit: middleware.AuthRateLimit(authLimiter),
		Permissions:   middleware.PermissionConfig{Logger: log},
	}) {
		r.Register(group)
	}
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	// Stop producers before consumers, then release infrastructure
	if jobTrigger != nil {
		logStop(log, "scheduler trigger", jobTrigger.Stop(ctx))
	}
	if jobScheduler != nil {
		logStop(log, "scheduler", jobScheduler.Stop(ctx))
	}
	logStop(log, "event bus", eventBus.Stop(ctx))
	if chromeRenderer != nil {
		logStop(log, "pdf renderer", chromeRenderer.Close())
	}
	if apiLimiter != nil {
		apiLimiter.Stop()
	}
	authLimiter.Stop()
	logStop(log, "cache stores", stores.Close())
	if redisClient != nil {
		logStop(log, "redis client", redisClient.Close())
	}
	logStop(log, "database metrics", dbMetrics.Stop())
	logStop(log, "profiler", profiler.Stop())
	logStop(log, "tracer provider", tracerProvider.Shutdown(ctx))
	logStop(log, "meter provider", meterProvider.Shutdown(ctx))
	logStop(log, "logger provider", loggerProvider.Shutdown(ctx))
	logStop(log, "database", db.Close())

	log.Info("Server exited gracefully")
}

// runMigrations applies embedded migrations on a dedicated connection; the
// migrator closes it when done
func runMigrations(cfg *config.DatabaseConfig, log *zap.Logger) error {
	sqlDB, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return err
	}
	m, err := migration.NewFromFS(sqlDB, migrations.FS, log)
	if err != nil {
		_ = sqlDB.Close()
		return err
	}
	defer func() {
		_ = m.Close()
	}()
	return m.Up()
}

func logStop(log *zap.Logger, component string, err error) {
	if err != nil {
		log.Error("Error stopping "+component, zap.Error(err))
	}
}
