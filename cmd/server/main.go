package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	attachmentapp "github.com/finvoice/backend/internal/application/attachment"
	billingapp "github.com/finvoice/backend/internal/application/billing"
	calendarapp "github.com/finvoice/backend/internal/application/calendar"
	exportapp "github.com/finvoice/backend/internal/application/export"
	identityapp "github.com/finvoice/backend/internal/application/identity"
	masterdataapp "github.com/finvoice/backend/internal/application/masterdata"
	taxapp "github.com/finvoice/backend/internal/application/tax"
	"github.com/finvoice/backend/internal/infrastructure/auth"
	"github.com/finvoice/backend/internal/infrastructure/config"
	"github.com/finvoice/backend/internal/infrastructure/logger"
	"github.com/finvoice/backend/internal/infrastructure/persistence"
	"github.com/finvoice/backend/internal/infrastructure/storage"
	"github.com/finvoice/backend/internal/infrastructure/telemetry"
	"github.com/finvoice/backend/internal/interfaces/http/handler"
	"github.com/finvoice/backend/internal/interfaces/http/middleware"
	"github.com/finvoice/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited with error", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx := context.Background()

	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			log.Warn("tracer provider shutdown failed", zap.Error(err))
		}
	}()

	db, err := persistence.NewDatabase(&cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("database close failed", zap.Error(err))
		}
	}()

	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		dbTracing := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
			Enabled:         true,
			LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
			SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
		}, log)
		if err := dbTracing.Register(db.DB); err != nil {
			return err
		}
	}

	// Repositories
	companyRepo := persistence.NewGormCompanyRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	currencyRepo := persistence.NewGormCurrencyRepository(db.DB)
	uomRepo := persistence.NewGormUOMRepository(db.DB)
	hsnRepo := persistence.NewGormHSNRepository(db.DB)
	geoRepo := persistence.NewGormGeographyRepository(db.DB)
	taxRepo := persistence.NewGormTaxHeaderRepository(db.DB)
	fyRepo := persistence.NewGormFinancialYearRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	receiptRepo := persistence.NewGormReceiptRepository(db.DB)
	attachmentRepo := persistence.NewGormAttachmentRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	sequenceAllocator := persistence.NewGormSequenceAllocator(db.DB)
	txManager := persistence.NewGormTransactionManager(db.DB)

	// Auth infrastructure
	jwtService := auth.NewJWTService(cfg.JWT)
	var blacklist auth.TokenBlacklist
	if cfg.Redis.Host != "" {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Warn("redis blacklist unavailable, falling back to in-memory", zap.Error(err))
			blacklist = auth.NewInMemoryTokenBlacklist()
		} else {
			blacklist = redisBlacklist
		}
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
	}

	// Object storage for attachments; the stub keeps the API functional in
	// environments without an S3 endpoint.
	var objectStore attachmentapp.ObjectStorageService
	if cfg.Storage.Bucket != "" {
		s3Store, err := storage.NewS3ObjectStorage(&cfg.Storage,
			storage.WithPresignExpiration(cfg.Storage.PresignExpiration))
		if err != nil {
			return err
		}
		if err := s3Store.EnsureBucket(ctx); err != nil {
			log.Warn("could not verify storage bucket", zap.Error(err))
		}
		objectStore = s3Store
	} else {
		log.Warn("no storage bucket configured, using in-memory object storage")
		objectStore = storage.NewStubObjectStorage()
	}

	// Application services
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist,
		identityapp.DefaultAuthServiceConfig(), log)
	masterDataService := masterdataapp.NewMasterDataService(
		companyRepo, customerRepo, productRepo, currencyRepo, uomRepo, hsnRepo, geoRepo)
	taxService := taxapp.NewTaxService(taxRepo)
	financialYearService := calendarapp.NewFinancialYearService(fyRepo)
	invoiceService := billingapp.NewInvoiceService(
		invoiceRepo, sequenceAllocator, txManager, companyRepo, customerRepo, currencyRepo)
	receiptService := billingapp.NewReceiptService(
		receiptRepo, invoiceRepo, sequenceAllocator, txManager)
	exportService := exportapp.NewExportService(invoiceRepo, receiptRepo, customerRepo, productRepo)
	attachmentService := attachmentapp.NewAttachmentService(attachmentRepo, objectStore, log)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			return err
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
	}))
	engine.Use(middleware.Secure())
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(limiter))
	}
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		engine.Use(authPathOnly("/api/v1/auth/", middleware.AuthRateLimit(authLimiter)))
	}
	if cfg.Telemetry.Enabled {
		engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     true,
		}))
		engine.Use(middleware.SpanErrorMarker())
	}

	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.TokenBlacklist = blacklist
	jwtConfig.Logger = log
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Routes
	router.NewRouter(engine, router.WithAPIVersion("v1")).Register(
		handler.NewSystemHandler(db),
		handler.NewAuthHandler(authService),
		handler.NewCompanyHandler(masterDataService),
		handler.NewCustomerHandler(masterDataService),
		handler.NewProductHandler(masterDataService),
		handler.NewCurrencyHandler(masterDataService),
		handler.NewUOMHandler(masterDataService),
		handler.NewHSNHandler(masterDataService),
		handler.NewGeographyHandler(masterDataService),
		handler.NewTaxHandler(taxService),
		handler.NewFinancialYearHandler(financialYearService),
		handler.NewInvoiceHandler(invoiceService),
		handler.NewReceiptHandler(receiptService),
		handler.NewExportHandler(exportService),
		handler.NewAttachmentHandler(attachmentService),
	).Setup()

	// Serve with graceful shutdown
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}

// authPathOnly applies mw only to requests under the given path prefix.
func authPathOnly(prefix string, mw gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, prefix) {
			mw(c)
			return
		}
		c.Next()
	}
}
