package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	bookingapp "github.com/shubhendumishra2009/arkedia-homes/internal/application/booking"
	identityapp "github.com/shubhendumishra2009/arkedia-homes/internal/application/identity"
	propertyapp "github.com/shubhendumishra2009/arkedia-homes/internal/application/property"
	tenancyapp "github.com/shubhendumishra2009/arkedia-homes/internal/application/tenancy"
	workforceapp "github.com/shubhendumishra2009/arkedia-homes/internal/application/workforce"
	"github.com/shubhendumishra2009/arkedia-homes/internal/infrastructure/auth"
	"github.com/shubhendumishra2009/arkedia-homes/internal/infrastructure/config"
	"github.com/shubhendumishra2009/arkedia-homes/internal/infrastructure/logger"
	"github.com/shubhendumishra2009/arkedia-homes/internal/infrastructure/persistence"
	"github.com/shubhendumishra2009/arkedia-homes/internal/infrastructure/scheduler"
	"github.com/shubhendumishra2009/arkedia-homes/internal/interfaces/http/handler"
	"github.com/shubhendumishra2009/arkedia-homes/internal/interfaces/http/middleware"
	"github.com/shubhendumishra2009/arkedia-homes/internal/interfaces/http/router"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Arkedia Homes",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Token blacklist: Redis when configured, in-memory otherwise.
	// The in-memory store does not survive restarts or scale past one
	// instance.
	var blacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		blacklist = redisBlacklist
		log.Info("Redis token blacklist enabled",
			zap.String("host", cfg.Redis.Host),
			zap.Int("port", cfg.Redis.Port),
		)
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
		log.Warn("Using in-memory token blacklist; revoked tokens reset on restart")
	}

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	formRepo := persistence.NewGormFormRepository(db.DB)
	rightsRepo := persistence.NewGormUserFormRightRepository(db.DB)
	propertyRepo := persistence.NewGormPropertyRepository(db.DB)
	roomRepo := persistence.NewGormRoomRepository(db.DB)
	mealTariffRepo := persistence.NewGormMealTariffRepository(db.DB)
	tenantRepo := persistence.NewGormTenantRepository(db.DB)
	leaseRepo := persistence.NewGormLeaseRepository(db.DB)
	bookingRepo := persistence.NewGormBookingRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)
	vendorRepo := persistence.NewGormVendorRepository(db.DB)
	purchaseRepo := persistence.NewGormPurchaseRepository(db.DB)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	userService := identityapp.NewUserService(userRepo, formRepo, rightsRepo, employeeRepo, db, log)
	permissionService := identityapp.NewPermissionService(formRepo, rightsRepo, userRepo, log)
	propertyService := propertyapp.NewPropertyService(propertyRepo, roomRepo, log)
	roomService := propertyapp.NewRoomService(roomRepo, propertyRepo, log)
	mealTariffService := propertyapp.NewMealTariffService(mealTariffRepo, propertyRepo, log)
	tenantService := tenancyapp.NewTenantService(tenantRepo, userRepo, log)
	leaseService := tenancyapp.NewLeaseService(leaseRepo, tenantRepo, roomRepo, userRepo, db, log)
	bookingService := bookingapp.NewBookingService(bookingRepo, roomRepo, tenantRepo, db, log)
	paymentService := bookingapp.NewPaymentService(paymentRepo, bookingRepo, leaseRepo, db, log)
	employeeService := workforceapp.NewEmployeeService(employeeRepo, propertyRepo, log)
	vendorService := workforceapp.NewVendorService(vendorRepo, log)
	purchaseService := workforceapp.NewPurchaseService(purchaseRepo, propertyRepo, vendorRepo, log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(limiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	handlers := router.Handlers{
		System:     handler.NewSystemHandler(db, version),
		Auth:       handler.NewAuthHandler(authService),
		User:       handler.NewUserHandler(userService),
		Permission: handler.NewPermissionHandler(permissionService),
		Property:   handler.NewPropertyHandler(propertyService),
		Room:       handler.NewRoomHandler(roomService),
		MealTariff: handler.NewMealTariffHandler(mealTariffService),
		Tenant:     handler.NewTenantHandler(tenantService, leaseService),
		Lease:      handler.NewLeaseHandler(leaseService, paymentService),
		Booking:    handler.NewBookingHandler(bookingService),
		Payment:    handler.NewPaymentHandler(paymentService),
		Employee:   handler.NewEmployeeHandler(employeeService),
		Vendor:     handler.NewVendorHandler(vendorService),
		Purchase:   handler.NewPurchaseHandler(purchaseService),
	}

	routerCfg := router.Config{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		Logger:         log,
	}
	if cfg.HTTP.AuthRateLimitEnabled {
		routerCfg.AuthRateLimiter = middleware.NewRateLimiter(
			cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		log.Info("Auth rate limiting enabled",
			zap.Int("requests", cfg.HTTP.AuthRateLimitRequests),
			zap.Duration("window", cfg.HTTP.AuthRateLimitWindow),
		)
	}

	router.Setup(engine, handlers, routerCfg)

	sweeper := scheduler.NewLeaseExpirySweeper(db.DB, scheduler.DefaultLeaseExpiryConfig(), log)
	sweeper.Start(context.Background())
	defer sweeper.Stop()

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
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
