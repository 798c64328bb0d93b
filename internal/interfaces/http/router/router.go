package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shubhendumishra2009/arkedia-homes/internal/infrastructure/auth"
	"github.com/shubhendumishra2009/arkedia-homes/internal/interfaces/http/handler"
	"github.com/shubhendumishra2009/arkedia-homes/internal/interfaces/http/middleware"
)

// Handlers holds every HTTP handler the router wires up
type Handlers struct {
	System     *handler.SystemHandler
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Permission *handler.PermissionHandler
	Property   *handler.PropertyHandler
	Room       *handler.RoomHandler
	MealTariff *handler.MealTariffHandler
	Tenant     *handler.TenantHandler
	Lease      *handler.LeaseHandler
	Booking    *handler.BookingHandler
	Payment    *handler.PaymentHandler
	Employee   *handler.EmployeeHandler
	Vendor     *handler.VendorHandler
	Purchase   *handler.PurchaseHandler
}

// Config carries the dependencies the route middleware needs
type Config struct {
	JWTService     *auth.JWTService
	TokenBlacklist auth.TokenBlacklist
	Logger         *zap.Logger

	// AuthRateLimiter, when set, throttles the credential endpoints
	// (register, login, refresh) separately from the global limit.
	AuthRateLimiter *middleware.RateLimiter
}

// Setup registers all routes on the engine. Auth endpoints for
// registration, login and refresh stay public; everything else under
// /api/v1 requires a valid access token. Write access to domain
// resources requires a management role, user and permission
// administration requires admin.
func Setup(engine *gin.Engine, h Handlers, cfg Config) {
	engine.GET("/health", h.System.Health)
	engine.GET("/ready", h.System.Ready)

	jwtCfg := middleware.DefaultJWTConfig(cfg.JWTService)
	jwtCfg.TokenBlacklist = cfg.TokenBlacklist
	jwtCfg.Logger = cfg.Logger

	api := engine.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddlewareWithConfig(jwtCfg))

	management := middleware.RequireManagement()
	admin := middleware.RequireAdmin()

	authGroup := api.Group("/auth")
	{
		credentials := authGroup.Group("")
		if cfg.AuthRateLimiter != nil {
			credentials.Use(middleware.RateLimit(cfg.AuthRateLimiter))
		}
		credentials.POST("/register", h.Auth.Register)
		credentials.POST("/login", h.Auth.Login)
		credentials.POST("/refresh", h.Auth.RefreshToken)
		authGroup.POST("/logout", h.Auth.Logout)
		authGroup.GET("/me", h.Auth.Me)
		authGroup.PUT("/change-password", h.Auth.ChangePassword)
	}

	users := api.Group("/users", admin)
	{
		users.POST("", h.User.Create)
		users.GET("", h.User.List)
		users.GET("/:id", h.User.GetByID)
		users.PUT("/:id", h.User.Update)
		users.PUT("/:id/status", h.User.SetStatus)
		users.DELETE("/:id", h.User.Delete)
	}

	permissions := api.Group("/permissions")
	{
		permissions.GET("/forms", h.Permission.ListForms)
		permissions.POST("/forms", admin, h.Permission.CreateForm)
		permissions.GET("/users/:id", admin, h.Permission.GetUserRights)
		permissions.PUT("/users/:id", admin, h.Permission.ReplaceUserRights)
		permissions.GET("/check", h.Permission.CheckAccess)
	}

	properties := api.Group("/properties")
	{
		properties.POST("", management, h.Property.Create)
		properties.GET("", h.Property.List)
		properties.GET("/:id", h.Property.GetByID)
		properties.PUT("/:id", management, h.Property.Update)
		properties.DELETE("/:id", management, h.Property.Delete)
		properties.GET("/:id/rooms", h.Room.ListByProperty)
		properties.GET("/:id/meal-tariff", h.MealTariff.GetByProperty)
	}

	rooms := api.Group("/rooms")
	{
		rooms.POST("", management, h.Room.Create)
		rooms.GET("", h.Room.List)
		rooms.GET("/:id", h.Room.GetByID)
		rooms.PUT("/:id", management, h.Room.Update)
		rooms.DELETE("/:id", management, h.Room.Delete)
	}

	mealTariffs := api.Group("/meal-tariffs")
	{
		mealTariffs.POST("", management, h.MealTariff.Create)
		mealTariffs.GET("", h.MealTariff.List)
		mealTariffs.GET("/:id", h.MealTariff.GetByID)
		mealTariffs.PUT("/:id", management, h.MealTariff.Update)
		mealTariffs.DELETE("/:id", management, h.MealTariff.Delete)
	}

	tenants := api.Group("/tenants")
	{
		tenants.POST("", management, h.Tenant.Create)
		tenants.POST("/book", management, h.Tenant.Book)
		tenants.GET("", h.Tenant.List)
		tenants.GET("/:id", h.Tenant.GetByID)
		tenants.GET("/:id/leases", h.Tenant.GetLeases)
		tenants.GET("/:id/bookings", h.Booking.ListByTenant)
		tenants.PUT("/:id", management, h.Tenant.Update)
		tenants.DELETE("/:id", management, h.Tenant.Delete)
	}

	leases := api.Group("/leases")
	{
		leases.POST("", management, h.Lease.Create)
		leases.POST("/bulk-assign", management, h.Lease.BulkAssign)
		leases.GET("", h.Lease.List)
		leases.GET("/:id", h.Lease.GetByID)
		leases.GET("/:id/payments", h.Payment.ListByLease)
		leases.GET("/:id/payment-summary", h.Lease.PaymentSummary)
		leases.PUT("/:id", management, h.Lease.Update)
		leases.DELETE("/:id", management, h.Lease.Delete)
	}

	bookings := api.Group("/bookings")
	{
		bookings.POST("", management, h.Booking.Create)
		bookings.GET("", h.Booking.List)
		bookings.GET("/:id", h.Booking.GetByID)
		bookings.GET("/:id/payments", h.Payment.ListByBooking)
		bookings.PUT("/:id", management, h.Booking.Update)
		bookings.DELETE("/:id", management, h.Booking.Delete)
	}

	payments := api.Group("/payments")
	{
		payments.POST("", management, h.Payment.Create)
		payments.GET("", h.Payment.List)
		payments.GET("/:id", h.Payment.GetByID)
		payments.PUT("/:id", management, h.Payment.Update)
		payments.DELETE("/:id", management, h.Payment.Delete)
	}

	employees := api.Group("/employees", management)
	{
		employees.POST("", h.Employee.Create)
		employees.GET("", h.Employee.List)
		employees.GET("/:id", h.Employee.GetByID)
		employees.GET("/:id/properties", h.Employee.GetWithProperties)
		employees.PUT("/:id", h.Employee.Update)
		employees.DELETE("/:id", h.Employee.Delete)
	}

	vendors := api.Group("/vendors", management)
	{
		vendors.POST("", h.Vendor.Create)
		vendors.GET("", h.Vendor.List)
		vendors.GET("/:id", h.Vendor.GetByID)
		vendors.PUT("/:id", h.Vendor.Update)
		vendors.DELETE("/:id", h.Vendor.Delete)
	}

	purchases := api.Group("/purchases", management)
	{
		purchases.POST("", h.Purchase.Create)
		purchases.GET("", h.Purchase.List)
		purchases.GET("/:id", h.Purchase.GetByID)
		purchases.PUT("/:id", h.Purchase.Update)
		purchases.DELETE("/:id", h.Purchase.Delete)
	}
}
