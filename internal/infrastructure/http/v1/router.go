package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/Haarizz/inventory-registries/internal/domain/audit"
	"github.com/Haarizz/inventory-registries/internal/domain/auth"
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/brand"
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/department"
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/pricelevel"
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/product"
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/subdepartment"
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/unit"
	"github.com/Haarizz/inventory-registries/internal/domain/notification"
	"github.com/Haarizz/inventory-registries/internal/domain/stocktaking"
	"github.com/Haarizz/inventory-registries/internal/infrastructure/http/v1/handlers"
	"github.com/Haarizz/inventory-registries/internal/infrastructure/http/v1/middleware"
	"github.com/Haarizz/inventory-registries/internal/infrastructure/storage/postgres"
	"github.com/Haarizz/inventory-registries/pkg/logger"
)

// RouterConfig holds the wired services the router exposes.
type RouterConfig struct {
	Pool    *postgres.Pool
	Logger  *logger.Logger
	Version string

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	AuthService          *auth.Service
	BrandService         *brand.Service
	DepartmentService    *department.Service
	SubDepartmentService *subdepartment.Service
	UnitService          *unit.Service
	ProductService       *product.Service
	PriceLevelService    *pricelevel.Service
	StockTakingService   *stocktaking.Service
	NotificationService  *notification.Service
	AuditReader          audit.Reader
}

// roles allowed to maintain reference catalogs and products
var catalogWriteRoles = []string{
	string(auth.RoleSuperAdmin),
	string(auth.RoleAdmin),
	string(auth.RoleManager),
}

// roles allowed to review and apply stock counts
var reviewRoles = []string{
	string(auth.RoleSuperAdmin),
	string(auth.RoleManager),
}

// roles allowed to manage accounts and read the audit trail
var adminRoles = []string{
	string(auth.RoleSuperAdmin),
	string(auth.RoleAdmin),
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	baseHandler := handlers.NewBaseHandler()

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool, cfg.Version)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// API v1
	apiV1 := router.Group("/api/v1")
	{
		authHandler := handlers.NewAuthHandler(baseHandler, cfg.AuthService)

		// Public auth endpoints
		publicAuth := apiV1.Group("/auth")
		{
			publicAuth.POST("/login", authHandler.Login)
			publicAuth.POST("/refresh", authHandler.Refresh)
		}

		// Everything below requires a valid access token
		protected := apiV1.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		registerAccountRoutes(protected, authHandler)
		registerCatalogRoutes(protected, baseHandler, cfg)
		registerStockTakingRoutes(protected, baseHandler, cfg)
		registerNotificationRoutes(protected, baseHandler, cfg)

		auditHandler := handlers.NewAuditHandler(baseHandler, cfg.AuditReader)
		protected.GET("/audit", middleware.RequireRole(adminRoles...), auditHandler.List)
	}

	return router
}

// registerAccountRoutes registers the authenticated account endpoints.
func registerAccountRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	account := rg.Group("/auth")
	{
		account.POST("/logout", authHandler.Logout)
		account.GET("/profile", authHandler.Profile)
		account.POST("/change-password", authHandler.ChangePassword)
		account.POST("/register", middleware.RequireRole(adminRoles...), authHandler.Register)
	}

	users := rg.Group("/users")
	users.Use(middleware.RequireRole(adminRoles...))
	{
		users.GET("", authHandler.ListUsers)
		users.PUT("/:id/role", authHandler.UpdateUserRole)
		users.DELETE("/:id", authHandler.DeactivateUser)
	}
}

// registerCatalogRoutes registers reference catalog endpoints.
func registerCatalogRoutes(rg *gin.RouterGroup, baseHandler *handlers.BaseHandler, cfg RouterConfig) {
	catalogs := rg.Group("/catalog")

	// --- BRANDS ---
	{
		handler := handlers.NewBrandHandler(baseHandler, cfg.BrandService)
		RegisterCatalogRoutes(catalogs.Group("/brands"), handler, catalogWriteRoles)
	}

	// --- DEPARTMENTS ---
	{
		handler := handlers.NewDepartmentHandler(baseHandler, cfg.DepartmentService)
		subHandler := handlers.NewSubDepartmentHandler(baseHandler, cfg.SubDepartmentService)

		departments := catalogs.Group("/departments")
		RegisterCatalogRoutes(departments, handler, catalogWriteRoles)
		departments.GET("/:id/sub-departments", subHandler.ListByDepartment)
	}

	// --- SUB-DEPARTMENTS ---
	{
		handler := handlers.NewSubDepartmentHandler(baseHandler, cfg.SubDepartmentService)
		RegisterCatalogRoutes(catalogs.Group("/sub-departments"), handler, catalogWriteRoles)
	}

	// --- UNITS ---
	{
		handler := handlers.NewUnitHandler(baseHandler, cfg.UnitService)
		RegisterCatalogRoutes(catalogs.Group("/units"), handler, catalogWriteRoles)
	}

	// --- PRODUCTS ---
	{
		handler := handlers.NewProductHandler(baseHandler, cfg.ProductService)
		priceLevelHandler := handlers.NewPriceLevelHandler(baseHandler, cfg.PriceLevelService)

		products := catalogs.Group("/products")
		products.GET("/low-stock", handler.ListLowStock)
		products.GET("/by-code/:code", handler.GetByCode)
		RegisterCatalogRoutes(products, handler, catalogWriteRoles)
		products.GET("/:id/price-levels", priceLevelHandler.ListByProduct)
	}

	// --- PRICE LEVELS ---
	{
		handler := handlers.NewPriceLevelHandler(baseHandler, cfg.PriceLevelService)
		RegisterCatalogRoutes(catalogs.Group("/price-levels"), handler, catalogWriteRoles)
	}
}

// registerStockTakingRoutes registers stock count workflow endpoints.
func registerStockTakingRoutes(rg *gin.RouterGroup, baseHandler *handlers.BaseHandler, cfg RouterConfig) {
	handler := handlers.NewStockTakingHandler(baseHandler, cfg.StockTakingService)

	group := rg.Group("/stock-takings")
	{
		group.GET("", handler.List)
		group.POST("", handler.Create)
		group.GET("/:id", handler.Get)
		group.DELETE("/:id", handler.Delete)

		group.POST("/:id/approve", middleware.RequireRole(reviewRoles...), handler.Approve)
		group.POST("/:id/reject", middleware.RequireRole(reviewRoles...), handler.Reject)
		group.POST("/:id/apply", middleware.RequireRole(reviewRoles...), handler.Apply)
	}
}

// registerNotificationRoutes registers the caller's notification endpoints.
func registerNotificationRoutes(rg *gin.RouterGroup, baseHandler *handlers.BaseHandler, cfg RouterConfig) {
	handler := handlers.NewNotificationHandler(baseHandler, cfg.NotificationService)

	group := rg.Group("/notifications")
	{
		group.GET("", handler.List)
		group.GET("/unread-count", handler.UnreadCount)
		group.POST("/read-all", handler.MarkAllRead)
		group.POST("/:id/read", handler.MarkRead)
		group.DELETE("/:id", handler.Delete)
	}
}
