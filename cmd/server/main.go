// Package main is the entry point for the inventory-registries API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Haarizz/inventory-registries/internal/domain/auth"
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/brand"
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/department"
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/pricelevel"
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/product"
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/subdepartment"
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/unit"
	"github.com/Haarizz/inventory-registries/internal/domain/notification"
	"github.com/Haarizz/inventory-registries/internal/domain/stocktaking"
	v1 "github.com/Haarizz/inventory-registries/internal/infrastructure/http/v1"
	"github.com/Haarizz/inventory-registries/internal/infrastructure/storage/postgres"
	"github.com/Haarizz/inventory-registries/internal/infrastructure/storage/postgres/auth_repo"
	"github.com/Haarizz/inventory-registries/internal/infrastructure/storage/postgres/catalog_repo"
	"github.com/Haarizz/inventory-registries/internal/infrastructure/storage/postgres/notification_repo"
	"github.com/Haarizz/inventory-registries/internal/infrastructure/storage/postgres/stocktaking_repo"
	"github.com/Haarizz/inventory-registries/pkg/logger"
)

const version = "0.1.0"

func main() {
	// Initialize logger
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting inventory-registries server")

	// --- Database connection ---
	poolCfg := postgres.DefaultPoolConfig(mustEnv("DATABASE_URL"))
	if maxConns := getEnvInt("DB_MAX_CONNS", 0); maxConns > 0 {
		poolCfg.MaxConns = int32(maxConns)
	}

	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)

	// --- Repositories ---
	brandRepo := catalog_repo.NewBrandRepo(txManager)
	departmentRepo := catalog_repo.NewDepartmentRepo(txManager)
	subDepartmentRepo := catalog_repo.NewSubDepartmentRepo(txManager)
	unitRepo := catalog_repo.NewUnitRepo(txManager)
	productRepo := catalog_repo.NewProductRepo(txManager)
	priceLevelRepo := catalog_repo.NewPriceLevelRepo(txManager)
	stockTakingRepo := stocktaking_repo.NewStockTakingRepo(txManager)
	notificationRepo := notification_repo.NewNotificationRepo(txManager)
	userRepo := auth_repo.NewUserRepo(txManager)
	tokenRepo := auth_repo.NewTokenRepo(txManager)

	auditRepo, err := postgres.NewAuditRepo(txManager)
	if err != nil {
		log.Fatalw("failed to initialize audit storage", "error", err)
	}

	// --- JWT Service ---
	jwtSecret := getEnv("JWT_SECRET", "your-secret-key-change-in-production")
	jwtService := auth.NewJWTService(auth.DefaultJWTConfig(jwtSecret))

	// --- Services ---
	authService := auth.NewService(userRepo, tokenRepo, txManager, jwtService, auth.DefaultServiceConfig())

	brandService := brand.NewService(brandRepo, txManager)
	departmentService := department.NewService(departmentRepo, txManager)
	subDepartmentService := subdepartment.NewService(subDepartmentRepo, departmentRepo, txManager)
	unitService := unit.NewService(unitRepo, txManager)
	productService := product.NewService(productRepo, brandRepo, subDepartmentRepo, unitRepo, txManager)
	priceLevelService := pricelevel.NewService(priceLevelRepo, productRepo, txManager)

	notificationService := notification.NewService(notificationRepo)
	dispatcher := notification.NewDispatcher(notificationRepo)

	stockTakingService := stocktaking.NewService(
		stockTakingRepo,
		productRepo,
		txManager,
		dispatcher,
		authService,
		auditRepo,
	)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:    pool,
		Logger:  log,
		Version: version,

		JWTValidator: jwtService,

		AuthService:          authService,
		BrandService:         brandService,
		DepartmentService:    departmentService,
		SubDepartmentService: subDepartmentService,
		UnitService:          unitService,
		ProductService:       productService,
		PriceLevelService:    priceLevelService,
		StockTakingService:   stockTakingService,
		NotificationService:  notificationService,
		AuditReader:          auditRepo,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// Periodic pool stats for operational visibility
	statsCtx, stopStats := context.WithCancel(ctx)
	defer stopStats()
	go postgres.LogPoolStats(statsCtx, pool.Pool)

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
