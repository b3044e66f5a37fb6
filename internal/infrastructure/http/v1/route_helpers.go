// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/Haarizz/inventory-registries/internal/infrastructure/http/v1/middleware"
)

// CatalogRouteHandler defines the interface for catalog handlers.
// All catalog handlers must implement these methods.
type CatalogRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// RegisterCatalogRoutes registers standard CRUD routes for a catalog.
// Reads are open to any authenticated user; mutations require one of
// writeRoles.
//
// Usage:
//
//	handler := handlers.NewUnitHandler(baseHandler, unitService)
//	RegisterCatalogRoutes(catalogs.Group("/units"), handler, writeRoles)
func RegisterCatalogRoutes(group *gin.RouterGroup, handler CatalogRouteHandler, writeRoles []string) {
	group.GET("", handler.List)
	group.GET("/:id", handler.Get)
	group.POST("", middleware.RequireRole(writeRoles...), handler.Create)
	group.PUT("/:id", middleware.RequireRole(writeRoles...), handler.Update)
	group.DELETE("/:id", middleware.RequireRole(writeRoles...), handler.Delete)
}
