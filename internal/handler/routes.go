package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tkexclusiv/catalog_api/internal/middleware"
	"github.com/tkexclusiv/catalog_api/internal/utils"
)

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health        *HealthHandler
	AdminCatalog  *AdminCatalogHandler
	PublicCatalog *PublicCatalogHandler
	Auth          *AuthHandler
	Upload        *UploadHandler
	Notify        *NotifyHandler
}

// SetupRoutes registers all routes. The router must already carry the CORS
// middleware so preflight requests never reach the admin key check.
func SetupRoutes(router *gin.Engine, handlers *Handlers, adminKey string) {
	router.HandleMethodNotAllowed = true
	router.NoRoute(notFound)
	router.NoMethod(func(c *gin.Context) {
		utils.Fail(c, utils.NewMethodNotAllowedError())
	})

	router.GET("/health", handlers.Health.GetHealth)

	adminOnly := middleware.AdminKeyMiddleware(adminKey)
	router.Any("/admin/catalog", adminOnly, handlers.AdminCatalog.Handle)
	router.Any("/upload-image", adminOnly, handlers.Upload.UploadImage)

	router.GET("/catalog", handlers.PublicCatalog.Get)
	router.GET("/auth", handlers.Auth.Handle)
	router.POST("/auth", handlers.Auth.Handle)
	router.Any("/notify-stock", handlers.Notify.NotifyStock)
}
