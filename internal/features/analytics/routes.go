package analytics

import (
	"github.com/gin-gonic/gin"

	"github.com/inkwell-app/inkwell/internal/config"
	"github.com/inkwell-app/inkwell/internal/middleware"
	"github.com/inkwell-app/inkwell/internal/pkg/token"
)

func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config, posts PostSource) {
	handler := NewHandler(posts)

	requireAuth := middleware.RequireAuth(cfg.JWTSecret)
	requireAdmin := middleware.RequireRole(token.RoleAdmin)

	group := router.Group("/analytics", requireAuth, requireAdmin)
	{
		group.GET("/overview", handler.Overview)
		group.GET("/top", handler.Top)
		group.GET("/categories", handler.Categories)
		group.GET("/posting-frequency", handler.PostingFrequency)
	}

	storage := router.Group("/storage-analytics", requireAuth, requireAdmin)
	{
		storage.GET("/projection", handler.StorageProjection)
	}
}
