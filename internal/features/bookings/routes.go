package bookings

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inkwell-app/inkwell/internal/config"
	"github.com/inkwell-app/inkwell/internal/middleware"
	"github.com/inkwell-app/inkwell/internal/pkg/token"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	requireAuth := middleware.RequireAuth(cfg.JWTSecret)
	requireAdmin := middleware.RequireRole(token.RoleAdmin)

	group := router.Group("/bookings")
	{
		group.POST("", handler.Create)
		group.GET("", requireAuth, requireAdmin, handler.List)
		group.DELETE("/:id", requireAuth, requireAdmin, handler.Delete)
	}
}
