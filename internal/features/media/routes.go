package media

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inkwell-app/inkwell/internal/config"
	"github.com/inkwell-app/inkwell/internal/middleware"
	"github.com/inkwell-app/inkwell/internal/pkg/token"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config, log *logrus.Logger) {
	repo := NewRepository(db)
	handler := NewHandler(repo, cfg, log)

	requireAuth := middleware.RequireAuth(cfg.JWTSecret)
	requireAdmin := middleware.RequireRole(token.RoleAdmin)

	covers := router.Group("/cover-images")
	{
		covers.POST("", requireAuth, handler.UploadCover)
		covers.GET("", handler.ListCovers)
		covers.DELETE("/:id", requireAuth, requireAdmin, handler.DeleteCover)
	}

	videos := router.Group("/videos")
	{
		videos.POST("", requireAuth, handler.CreateVideo)
		videos.GET("", handler.ListVideos)
		videos.DELETE("/:id", requireAuth, requireAdmin, handler.DeleteVideo)
	}
}
