package ads

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inkwell-app/inkwell/internal/config"
	"github.com/inkwell-app/inkwell/internal/middleware"
	"github.com/inkwell-app/inkwell/internal/pkg/token"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)
	handler := NewHandler(repo, cfg)

	requireAuth := middleware.RequireAuth(cfg.JWTSecret)
	requireAdmin := middleware.RequireRole(token.RoleAdmin)

	group := router.Group("/ads")
	{
		group.GET("/config", handler.GetConfig)
		group.PUT("/config", requireAuth, requireAdmin, handler.ReplaceConfig)
		group.POST("/upload/:slot", requireAuth, requireAdmin, handler.UploadSlotImage)

		group.POST("/inquiry", handler.CreateInquiry)
		group.GET("/inquiries", requireAuth, requireAdmin, handler.ListInquiries)
	}
}
