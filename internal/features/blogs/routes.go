package blogs

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/inkwell-app/inkwell/internal/config"
	"github.com/inkwell-app/inkwell/internal/middleware"
)

// RegisterRoutes wires the blog feature. The repository is created by the
// caller because the comment feature shares it.
func RegisterRoutes(router *gin.RouterGroup, repo *Repository, cfg *config.Config, comments CommentService, log *logrus.Logger) {
	handler := NewHandler(repo, comments, log)

	requireAuth := middleware.RequireAuth(cfg.JWTSecret)

	group := router.Group("/blogs")
	{
		group.GET("", handler.List)
		group.POST("", requireAuth, handler.Create)
		group.GET("/category/:category", handler.ListByCategory)
		group.GET("/related/:id", handler.Related)
		group.PATCH("/update-post/:id", requireAuth, handler.Update)
		group.GET("/:id", handler.Get)
		group.DELETE("/:id", requireAuth, handler.Delete)

		group.POST("/:id/like", handler.Like)
		group.POST("/:id/view", handler.View)
		group.POST("/:id/share", handler.Share)
		group.POST("/:id/read-time", handler.ReadTime)
	}
}
