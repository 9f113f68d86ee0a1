package comments

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/inkwell-app/inkwell/internal/config"
	"github.com/inkwell-app/inkwell/internal/middleware"
)

// RegisterRoutes wires the comment feature. Repository and service are
// created by the caller because the blog feature shares them.
func RegisterRoutes(router *gin.RouterGroup, repo *Repository, service *Service, cfg *config.Config, posts PostService, log *logrus.Logger) {
	handler := NewHandler(repo, service, posts, log)

	group := router.Group("/comments")
	{
		// Comments may be anonymous, so auth is optional on create.
		group.POST("/post-comment", middleware.OptionalAuth(cfg.JWTSecret), handler.Create)
		group.GET("/post/:postId", handler.ListByPost)
		group.GET("/total-comments", handler.TotalComments)
	}
}
