package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inkwell-app/inkwell/internal/config"
	"github.com/inkwell-app/inkwell/internal/features/ads"
	"github.com/inkwell-app/inkwell/internal/features/analytics"
	"github.com/inkwell-app/inkwell/internal/features/auth"
	"github.com/inkwell-app/inkwell/internal/features/blogs"
	"github.com/inkwell-app/inkwell/internal/features/bookings"
	"github.com/inkwell-app/inkwell/internal/features/comments"
	"github.com/inkwell-app/inkwell/internal/features/media"
	"github.com/inkwell-app/inkwell/internal/features/subscribers"
)

// commentServiceAdapter exposes the comment feature to the blog feature
// without creating an import cycle between the two packages.
type commentServiceAdapter struct {
	service *comments.Service
}

func (a *commentServiceAdapter) ListForPost(ctx context.Context, postID primitive.ObjectID) ([]blogs.PostComment, error) {
	views, err := a.service.ListForPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	list := make([]blogs.PostComment, 0, len(views))
	for _, v := range views {
		list = append(list, blogs.PostComment{
			ID:        v.ID,
			Text:      v.Text,
			Username:  v.Username,
			Email:     v.Email,
			CreatedAt: v.CreatedAt,
		})
	}
	return list, nil
}

func (a *commentServiceAdapter) DeleteForPost(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	return a.service.DeleteForPost(ctx, postID)
}

// SetupRoutes wires every feature under /api.
func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config, log *logrus.Logger) {
	api := router.Group("/api")

	// Repositories shared across features are built here; the blog and
	// comment features reference each other through narrow interfaces.
	authRepo := auth.RegisterRoutes(api, db, cfg)

	blogsRepo := blogs.NewRepository(db)
	commentsRepo := comments.NewRepository(db)
	commentsService := comments.NewService(commentsRepo, authRepo)

	blogs.RegisterRoutes(api, blogsRepo, cfg, &commentServiceAdapter{service: commentsService}, log)
	comments.RegisterRoutes(api, commentsRepo, commentsService, cfg, blogsRepo, log)

	analytics.RegisterRoutes(api, cfg, blogsRepo)
	ads.RegisterRoutes(api, db, cfg)
	subscribers.RegisterRoutes(api, db, cfg)
	bookings.RegisterRoutes(api, db, cfg)
	media.RegisterRoutes(api, db, cfg, log)
}
