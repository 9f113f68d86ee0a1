package auth

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inkwell-app/inkwell/internal/config"
	"github.com/inkwell-app/inkwell/internal/middleware"
	"github.com/inkwell-app/inkwell/internal/pkg/ratelimit"
	"github.com/inkwell-app/inkwell/internal/pkg/token"
)

// RegisterRoutes wires the auth feature and returns its repository for
// cross-feature use.
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) *Repository {
	repo := NewRepository(db)
	handler := NewHandler(repo, cfg)

	requireAuth := middleware.RequireAuth(cfg.JWTSecret)
	requireAdmin := middleware.RequireRole(token.RoleAdmin)

	// Credential endpoints are brute-force targets; keep them rate limited.
	credLimiter := ratelimit.New(10, time.Minute)

	auth := router.Group("/auth")
	{
		auth.POST("/register", ratelimit.Middleware(credLimiter), handler.Register)
		auth.POST("/login", ratelimit.Middleware(credLimiter), handler.Login)
		auth.POST("/logout", requireAuth, handler.Logout)

		auth.GET("/login-tracking", requireAuth, requireAdmin, handler.LoginTracking)

		users := auth.Group("/users", requireAuth)
		{
			users.GET("", requireAdmin, handler.ListUsers)
			users.GET("/:id", handler.GetUser)
			users.PUT("/:id", requireAdmin, handler.UpdateUser)
			users.DELETE("/:id", requireAdmin, handler.DeleteUser)
		}
	}

	return repo
}
