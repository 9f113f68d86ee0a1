package comments

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/inkwell-app/inkwell/internal/middleware"
	"github.com/inkwell-app/inkwell/internal/pkg/response"
)

// PostService is the slice of the blog feature the comment feature needs:
// existence checks and the commentCount side effect. Wired in the routes
// package to avoid an import cycle.
type PostService interface {
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
	IncrementCommentCount(ctx context.Context, id primitive.ObjectID, delta int64) error
}

// CommentStore is the persistence surface the handler works against,
// implemented by Repository.
type CommentStore interface {
	Create(ctx context.Context, comment *Comment) error
	CountAll(ctx context.Context) (int64, error)
}

type Handler struct {
	repo    CommentStore
	service *Service
	posts   PostService
	log     *logrus.Logger
}

func NewHandler(repo CommentStore, service *Service, posts PostService, log *logrus.Logger) *Handler {
	return &Handler{repo: repo, service: service, posts: posts, log: log}
}

// Create stores a comment and then bumps the parent post's commentCount.
// The two writes are sequenced, not transactional: a crash in between leaves
// the counter understated until the next comment lands.
func (h *Handler) Create(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		response.BadRequest(c, "comment text must not be empty", "VALIDATION_FAILED")
		return
	}

	postID, err := primitive.ObjectIDFromHex(req.PostID)
	if err != nil {
		response.BadRequest(c, "invalid post id", "VALIDATION_FAILED")
		return
	}

	exists, err := h.posts.Exists(c.Request.Context(), postID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if !exists {
		response.NotFound(c, "Post not found", "NOT_FOUND")
		return
	}

	comment := &Comment{PostID: postID, Text: text}

	// Anonymous comments are allowed; attach the author only when present.
	if id, ok := middleware.IdentityFrom(c); ok {
		if oid, err := primitive.ObjectIDFromHex(id.UserID); err == nil {
			comment.UserID = &oid
		}
	}

	if err := h.repo.Create(c.Request.Context(), comment); err != nil {
		response.FromError(c, err)
		return
	}

	if err := h.posts.IncrementCommentCount(c.Request.Context(), postID, 1); err != nil {
		h.log.WithError(err).WithField("postId", postID.Hex()).
			Error("comment stored but counter increment failed")
	}

	response.Created(c, comment)
}

// ListByPost returns the comments of one post with authors populated.
func (h *Handler) ListByPost(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("postId"))
	if err != nil {
		response.BadRequest(c, "invalid post id", "VALIDATION_FAILED")
		return
	}

	views, err := h.service.ListForPost(c.Request.Context(), postID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, views)
}

// TotalComments returns the comment count across all posts.
func (h *Handler) TotalComments(c *gin.Context) {
	total, err := h.repo.CountAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"total": total})
}
