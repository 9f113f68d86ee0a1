package blogs

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/inkwell-app/inkwell/internal/middleware"
	"github.com/inkwell-app/inkwell/internal/pkg/response"
)

// CommentService is the slice of the comment feature the blog feature needs:
// listing comments for the detail view and cascading deletes. Wired in the
// routes package to avoid an import cycle.
type CommentService interface {
	ListForPost(ctx context.Context, postID primitive.ObjectID) ([]PostComment, error)
	DeleteForPost(ctx context.Context, postID primitive.ObjectID) (int64, error)
}

// PostStore is the persistence surface the handler works against,
// implemented by Repository.
type PostStore interface {
	Create(ctx context.Context, post *Post) error
	List(ctx context.Context, q ListQuery) ([]Post, error)
	ListByCategory(ctx context.Context, category string) ([]Post, error)
	FindByID(ctx context.Context, id string) (*Post, error)
	Update(ctx context.Context, id string, updates bson.M, unset bson.M) error
	Delete(ctx context.Context, id string) (primitive.ObjectID, error)
	Related(ctx context.Context, post *Post) ([]Post, error)
	IncrementCounter(ctx context.Context, id string, field string, delta int64) error
	AddReadTime(ctx context.Context, id string, seconds int64) error
}

type Handler struct {
	repo     PostStore
	comments CommentService
	log      *logrus.Logger
}

func NewHandler(repo PostStore, comments CommentService, log *logrus.Logger) *Handler {
	return &Handler{repo: repo, comments: comments, log: log}
}

// Create persists a new post authored by the caller.
func (h *Handler) Create(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	if err := ValidateConclusion(req.Conclusion); err != nil {
		response.BadRequest(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	id, _ := middleware.IdentityFrom(c)
	author, err := primitive.ObjectIDFromHex(id.UserID)
	if err != nil {
		response.Unauthorized(c, "Invalid identity", "INVALID_TOKEN")
		return
	}

	post := &Post{
		Title:      req.Title,
		Content:    req.Content,
		Conclusion: req.Conclusion,
		CoverImage: req.CoverImage,
		Category:   req.Category,
		Location:   req.Location,
		Author:     author,
	}

	if err := h.repo.Create(c.Request.Context(), post); err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, post)
}

// List returns posts, newest first, with optional search/category/location filters.
func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid query parameters", "INVALID_QUERY")
		return
	}

	posts, err := h.repo.List(c.Request.Context(), q)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, posts)
}

// Get returns one post together with its comments.
func (h *Handler) Get(c *gin.Context) {
	post, err := h.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	comments, err := h.comments.ListForPost(c.Request.Context(), post.ID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if comments == nil {
		comments = []PostComment{}
	}

	response.Success(c, PostDetail{Post: post, Comments: comments})
}

// ListByCategory returns the posts of one category, newest first.
func (h *Handler) ListByCategory(c *gin.Context) {
	posts, err := h.repo.ListByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, posts)
}

// Update merges partial fields into a post.
func (h *Handler) Update(c *gin.Context) {
	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	updates := bson.M{}
	unset := bson.M{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = req.Content
	}
	if len(req.Conclusion) > 0 {
		// An explicit null clears the conclusion; an object replaces it.
		if bytes.Equal(req.Conclusion, []byte("null")) {
			unset["conclusion"] = ""
		} else {
			var conclusion Conclusion
			if err := json.Unmarshal(req.Conclusion, &conclusion); err != nil {
				response.BadRequest(c, "Invalid conclusion format", "INVALID_JSON")
				return
			}
			if err := ValidateConclusion(&conclusion); err != nil {
				response.BadRequest(c, err.Error(), "VALIDATION_FAILED")
				return
			}
			updates["conclusion"] = &conclusion
		}
	}
	if req.CoverImage != nil {
		updates["coverImage"] = *req.CoverImage
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}

	if len(updates) == 0 && len(unset) == 0 {
		response.BadRequest(c, "No fields to update", "VALIDATION_FAILED")
		return
	}

	if err := h.repo.Update(c.Request.Context(), c.Param("id"), updates, unset); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"updated": true})
}

// Delete removes a post and cascades to its comments. The two steps are not
// transactional; a failed cascade after a successful delete is logged, not
// rolled back.
func (h *Handler) Delete(c *gin.Context) {
	oid, err := h.repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	removed, err := h.comments.DeleteForPost(c.Request.Context(), oid)
	if err != nil {
		h.log.WithError(err).WithField("postId", oid.Hex()).
			Error("post deleted but comment cascade failed")
	}

	response.Success(c, gin.H{"deleted": true, "commentsRemoved": removed})
}

// Related returns posts similar to the given one.
func (h *Handler) Related(c *gin.Context) {
	post, err := h.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	related, err := h.repo.Related(c.Request.Context(), post)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, related)
}

// Like atomically increments the like counter.
func (h *Handler) Like(c *gin.Context) {
	if err := h.repo.IncrementCounter(c.Request.Context(), c.Param("id"), "likes", 1); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"liked": true})
}

// View atomically increments the view counter.
func (h *Handler) View(c *gin.Context) {
	if err := h.repo.IncrementCounter(c.Request.Context(), c.Param("id"), "views", 1); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"viewed": true})
}

// Share atomically increments the share counter.
func (h *Handler) Share(c *gin.Context) {
	if err := h.repo.IncrementCounter(c.Request.Context(), c.Param("id"), "shares", 1); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"shared": true})
}

// ReadTime records a completed read with its duration.
func (h *Handler) ReadTime(c *gin.Context) {
	var req ReadTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "seconds must be a positive number", "VALIDATION_FAILED")
		return
	}

	if err := h.repo.AddReadTime(c.Request.Context(), c.Param("id"), req.Seconds); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"recorded": true})
}
