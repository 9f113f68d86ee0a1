package analytics

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-app/inkwell/internal/features/blogs"
	"github.com/inkwell-app/inkwell/internal/pkg/response"
)

// PostSource supplies the posts the reports aggregate over.
type PostSource interface {
	ListAll(ctx context.Context) ([]blogs.Post, error)
}

type Handler struct {
	posts PostSource
}

func NewHandler(posts PostSource) *Handler {
	return &Handler{posts: posts}
}

func (h *Handler) windowedPosts(c *gin.Context) ([]blogs.Post, bool) {
	posts, err := h.posts.ListAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return nil, false
	}

	days, _ := strconv.Atoi(c.Query("days"))
	return FilterWindow(posts, days, time.Now()), true
}

// Overview returns the headline totals and rates.
func (h *Handler) Overview(c *gin.Context) {
	posts, ok := h.windowedPosts(c)
	if !ok {
		return
	}
	response.Success(c, ComputeOverview(posts))
}

// Top ranks posts by a counter field.
func (h *Handler) Top(c *gin.Context) {
	field := c.DefaultQuery("field", "views")
	if !ValidTopField(field) {
		response.BadRequest(c, "field must be one of views, likes, shares, commentCount, readCount", "VALIDATION_FAILED")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	posts, ok := h.windowedPosts(c)
	if !ok {
		return
	}

	ranked, err := TopBy(posts, field, limit)
	if err != nil {
		response.BadRequest(c, err.Error(), "VALIDATION_FAILED")
		return
	}
	response.Success(c, ranked)
}

// Categories returns per-category post and view counts.
func (h *Handler) Categories(c *gin.Context) {
	posts, ok := h.windowedPosts(c)
	if !ok {
		return
	}
	response.Success(c, CategoryStats(posts))
}

// PostingFrequency returns month and weekday histograms of post creation.
func (h *Handler) PostingFrequency(c *gin.Context) {
	posts, ok := h.windowedPosts(c)
	if !ok {
		return
	}
	response.Success(c, Frequency(posts))
}

// StorageProjection returns the capacity estimate. The response is flagged
// approximate because it rests on a fixed average post size.
func (h *Handler) StorageProjection(c *gin.Context) {
	posts, err := h.posts.ListAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, Project(posts, time.Now()))
}
