package subscribers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-app/inkwell/internal/pkg/response"
	"github.com/inkwell-app/inkwell/internal/pkg/validator"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Subscribe adds an email to the newsletter list.
func (h *Handler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validator.IsValidEmail(email) {
		response.BadRequest(c, "invalid email address", "VALIDATION_FAILED")
		return
	}

	sub := &Subscriber{Email: email}
	if err := h.repo.Create(c.Request.Context(), sub); err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, sub)
}

// List returns every subscriber. Admin only.
func (h *Handler) List(c *gin.Context) {
	subs, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, subs)
}

// Delete removes a subscriber. Admin only.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
