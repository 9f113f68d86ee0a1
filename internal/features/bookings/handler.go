package bookings

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

// Create stores a call-booking request.
func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validator.IsValidEmail(email) {
		response.BadRequest(c, "invalid email address", "VALIDATION_FAILED")
		return
	}
	if req.Phone != "" && !validator.IsValidPhone(req.Phone) {
		response.BadRequest(c, "invalid phone number", "VALIDATION_FAILED")
		return
	}

	booking := &Booking{
		Name:     req.Name,
		Email:    email,
		Phone:    req.Phone,
		DateTime: req.DateTime,
		Message:  req.Message,
	}

	if err := h.repo.Create(c.Request.Context(), booking); err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, booking)
}

// List returns every booking. Admin only.
func (h *Handler) List(c *gin.Context) {
	bookings, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, bookings)
}

// Delete removes a booking. Admin only.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
