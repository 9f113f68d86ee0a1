package ads

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-app/inkwell/internal/config"
	"github.com/inkwell-app/inkwell/internal/pkg/response"
	"github.com/inkwell-app/inkwell/internal/pkg/upload"
	"github.com/inkwell-app/inkwell/internal/pkg/validator"
)

type Handler struct {
	repo *Repository
	cfg  *config.Config
}

func NewHandler(repo *Repository, cfg *config.Config) *Handler {
	return &Handler{repo: repo, cfg: cfg}
}

// GetConfig returns the current slot configuration.
func (h *Handler) GetConfig(c *gin.Context) {
	cfg, err := h.repo.GetConfig(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, cfg)
}

// ReplaceConfig validates every slot name against the closed set and swaps
// the configuration in one versioned write.
func (h *Handler) ReplaceConfig(c *gin.Context) {
	var req ReplaceConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	for slot := range req.Slots {
		if !ValidSlot(slot) {
			response.BadRequest(c, fmt.Sprintf("unknown ad slot %q", slot), "VALIDATION_FAILED")
			return
		}
	}

	cfg, err := h.repo.ReplaceConfig(c.Request.Context(), req.Slots)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, cfg)
}

// UploadSlotImage stores an ad creative on disk and points the slot at it.
func (h *Handler) UploadSlotImage(c *gin.Context) {
	slot := Slot(c.Param("slot"))
	if !ValidSlot(slot) {
		response.BadRequest(c, fmt.Sprintf("unknown ad slot %q", slot), "VALIDATION_FAILED")
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "image file is required", "MISSING_FILE")
		return
	}

	path, err := upload.SaveImage(header, filepath.Join(h.cfg.UploadDir, "ads"))
	if err != nil {
		response.BadRequest(c, err.Error(), "INVALID_FILE")
		return
	}

	cfg, err := h.repo.SetSlotImage(c.Request.Context(), slot, path)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, cfg)
}

// CreateInquiry stores an advertising contact request.
func (h *Handler) CreateInquiry(c *gin.Context) {
	var req CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validator.IsValidEmail(email) {
		response.BadRequest(c, "invalid email address", "VALIDATION_FAILED")
		return
	}
	if !ValidInquiryType(req.AdType) {
		response.BadRequest(c, "adType must be one of banner, sidebar, sponsored, newsletter", "VALIDATION_FAILED")
		return
	}

	inquiry := &Inquiry{
		Name:    req.Name,
		Email:   email,
		Company: req.Company,
		AdType:  req.AdType,
		Message: req.Message,
	}

	if err := h.repo.CreateInquiry(c.Request.Context(), inquiry); err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, inquiry)
}

// ListInquiries returns all inquiries. Admin only.
func (h *Handler) ListInquiries(c *gin.Context) {
	inquiries, err := h.repo.ListInquiries(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, inquiries)
}
