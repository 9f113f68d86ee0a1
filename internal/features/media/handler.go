package media

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/inkwell-app/inkwell/internal/config"
	"github.com/inkwell-app/inkwell/internal/pkg/response"
	"github.com/inkwell-app/inkwell/internal/pkg/upload"
)

type Handler struct {
	repo *Repository
	cfg  *config.Config
	log  *logrus.Logger
}

func NewHandler(repo *Repository, cfg *config.Config, log *logrus.Logger) *Handler {
	return &Handler{repo: repo, cfg: cfg, log: log}
}

// UploadCover saves an uploaded cover image to disk and records it.
func (h *Handler) UploadCover(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "image file is required", "MISSING_FILE")
		return
	}

	path, err := upload.SaveImage(header, filepath.Join(h.cfg.UploadDir, "covers"))
	if err != nil {
		response.BadRequest(c, err.Error(), "INVALID_FILE")
		return
	}

	cover := &CoverImage{Path: path}
	if err := h.repo.CreateCover(c.Request.Context(), cover); err != nil {
		// The record is the source of truth; remove the orphaned file.
		if rmErr := upload.Remove(path); rmErr != nil {
			h.log.WithError(rmErr).WithField("path", path).Warn("failed to remove orphaned upload")
		}
		response.FromError(c, err)
		return
	}

	response.Created(c, cover)
}

// ListCovers returns all stored cover images.
func (h *Handler) ListCovers(c *gin.Context) {
	covers, err := h.repo.ListCovers(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, covers)
}

// DeleteCover removes the record and the file. Admin only.
func (h *Handler) DeleteCover(c *gin.Context) {
	cover, err := h.repo.DeleteCover(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	if err := upload.Remove(cover.Path); err != nil {
		h.log.WithError(err).WithField("path", cover.Path).Warn("cover record deleted but file removal failed")
	}

	response.Success(c, gin.H{"deleted": true})
}

// CreateVideo records an embedded video.
func (h *Handler) CreateVideo(c *gin.Context) {
	var req CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "title and a valid url are required", "VALIDATION_FAILED")
		return
	}

	video := &Video{Title: req.Title, URL: req.URL}
	if err := h.repo.CreateVideo(c.Request.Context(), video); err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, video)
}

// ListVideos returns all videos.
func (h *Handler) ListVideos(c *gin.Context) {
	videos, err := h.repo.ListVideos(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, videos)
}

// DeleteVideo removes a video record. Admin only.
func (h *Handler) DeleteVideo(c *gin.Context) {
	if err := h.repo.DeleteVideo(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
