package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell-app/inkwell/internal/config"
	"github.com/inkwell-app/inkwell/internal/middleware"
	"github.com/inkwell-app/inkwell/internal/pkg/response"
	"github.com/inkwell-app/inkwell/internal/pkg/token"
	"github.com/inkwell-app/inkwell/internal/pkg/validator"
	apperrors "github.com/inkwell-app/inkwell/pkg/errors"
)

type Handler struct {
	repo *Repository
	cfg  *config.Config
}

func NewHandler(repo *Repository, cfg *config.Config) *Handler {
	return &Handler{repo: repo, cfg: cfg}
}

// Register creates a new account. The password is hashed exactly once here;
// the stored document never sees the plaintext.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	birthdate, err := ValidateRegister(&req)
	if err != nil {
		response.BadRequest(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.InternalServerError(c, "Failed to process password")
		return
	}

	user := &User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hashed),
		Birthdate: birthdate,
		Gender:    req.Gender,
		Role:      token.RoleUser,
	}

	if err := h.repo.Create(c.Request.Context(), user); err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, AuthResponse{User: user.Summary()})
}

// Login verifies credentials, records the login and opens a session. The
// token is returned in the body and set as an http-only cookie.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	user, err := h.repo.FindByEmail(c.Request.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "No account with that email", "USER_NOT_FOUND")
			return
		}
		response.FromError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		response.Unauthorized(c, "Invalid email or password", "INVALID_CREDENTIALS")
		return
	}

	record := LoginRecord{
		Timestamp: time.Now(),
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
	if err := h.repo.RecordLogin(c.Request.Context(), user.ID, record); err != nil {
		response.FromError(c, err)
		return
	}

	expiry := time.Duration(h.cfg.JWTExpireHours) * time.Hour
	signed, err := token.Generate(user.ID.Hex(), user.Role, h.cfg.JWTSecret, expiry)
	if err != nil {
		response.InternalServerError(c, "Failed to generate token")
		return
	}

	c.SetCookie(middleware.CookieName, signed, int(expiry.Seconds()), "/", "", false, true)

	response.Success(c, AuthResponse{Token: signed, User: user.Summary()})
}

// Logout closes the caller's most recent open session. Logging out twice in
// a row is a no-op on the second call.
func (h *Handler) Logout(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	closed, err := h.repo.CloseLatestSession(c.Request.Context(), id.UserID, time.Now())
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.SetCookie(middleware.CookieName, "", -1, "/", "", false, true)

	response.Success(c, gin.H{"sessionClosed": closed})
}

// ListUsers returns every account. Admin only.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	summaries := make([]*UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summary())
	}
	response.Success(c, summaries)
}

// GetUser returns one account. Admins can fetch anyone, users only themselves.
func (h *Handler) GetUser(c *gin.Context) {
	id, _ := middleware.IdentityFrom(c)
	userID := c.Param("id")

	if id.Role != token.RoleAdmin && id.UserID != userID {
		response.Forbidden(c, "Insufficient permissions", "FORBIDDEN")
		return
	}

	user, err := h.repo.FindByID(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, user.Summary())
}

// UpdateUser applies a partial update. A new password is re-hashed; updates
// that leave the password out never touch the stored hash.
func (h *Handler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	updates := bson.M{}
	if req.Username != "" {
		if validator.HasWhitespace(req.Username) {
			response.BadRequest(c, "username must not contain whitespace", "VALIDATION_FAILED")
			return
		}
		updates["username"] = req.Username
	}
	if req.Email != "" {
		email := strings.ToLower(strings.TrimSpace(req.Email))
		if !validator.IsValidEmail(email) {
			response.BadRequest(c, "invalid email address", "VALIDATION_FAILED")
			return
		}
		updates["email"] = email
	}
	if req.Gender != "" {
		if err := validateGender(req.Gender); err != nil {
			response.BadRequest(c, err.Error(), "VALIDATION_FAILED")
			return
		}
		updates["gender"] = req.Gender
	}
	if req.Role != "" {
		updates["role"] = token.ParseRole(req.Role)
	}
	if req.Password != "" {
		if len(req.Password) < minPasswordLength {
			response.BadRequest(c, "password must be at least 8 characters", "VALIDATION_FAILED")
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			response.InternalServerError(c, "Failed to process password")
			return
		}
		updates["password"] = string(hashed)
	}

	if len(updates) == 0 {
		response.BadRequest(c, "No fields to update", "VALIDATION_FAILED")
		return
	}

	if err := h.repo.Update(c.Request.Context(), c.Param("id"), updates); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"updated": true})
}

// DeleteUser removes an account. Admin only.
func (h *Handler) DeleteUser(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// LoginTracking returns per-user login history and sessions. Admin only.
func (h *Handler) LoginTracking(c *gin.Context) {
	tracking, err := h.repo.ListLoginTracking(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, tracking)
}
