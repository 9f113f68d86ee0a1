package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-app/inkwell/internal/pkg/response"
	"github.com/inkwell-app/inkwell/internal/pkg/token"
)

const identityKey = "identity"

// CookieName is the http-only cookie carrying the session token.
const CookieName = "token"

// Identity is the authenticated caller attached to the request context.
// Every protected route reads identity from here and nowhere else.
type Identity struct {
	UserID string
	Role   token.Role
}

// IdentityFrom returns the authenticated identity, if any.
func IdentityFrom(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

// extractToken pulls the session token from the Authorization header or,
// failing that, the session cookie.
func extractToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" && parts[1] != "" {
			return parts[1]
		}
	}

	cookie, err := c.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie
}

// RequireAuth rejects requests without a valid session token.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := extractToken(c)
		if raw == "" {
			response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
			c.Abort()
			return
		}

		claims, err := token.Validate(raw, secret)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token", "INVALID_TOKEN")
			c.Abort()
			return
		}

		c.Set(identityKey, Identity{UserID: claims.UserID, Role: claims.Role})
		c.Next()
	}
}

// OptionalAuth attaches an identity when a valid token is present but never
// rejects the request.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := extractToken(c)
		if raw != "" {
			if claims, err := token.Validate(raw, secret); err == nil {
				c.Set(identityKey, Identity{UserID: claims.UserID, Role: claims.Role})
			}
		}
		c.Next()
	}
}

// RequireRole gates a route to callers holding the expected role. It must run
// after RequireAuth; a missing identity is a 401, a wrong role a 403.
func RequireRole(expected token.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
			c.Abort()
			return
		}

		if id.Role != expected {
			response.Forbidden(c, "Insufficient permissions", "FORBIDDEN")
			c.Abort()
			return
		}

		c.Next()
	}
}
