package response

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "github.com/inkwell-app/inkwell/pkg/errors"
)

// FromError maps an application error onto the HTTP taxonomy. Unknown errors
// become 500s with a generic message so internals never leak to clients.
func FromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		NotFound(c, err.Error(), "NOT_FOUND")
	case errors.Is(err, apperrors.ErrDuplicate):
		BadRequest(c, err.Error(), "DUPLICATE")
	case errors.Is(err, apperrors.ErrValidation):
		BadRequest(c, err.Error(), "VALIDATION_FAILED")
	case errors.Is(err, apperrors.ErrUnauthorized):
		Unauthorized(c, err.Error(), "UNAUTHORIZED")
	case errors.Is(err, apperrors.ErrForbidden):
		Forbidden(c, err.Error(), "FORBIDDEN")
	default:
		InternalServerError(c, "Something went wrong", "INTERNAL")
	}
}
