package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "sdp-site.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response as {"error": message} with the status the
// error carries. Sentinel domain errors get a sensible default status;
// anything else is a 500 with a generic message.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{"error": appErr.Message})
		return
	}

	status, message := mapSentinel(err)
	c.JSON(status, gin.H{"error": message})
}

func mapSentinel(err error) (int, string) {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, domainerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, domainerrors.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return http.StatusConflict, "resource already exists"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
