package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/volatiletech/null/v8"

	domainerrors "sdp-site.backend/internal/domain/errors"
	"sdp-site.backend/internal/interfaces/http/response"
)

// FallbackHeader marks a listing served from the fixed fallback records
// instead of the store.
const FallbackHeader = "X-Fallback-Data"

// parseIDParam parses the :id path parameter. On a non-numeric id it writes
// a 400 response and returns false.
func parseIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.Error(c, domainerrors.BadRequest("invalid id"))
		return 0, false
	}
	return uint(id), true
}

// nullString maps an empty optional form value to JSON null instead of "".
func nullString(s string) null.String {
	return null.NewString(s, s != "")
}
