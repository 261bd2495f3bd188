package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	domainerrors "sdp-site.backend/internal/domain/errors"
)

func runWith(t *testing.T, fn func(c *gin.Context)) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)
	return w
}

func TestSuccess(t *testing.T) {
	w := runWith(t, func(c *gin.Context) {
		Success(c, http.StatusCreated, gin.H{"id": 1})
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.JSONEq(t, `{"id":1}`, w.Body.String())
}

func TestErrorAppError(t *testing.T) {
	w := runWith(t, func(c *gin.Context) {
		Error(c, domainerrors.NotFound("event not found"))
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"error":"event not found"}`, w.Body.String())
}

func TestErrorSentinels(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{domainerrors.ErrNotFound, http.StatusNotFound},
		{domainerrors.ErrInvalidInput, http.StatusBadRequest},
		{domainerrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{domainerrors.ErrUnauthorized, http.StatusUnauthorized},
		{domainerrors.ErrForbidden, http.StatusForbidden},
		{domainerrors.ErrAlreadyExists, http.StatusConflict},
	}
	for _, tc := range cases {
		w := runWith(t, func(c *gin.Context) {
			Error(c, tc.err)
		})
		require.Equal(t, tc.status, w.Code, tc.err.Error())
	}
}

func TestErrorUnknownIsOpaque500(t *testing.T) {
	w := runWith(t, func(c *gin.Context) {
		Error(c, errors.New("pq: connection refused"))
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	require.NotContains(t, w.Body.String(), "pq:")
}
