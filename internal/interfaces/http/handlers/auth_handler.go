package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sdp-site.backend/internal/domain/entities"
	domainerrors "sdp-site.backend/internal/domain/errors"
	"sdp-site.backend/internal/interfaces/http/middleware"
	"sdp-site.backend/internal/interfaces/http/response"
	"sdp-site.backend/internal/usecases"
)

// AuthHandler handles admin authentication endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
	sessionTTL  time.Duration
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		sessionTTL:  sessionTTL,
	}
}

// Login handles admin login. Failed attempts always answer with the same
// generic message, whatever part of the credentials was wrong.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	auth, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			response.Error(c, domainerrors.Unauthorized("Invalid credentials"))
			return
		}
		response.Error(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookieName, auth.SessionID, int(h.sessionTTL.Seconds()), "/", "", false, true)

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"user":    auth.User,
	})
}

// Logout closes the current session and clears the cookie. Logging out
// without a session is still a success.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(middleware.SessionCookieName); err == nil && sessionID != "" {
		if err := h.authUsecase.Logout(c.Request.Context(), sessionID); err != nil {
			response.Error(c, err)
			return
		}
	}

	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, gin.H{"success": true})
}

// Me returns the account behind the current session.
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	sessionID, err := c.Cookie(middleware.SessionCookieName)
	if err != nil || sessionID == "" {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	user, err := h.authUsecase.CurrentUser(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUnauthorized) {
			response.Error(c, domainerrors.Unauthorized("authentication required"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}
