package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"sdp-site.backend/pkg/jwt"
)

const (
	// SessionCookieName is the cookie carrying the admin session id
	SessionCookieName = "session_id"
	// UserIDKey is the context key for user ID
	UserIDKey = "userId"
	// UserEmailKey is the context key for user email
	UserEmailKey = "userEmail"
	// UserRoleKey is the context key for user role
	UserRoleKey = "userRole"
)

// SessionResolver maps a session cookie value to JWT claims.
type SessionResolver interface {
	ResolveSession(ctx context.Context, sessionID string) (*jwt.Claims, error)
}

// SessionAuthMiddleware authenticates requests via the session cookie and
// aborts with 401 when no valid session is present.
func SessionAuthMiddleware(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := resolveFromCookie(c, resolver)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
			})
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalSessionMiddleware resolves the session when present but never
// aborts. Handlers that serve both public and admin views read the role from
// context to decide what to return.
func OptionalSessionMiddleware(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := resolveFromCookie(c, resolver); ok {
			setClaims(c, claims)
		}
		c.Next()
	}
}

// RequireAdmin aborts with 403 unless the session role is admin. Must run
// after SessionAuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := GetUserRole(c)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
			})
			return
		}
		if role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "admin access required",
			})
			return
		}
		c.Next()
	}
}

func resolveFromCookie(c *gin.Context, resolver SessionResolver) (*jwt.Claims, bool) {
	sessionID, err := c.Cookie(SessionCookieName)
	if err != nil || sessionID == "" {
		return nil, false
	}
	claims, err := resolver.ResolveSession(c.Request.Context(), sessionID)
	if err != nil {
		return nil, false
	}
	return claims, true
}

func setClaims(c *gin.Context, claims *jwt.Claims) {
	c.Set(UserIDKey, claims.UserID)
	c.Set(UserEmailKey, claims.Email)
	c.Set(UserRoleKey, claims.Role)
}

// GetUserID gets the user ID from context
func GetUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	return userID.(uint), true
}

// GetUserEmail gets the user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(UserEmailKey)
	if !exists {
		return "", false
	}
	return email.(string), true
}

// GetUserRole gets the user role from context
func GetUserRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(UserRoleKey)
	if !exists {
		return "", false
	}
	return role.(string), true
}

// IsAdmin reports whether the current request carries an admin session.
func IsAdmin(c *gin.Context) bool {
	role, exists := GetUserRole(c)
	return exists && role == "admin"
}
