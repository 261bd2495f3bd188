package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// AdminLoginPath is the page unauthenticated admins are sent to
	AdminLoginPath = "/admin/login"
	// PublicHomePath is where authenticated non-admins are sent
	PublicHomePath = "/"
)

// AdminPageGuard protects the admin console pages. Requests without a valid
// session are redirected to the login page; sessions without the admin role
// are redirected to the public home. The login page itself is registered
// outside the guarded group and stays reachable either way.
func AdminPageGuard(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := resolveFromCookie(c, resolver)
		if !ok {
			c.Redirect(http.StatusFound, AdminLoginPath)
			c.Abort()
			return
		}
		if claims.Role != "admin" {
			c.Redirect(http.StatusFound, PublicHomePath)
			c.Abort()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}
