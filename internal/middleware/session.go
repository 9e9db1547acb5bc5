package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SignInPath is where unauthenticated dashboard visitors are sent.
const SignInPath = "/auth/sign-in"

// RequireSessionCookie protects the dashboard prefix: a request without a
// recognizable session cookie is redirected to sign-in before any handler
// logic. Only the cookie's presence is checked here; handlers still
// resolve the user properly.
func RequireSessionCookie() gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, cookie := range c.Request.Cookies() {
			if strings.Contains(cookie.Name, "auth-token") {
				c.Next()
				return
			}
		}
		c.Redirect(http.StatusFound, SignInPath)
		c.Abort()
	}
}
