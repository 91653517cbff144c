package router

import (
	"github.com/gin-gonic/gin"
)

const defaultSession = "default"

// SessionMiddleware resolves which cart a request operates on. The storefront
// sends its session in the X-Session-ID header; clients that send nothing
// share the default session, which keeps the original single-cart behavior.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader("X-Session-ID")
		if sessionID == "" {
			sessionID = defaultSession
		}
		c.Set("sessionID", sessionID)
		c.Next()
	}
}
