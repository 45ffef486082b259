package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// sharedSecretHeader is the header carrying the webhook secret.
const sharedSecretHeader = "x-secret"

// SharedSecretMiddleware guards an endpoint with a configured shared secret.
// The comparison is constant time. No detail about the expected secret leaks
// on mismatch.
func SharedSecretMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(sharedSecretHeader)
		if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			GetLoggerFromCtx(c.Request.Context()).Warn("Shared secret mismatch")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid webhook secret"})
			return
		}
		c.Next()
	}
}
