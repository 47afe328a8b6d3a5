package middleware

import (
	"github.com/liamintemann/sierra-backend/utils"

	"github.com/gin-gonic/gin"
)

// APIKeyMiddleware rejects requests whose header value is not exactly secret.
// A missing header reads as "" and is rejected the same way.
func APIKeyMiddleware(header, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(header) != secret {
			utils.Unauthorized(c)
			return
		}
		c.Next()
	}
}
