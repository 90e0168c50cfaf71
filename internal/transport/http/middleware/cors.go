package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS stamps Access-Control-Allow-Origin on every response and answers
// OPTIONS preflight directly: status 200, empty body, fixed header set.
// Runs first so preflight and 405 responses carry the headers too.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")

		if c.Request.Method == http.MethodOptions {
			c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type")
			c.Header("Access-Control-Max-Age", "86400")
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
