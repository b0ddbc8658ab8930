package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SwaggerGate returns a middleware that hides the documentation
// endpoint when it is disabled in configuration
func SwaggerGate(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "API documentation is not available",
				},
			})
			return
		}
		c.Next()
	}
}
