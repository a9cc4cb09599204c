package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS lets the browser UI call the service. An empty origin list allows any origin.
func (m Middleware) CORS() gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(m.allowedOrigins))
	for _, o := range m.allowedOrigins {
		allowed[o] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if _, ok := allowed[origin]; ok || len(allowed) == 0 {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
				c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
				c.Header("Access-Control-Allow-Headers", "Content-Type, "+UserIDHeader+", "+RequestIDHeader)
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
