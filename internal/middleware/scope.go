package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"enrollment-assistant/internal/model"
)

// UserIDHeader carries the caller identity. Authentication is mocked, so the
// value is trusted as sent.
const UserIDHeader = "X-User-ID"

// Scope attaches the caller scope to the request context.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" {
			userID = model.AnonymousUserID
		}

		ctx := model.SetScopeToContext(c.Request.Context(), model.Scope{UserID: userID})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
