package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const cookieName = "session_token"

// TokenFromRequest reads the bearer token from the Authorization header,
// falling back to the session cookie.
func TokenFromRequest(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if tok, err := c.Cookie(cookieName); err == nil {
		return tok
	}
	return ""
}

// RequireUser rejects the request with 401 unless a valid session is
// presented, and stores user_id / user_name in the gin context for handlers.
func RequireUser(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := svc.Resolve(c.Request.Context(), TokenFromRequest(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set("user_id", id.UserID)
		c.Set("user_name", id.Name)
		c.Next()
	}
}
