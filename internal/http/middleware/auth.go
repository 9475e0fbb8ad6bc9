package middleware

import (
	"strings"

	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key under which the authenticated user id
// is stored.
const UserIDKey = "user_id"

// Identity resolves the bearer token from the Authorization header, if
// present, and stores the verified user id in the context. It never
// aborts the request: a missing or invalid token simply leaves the
// context anonymous, and each protected handler enforces authentication
// itself. Public endpoints run through it unaffected.
func Identity(tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if userID, err := tokens.Verify(token); err == nil {
				c.Set(UserIDKey, userID)
			}
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if auth == "" {
		return ""
	}

	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return parts[1]
}
