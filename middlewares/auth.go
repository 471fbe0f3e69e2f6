package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"chat-app/services"
)

// UserIDKey is the gin context key under which the middleware stores the
// authenticated user id.
const UserIDKey = "user_id"

// TokenAuthMiddleware validates the bearer token and injects the token's user
// id into the request context. Identity is derived from the verified token
// only; a client-supplied user-id header is never consulted.
func TokenAuthMiddleware(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied. No token provided."})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied. No token provided."})
			return
		}

		userID, err := services.GetUserIDFromToken(parts[1], jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Invalid or expired token."})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
