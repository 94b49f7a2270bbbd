package auth

import (
	"net/http"
	"strings"

	"bbqbuddy/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// ContextKey is where the middlewares store the authenticated user ID.
const ContextKey = "userID"

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		userID, err := jwt.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(ContextKey, userID)
		c.Next()
	}
}

// ViewerID returns the authenticated user ID, or "" for anonymous requests.
func ViewerID(c *gin.Context) string {
	return c.GetString(ContextKey)
}

func bearerToken(c *gin.Context) (string, bool) {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
