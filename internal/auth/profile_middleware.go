package auth

import (
	"context"

	"bbqbuddy/backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ProfileEnsurer creates a missing profile row for a user.
type ProfileEnsurer interface {
	EnsureProfile(ctx context.Context, userID string) error
}

// ProfileMiddleware makes sure the authenticated user has a profile row.
// It must be used AFTER AuthMiddleware or OptionalAuthMiddleware. Failures are
// logged and the request continues.
func ProfileMiddleware(profiles ProfileEnsurer) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := ViewerID(c)
		if userID == "" {
			c.Next()
			return
		}

		if err := profiles.EnsureProfile(c.Request.Context(), userID); err != nil {
			logger.Log.WithError(err).WithField("user_id", userID).Warn("Could not verify profile existence")
		}
		c.Next()
	}
}
