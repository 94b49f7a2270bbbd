package handler

import (
	"net/http"
	"time"

	_ "bbqbuddy/backend/docs" // registers the swagger spec
	"bbqbuddy/backend/internal/auth"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter builds the engine with every API route. profiles backs the
// self-healing profile check on authenticated routes.
func SetupRouter(h *Handler, profiles auth.ProfileEnsurer, origins []string) *gin.Engine {
	router := gin.Default()

	if len(origins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	apiV1 := router.Group("/api/v1")

	// Readable by anyone; a valid token personalises the response.
	public := apiV1.Group("")
	public.Use(auth.OptionalAuthMiddleware())
	{
		public.GET("/users/:id", h.GetUserProfile)
		public.GET("/users/:id/sessions", h.GetUserSessions)
		public.GET("/users/:id/followers", h.GetFollowers)
		public.GET("/sessions/:id", h.GetSession)
		public.GET("/sessions/:id/yummies", h.GetSessionYummies)
	}

	private := apiV1.Group("")
	private.Use(auth.AuthMiddleware(), auth.ProfileMiddleware(profiles))
	{
		private.GET("/users", h.SearchUsers)
		private.GET("/users/me/following", h.GetMyFollowing)
		private.GET("/users/me/statistics", h.GetMyStatistics)
		private.POST("/users/:id/follow", h.FollowUser)
		private.DELETE("/users/:id/follow", h.UnfollowUser)

		private.GET("/sessions/mine", h.GetMySessions)
		private.POST("/sessions", h.CreateSession)
		private.PUT("/sessions/:id", h.UpdateSession)
		private.DELETE("/sessions/:id", h.DeleteSession)
		private.POST("/sessions/:id/yummy", h.YummySession)
		private.DELETE("/sessions/:id/yummy", h.UnyummySession)

		private.POST("/profile/onboarding", h.CompleteOnboarding)
		private.PUT("/profile/avatar", h.UploadAvatar)
		private.DELETE("/profile/avatar", h.DeleteAvatar)
	}

	return router
}
