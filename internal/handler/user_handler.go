package handler

import (
	"net/http"

	"bbqbuddy/backend/internal/auth"
	"bbqbuddy/backend/internal/logger"
	"bbqbuddy/backend/internal/social"

	"github.com/gin-gonic/gin"
)

// SearchUsers godoc
// @Summary      Search users
// @Description  Case-insensitive username search. Queries shorter than two characters return nothing.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  true  "Search term"
// @Success      200  {array}   social.SearchResult
// @Failure      401  {object}  ErrorResponse
// @Router       /users [get]
func (h *Handler) SearchUsers(c *gin.Context) {
	results, err := h.Social.Search(c.Request.Context(), c.Query("q"), auth.ViewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// GetUserProfile godoc
// @Summary      Get a user's profile
// @Description  Profile header with follower counts and the viewer's follow state.
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  social.ProfileWithStats
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [get]
func (h *Handler) GetUserProfile(c *gin.Context) {
	profile, err := h.Social.Profile(c.Request.Context(), c.Param("id"), auth.ViewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetFollowers godoc
// @Summary      List a user's followers
// @Tags         follows
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {array}   social.UserItem
// @Router       /users/{id}/followers [get]
func (h *Handler) GetFollowers(c *gin.Context) {
	items, err := h.Social.Followers(c.Request.Context(), c.Param("id"), auth.ViewerID(c))
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", c.Param("id")).Error("Error fetching followers")
		items = []social.UserItem{}
	}
	c.JSON(http.StatusOK, items)
}

// GetMyFollowing godoc
// @Summary      List the users I follow
// @Tags         follows
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   social.UserItem
// @Failure      401  {object}  ErrorResponse
// @Router       /users/me/following [get]
func (h *Handler) GetMyFollowing(c *gin.Context) {
	items, err := h.Social.Following(c.Request.Context(), auth.ViewerID(c))
	if err != nil {
		logger.Log.WithError(err).Error("Error fetching following")
		items = []social.UserItem{}
	}
	c.JSON(http.StatusOK, items)
}

// FollowUser godoc
// @Summary      Follow a user
// @Tags         follows
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      201  {object}  MessageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Self follow or already following"
// @Router       /users/{id}/follow [post]
func (h *Handler) FollowUser(c *gin.Context) {
	if err := h.Social.Follow(c.Request.Context(), auth.ViewerID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Followed"})
}

// UnfollowUser godoc
// @Summary      Unfollow a user
// @Tags         follows
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  MessageResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /users/{id}/follow [delete]
func (h *Handler) UnfollowUser(c *gin.Context) {
	if err := h.Social.Unfollow(c.Request.Context(), auth.ViewerID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Unfollowed"})
}

// GetMyStatistics godoc
// @Summary      Get my grilling statistics
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  stats.Statistics
// @Failure      401  {object}  ErrorResponse
// @Router       /users/me/statistics [get]
func (h *Handler) GetMyStatistics(c *gin.Context) {
	c.JSON(http.StatusOK, h.Stats.ForUser(c.Request.Context(), auth.ViewerID(c)))
}
