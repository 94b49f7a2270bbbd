package handler

import (
	"net/http"

	"bbqbuddy/backend/internal/auth"
	"bbqbuddy/backend/internal/logger"
	"bbqbuddy/backend/internal/social"

	"github.com/gin-gonic/gin"
)

// YummySession godoc
// @Summary      Yummy a session
// @Tags         yummies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Session ID"
// @Success      201  {object}  MessageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Own session or already yummied"
// @Router       /sessions/{id}/yummy [post]
func (h *Handler) YummySession(c *gin.Context) {
	if err := h.Social.Yummy(c.Request.Context(), auth.ViewerID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Yummy added"})
}

// UnyummySession godoc
// @Summary      Remove a yummy
// @Tags         yummies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  MessageResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /sessions/{id}/yummy [delete]
func (h *Handler) UnyummySession(c *gin.Context) {
	if err := h.Social.Unyummy(c.Request.Context(), auth.ViewerID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Yummy removed"})
}

// GetSessionYummies godoc
// @Summary      List who yummied a session
// @Tags         yummies
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {array}   social.UserItem
// @Router       /sessions/{id}/yummies [get]
func (h *Handler) GetSessionYummies(c *gin.Context) {
	items, err := h.Social.Yummies(c.Request.Context(), c.Param("id"))
	if err != nil {
		logger.Log.WithError(err).WithField("session_id", c.Param("id")).Error("Error fetching yummies")
		items = []social.UserItem{}
	}
	c.JSON(http.StatusOK, items)
}
