package handler

import (
	"fmt"
	"net/http"
	"strings"

	"bbqbuddy/backend/internal/auth"
	"bbqbuddy/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// OnboardingInput carries the username chosen on first sign-in.
type OnboardingInput struct {
	Username string `json:"username" binding:"required" example:"pitmaster"`
}

// AvatarResponse returns the public URL of a new avatar.
type AvatarResponse struct {
	AvatarURL string `json:"avatar_url"`
}

// CompleteOnboarding godoc
// @Summary      Complete onboarding
// @Description  Sets the authenticated user's username, creating the profile if needed.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body OnboardingInput true "Username"
// @Success      200  {object}  models.Profile
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Username taken"
// @Router       /profile/onboarding [post]
func (h *Handler) CompleteOnboarding(c *gin.Context) {
	var input OnboardingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.Social.CompleteOnboarding(c.Request.Context(), auth.ViewerID(c), input.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UploadAvatar godoc
// @Summary      Upload an avatar
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        avatar  formData  file  true  "Image"
// @Success      200  {object}  AvatarResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /profile/avatar [put]
func (h *Handler) UploadAvatar(c *gin.Context) {
	fh, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "An avatar file is required"})
		return
	}

	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Avatar must be an image"})
		return
	}
	if limit := h.maxImageBytes(); fh.Size > limit {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Avatar exceeds %dMB limit", limit/(1024*1024))})
		return
	}

	file, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read avatar"})
		return
	}
	defer file.Close()

	url, err := h.Social.SetAvatar(c.Request.Context(), auth.ViewerID(c), storage.File{
		Filename:    fh.Filename,
		ContentType: contentType,
		Size:        fh.Size,
		Body:        file,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, AvatarResponse{AvatarURL: url})
}

// DeleteAvatar godoc
// @Summary      Delete my avatar
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  MessageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /profile/avatar [delete]
func (h *Handler) DeleteAvatar(c *gin.Context) {
	if err := h.Social.DeleteAvatar(c.Request.Context(), auth.ViewerID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Avatar removed"})
}

func (h *Handler) maxImageBytes() int64 {
	if h.MaxImageBytes > 0 {
		return h.MaxImageBytes
	}
	return 10 * 1024 * 1024
}
