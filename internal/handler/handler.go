// Package handler exposes the services over HTTP with gin.
package handler

import (
	"errors"
	"net/http"

	"bbqbuddy/backend/internal/feed"
	"bbqbuddy/backend/internal/logger"
	"bbqbuddy/backend/internal/sessions"
	"bbqbuddy/backend/internal/social"
	"bbqbuddy/backend/internal/stats"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// MessageResponse acknowledges a write that returns no resource.
type MessageResponse struct {
	Message string `json:"message" example:"Session deleted"`
}

// endregion

// Handler holds the services behind the HTTP routes.
type Handler struct {
	Feed     *feed.Assembler
	Sessions *sessions.Service
	Social   *social.Service
	Stats    *stats.Service

	// MaxImageBytes caps avatar uploads. Zero means 10 MiB.
	MaxImageBytes int64
}

// New returns a Handler backed by the given services.
func New(assembler *feed.Assembler, sessionService *sessions.Service, socialService *social.Service, statsService *stats.Service) *Handler {
	return &Handler{
		Feed:     assembler,
		Sessions: sessionService,
		Social:   socialService,
		Stats:    statsService,
	}
}

// respondError maps a service error to its status code. Unexpected errors are
// logged and hidden behind a generic message.
func respondError(c *gin.Context, err error) {
	status, message := http.StatusInternalServerError, "Internal server error"

	switch {
	case errors.Is(err, sessions.ErrInvalid):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, social.ErrUsernameTooShort):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, social.ErrForbidden):
		status, message = http.StatusForbidden, err.Error()
	case errors.Is(err, sessions.ErrNotFound),
		errors.Is(err, social.ErrSessionNotFound),
		errors.Is(err, social.ErrProfileNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, social.ErrSelfFollow),
		errors.Is(err, social.ErrAlreadyFollowing),
		errors.Is(err, social.ErrOwnSession),
		errors.Is(err, social.ErrAlreadyYummied),
		errors.Is(err, social.ErrUsernameTaken):
		status, message = http.StatusConflict, err.Error()
	default:
		logger.Log.WithError(err).
			WithField("path", c.FullPath()).
			Error("Request failed")
	}

	c.JSON(status, gin.H{"error": message})
}
