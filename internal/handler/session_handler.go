package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"bbqbuddy/backend/internal/auth"
	"bbqbuddy/backend/internal/logger"
	"bbqbuddy/backend/internal/sessions"
	"bbqbuddy/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

const multipartMemory = 32 << 20

// GetUserSessions godoc
// @Summary      Get a user's sessions
// @Description  Returns one page of the user's sessions, newest date first, with owner and yummy data. Failures yield an empty page.
// @Tags         sessions
// @Produce      json
// @Param        id    path      string  true   "User ID"
// @Param        page  query     int     false  "Zero-based page"
// @Success      200   {object}  PageResponse[feed.Entry]
// @Router       /users/{id}/sessions [get]
func (h *Handler) GetUserSessions(c *gin.Context) {
	page := pageParam(c)
	entries := h.Feed.UserSessions(c.Request.Context(), c.Param("id"), page, auth.ViewerID(c))
	c.JSON(http.StatusOK, NewPageResponse(entries, page, h.Feed.PageSize()))
}

// GetMySessions godoc
// @Summary      Get my sessions
// @Description  Returns one page of the authenticated user's sessions, newest first.
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Zero-based page"
// @Success      200   {object}  PageResponse[feed.Session]
// @Failure      401   {object}  ErrorResponse
// @Router       /sessions/mine [get]
func (h *Handler) GetMySessions(c *gin.Context) {
	page := pageParam(c)
	list := h.Sessions.Own(c.Request.Context(), auth.ViewerID(c), page)
	c.JSON(http.StatusOK, NewPageResponse(list, page, h.Sessions.OwnPageSize()))
}

// GetSession godoc
// @Summary      Get a session
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  feed.Entry
// @Failure      404  {object}  ErrorResponse
// @Router       /sessions/{id} [get]
func (h *Handler) GetSession(c *gin.Context) {
	entry, err := h.Sessions.Get(c.Request.Context(), c.Param("id"), auth.ViewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// CreateSession godoc
// @Summary      Log a new session
// @Description  Creates a session from a multipart form. Tag fields are JSON string arrays; images are repeated "images" files.
// @Tags         sessions
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title             formData  string  true   "Title"
// @Param        date              formData  string  true   "Date (YYYY-MM-DD)"
// @Param        meal_time         formData  string  false  "Breakfast, Lunch, Dinner or Snack"
// @Param        weather_types     formData  string  false  "JSON array"
// @Param        grill_types       formData  string  false  "JSON array"
// @Param        meat_types        formData  string  false  "JSON array"
// @Param        number_of_people  formData  int     false  "Defaults to 1"
// @Param        notes             formData  string  false  "Notes"
// @Param        images            formData  file    false  "Images"
// @Success      201  {object}  feed.Session
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /sessions [post]
func (h *Handler) CreateSession(c *gin.Context) {
	form, err := parseSessionForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer form.close()

	created, err := h.Sessions.Create(c.Request.Context(), auth.ViewerID(c), form.input, form.files)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateSession godoc
// @Summary      Edit a session
// @Description  Replaces the session's fields. Existing images not listed in kept_images are deleted.
// @Tags         sessions
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id                path      string  true   "Session ID"
// @Param        title             formData  string  true   "Title"
// @Param        date              formData  string  true   "Date (YYYY-MM-DD)"
// @Param        meal_time         formData  string  false  "Breakfast, Lunch, Dinner or Snack"
// @Param        weather_types     formData  string  false  "JSON array"
// @Param        grill_types       formData  string  false  "JSON array"
// @Param        meat_types        formData  string  false  "JSON array"
// @Param        number_of_people  formData  int     false  "Defaults to 1"
// @Param        notes             formData  string  false  "Notes"
// @Param        kept_images       formData  []string  false  "Image URLs to keep" collectionFormat(multi)
// @Param        images            formData  file    false  "New images"
// @Success      200  {object}  feed.Session
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /sessions/{id} [put]
func (h *Handler) UpdateSession(c *gin.Context) {
	form, err := parseSessionForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer form.close()

	updated, err := h.Sessions.Update(c.Request.Context(), auth.ViewerID(c), c.Param("id"), form.input, form.kept, form.files)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteSession godoc
// @Summary      Delete a session
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  MessageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /sessions/{id} [delete]
func (h *Handler) DeleteSession(c *gin.Context) {
	if err := h.Sessions.Delete(c.Request.Context(), auth.ViewerID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session deleted"})
}

// region --- multipart ---

type sessionForm struct {
	input   sessions.Input
	kept    []string
	files   []storage.File
	closers []io.Closer
}

func (f *sessionForm) close() {
	for _, cl := range f.closers {
		_ = cl.Close()
	}
}

func parseSessionForm(c *gin.Context) (*sessionForm, error) {
	err := c.Request.ParseMultipartForm(multipartMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, errors.New("invalid form data")
	}

	form := &sessionForm{
		input: sessions.Input{
			Title:          c.PostForm("title"),
			Date:           c.PostForm("date"),
			MealTime:       c.PostForm("meal_time"),
			WeatherTypes:   tagList(c, "weather_types"),
			GrillTypes:     tagList(c, "grill_types"),
			MeatTypes:      tagList(c, "meat_types"),
			NumberOfPeople: people(c.PostForm("number_of_people")),
			Notes:          c.PostForm("notes"),
		},
		kept: c.PostFormArray("kept_images"),
	}

	if c.Request.MultipartForm == nil {
		return form, nil
	}
	for _, fh := range c.Request.MultipartForm.File["images"] {
		if fh.Size == 0 {
			continue
		}
		file, err := fh.Open()
		if err != nil {
			form.close()
			return nil, errors.New("could not read uploaded image")
		}
		form.closers = append(form.closers, file)
		form.files = append(form.files, storage.File{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Body:        file,
		})
	}
	return form, nil
}

// tagList decodes a JSON string array form field. Malformed values are logged
// and treated as empty.
func tagList(c *gin.Context, field string) []string {
	raw := strings.TrimSpace(c.PostForm(field))
	if raw == "" {
		return nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		logger.Log.WithError(err).WithField("field", field).Warn("Failed to parse tag list")
		return nil
	}
	return values
}

// people defaults a missing value to 1. Unparseable input becomes 0, which
// validation rejects.
func people(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

// endregion
