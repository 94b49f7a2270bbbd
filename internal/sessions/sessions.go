// Package sessions creates, edits, deletes and reads individual BBQ sessions.
package sessions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bbqbuddy/backend/internal/feed"
	"bbqbuddy/backend/internal/logger"
	"bbqbuddy/backend/internal/models"
	"bbqbuddy/backend/internal/storage"
	"bbqbuddy/backend/internal/store"

	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalid wraps every input validation failure.
	ErrInvalid  = errors.New("invalid session")
	ErrNotFound = errors.New("session not found")
)

const dateLayout = "2006-01-02"

// Limits bound what a single session may carry.
type Limits struct {
	MaxImages     int
	MaxImageBytes int64
	OwnPageSize   int
}

// Input is the editable part of a session as submitted by its owner.
type Input struct {
	Title          string
	Date           string
	MealTime       string
	WeatherTypes   []string
	GrillTypes     []string
	MeatTypes      []string
	NumberOfPeople int
	Notes          string
}

// Service implements the session write path and single-session reads.
type Service struct {
	store     *store.Store
	assembler *feed.Assembler
	images    storage.ImageStore
	limits    Limits
	now       func() time.Time
	log       *logrus.Entry
}

// NewService wires a Service. Zero limits fall back to 10 images of 10 MiB and
// five sessions per own-page.
func NewService(st *store.Store, assembler *feed.Assembler, images storage.ImageStore, limits Limits) *Service {
	if limits.MaxImages <= 0 {
		limits.MaxImages = 10
	}
	if limits.MaxImageBytes <= 0 {
		limits.MaxImageBytes = 10 * 1024 * 1024
	}
	if limits.OwnPageSize <= 0 {
		limits.OwnPageSize = 5
	}
	return &Service{
		store:     st,
		assembler: assembler,
		images:    images,
		limits:    limits,
		now:       time.Now,
		log:       logger.Log.WithField("component", "sessions"),
	}
}

// Create validates in, uploads files and stores a new session for userID.
// Uploads that fail are skipped; if the insert fails the uploaded images are removed.
func (s *Service) Create(ctx context.Context, userID string, in Input, files []storage.File) (feed.Session, error) {
	row, err := s.build(in, 0, files)
	if err != nil {
		return feed.Session{}, err
	}
	row.UserID = userID

	urls := s.upload(ctx, userID, files)
	row.Images = urls

	// Sessions reference profiles; older accounts may not have one yet.
	if err := s.store.EnsureProfile(ctx, userID); err != nil {
		s.log.WithError(err).WithField("user_id", userID).Warn("Could not verify profile existence")
	}

	created, err := s.store.CreateSession(ctx, &row)
	if err != nil {
		s.removeURLs(ctx, urls)
		return feed.Session{}, err
	}
	return created, nil
}

// Update replaces the editable fields of sessionID. kept lists the current image
// URLs to keep, in display order; the others are deleted from storage.
func (s *Service) Update(ctx context.Context, userID, sessionID string, in Input, kept []string, files []storage.File) (feed.Session, error) {
	current, err := s.store.SessionImages(ctx, userID, sessionID)
	if errors.Is(err, store.ErrNotFound) {
		return feed.Session{}, ErrNotFound
	}
	if err != nil {
		return feed.Session{}, err
	}

	existing := make(map[string]struct{}, len(current))
	for _, u := range current {
		existing[u] = struct{}{}
	}
	keep := make([]string, 0, len(kept))
	keepSet := make(map[string]struct{}, len(kept))
	for _, u := range kept {
		if _, ok := existing[u]; !ok {
			continue
		}
		if _, dup := keepSet[u]; dup {
			continue
		}
		keepSet[u] = struct{}{}
		keep = append(keep, u)
	}

	row, err := s.build(in, len(keep), files)
	if err != nil {
		return feed.Session{}, err
	}
	row.ID = sessionID
	row.UserID = userID

	var dropped []string
	for _, u := range current {
		if _, ok := keepSet[u]; !ok {
			dropped = append(dropped, u)
		}
	}
	s.removeURLs(ctx, dropped)

	urls := s.upload(ctx, userID, files)
	row.Images = append(keep, urls...)

	if err := s.store.UpdateSession(ctx, &row); err != nil {
		s.removeURLs(ctx, urls)
		if errors.Is(err, store.ErrNotFound) {
			return feed.Session{}, ErrNotFound
		}
		return feed.Session{}, err
	}

	updated, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return feed.Session{}, err
	}
	return updated, nil
}

// Delete removes sessionID and its images. Storage failures are logged and do
// not keep the row alive.
func (s *Service) Delete(ctx context.Context, userID, sessionID string) error {
	images, err := s.store.SessionImages(ctx, userID, sessionID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	s.removeURLs(ctx, images)

	err = s.store.DeleteSession(ctx, userID, sessionID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// Get returns one session enriched for viewerID.
func (s *Service) Get(ctx context.Context, sessionID, viewerID string) (feed.Entry, error) {
	session, err := s.store.GetSession(ctx, sessionID)
	if errors.Is(err, store.ErrNotFound) {
		return feed.Entry{}, ErrNotFound
	}
	if err != nil {
		return feed.Entry{}, err
	}
	return s.assembler.Enrich(ctx, []feed.Session{session}, viewerID)[0], nil
}

// Own returns a page of userID's own sessions, newest date and creation first.
// Read failures yield an empty page.
func (s *Service) Own(ctx context.Context, userID string, page int) []feed.Session {
	from, to := feed.PageRange(page, s.limits.OwnPageSize)
	sessions, err := s.store.ListSessions(ctx, feed.SessionQuery{
		OwnerID:     userID,
		From:        from,
		To:          to,
		NewestFirst: true,
	})
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID).Error("Error fetching sessions")
		return []feed.Session{}
	}
	return sessions
}

// OwnPageSize returns the page size used by Own.
func (s *Service) OwnPageSize() int {
	return s.limits.OwnPageSize
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

func (s *Service) build(in Input, keptImages int, files []storage.File) (models.Session, error) {
	title := strings.TrimSpace(in.Title)
	date := strings.TrimSpace(in.Date)
	if title == "" || date == "" {
		return models.Session{}, invalid("title and date are required")
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return models.Session{}, invalid("date must be formatted as YYYY-MM-DD")
	}
	if date > s.now().Format(dateLayout) {
		return models.Session{}, invalid("date cannot be in the future")
	}
	if in.NumberOfPeople < 1 {
		return models.Session{}, invalid("number of people must be at least 1")
	}

	row := models.Session{
		Title:          title,
		Date:           date,
		WeatherTypes:   tags(in.WeatherTypes),
		GrillTypes:     tags(in.GrillTypes),
		MeatTypes:      tags(in.MeatTypes),
		NumberOfPeople: in.NumberOfPeople,
	}

	if m := strings.TrimSpace(in.MealTime); m != "" {
		meal := models.MealTime(m)
		if !meal.Valid() {
			return models.Session{}, invalid("unknown meal time %q", m)
		}
		row.MealTime = &meal
	}
	if notes := strings.TrimSpace(in.Notes); notes != "" {
		row.Notes = &notes
	}

	if keptImages+len(files) > s.limits.MaxImages {
		return models.Session{}, invalid("maximum %d images allowed per session", s.limits.MaxImages)
	}
	for _, f := range files {
		if f.Size > s.limits.MaxImageBytes {
			return models.Session{}, invalid("image %q exceeds %s limit (%s)", f.Filename, formatSize(s.limits.MaxImageBytes), formatSize(f.Size))
		}
		if f.ContentType != "" && !strings.HasPrefix(f.ContentType, "image/") {
			return models.Session{}, invalid("file %q is not an image", f.Filename)
		}
	}
	return row, nil
}

func (s *Service) upload(ctx context.Context, userID string, files []storage.File) []string {
	urls := make([]string, 0, len(files))
	for _, f := range files {
		if f.Size == 0 || f.Body == nil {
			continue
		}
		key := storage.SessionImageKey(userID, f.Filename)
		url, err := s.images.Upload(ctx, key, f.ContentType, f.Body)
		if err != nil {
			s.log.WithError(err).WithField("key", key).Warn("Upload error")
			continue
		}
		urls = append(urls, url)
	}
	return urls
}

func (s *Service) removeURLs(ctx context.Context, urls []string) {
	keys := storage.KeysFromURLs(s.images, urls)
	if len(keys) == 0 {
		return
	}
	if err := s.images.Remove(ctx, keys); err != nil {
		s.log.WithError(err).WithField("keys", keys).Error("Failed to remove images from storage")
	}
}

func tags(values []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func formatSize(bytes int64) string {
	return fmt.Sprintf("%.1fMB", float64(bytes)/(1024*1024))
}
