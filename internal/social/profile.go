package social

import (
	"context"
	"errors"
	"strings"
	"time"

	"bbqbuddy/backend/internal/database"
	"bbqbuddy/backend/internal/models"
	"bbqbuddy/backend/internal/storage"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileWithStats is a profile page header as seen by one viewer.
type ProfileWithStats struct {
	ID             string    `json:"id"`
	Username       *string   `json:"username"`
	AvatarURL      *string   `json:"avatar_url"`
	CreatedAt      time.Time `json:"created_at"`
	FollowerCount  int64     `json:"follower_count"`
	FollowingCount int64     `json:"following_count"`
	IsFollowing    bool      `json:"is_following"`
	IsOwnProfile   bool      `json:"is_own_profile"`
}

// SearchResult is one match of a username search.
type SearchResult struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	AvatarURL *string `json:"avatar_url"`
}

// EnsureProfile creates an empty profile for userID if it is missing.
func (s *Service) EnsureProfile(ctx context.Context, userID string) error {
	return s.store.EnsureProfile(ctx, userID)
}

// Profile returns userID's profile with follow counts relative to viewerID.
func (s *Service) Profile(ctx context.Context, userID, viewerID string) (ProfileWithStats, error) {
	var p models.Profile
	err := s.db.WithContext(ctx).Where("id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ProfileWithStats{}, ErrProfileNotFound
	}
	if err != nil {
		return ProfileWithStats{}, err
	}

	out := ProfileWithStats{
		ID:           p.ID,
		Username:     p.Username,
		AvatarURL:    p.AvatarURL,
		CreatedAt:    p.CreatedAt,
		IsOwnProfile: viewerID != "" && viewerID == userID,
	}

	// These counts degrade to zero; the header still renders.
	db := s.db.WithContext(ctx)
	out.FollowerCount = s.FollowerCount(ctx, userID)
	if err := db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&out.FollowingCount).Error; err != nil {
		s.log.WithError(err).Error("Error getting following count")
	}

	if viewerID != "" && viewerID != userID {
		var n int64
		err := db.Model(&models.Follow{}).
			Where("follower_id = ? AND following_id = ?", viewerID, userID).
			Count(&n).Error
		if err != nil {
			s.log.WithError(err).Error("Error checking follow status")
		}
		out.IsFollowing = n > 0
	}
	return out, nil
}

// Search finds onboarded users whose username contains query, case-insensitively.
// Anonymous viewers and queries shorter than two characters get no results.
func (s *Service) Search(ctx context.Context, query, viewerID string) ([]SearchResult, error) {
	query = strings.TrimSpace(query)
	if viewerID == "" || len([]rune(query)) < minSearchLength {
		return []SearchResult{}, nil
	}

	var profiles []models.Profile
	err := s.db.WithContext(ctx).
		Where("username IS NOT NULL AND username <> ''").
		Where("LOWER(username) LIKE ?", "%"+strings.ToLower(query)+"%").
		Where("id <> ?", viewerID).
		Order("username ASC").
		Limit(maxSearchResults).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(profiles))
	for _, p := range profiles {
		results = append(results, SearchResult{ID: p.ID, Username: *p.Username, AvatarURL: p.AvatarURL})
	}
	return results, nil
}

// CompleteOnboarding assigns a username to userID, creating the profile if needed.
func (s *Service) CompleteOnboarding(ctx context.Context, userID, username string) (models.Profile, error) {
	username = strings.TrimSpace(username)
	if len([]rune(username)) < minUsernameLength {
		return models.Profile{}, ErrUsernameTooShort
	}

	p := models.Profile{ID: userID, Username: &username}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"username", "updated_at"}),
		}).
		Create(&p).Error
	if database.IsDuplicate(err) {
		return models.Profile{}, ErrUsernameTaken
	}
	if err != nil {
		return models.Profile{}, err
	}

	if err := s.db.WithContext(ctx).Where("id = ?", userID).First(&p).Error; err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

// SetAvatar uploads a new avatar for userID and removes the previous one.
func (s *Service) SetAvatar(ctx context.Context, userID string, file storage.File) (string, error) {
	if err := s.store.EnsureProfile(ctx, userID); err != nil {
		return "", err
	}

	var p models.Profile
	if err := s.db.WithContext(ctx).Where("id = ?", userID).First(&p).Error; err != nil {
		return "", err
	}

	key := storage.AvatarKey(userID, file.Filename)
	url, err := s.images.Upload(ctx, key, file.ContentType, file.Body)
	if err != nil {
		return "", err
	}

	err = s.db.WithContext(ctx).Model(&models.Profile{}).Where("id = ?", userID).Update("avatar_url", url).Error
	if err != nil {
		// Do not leave an orphaned object behind.
		if rmErr := s.images.Remove(ctx, []string{key}); rmErr != nil {
			s.log.WithError(rmErr).WithField("key", key).Warn("Could not clean up orphaned avatar")
		}
		return "", err
	}

	if p.AvatarURL != nil {
		if old, ok := s.images.KeyFromURL(*p.AvatarURL); ok && storage.OwnsAvatar(userID, old) {
			if err := s.images.Remove(ctx, []string{old}); err != nil {
				s.log.WithError(err).WithField("key", old).Warn("Could not remove previous avatar")
			}
		}
	}
	return url, nil
}

// DeleteAvatar removes userID's avatar from storage and from the profile.
func (s *Service) DeleteAvatar(ctx context.Context, userID string) error {
	var p models.Profile
	err := s.db.WithContext(ctx).Where("id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProfileNotFound
	}
	if err != nil {
		return err
	}
	if p.AvatarURL == nil {
		return nil
	}

	if key, ok := s.images.KeyFromURL(*p.AvatarURL); ok {
		if !storage.OwnsAvatar(userID, key) {
			s.log.WithFields(logrus.Fields{"user_id": userID, "key": key}).
				Error("Attempted to delete avatar not owned by user")
			return ErrForbidden
		}
		if err := s.images.Remove(ctx, []string{key}); err != nil {
			return err
		}
	}

	return s.db.WithContext(ctx).Model(&models.Profile{}).Where("id = ?", userID).Update("avatar_url", nil).Error
}
