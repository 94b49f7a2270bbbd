package social

import (
	"context"
	"errors"

	"bbqbuddy/backend/internal/database"
	"bbqbuddy/backend/internal/models"

	"gorm.io/gorm"
)

// Follow makes followerID follow followingID.
func (s *Service) Follow(ctx context.Context, followerID, followingID string) error {
	if followerID == followingID {
		return ErrSelfFollow
	}

	if err := s.requireProfile(ctx, followingID); err != nil {
		return err
	}
	if err := s.store.EnsureProfile(ctx, followerID); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Create(&models.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
	}).Error
	if database.IsDuplicate(err) {
		return ErrAlreadyFollowing
	}
	return err
}

// Unfollow removes the edge if it exists.
func (s *Service) Unfollow(ctx context.Context, followerID, followingID string) error {
	return s.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{}).Error
}

// Followers lists the users following targetID, newest first. IsFollowing tells
// whether viewerID follows each of them back.
func (s *Service) Followers(ctx context.Context, targetID, viewerID string) ([]UserItem, error) {
	var edges []models.Follow
	err := s.db.WithContext(ctx).
		Preload("Follower").
		Where("following_id = ?", targetID).
		Order("created_at DESC").
		Find(&edges).Error
	if err != nil {
		return nil, err
	}

	items := make([]UserItem, 0, len(edges))
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		if item, ok := userItem(e.Follower); ok {
			items = append(items, item)
			ids = append(ids, item.ID)
		}
	}

	if viewerID == "" || len(ids) == 0 {
		return items, nil
	}

	var followed []string
	err = s.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND following_id IN ?", viewerID, ids).
		Pluck("following_id", &followed).Error
	if err != nil {
		s.log.WithError(err).Error("Error checking follow-backs")
		return items, nil
	}

	set := make(map[string]struct{}, len(followed))
	for _, id := range followed {
		set[id] = struct{}{}
	}
	for i := range items {
		_, items[i].IsFollowing = set[items[i].ID]
	}
	return items, nil
}

// Following lists the users userID follows, newest first.
func (s *Service) Following(ctx context.Context, userID string) ([]UserItem, error) {
	var edges []models.Follow
	err := s.db.WithContext(ctx).
		Preload("Following").
		Where("follower_id = ?", userID).
		Order("created_at DESC").
		Find(&edges).Error
	if err != nil {
		return nil, err
	}

	items := make([]UserItem, 0, len(edges))
	for _, e := range edges {
		if item, ok := userItem(e.Following); ok {
			item.IsFollowing = true
			items = append(items, item)
		}
	}
	return items, nil
}

// FollowerCount returns how many users follow userID, or 0 if counting fails.
func (s *Service) FollowerCount(ctx context.Context, userID string) int64 {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Follow{}).Where("following_id = ?", userID).Count(&count).Error
	if err != nil {
		s.log.WithError(err).Error("Error getting follower count")
		return 0
	}
	return count
}

func (s *Service) requireProfile(ctx context.Context, userID string) error {
	var p models.Profile
	err := s.db.WithContext(ctx).Select("id").Where("id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProfileNotFound
	}
	return err
}

// userItem skips profiles that are missing or have not finished onboarding.
func userItem(p *models.Profile) (UserItem, bool) {
	if p == nil || p.ID == "" || p.Username == nil || *p.Username == "" {
		return UserItem{}, false
	}
	return UserItem{ID: p.ID, Username: *p.Username, AvatarURL: p.AvatarURL}, true
}
