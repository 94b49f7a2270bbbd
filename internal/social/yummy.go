package social

import (
	"context"
	"errors"

	"bbqbuddy/backend/internal/database"
	"bbqbuddy/backend/internal/models"
	"bbqbuddy/backend/internal/store"
)

// Yummy records userID's reaction on sessionID.
func (s *Service) Yummy(ctx context.Context, userID, sessionID string) error {
	owner, err := s.store.SessionOwner(ctx, sessionID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrSessionNotFound
	}
	if err != nil {
		return err
	}
	if owner == userID {
		return ErrOwnSession
	}

	if err := s.store.EnsureProfile(ctx, userID); err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Create(&models.Yummy{
		UserID:    userID,
		SessionID: sessionID,
	}).Error
	if database.IsDuplicate(err) {
		return ErrAlreadyYummied
	}
	return err
}

// Unyummy removes userID's reaction on sessionID if there is one.
func (s *Service) Unyummy(ctx context.Context, userID, sessionID string) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND session_id = ?", userID, sessionID).
		Delete(&models.Yummy{}).Error
}

// Yummies lists the users who yummied sessionID, newest first.
func (s *Service) Yummies(ctx context.Context, sessionID string) ([]UserItem, error) {
	var edges []models.Yummy
	err := s.db.WithContext(ctx).
		Preload("Profile").
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Find(&edges).Error
	if err != nil {
		return nil, err
	}

	items := make([]UserItem, 0, len(edges))
	for _, e := range edges {
		if item, ok := userItem(e.Profile); ok {
			items = append(items, item)
		}
	}
	return items, nil
}
