// Package store is the gorm-backed query boundary for sessions and yummies.
package store

import (
	"context"

	"bbqbuddy/backend/internal/feed"
	"bbqbuddy/backend/internal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when a single session lookup matches nothing.
var ErrNotFound = errors.New("session not found")

// Store implements feed.Repository and the session persistence used by the
// sessions service.
type Store struct {
	db *gorm.DB
}

var _ feed.Repository = (*Store)(nil)

// New returns a Store over db.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ListSessions returns the owner's sessions in the query's row range, with the
// owner's profile joined.
func (s *Store) ListSessions(ctx context.Context, q feed.SessionQuery) ([]feed.Session, error) {
	if q.To < q.From {
		return []feed.Session{}, nil
	}

	tx := s.db.WithContext(ctx).
		Joins("Profile").
		Where("sessions.user_id = ?", q.OwnerID).
		Order("sessions.date DESC")
	if q.NewestFirst {
		tx = tx.Order("sessions.created_at DESC")
	}

	var rows []models.Session
	if err := tx.Offset(q.From).Limit(q.To - q.From + 1).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "list sessions")
	}

	out := make([]feed.Session, len(rows))
	for i, row := range rows {
		out[i] = toSession(row)
	}
	return out, nil
}

// ListYummies returns the yummy edges of the given sessions in one query.
func (s *Store) ListYummies(ctx context.Context, q feed.YummyQuery) ([]feed.YummyEdge, error) {
	if len(q.SessionIDs) == 0 {
		return []feed.YummyEdge{}, nil
	}

	tx := s.db.WithContext(ctx).Model(&models.Yummy{}).Where("session_id IN ?", q.SessionIDs)
	if q.UserID != "" {
		tx = tx.Where("user_id = ?", q.UserID)
	}

	var rows []models.Yummy
	if err := tx.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "list yummies")
	}

	out := make([]feed.YummyEdge, len(rows))
	for i, row := range rows {
		out[i] = feed.YummyEdge{UserID: row.UserID, SessionID: row.SessionID}
	}
	return out, nil
}

// GetSession returns one session with its owner joined.
func (s *Store) GetSession(ctx context.Context, id string) (feed.Session, error) {
	var row models.Session
	err := s.db.WithContext(ctx).Joins("Profile").Where("sessions.id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return feed.Session{}, ErrNotFound
	}
	if err != nil {
		return feed.Session{}, errors.Wrap(err, "get session")
	}
	return toSession(row), nil
}

// SessionOwner returns the owner id of a session.
func (s *Store) SessionOwner(ctx context.Context, id string) (string, error) {
	var row models.Session
	err := s.db.WithContext(ctx).Select("id", "user_id").Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", errors.Wrap(err, "get session owner")
	}
	return row.UserID, nil
}

// EnsureProfile creates an empty profile for userID if none exists.
func (s *Store) EnsureProfile(ctx context.Context, userID string) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Profile{ID: userID}).Error
	return errors.Wrap(err, "ensure profile")
}

// CreateSession inserts a new session row and returns it.
func (s *Store) CreateSession(ctx context.Context, row *models.Session) (feed.Session, error) {
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return feed.Session{}, errors.Wrap(err, "create session")
	}
	return toSession(*row), nil
}

// SessionImages returns the stored image URLs of a session owned by userID.
func (s *Store) SessionImages(ctx context.Context, userID, sessionID string) ([]string, error) {
	var row models.Session
	err := s.db.WithContext(ctx).
		Select("id", "images").
		Where("id = ? AND user_id = ?", sessionID, userID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get session images")
	}
	return []string(row.Images), nil
}

// UpdateSession overwrites the editable columns of a session owned by row.UserID.
func (s *Store) UpdateSession(ctx context.Context, row *models.Session) error {
	result := s.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("id = ? AND user_id = ?", row.ID, row.UserID).
		Select("title", "date", "meal_time", "weather_types", "grill_types", "meat_types",
			"number_of_people", "notes", "images", "updated_at").
		Updates(row)
	if result.Error != nil {
		return errors.Wrap(result.Error, "update session")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteSession removes a session owned by userID together with its yummies.
func (s *Store) DeleteSession(ctx context.Context, userID, sessionID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", sessionID, userID).Delete(&models.Session{})
		if result.Error != nil {
			return errors.Wrap(result.Error, "delete session")
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		if err := tx.Where("session_id = ?", sessionID).Delete(&models.Yummy{}).Error; err != nil {
			return errors.Wrap(err, "delete session yummies")
		}
		return nil
	})
}

func toSession(row models.Session) feed.Session {
	s := feed.Session{
		ID:             row.ID,
		UserID:         row.UserID,
		Title:          row.Title,
		Date:           row.Date,
		MealTime:       row.MealTime,
		WeatherTypes:   nonNil(row.WeatherTypes),
		GrillTypes:     nonNil(row.GrillTypes),
		MeatTypes:      nonNil(row.MeatTypes),
		NumberOfPeople: row.NumberOfPeople,
		Notes:          row.Notes,
		Images:         nonNil(row.Images),
		CreatedAt:      row.CreatedAt,
	}
	if row.Profile != nil && row.Profile.ID != "" {
		s.Owner = &feed.Owner{
			Username:  row.Profile.Username,
			AvatarURL: row.Profile.AvatarURL,
		}
	}
	return s
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
