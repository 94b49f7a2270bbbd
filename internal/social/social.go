// Package social holds the follow graph, yummy reactions and profiles.
package social

import (
	"errors"

	"bbqbuddy/backend/internal/logger"
	"bbqbuddy/backend/internal/storage"
	"bbqbuddy/backend/internal/store"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrSessionNotFound  = errors.New("session not found")
	ErrOwnSession       = errors.New("cannot yummy your own session")
	ErrAlreadyYummied   = errors.New("already yummied this session")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrUsernameTooShort = errors.New("username must be at least 3 characters long")
	ErrUsernameTaken    = errors.New("username already taken")
	ErrForbidden        = errors.New("not allowed")
)

const (
	minUsernameLength = 3
	minSearchLength   = 2
	maxSearchResults  = 20
)

// Service implements the social operations on top of gorm.
type Service struct {
	db     *gorm.DB
	store  *store.Store
	images storage.ImageStore
	log    *logrus.Entry
}

// NewService returns a Service storing avatars in images.
func NewService(db *gorm.DB, st *store.Store, images storage.ImageStore) *Service {
	return &Service{
		db:     db,
		store:  st,
		images: images,
		log:    logger.Log.WithField("component", "social"),
	}
}

// UserItem is a user row in follower, following and yummy lists.
type UserItem struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	AvatarURL   *string `json:"avatar_url"`
	IsFollowing bool    `json:"is_following"`
}
