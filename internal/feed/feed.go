// Package feed assembles pages of BBQ sessions enriched with owner details and
// yummy engagement relative to the viewer.
package feed

import (
	"context"
	"time"

	"bbqbuddy/backend/internal/models"
)

// UnknownUsername is shown for sessions whose owner has no profile row.
const UnknownUsername = "Unknown"

// Owner is the slice of the owner's profile joined onto a session.
type Owner struct {
	Username  *string
	AvatarURL *string
}

// Session is a typed copy of a stored session row.
type Session struct {
	ID             string           `json:"id"`
	UserID         string           `json:"user_id"`
	Title          string           `json:"title"`
	Date           string           `json:"date"`
	MealTime       *models.MealTime `json:"meal_time"`
	WeatherTypes   []string         `json:"weather_types"`
	GrillTypes     []string         `json:"grill_types"`
	MeatTypes      []string         `json:"meat_types"`
	NumberOfPeople int              `json:"number_of_people"`
	Notes          *string          `json:"notes"`
	Images         []string         `json:"images"`
	CreatedAt      time.Time        `json:"created_at"`

	// Owner is nil when the join found no profile.
	Owner *Owner `json:"-"`
}

// Entry is a session as shown to one viewer.
type Entry struct {
	Session
	Username     string  `json:"username"`
	AvatarURL    *string `json:"avatar_url"`
	IsOwnSession bool    `json:"is_own_session"`
	YummyCount   int     `json:"yummy_count"`
	HasYummied   bool    `json:"has_yummied"`
	CanYummy     bool    `json:"can_yummy"`
}

// YummyEdge is one (user, session) reaction.
type YummyEdge struct {
	UserID    string
	SessionID string
}

// SessionQuery selects sessions of one owner within an inclusive row range,
// ordered by date descending.
type SessionQuery struct {
	OwnerID string
	From    int
	To      int
	// NewestFirst adds created_at descending as a second ordering key.
	NewestFirst bool
}

// YummyQuery selects the yummy edges of the given sessions, optionally only
// those left by UserID.
type YummyQuery struct {
	SessionIDs []string
	UserID     string
}

// Repository is the query boundary the assembler reads through.
type Repository interface {
	ListSessions(ctx context.Context, q SessionQuery) ([]Session, error)
	ListYummies(ctx context.Context, q YummyQuery) ([]YummyEdge, error)
}
