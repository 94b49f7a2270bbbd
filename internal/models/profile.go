package models

import "time"

// Profile is the public face of a user. The ID is the identity provider's user id.
// Username stays NULL until onboarding completes.
type Profile struct {
	ID        string  `gorm:"primaryKey;size:64"`
	Username  *string `gorm:"size:255;uniqueIndex"`
	AvatarURL *string `gorm:"size:1024"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
