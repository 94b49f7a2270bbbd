package models

import "time"

// Yummy is a reaction of UserID on SessionID. One per (user, session) pair.
type Yummy struct {
	UserID    string `gorm:"primaryKey;size:64"`
	SessionID string `gorm:"primaryKey;size:36;index"`
	CreatedAt time.Time

	Profile *Profile `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Session *Session `gorm:"foreignKey:SessionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// TableName keeps the table name aligned with the rest of the schema.
func (Yummy) TableName() string {
	return "yummies"
}
