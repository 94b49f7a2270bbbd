package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MealTime is one of the fixed meal slots a session can be logged for.
type MealTime string

const (
	MealBreakfast MealTime = "Breakfast"
	MealLunch     MealTime = "Lunch"
	MealDinner    MealTime = "Dinner"
	MealSnack     MealTime = "Snack"
)

// Valid reports whether m belongs to the enumeration.
func (m MealTime) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// Session is one logged BBQ. Date is stored as a zero-padded YYYY-MM-DD string,
// so ordering by the column is chronological.
type Session struct {
	ID             string                      `gorm:"primaryKey;size:36"`
	UserID         string                      `gorm:"size:64;not null;index:idx_sessions_user_date,priority:1"`
	Title          string                      `gorm:"size:255;not null"`
	Date           string                      `gorm:"type:varchar(10);not null;index:idx_sessions_user_date,priority:2"`
	MealTime       *MealTime                   `gorm:"size:16"`
	WeatherTypes   datatypes.JSONSlice[string] `gorm:"column:weather_types"`
	GrillTypes     datatypes.JSONSlice[string] `gorm:"column:grill_types"`
	MeatTypes      datatypes.JSONSlice[string] `gorm:"column:meat_types"`
	NumberOfPeople int                         `gorm:"not null;default:1"`
	Notes          *string
	Images         datatypes.JSONSlice[string] `gorm:"column:images"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Profile *Profile `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// BeforeCreate assigns a random id when the caller did not pick one.
func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
