// Package stats counts how often a user has grilled.
package stats

import (
	"context"
	"time"

	"bbqbuddy/backend/internal/logger"
	"bbqbuddy/backend/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// Statistics summarises a user's sessions. The Days fields count distinct
// calendar days, so two cooks on one day count once.
type Statistics struct {
	TotalSessions int `json:"total_sessions"`
	DaysThisYear  int `json:"days_this_year"`
	DaysThisMonth int `json:"days_this_month"`
	DaysThisWeek  int `json:"days_this_week"`
}

// Compute derives Statistics from session dates (YYYY-MM-DD) relative to now.
// Weeks run Monday to Sunday in now's location.
func Compute(dates []string, now time.Time) Statistics {
	stats := Statistics{TotalSessions: len(dates)}
	if len(dates) == 0 {
		return stats
	}

	year := now.Format("2006")
	month := now.Format("2006-01")
	sinceMonday := (int(now.Weekday()) + 6) % 7
	monday := time.Date(now.Year(), now.Month(), now.Day()-sinceMonday, 0, 0, 0, 0, now.Location())
	weekStart := monday.Format(dateLayout)
	weekEnd := monday.AddDate(0, 0, 7).Format(dateLayout)

	yearDays := make(map[string]struct{})
	monthDays := make(map[string]struct{})
	weekDays := make(map[string]struct{})
	for _, d := range dates {
		if len(d) != len(dateLayout) {
			continue
		}
		if d[:4] == year {
			yearDays[d] = struct{}{}
			if d[:7] == month {
				monthDays[d] = struct{}{}
			}
		}
		if d >= weekStart && d < weekEnd {
			weekDays[d] = struct{}{}
		}
	}

	stats.DaysThisYear = len(yearDays)
	stats.DaysThisMonth = len(monthDays)
	stats.DaysThisWeek = len(weekDays)
	return stats
}

// Service loads statistics from the database.
type Service struct {
	db  *gorm.DB
	now func() time.Time
	log *logrus.Entry
}

// NewService returns a stats Service reading from db.
func NewService(db *gorm.DB) *Service {
	return &Service{
		db:  db,
		now: time.Now,
		log: logger.Log.WithField("component", "stats"),
	}
}

// ForUser returns userID's statistics. Anonymous callers and read failures get zeros.
func (s *Service) ForUser(ctx context.Context, userID string) Statistics {
	if userID == "" {
		return Statistics{}
	}

	var dates []string
	err := s.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("user_id = ?", userID).
		Pluck("date", &dates).Error
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID).Error("Database error loading statistics")
		return Statistics{}
	}
	return Compute(dates, s.now())
}
