package database_test

import (
	"testing"

	"bbqbuddy/backend/internal/database"
	"bbqbuddy/backend/internal/database/databasetest"
	"bbqbuddy/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestOpenUnknownDriver(t *testing.T) {
	_, err := database.Open("oracle", "")
	assert.Error(t, err)
}

func TestDuplicateKeyIsTranslated(t *testing.T) {
	db := databasetest.New(t)

	require.NoError(t, db.Create(&models.Profile{ID: "u1"}).Error)
	require.NoError(t, db.Create(&models.Profile{ID: "u2"}).Error)
	require.NoError(t, db.Create(&models.Follow{FollowerID: "u1", FollowingID: "u2"}).Error)

	err := db.Create(&models.Follow{FollowerID: "u1", FollowingID: "u2"}).Error
	assert.True(t, database.IsDuplicate(err))
}

func TestIsDuplicate(t *testing.T) {
	assert.False(t, database.IsDuplicate(nil))
	assert.True(t, database.IsDuplicate(gorm.ErrDuplicatedKey))
	assert.False(t, database.IsDuplicate(gorm.ErrRecordNotFound))
}

func TestSessionGetsID(t *testing.T) {
	db := databasetest.New(t)
	require.NoError(t, db.Create(&models.Profile{ID: "u1"}).Error)

	s := models.Session{UserID: "u1", Title: "Ribs", Date: "2025-06-01", NumberOfPeople: 2}
	require.NoError(t, db.Create(&s).Error)
	assert.Len(t, s.ID, 36)
}
