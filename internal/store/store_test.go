package store

import (
	"context"
	"testing"
	"time"

	"bbqbuddy/backend/internal/database/databasetest"
	"bbqbuddy/backend/internal/feed"
	"bbqbuddy/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedProfile(t *testing.T, db *gorm.DB, id, username string) {
	t.Helper()
	p := models.Profile{ID: id}
	if username != "" {
		p.Username = &username
	}
	require.NoError(t, db.Create(&p).Error)
}

func seedSession(t *testing.T, db *gorm.DB, id, owner, date string, created time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&models.Session{
		ID:             id,
		UserID:         owner,
		Title:          "Cook " + id,
		Date:           date,
		NumberOfPeople: 1,
		Images:         []string{"https://cdn.test/" + id + ".jpg"},
		CreatedAt:      created,
	}).Error)
}

func TestListSessionsPaginatesByDate(t *testing.T) {
	db := databasetest.New(t)
	s := New(db)
	ctx := context.Background()

	seedProfile(t, db, "owner", "pitmaster")
	seedProfile(t, db, "other", "neighbour")
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c", "d", "e"} {
		seedSession(t, db, id, "owner", base.AddDate(0, 0, -i).Format("2006-01-02"), base)
	}
	seedSession(t, db, "x", "other", "2025-07-01", base)

	first, err := s.ListSessions(ctx, feed.SessionQuery{OwnerID: "owner", From: 0, To: 1})
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "a", first[0].ID)
	assert.Equal(t, "b", first[1].ID)
	require.NotNil(t, first[0].Owner)
	require.NotNil(t, first[0].Owner.Username)
	assert.Equal(t, "pitmaster", *first[0].Owner.Username)
	assert.Equal(t, []string{"https://cdn.test/a.jpg"}, first[0].Images)
	assert.Equal(t, []string{}, first[0].WeatherTypes)

	last, err := s.ListSessions(ctx, feed.SessionQuery{OwnerID: "owner", From: 4, To: 5})
	require.NoError(t, err)
	require.Len(t, last, 1)
	assert.Equal(t, "e", last[0].ID)

	none, err := s.ListSessions(ctx, feed.SessionQuery{OwnerID: "owner", From: 10, To: 19})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUserSessionsPageBeyondRangeIsEmpty(t *testing.T) {
	db := databasetest.New(t)
	seedProfile(t, db, "owner", "pitmaster")
	seedSession(t, db, "a", "owner", "2025-06-01", time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	assembler := feed.NewAssembler(New(db), 10)
	ctx := context.Background()

	require.Len(t, assembler.UserSessions(ctx, "owner", 0, ""), 1)

	entries := assembler.UserSessions(ctx, "owner", 922337203685477581, "")
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestListSessionsNewestFirst(t *testing.T) {
	db := databasetest.New(t)
	s := New(db)

	seedProfile(t, db, "owner", "pitmaster")
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seedSession(t, db, "early", "owner", "2025-06-01", base)
	seedSession(t, db, "late", "owner", "2025-06-01", base.Add(time.Hour))

	got, err := s.ListSessions(context.Background(), feed.SessionQuery{OwnerID: "owner", From: 0, To: 4, NewestFirst: true})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "late", got[0].ID)
	assert.Equal(t, "early", got[1].ID)
}

func TestListYummies(t *testing.T) {
	db := databasetest.New(t)
	s := New(db)
	ctx := context.Background()

	seedProfile(t, db, "owner", "pitmaster")
	seedProfile(t, db, "u1", "one")
	seedProfile(t, db, "u2", "two")
	now := time.Now()
	seedSession(t, db, "s1", "owner", "2025-06-01", now)
	seedSession(t, db, "s2", "owner", "2025-06-02", now)
	seedSession(t, db, "s3", "owner", "2025-06-03", now)
	for _, y := range []models.Yummy{
		{UserID: "u1", SessionID: "s1"},
		{UserID: "u2", SessionID: "s1"},
		{UserID: "u1", SessionID: "s3"},
	} {
		require.NoError(t, db.Create(&y).Error)
	}

	all, err := s.ListYummies(ctx, feed.YummyQuery{SessionIDs: []string{"s1", "s2"}})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := s.ListYummies(ctx, feed.YummyQuery{SessionIDs: []string{"s1", "s2", "s3"}, UserID: "u1"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []feed.YummyEdge{
		{UserID: "u1", SessionID: "s1"},
		{UserID: "u1", SessionID: "s3"},
	}, mine)

	empty, err := s.ListYummies(ctx, feed.YummyQuery{})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGetSessionAndOwner(t *testing.T) {
	db := databasetest.New(t)
	s := New(db)
	ctx := context.Background()

	seedProfile(t, db, "owner", "pitmaster")
	seedSession(t, db, "s1", "owner", "2025-06-01", time.Now())

	got, err := s.GetSession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Cook s1", got.Title)
	require.NotNil(t, got.Owner)

	owner, err := s.SessionOwner(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "owner", owner)

	_, err = s.GetSession(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.SessionOwner(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEnsureProfileIsIdempotent(t *testing.T) {
	db := databasetest.New(t)
	s := New(db)
	ctx := context.Background()

	seedProfile(t, db, "u1", "one")
	require.NoError(t, s.EnsureProfile(ctx, "u1"))
	require.NoError(t, s.EnsureProfile(ctx, "u2"))

	var p models.Profile
	require.NoError(t, db.First(&p, "id = ?", "u1").Error)
	require.NotNil(t, p.Username)
	assert.Equal(t, "one", *p.Username)

	var count int64
	require.NoError(t, db.Model(&models.Profile{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestUpdateAndDeleteSessionAreOwnerScoped(t *testing.T) {
	db := databasetest.New(t)
	s := New(db)
	ctx := context.Background()

	seedProfile(t, db, "owner", "pitmaster")
	seedProfile(t, db, "u1", "one")
	seedSession(t, db, "s1", "owner", "2025-06-01", time.Now())
	require.NoError(t, db.Create(&models.Yummy{UserID: "u1", SessionID: "s1"}).Error)

	update := &models.Session{ID: "s1", UserID: "u1", Title: "Stolen", Date: "2025-06-01", NumberOfPeople: 1}
	assert.ErrorIs(t, s.UpdateSession(ctx, update), ErrNotFound)

	update.UserID = "owner"
	update.Title = "Brisket"
	update.Images = []string{}
	require.NoError(t, s.UpdateSession(ctx, update))

	images, err := s.SessionImages(ctx, "owner", "s1")
	require.NoError(t, err)
	assert.Empty(t, images)

	got, err := s.GetSession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Brisket", got.Title)

	assert.ErrorIs(t, s.DeleteSession(ctx, "u1", "s1"), ErrNotFound)
	require.NoError(t, s.DeleteSession(ctx, "owner", "s1"))

	var yummies int64
	require.NoError(t, db.Model(&models.Yummy{}).Count(&yummies).Error)
	assert.Equal(t, int64(0), yummies)
}
