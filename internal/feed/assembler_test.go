package feed

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	sessions []Session
	yummies  []YummyEdge

	sessionErr error
	yummyErr   error

	sessionQueries []SessionQuery
	yummyQueries   []YummyQuery
}

func (f *fakeRepo) ListSessions(_ context.Context, q SessionQuery) ([]Session, error) {
	f.sessionQueries = append(f.sessionQueries, q)
	if f.sessionErr != nil {
		return nil, f.sessionErr
	}
	var out []Session
	for i, s := range f.sessions {
		if s.UserID == q.OwnerID && i >= q.From && i <= q.To {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListYummies(_ context.Context, q YummyQuery) ([]YummyEdge, error) {
	f.yummyQueries = append(f.yummyQueries, q)
	if f.yummyErr != nil {
		return nil, f.yummyErr
	}
	wanted := map[string]bool{}
	for _, id := range q.SessionIDs {
		wanted[id] = true
	}
	var out []YummyEdge
	for _, e := range f.yummies {
		if wanted[e.SessionID] && (q.UserID == "" || q.UserID == e.UserID) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeRepo) calls() int {
	return len(f.sessionQueries) + len(f.yummyQueries)
}

func strPtr(s string) *string {
	return &s
}

func ownedSessions(owner string, n int) []Session {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	out := make([]Session, n)
	for i := range out {
		out[i] = Session{
			ID:        fmt.Sprintf("s%d", i+1),
			UserID:    owner,
			Title:     "Cook",
			Date:      base.AddDate(0, 0, -i).Format("2006-01-02"),
			CreatedAt: base.Add(-time.Duration(i) * time.Hour),
			Owner:     &Owner{Username: strPtr("pitmaster")},
		}
	}
	return out
}

func findEntry(t *testing.T, entries []Entry, id string) Entry {
	t.Helper()
	for _, e := range entries {
		if e.ID == id {
			return e
		}
	}
	t.Fatalf("entry %s not found", id)
	return Entry{}
}

func TestPageRange(t *testing.T) {
	for _, tc := range []struct {
		page, size, from, to int
	}{
		{0, 10, 0, 9},
		{1, 10, 10, 19},
		{3, 5, 15, 19},
		{-1, 10, 0, 9},
		{2, 1, 2, 2},
		{math.MaxInt / 10, 10, 0, -1},
		{922337203685477581, 10, 0, -1},
		{math.MaxInt, 1, 0, -1},
		{1, 0, 0, -1},
	} {
		from, to := PageRange(tc.page, tc.size)
		assert.Equal(t, tc.from, from, "page %d size %d", tc.page, tc.size)
		assert.Equal(t, tc.to, to, "page %d size %d", tc.page, tc.size)
	}
}

func TestUserSessionsRequestsPageRange(t *testing.T) {
	for _, size := range []int{1, 5, 10} {
		for _, page := range []int{0, 1, 4} {
			repo := &fakeRepo{}
			NewAssembler(repo, size).UserSessions(context.Background(), "owner", page, "")

			require.Len(t, repo.sessionQueries, 1)
			q := repo.sessionQueries[0]
			assert.Equal(t, "owner", q.OwnerID)
			assert.Equal(t, page*size, q.From)
			assert.Equal(t, page*size+size-1, q.To)
			assert.False(t, q.NewestFirst)
		}
	}
}

func TestUserSessionsPageBeyondRangeIsEmpty(t *testing.T) {
	repo := &fakeRepo{sessions: ownedSessions("owner", 3)}
	entries := NewAssembler(repo, 10).UserSessions(context.Background(), "owner", 922337203685477581, "")

	assert.NotNil(t, entries)
	assert.Empty(t, entries)
	require.Len(t, repo.sessionQueries, 1)
	assert.Less(t, repo.sessionQueries[0].To, repo.sessionQueries[0].From)
}

func TestUserSessionsDefaultPageSize(t *testing.T) {
	a := NewAssembler(&fakeRepo{}, 0)
	assert.Equal(t, DefaultPageSize, a.PageSize())
}

func TestUserSessionsBatchesAggregates(t *testing.T) {
	for _, n := range []int{0, 1, 10} {
		t.Run(fmt.Sprintf("anonymous/%d", n), func(t *testing.T) {
			repo := &fakeRepo{sessions: ownedSessions("owner", n)}
			entries := NewAssembler(repo, 10).UserSessions(context.Background(), "owner", 0, "")

			assert.Len(t, entries, n)
			if n == 0 {
				assert.Equal(t, 1, repo.calls())
				return
			}
			assert.Equal(t, 2, repo.calls())
			assert.Len(t, repo.yummyQueries[0].SessionIDs, n)
		})
		t.Run(fmt.Sprintf("viewer/%d", n), func(t *testing.T) {
			repo := &fakeRepo{sessions: ownedSessions("owner", n)}
			NewAssembler(repo, 10).UserSessions(context.Background(), "owner", 0, "viewer")

			if n == 0 {
				assert.Equal(t, 1, repo.calls())
				return
			}
			assert.Equal(t, 3, repo.calls())
			assert.Equal(t, "", repo.yummyQueries[0].UserID)
			assert.Equal(t, "viewer", repo.yummyQueries[1].UserID)
		})
	}
}

func TestUserSessionsEngagement(t *testing.T) {
	repo := &fakeRepo{
		sessions: ownedSessions("owner", 2),
		yummies: []YummyEdge{
			{UserID: "u1", SessionID: "s1"},
			{UserID: "u2", SessionID: "s1"},
		},
	}

	entries := NewAssembler(repo, 10).UserSessions(context.Background(), "owner", 0, "u1")
	require.Len(t, entries, 2)

	s1 := findEntry(t, entries, "s1")
	assert.Equal(t, 2, s1.YummyCount)
	assert.True(t, s1.HasYummied)
	assert.True(t, s1.CanYummy)
	assert.False(t, s1.IsOwnSession)
	assert.Equal(t, "pitmaster", s1.Username)

	s2 := findEntry(t, entries, "s2")
	assert.Equal(t, 0, s2.YummyCount)
	assert.False(t, s2.HasYummied)
	assert.True(t, s2.CanYummy)
}

func TestUserSessionsOwnSession(t *testing.T) {
	repo := &fakeRepo{
		sessions: ownedSessions("owner", 1),
		// Should not exist, but a stray self-yummy must not break the page.
		yummies: []YummyEdge{{UserID: "owner", SessionID: "s1"}},
	}

	entries := NewAssembler(repo, 10).UserSessions(context.Background(), "owner", 0, "owner")
	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsOwnSession)
	assert.False(t, entries[0].CanYummy)
	assert.True(t, entries[0].HasYummied)
	assert.Equal(t, 1, entries[0].YummyCount)
}

func TestUserSessionsAnonymousViewer(t *testing.T) {
	repo := &fakeRepo{
		sessions: ownedSessions("owner", 1),
		yummies:  []YummyEdge{{UserID: "u1", SessionID: "s1"}},
	}

	entries := NewAssembler(repo, 10).UserSessions(context.Background(), "owner", 0, "")
	require.Len(t, entries, 1)
	assert.False(t, entries[0].IsOwnSession)
	assert.False(t, entries[0].HasYummied)
	assert.False(t, entries[0].CanYummy)
	assert.Equal(t, 1, entries[0].YummyCount)
}

func TestUserSessionsOwnerFallbacks(t *testing.T) {
	sessions := ownedSessions("owner", 2)
	sessions[0].Owner = nil
	sessions[1].Owner = &Owner{AvatarURL: strPtr("https://cdn.test/a.png")}
	repo := &fakeRepo{sessions: sessions}

	entries := NewAssembler(repo, 10).UserSessions(context.Background(), "owner", 0, "")
	require.Len(t, entries, 2)

	noProfile := findEntry(t, entries, "s1")
	assert.Equal(t, UnknownUsername, noProfile.Username)
	assert.Nil(t, noProfile.AvatarURL)

	noUsername := findEntry(t, entries, "s2")
	assert.Equal(t, UnknownUsername, noUsername.Username)
	require.NotNil(t, noUsername.AvatarURL)
	assert.Equal(t, "https://cdn.test/a.png", *noUsername.AvatarURL)
}

func TestUserSessionsReadFailure(t *testing.T) {
	repo := &fakeRepo{sessionErr: errors.New("connection refused")}

	entries := NewAssembler(repo, 10).UserSessions(context.Background(), "owner", 0, "viewer")
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
	assert.Empty(t, repo.yummyQueries)
}

func TestUserSessionsAggregateFailure(t *testing.T) {
	repo := &fakeRepo{
		sessions: ownedSessions("owner", 3),
		yummies:  []YummyEdge{{UserID: "viewer", SessionID: "s1"}},
		yummyErr: errors.New("timeout"),
	}

	entries := NewAssembler(repo, 10).UserSessions(context.Background(), "owner", 0, "viewer")
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, 0, e.YummyCount)
		assert.False(t, e.HasYummied)
		assert.True(t, e.CanYummy)
	}
}

func TestUserSessionsEmptyTarget(t *testing.T) {
	repo := &fakeRepo{}
	entries := NewAssembler(repo, 10).UserSessions(context.Background(), "", 0, "viewer")
	assert.Empty(t, entries)
	assert.Equal(t, 0, repo.calls())
}

func TestUserSessionsSortsByMealTime(t *testing.T) {
	sessions := ownedSessions("owner", 3)
	for i := range sessions {
		sessions[i].Date = "2025-06-01"
	}
	sessions[0].MealTime = meal("Lunch")
	sessions[1].MealTime = meal("Dinner")
	sessions[2].MealTime = meal("Breakfast")

	entries := NewAssembler(&fakeRepo{sessions: sessions}, 10).UserSessions(context.Background(), "owner", 0, "")
	require.Len(t, entries, 3)
	assert.Equal(t, "s2", entries[0].ID)
	assert.Equal(t, "s1", entries[1].ID)
	assert.Equal(t, "s3", entries[2].ID)
}
