package feed

import (
	"testing"
	"time"

	"bbqbuddy/backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func meal(m models.MealTime) *models.MealTime {
	return &m
}

func at(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return ts
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func TestCompareDatePrecedence(t *testing.T) {
	a := Session{ID: "a", Date: "2025-06-01", MealTime: meal(models.MealBreakfast), CreatedAt: at(t, "2025-06-01T08:00:00Z")}
	b := Session{ID: "b", Date: "2025-05-01", MealTime: meal(models.MealDinner), CreatedAt: at(t, "2025-06-02T08:00:00Z")}

	assert.Negative(t, Compare(a, b))
	assert.Positive(t, Compare(b, a))
}

func TestCompareMealTimeOnSameDate(t *testing.T) {
	a := Session{ID: "a", Date: "2025-06-01", MealTime: meal(models.MealDinner), CreatedAt: at(t, "2025-06-01T08:00:00Z")}
	b := Session{ID: "b", Date: "2025-06-01", MealTime: meal(models.MealLunch), CreatedAt: at(t, "2025-06-01T20:00:00Z")}

	assert.Negative(t, Compare(a, b))
}

func TestCompareMealTimePriority(t *testing.T) {
	order := []models.MealTime{models.MealDinner, models.MealSnack, models.MealLunch, models.MealBreakfast}
	created := at(t, "2025-06-01T12:00:00Z")
	for i := 0; i < len(order)-1; i++ {
		a := Session{Date: "2025-06-01", MealTime: meal(order[i]), CreatedAt: created}
		b := Session{Date: "2025-06-01", MealTime: meal(order[i+1]), CreatedAt: created}
		assert.Negative(t, Compare(a, b), "%s before %s", order[i], order[i+1])
	}
}

func TestCompareMixedPresenceFallsThroughToCreatedAt(t *testing.T) {
	a := Session{ID: "a", Date: "2025-06-01", MealTime: meal(models.MealBreakfast), CreatedAt: at(t, "2025-06-01T09:00:00Z")}
	b := Session{ID: "b", Date: "2025-06-01", CreatedAt: at(t, "2025-06-01T10:00:00Z")}

	assert.Positive(t, Compare(a, b))
	assert.Negative(t, Compare(b, a))
}

func TestCompareSameMealTimeUsesCreatedAt(t *testing.T) {
	a := Session{Date: "2025-06-01", MealTime: meal(models.MealDinner), CreatedAt: at(t, "2025-06-01T18:00:00Z")}
	b := Session{Date: "2025-06-01", MealTime: meal(models.MealDinner), CreatedAt: at(t, "2025-06-01T19:00:00Z")}

	assert.Positive(t, Compare(a, b))
}

func TestCompareAntisymmetricAndDeterministic(t *testing.T) {
	sessions := []Session{
		{Date: "2025-06-01", MealTime: meal(models.MealDinner), CreatedAt: at(t, "2025-06-01T10:00:00Z")},
		{Date: "2025-06-01", CreatedAt: at(t, "2025-06-01T11:00:00Z")},
		{Date: "2025-06-01", MealTime: meal(models.MealBreakfast), CreatedAt: at(t, "2025-06-01T12:00:00Z")},
		{Date: "2025-06-01", MealTime: meal(models.MealBreakfast), CreatedAt: at(t, "2025-06-01T12:00:00Z")},
		{Date: "2025-05-31", MealTime: meal(models.MealSnack), CreatedAt: at(t, "2025-06-01T12:00:00Z")},
		{Date: "2025-06-02", CreatedAt: at(t, "2025-06-01T09:00:00Z")},
	}

	for i, a := range sessions {
		for j, b := range sessions {
			first := Compare(a, b)
			assert.Equal(t, sign(first), -sign(Compare(b, a)), "pair %d,%d", i, j)
			assert.Equal(t, first, Compare(a, b), "pair %d,%d repeated", i, j)
		}
	}
}

func TestSortIsReproducible(t *testing.T) {
	build := func() []Entry {
		return []Entry{
			{Session: Session{ID: "old", Date: "2025-05-01", CreatedAt: at(t, "2025-05-01T10:00:00Z")}},
			{Session: Session{ID: "lunch", Date: "2025-06-01", MealTime: meal(models.MealLunch), CreatedAt: at(t, "2025-06-01T12:00:00Z")}},
			{Session: Session{ID: "dinner", Date: "2025-06-01", MealTime: meal(models.MealDinner), CreatedAt: at(t, "2025-06-01T19:00:00Z")}},
			{Session: Session{ID: "new", Date: "2025-06-03", CreatedAt: at(t, "2025-06-03T10:00:00Z")}},
		}
	}

	ids := func(entries []Entry) []string {
		out := make([]string, len(entries))
		for i, e := range entries {
			out[i] = e.ID
		}
		return out
	}

	first := build()
	Sort(first)
	assert.Equal(t, []string{"new", "dinner", "lunch", "old"}, ids(first))

	second := build()
	Sort(second)
	assert.Equal(t, ids(first), ids(second))
}
