package feed

import (
	"slices"
	"strings"

	"bbqbuddy/backend/internal/models"
)

const noMealTime = 999

func mealPriority(m *models.MealTime) int {
	if m == nil {
		return noMealTime
	}
	switch *m {
	case models.MealDinner:
		return 1
	case models.MealSnack:
		return 2
	case models.MealLunch:
		return 3
	case models.MealBreakfast:
		return 4
	}
	return noMealTime
}

// Compare orders sessions newest date first. Within a date, sessions that both
// carry a meal-time go Dinner, Snack, Lunch, Breakfast; every other pair
// (same meal-time, or at least one without) goes newest created_at first.
//
// A session without a meal-time is never ranked by meal against one that has
// it, which makes the order non-transitive across three such sessions. This
// matches the ordering users already see and is kept on purpose.
func Compare(a, b Session) int {
	if c := strings.Compare(b.Date, a.Date); c != 0 {
		return c
	}

	pa, pb := mealPriority(a.MealTime), mealPriority(b.MealTime)
	if pa != noMealTime && pb != noMealTime && pa != pb {
		if pa < pb {
			return -1
		}
		return 1
	}

	return b.CreatedAt.Compare(a.CreatedAt)
}

// Sort orders entries in place with Compare.
func Sort(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return Compare(a.Session, b.Session)
	})
}
