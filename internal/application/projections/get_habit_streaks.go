package projections

import (
	"context"
	"time"

	"lifeboard/internal/domain/habit"
)

// HabitStreakResult carries one habit's current streak.
type HabitStreakResult struct {
	HabitID       string `json:"habit_id"`
	Name          string `json:"name"`
	Color         string `json:"color"`
	CurrentStreak int    `json:"current_streak"`
	DoneToday     bool   `json:"done_today"`
}

// GetHabitStreaksDeps holds dependencies for the streak projection.
type GetHabitStreaksDeps struct {
	HabitStore HabitLister
}

// QueryGetHabitStreaks computes the current streak for every habit.
// Day boundaries follow now's location.
// PRE: none
// POST: returns one entry per habit, in store order
func QueryGetHabitStreaks(ctx context.Context, now time.Time, deps GetHabitStreaksDeps) ([]HabitStreakResult, error) {
	habits, err := deps.HabitStore.List(ctx)
	if err != nil {
		return nil, err
	}

	today := now.Format(habit.DateLayout)
	results := make([]HabitStreakResult, 0, len(habits))
	for _, h := range habits {
		completed := habit.CompletedSet(h.Logs)
		results = append(results, HabitStreakResult{
			HabitID:       h.ID,
			Name:          h.Name,
			Color:         h.Color,
			CurrentStreak: habit.CurrentStreak(completed, now),
			DoneToday:     completed[today],
		})
	}
	return results, nil
}
