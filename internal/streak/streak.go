// Package streak turns a sparse per-day completion history into
// streak counts and derived dashboard metrics. Every function is pure:
// inputs are never mutated and nothing here can fail — malformed
// history cells count as incomplete days.
package streak

import (
	"github.com/vkotov/stride/internal/constants"
	"github.com/vkotov/stride/internal/models"
	"github.com/vkotov/stride/internal/utils"
)

// IsDayComplete reports whether a history cell counts as done.
func IsDayComplete(v models.DayValue) bool {
	return v.IsComplete()
}

// CurrentStreak counts consecutive complete days ending at (and
// including) today, walking backward up to the lookback bound. A
// streak requires an unbroken run ending today: if today itself is
// incomplete the streak is 0.
func CurrentStreak(h models.History, today string) int {
	streak := 0
	day := today
	for i := 0; i < constants.StreakLookbackDays; i++ {
		if !h[day].IsComplete() {
			break
		}
		streak++
		day = utils.AddDays(day, -1)
	}
	return streak
}

// BestStreak returns the best streak after accounting for the current
// run. Best streaks are monotonically non-decreasing over a habit's
// lifetime, so the previous persisted best is the floor.
func BestStreak(h models.History, today string, previousBest int) int {
	if cur := CurrentStreak(h, today); cur > previousBest {
		return cur
	}
	return previousBest
}

// MarkDay returns a new history with date's entry updated. An explicit
// value wins; otherwise binary habits toggle (an unset day reads as
// false) and quantitative habits increment (an unset day reads as 0).
// The input history is never mutated and keys are never removed.
func MarkDay(h models.History, date string, habitType models.HabitType, explicit *models.DayValue) models.History {
	out := h.Clone()
	if out == nil {
		out = models.History{}
	}
	if explicit != nil {
		out[date] = *explicit
		return out
	}
	switch habitType {
	case models.HabitQuant:
		out[date] = models.Count(out[date].CountValue() + 1)
	default:
		out[date] = models.Done(!(out[date].Kind() == models.DayDone && out[date].IsComplete()))
	}
	return out
}

// DecrementDay returns a new history with a quantitative day's count
// lowered by one, flooring at zero. The key stays recorded even at
// zero; history only grows.
func DecrementDay(h models.History, date string) models.History {
	out := h.Clone()
	if out == nil {
		out = models.History{}
	}
	n := out[date].CountValue() - 1
	if n < 0 {
		n = 0
	}
	out[date] = models.Count(n)
	return out
}
