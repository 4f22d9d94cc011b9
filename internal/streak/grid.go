package streak

import (
	"github.com/vkotov/stride/internal/models"
	"github.com/vkotov/stride/internal/utils"
)

// DayCell is one day of a weekly grid. Inactive days render as
// non-interactive placeholders; active days are togglable.
type DayCell struct {
	Date     string
	Active   bool
	Complete bool
	Recorded bool
}

// WeekGrid derives the 7-day window anchored at the most recent
// Sunday on or before today.
func WeekGrid(h models.History, policy models.ActiveDays, today string) [7]DayCell {
	var grid [7]DayCell
	start := utils.WeekStart(today)
	for i := range grid {
		date := utils.AddDays(start, i)
		v := h[date]
		grid[i] = DayCell{
			Date:     date,
			Active:   policy.ActiveOn(utils.Weekday(date)),
			Complete: v.IsComplete(),
			Recorded: v.Recorded(),
		}
	}
	return grid
}

// Summary holds the dashboard aggregates over a set of habits.
type Summary struct {
	Total           int
	CompleteToday   int
	MissedYesterday int
	AtRisk          int
}

// CompletionRatio is today's completion ratio; 0 when there are no
// habits.
func (s Summary) CompletionRatio() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.CompleteToday) / float64(s.Total)
}

// Summarize computes the dashboard aggregates:
//
//   - MissedYesterday counts habits where yesterday was recorded but
//     not completed — distinct from having no record at all.
//   - AtRisk counts habits where yesterday was complete and today has
//     no completion yet.
func Summarize(habits []models.Habit, today string) Summary {
	yesterday := utils.Yesterday(today)
	s := Summary{Total: len(habits)}
	for i := range habits {
		h := habits[i].History
		todayVal := h[today]
		yVal := h[yesterday]
		if todayVal.IsComplete() {
			s.CompleteToday++
		}
		if yVal.Recorded() && !yVal.IsComplete() {
			s.MissedYesterday++
		}
		if yVal.IsComplete() && !todayVal.IsComplete() {
			s.AtRisk++
		}
	}
	return s
}
