package engine

import (
	"github.com/vkotov/stride/internal/models"
	"github.com/vkotov/stride/internal/streak"
)

// Summary is the dashboard snapshot: list sizes plus the derived
// habit metrics for today.
type Summary struct {
	Date   string
	Goals  int
	Habits int
	Wishes int

	Habit streak.Summary

	TipOfDay string
}

// Summarize derives the dashboard numbers for today. The tip rotates
// deterministically by day so the same day always shows the same tip.
func (e *Engine) Summarize(d *models.Document) Summary {
	today := e.clock.Today()
	s := Summary{
		Date:   today,
		Goals:  len(d.Goals),
		Habits: len(d.Habits),
		Wishes: len(d.Wishes),
		Habit:  streak.Summarize(d.Habits, today),
	}
	if len(d.Tips) > 0 {
		s.TipOfDay = d.Tips[e.clock.Now().YearDay()%len(d.Tips)].Text
	}
	return s
}
