package engine

import (
	"fmt"

	"github.com/vkotov/stride/internal/models"
	"github.com/vkotov/stride/internal/streak"
	"github.com/vkotov/stride/internal/utils"
)

// HabitInput carries the user-provided fields of a new habit.
type HabitInput struct {
	Title       string
	Type        models.HabitType
	QuantTarget int
	Category    string
	ActiveDays  models.ActiveDays
	Tags        []string
}

// AddHabit appends a new active habit with an empty history.
func (e *Engine) AddHabit(d *models.Document, in HabitInput) models.Habit {
	h := models.Habit{
		Lifecycle:   e.newLifecycle(),
		Title:       in.Title,
		Type:        in.Type,
		QuantTarget: in.QuantTarget,
		History:     models.History{},
		Category:    in.Category,
		ActiveDays:  in.ActiveDays,
		Tags:        in.Tags,
	}
	if h.Type == "" {
		h.Type = models.HabitBinary
	}
	if h.ActiveDays.Policy == "" {
		h.ActiveDays.Policy = models.ActiveDaily
	}
	if h.Tags == nil {
		h.Tags = []string{}
	}
	d.Habits = append(d.Habits, h)
	return h
}

// MarkHabit records a day on the habit's history and recomputes the
// derived streak fields. With explicit nil, binary habits toggle and
// quantitative habits increment. Streaks are always recomputed from
// the history; the stored values are never trusted on their own.
func (e *Engine) MarkHabit(d *models.Document, id, date string, explicit *models.DayValue) error {
	if date == "" {
		date = e.clock.Today()
	}
	if !utils.ValidDate(date) {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", date)
	}
	i := indexHabit(d, id)
	if i < 0 {
		return notFound(models.KindHabit, id)
	}
	h := &d.Habits[i]
	h.History = streak.MarkDay(h.History, date, h.Type, explicit)
	e.refreshHabit(h)
	return nil
}

// DecrementHabit lowers a quantitative habit's count for the day by
// one, flooring at zero.
func (e *Engine) DecrementHabit(d *models.Document, id, date string) error {
	if date == "" {
		date = e.clock.Today()
	}
	if !utils.ValidDate(date) {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", date)
	}
	i := indexHabit(d, id)
	if i < 0 {
		return notFound(models.KindHabit, id)
	}
	h := &d.Habits[i]
	if h.Type != models.HabitQuant {
		return fmt.Errorf("habit %q is not quantitative", h.Title)
	}
	h.History = streak.DecrementDay(h.History, date)
	e.refreshHabit(h)
	return nil
}

// RefreshStreaks recomputes the derived streak fields of every active
// habit. Run after load so yesterday's streaks decay with the calendar
// rather than being trusted from storage.
func (e *Engine) RefreshStreaks(d *models.Document) {
	for i := range d.Habits {
		e.refreshHabit(&d.Habits[i])
	}
}

func (e *Engine) refreshHabit(h *models.Habit) {
	today := e.clock.Today()
	h.Streak = streak.CurrentStreak(h.History, today)
	h.Best = streak.BestStreak(h.History, today, h.Best)
}

func indexHabit(d *models.Document, id string) int {
	for i := range d.Habits {
		if d.Habits[i].ID == id {
			return i
		}
	}
	return -1
}
