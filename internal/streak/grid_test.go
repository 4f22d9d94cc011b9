package streak

import (
	"testing"

	"github.com/vkotov/stride/internal/models"
)

func TestWeekGridAnchorsOnSunday(t *testing.T) {
	// 2024-01-03 is a Wednesday; the week starts on Sunday 2023-12-31.
	grid := WeekGrid(models.History{}, models.ActiveDays{Policy: models.ActiveDaily}, "2024-01-03")
	if grid[0].Date != "2023-12-31" {
		t.Errorf("grid[0].Date = %s, want 2023-12-31", grid[0].Date)
	}
	if grid[6].Date != "2024-01-06" {
		t.Errorf("grid[6].Date = %s, want 2024-01-06", grid[6].Date)
	}

	// A Sunday anchors on itself.
	grid = WeekGrid(models.History{}, models.ActiveDays{Policy: models.ActiveDaily}, "2023-12-31")
	if grid[0].Date != "2023-12-31" {
		t.Errorf("sunday anchor: grid[0].Date = %s, want 2023-12-31", grid[0].Date)
	}
}

func TestWeekGridCells(t *testing.T) {
	h := models.History{
		"2024-01-01": models.Done(true),  // Monday, complete
		"2024-01-02": models.Done(false), // Tuesday, recorded but not complete
	}
	grid := WeekGrid(h, models.ActiveDays{Policy: models.ActiveWeekdays}, "2024-01-03")

	mon := grid[1]
	if !mon.Active || !mon.Complete || !mon.Recorded {
		t.Errorf("monday cell = %+v, want active+complete+recorded", mon)
	}
	tue := grid[2]
	if tue.Complete || !tue.Recorded {
		t.Errorf("tuesday cell = %+v, want recorded but not complete", tue)
	}
	sun := grid[0]
	if sun.Active {
		t.Error("sunday should be inactive under the weekdays policy")
	}
	sat := grid[6]
	if sat.Active || sat.Recorded {
		t.Errorf("saturday cell = %+v, want inactive and unrecorded", sat)
	}
}

func TestSummarize(t *testing.T) {
	today := "2024-01-03"
	habit := func(h models.History) models.Habit {
		return models.Habit{Type: models.HabitBinary, History: h}
	}

	habits := []models.Habit{
		// Complete today and yesterday: counts toward CompleteToday only.
		habit(models.History{"2024-01-02": models.Done(true), "2024-01-03": models.Done(true)}),
		// Yesterday recorded false: missed yesterday.
		habit(models.History{"2024-01-02": models.Done(false)}),
		// Yesterday unrecorded: not a miss.
		habit(models.History{}),
		// Yesterday complete, today not yet: streak at risk.
		habit(models.History{"2024-01-02": models.Done(true)}),
	}

	s := Summarize(habits, today)
	if s.Total != 4 {
		t.Errorf("Total = %d, want 4", s.Total)
	}
	if s.CompleteToday != 1 {
		t.Errorf("CompleteToday = %d, want 1", s.CompleteToday)
	}
	if s.MissedYesterday != 1 {
		t.Errorf("MissedYesterday = %d, want 1", s.MissedYesterday)
	}
	if s.AtRisk != 1 {
		t.Errorf("AtRisk = %d, want 1", s.AtRisk)
	}
	if got := s.CompletionRatio(); got != 0.25 {
		t.Errorf("CompletionRatio() = %v, want 0.25", got)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, "2024-01-03")
	if s.Total != 0 || s.CompleteToday != 0 || s.MissedYesterday != 0 || s.AtRisk != 0 {
		t.Errorf("empty summary = %+v", s)
	}
	if got := s.CompletionRatio(); got != 0 {
		t.Errorf("CompletionRatio() on empty = %v, want 0", got)
	}
}
