package streak

import (
	"testing"

	"github.com/vkotov/stride/internal/models"
	"github.com/vkotov/stride/internal/utils"
)

func TestCurrentStreak(t *testing.T) {
	threeDay := models.History{
		"2024-01-01": models.Done(true),
		"2024-01-02": models.Done(true),
		"2024-01-03": models.Done(true),
	}
	tests := []struct {
		name  string
		h     models.History
		today string
		want  int
	}{
		{"three consecutive days ending today", threeDay, "2024-01-03", 3},
		{"streak broken by a gap", threeDay, "2024-01-05", 0},
		{"today incomplete stops at zero", threeDay, "2024-01-04", 0},
		{"partial run counts from today back", threeDay, "2024-01-02", 2},
		{"empty history", models.History{}, "2024-01-03", 0},
		{"nil history", nil, "2024-01-03", 0},
		{"done false breaks the run", models.History{
			"2024-01-02": models.Done(false),
			"2024-01-03": models.Done(true),
		}, "2024-01-03", 1},
		{"zero count breaks the run", models.History{
			"2024-01-02": models.Count(0),
			"2024-01-03": models.Count(4),
		}, "2024-01-03", 1},
		{"positive counts chain", models.History{
			"2024-01-02": models.Count(2),
			"2024-01-03": models.Count(7),
		}, "2024-01-03", 2},
		{"month boundary", models.History{
			"2024-01-31": models.Done(true),
			"2024-02-01": models.Done(true),
		}, "2024-02-01", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentStreak(tt.h, tt.today); got != tt.want {
				t.Errorf("CurrentStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCurrentStreakIsBounded(t *testing.T) {
	// 400 consecutive complete days; the walk stops at the lookback
	// bound instead of scanning forever.
	h := models.History{}
	day := "2024-01-01"
	for i := 0; i < 400; i++ {
		h[day] = models.Done(true)
		day = addDaysHelper(t, day, 1)
	}
	last := addDaysHelper(t, "2024-01-01", 399)
	if got := CurrentStreak(h, last); got != 365 {
		t.Errorf("CurrentStreak() = %d, want capped at 365", got)
	}
}

func TestBestStreak(t *testing.T) {
	h := models.History{
		"2024-01-02": models.Done(true),
		"2024-01-03": models.Done(true),
	}
	if got := BestStreak(h, "2024-01-03", 1); got != 2 {
		t.Errorf("BestStreak() = %d, want 2", got)
	}
	// Best never regresses when the current run is shorter.
	if got := BestStreak(h, "2024-01-05", 9); got != 9 {
		t.Errorf("BestStreak() = %d, want 9", got)
	}
	if got := BestStreak(nil, "2024-01-05", 0); got != 0 {
		t.Errorf("BestStreak() = %d, want 0", got)
	}
}

func TestMarkDayBinaryToggle(t *testing.T) {
	h := models.History{"2024-01-03": models.Done(true)}

	off := MarkDay(h, "2024-01-03", models.HabitBinary, nil)
	if off["2024-01-03"].IsComplete() {
		t.Error("toggling a done day should flip it to false")
	}
	if !off["2024-01-03"].Recorded() {
		t.Error("toggled-off day must stay recorded, not be removed")
	}

	on := MarkDay(off, "2024-01-03", models.HabitBinary, nil)
	if !on["2024-01-03"].IsComplete() {
		t.Error("toggling again should flip it back to true")
	}

	// Marking an unset day reads it as false, so the toggle lands on true.
	fresh := MarkDay(models.History{}, "2024-01-04", models.HabitBinary, nil)
	if !fresh["2024-01-04"].IsComplete() {
		t.Error("toggling an unset day should produce true")
	}
}

func TestMarkDayQuantIncrement(t *testing.T) {
	h := models.History{"2024-01-03": models.Count(5)}
	out := MarkDay(h, "2024-01-03", models.HabitQuant, nil)
	if got := out["2024-01-03"].CountValue(); got != 6 {
		t.Errorf("count = %d, want 6", got)
	}
	// Unset day increments from zero.
	out = MarkDay(h, "2024-01-04", models.HabitQuant, nil)
	if got := out["2024-01-04"].CountValue(); got != 1 {
		t.Errorf("count = %d, want 1", got)
	}
}

func TestMarkDayExplicitValue(t *testing.T) {
	v := models.Count(12)
	out := MarkDay(models.History{"2024-01-03": models.Done(true)}, "2024-01-03", models.HabitQuant, &v)
	if got := out["2024-01-03"]; got != models.Count(12) {
		t.Errorf("explicit value not applied, got %+v", got)
	}
}

func TestMarkDayDoesNotMutateInput(t *testing.T) {
	h := models.History{"2024-01-03": models.Done(true)}
	_ = MarkDay(h, "2024-01-03", models.HabitBinary, nil)
	_ = MarkDay(h, "2024-01-04", models.HabitBinary, nil)
	if len(h) != 1 || !h["2024-01-03"].IsComplete() {
		t.Errorf("input history was mutated: %+v", h)
	}

	out := MarkDay(nil, "2024-01-03", models.HabitBinary, nil)
	if !out["2024-01-03"].IsComplete() {
		t.Error("nil history should yield a fresh map with the marked day")
	}
}

func TestDecrementDayFloorsAtZero(t *testing.T) {
	h := models.History{"2024-01-03": models.Count(1)}
	out := DecrementDay(h, "2024-01-03")
	if got := out["2024-01-03"].CountValue(); got != 0 {
		t.Errorf("count = %d, want 0", got)
	}
	out = DecrementDay(out, "2024-01-03")
	if got := out["2024-01-03"].CountValue(); got != 0 {
		t.Errorf("count after second decrement = %d, want 0", got)
	}
	if !out["2024-01-03"].Recorded() {
		t.Error("zero-count day must stay recorded")
	}
}

func addDaysHelper(t *testing.T, date string, n int) string {
	t.Helper()
	return utils.AddDays(date, n)
}
