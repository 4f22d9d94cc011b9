package utils

import (
	"testing"
	"time"
)

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		date string
		n    int
		want string
	}{
		{"forward", "2024-01-03", 2, "2024-01-05"},
		{"backward", "2024-01-03", -3, "2023-12-31"},
		{"month boundary", "2024-01-31", 1, "2024-02-01"},
		{"leap day", "2024-02-28", 1, "2024-02-29"},
		{"invalid passes through", "not-a-date", 1, "not-a-date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddDays(tt.date, tt.n); got != tt.want {
				t.Errorf("AddDays(%q, %d) = %q, want %q", tt.date, tt.n, got, tt.want)
			}
		})
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2024-01-03", "2023-12-31"}, // Wednesday
		{"2023-12-31", "2023-12-31"}, // Sunday anchors on itself
		{"2024-01-06", "2023-12-31"}, // Saturday
		{"2024-01-07", "2024-01-07"}, // next Sunday
	}
	for _, tt := range tests {
		if got := WeekStart(tt.date); got != tt.want {
			t.Errorf("WeekStart(%q) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestWeekday(t *testing.T) {
	if got := Weekday("2024-01-03"); got != time.Wednesday {
		t.Errorf("Weekday = %v, want Wednesday", got)
	}
	if got := Weekday("garbage"); got != time.Sunday {
		t.Errorf("Weekday on invalid input = %v, want Sunday", got)
	}
}

func TestValidDate(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"2024-01-03", true},
		{"2024-1-3", false},
		{"03.01.2024", false},
		{"2024-13-01", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidDate(tt.date); got != tt.want {
			t.Errorf("ValidDate(%q) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestFixedClock(t *testing.T) {
	c := FixedClock{T: time.Date(2024, 1, 3, 23, 59, 0, 0, time.UTC)}
	if c.Today() != "2024-01-03" {
		t.Errorf("Today() = %q", c.Today())
	}
}
