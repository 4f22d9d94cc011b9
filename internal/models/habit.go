package models

import (
	"encoding/json"
	"time"
)

// HabitType distinguishes check-off habits from counted ones.
type HabitType string

const (
	HabitBinary HabitType = "binary"
	HabitQuant  HabitType = "quant"
)

// ActivePolicy determines which weekdays a habit is expected on.
type ActivePolicy string

const (
	ActiveDaily    ActivePolicy = "daily"
	ActiveWeekdays ActivePolicy = "weekdays"
	ActiveWeekends ActivePolicy = "weekends"
	ActiveCustom   ActivePolicy = "custom"
)

// ActiveDays is a habit's weekday policy. Custom is only consulted
// when Policy is ActiveCustom.
type ActiveDays struct {
	Policy ActivePolicy   `json:"policy"`
	Custom []time.Weekday `json:"custom,omitempty"`
}

// ActiveOn reports whether the habit is expected on the given weekday.
// An unknown or empty policy falls back to daily so older records
// never render every cell inactive.
func (a ActiveDays) ActiveOn(day time.Weekday) bool {
	switch a.Policy {
	case ActiveWeekdays:
		return day != time.Saturday && day != time.Sunday
	case ActiveWeekends:
		return day == time.Saturday || day == time.Sunday
	case ActiveCustom:
		for _, d := range a.Custom {
			if d == day {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// UnmarshalJSON accepts both the current object shape and the legacy
// plain-string policy ("daily", "weekdays", ...).
func (a *ActiveDays) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		a.Policy = ActivePolicy(s)
		a.Custom = nil
		return nil
	}
	type alias ActiveDays
	var v alias
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*a = ActiveDays(v)
	return nil
}

// Habit is a recurring practice with a per-day completion history.
// Streak and Best are derived from History and must always equal what
// the streak engine would recompute; they are persisted only so the
// best streak survives a break.
type Habit struct {
	Lifecycle

	Title       string     `json:"title"`
	Type        HabitType  `json:"type"`
	QuantTarget int        `json:"quantTarget,omitempty"`
	History     History    `json:"history"`
	Streak      int        `json:"streak"`
	Best        int        `json:"best"`
	Category    string     `json:"category,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	ActiveDays  ActiveDays `json:"activeDays"`
}
