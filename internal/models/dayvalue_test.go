package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDayValueIsComplete(t *testing.T) {
	tests := []struct {
		name string
		v    DayValue
		want bool
	}{
		{"unset", Unset(), false},
		{"done true", Done(true), true},
		{"done false", Done(false), false},
		{"count zero", Count(0), false},
		{"count positive", Count(5), true},
		{"count negative clamps", Count(-3), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsComplete(); got != tt.want {
				t.Errorf("IsComplete() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDayValueJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		v    DayValue
		wire string
	}{
		{"done true", Done(true), "true"},
		{"done false", Done(false), "false"},
		{"count", Count(8), "8"},
		{"unset", Unset(), "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.v)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if string(data) != tt.wire {
				t.Errorf("Marshal = %s, want %s", data, tt.wire)
			}
		})
	}
}

func TestDayValueDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		wire string
		want DayValue
	}{
		{"bool", "true", Done(true)},
		{"number", "3", Count(3)},
		{"negative number", "-2", Unset()},
		{"string", `"yes"`, Unset()},
		{"object", `{"done":true}`, Unset()},
		{"null", "null", Unset()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v DayValue
			if err := json.Unmarshal([]byte(tt.wire), &v); err != nil {
				t.Fatalf("Unmarshal raised: %v", err)
			}
			if v != tt.want {
				t.Errorf("decoded %s = %+v, want %+v", tt.wire, v, tt.want)
			}
		})
	}
}

func TestHistoryLookupOnAbsentDay(t *testing.T) {
	h := History{"2024-01-01": Done(true)}
	if h["2024-01-02"].IsComplete() {
		t.Error("absent day should be incomplete")
	}
	if h["2024-01-02"].Recorded() {
		t.Error("absent day should not count as recorded")
	}
}

func TestActiveDaysPolicies(t *testing.T) {
	tests := []struct {
		name   string
		policy ActiveDays
		day    time.Weekday
		want   bool
	}{
		{"daily monday", ActiveDays{Policy: ActiveDaily}, time.Monday, true},
		{"daily sunday", ActiveDays{Policy: ActiveDaily}, time.Sunday, true},
		{"weekdays friday", ActiveDays{Policy: ActiveWeekdays}, time.Friday, true},
		{"weekdays saturday", ActiveDays{Policy: ActiveWeekdays}, time.Saturday, false},
		{"weekends sunday", ActiveDays{Policy: ActiveWeekends}, time.Sunday, true},
		{"weekends tuesday", ActiveDays{Policy: ActiveWeekends}, time.Tuesday, false},
		{"custom hit", ActiveDays{Policy: ActiveCustom, Custom: []time.Weekday{time.Monday, time.Thursday}}, time.Thursday, true},
		{"custom miss", ActiveDays{Policy: ActiveCustom, Custom: []time.Weekday{time.Monday}}, time.Friday, false},
		{"empty policy falls back to daily", ActiveDays{}, time.Wednesday, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.ActiveOn(tt.day); got != tt.want {
				t.Errorf("ActiveOn(%v) = %v, want %v", tt.day, got, tt.want)
			}
		})
	}
}

func TestActiveDaysDecodesLegacyString(t *testing.T) {
	var a ActiveDays
	if err := json.Unmarshal([]byte(`"weekdays"`), &a); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if a.Policy != ActiveWeekdays {
		t.Errorf("Policy = %q, want %q", a.Policy, ActiveWeekdays)
	}

	if err := json.Unmarshal([]byte(`{"policy":"custom","custom":[1,3]}`), &a); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if a.Policy != ActiveCustom || len(a.Custom) != 2 {
		t.Errorf("decoded object form = %+v", a)
	}
}

func TestDocumentClone(t *testing.T) {
	doc := DefaultDocument()
	doc.Habits = append(doc.Habits, Habit{
		Lifecycle: Lifecycle{ID: "h1", Status: StatusActive},
		Title:     "Пить воду",
		Type:      HabitBinary,
		History:   History{"2024-01-01": Done(true)},
	})

	clone := doc.Clone()
	clone.Habits[0].History["2024-01-02"] = Done(true)
	clone.Settings.Nickname = "Other"

	if len(doc.Habits[0].History) != 1 {
		t.Error("mutating the clone's history leaked into the original")
	}
	if doc.Settings.Nickname != "User" {
		t.Error("mutating the clone's settings leaked into the original")
	}
}
