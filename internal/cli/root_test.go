package cli

import (
	"testing"
	"time"

	"github.com/vkotov/stride/internal/models"
)

func TestMatchID(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		title string
		query string
		want  bool
	}{
		{"exact title", "abcd1234", "Morning run", "Morning run", true},
		{"id prefix", "abcd1234-uuid", "Morning run", "abcd", true},
		{"short prefix rejected", "abcd1234-uuid", "Morning run", "abc", false},
		{"wrong title", "abcd1234", "Morning run", "Evening run", false},
		{"title is case sensitive", "abcd1234", "Morning run", "morning run", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchID(tt.id, tt.title, tt.query); got != tt.want {
				t.Errorf("matchID(%q, %q, %q) = %v, want %v", tt.id, tt.title, tt.query, got, tt.want)
			}
		})
	}
}

func TestFindHabit(t *testing.T) {
	doc := models.DefaultDocument()
	doc.Habits = []models.Habit{
		{Lifecycle: models.Lifecycle{ID: "11112222-aaaa"}, Title: "Вода"},
		{Lifecycle: models.Lifecycle{ID: "33334444-bbbb"}, Title: "Чтение"},
	}

	h, err := findHabit(doc, "Чтение")
	if err != nil || h.ID != "33334444-bbbb" {
		t.Errorf("findHabit by title = %+v, %v", h, err)
	}
	h, err = findHabit(doc, "1111")
	if err != nil || h.Title != "Вода" {
		t.Errorf("findHabit by prefix = %+v, %v", h, err)
	}
	if _, err = findHabit(doc, "нет такой"); err == nil {
		t.Error("expected an error for an unknown habit")
	}
}

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []time.Weekday
		wantErr bool
	}{
		{"short names", "mon,wed,fri", []time.Weekday{time.Monday, time.Wednesday, time.Friday}, false},
		{"full names mixed case", "Monday,SATURDAY", []time.Weekday{time.Monday, time.Saturday}, false},
		{"numeric", "0,6", []time.Weekday{time.Sunday, time.Saturday}, false},
		{"spaces tolerated", " tue , thu ", []time.Weekday{time.Tuesday, time.Thursday}, false},
		{"invalid name", "mon,funday", nil, true},
		{"out of range number", "7", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekdays(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWeekdays(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseWeekdays(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseWeekdays(%q)[%d] = %v, want %v", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseDayValue(t *testing.T) {
	tests := []struct {
		input   string
		want    models.DayValue
		wantErr bool
	}{
		{"true", models.Done(true), false},
		{"false", models.Done(false), false},
		{"8", models.Count(8), false},
		{"0", models.Count(0), false},
		{"-1", models.Unset(), true},
		{"yes", models.Unset(), true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseDayValue(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDayValue(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseDayValue(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("0123456789abcdef"); got != "01234567" {
		t.Errorf("shortID = %q", got)
	}
	if got := shortID("ab"); got != "ab" {
		t.Errorf("shortID on short input = %q", got)
	}
}
