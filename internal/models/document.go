package models

import (
	"encoding/json"
	"time"
)

// QuietHours is a do-not-disturb window in whole hours (wrap past
// midnight is allowed, e.g. from 22 to 7).
type QuietHours struct {
	Enabled bool `json:"enabled"`
	From    int  `json:"from"`
	To      int  `json:"to"`
}

// Units holds the user's display unit choices.
type Units struct {
	Currency string `json:"currency"`
	Weight   string `json:"weight"`
	Length   string `json:"length"`
}

// Visibility toggles optional sections of the app.
type Visibility struct {
	Notes        bool `json:"notes"`
	Competitions bool `json:"competitions"`
}

// Settings are user preferences. Every field has a default; no other
// invariants apply.
type Settings struct {
	Theme      string     `json:"theme"`
	Language   string     `json:"language"`
	DefaultTab string     `json:"defaultTab"`
	TipsOnHome bool       `json:"tipsOnHome"`
	Nickname   string     `json:"nickname"`
	QuietHours QuietHours `json:"quietHours"`
	Units      Units      `json:"units"`
	Visibility Visibility `json:"visibility"`
}

// JournalEntry is a dated free-text note.
type JournalEntry struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
	Title   string    `json:"title,omitempty"`
	Content string    `json:"content"`
}

// Journal is a named collection of entries.
type Journal struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Entries []JournalEntry `json:"entries"`
}

// League is a bracket within a public competition.
type League struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Competition is a challenge, either from the public catalog or
// joined by the user.
type Competition struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Type        string     `json:"type"`
	Duration    int        `json:"duration"`
	Description string     `json:"description,omitempty"`
	Leagues     []League   `json:"leagues,omitempty"`
	JoinedAt    *time.Time `json:"joinedAt,omitempty"`
}

// Competitions splits user-joined challenges from the catalog.
type Competitions struct {
	My     []Competition `json:"my"`
	Public []Competition `json:"public"`
}

// Tip is a static motivational string, rotated on the dashboard.
type Tip struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// ArchivedItem is one entry of the archive: exactly one of Goal,
// Habit or Wish is set, matching Kind. The transition timestamps live
// on the entity's lifecycle.
type ArchivedItem struct {
	Kind  EntityKind `json:"kind"`
	Goal  *Goal      `json:"goal,omitempty"`
	Habit *Habit     `json:"habit,omitempty"`
	Wish  *Wish      `json:"wish,omitempty"`
}

// Entity returns the lifecycle of whichever variant is set.
func (a *ArchivedItem) Entity() *Lifecycle {
	switch {
	case a.Goal != nil:
		return &a.Goal.Lifecycle
	case a.Habit != nil:
		return &a.Habit.Lifecycle
	case a.Wish != nil:
		return &a.Wish.Lifecycle
	}
	return nil
}

// Title returns the display title of whichever variant is set.
func (a *ArchivedItem) Title() string {
	switch {
	case a.Goal != nil:
		return a.Goal.Title
	case a.Habit != nil:
		return a.Habit.Title
	case a.Wish != nil:
		return a.Wish.Title
	}
	return ""
}

// Document is the entire persisted application state. It is owned by
// a single store instance; all mutation goes through dispatched
// updates and the whole document is written back on every change.
type Document struct {
	Version        int            `json:"version"`
	Settings       Settings       `json:"settings"`
	Goals          []Goal         `json:"goals"`
	Habits         []Habit        `json:"habits"`
	Wishes         []Wish         `json:"wishes"`
	CompletedItems []ArchivedItem `json:"completedItems"`
	Journals       []Journal      `json:"journals"`
	Competitions   Competitions   `json:"competitions"`
	Tips           []Tip          `json:"tips"`
}

// Clone returns a deep copy of the document. The document is plain
// data, so a JSON round trip is a correct (and small) deep copy.
func (d *Document) Clone() *Document {
	data, err := json.Marshal(d)
	if err != nil {
		return &Document{}
	}
	out := &Document{}
	if err := json.Unmarshal(data, out); err != nil {
		return &Document{}
	}
	return out
}
