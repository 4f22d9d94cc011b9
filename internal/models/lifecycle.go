// Package models defines the persisted document and its entities.
// Everything here is plain data with JSON tags matching the stored
// shape; behavior lives in the streak and engine packages.
package models

import "time"

// Status is an entity's lifecycle state. An entity is in exactly one
// state; completed and deleted entities live in the archive.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusDeleted   Status = "deleted"
)

// EntityKind names the archivable entity kinds.
type EntityKind string

const (
	KindGoal  EntityKind = "goal"
	KindHabit EntityKind = "habit"
	KindWish  EntityKind = "wish"
)

// Lifecycle is the identity and lifecycle state shared by goals,
// habits and wishes. The legacy bool pair is only populated when
// decoding old documents; normalization folds it into Status and
// clears it.
type Lifecycle struct {
	ID          string     `json:"id"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty"`

	LegacyCompleted bool `json:"completed,omitempty"`
	LegacyDeleted   bool `json:"deleted,omitempty"`
}

// Archived reports whether the entity belongs in the archive.
func (l *Lifecycle) Archived() bool {
	return l.Status == StatusCompleted || l.Status == StatusDeleted
}

// ClearArchiveState returns the entity to the active state, dropping
// the transition timestamps. Used on restore.
func (l *Lifecycle) ClearArchiveState() {
	l.Status = StatusActive
	l.CompletedAt = nil
	l.DeletedAt = nil
}
