package engine

import (
	"fmt"

	"github.com/vkotov/stride/internal/models"
)

// Complete stamps the entity as completed and moves it from its
// active list into the archive. The remove-and-append happens within
// a single document update, so the entity is never in both places.
func (e *Engine) Complete(d *models.Document, kind models.EntityKind, id string) error {
	return e.archive(d, kind, id, models.StatusCompleted)
}

// Delete stamps the entity as deleted and moves it into the archive.
// Deletion is reversible until DeleteForever.
func (e *Engine) Delete(d *models.Document, kind models.EntityKind, id string) error {
	return e.archive(d, kind, id, models.StatusDeleted)
}

func (e *Engine) archive(d *models.Document, kind models.EntityKind, id string, status models.Status) error {
	now := e.clock.Now()
	stamp := func(l *models.Lifecycle) {
		l.Status = status
		if status == models.StatusCompleted {
			l.CompletedAt = &now
		} else {
			l.DeletedAt = &now
		}
	}

	switch kind {
	case models.KindGoal:
		i := indexGoal(d, id)
		if i < 0 {
			return notFound(kind, id)
		}
		g := d.Goals[i]
		stamp(&g.Lifecycle)
		d.Goals = append(d.Goals[:i], d.Goals[i+1:]...)
		d.CompletedItems = append(d.CompletedItems, models.ArchivedItem{Kind: kind, Goal: &g})
	case models.KindHabit:
		i := indexHabit(d, id)
		if i < 0 {
			return notFound(kind, id)
		}
		h := d.Habits[i]
		stamp(&h.Lifecycle)
		d.Habits = append(d.Habits[:i], d.Habits[i+1:]...)
		d.CompletedItems = append(d.CompletedItems, models.ArchivedItem{Kind: kind, Habit: &h})
	case models.KindWish:
		i := indexWish(d, id)
		if i < 0 {
			return notFound(kind, id)
		}
		w := d.Wishes[i]
		stamp(&w.Lifecycle)
		d.Wishes = append(d.Wishes[:i], d.Wishes[i+1:]...)
		d.CompletedItems = append(d.CompletedItems, models.ArchivedItem{Kind: kind, Wish: &w})
	default:
		return fmt.Errorf("unknown entity kind: %s", kind)
	}
	return nil
}

// Restore moves an archived entity back to its active list, clearing
// the status and transition timestamps. The restored entity equals the
// original except for those cleared fields.
func (e *Engine) Restore(d *models.Document, id string) error {
	i := indexArchived(d, id)
	if i < 0 {
		return fmt.Errorf("archived item not found: %s", id)
	}
	item := d.CompletedItems[i]
	d.CompletedItems = append(d.CompletedItems[:i], d.CompletedItems[i+1:]...)

	switch {
	case item.Goal != nil:
		item.Goal.ClearArchiveState()
		d.Goals = append(d.Goals, *item.Goal)
	case item.Habit != nil:
		item.Habit.ClearArchiveState()
		e.refreshHabit(item.Habit)
		d.Habits = append(d.Habits, *item.Habit)
	case item.Wish != nil:
		item.Wish.ClearArchiveState()
		d.Wishes = append(d.Wishes, *item.Wish)
	default:
		return fmt.Errorf("archived item %s has no payload", id)
	}
	return nil
}

// DeleteForever permanently removes an archived entity. There is no
// trace left and no way back.
func (e *Engine) DeleteForever(d *models.Document, id string) error {
	i := indexArchived(d, id)
	if i < 0 {
		return fmt.Errorf("archived item not found: %s", id)
	}
	d.CompletedItems = append(d.CompletedItems[:i], d.CompletedItems[i+1:]...)
	return nil
}

func indexArchived(d *models.Document, id string) int {
	for i := range d.CompletedItems {
		if l := d.CompletedItems[i].Entity(); l != nil && l.ID == id {
			return i
		}
	}
	return -1
}
