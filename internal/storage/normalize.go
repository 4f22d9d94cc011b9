package storage

import (
	"github.com/vkotov/stride/internal/constants"
	"github.com/vkotov/stride/internal/models"
)

// Normalize backfills every record read from storage with the
// defaults its schema version predates, so older documents never
// surface zero-valued fields the code does not expect. It also folds
// the legacy completed/deleted bool pair into the status enum and
// clears archive timestamps that contradict it.
//
// Each entity kind has one declarative template function below;
// call sites never scatter their own default literals.
func Normalize(doc *models.Document) {
	doc.Version = constants.SchemaVersion

	if doc.Goals == nil {
		doc.Goals = []models.Goal{}
	}
	if doc.Habits == nil {
		doc.Habits = []models.Habit{}
	}
	if doc.Wishes == nil {
		doc.Wishes = []models.Wish{}
	}
	if doc.CompletedItems == nil {
		doc.CompletedItems = []models.ArchivedItem{}
	}
	if len(doc.Journals) == 0 {
		doc.Journals = models.DefaultDocument().Journals
	}

	for i := range doc.Goals {
		normalizeGoal(&doc.Goals[i])
	}
	for i := range doc.Habits {
		normalizeHabit(&doc.Habits[i])
	}
	for i := range doc.Wishes {
		normalizeWish(&doc.Wishes[i])
	}
	for i := range doc.CompletedItems {
		item := &doc.CompletedItems[i]
		switch {
		case item.Goal != nil:
			item.Kind = models.KindGoal
			normalizeGoal(item.Goal)
		case item.Habit != nil:
			item.Kind = models.KindHabit
			normalizeHabit(item.Habit)
		case item.Wish != nil:
			item.Kind = models.KindWish
			normalizeWish(item.Wish)
		}
	}
	for i := range doc.Journals {
		if doc.Journals[i].Entries == nil {
			doc.Journals[i].Entries = []models.JournalEntry{}
		}
	}
	if doc.Competitions.My == nil {
		doc.Competitions.My = []models.Competition{}
	}
	if len(doc.Competitions.Public) == 0 {
		doc.Competitions.Public = models.DefaultDocument().Competitions.Public
	}
	if len(doc.Tips) == 0 {
		doc.Tips = models.DefaultDocument().Tips
	}
}

// normalizeLifecycle maps the legacy bool pair onto the status enum.
// Deleted wins over completed when an old document carries both.
func normalizeLifecycle(l *models.Lifecycle) {
	if l.Status == "" {
		switch {
		case l.LegacyDeleted:
			l.Status = models.StatusDeleted
		case l.LegacyCompleted:
			l.Status = models.StatusCompleted
		default:
			l.Status = models.StatusActive
		}
	}
	l.LegacyCompleted = false
	l.LegacyDeleted = false
	if l.Status == models.StatusActive {
		l.CompletedAt = nil
		l.DeletedAt = nil
	}
}

func normalizeGoal(g *models.Goal) {
	normalizeLifecycle(&g.Lifecycle)
	if g.Priority == "" {
		g.Priority = models.PriorityMedium
	}
	if g.Tags == nil {
		g.Tags = []string{}
	}
}

func normalizeHabit(h *models.Habit) {
	normalizeLifecycle(&h.Lifecycle)
	if h.Type == "" {
		h.Type = models.HabitBinary
	}
	if h.History == nil {
		h.History = models.History{}
	}
	if h.ActiveDays.Policy == "" {
		h.ActiveDays.Policy = models.ActiveDaily
	}
	if h.Tags == nil {
		h.Tags = []string{}
	}
	if h.Streak < 0 {
		h.Streak = 0
	}
	if h.Best < h.Streak {
		h.Best = h.Streak
	}
}

func normalizeWish(w *models.Wish) {
	normalizeLifecycle(&w.Lifecycle)
	if w.SavedAmount < 0 {
		w.SavedAmount = 0
	}
	if w.Tags == nil {
		w.Tags = []string{}
	}
}
