package engine

import (
	"fmt"

	"github.com/vkotov/stride/internal/models"
)

// AddJournal creates a new named journal.
func (e *Engine) AddJournal(d *models.Document, name string) models.Journal {
	j := models.Journal{
		ID:      e.NewID(),
		Name:    name,
		Entries: []models.JournalEntry{},
	}
	d.Journals = append(d.Journals, j)
	return j
}

// AddEntry appends a dated entry to a journal.
func (e *Engine) AddEntry(d *models.Document, journalID, title, content string) error {
	for i := range d.Journals {
		if d.Journals[i].ID != journalID {
			continue
		}
		d.Journals[i].Entries = append(d.Journals[i].Entries, models.JournalEntry{
			ID:      e.NewID(),
			Date:    e.clock.Now(),
			Title:   title,
			Content: content,
		})
		return nil
	}
	return fmt.Errorf("journal not found: %s", journalID)
}
