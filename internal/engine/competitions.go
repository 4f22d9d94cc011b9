package engine

import (
	"fmt"

	"github.com/vkotov/stride/internal/models"
)

// JoinCompetition copies a catalog challenge into the user's list,
// stamped with the join time. Joining twice is rejected.
func (e *Engine) JoinCompetition(d *models.Document, publicID string) error {
	for _, c := range d.Competitions.My {
		if c.ID == publicID {
			return fmt.Errorf("already joined competition: %s", publicID)
		}
	}
	for _, c := range d.Competitions.Public {
		if c.ID == publicID {
			now := e.clock.Now()
			c.JoinedAt = &now
			d.Competitions.My = append(d.Competitions.My, c)
			return nil
		}
	}
	return fmt.Errorf("competition not found: %s", publicID)
}

// LeaveCompetition removes a joined challenge. The catalog entry
// stays available.
func (e *Engine) LeaveCompetition(d *models.Document, id string) error {
	for i := range d.Competitions.My {
		if d.Competitions.My[i].ID == id {
			d.Competitions.My = append(d.Competitions.My[:i], d.Competitions.My[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("competition not joined: %s", id)
}
