// Package engine implements the entity operations of the tracker:
// CRUD over goals, habits and wishes, the archive lifecycle, habit
// marking with derived-streak maintenance, journals and competitions.
// Every operation mutates a document in place and is applied through
// the app store's dispatch so each user action is one
// mutate-then-persist cycle.
package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/vkotov/stride/internal/models"
	"github.com/vkotov/stride/internal/utils"
)

type Engine struct {
	clock utils.Clock
}

func New(clock utils.Clock) *Engine {
	return &Engine{clock: clock}
}

// NewID generates a globally unique entity id. IDs are opaque and
// never reused.
func (e *Engine) NewID() string {
	return uuid.New().String()
}

// Clock exposes the engine's time source so callers share one notion
// of "today".
func (e *Engine) Clock() utils.Clock {
	return e.clock
}

func (e *Engine) newLifecycle() models.Lifecycle {
	return models.Lifecycle{
		ID:        e.NewID(),
		Status:    models.StatusActive,
		CreatedAt: e.clock.Now(),
	}
}

func notFound(kind models.EntityKind, id string) error {
	return fmt.Errorf("%s not found: %s", kind, id)
}
