package engine

import (
	"github.com/vkotov/stride/internal/models"
)

// GoalInput carries the user-provided fields of a new goal.
type GoalInput struct {
	Title    string
	Target   float64
	Unit     string
	Deadline string
	Priority models.Priority
	Category string
	Tags     []string
}

// AddGoal appends a new active goal and returns it.
func (e *Engine) AddGoal(d *models.Document, in GoalInput) models.Goal {
	g := models.Goal{
		Lifecycle: e.newLifecycle(),
		Title:     in.Title,
		Target:    in.Target,
		Unit:      in.Unit,
		Deadline:  in.Deadline,
		Priority:  in.Priority,
		Category:  in.Category,
		Tags:      in.Tags,
	}
	if g.Priority == "" {
		g.Priority = models.PriorityMedium
	}
	if g.Tags == nil {
		g.Tags = []string{}
	}
	d.Goals = append(d.Goals, g)
	return g
}

// GoalPatch is a shallow-merge update; nil fields are left unchanged.
type GoalPatch struct {
	Title    *string
	Target   *float64
	Current  *float64
	Unit     *string
	Deadline *string
	Priority *models.Priority
	Category *string
	Tags     *[]string
}

// UpdateGoal merges the patch into the goal. The auto-complete check
// runs once per patch application, after the merge: if progress has
// reached the target the goal is archived as completed.
func (e *Engine) UpdateGoal(d *models.Document, id string, patch GoalPatch) error {
	i := indexGoal(d, id)
	if i < 0 {
		return notFound(models.KindGoal, id)
	}
	g := &d.Goals[i]
	if patch.Title != nil {
		g.Title = *patch.Title
	}
	if patch.Target != nil {
		g.Target = *patch.Target
	}
	if patch.Current != nil {
		g.Current = *patch.Current
	}
	if patch.Unit != nil {
		g.Unit = *patch.Unit
	}
	if patch.Deadline != nil {
		g.Deadline = *patch.Deadline
	}
	if patch.Priority != nil {
		g.Priority = *patch.Priority
	}
	if patch.Category != nil {
		g.Category = *patch.Category
	}
	if patch.Tags != nil {
		g.Tags = *patch.Tags
	}
	if g.Current < 0 {
		g.Current = 0
	}
	if g.Reached() {
		return e.Complete(d, models.KindGoal, id)
	}
	return nil
}

// BumpGoal shifts progress by delta, flooring at zero and capping at
// the target when one is set. Reaching the target auto-completes.
func (e *Engine) BumpGoal(d *models.Document, id string, delta float64) error {
	i := indexGoal(d, id)
	if i < 0 {
		return notFound(models.KindGoal, id)
	}
	next := d.Goals[i].Current + delta
	if next < 0 {
		next = 0
	}
	if t := d.Goals[i].Target; t > 0 && next > t {
		next = t
	}
	return e.UpdateGoal(d, id, GoalPatch{Current: &next})
}

func indexGoal(d *models.Document, id string) int {
	for i := range d.Goals {
		if d.Goals[i].ID == id {
			return i
		}
	}
	return -1
}
