package engine

import (
	"github.com/vkotov/stride/internal/models"
)

// WishInput carries the user-provided fields of a new wish.
type WishInput struct {
	Title        string
	TargetAmount float64
	SavedAmount  float64
	Deadline     string
	Link         string
	Tags         []string
}

// AddWish appends a new active wish.
func (e *Engine) AddWish(d *models.Document, in WishInput) models.Wish {
	w := models.Wish{
		Lifecycle:    e.newLifecycle(),
		Title:        in.Title,
		TargetAmount: in.TargetAmount,
		SavedAmount:  in.SavedAmount,
		Deadline:     in.Deadline,
		Link:         in.Link,
		Tags:         in.Tags,
	}
	if w.SavedAmount < 0 {
		w.SavedAmount = 0
	}
	if w.Tags == nil {
		w.Tags = []string{}
	}
	d.Wishes = append(d.Wishes, w)
	return w
}

// AddSavings shifts the saved amount by delta, flooring at zero and
// capping at the target when one is set. A fully funded wish is
// archived as completed, mirroring goal auto-completion.
func (e *Engine) AddSavings(d *models.Document, id string, delta float64) error {
	i := indexWish(d, id)
	if i < 0 {
		return notFound(models.KindWish, id)
	}
	w := &d.Wishes[i]
	w.SavedAmount += delta
	if w.SavedAmount < 0 {
		w.SavedAmount = 0
	}
	if w.TargetAmount > 0 && w.SavedAmount > w.TargetAmount {
		w.SavedAmount = w.TargetAmount
	}
	if w.Funded() {
		return e.Complete(d, models.KindWish, id)
	}
	return nil
}

func indexWish(d *models.Document, id string) int {
	for i := range d.Wishes {
		if d.Wishes[i].ID == id {
			return i
		}
	}
	return -1
}
