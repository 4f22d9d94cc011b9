package cli

import (
	"fmt"

	"github.com/vkotov/stride/internal/constants"
	"github.com/vkotov/stride/internal/engine"
	"github.com/vkotov/stride/internal/models"
)

type WishCmd struct {
	Add    WishAddCmd    `cmd:"" help:"Add a new wish."`
	List   WishListCmd   `cmd:"" help:"List wishes."`
	Save   WishSaveCmd   `cmd:"" help:"Add savings toward a wish."`
	Delete WishDeleteCmd `cmd:"" help:"Delete a wish (kept in the archive)."`
}

type WishAddCmd struct {
	Title  string  `arg:"" help:"Wish title."`
	Target float64 `help:"Target amount." default:"0"`
	Saved  float64 `help:"Amount already saved." default:"0"`
	Deadline string `help:"Deadline in YYYY-MM-DD format." default:""`
	Link   string  `help:"Optional link." default:""`
}

func (c *WishAddCmd) Run(ctx *Context) error {
	if _, err := ctx.open(); err != nil {
		return err
	}
	var wish models.Wish
	ctx.App.Dispatch(func(d *models.Document) {
		wish = ctx.App.Engine().AddWish(d, engine.WishInput{
			Title:        c.Title,
			TargetAmount: c.Target,
			SavedAmount:  c.Saved,
			Deadline:     c.Deadline,
			Link:         c.Link,
		})
	})
	fmt.Printf("Added wish: %s (%s)\n", wish.Title, shortID(wish.ID))
	return nil
}

type WishListCmd struct{}

func (c *WishListCmd) Run(ctx *Context) error {
	doc, err := ctx.open()
	if err != nil {
		return err
	}
	if len(doc.Wishes) == 0 {
		fmt.Println("No wishes found.")
		return nil
	}
	for _, w := range doc.Wishes {
		fmt.Printf("%s  %-24s %.0f/%.0f %s\n", shortID(w.ID), w.Title, w.SavedAmount, w.TargetAmount, doc.Settings.Units.Currency)
	}
	return nil
}

type WishSaveCmd struct {
	Wish   string  `arg:"" help:"Wish title or id."`
	Amount float64 `help:"Amount to add (may be negative)." default:"1000"`
}

func (c *WishSaveCmd) Run(ctx *Context) error {
	doc, err := ctx.open()
	if err != nil {
		return err
	}
	w, err := findWish(doc, c.Wish)
	if err != nil {
		return err
	}
	amount := c.Amount
	if amount == 0 {
		amount = constants.DefaultSavingStep
	}
	id := w.ID
	var opErr error
	ctx.App.Dispatch(func(d *models.Document) {
		opErr = ctx.App.Engine().AddSavings(d, id, amount)
	})
	if opErr != nil {
		return opErr
	}
	after := ctx.App.GetState()
	if _, err := findWish(after, id); err != nil {
		fmt.Printf("Wish %q is fully funded and was completed.\n", w.Title)
		return nil
	}
	fmt.Printf("Updated savings for %q by %+.0f\n", w.Title, amount)
	return nil
}

type WishDeleteCmd struct {
	Wish string `arg:"" help:"Wish title or id."`
}

func (c *WishDeleteCmd) Run(ctx *Context) error {
	doc, err := ctx.open()
	if err != nil {
		return err
	}
	w, err := findWish(doc, c.Wish)
	if err != nil {
		return err
	}
	id := w.ID
	var opErr error
	ctx.App.Dispatch(func(d *models.Document) {
		opErr = ctx.App.Engine().Delete(d, models.KindWish, id)
	})
	if opErr != nil {
		return opErr
	}
	fmt.Printf("Deleted wish: %s\n", w.Title)
	fmt.Println("(Kept in the archive. Use 'stride archive restore' to undo)")
	return nil
}
