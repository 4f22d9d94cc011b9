package cli

import (
	"fmt"

	"github.com/vkotov/stride/internal/engine"
	"github.com/vkotov/stride/internal/models"
)

type GoalCmd struct {
	Add      GoalAddCmd      `cmd:"" help:"Add a new goal."`
	List     GoalListCmd     `cmd:"" help:"List goals."`
	Bump     GoalBumpCmd     `cmd:"" help:"Adjust goal progress."`
	Complete GoalCompleteCmd `cmd:"" help:"Complete a goal and archive it."`
	Delete   GoalDeleteCmd   `cmd:"" help:"Delete a goal (kept in the archive)."`
}

type GoalAddCmd struct {
	Title    string  `arg:"" help:"Goal title."`
	Target   float64 `help:"Target amount." default:"10"`
	Unit     string  `help:"Unit of measure." default:"шт"`
	Deadline string  `help:"Deadline in YYYY-MM-DD format." default:""`
	Priority string  `help:"Priority (Low, Medium, High)." default:"Medium"`
	Category string  `help:"Category." default:""`
	Tags     []string `help:"Tags."`
}

func (c *GoalAddCmd) Run(ctx *Context) error {
	if _, err := ctx.open(); err != nil {
		return err
	}
	var goal models.Goal
	ctx.App.Dispatch(func(d *models.Document) {
		goal = ctx.App.Engine().AddGoal(d, engine.GoalInput{
			Title:    c.Title,
			Target:   c.Target,
			Unit:     c.Unit,
			Deadline: c.Deadline,
			Priority: models.Priority(c.Priority),
			Category: c.Category,
			Tags:     c.Tags,
		})
	})
	fmt.Printf("Added goal: %s (%s)\n", goal.Title, shortID(goal.ID))
	return nil
}

type GoalListCmd struct{}

func (c *GoalListCmd) Run(ctx *Context) error {
	doc, err := ctx.open()
	if err != nil {
		return err
	}
	if len(doc.Goals) == 0 {
		fmt.Println("No goals found.")
		return nil
	}
	for _, g := range doc.Goals {
		deadline := g.Deadline
		if deadline == "" {
			deadline = "—"
		}
		fmt.Printf("%s  %s  %.0f/%.0f %s  due %s\n", shortID(g.ID), g.Title, g.Current, g.Target, g.Unit, deadline)
	}
	return nil
}

type GoalBumpCmd struct {
	Goal  string  `arg:"" help:"Goal title or id."`
	Delta float64 `help:"Progress delta (may be negative)." default:"1"`
}

func (c *GoalBumpCmd) Run(ctx *Context) error {
	doc, err := ctx.open()
	if err != nil {
		return err
	}
	g, err := findGoal(doc, c.Goal)
	if err != nil {
		return err
	}
	id := g.ID
	var opErr error
	ctx.App.Dispatch(func(d *models.Document) {
		opErr = ctx.App.Engine().BumpGoal(d, id, c.Delta)
	})
	if opErr != nil {
		return opErr
	}
	after := ctx.App.GetState()
	if _, err := findGoal(after, id); err != nil {
		fmt.Printf("Goal %q reached its target and was completed.\n", g.Title)
		return nil
	}
	fmt.Printf("Updated goal %q by %+.0f\n", g.Title, c.Delta)
	return nil
}

type GoalCompleteCmd struct {
	Goal string `arg:"" help:"Goal title or id."`
}

func (c *GoalCompleteCmd) Run(ctx *Context) error {
	doc, err := ctx.open()
	if err != nil {
		return err
	}
	g, err := findGoal(doc, c.Goal)
	if err != nil {
		return err
	}
	id := g.ID
	var opErr error
	ctx.App.Dispatch(func(d *models.Document) {
		opErr = ctx.App.Engine().Complete(d, models.KindGoal, id)
	})
	if opErr != nil {
		return opErr
	}
	fmt.Printf("Completed goal: %s\n", g.Title)
	return nil
}

type GoalDeleteCmd struct {
	Goal string `arg:"" help:"Goal title or id."`
}

func (c *GoalDeleteCmd) Run(ctx *Context) error {
	doc, err := ctx.open()
	if err != nil {
		return err
	}
	g, err := findGoal(doc, c.Goal)
	if err != nil {
		return err
	}
	id := g.ID
	var opErr error
	ctx.App.Dispatch(func(d *models.Document) {
		opErr = ctx.App.Engine().Delete(d, models.KindGoal, id)
	})
	if opErr != nil {
		return opErr
	}
	fmt.Printf("Deleted goal: %s\n", g.Title)
	fmt.Println("(Kept in the archive. Use 'stride archive restore' to undo)")
	return nil
}
