package cli

import (
	"fmt"

	"github.com/vkotov/stride/internal/models"
)

type CompetitionCmd struct {
	List  CompetitionListCmd  `cmd:"" help:"List joined and catalog competitions."`
	Join  CompetitionJoinCmd  `cmd:"" help:"Join a catalog competition."`
	Leave CompetitionLeaveCmd `cmd:"" help:"Leave a joined competition."`
}

type CompetitionListCmd struct{}

func (c *CompetitionListCmd) Run(ctx *Context) error {
	doc, err := ctx.open()
	if err != nil {
		return err
	}
	if !doc.Settings.Visibility.Competitions {
		fmt.Println("Competitions are hidden. Enable them with 'stride settings --show-competitions'.")
		return nil
	}
	fmt.Println("Joined:")
	if len(doc.Competitions.My) == 0 {
		fmt.Println("  (none)")
	}
	for _, comp := range doc.Competitions.My {
		fmt.Printf("  %s  %s (%d days)\n", comp.ID, comp.Title, comp.Duration)
	}
	fmt.Println("\nCatalog:")
	for _, comp := range doc.Competitions.Public {
		fmt.Printf("  %s  %s (%d days)\n", comp.ID, comp.Title, comp.Duration)
	}
	return nil
}

type CompetitionJoinCmd struct {
	ID string `arg:"" help:"Catalog competition id."`
}

func (c *CompetitionJoinCmd) Run(ctx *Context) error {
	if _, err := ctx.open(); err != nil {
		return err
	}
	var opErr error
	ctx.App.Dispatch(func(d *models.Document) {
		opErr = ctx.App.Engine().JoinCompetition(d, c.ID)
	})
	if opErr != nil {
		return opErr
	}
	fmt.Printf("Joined competition: %s\n", c.ID)
	return nil
}

type CompetitionLeaveCmd struct {
	ID string `arg:"" help:"Joined competition id."`
}

func (c *CompetitionLeaveCmd) Run(ctx *Context) error {
	if _, err := ctx.open(); err != nil {
		return err
	}
	var opErr error
	ctx.App.Dispatch(func(d *models.Document) {
		opErr = ctx.App.Engine().LeaveCompetition(d, c.ID)
	})
	if opErr != nil {
		return opErr
	}
	fmt.Printf("Left competition: %s\n", c.ID)
	return nil
}
