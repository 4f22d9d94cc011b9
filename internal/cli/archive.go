package cli

import (
	"fmt"

	"github.com/vkotov/stride/internal/constants"
	"github.com/vkotov/stride/internal/models"
)

type ArchiveCmd struct {
	List          ArchiveListCmd          `cmd:"" help:"List archived items."`
	Restore       ArchiveRestoreCmd       `cmd:"" help:"Restore an archived item."`
	DeleteForever ArchiveDeleteForeverCmd `cmd:"" name:"delete-forever" help:"Permanently erase an archived item."`
}

type ArchiveListCmd struct{}

func (c *ArchiveListCmd) Run(ctx *Context) error {
	doc, err := ctx.open()
	if err != nil {
		return err
	}
	if len(doc.CompletedItems) == 0 {
		fmt.Println("Archive is empty.")
		return nil
	}
	for _, item := range doc.CompletedItems {
		l := item.Entity()
		if l == nil {
			continue
		}
		var when string
		switch l.Status {
		case models.StatusCompleted:
			if l.CompletedAt != nil {
				when = "completed " + l.CompletedAt.Format(constants.DateFormat)
			}
		case models.StatusDeleted:
			if l.DeletedAt != nil {
				when = "deleted " + l.DeletedAt.Format(constants.DateFormat)
			}
		}
		fmt.Printf("%s  [%s]  %-24s %s\n", shortID(l.ID), item.Kind, item.Title(), when)
	}
	return nil
}

type ArchiveRestoreCmd struct {
	Item string `arg:"" help:"Archived item title or id."`
}

func (c *ArchiveRestoreCmd) Run(ctx *Context) error {
	doc, err := ctx.open()
	if err != nil {
		return err
	}
	item, err := findArchived(doc, c.Item)
	if err != nil {
		return err
	}
	id := item.Entity().ID
	title := item.Title()
	var opErr error
	ctx.App.Dispatch(func(d *models.Document) {
		opErr = ctx.App.Engine().Restore(d, id)
	})
	if opErr != nil {
		return opErr
	}
	fmt.Printf("Restored: %s\n", title)
	return nil
}

type ArchiveDeleteForeverCmd struct {
	Item  string `arg:"" help:"Archived item title or id."`
	Force bool   `help:"Skip the confirmation prompt."`
}

func (c *ArchiveDeleteForeverCmd) Run(ctx *Context) error {
	doc, err := ctx.open()
	if err != nil {
		return err
	}
	item, err := findArchived(doc, c.Item)
	if err != nil {
		return err
	}
	if !c.Force {
		fmt.Printf("Permanently delete %q? This cannot be undone. [y/N]: ", item.Title())
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}
	id := item.Entity().ID
	title := item.Title()
	var opErr error
	ctx.App.Dispatch(func(d *models.Document) {
		opErr = ctx.App.Engine().DeleteForever(d, id)
	})
	if opErr != nil {
		return opErr
	}
	fmt.Printf("Permanently deleted: %s\n", title)
	return nil
}
