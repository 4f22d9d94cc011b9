package cli

import (
	"fmt"

	"github.com/vkotov/stride/internal/constants"
	"github.com/vkotov/stride/internal/models"
)

type JournalCmd struct {
	List  JournalListCmd  `cmd:"" help:"List journals and entry counts."`
	Add   JournalAddCmd   `cmd:"" help:"Create a new journal."`
	Write JournalWriteCmd `cmd:"" help:"Write an entry."`
	Show  JournalShowCmd  `cmd:"" help:"Show a journal's entries."`
}

type JournalListCmd struct{}

func (c *JournalListCmd) Run(ctx *Context) error {
	doc, err := ctx.open()
	if err != nil {
		return err
	}
	for _, j := range doc.Journals {
		fmt.Printf("%-16s %d entries\n", j.Name, len(j.Entries))
	}
	return nil
}

type JournalAddCmd struct {
	Name string `arg:"" help:"Journal name."`
}

func (c *JournalAddCmd) Run(ctx *Context) error {
	if _, err := ctx.open(); err != nil {
		return err
	}
	ctx.App.Dispatch(func(d *models.Document) {
		ctx.App.Engine().AddJournal(d, c.Name)
	})
	fmt.Printf("Created journal: %s\n", c.Name)
	return nil
}

type JournalWriteCmd struct {
	Content string `arg:"" help:"Entry text."`
	Journal string `help:"Journal name (default: Inbox)." default:"Inbox"`
	Title   string `help:"Optional entry title." default:""`
}

func (c *JournalWriteCmd) Run(ctx *Context) error {
	doc, err := ctx.open()
	if err != nil {
		return err
	}
	var journalID string
	for _, j := range doc.Journals {
		if j.Name == c.Journal || j.ID == c.Journal {
			journalID = j.ID
			break
		}
	}
	if journalID == "" {
		return fmt.Errorf("journal %q not found", c.Journal)
	}
	var opErr error
	ctx.App.Dispatch(func(d *models.Document) {
		opErr = ctx.App.Engine().AddEntry(d, journalID, c.Title, c.Content)
	})
	if opErr != nil {
		return opErr
	}
	fmt.Printf("Wrote entry to %s\n", c.Journal)
	return nil
}

type JournalShowCmd struct {
	Journal string `arg:"" optional:"" help:"Journal name (default: Inbox)." default:"Inbox"`
}

func (c *JournalShowCmd) Run(ctx *Context) error {
	doc, err := ctx.open()
	if err != nil {
		return err
	}
	for _, j := range doc.Journals {
		if j.Name != c.Journal && j.ID != c.Journal {
			continue
		}
		if len(j.Entries) == 0 {
			fmt.Println("No entries yet.")
			return nil
		}
		for _, entry := range j.Entries {
			header := entry.Date.Format(constants.DateFormat)
			if entry.Title != "" {
				header += " · " + entry.Title
			}
			fmt.Printf("%s\n  %s\n", header, entry.Content)
		}
		return nil
	}
	return fmt.Errorf("journal %q not found", c.Journal)
}
