package cli

import (
	"fmt"

	"github.com/vkotov/stride/internal/models"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Theme            *string `help:"Theme id (dark, light, dim, amoled, system, ...)."`
	Language         *string `help:"Interface language (en, ru)."`
	DefaultTab       *string `help:"Default landing tab."`
	Nickname         *string `help:"Display nickname."`
	TipsOnHome       *bool   `help:"Show the tip of the day on the dashboard."`
	QuietEnabled     *bool   `help:"Enable quiet hours."`
	QuietFrom        *int    `help:"Quiet hours start (0-23)."`
	QuietTo          *int    `help:"Quiet hours end (0-23)."`
	Currency         *string `help:"Currency unit (RUB, USD, EUR)."`
	Weight           *string `help:"Weight unit (kg, lb)."`
	Length           *string `help:"Length unit (cm, ft)."`
	ShowNotes        *bool   `help:"Show the notes section."`
	ShowCompetitions *bool   `help:"Show the competitions section."`
}

func (c *SettingsCmd) Run(ctx *Context) error {
	doc, err := ctx.open()
	if err != nil {
		return err
	}

	if c.List {
		s := doc.Settings
		fmt.Println("Current Settings:")
		fmt.Printf("  Theme:        %s\n", s.Theme)
		fmt.Printf("  Language:     %s\n", s.Language)
		fmt.Printf("  Default Tab:  %s\n", s.DefaultTab)
		fmt.Printf("  Nickname:     %s\n", s.Nickname)
		fmt.Printf("  Tips On Home: %v\n", s.TipsOnHome)
		fmt.Println("\nQuiet Hours:")
		fmt.Printf("  Enabled:      %v\n", s.QuietHours.Enabled)
		fmt.Printf("  Window:       %02d:00–%02d:00\n", s.QuietHours.From, s.QuietHours.To)
		fmt.Println("\nUnits:")
		fmt.Printf("  Currency:     %s\n", s.Units.Currency)
		fmt.Printf("  Weight:       %s\n", s.Units.Weight)
		fmt.Printf("  Length:       %s\n", s.Units.Length)
		fmt.Println("\nVisibility:")
		fmt.Printf("  Notes:        %v\n", s.Visibility.Notes)
		fmt.Printf("  Competitions: %v\n", s.Visibility.Competitions)
		return nil
	}

	updated := false
	apply := func(d *models.Document) {
		s := &d.Settings
		if c.Theme != nil {
			s.Theme = *c.Theme
			updated = true
		}
		if c.Language != nil {
			s.Language = *c.Language
			updated = true
		}
		if c.DefaultTab != nil {
			s.DefaultTab = *c.DefaultTab
			updated = true
		}
		if c.Nickname != nil {
			s.Nickname = *c.Nickname
			updated = true
		}
		if c.TipsOnHome != nil {
			s.TipsOnHome = *c.TipsOnHome
			updated = true
		}
		if c.QuietEnabled != nil {
			s.QuietHours.Enabled = *c.QuietEnabled
			updated = true
		}
		if c.QuietFrom != nil {
			s.QuietHours.From = *c.QuietFrom
			updated = true
		}
		if c.QuietTo != nil {
			s.QuietHours.To = *c.QuietTo
			updated = true
		}
		if c.Currency != nil {
			s.Units.Currency = *c.Currency
			updated = true
		}
		if c.Weight != nil {
			s.Units.Weight = *c.Weight
			updated = true
		}
		if c.Length != nil {
			s.Units.Length = *c.Length
			updated = true
		}
		if c.ShowNotes != nil {
			s.Visibility.Notes = *c.ShowNotes
			updated = true
		}
		if c.ShowCompetitions != nil {
			s.Visibility.Competitions = *c.ShowCompetitions
			updated = true
		}
	}
	ctx.App.Dispatch(apply)

	if updated {
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}
	return nil
}
