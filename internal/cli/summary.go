package cli

import "fmt"

type SummaryCmd struct{}

func (c *SummaryCmd) Run(ctx *Context) error {
	doc, err := ctx.open()
	if err != nil {
		return err
	}
	s := ctx.App.Engine().Summarize(doc)

	fmt.Printf("Summary for %s\n\n", s.Date)
	fmt.Printf("  Goals:   %d\n", s.Goals)
	fmt.Printf("  Habits:  %d\n", s.Habits)
	fmt.Printf("  Wishes:  %d\n", s.Wishes)
	fmt.Println()
	fmt.Printf("  Done today:       %d/%d (%.0f%%)\n", s.Habit.CompleteToday, s.Habit.Total, s.Habit.CompletionRatio()*100)
	fmt.Printf("  Missed yesterday: %d\n", s.Habit.MissedYesterday)
	fmt.Printf("  Streaks at risk:  %d\n", s.Habit.AtRisk)

	if doc.Settings.TipsOnHome && s.TipOfDay != "" {
		fmt.Printf("\n  “%s”\n", s.TipOfDay)
	}
	return nil
}
