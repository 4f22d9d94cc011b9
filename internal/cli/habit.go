package cli

import (
	"fmt"
	"strings"

	"github.com/vkotov/stride/internal/engine"
	"github.com/vkotov/stride/internal/models"
	"github.com/vkotov/stride/internal/streak"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Mark   HabitMarkCmd   `cmd:"" help:"Mark a habit for a day (toggle or increment)."`
	Minus  HabitMinusCmd  `cmd:"" help:"Decrement a quantitative habit for a day."`
	Today  HabitTodayCmd  `cmd:"" help:"Show today's habit status."`
	Log    HabitLogCmd    `cmd:"" help:"Show this week's grid."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit (kept in the archive)."`
}

type HabitAddCmd struct {
	Title       string   `arg:"" help:"Habit title."`
	Quant       bool     `help:"Quantitative habit (counted per day)."`
	QuantTarget int      `help:"Daily target for quantitative habits." default:"8"`
	ActiveDays  string   `help:"Active days policy (daily, weekdays, weekends, custom)." default:"daily"`
	Custom      []string `help:"Custom weekday set (mon,tue,...) when policy is custom."`
	Category    string   `help:"Category." default:""`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	doc, err := ctx.open()
	if err != nil {
		return err
	}
	for _, h := range doc.Habits {
		if h.Title == c.Title {
			return fmt.Errorf("habit with title %q already exists", c.Title)
		}
	}

	habitType := models.HabitBinary
	if c.Quant {
		habitType = models.HabitQuant
	}
	policy := models.ActiveDays{Policy: models.ActivePolicy(c.ActiveDays)}
	if policy.Policy == models.ActiveCustom {
		days, err := ParseWeekdays(strings.Join(c.Custom, ","))
		if err != nil {
			return err
		}
		policy.Custom = days
	}

	var habit models.Habit
	ctx.App.Dispatch(func(d *models.Document) {
		habit = ctx.App.Engine().AddHabit(d, engine.HabitInput{
			Title:       c.Title,
			Type:        habitType,
			QuantTarget: c.QuantTarget,
			Category:    c.Category,
			ActiveDays:  policy,
		})
	})
	fmt.Printf("Added habit: %s (%s)\n", habit.Title, shortID(habit.ID))
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	doc, err := ctx.open()
	if err != nil {
		return err
	}
	if len(doc.Habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}
	for _, h := range doc.Habits {
		kind := "✓"
		if h.Type == models.HabitQuant {
			kind = fmt.Sprintf("#/%d", h.QuantTarget)
		}
		fmt.Printf("%s  %-24s %s  streak %d  best %d\n", shortID(h.ID), h.Title, kind, h.Streak, h.Best)
	}
	return nil
}

type HabitMarkCmd struct {
	Habit string `arg:"" help:"Habit title or id."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	Value string `help:"Explicit value (true, false, or a count)." default:""`
}

func (c *HabitMarkCmd) Run(ctx *Context) error {
	doc, err := ctx.open()
	if err != nil {
		return err
	}
	h, err := findHabit(doc, c.Habit)
	if err != nil {
		return err
	}

	var explicit *models.DayValue
	if c.Value != "" {
		v, err := parseDayValue(c.Value)
		if err != nil {
			return err
		}
		explicit = &v
	}

	id := h.ID
	var opErr error
	ctx.App.Dispatch(func(d *models.Document) {
		opErr = ctx.App.Engine().MarkHabit(d, id, c.Date, explicit)
	})
	if opErr != nil {
		return opErr
	}

	after := ctx.App.GetState()
	updated, err := findHabit(after, id)
	if err != nil {
		return err
	}
	day := c.Date
	if day == "" {
		day = ctx.App.Engine().Clock().Today()
	}
	if updated.History[day].IsComplete() {
		fmt.Printf("Marked habit %q for %s (streak %d, best %d)\n", updated.Title, day, updated.Streak, updated.Best)
	} else {
		fmt.Printf("Unmarked habit %q for %s\n", updated.Title, day)
	}
	return nil
}

type HabitMinusCmd struct {
	Habit string `arg:"" help:"Habit title or id."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitMinusCmd) Run(ctx *Context) error {
	doc, err := ctx.open()
	if err != nil {
		return err
	}
	h, err := findHabit(doc, c.Habit)
	if err != nil {
		return err
	}
	id := h.ID
	var opErr error
	ctx.App.Dispatch(func(d *models.Document) {
		opErr = ctx.App.Engine().DecrementHabit(d, id, c.Date)
	})
	if opErr != nil {
		return opErr
	}
	fmt.Printf("Decremented habit %q\n", h.Title)
	return nil
}

type HabitTodayCmd struct{}

func (c *HabitTodayCmd) Run(ctx *Context) error {
	doc, err := ctx.open()
	if err != nil {
		return err
	}
	if len(doc.Habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}
	today := ctx.App.Engine().Clock().Today()
	fmt.Printf("Habits for %s:\n\n", today)
	for _, h := range doc.Habits {
		v := h.History[today]
		status := "[ ]"
		if v.IsComplete() {
			status = "[x]"
		}
		if h.Type == models.HabitQuant {
			fmt.Printf("%s %s (%d/%d)\n", status, h.Title, v.CountValue(), h.QuantTarget)
		} else {
			fmt.Printf("%s %s\n", status, h.Title)
		}
	}
	s := streak.Summarize(doc.Habits, today)
	fmt.Printf("\nDone: %d/%d · missed yesterday: %d · at risk: %d\n",
		s.CompleteToday, s.Total, s.MissedYesterday, s.AtRisk)
	return nil
}

type HabitLogCmd struct {
	Habit string `help:"Show grid for a specific habit only."`
}

func (c *HabitLogCmd) Run(ctx *Context) error {
	doc, err := ctx.open()
	if err != nil {
		return err
	}
	habits := doc.Habits
	if c.Habit != "" {
		h, err := findHabit(doc, c.Habit)
		if err != nil {
			return err
		}
		habits = []models.Habit{*h}
	}
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	today := ctx.App.Engine().Clock().Today()
	fmt.Print(renderWeekHeader())
	for _, h := range habits {
		grid := streak.WeekGrid(h.History, h.ActiveDays, today)
		fmt.Print(renderWeekRow(h.Title, grid))
	}
	return nil
}

func renderWeekHeader() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-20s", "Habit"))
	for _, d := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		b.WriteString(fmt.Sprintf(" %4s", d))
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", 20+7*5))
	b.WriteString("\n")
	return b.String()
}

func renderWeekRow(title string, grid [7]streak.DayCell) string {
	name := title
	if len(name) > 20 {
		name = name[:17] + "..."
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-20s", name))
	for _, cell := range grid {
		mark := "."
		switch {
		case !cell.Active:
			mark = "·" // off-policy day, not interactive
		case cell.Complete:
			mark = "x"
		case cell.Recorded:
			mark = "o" // recorded but incomplete
		}
		b.WriteString(fmt.Sprintf(" %4s", mark))
	}
	b.WriteString("\n")
	return b.String()
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit title or id."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	doc, err := ctx.open()
	if err != nil {
		return err
	}
	h, err := findHabit(doc, c.Habit)
	if err != nil {
		return err
	}
	id := h.ID
	var opErr error
	ctx.App.Dispatch(func(d *models.Document) {
		opErr = ctx.App.Engine().Delete(d, models.KindHabit, id)
	})
	if opErr != nil {
		return opErr
	}
	fmt.Printf("Deleted habit: %s\n", h.Title)
	fmt.Println("(Kept in the archive. Use 'stride archive restore' to undo)")
	return nil
}

func parseDayValue(s string) (models.DayValue, error) {
	switch s {
	case "true":
		return models.Done(true), nil
	case "false":
		return models.Done(false), nil
	}
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil || n < 0 {
		return models.Unset(), fmt.Errorf("invalid value %q (expected true, false, or a non-negative count)", s)
	}
	return models.Count(n), nil
}
