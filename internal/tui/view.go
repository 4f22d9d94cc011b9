package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vkotov/stride/internal/models"
	"github.com/vkotov/stride/internal/streak"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateSummary:
		content = m.viewSummary()
	case StateHabits:
		content = m.viewHabits()
	case StateGoals:
		content = m.viewGoals()
	case StateWishes:
		content = m.viewWishes()
	case StateAddHabit:
		content = m.form.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		docStyle.Render(content),
		m.help.View(m.keys),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Summary", "Habits", "Goals", "Wishes"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewSummary() string {
	s := m.eng.Summarize(m.doc)
	var b strings.Builder
	fmt.Fprintf(&b, "Hello, %s · %s\n\n", m.doc.Settings.Nickname, s.Date)
	fmt.Fprintf(&b, "Goals: %d   Habits: %d   Wishes: %d\n\n", s.Goals, s.Habits, s.Wishes)
	fmt.Fprintf(&b, "Done today:       %d/%d (%.0f%%)\n", s.Habit.CompleteToday, s.Habit.Total, s.Habit.CompletionRatio()*100)
	fmt.Fprintf(&b, "Missed yesterday: %d\n", s.Habit.MissedYesterday)
	fmt.Fprintf(&b, "Streaks at risk:  %d\n", s.Habit.AtRisk)
	if m.doc.Settings.TipsOnHome && s.TipOfDay != "" {
		b.WriteString("\n" + dimStyle.Render("“"+s.TipOfDay+"”"))
	}
	return b.String()
}

func (m Model) viewHabits() string {
	if len(m.doc.Habits) == 0 {
		return dimStyle.Render("No habits yet. Press 'a' to add one.")
	}
	today := m.eng.Clock().Today()
	var b strings.Builder
	for i, h := range m.doc.Habits {
		line := m.habitLine(h, today)
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	if m.cursor < len(m.doc.Habits) {
		h := m.doc.Habits[m.cursor]
		b.WriteString("\n" + renderGrid(streak.WeekGrid(h.History, h.ActiveDays, today)))
	}
	return b.String()
}

func (m Model) habitLine(h models.Habit, today string) string {
	v := h.History[today]
	mark := "[ ]"
	if v.IsComplete() {
		mark = doneStyle.Render("[x]")
	}
	if h.Type == models.HabitQuant {
		return fmt.Sprintf("%s %s (%d/%d) · streak %d · best %d", mark, h.Title, v.CountValue(), h.QuantTarget, h.Streak, h.Best)
	}
	return fmt.Sprintf("%s %s · streak %d · best %d", mark, h.Title, h.Streak, h.Best)
}

func renderGrid(grid [7]streak.DayCell) string {
	days := []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
	var top, bottom strings.Builder
	for i, cell := range grid {
		top.WriteString(fmt.Sprintf(" %2s", days[i]))
		mark := " ."
		switch {
		case !cell.Active:
			mark = "  "
		case cell.Complete:
			mark = " x"
		case cell.Recorded:
			mark = " o"
		}
		bottom.WriteString(fmt.Sprintf(" %2s", mark))
	}
	return dimStyle.Render(top.String()) + "\n" + bottom.String()
}

func (m Model) viewGoals() string {
	if len(m.doc.Goals) == 0 {
		return dimStyle.Render("No goals yet.")
	}
	var b strings.Builder
	for i, g := range m.doc.Goals {
		line := fmt.Sprintf("%s · %.0f/%.0f %s", g.Title, g.Current, g.Target, g.Unit)
		if g.Deadline != "" {
			line += " · due " + g.Deadline
		}
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) viewWishes() string {
	if len(m.doc.Wishes) == 0 {
		return dimStyle.Render("No wishes yet.")
	}
	var b strings.Builder
	for i, w := range m.doc.Wishes {
		line := fmt.Sprintf("%s · %.0f/%.0f %s", w.Title, w.SavedAmount, w.TargetAmount, m.doc.Settings.Units.Currency)
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
