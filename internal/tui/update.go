package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/vkotov/stride/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	if m.state == StateAddHabit {
		return m.updateAddHabit(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			m.cursor = 0
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			m.cursor = 0
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.listLen()-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Mark):
			m.mark()
		case key.Matches(msg, m.keys.Minus):
			m.unmark()
		case key.Matches(msg, m.keys.Add):
			if m.state == StateHabits {
				m.habitForm = &HabitFormModel{QuantTarget: "8"}
				m.form = newHabitForm(m.habitForm)
				m.state = StateAddHabit
				return m, m.form.Init()
			}
		}
	}

	return m, nil
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateHabits
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.habitForm.Title != "" {
			in := m.habitForm.input()
			m.app.Dispatch(func(d *models.Document) {
				m.eng.AddHabit(d, in)
			})
			m.refresh()
		}
		m.state = StateHabits
	case huh.StateAborted:
		m.state = StateHabits
	}
	return m, cmd
}

// mark applies the primary action on the selected row: toggle or
// increment a habit, bump a goal, add savings to a wish.
func (m *Model) mark() {
	switch m.state {
	case StateHabits:
		if m.cursor < len(m.doc.Habits) {
			id := m.doc.Habits[m.cursor].ID
			m.app.Dispatch(func(d *models.Document) {
				_ = m.eng.MarkHabit(d, id, "", nil)
			})
		}
	case StateGoals:
		if m.cursor < len(m.doc.Goals) {
			id := m.doc.Goals[m.cursor].ID
			m.app.Dispatch(func(d *models.Document) {
				_ = m.eng.BumpGoal(d, id, 1)
			})
		}
	case StateWishes:
		if m.cursor < len(m.doc.Wishes) {
			id := m.doc.Wishes[m.cursor].ID
			m.app.Dispatch(func(d *models.Document) {
				_ = m.eng.AddSavings(d, id, 1000)
			})
		}
	default:
		return
	}
	m.refresh()
}

// unmark applies the inverse action where one exists.
func (m *Model) unmark() {
	switch m.state {
	case StateHabits:
		if m.cursor < len(m.doc.Habits) && m.doc.Habits[m.cursor].Type == models.HabitQuant {
			id := m.doc.Habits[m.cursor].ID
			m.app.Dispatch(func(d *models.Document) {
				_ = m.eng.DecrementHabit(d, id, "")
			})
		}
	case StateGoals:
		if m.cursor < len(m.doc.Goals) {
			id := m.doc.Goals[m.cursor].ID
			m.app.Dispatch(func(d *models.Document) {
				_ = m.eng.BumpGoal(d, id, -1)
			})
		}
	case StateWishes:
		if m.cursor < len(m.doc.Wishes) {
			id := m.doc.Wishes[m.cursor].ID
			m.app.Dispatch(func(d *models.Document) {
				_ = m.eng.AddSavings(d, id, -1000)
			})
		}
	default:
		return
	}
	m.refresh()
}
