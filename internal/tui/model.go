package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/vkotov/stride/internal/app"
	"github.com/vkotov/stride/internal/engine"
	"github.com/vkotov/stride/internal/models"
)

type SessionState int

const (
	StateSummary SessionState = iota
	StateHabits
	StateGoals
	StateWishes
	StateAddHabit
)

const tabCount = 4

// HabitFormModel backs the add-habit form.
type HabitFormModel struct {
	Title       string
	Quant       bool
	QuantTarget string
}

type Model struct {
	app   *app.Store
	eng   *engine.Engine
	state SessionState
	keys  KeyMap
	help  help.Model

	doc    *models.Document
	cursor int

	form      *huh.Form
	habitForm *HabitFormModel

	quitting bool
	width    int
	height   int
}

func NewModel(store *app.Store) Model {
	return Model{
		app:   store,
		eng:   store.Engine(),
		state: StateSummary,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		doc:   store.GetState(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh pulls a fresh snapshot after a dispatch.
func (m *Model) refresh() {
	m.doc = m.app.GetState()
	if max := m.listLen(); m.cursor >= max && max > 0 {
		m.cursor = max - 1
	}
}

func (m *Model) listLen() int {
	switch m.state {
	case StateHabits:
		return len(m.doc.Habits)
	case StateGoals:
		return len(m.doc.Goals)
	case StateWishes:
		return len(m.doc.Wishes)
	}
	return 0
}

func newHabitForm(f *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit title").
				Value(&f.Title),
			huh.NewConfirm().
				Title("Quantitative?").
				Value(&f.Quant),
			huh.NewInput().
				Title("Daily target (quantitative only)").
				Value(&f.QuantTarget),
		),
	)
}

func (f *HabitFormModel) input() engine.HabitInput {
	in := engine.HabitInput{
		Title: f.Title,
		Type:  models.HabitBinary,
	}
	if f.Quant {
		in.Type = models.HabitQuant
		if n, err := strconv.Atoi(f.QuantTarget); err == nil && n > 0 {
			in.QuantTarget = n
		} else {
			in.QuantTarget = 8
		}
	}
	return in
}
