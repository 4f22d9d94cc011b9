package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vkotov/stride/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if _, err := ctx.open(); err != nil {
		return err
	}
	p := tea.NewProgram(tui.NewModel(ctx.App), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
