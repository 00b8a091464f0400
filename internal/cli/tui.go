package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmsalazar/thirty/internal/tui"
)

type TuiCmd struct {
	User string `short:"u" help:"Act as a specific user instead of the session user."`
}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	username, err := resolveUser(ctx, c.User)
	if err != nil {
		return err
	}

	model, err := tui.NewModel(ctx.Service, username, Today())
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
