package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/jmsalazar/thirty/internal/auth"
	"github.com/jmsalazar/thirty/internal/challenge"
	"github.com/jmsalazar/thirty/internal/logger"
)

type LoginCmd struct {
	Username string `arg:"" optional:"" help:"Username. Prompted for when omitted."`
	Password string `short:"p" help:"Password. Prompted for when omitted."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	username := c.Username
	password := c.Password

	if username == "" || password == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Username").
					Value(&username),
				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&password),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	username = strings.TrimSpace(username)
	if err := auth.Authenticate(username, password); err != nil {
		return err
	}

	if err := ctx.Sessions.Set(username); err != nil {
		return err
	}

	// First login creates the record; later logins pick it up as-is.
	today := Today()
	rec, err := ctx.Service.LoadOrInitialize(username, today)
	if err != nil {
		return err
	}

	logger.Info("User logged in", "username", username)
	day := challenge.CurrentDayNumber(rec, today)
	fmt.Printf("Welcome, %s! You are on day %d of 30.\n", username, day)
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	if err := ctx.Sessions.Clear(); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}
