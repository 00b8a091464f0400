package cli

import (
	"fmt"

	"github.com/jmsalazar/thirty/internal/challenge"
	"github.com/jmsalazar/thirty/internal/constants"
	"github.com/jmsalazar/thirty/internal/models"
	"github.com/jmsalazar/thirty/internal/validation"
)

type DayShowCmd struct {
	User string `short:"u" help:"Act as a specific user instead of the session user."`
}

func (c *DayShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	username, err := resolveUser(ctx, c.User)
	if err != nil {
		return err
	}

	today := Today()
	rec, err := ctx.Service.LoadOrInitialize(username, today)
	if err != nil {
		return err
	}

	day := challenge.CurrentDayNumber(rec, today)
	fmt.Printf("Day %d of %d\n", day, constants.MaxDays)
	fmt.Printf("Mode:       %s\n", rec.DayMode)
	fmt.Printf("Start date: %s\n", formatDate(rec.StartDate))
	if rec.DayMode == models.DayModeManual {
		fmt.Printf("First login: %s (restored when switching back to auto)\n", formatDate(rec.FirstLoginDate))
	}
	return nil
}

type DayModeCmd struct {
	Mode string `arg:"" help:"Day numbering mode (auto|manual)."`
	User string `short:"u" help:"Act as a specific user instead of the session user."`
}

func (c *DayModeCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	username, err := resolveUser(ctx, c.User)
	if err != nil {
		return err
	}

	mode, err := validation.DayMode(c.Mode)
	if err != nil {
		return err
	}

	today := Today()
	if err := ctx.Service.SetDayMode(username, today, mode); err != nil {
		return err
	}

	rec, err := ctx.Service.LoadOrInitialize(username, today)
	if err != nil {
		return err
	}

	fmt.Printf("Day mode set to %s, start date is %s\n", mode, formatDate(rec.StartDate))
	return nil
}

type DayStartCmd struct {
	Date string `arg:"" help:"Manual start date (YYYY-MM-DD)."`
	User string `short:"u" help:"Act as a specific user instead of the session user."`
}

func (c *DayStartCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	username, err := resolveUser(ctx, c.User)
	if err != nil {
		return err
	}

	if err := validation.Date(c.Date); err != nil {
		return err
	}

	today := Today()
	if err := ctx.Service.SetStartDate(username, today, c.Date); err != nil {
		return err
	}

	rec, err := ctx.Service.LoadOrInitialize(username, today)
	if err != nil {
		return err
	}

	day := challenge.CurrentDayNumber(rec, today)
	fmt.Printf("Start date set to %s (manual mode), today is day %d\n", formatDate(c.Date), day)
	return nil
}
