package cli

import (
	"fmt"

	"github.com/jmsalazar/thirty/internal/challenge"
	"github.com/jmsalazar/thirty/internal/constants"
)

type StatusCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
	User string `short:"u" help:"Act as a specific user instead of the session user."`
}

func (c *StatusCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	username, err := resolveUser(ctx, c.User)
	if err != nil {
		return err
	}

	today := Today()
	requested, err := resolveDate(c.Date, today)
	if err != nil {
		return err
	}

	rec, err := ctx.Service.LoadOrInitialize(username, today)
	if err != nil {
		return err
	}

	date := viewDate(rec, requested, today)
	if date != requested {
		fmt.Printf("%s is outside the challenge range, showing today instead\n\n", requested)
	}

	day := challenge.DayNumberForDate(rec, date)
	if date == today {
		fmt.Printf("Day %d of %d · today\n", day, constants.MaxDays)
	} else {
		fmt.Printf("Day %d of %d · %s\n", day, constants.MaxDays, formatDate(date))
	}
	fmt.Printf("Start date: %s (%s mode)\n\n", formatDate(rec.StartDate), rec.DayMode)

	counts := challenge.Progress(rec, date)
	if counts.Total == 0 {
		fmt.Println("No tasks yet. Add one with 'thirty task add'.")
		return nil
	}

	fmt.Printf("%d of %d tasks done\n", counts.Completed, counts.Total)
	for _, tc := range challenge.TasksWithCompletion(rec, date) {
		fmt.Printf("  %s %s\n", checkbox(tc.Completed), tc.Task.Title)
	}

	if challenge.IsComplete(rec, today) {
		fmt.Println("\nChallenge complete! See 'thirty stats' for your final results.")
	}
	return nil
}
