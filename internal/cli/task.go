package cli

import (
	"fmt"
	"strings"

	"github.com/jmsalazar/thirty/internal/challenge"
	"github.com/jmsalazar/thirty/internal/models"
)

type TaskAddCmd struct {
	Title []string `arg:"" help:"Task title."`
	User  string   `short:"u" help:"Act as a specific user instead of the session user."`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	username, err := resolveUser(ctx, c.User)
	if err != nil {
		return err
	}

	task, err := ctx.Service.AddTask(username, Today(), strings.Join(c.Title, " "))
	if err != nil {
		return err
	}

	fmt.Printf("Added task: %s (ID: %s)\n", task.Title, task.ID)
	return nil
}

type TaskDeleteCmd struct {
	ID   string `arg:"" help:"Task ID or unambiguous ID prefix."`
	User string `short:"u" help:"Act as a specific user instead of the session user."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
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

	id, err := matchTaskID(rec, c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Service.RemoveTask(username, today, id); err != nil {
		return err
	}

	fmt.Printf("Deleted task %s\n", id)
	return nil
}

type TaskListCmd struct {
	Date string `arg:"" optional:"" help:"Date to show completion for (YYYY-MM-DD or 'today')." default:"today"`
	User string `short:"u" help:"Act as a specific user instead of the session user."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	username, err := resolveUser(ctx, c.User)
	if err != nil {
		return err
	}

	today := Today()
	date, err := resolveDate(c.Date, today)
	if err != nil {
		return err
	}

	rec, err := ctx.Service.LoadOrInitialize(username, today)
	if err != nil {
		return err
	}

	if len(rec.Tasks) == 0 {
		fmt.Println("No tasks yet. Add one with 'thirty task add'.")
		return nil
	}

	fmt.Printf("Tasks for %s:\n", formatDate(date))
	for _, tc := range challenge.TasksWithCompletion(rec, date) {
		fmt.Printf("  %s %s  (%s)\n", checkbox(tc.Completed), tc.Task.Title, tc.Task.ID[:8])
	}
	return nil
}

type ToggleCmd struct {
	ID   string `arg:"" help:"Task ID or unambiguous ID prefix."`
	Date string `arg:"" optional:"" help:"Date to toggle (YYYY-MM-DD or 'today')." default:"today"`
	User string `short:"u" help:"Act as a specific user instead of the session user."`
}

func (c *ToggleCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	username, err := resolveUser(ctx, c.User)
	if err != nil {
		return err
	}

	today := Today()
	date, err := resolveDate(c.Date, today)
	if err != nil {
		return err
	}

	rec, err := ctx.Service.LoadOrInitialize(username, today)
	if err != nil {
		return err
	}

	if !challenge.IsDateInRange(rec, date) {
		return fmt.Errorf("%s is outside the 30-day challenge range", date)
	}

	id, err := matchTaskID(rec, c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Service.ToggleCompletion(username, today, id, date); err != nil {
		return err
	}

	rec, err = ctx.Service.LoadOrInitialize(username, today)
	if err != nil {
		return err
	}
	task, ok := challenge.FindTask(rec, id)
	if !ok {
		return nil
	}

	state := "not done"
	if challenge.IsCompletedOn(task, date) {
		state = "done"
	}
	fmt.Printf("%s: %s on %s\n", task.Title, state, formatDate(date))
	return nil
}

// matchTaskID resolves a full id or unique prefix against the record's
// tasks, so users can type the short id shown by 'task list'.
func matchTaskID(rec models.UserRecord, idOrPrefix string) (string, error) {
	var matches []string
	for _, t := range rec.Tasks {
		if t.ID == idOrPrefix {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, idOrPrefix) {
			matches = append(matches, t.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no task matches %q", idOrPrefix)
	default:
		return "", fmt.Errorf("%q matches %d tasks, use a longer prefix", idOrPrefix, len(matches))
	}
}
