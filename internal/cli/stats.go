package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jmsalazar/thirty/internal/challenge"
	"github.com/jmsalazar/thirty/internal/constants"
	"github.com/jmsalazar/thirty/internal/models"
)

type StatsCmd struct {
	User  string `short:"u" help:"Act as a specific user instead of the session user."`
	Plain bool   `help:"Print raw markdown instead of rendering it."`
}

func (c *StatsCmd) Run(ctx *Context) error {
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

	md := buildStatsReport(rec, username, today)
	if c.Plain {
		fmt.Print(md)
		return nil
	}

	out, err := glamour.Render(md, "dark")
	if err != nil {
		// Unrenderable terminal still gets the report.
		fmt.Print(md)
		return nil
	}
	fmt.Print(out)
	return nil
}

func buildStatsReport(rec models.UserRecord, username, today string) string {
	var b strings.Builder

	day := challenge.CurrentDayNumber(rec, today)
	fmt.Fprintf(&b, "# %s — day %d of %d\n\n", username, day, constants.MaxDays)
	fmt.Fprintf(&b, "Start date: %s (%s mode)\n\n", formatDate(rec.StartDate), rec.DayMode)

	if len(rec.Tasks) == 0 {
		b.WriteString("No tasks yet.\n")
		return b.String()
	}

	b.WriteString("## Completions per day\n\n")
	b.WriteString("| Day | Date | Done |   |\n")
	b.WriteString("| --- | ---- | ---- | - |\n")
	for _, point := range challenge.CompletionSeries(rec, today) {
		fmt.Fprintf(&b, "| %d | %s | %d/%d | %s |\n",
			point.Day, point.Date, point.Completed, len(rec.Tasks),
			strings.Repeat("█", point.Completed))
	}
	b.WriteString("\n")

	if challenge.IsComplete(rec, today) {
		b.WriteString("## Final results\n\n")
	} else {
		b.WriteString("## Success rates so far\n\n")
	}
	b.WriteString("| Task | Done | Days | Rate |\n")
	b.WriteString("| ---- | ---- | ---- | ---- |\n")
	for _, st := range challenge.FinalStats(rec, today) {
		fmt.Fprintf(&b, "| %s | %d | %d | %d%% |\n",
			st.Task.Title, st.Completed, st.TotalDays, st.RatePercent)
	}
	b.WriteString("\n## Per-task day grid\n\n")
	for _, task := range rec.Tasks {
		series := challenge.TaskSeries(rec, task.ID, today)
		var grid strings.Builder
		for _, v := range series {
			if v == 1 {
				grid.WriteString("✓")
			} else {
				grid.WriteString("·")
			}
		}
		fmt.Fprintf(&b, "- **%s**: `%s`\n", task.Title, grid.String())
	}
	b.WriteString("\n")

	return b.String()
}
