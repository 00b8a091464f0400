package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmsalazar/thirty/internal/challenge"
	"github.com/jmsalazar/thirty/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateAddTask, StateSettings:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	case StateCharts:
		content = m.viewCharts()
	default:
		content = m.viewDashboard()
	}

	sections := []string{m.viewHero(), content}
	if m.errMsg != "" {
		sections = append(sections, errStyle.Render("Error: "+m.errMsg))
	}
	sections = append(sections, m.help.View(m.keys))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) viewHero() string {
	day := challenge.DayNumberForDate(m.rec, m.viewDate)
	hero := heroStyle.Render(fmt.Sprintf("Day %d of %d", day, constants.MaxDays))

	var sub string
	if m.viewDate == m.today {
		sub = subtleStyle.Render(fmt.Sprintf("%s · today · %s", m.username, m.viewDate))
	} else {
		sub = subtleStyle.Render(fmt.Sprintf("%s · logging for %s · press t for today", m.username, m.viewDate))
	}

	anchor := subtleStyle.Render(fmt.Sprintf("start %s (%s mode)", m.rec.StartDate, m.rec.DayMode))
	return lipgloss.JoinVertical(lipgloss.Left, hero, sub, anchor, "")
}

func (m Model) viewDashboard() string {
	counts := challenge.Progress(m.rec, m.viewDate)
	progress := fmt.Sprintf("%d of %d tasks done", counts.Completed, counts.Total)
	if counts.Total == 0 {
		progress = "No tasks yet. Press a to add one."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		progressBar(counts, 30),
		progress,
		"",
		m.checklist.View(),
	)
}

// progressBar renders the completed/remaining split as a fixed-width bar.
func progressBar(counts challenge.ProgressCounts, width int) string {
	if counts.Total == 0 {
		return restBarStyle.Render(strings.Repeat("░", width))
	}
	done := counts.Completed * width / counts.Total
	return doneBarStyle.Render(strings.Repeat("█", done)) +
		restBarStyle.Render(strings.Repeat("░", width-done))
}

func (m Model) viewCharts() string {
	if challenge.IsComplete(m.rec, m.today) {
		return m.viewFinalCharts()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewDailySeries(),
		"",
		m.viewTaskGrids(),
	)
}

// viewDailySeries is the terminal stand-in for the completions-per-day line
// chart: one column per challenge day so far.
func (m Model) viewDailySeries() string {
	series := challenge.CompletionSeries(m.rec, m.today)
	total := len(m.rec.Tasks)
	if total == 0 {
		return "Add tasks to see progress charts."
	}

	var rows []string
	// Draw top-down so higher counts stack above lower ones.
	for level := total; level >= 1; level-- {
		var row strings.Builder
		for _, point := range series {
			if point.Completed >= level {
				row.WriteString(doneBarStyle.Render("█"))
			} else {
				row.WriteString(" ")
			}
		}
		rows = append(rows, fmt.Sprintf("%2d %s", level, row.String()))
	}
	axis := "   " + strings.Repeat("─", len(series))
	header := "Completions per day"

	return lipgloss.JoinVertical(lipgloss.Left,
		append([]string{header}, append(rows, axis)...)...)
}

// viewTaskGrids shows one ✓/· row per task across the challenge days so far.
func (m Model) viewTaskGrids() string {
	if len(m.rec.Tasks) == 0 {
		return ""
	}

	lines := []string{"Per-task progress"}
	for _, task := range m.rec.Tasks {
		series := challenge.TaskSeries(m.rec, task.ID, m.today)
		var grid strings.Builder
		for _, v := range series {
			if v == 1 {
				grid.WriteString(doneBarStyle.Render("✓"))
			} else {
				grid.WriteString(subtleStyle.Render("·"))
			}
		}
		lines = append(lines, fmt.Sprintf("%-20s %s", truncate(task.Title, 20), grid.String()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewFinalCharts() string {
	stats := challenge.FinalStats(m.rec, m.today)
	if len(stats) == 0 {
		return "No tasks to show final results."
	}

	lines := []string{heroStyle.Render("Challenge complete — final results"), ""}
	for _, st := range stats {
		bar := progressBar(challenge.ProgressCounts{
			Completed: st.Completed,
			Remaining: st.TotalDays - st.Completed,
			Total:     st.TotalDays,
		}, 30)
		lines = append(lines, fmt.Sprintf("%-20s %s %d/%d days (%d%%)",
			truncate(st.Task.Title, 20), bar, st.Completed, st.TotalDays, st.RatePercent))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		dangerStyle.Render(fmt.Sprintf("Delete task %q?", m.deleteTitle)),
		"",
		"[y] Yes   [n] No",
	)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
