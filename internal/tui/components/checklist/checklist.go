// Package checklist is the task list component of the dashboard: every task
// with its completion mark for the date currently being viewed.
package checklist

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmsalazar/thirty/internal/challenge"
)

type Item struct {
	Entry challenge.TaskCompletion
}

func (i Item) Title() string {
	if i.Entry.Completed {
		return "✓ " + i.Entry.Task.Title
	}
	return "○ " + i.Entry.Task.Title
}

func (i Item) Description() string {
	if i.Entry.Completed {
		return "done this day"
	}
	return "not done this day"
}

func (i Item) FilterValue() string { return i.Entry.Task.Title }

type Model struct {
	list list.Model
}

func New(items []challenge.TaskCompletion, width, height int) Model {
	l := list.New(toListItems(items), list.NewDefaultDelegate(), width, height)
	l.Title = "Tasks"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	return Model{list: l}
}

func toListItems(items []challenge.TaskCompletion) []list.Item {
	out := make([]list.Item, 0, len(items))
	for _, tc := range items {
		out = append(out, Item{Entry: tc})
	}
	return out
}

// SetItems replaces the visible tasks, keeping the cursor on the same row
// where possible.
func (m *Model) SetItems(items []challenge.TaskCompletion) {
	idx := m.list.Index()
	m.list.SetItems(toListItems(items))
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Selected returns the task under the cursor, if any.
func (m Model) Selected() (Item, bool) {
	item, ok := m.list.SelectedItem().(Item)
	return item, ok
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
