package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/jmsalazar/thirty/internal/challenge"
	"github.com/jmsalazar/thirty/internal/models"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.checklist.SetSize(msg.Width-4, msg.Height-14)
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateAddTask, StateSettings:
			return m.updateForm(msg)
		case StateConfirmDelete:
			return m.updateConfirmDelete(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Stats):
			if m.state == StateCharts {
				m.state = StateDashboard
			} else {
				m.state = StateCharts
			}
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			if item, ok := m.checklist.Selected(); ok {
				m.errMsg = ""
				if err := m.service.ToggleCompletion(m.username, m.today, item.Entry.Task.ID, m.viewDate); err != nil {
					m.errMsg = err.Error()
				}
				m.refresh()
			}
			return m, nil

		case key.Matches(msg, m.keys.Add):
			m.state = StateAddTask
			m.form = m.newAddTaskForm()
			return m, m.form.Init()

		case key.Matches(msg, m.keys.Setting):
			m.state = StateSettings
			m.form = m.newSettingsForm()
			return m, m.form.Init()

		case key.Matches(msg, m.keys.Delete):
			if item, ok := m.checklist.Selected(); ok {
				m.state = StateConfirmDelete
				m.deleteID = item.Entry.Task.ID
				m.deleteTitle = item.Entry.Task.Title
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevDay):
			day := challenge.DayNumberForDate(m.rec, m.viewDate)
			if day > 1 {
				m.viewDate = challenge.DateForDayNumber(m.rec, day-1)
				m.refresh()
			}
			return m, nil

		case key.Matches(msg, m.keys.NextDay):
			day := challenge.DayNumberForDate(m.rec, m.viewDate)
			next := challenge.DateForDayNumber(m.rec, day+1)
			// ISO dates compare correctly as strings, so this caps
			// navigation at today without parsing.
			if challenge.IsDateInRange(m.rec, next) && next <= m.today {
				m.viewDate = next
				m.refresh()
			}
			return m, nil

		case key.Matches(msg, m.keys.Today):
			m.viewDate = m.today
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.checklist, cmd = m.checklist.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		switch m.state {
		case StateAddTask:
			m.errMsg = ""
			if _, err := m.service.AddTask(m.username, m.today, m.addTitle); err != nil {
				m.errMsg = err.Error()
			}
		case StateSettings:
			m.applySettings()
		}
		m.state = StateDashboard
		m.refresh()
		return m, nil

	case huh.StateAborted:
		m.state = StateDashboard
		return m, nil
	}

	return m, cmd
}

func (m *Model) applySettings() {
	f := m.settingsForm
	if f == nil {
		return
	}
	m.errMsg = ""

	var err error
	switch f.Mode {
	case models.DayModeManual:
		// Choosing manual always re-anchors to the entered date.
		err = m.service.SetStartDate(m.username, m.today, f.StartDate)
	case models.DayModeAuto:
		err = m.service.SetDayMode(m.username, m.today, models.DayModeAuto)
	}
	if err != nil {
		m.errMsg = err.Error()
	}
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.errMsg = ""
		if err := m.service.RemoveTask(m.username, m.today, m.deleteID); err != nil {
			m.errMsg = err.Error()
		}
		m.state = StateDashboard
		m.refresh()
	case "n", "N", "esc", "q":
		m.state = StateDashboard
	}
	return m, nil
}
