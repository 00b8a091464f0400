package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/huh"

	"github.com/jmsalazar/thirty/internal/challenge"
	"github.com/jmsalazar/thirty/internal/models"
	"github.com/jmsalazar/thirty/internal/tui/components/checklist"
	"github.com/jmsalazar/thirty/internal/validation"
)

type SessionState int

const (
	StateDashboard SessionState = iota
	StateCharts
	StateAddTask
	StateSettings
	StateConfirmDelete
)

// SettingsFormModel backs the day-settings form.
type SettingsFormModel struct {
	Mode      models.DayMode
	StartDate string
}

type Model struct {
	service  *challenge.Service
	username string
	today    string

	rec      models.UserRecord
	viewDate string // the date being viewed/edited, constrained to the challenge range

	state        SessionState
	keys         KeyMap
	help         help.Model
	checklist    checklist.Model
	form         *huh.Form
	addTitle     string
	settingsForm *SettingsFormModel
	deleteID     string
	deleteTitle  string

	errMsg   string
	quitting bool
	width    int
	height   int
}

func NewModel(service *challenge.Service, username, today string) (Model, error) {
	rec, err := service.LoadOrInitialize(username, today)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		service:   service,
		username:  username,
		today:     today,
		rec:       rec,
		viewDate:  today,
		state:     StateDashboard,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		checklist: checklist.New(challenge.TasksWithCompletion(rec, today), 0, 0),
	}
	return m, nil
}

// refresh reloads the record and rebuilds the checklist for the view date.
func (m *Model) refresh() {
	rec, err := m.service.LoadOrInitialize(m.username, m.today)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.rec = rec
	if !challenge.IsDateInRange(m.rec, m.viewDate) {
		m.viewDate = m.today
	}
	m.checklist.SetItems(challenge.TasksWithCompletion(m.rec, m.viewDate))
}

func (m *Model) newAddTaskForm() *huh.Form {
	m.addTitle = ""
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New task").
				Description("What are you committing to for 30 days?").
				Validate(validation.TaskTitle).
				Value(&m.addTitle),
		),
	)
}

func (m *Model) newSettingsForm() *huh.Form {
	m.settingsForm = &SettingsFormModel{
		Mode:      m.rec.DayMode,
		StartDate: m.rec.StartDate,
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.DayMode]().
				Title("Day numbering").
				Description("Auto anchors day 1 to your first login.").
				Options(
					huh.NewOption("Automatic (first login)", models.DayModeAuto),
					huh.NewOption("Manual start date", models.DayModeManual),
				).
				Value(&m.settingsForm.Mode),
			huh.NewInput().
				Title("Start date").
				Description("Used in manual mode (YYYY-MM-DD).").
				Validate(validation.Date).
				Value(&m.settingsForm.StartDate),
		),
	)
}
