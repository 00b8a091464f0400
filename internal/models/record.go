package models

type DayMode string

const (
	DayModeAuto   DayMode = "auto"
	DayModeManual DayMode = "manual"
)

// Task is one tracked habit within a challenge. CompletedDates holds the
// YYYY-MM-DD dates the task was marked done; it behaves as a set (a date
// appears at most once) but keeps slice form for stable serialization.
type Task struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	CompletedDates []string `json:"completed_dates"`
}

// UserRecord is the full challenge state for one user. Task order is
// insertion order and is meaningful: it drives list and chart ordering.
type UserRecord struct {
	DayMode        DayMode `json:"day_mode"`
	StartDate      string  `json:"start_date"`       // YYYY-MM-DD, anchor for day 1
	FirstLoginDate string  `json:"first_login_date"` // set once at creation, never overwritten
	Tasks          []Task  `json:"tasks"`
}

// NewUserRecord builds the default record created on first access:
// auto mode anchored to the creation date.
func NewUserRecord(today string) UserRecord {
	return UserRecord{
		DayMode:        DayModeAuto,
		StartDate:      today,
		FirstLoginDate: today,
		Tasks:          []Task{},
	}
}

// Normalize repairs a record loaded from storage so every field is usable.
// This is the single defaulting step applied on load; call sites should not
// backfill fields themselves.
func (r *UserRecord) Normalize(today string) {
	if r.DayMode != DayModeAuto && r.DayMode != DayModeManual {
		r.DayMode = DayModeAuto
	}
	if r.StartDate == "" {
		r.StartDate = today
	}
	if r.FirstLoginDate == "" {
		r.FirstLoginDate = r.StartDate
	}
	if r.Tasks == nil {
		r.Tasks = []Task{}
	}
	for i := range r.Tasks {
		if r.Tasks[i].CompletedDates == nil {
			r.Tasks[i].CompletedDates = []string{}
			continue
		}
		r.Tasks[i].CompletedDates = dedupeDates(r.Tasks[i].CompletedDates)
	}
}

func dedupeDates(dates []string) []string {
	seen := make(map[string]bool, len(dates))
	out := dates[:0]
	for _, d := range dates {
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}
