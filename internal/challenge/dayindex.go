// Package challenge implements the 30-day challenge model: mapping calendar
// dates to challenge days, recording per-task per-date completion, and
// deriving progress statistics. Every function takes "today" as a YYYY-MM-DD
// string supplied by the caller, so the package never reads a clock.
package challenge

import (
	"time"

	"github.com/jmsalazar/thirty/internal/constants"
	"github.com/jmsalazar/thirty/internal/models"
)

// parseDay parses a YYYY-MM-DD string to a midnight timestamp. Malformed
// input yields the zero time; callers treat that as "no offset" so a bad
// date can never produce a negative day count.
func parseDay(s string) time.Time {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// dayDifference returns the number of whole calendar days from start to end,
// floored at zero. Both inputs are truncated to midnight by parsing, so
// sub-day precision cannot perturb the count.
func dayDifference(start, end string) int {
	s := parseDay(start)
	e := parseDay(end)
	if s.IsZero() || e.IsZero() {
		return 0
	}
	diff := int(e.Sub(s).Hours() / 24)
	if diff < 0 {
		return 0
	}
	return diff
}

// DayNumberForDate maps a calendar date to its 1-based challenge day,
// clamped to [1, 30]. Dates before the start date report day 1; dates past
// the end of the challenge report day 30.
func DayNumberForDate(rec models.UserRecord, date string) int {
	n := dayDifference(rec.StartDate, date) + 1
	if n > constants.MaxDays {
		return constants.MaxDays
	}
	return n
}

// DateForDayNumber is the inverse mapping: the calendar date of challenge
// day n. Valid for n >= 1; no clamping is performed here.
func DateForDayNumber(rec models.UserRecord, n int) string {
	start := parseDay(rec.StartDate)
	return start.AddDate(0, 0, n-1).Format(constants.DateFormat)
}

// CurrentDayNumber returns the challenge day for today, clamped to [1, 30].
func CurrentDayNumber(rec models.UserRecord, today string) int {
	return DayNumberForDate(rec, today)
}

// IsDateInRange reports whether date falls within the 30-day window starting
// at the record's start date: inclusive of day 30, exclusive of day 31 onward
// and of anything before the start date.
func IsDateInRange(rec models.UserRecord, date string) bool {
	start := parseDay(rec.StartDate)
	target := parseDay(date)
	if target.Before(start) {
		return false
	}
	return dayDifference(rec.StartDate, date) < constants.MaxDays
}

// SetManualStartDate anchors day 1 to an explicit date and switches the
// record to manual mode. Any date is accepted, past or future; a future
// start simply reports day 1 until it is reached.
func SetManualStartDate(rec *models.UserRecord, date string) {
	rec.DayMode = models.DayModeManual
	rec.StartDate = date
}

// SetMode switches day numbering mode. Switching to auto restores the anchor
// to the first login date, discarding any manual start date.
func SetMode(rec *models.UserRecord, mode models.DayMode) {
	rec.DayMode = mode
	if mode == models.DayModeAuto {
		rec.StartDate = rec.FirstLoginDate
	}
}
