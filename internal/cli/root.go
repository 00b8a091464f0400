package cli

import (
	"fmt"
	"time"

	"github.com/jmsalazar/thirty/internal/auth"
	"github.com/jmsalazar/thirty/internal/challenge"
	"github.com/jmsalazar/thirty/internal/constants"
	"github.com/jmsalazar/thirty/internal/models"
	"github.com/jmsalazar/thirty/internal/storage"
)

// Context is passed to every command's Run method.
type Context struct {
	Store     storage.Provider
	Service   *challenge.Service
	Sessions  *auth.SessionStore
	ConfigDir string
}

// Today returns the current calendar date as YYYY-MM-DD. This is the only
// place the CLI reads the clock; everything below takes the date as input.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// resolveUser picks the acting user: an explicit --user flag wins, otherwise
// the logged-in session.
func resolveUser(ctx *Context, flag string) (string, error) {
	if flag != "" {
		if !auth.KnownUser(flag) {
			return "", fmt.Errorf("unknown user %q", flag)
		}
		return flag, nil
	}
	return ctx.Sessions.Current()
}

// resolveDate turns a date argument into YYYY-MM-DD, accepting "today" as an
// alias.
func resolveDate(arg, today string) (string, error) {
	if arg == "" || arg == "today" {
		return today, nil
	}
	if _, err := time.Parse(constants.DateFormat, arg); err != nil {
		return "", fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}
	return arg, nil
}

// viewDate constrains a requested date to the challenge range, falling back
// to today when out of range.
func viewDate(rec models.UserRecord, requested, today string) string {
	if requested == "" || !challenge.IsDateInRange(rec, requested) {
		return today
	}
	return requested
}

func formatDate(s string) string {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return s
	}
	return t.Format("Jan 2, 2006")
}

func checkbox(done bool) string {
	if done {
		return "✓"
	}
	return "○"
}
