// Package validation holds the input checks shared by the CLI commands and
// the TUI forms.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmsalazar/thirty/internal/constants"
	"github.com/jmsalazar/thirty/internal/models"
)

// TaskTitle rejects empty or whitespace-only titles.
func TaskTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title cannot be empty")
	}
	return nil
}

// Date checks YYYY-MM-DD format. The core accepts manual start dates as-is,
// so this runs at the input boundary only: a typo should bounce at the form,
// not anchor the challenge to a date that never arrives.
func Date(date string) error {
	if _, err := time.Parse(constants.DateFormat, date); err != nil {
		return fmt.Errorf("invalid date, use YYYY-MM-DD: %q", date)
	}
	return nil
}

// DayMode parses an auto/manual mode string.
func DayMode(mode string) (models.DayMode, error) {
	switch models.DayMode(strings.ToLower(strings.TrimSpace(mode))) {
	case models.DayModeAuto:
		return models.DayModeAuto, nil
	case models.DayModeManual:
		return models.DayModeManual, nil
	default:
		return "", fmt.Errorf("invalid day mode %q, use auto or manual", mode)
	}
}
