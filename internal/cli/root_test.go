package cli

import (
	"testing"

	"github.com/jmsalazar/thirty/internal/models"
)

func testRecord(start string) models.UserRecord {
	return models.UserRecord{
		DayMode:        models.DayModeAuto,
		StartDate:      start,
		FirstLoginDate: start,
		Tasks:          []models.Task{},
	}
}

func TestResolveDate(t *testing.T) {
	today := "2024-01-15"

	cases := []struct {
		arg     string
		want    string
		wantErr bool
	}{
		{"", today, false},
		{"today", today, false},
		{"2024-01-10", "2024-01-10", false},
		{"2024-13-01", "", true},
		{"yesterday", "", true},
		{"01/10/2024", "", true},
	}
	for _, c := range cases {
		got, err := resolveDate(c.arg, today)
		if c.wantErr {
			if err == nil {
				t.Errorf("resolveDate(%q) accepted, want error", c.arg)
			}
			continue
		}
		if err != nil {
			t.Errorf("resolveDate(%q) failed: %v", c.arg, err)
		}
		if got != c.want {
			t.Errorf("resolveDate(%q) = %q, want %q", c.arg, got, c.want)
		}
	}
}

func TestViewDate(t *testing.T) {
	rec := testRecord("2024-01-01")
	today := "2024-01-15"

	cases := []struct {
		requested string
		want      string
	}{
		{"2024-01-10", "2024-01-10"},
		{"2024-01-01", "2024-01-01"}, // day 1
		{"2024-01-30", "2024-01-30"}, // day 30
		{"2024-01-31", today},        // day 31, out of range
		{"2023-12-31", today},        // before the start
		{"", today},
	}
	for _, c := range cases {
		if got := viewDate(rec, c.requested, today); got != c.want {
			t.Errorf("viewDate(%q) = %q, want %q", c.requested, got, c.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := formatDate("2024-01-05"); got != "Jan 5, 2024" {
		t.Errorf("formatDate = %q, want %q", got, "Jan 5, 2024")
	}
	// Malformed input passes through untouched.
	if got := formatDate("not-a-date"); got != "not-a-date" {
		t.Errorf("formatDate passthrough = %q", got)
	}
}

func TestCheckbox(t *testing.T) {
	if checkbox(true) != "✓" || checkbox(false) != "○" {
		t.Errorf("checkbox = %q/%q", checkbox(true), checkbox(false))
	}
}
