package validation

import (
	"testing"

	"github.com/jmsalazar/thirty/internal/models"
)

func TestTaskTitle(t *testing.T) {
	if err := TaskTitle("Run 5k"); err != nil {
		t.Errorf("valid title rejected: %v", err)
	}
	for _, title := range []string{"", "   ", "\t"} {
		if err := TaskTitle(title); err == nil {
			t.Errorf("TaskTitle(%q) accepted, want error", title)
		}
	}
}

func TestDate(t *testing.T) {
	valid := []string{"2024-01-01", "2024-12-31", "2024-02-29"}
	for _, d := range valid {
		if err := Date(d); err != nil {
			t.Errorf("Date(%s) rejected: %v", d, err)
		}
	}

	invalid := []string{"", "2024-13-01", "2024-01-32", "2023-02-29", "01-01-2024", "2024/01/01", "yesterday"}
	for _, d := range invalid {
		if err := Date(d); err == nil {
			t.Errorf("Date(%q) accepted, want error", d)
		}
	}
}

func TestDayMode(t *testing.T) {
	cases := []struct {
		in      string
		want    models.DayMode
		wantErr bool
	}{
		{"auto", models.DayModeAuto, false},
		{"manual", models.DayModeManual, false},
		{"AUTO", models.DayModeAuto, false},
		{" Manual ", models.DayModeManual, false},
		{"", "", true},
		{"automatic", "", true},
	}
	for _, c := range cases {
		got, err := DayMode(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("DayMode(%q) accepted, want error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("DayMode(%q) failed: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("DayMode(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
