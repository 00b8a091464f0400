package challenge

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

func TestDayNumberForDate_Scenario(t *testing.T) {
	rec := testRecord("2024-01-01")

	cases := []struct {
		date string
		want int
	}{
		{"2024-01-01", 1},
		{"2024-01-02", 2},
		{"2024-01-30", 30},
		{"2024-01-31", 30}, // clamped at the ceiling
		{"2024-06-01", 30}, // far past the end, still 30
		{"2023-12-25", 1},  // before the start, floored at day 1
	}

	for _, tc := range cases {
		if got := DayNumberForDate(rec, tc.date); got != tc.want {
			t.Errorf("DayNumberForDate(%s) = %d, want %d", tc.date, got, tc.want)
		}
	}
}

func TestDayNumberForDate_Monotonic(t *testing.T) {
	rec := testRecord("2024-01-10")

	dates := []string{
		"2023-12-01", "2024-01-09", "2024-01-10", "2024-01-11",
		"2024-01-25", "2024-02-08", "2024-02-09", "2024-05-01",
	}
	prev := 0
	for _, d := range dates {
		got := DayNumberForDate(rec, d)
		if got < prev {
			t.Fatalf("day number decreased: %s -> %d after %d", d, got, prev)
		}
		prev = got
	}
}

func TestDayIndex_RoundTrip(t *testing.T) {
	rec := testRecord("2024-02-15")

	for n := 1; n <= 30; n++ {
		date := DateForDayNumber(rec, n)
		if got := DayNumberForDate(rec, date); got != n {
			t.Errorf("round trip day %d: got %d via %s", n, got, date)
		}
	}
}

func TestDayIndex_MonthAndYearBoundaries(t *testing.T) {
	rec := testRecord("2023-12-20")

	if got := DateForDayNumber(rec, 13); got != "2024-01-01" {
		t.Errorf("day 13 = %s, want 2024-01-01", got)
	}
	if got := DayNumberForDate(rec, "2024-01-18"); got != 30 {
		t.Errorf("DayNumberForDate(2024-01-18) = %d, want 30", got)
	}
}

func TestCurrentDayNumber_FutureStartDate(t *testing.T) {
	rec := testRecord("2024-06-01")

	// A manual start date in the future reports day 1 until it arrives.
	if got := CurrentDayNumber(rec, "2024-01-15"); got != 1 {
		t.Errorf("CurrentDayNumber before start = %d, want 1", got)
	}
}

func TestIsDateInRange_Boundaries(t *testing.T) {
	rec := testRecord("2024-01-01")

	cases := []struct {
		date string
		want bool
	}{
		{"2023-12-31", false}, // before start
		{"2024-01-01", true},  // day 1
		{"2024-01-30", true},  // day 30, inclusive
		{"2024-01-31", false}, // day 31, exclusive
	}

	for _, tc := range cases {
		if got := IsDateInRange(rec, tc.date); got != tc.want {
			t.Errorf("IsDateInRange(%s) = %v, want %v", tc.date, got, tc.want)
		}
	}
}

func TestSetMode_RestoresFirstLoginDate(t *testing.T) {
	rec := testRecord("2024-01-01")

	SetManualStartDate(&rec, "2024-02-01")
	if rec.DayMode != models.DayModeManual || rec.StartDate != "2024-02-01" {
		t.Fatalf("manual set failed: %+v", rec)
	}

	// A second manual change must not become the auto anchor.
	SetManualStartDate(&rec, "2024-03-15")

	SetMode(&rec, models.DayModeAuto)
	if rec.StartDate != "2024-01-01" {
		t.Errorf("auto mode restored %s, want the original first login 2024-01-01", rec.StartDate)
	}
	if rec.FirstLoginDate != "2024-01-01" {
		t.Errorf("FirstLoginDate changed to %s, must be immutable", rec.FirstLoginDate)
	}
}

func TestDayNumberForDate_MalformedDate(t *testing.T) {
	rec := testRecord("2024-01-01")

	// Garbage input cannot produce a panic or a negative day.
	if got := DayNumberForDate(rec, "not-a-date"); got != 1 {
		t.Errorf("DayNumberForDate(garbage) = %d, want 1", got)
	}
}
