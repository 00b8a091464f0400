package challenge

import (
	"math"

	"github.com/jmsalazar/thirty/internal/constants"
	"github.com/jmsalazar/thirty/internal/models"
)

// DayCompletion is one point in the per-day completion series.
type DayCompletion struct {
	Day       int
	Date      string
	Completed int
}

// TaskStats is the end-of-challenge summary for one task.
type TaskStats struct {
	Task        models.Task
	Completed   int
	TotalDays   int
	RatePercent int
}

// CompletionSeries returns, for each challenge day from 1 through the
// current day, how many tasks were completed on that day's date. The series
// is recomputed in full on each call; at 30 days times a handful of tasks
// there is nothing worth caching.
func CompletionSeries(rec models.UserRecord, today string) []DayCompletion {
	current := CurrentDayNumber(rec, today)
	series := make([]DayCompletion, 0, current)
	for d := 1; d <= current; d++ {
		date := DateForDayNumber(rec, d)
		completed := 0
		for _, t := range rec.Tasks {
			if IsCompletedOn(t, date) {
				completed++
			}
		}
		series = append(series, DayCompletion{Day: d, Date: date, Completed: completed})
	}
	return series
}

// TaskSeries returns a 0/1 completion flag per challenge day for one task,
// in day order. Unknown task ids yield an empty series.
func TaskSeries(rec models.UserRecord, taskID, today string) []int {
	task, ok := FindTask(rec, taskID)
	if !ok {
		return []int{}
	}
	current := CurrentDayNumber(rec, today)
	series := make([]int, 0, current)
	for d := 1; d <= current; d++ {
		if IsCompletedOn(task, DateForDayNumber(rec, d)) {
			series = append(series, 1)
		} else {
			series = append(series, 0)
		}
	}
	return series
}

// FinalStats computes each task's completion count and success rate over the
// challenge so far, one entry per task in task order. Rates are rounded
// whole percentages over min(currentDay, 30) days.
func FinalStats(rec models.UserRecord, today string) []TaskStats {
	totalDays := CurrentDayNumber(rec, today)
	if totalDays > constants.MaxDays {
		totalDays = constants.MaxDays
	}

	stats := make([]TaskStats, 0, len(rec.Tasks))
	for _, task := range rec.Tasks {
		completed := 0
		for d := 1; d <= totalDays; d++ {
			if IsCompletedOn(task, DateForDayNumber(rec, d)) {
				completed++
			}
		}
		rate := 0
		if totalDays > 0 {
			rate = int(math.Round(float64(completed) / float64(totalDays) * 100))
		}
		stats = append(stats, TaskStats{
			Task:        task,
			Completed:   completed,
			TotalDays:   totalDays,
			RatePercent: rate,
		})
	}
	return stats
}

// IsComplete reports whether the challenge has reached its final day.
// Consumers branch on this to show final summaries instead of ongoing
// per-task trends.
func IsComplete(rec models.UserRecord, today string) bool {
	return CurrentDayNumber(rec, today) >= constants.MaxDays
}
