package challenge

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/jmsalazar/thirty/internal/models"
)

// ErrEmptyTitle is returned when adding a task with an empty or
// whitespace-only title.
var ErrEmptyTitle = errors.New("task title cannot be empty")

// TaskCompletion pairs a task with its completion flag for one date.
type TaskCompletion struct {
	Task      models.Task
	Completed bool
}

// ProgressCounts summarizes one date: Completed + Remaining == Total always
// holds, and Total equals the number of tasks.
type ProgressCounts struct {
	Completed int
	Remaining int
	Total     int
}

// AddTask appends a new task with a fresh id and empty completion set.
// The title is trimmed; an empty result is a validation error and leaves the
// record untouched.
func AddTask(rec *models.UserRecord, title string) (models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Task{}, ErrEmptyTitle
	}

	task := models.Task{
		ID:             uuid.New().String(),
		Title:          title,
		CompletedDates: []string{},
	}
	rec.Tasks = append(rec.Tasks, task)
	return task, nil
}

// RemoveTask deletes the task with the given id. Removing an unknown id is a
// no-op, not an error: a double-click racing a delete should not fail.
func RemoveTask(rec *models.UserRecord, taskID string) bool {
	for i, t := range rec.Tasks {
		if t.ID == taskID {
			rec.Tasks = append(rec.Tasks[:i], rec.Tasks[i+1:]...)
			return true
		}
	}
	return false
}

// ToggleCompletion flips membership of date in the task's completion set.
// Unknown task ids are a soft no-op.
func ToggleCompletion(rec *models.UserRecord, taskID, date string) bool {
	for i := range rec.Tasks {
		if rec.Tasks[i].ID != taskID {
			continue
		}
		task := &rec.Tasks[i]
		for j, d := range task.CompletedDates {
			if d == date {
				task.CompletedDates = append(task.CompletedDates[:j], task.CompletedDates[j+1:]...)
				return true
			}
		}
		task.CompletedDates = append(task.CompletedDates, date)
		return true
	}
	return false
}

// IsCompletedOn reports whether the task was marked done on the given date.
func IsCompletedOn(task models.Task, date string) bool {
	for _, d := range task.CompletedDates {
		if d == date {
			return true
		}
	}
	return false
}

// FindTask returns the task with the given id, if present.
func FindTask(rec models.UserRecord, taskID string) (models.Task, bool) {
	for _, t := range rec.Tasks {
		if t.ID == taskID {
			return t, true
		}
	}
	return models.Task{}, false
}

// TasksWithCompletion returns a snapshot of every task with its completion
// flag for the given date, preserving task order.
func TasksWithCompletion(rec models.UserRecord, date string) []TaskCompletion {
	out := make([]TaskCompletion, 0, len(rec.Tasks))
	for _, t := range rec.Tasks {
		out = append(out, TaskCompletion{Task: t, Completed: IsCompletedOn(t, date)})
	}
	return out
}

// Progress counts completed and remaining tasks for the given date.
func Progress(rec models.UserRecord, date string) ProgressCounts {
	completed := 0
	for _, t := range rec.Tasks {
		if IsCompletedOn(t, date) {
			completed++
		}
	}
	return ProgressCounts{
		Completed: completed,
		Remaining: len(rec.Tasks) - completed,
		Total:     len(rec.Tasks),
	}
}
