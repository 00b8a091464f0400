package challenge

import (
	"errors"
	"testing"
)

func TestAddTask(t *testing.T) {
	rec := testRecord("2024-01-01")

	task, err := AddTask(&rec, "  Run 5k  ")
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if task.ID == "" {
		t.Error("expected a non-empty task id")
	}
	if task.Title != "Run 5k" {
		t.Errorf("title = %q, want trimmed %q", task.Title, "Run 5k")
	}
	if len(task.CompletedDates) != 0 {
		t.Errorf("new task has %d completions, want 0", len(task.CompletedDates))
	}
	if len(rec.Tasks) != 1 {
		t.Fatalf("record has %d tasks, want 1", len(rec.Tasks))
	}
}

func TestAddTask_EmptyTitle(t *testing.T) {
	rec := testRecord("2024-01-01")

	for _, title := range []string{"", "   ", "\t\n"} {
		if _, err := AddTask(&rec, title); !errors.Is(err, ErrEmptyTitle) {
			t.Errorf("AddTask(%q) error = %v, want ErrEmptyTitle", title, err)
		}
	}
	if len(rec.Tasks) != 0 {
		t.Errorf("validation failure mutated the record: %d tasks", len(rec.Tasks))
	}
}

func TestAddTask_PreservesInsertionOrder(t *testing.T) {
	rec := testRecord("2024-01-01")

	titles := []string{"Read", "Run", "Write", "Stretch"}
	for _, title := range titles {
		if _, err := AddTask(&rec, title); err != nil {
			t.Fatalf("AddTask(%s) failed: %v", title, err)
		}
	}

	for i, task := range rec.Tasks {
		if task.Title != titles[i] {
			t.Errorf("task %d = %q, want %q", i, task.Title, titles[i])
		}
	}
}

func TestRemoveTask(t *testing.T) {
	rec := testRecord("2024-01-01")
	task, _ := AddTask(&rec, "Run")
	AddTask(&rec, "Read")

	if !RemoveTask(&rec, task.ID) {
		t.Fatal("RemoveTask reported not found for an existing task")
	}
	if len(rec.Tasks) != 1 || rec.Tasks[0].Title != "Read" {
		t.Errorf("unexpected tasks after remove: %+v", rec.Tasks)
	}

	// Unknown ids are a soft no-op.
	if RemoveTask(&rec, "nope") {
		t.Error("RemoveTask removed something for an unknown id")
	}
	if len(rec.Tasks) != 1 {
		t.Errorf("no-op remove mutated the record")
	}
}

func TestToggleCompletion(t *testing.T) {
	rec := testRecord("2024-01-01")
	task, _ := AddTask(&rec, "Run 5k")

	if !ToggleCompletion(&rec, task.ID, "2024-01-01") {
		t.Fatal("toggle reported not found")
	}
	got, _ := FindTask(rec, task.ID)
	if !IsCompletedOn(got, "2024-01-01") {
		t.Error("task not completed after toggle on")
	}
	if IsCompletedOn(got, "2024-01-02") {
		t.Error("completion leaked to a different date")
	}

	// Toggling twice restores the original state.
	ToggleCompletion(&rec, task.ID, "2024-01-01")
	got, _ = FindTask(rec, task.ID)
	if IsCompletedOn(got, "2024-01-01") {
		t.Error("task still completed after toggle off")
	}
	if len(got.CompletedDates) != 0 {
		t.Errorf("completion set not empty after double toggle: %v", got.CompletedDates)
	}
}

func TestToggleCompletion_NoDuplicates(t *testing.T) {
	rec := testRecord("2024-01-01")
	task, _ := AddTask(&rec, "Run")

	dates := []string{"2024-01-01", "2024-01-02", "2024-01-01", "2024-01-03", "2024-01-01"}
	for _, d := range dates {
		ToggleCompletion(&rec, task.ID, d)
	}

	got, _ := FindTask(rec, task.ID)
	seen := make(map[string]int)
	for _, d := range got.CompletedDates {
		seen[d]++
		if seen[d] > 1 {
			t.Fatalf("duplicate date %s in completion set %v", d, got.CompletedDates)
		}
	}
	// 01-01 toggled three times ends completed; 01-02 and 01-03 once each.
	if !IsCompletedOn(got, "2024-01-01") || !IsCompletedOn(got, "2024-01-02") || !IsCompletedOn(got, "2024-01-03") {
		t.Errorf("unexpected completion state: %v", got.CompletedDates)
	}
}

func TestToggleCompletion_UnknownTask(t *testing.T) {
	rec := testRecord("2024-01-01")
	AddTask(&rec, "Run")

	if ToggleCompletion(&rec, "missing", "2024-01-01") {
		t.Error("toggle on unknown id reported success")
	}
}

func TestProgress_Conservation(t *testing.T) {
	rec := testRecord("2024-01-01")
	a, _ := AddTask(&rec, "Run")
	AddTask(&rec, "Read")
	AddTask(&rec, "Write")

	ToggleCompletion(&rec, a.ID, "2024-01-05")

	for _, date := range []string{"2024-01-01", "2024-01-05", "2024-02-01"} {
		counts := Progress(rec, date)
		if counts.Completed+counts.Remaining != counts.Total {
			t.Errorf("%s: completed %d + remaining %d != total %d",
				date, counts.Completed, counts.Remaining, counts.Total)
		}
		if counts.Total != len(rec.Tasks) {
			t.Errorf("%s: total %d != task count %d", date, counts.Total, len(rec.Tasks))
		}
	}

	counts := Progress(rec, "2024-01-05")
	if counts.Completed != 1 || counts.Remaining != 2 {
		t.Errorf("counts = %+v, want 1 completed / 2 remaining", counts)
	}
}

func TestTasksWithCompletion_PreservesOrder(t *testing.T) {
	rec := testRecord("2024-01-01")
	AddTask(&rec, "Run")
	b, _ := AddTask(&rec, "Read")
	ToggleCompletion(&rec, b.ID, "2024-01-01")

	snapshot := TasksWithCompletion(rec, "2024-01-01")
	if len(snapshot) != 2 {
		t.Fatalf("snapshot has %d entries, want 2", len(snapshot))
	}
	if snapshot[0].Task.Title != "Run" || snapshot[0].Completed {
		t.Errorf("entry 0 = %+v", snapshot[0])
	}
	if snapshot[1].Task.Title != "Read" || !snapshot[1].Completed {
		t.Errorf("entry 1 = %+v", snapshot[1])
	}
}
