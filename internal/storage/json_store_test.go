package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmsalazar/thirty/internal/models"
)

func testJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "thirty.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return store
}

func sampleRecord() models.UserRecord {
	return models.UserRecord{
		DayMode:        models.DayModeManual,
		StartDate:      "2024-01-05",
		FirstLoginDate: "2024-01-01",
		Tasks: []models.Task{
			{ID: "a1", Title: "Run", CompletedDates: []string{"2024-01-05", "2024-01-07"}},
			{ID: "b2", Title: "Read", CompletedDates: []string{}},
			{ID: "c3", Title: "Write", CompletedDates: []string{"2024-01-06"}},
		},
	}
}

func assertRecordEqual(t *testing.T, got, want models.UserRecord) {
	t.Helper()
	if got.DayMode != want.DayMode || got.StartDate != want.StartDate || got.FirstLoginDate != want.FirstLoginDate {
		t.Errorf("record header = %q/%q/%q, want %q/%q/%q",
			got.DayMode, got.StartDate, got.FirstLoginDate,
			want.DayMode, want.StartDate, want.FirstLoginDate)
	}
	if len(got.Tasks) != len(want.Tasks) {
		t.Fatalf("task count = %d, want %d", len(got.Tasks), len(want.Tasks))
	}
	for i := range want.Tasks {
		g, w := got.Tasks[i], want.Tasks[i]
		if g.ID != w.ID || g.Title != w.Title {
			t.Errorf("task %d = %s/%q, want %s/%q", i, g.ID, g.Title, w.ID, w.Title)
		}
		if len(g.CompletedDates) != len(w.CompletedDates) {
			t.Errorf("task %d completions = %v, want %v", i, g.CompletedDates, w.CompletedDates)
			continue
		}
		for j := range w.CompletedDates {
			if g.CompletedDates[j] != w.CompletedDates[j] {
				t.Errorf("task %d completion %d = %s, want %s", i, j, g.CompletedDates[j], w.CompletedDates[j])
			}
		}
	}
}

func TestJSONStore_InitTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thirty.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Init(); err == nil {
		t.Error("second Init succeeded, want already-initialized error")
	}
}

func TestJSONStore_LoadMissingFile(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := store.Load(); err == nil {
		t.Error("Load on a missing file succeeded, want not-initialized error")
	}
}

func TestJSONStore_SaveAndGetRecord(t *testing.T) {
	store := testJSONStore(t)
	want := sampleRecord()

	if err := store.SaveRecord("user1", want); err != nil {
		t.Fatalf("SaveRecord failed: %v", err)
	}
	got, err := store.GetRecord("user1")
	if err != nil {
		t.Fatalf("GetRecord failed: %v", err)
	}
	assertRecordEqual(t, got, want)
}

func TestJSONStore_RoundTripThroughDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thirty.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := sampleRecord()
	if err := store.SaveRecord("user1", want); err != nil {
		t.Fatalf("SaveRecord failed: %v", err)
	}

	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	got, err := reopened.GetRecord("user1")
	if err != nil {
		t.Fatalf("GetRecord after reload failed: %v", err)
	}
	assertRecordEqual(t, got, want)
}

func TestJSONStore_GetRecordNotFound(t *testing.T) {
	store := testJSONStore(t)
	if _, err := store.GetRecord("nobody"); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("error = %v, want ErrRecordNotFound", err)
	}
}

func TestJSONStore_DeleteRecord(t *testing.T) {
	store := testJSONStore(t)
	if err := store.SaveRecord("user1", sampleRecord()); err != nil {
		t.Fatalf("SaveRecord failed: %v", err)
	}
	if err := store.DeleteRecord("user1"); err != nil {
		t.Fatalf("DeleteRecord failed: %v", err)
	}
	if _, err := store.GetRecord("user1"); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("record still readable after delete: %v", err)
	}
	if err := store.DeleteRecord("user1"); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("second delete error = %v, want ErrRecordNotFound", err)
	}
}

func TestJSONStore_ListUsernames(t *testing.T) {
	store := testJSONStore(t)
	for _, name := range []string{"user3", "user1", "user2"} {
		if err := store.SaveRecord(name, sampleRecord()); err != nil {
			t.Fatalf("SaveRecord(%s) failed: %v", name, err)
		}
	}

	names, err := store.ListUsernames()
	if err != nil {
		t.Fatalf("ListUsernames failed: %v", err)
	}
	want := []string{"user1", "user2", "user3"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}

func TestJSONStore_CorruptFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thirty.json")
	if err := os.WriteFile(path, []byte("garbage"), 0600); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load on corrupt file failed: %v", err)
	}
	names, err := store.ListUsernames()
	if err != nil {
		t.Fatalf("ListUsernames failed: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("fresh store has usernames: %v", names)
	}
}
