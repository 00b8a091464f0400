package auth

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSessionStore_SetAndCurrent(t *testing.T) {
	store := NewSessionStore(t.TempDir())

	if err := store.Set("user3"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := store.Current()
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if got != "user3" {
		t.Errorf("Current = %q, want user3", got)
	}
}

func TestSessionStore_NoSession(t *testing.T) {
	store := NewSessionStore(t.TempDir())
	if _, err := store.Current(); !errors.Is(err, ErrNoSession) {
		t.Errorf("error = %v, want ErrNoSession", err)
	}
}

func TestSessionStore_Clear(t *testing.T) {
	store := NewSessionStore(t.TempDir())
	if err := store.Set("user1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, err := store.Current(); !errors.Is(err, ErrNoSession) {
		t.Errorf("error after clear = %v, want ErrNoSession", err)
	}

	// A second clear with no session present is fine.
	if err := store.Clear(); err != nil {
		t.Errorf("Clear on absent session = %v, want nil", err)
	}
}

func TestSessionStore_RejectsUnknownUser(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.json")
	if err := os.WriteFile(path, []byte(`{"username":"intruder"}`), 0600); err != nil {
		t.Fatalf("failed to seed session: %v", err)
	}

	store := NewSessionStore(dir)
	if _, err := store.Current(); !errors.Is(err, ErrNoSession) {
		t.Errorf("stale session error = %v, want ErrNoSession", err)
	}
}

func TestSessionStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "session.json"), []byte("{broken"), 0600); err != nil {
		t.Fatalf("failed to seed session: %v", err)
	}

	store := NewSessionStore(dir)
	if _, err := store.Current(); !errors.Is(err, ErrNoSession) {
		t.Errorf("corrupt session error = %v, want ErrNoSession", err)
	}
}

func TestSessionStore_CreatesConfigDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")
	store := NewSessionStore(dir)
	if err := store.Set("user2"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := store.Current()
	if err != nil || got != "user2" {
		t.Errorf("Current = %q, %v; want user2, nil", got, err)
	}
}
