package auth

import (
	"errors"
	"fmt"
	"testing"
)

func TestAuthenticate(t *testing.T) {
	cases := []struct {
		username string
		password string
		wantErr  bool
	}{
		{"user1", "pass1", false},
		{"user10", "pass10", false},
		{"  user1  ", "pass1", false}, // whitespace around the username is ignored
		{"user1", "pass2", true},
		{"user1", "PASS1", true},
		{"user11", "pass11", true},
		{"", "pass1", true},
		{"user1", "", true},
		{"", "", true},
	}
	for _, c := range cases {
		err := Authenticate(c.username, c.password)
		if c.wantErr && !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Authenticate(%q, %q) = %v, want ErrInvalidCredentials", c.username, c.password, err)
		}
		if !c.wantErr && err != nil {
			t.Errorf("Authenticate(%q, %q) = %v, want nil", c.username, c.password, err)
		}
	}
}

func TestAuthenticate_AllPredefinedUsers(t *testing.T) {
	for i := 1; i <= 10; i++ {
		username := fmt.Sprintf("user%d", i)
		password := fmt.Sprintf("pass%d", i)
		if err := Authenticate(username, password); err != nil {
			t.Errorf("Authenticate(%s) failed: %v", username, err)
		}
	}
}

func TestKnownUser(t *testing.T) {
	if !KnownUser("user5") {
		t.Error("user5 not recognized")
	}
	if KnownUser("user11") {
		t.Error("user11 recognized, want unknown")
	}
	if KnownUser("") {
		t.Error("empty username recognized")
	}
}

func TestUsernames(t *testing.T) {
	names := Usernames()
	if len(names) != 10 {
		t.Fatalf("got %d usernames, want 10", len(names))
	}
	if names[0] != "user1" || names[9] != "user10" {
		t.Errorf("unexpected ordering: first=%s last=%s", names[0], names[9])
	}
}
