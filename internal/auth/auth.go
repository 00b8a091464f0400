// Package auth implements the static predefined credential list and the
// local session flag. It is deliberately not a security boundary: the
// challenge is a personal tool and the allow-list only keeps records from
// colliding, exactly like the original fixed user set.
package auth

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidCredentials is returned when a username/password pair is not
	// in the allow-list.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type credential struct {
	Username string
	Password string
}

// users is the static allow-list of predefined accounts.
var users = []credential{
	{Username: "user1", Password: "pass1"},
	{Username: "user2", Password: "pass2"},
	{Username: "user3", Password: "pass3"},
	{Username: "user4", Password: "pass4"},
	{Username: "user5", Password: "pass5"},
	{Username: "user6", Password: "pass6"},
	{Username: "user7", Password: "pass7"},
	{Username: "user8", Password: "pass8"},
	{Username: "user9", Password: "pass9"},
	{Username: "user10", Password: "pass10"},
}

// Authenticate checks a username/password pair against the allow-list.
func Authenticate(username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return ErrInvalidCredentials
	}
	for _, u := range users {
		if u.Username == username && u.Password == password {
			return nil
		}
	}
	return ErrInvalidCredentials
}

// KnownUser reports whether a username is in the allow-list, without
// checking a password. Used to validate restored sessions.
func KnownUser(username string) bool {
	for _, u := range users {
		if u.Username == username {
			return true
		}
	}
	return false
}

// Usernames returns the allow-listed usernames in order.
func Usernames() []string {
	names := make([]string, len(users))
	for i, u := range users {
		names[i] = u.Username
	}
	return names
}
