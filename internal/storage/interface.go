package storage

import (
	"errors"

	"github.com/jmsalazar/thirty/internal/models"
)

// ErrRecordNotFound is returned when no record exists for a username.
// Callers are expected to treat it as "create a default record", not as a
// fatal condition.
var ErrRecordNotFound = errors.New("record not found")

// Provider persists one UserRecord per username. Implementations must
// round-trip a record exactly: task order, completion-date sets, all fields.
//
// Concurrency note:
//   - Providers are not safe for concurrent use by multiple goroutines
//     without external synchronization.
//   - Running multiple thirty processes against the same storage path at the
//     same time is not supported; the last write wins.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Records
	GetRecord(username string) (models.UserRecord, error)
	SaveRecord(username string, rec models.UserRecord) error
	DeleteRecord(username string) error
	ListUsernames() ([]string, error)

	// Utils
	GetConfigPath() string
}
