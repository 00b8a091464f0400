package challenge

import (
	"errors"
	"fmt"

	"github.com/jmsalazar/thirty/internal/logger"
	"github.com/jmsalazar/thirty/internal/models"
	"github.com/jmsalazar/thirty/internal/storage"
)

// Service binds the challenge core to a storage provider. Every mutation is
// a synchronous read-modify-write that persists before returning.
type Service struct {
	store storage.Provider
}

func NewService(store storage.Provider) *Service {
	return &Service{store: store}
}

// LoadOrInitialize returns the record for a username, creating and
// persisting the default record on first access. Absent and unreadable
// records both fall back to the default; storage problems never surface as
// fatal on the read path.
func (s *Service) LoadOrInitialize(username, today string) (models.UserRecord, error) {
	rec, err := s.store.GetRecord(username)
	if err != nil {
		if !errors.Is(err, storage.ErrRecordNotFound) {
			logger.Warn("Unreadable record, creating default", "username", username, "error", err)
		}
		rec = models.NewUserRecord(today)
		if saveErr := s.store.SaveRecord(username, rec); saveErr != nil {
			return rec, fmt.Errorf("failed to persist new record: %w", saveErr)
		}
		return rec, nil
	}

	rec.Normalize(today)
	return rec, nil
}

// AddTask creates a task and persists the record. Returns ErrEmptyTitle
// without mutation when the trimmed title is empty.
func (s *Service) AddTask(username, today, title string) (models.Task, error) {
	rec, err := s.LoadOrInitialize(username, today)
	if err != nil {
		return models.Task{}, err
	}
	task, err := AddTask(&rec, title)
	if err != nil {
		return models.Task{}, err
	}
	if err := s.store.SaveRecord(username, rec); err != nil {
		return models.Task{}, fmt.Errorf("failed to persist task: %w", err)
	}
	return task, nil
}

// RemoveTask deletes a task if it exists. Unknown ids are a no-op.
func (s *Service) RemoveTask(username, today, taskID string) error {
	rec, err := s.LoadOrInitialize(username, today)
	if err != nil {
		return err
	}
	if !RemoveTask(&rec, taskID) {
		return nil
	}
	return s.store.SaveRecord(username, rec)
}

// ToggleCompletion flips a task's completion for a date. Unknown ids are a
// no-op.
func (s *Service) ToggleCompletion(username, today, taskID, date string) error {
	rec, err := s.LoadOrInitialize(username, today)
	if err != nil {
		return err
	}
	if !ToggleCompletion(&rec, taskID, date) {
		return nil
	}
	return s.store.SaveRecord(username, rec)
}

// SetStartDate anchors the challenge to an explicit start date (manual mode).
func (s *Service) SetStartDate(username, today, date string) error {
	rec, err := s.LoadOrInitialize(username, today)
	if err != nil {
		return err
	}
	SetManualStartDate(&rec, date)
	return s.store.SaveRecord(username, rec)
}

// SetDayMode switches between auto and manual day numbering.
func (s *Service) SetDayMode(username, today string, mode models.DayMode) error {
	rec, err := s.LoadOrInitialize(username, today)
	if err != nil {
		return err
	}
	SetMode(&rec, mode)
	return s.store.SaveRecord(username, rec)
}
