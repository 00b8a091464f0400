package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jmsalazar/thirty/internal/logger"
	"github.com/jmsalazar/thirty/internal/models"
)

type Store struct {
	Version int                          `json:"version"`
	Records map[string]models.UserRecord `json:"records"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version: 1,
		Records: make(map[string]models.UserRecord),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'thirty init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		// An unreadable store self-heals to an empty one rather than
		// locking the user out of their session.
		logger.Warn("Storage file is corrupt, starting fresh", "path", s.path, "error", err)
		s.store = &Store{Version: 1}
	}

	if s.store.Records == nil {
		s.store.Records = make(map[string]models.UserRecord)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetRecord(username string) (models.UserRecord, error) {
	if s.store == nil {
		return models.UserRecord{}, fmt.Errorf("storage not loaded")
	}

	rec, ok := s.store.Records[username]
	if !ok {
		return models.UserRecord{}, fmt.Errorf("%w: %s", ErrRecordNotFound, username)
	}

	return rec, nil
}

func (s *JSONStore) SaveRecord(username string, rec models.UserRecord) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Records[username] = rec
	return s.save()
}

func (s *JSONStore) DeleteRecord(username string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, ok := s.store.Records[username]; !ok {
		return fmt.Errorf("%w: %s", ErrRecordNotFound, username)
	}

	delete(s.store.Records, username)
	return s.save()
}

func (s *JSONStore) ListUsernames() ([]string, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	names := make([]string, 0, len(s.store.Records))
	for name := range s.store.Records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
