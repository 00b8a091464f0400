package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/jmsalazar/thirty/internal/models"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS records (
		username TEXT PRIMARY KEY,
		day_mode TEXT NOT NULL,
		start_date TEXT NOT NULL,
		first_login_date TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL,
		title TEXT NOT NULL,
		position INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS completions (
		task_id TEXT NOT NULL,
		day TEXT NOT NULL,
		PRIMARY KEY (task_id, day)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_username ON tasks(username)`,
}

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.ensureSchema()
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'thirty init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Schema statements are idempotent, so re-running them on load also
	// repairs a database whose tables were dropped or never created.
	return s.ensureSchema()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) ensureSchema() error {
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) GetRecord(username string) (models.UserRecord, error) {
	if s.db == nil {
		return models.UserRecord{}, fmt.Errorf("storage not loaded")
	}

	var rec models.UserRecord
	row := s.db.QueryRow(
		`SELECT day_mode, start_date, first_login_date FROM records WHERE username = ?`, username)
	if err := row.Scan(&rec.DayMode, &rec.StartDate, &rec.FirstLoginDate); err != nil {
		if err == sql.ErrNoRows {
			return models.UserRecord{}, fmt.Errorf("%w: %s", ErrRecordNotFound, username)
		}
		return models.UserRecord{}, fmt.Errorf("failed to read record: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT id, title FROM tasks WHERE username = ? ORDER BY position`, username)
	if err != nil {
		return models.UserRecord{}, fmt.Errorf("failed to read tasks: %w", err)
	}
	defer rows.Close()

	rec.Tasks = []models.Task{}
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.ID, &task.Title); err != nil {
			return models.UserRecord{}, fmt.Errorf("failed to scan task: %w", err)
		}
		task.CompletedDates = []string{}
		rec.Tasks = append(rec.Tasks, task)
	}
	if err := rows.Err(); err != nil {
		return models.UserRecord{}, fmt.Errorf("failed to read tasks: %w", err)
	}

	for i := range rec.Tasks {
		dates, err := s.taskCompletions(rec.Tasks[i].ID)
		if err != nil {
			return models.UserRecord{}, err
		}
		rec.Tasks[i].CompletedDates = dates
	}

	return rec, nil
}

func (s *SQLiteStore) taskCompletions(taskID string) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT day FROM completions WHERE task_id = ? ORDER BY day`, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to read completions: %w", err)
	}
	defer rows.Close()

	dates := []string{}
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("failed to scan completion: %w", err)
		}
		dates = append(dates, day)
	}
	return dates, rows.Err()
}

func (s *SQLiteStore) SaveRecord(username string, rec models.UserRecord) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO records (username, day_mode, start_date, first_login_date)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(username) DO UPDATE SET
		   day_mode = excluded.day_mode,
		   start_date = excluded.start_date,
		   first_login_date = excluded.first_login_date`,
		username, rec.DayMode, rec.StartDate, rec.FirstLoginDate)
	if err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	// Replace tasks and completions wholesale so positions stay dense and
	// removed tasks leave no orphans.
	if _, err := tx.Exec(
		`DELETE FROM completions WHERE task_id IN (SELECT id FROM tasks WHERE username = ?)`,
		username); err != nil {
		return fmt.Errorf("failed to clear completions: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM tasks WHERE username = ?`, username); err != nil {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}

	for i, task := range rec.Tasks {
		if _, err := tx.Exec(
			`INSERT INTO tasks (id, username, title, position) VALUES (?, ?, ?, ?)`,
			task.ID, username, task.Title, i); err != nil {
			return fmt.Errorf("failed to write task: %w", err)
		}
		for _, day := range task.CompletedDates {
			if _, err := tx.Exec(
				`INSERT OR IGNORE INTO completions (task_id, day) VALUES (?, ?)`,
				task.ID, day); err != nil {
				return fmt.Errorf("failed to write completion: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit record: %w", err)
	}
	return nil
}

func (s *SQLiteStore) DeleteRecord(username string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`DELETE FROM completions WHERE task_id IN (SELECT id FROM tasks WHERE username = ?)`,
		username); err != nil {
		return fmt.Errorf("failed to clear completions: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM tasks WHERE username = ?`, username); err != nil {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}

	res, err := tx.Exec(`DELETE FROM records WHERE username = ?`, username)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrRecordNotFound, username)
	}

	return tx.Commit()
}

func (s *SQLiteStore) ListUsernames() ([]string, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`SELECT username FROM records ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan username: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
