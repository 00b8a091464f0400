package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	pq "github.com/lib/pq"

	"github.com/jmsalazar/thirty/internal/models"
)

var (
	// ErrInvalidConnectionString is returned for unusable Postgres connection strings
	ErrInvalidConnectionString = errors.New("invalid PostgreSQL connection string")
)

var pgSchema = []string{
	`CREATE TABLE IF NOT EXISTS records (
		username TEXT PRIMARY KEY,
		day_mode TEXT NOT NULL,
		start_date TEXT NOT NULL,
		first_login_date TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL REFERENCES records(username) ON DELETE CASCADE,
		title TEXT NOT NULL,
		position INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS completions (
		task_id TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		day TEXT NOT NULL,
		PRIMARY KEY (task_id, day)
	)`,
}

// PostgresStore persists records in a PostgreSQL database. It exists for
// users who want their challenge state on a machine they can reach from more
// than one box; the local JSON and SQLite stores are the default.
type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{
		connStr: connStr,
	}
}

// ValidateConnString checks that a connection string parses as a PostgreSQL
// URI or DSN before it is stored in the keyring.
func ValidateConnString(connStr string) error {
	if strings.TrimSpace(connStr) == "" {
		return fmt.Errorf("%w: connection string cannot be empty", ErrInvalidConnectionString)
	}
	if _, err := pq.NewConnector(connStr); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConnectionString, err)
	}
	return nil
}

func (s *PostgresStore) Init() error {
	if err := s.open(); err != nil {
		return err
	}
	for _, stmt := range pgSchema {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) Load() error {
	if s.db != nil {
		return nil
	}
	if err := s.open(); err != nil {
		return err
	}
	// Init is idempotent; loading also ensures the schema exists so a fresh
	// database does not need a separate init step.
	for _, stmt := range pgSchema {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) open() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = db
	return nil
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) GetRecord(username string) (models.UserRecord, error) {
	if s.db == nil {
		return models.UserRecord{}, fmt.Errorf("storage not loaded")
	}

	var rec models.UserRecord
	row := s.db.QueryRow(
		`SELECT day_mode, start_date, first_login_date FROM records WHERE username = $1`, username)
	if err := row.Scan(&rec.DayMode, &rec.StartDate, &rec.FirstLoginDate); err != nil {
		if err == sql.ErrNoRows {
			return models.UserRecord{}, fmt.Errorf("%w: %s", ErrRecordNotFound, username)
		}
		return models.UserRecord{}, fmt.Errorf("failed to read record: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT id, title FROM tasks WHERE username = $1 ORDER BY position`, username)
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
		crows, err := s.db.Query(
			`SELECT day FROM completions WHERE task_id = $1 ORDER BY day`, rec.Tasks[i].ID)
		if err != nil {
			return models.UserRecord{}, fmt.Errorf("failed to read completions: %w", err)
		}
		dates := []string{}
		for crows.Next() {
			var day string
			if err := crows.Scan(&day); err != nil {
				crows.Close()
				return models.UserRecord{}, fmt.Errorf("failed to scan completion: %w", err)
			}
			dates = append(dates, day)
		}
		if err := crows.Err(); err != nil {
			crows.Close()
			return models.UserRecord{}, fmt.Errorf("failed to read completions: %w", err)
		}
		crows.Close()
		rec.Tasks[i].CompletedDates = dates
	}

	return rec, nil
}

func (s *PostgresStore) SaveRecord(username string, rec models.UserRecord) error {
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
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (username) DO UPDATE SET
		   day_mode = EXCLUDED.day_mode,
		   start_date = EXCLUDED.start_date,
		   first_login_date = EXCLUDED.first_login_date`,
		username, rec.DayMode, rec.StartDate, rec.FirstLoginDate)
	if err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	// Tasks cascade to completions on delete.
	if _, err := tx.Exec(`DELETE FROM tasks WHERE username = $1`, username); err != nil {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}

	for i, task := range rec.Tasks {
		if _, err := tx.Exec(
			`INSERT INTO tasks (id, username, title, position) VALUES ($1, $2, $3, $4)`,
			task.ID, username, task.Title, i); err != nil {
			return fmt.Errorf("failed to write task: %w", err)
		}
		for _, day := range task.CompletedDates {
			if _, err := tx.Exec(
				`INSERT INTO completions (task_id, day) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
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

func (s *PostgresStore) DeleteRecord(username string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	res, err := s.db.Exec(`DELETE FROM records WHERE username = $1`, username)
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
	return nil
}

func (s *PostgresStore) ListUsernames() ([]string, error) {
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

func (s *PostgresStore) GetConfigPath() string {
	return s.connStr
}
