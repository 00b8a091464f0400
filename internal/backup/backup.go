// Package backup snapshots the local storage file (SQLite or JSON) into a
// rotating backups directory next to it. Postgres is out of scope here; the
// server owns that data.
package backup

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jmsalazar/thirty/internal/constants"
)

const (
	// MaxBackups is how many snapshots are kept before rotation.
	MaxBackups = 14
	dirName    = "backups"
)

// Info describes one snapshot on disk.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager snapshots and restores the storage file at storePath.
type Manager struct {
	storePath string
	backupDir string
}

func NewManager(storePath string) *Manager {
	return &Manager{
		storePath: storePath,
		backupDir: filepath.Join(filepath.Dir(storePath), dirName),
	}
}

// Dir returns the backups directory path.
func (m *Manager) Dir() string {
	return m.backupDir
}

// Create snapshots the storage file and rotates old snapshots. Returns the
// snapshot path.
func (m *Manager) Create() (string, error) {
	return m.create(true)
}

func (m *Manager) create(rotate bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}
	if _, err := os.Stat(m.storePath); os.IsNotExist(err) {
		return "", fmt.Errorf("storage does not exist: %s", m.storePath)
	}

	path, err := m.snapshotPath()
	if err != nil {
		return "", err
	}

	if isSQLite(m.storePath) {
		err = m.snapshotSQLite(path)
	} else {
		err = copyFile(m.storePath, path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to snapshot storage: %w", err)
	}

	if rotate {
		if err := m.rotate(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
		}
	}
	return path, nil
}

// snapshotPath builds a timestamped filename, extending the timestamp to
// second precision when a snapshot from the same minute already exists.
func (m *Manager) snapshotPath() (string, error) {
	ext := filepath.Ext(m.storePath)
	for _, format := range []string{"20060102-1504", "20060102-150405"} {
		name := constants.AppName + "-" + time.Now().Format(format) + ext
		path := filepath.Join(m.backupDir, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
	}
	return "", fmt.Errorf("a backup for this second already exists, try again")
}

// snapshotSQLite copies the database with VACUUM INTO, which produces a
// consistent snapshot even while the database is open. Falls back to a plain
// file copy if the SQLite build lacks VACUUM INTO.
func (m *Manager) snapshotSQLite(dest string) error {
	db, err := sql.Open("sqlite", m.storePath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("database appears to be corrupted: %w", err)
	}

	if _, err := db.Exec("VACUUM INTO ?", dest); err != nil {
		return copyFile(m.storePath, dest)
	}
	return nil
}

// List returns available snapshots, newest first.
func (m *Manager) List() ([]Info, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []Info{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	ext := filepath.Ext(m.storePath)
	prefix := constants.AppName + "-"
	var backups []Info
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ext) {
			continue
		}

		stamp := strings.TrimSuffix(strings.TrimPrefix(name, prefix), ext)
		ts, err := time.Parse("20060102-1504", stamp)
		if err != nil {
			ts, err = time.Parse("20060102-150405", stamp)
			if err != nil {
				continue
			}
		}

		info, err := os.Stat(filepath.Join(m.backupDir, name))
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(m.backupDir, name),
			Timestamp: ts,
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// Restore replaces the storage file with a snapshot. The current storage
// file is snapshotted first, so a bad restore is itself recoverable.
func (m *Manager) Restore(backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup does not exist: %s", backupPath)
	}
	if isSQLite(m.storePath) {
		if err := verifySQLite(backupPath); err != nil {
			return fmt.Errorf("backup is corrupted or invalid: %w", err)
		}
	}

	if _, err := os.Stat(m.storePath); err == nil {
		pre, err := m.create(false)
		if err != nil {
			return fmt.Errorf("failed to snapshot current storage before restore: %w", err)
		}
		fmt.Printf("Saved current storage as %s\n", filepath.Base(pre))
	}

	// Copy then rename so a failed restore never leaves a half-written store.
	tmp := m.storePath + ".restore.tmp"
	if err := copyFile(backupPath, tmp); err != nil {
		return fmt.Errorf("failed to copy backup: %w", err)
	}
	if err := os.Rename(tmp, m.storePath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to restore storage: %w", err)
	}
	return nil
}

func isSQLite(path string) bool {
	return filepath.Ext(path) != ".json"
}

func verifySQLite(path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	var count int
	return db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count)
}

func copyFile(src, dst string) error {
	source, err := os.Open(src)
	if err != nil {
		return err
	}
	defer source.Close()

	dest, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer dest.Close()

	if _, err := dest.ReadFrom(source); err != nil {
		return err
	}
	return dest.Sync()
}
