package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jmsalazar/thirty/internal/backup"
	"github.com/jmsalazar/thirty/internal/storage"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx.Store)
	if err != nil {
		return err
	}
	path, err := mgr.Create()
	if err != nil {
		return err
	}
	fmt.Printf("Created backup: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx.Store)
	if err != nil {
		return err
	}
	backups, err := mgr.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups yet. Create one with 'thirty backup create'.")
		return nil
	}

	fmt.Printf("Backups in %s:\n", mgr.Dir())
	for _, b := range backups {
		fmt.Printf("  %s  %s  %d bytes\n",
			filepath.Base(b.Path), b.Timestamp.Format("Jan 2, 2006 15:04"), b.Size)
	}
	return nil
}

type BackupRestoreCmd struct {
	Name string `arg:"" help:"Backup filename (as shown by 'backup list') or full path."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx.Store)
	if err != nil {
		return err
	}

	path := c.Name
	if !strings.ContainsRune(path, filepath.Separator) {
		path = filepath.Join(mgr.Dir(), path)
	}
	if err := mgr.Restore(path); err != nil {
		return err
	}
	fmt.Printf("Restored storage from %s\n", filepath.Base(path))
	return nil
}

// backupManager wraps the store's file path. Only local file-backed stores
// can be snapshotted.
func backupManager(store storage.Provider) (*backup.Manager, error) {
	if _, ok := store.(*storage.PostgresStore); ok {
		return nil, fmt.Errorf("backups cover local storage only, use pg_dump for Postgres")
	}
	return backup.NewManager(store.GetConfigPath()), nil
}
