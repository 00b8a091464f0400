package cli

import (
	"errors"
	"fmt"

	"github.com/jmsalazar/thirty/internal/keyring"
	"github.com/jmsalazar/thirty/internal/storage"
)

type PgSetConnCmd struct {
	ConnString string `arg:"" help:"PostgreSQL connection string (URI or DSN)."`
}

func (c *PgSetConnCmd) Run(ctx *Context) error {
	if err := storage.ValidateConnString(c.ConnString); err != nil {
		return err
	}
	if err := keyring.SetConnectionString(c.ConnString); err != nil {
		return err
	}
	fmt.Println("Stored Postgres connection string in the OS keyring")
	return nil
}

type PgClearConnCmd struct{}

func (c *PgClearConnCmd) Run(ctx *Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("No Postgres connection string stored")
			return nil
		}
		return err
	}
	fmt.Println("Removed Postgres connection string from the OS keyring")
	return nil
}
