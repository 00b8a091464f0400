package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/jmsalazar/thirty/internal/auth"
	"github.com/jmsalazar/thirty/internal/challenge"
	"github.com/jmsalazar/thirty/internal/cli"
	"github.com/jmsalazar/thirty/internal/config"
	"github.com/jmsalazar/thirty/internal/keyring"
	"github.com/jmsalazar/thirty/internal/logger"
	"github.com/jmsalazar/thirty/internal/storage"
)

var CLI struct {
	Version  kong.VersionFlag
	Storage  string `help:"Storage file path (.json for the JSON store, anything else for SQLite)." type:"path"`
	Postgres bool   `help:"Use the Postgres backend with the connection string from the OS keyring."`
	Conn     string `help:"Postgres connection string, overriding the keyring."`
	Debug    bool   `help:"Enable debug logging to stderr."`

	Init   cli.InitCmd   `cmd:"" help:"Initialize thirty storage."`
	Login  cli.LoginCmd  `cmd:"" help:"Log in as one of the predefined users."`
	Logout cli.LogoutCmd `cmd:"" help:"Clear the current session."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Status cli.StatusCmd `cmd:"" help:"Show progress for a day."`
	Toggle cli.ToggleCmd `cmd:"" help:"Toggle a task's completion for a date."`
	Stats  cli.StatsCmd  `cmd:"" help:"Show challenge statistics."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run diagnostics."`
	Task   struct {
		Add    cli.TaskAddCmd    `cmd:"" help:"Add a new task."`
		Delete cli.TaskDeleteCmd `cmd:"" help:"Delete a task."`
		List   cli.TaskListCmd   `cmd:"" help:"List tasks with completion for a date."`
	} `cmd:"" help:"Manage tasks."`
	Day struct {
		Show  cli.DayShowCmd  `cmd:"" default:"1" help:"Show day settings."`
		Mode  cli.DayModeCmd  `cmd:"" help:"Set day numbering mode (auto|manual)."`
		Start cli.DayStartCmd `cmd:"" help:"Set a manual start date."`
	} `cmd:"" help:"Manage challenge day settings."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" default:"1" help:"Snapshot the storage file."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the storage file from a backup."`
	} `cmd:"" help:"Back up and restore local storage."`
	Pg struct {
		SetConn   cli.PgSetConnCmd   `cmd:"" help:"Store the Postgres connection string in the OS keyring."`
		ClearConn cli.PgClearConnCmd `cmd:"" help:"Remove the Postgres connection string from the OS keyring."`
	} `cmd:"" help:"Manage the Postgres backend."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("thirty"),
		kong.Description("30-day challenge companion"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.3.0"},
	)

	configDir := config.DefaultDir()
	cfg, err := config.Load(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug || cfg.Debug,
		ConfigDir: configDir,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	store, err := selectStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	appCtx := &cli.Context{
		Store:     store,
		Service:   challenge.NewService(store),
		Sessions:  auth.NewSessionStore(configDir),
		ConfigDir: configDir,
	}

	if err := ctx.Run(appCtx); err != nil {
		logger.Error("Command failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func selectStore(cfg config.Config) (storage.Provider, error) {
	if CLI.Postgres || CLI.Conn != "" || (cfg.Postgres && CLI.Storage == "") {
		connStr := CLI.Conn
		if connStr == "" {
			var err error
			connStr, err = keyring.GetConnectionString()
			if err != nil {
				return nil, fmt.Errorf("no Postgres connection string, run 'thirty pg set-conn' first: %w", err)
			}
		}
		return storage.NewPostgresStore(connStr), nil
	}

	path := CLI.Storage
	if path == "" {
		path = cfg.Storage
	}
	if path == "" {
		path = config.DefaultStoragePath()
	}

	if strings.HasSuffix(path, ".json") {
		return storage.NewJSONStore(path), nil
	}
	return storage.NewSQLiteStore(path), nil
}
