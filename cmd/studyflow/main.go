package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/suhani1709/studyflow/internal/cli"
	"github.com/suhani1709/studyflow/internal/cli/system"
	"github.com/suhani1709/studyflow/internal/constants"
	"github.com/suhani1709/studyflow/internal/keyring"
	"github.com/suhani1709/studyflow/internal/logger"
	"github.com/suhani1709/studyflow/internal/storage"
	"github.com/suhani1709/studyflow/internal/tracker"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path (.db for SQLite, .json for a plain JSON file) or a PostgreSQL connection string. Credentials must NOT be embedded; use the environment or the OS keyring." default:"~/.config/studyflow/studyflow.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init     system.InitCmd   `cmd:"" help:"Initialize storage."`
	Add      cli.AddCmd       `cmd:"" help:"Add a task."`
	List     cli.ListCmd      `cmd:"" help:"List tasks for a date."`
	Toggle   cli.ToggleCmd    `cmd:"" help:"Toggle a task's completion."`
	Delete   cli.DeleteCmd    `cmd:"" help:"Delete a task."`
	Today    cli.TodayCmd     `cmd:"" help:"Show today's dashboard." default:"1"`
	Calendar cli.CalendarCmd  `cmd:"" help:"Show the month calendar."`
	Report   cli.ReportCmd    `cmd:"" help:"Show weekly report."`
	Streak   cli.StreakCmd    `cmd:"" help:"Show the current streak."`
	Tui      system.TuiCmd    `cmd:"" help:"Launch the interactive day view."`
	Doctor   system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	ConfigCmd system.ConfigCmd `cmd:"" name:"config" help:"Manage stored database credentials."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal productivity tracker: time-boxed tasks, daily stats, streaks"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := expandHome(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	store, err := selectStore(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	trk := tracker.New(store)
	appCtx := &cli.Context{
		Store:   store,
		Tracker: trk,
		Debug:   CLI.Debug,
	}

	// Init and doctor handle storage themselves and config never
	// touches it; everything else needs a loaded store and tracker.
	command := ctx.Command()
	root := command
	if i := strings.IndexByte(command, ' '); i >= 0 {
		root = command[:i]
	}
	if root != "init" && root != "doctor" && root != "config" {
		if err := store.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		if err := trk.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// selectStore picks the storage backend by the shape of the config
// string. For PostgreSQL the full connection string may come from the
// environment or the OS keyring; the flag value itself must never
// embed credentials, since it would leak into shell history.
func selectStore(configPath string) (storage.Provider, error) {
	if isPostgres(configPath) {
		if storage.HasEmbeddedCredentials(configPath) {
			return nil, fmt.Errorf("connection strings with embedded credentials are not allowed on the command line; store one with 'studyflow config set-connection' or use %s", constants.ConnectionEnvVar)
		}
		if env := os.Getenv(constants.ConnectionEnvVar); isPostgres(env) {
			return storage.NewPostgresStore(env), nil
		}
		if stored, err := keyring.GetConnectionString(); err == nil && isPostgres(stored) {
			return storage.NewPostgresStore(stored), nil
		}
		return storage.NewPostgresStore(configPath), nil
	}

	if strings.HasSuffix(configPath, ".json") {
		return storage.NewJSONStore(configPath), nil
	}

	return storage.NewSQLiteStore(configPath), nil
}

func isPostgres(connStr string) bool {
	return strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://")
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
