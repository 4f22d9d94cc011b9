package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/vkotov/stride/internal/app"
	"github.com/vkotov/stride/internal/cli"
	"github.com/vkotov/stride/internal/constants"
	"github.com/vkotov/stride/internal/engine"
	"github.com/vkotov/stride/internal/errors"
	"github.com/vkotov/stride/internal/logger"
	"github.com/vkotov/stride/internal/storage"
	"github.com/vkotov/stride/internal/utils"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path (.json file or .db for SQLite)." type:"path" default:"~/.config/stride/stride.json"`
	Debug   bool   `help:"Enable debug logging."`

	Init        cli.InitCmd        `cmd:"" help:"Initialize stride storage."`
	Tui         cli.TuiCmd         `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Summary     cli.SummaryCmd     `cmd:"" help:"Show today's summary."`
	Goal        cli.GoalCmd        `cmd:"" help:"Manage goals."`
	Habit       cli.HabitCmd       `cmd:"" help:"Manage habits."`
	Wish        cli.WishCmd        `cmd:"" help:"Manage wishes."`
	Archive     cli.ArchiveCmd     `cmd:"" help:"Browse and restore archived items."`
	Journal     cli.JournalCmd     `cmd:"" help:"Keep dated notes."`
	Competition cli.CompetitionCmd `cmd:"" help:"Join challenges."`
	Settings    cli.SettingsCmd    `cmd:"" help:"View or change settings."`
	Doctor      cli.DoctorCmd      `cmd:"" help:"Check storage health."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal productivity tracker: goals, habits, wishes, notes"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(CLI.Config)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// The document store sits on a key/value backend; the config path
	// extension picks which one.
	var backend storage.Backend
	if strings.HasSuffix(CLI.Config, ".db") {
		backend = storage.NewSQLiteBackend(CLI.Config)
	} else {
		backend = storage.NewFileBackend(CLI.Config)
	}

	eng := engine.New(utils.SystemClock{})
	store := app.New(storage.NewStore(backend), eng)

	appCtx := &cli.Context{
		App:        store,
		ConfigPath: CLI.Config,
		Debug:      CLI.Debug,
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
