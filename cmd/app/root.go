package main

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"fulfillment/cmd"
	pgstore "fulfillment/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const serviceName = "fulfillment"

// appContext opens the database and builds the composition root on first use,
// so that commands such as --help never touch the environment.
type appContext struct {
	loadConfigs func() cmd.Config

	once    sync.Once
	configs cmd.Config
	logger  *slog.Logger
	root    *cmd.CompositionRoot
	err     error
}

func newRootCommand(loadConfigs func() cmd.Config) *cobra.Command {
	app := &appContext{loadConfigs: loadConfigs}

	root := &cobra.Command{
		Use:           serviceName,
		Short:         "Order fulfillment service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newServeCommand(app),
		newMigrateCommand(app),
		newChecklistCommand(app),
	)
	return root
}

func (a *appContext) compositionRoot() (*cmd.CompositionRoot, error) {
	a.once.Do(func() {
		a.configs = a.loadConfigs()
		a.logger = newLogger(a.configs.LogLevel)

		defaults, err := cmd.LoadDefaultSteps(a.configs.DefaultChecklistPath)
		if err != nil {
			a.err = err
			return
		}

		db, err := gorm.Open(postgres.Open(a.configs.DSN()), &gorm.Config{})
		if err != nil {
			a.err = err
			return
		}
		if err = pgstore.Migrate(db); err != nil {
			a.err = err
			return
		}

		root := cmd.NewCompositionRoot(a.configs, db, defaults, a.logger)
		a.root = &root
	})
	return a.root, a.err
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})).
		With("service", serviceName)
}
