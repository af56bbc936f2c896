package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasktrack/internal/config"
	"github.com/phrazzld/tasktrack/internal/platform/logger"
	"github.com/spf13/cobra"
)

var version = "dev"

const (
	outputTable = "table"
	outputJSON  = "json"
)

// annotationSkipAutoMigrate marks commands that must not apply migrations on startup.
const annotationSkipAutoMigrate = "tasktrack/skip-auto-migrate"

// flagBindings maps configuration keys to the persistent flags overriding them.
var flagBindings = map[string]string{
	"log.level":    "log-level",
	"store.driver": "driver",
	"store.path":   "db-path",
	"store.url":    "db-url",
}

// cli holds the state shared by every command of one invocation.
type cli struct {
	configFile string
	output     string
	app        *application
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "tasktrack",
		Short: "Track tasks in an ordered key-value store",
		Long: `tasktrack creates, lists, updates and deletes task records.
Each task has an immutable ID plus free-form description and status text.
Tasks are kept in a bbolt file or in PostgreSQL or MySQL. The memory
driver keeps them only for the current invocation.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipsSetup(cmd) {
				return nil
			}
			return c.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.configFile, "config", "", "config file (yaml, json or toml)")
	flags.StringVarP(&c.output, "output", "o", outputTable, "output format: table or json")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("driver", "", "storage driver: bolt, postgres, mysql, or memory (not persisted between runs)")
	flags.String("db-path", "", "bbolt database file")
	flags.String("db-url", "", "PostgreSQL URL or MySQL DSN")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return newUsageError(err)
	})

	root.AddCommand(
		newAddCmd(c),
		newDeleteCmd(c),
		newListCmd(c),
		newGetCmd(c),
		newSetStatusCmd(c),
		newSetDescriptionCmd(c),
		newMigrateCmd(c),
	)
	return root
}

// skipsSetup reports whether cmd is one of cobra's built-in help or shell
// completion commands, which never touch configuration or storage.
func skipsSetup(cmd *cobra.Command) bool {
	for ; cmd != nil; cmd = cmd.Parent() {
		switch cmd.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return true
		}
	}
	return false
}

// setup loads configuration, installs the logger and opens the application.
func (c *cli) setup(cmd *cobra.Command) error {
	if c.output != outputTable && c.output != outputJSON {
		return newUsageError(fmt.Errorf("unknown output format %q (expected table or json)", c.output))
	}

	cfg, err := config.Load(c.configFile, config.WithFlags(cmd.Flags(), flagBindings))
	if err != nil {
		return newUsageError(fmt.Errorf("invalid configuration: %w", err))
	}

	log, err := logger.Setup(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return newUsageError(err)
	}

	ctx := logger.WithLogger(cmd.Context(), log.With(slog.String("command", cmd.Name())))
	cmd.SetContext(ctx)

	autoMigrate := cfg.Store.AutoMigrate && cmd.Annotations[annotationSkipAutoMigrate] == ""
	app, err := newApplication(ctx, cfg, log, autoMigrate)
	if err != nil {
		return err
	}
	c.app = app
	return nil
}

func (c *cli) cleanup() {
	if c.app != nil {
		c.app.cleanup()
		c.app = nil
	}
}

// exactArgs is cobra.ExactArgs reporting failures as usage errors.
func exactArgs(n int) cobra.PositionalArgs {
	return usageArgs(cobra.ExactArgs(n))
}

func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return newUsageError(err)
		}
		return nil
	}
}
