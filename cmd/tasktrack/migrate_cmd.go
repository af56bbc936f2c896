package main

import (
	"fmt"
	"strings"

	"github.com/phrazzld/tasktrack/internal/platform/migrations"
	"github.com/spf13/cobra"
)

func newMigrateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:         "migrate " + strings.Join(migrations.Commands, "|"),
		Short:       "Manage the schema of the postgres or mysql store",
		Annotations: map[string]string{annotationSkipAutoMigrate: "true"},
		ValidArgs:   migrations.Commands,
		Args:        usageArgs(cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.app.db == nil {
				return newUsageError(fmt.Errorf(
					"migrate requires the postgres or mysql driver, not %s",
					c.app.config.Store.Driver,
				))
			}
			return migrations.Run(cmd.Context(), c.app.db, c.app.config.Store.Driver, args[0], c.app.logger)
		},
	}
}
