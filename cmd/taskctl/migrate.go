package main

import (
	"fmt"

	"github.com/phrazzld/task-repository/internal/config"
	"github.com/phrazzld/task-repository/internal/platform/postgres"
	"github.com/spf13/cobra"
)

func newMigrateCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply PostgreSQL schema migrations",
		Long: `Apply every pending migration to the database named by database.url and
print the resulting schema version. Only the postgres backend has a schema
to migrate; the SQLite backend creates its table on open.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if global.cfg.Store.Backend != config.BackendPostgres {
				return fmt.Errorf("migrate requires the %s backend, configured backend is %s",
					config.BackendPostgres, global.cfg.Store.Backend)
			}

			ctx := cmd.Context()
			db, err := postgres.Open(ctx, global.cfg.Database.URL)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			if err := postgres.Migrate(ctx, db, global.logger); err != nil {
				return err
			}

			version, err := postgres.MigrationVersion(ctx, db)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", version)
			return err
		},
	}
}
