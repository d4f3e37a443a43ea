package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"twala_backend/internal/app/di"
	platformdb "twala_backend/internal/platform/db"
)

func newMigrateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "migrate",
		Short:   "Create or update the database schema",
		GroupID: "data",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := platformdb.Open(di.DBConfig(c.cfg))
			if err != nil {
				return err
			}
			if err := platformdb.Migrate(db); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrated %s database\n", c.cfg.DBDriver)
			return nil
		},
	}
}
