package commands

import (
	"productcatalog/catalog-service/internal/app/catalog/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply or roll back the catalog schema",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(database.Up), string(database.Down)},
	RunE: func(cmd *cobra.Command, args []string) error {
		direction, err := database.ParseDirection(args[0])
		if err != nil {
			return err
		}

		cfg, err := bootstrap()
		if err != nil {
			return err
		}

		return database.Migrate(cfg.Database.DSN(), direction)
	},
}
