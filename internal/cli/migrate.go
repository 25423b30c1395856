package cli

import (
	"fmt"

	"carrozzeria/internal/adapter/persistence/repository"
	"carrozzeria/internal/infrastructure/config"
	"carrozzeria/internal/infrastructure/database"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the tables for the configured STORAGE_DRIVER",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			out := cmd.OutOrStdout()

			switch cfg.StorageDriver {
			case config.StorageSQLite:
				db, err := database.OpenSQLite(cfg.SQLitePath, cfg.SQLDebug)
				if err != nil {
					return fmt.Errorf("opening sqlite: %w", err)
				}
				defer database.CloseSQLite(db)
				if err := repository.MigrateGorm(db); err != nil {
					return fmt.Errorf("migrating sqlite: %w", err)
				}
				fmt.Fprintf(out, "sqlite schema ready at %s\n", cfg.SQLitePath)
			default:
				ddb, err := database.ConnectDynamoDB(cmd.Context())
				if err != nil {
					return fmt.Errorf("connecting dynamodb: %w", err)
				}
				if err := database.EnsureDynamoTables(cmd.Context(), ddb); err != nil {
					return fmt.Errorf("creating dynamodb tables: %w", err)
				}
				fmt.Fprintf(out, "dynamodb tables ready (%d)\n", len(database.DynamoTables()))
			}
			return nil
		},
	}
}
