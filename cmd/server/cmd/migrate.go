package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"leadsync/internal/infrastructure/migration"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Применить миграции схемы без запуска сервера",
	RunE: func(cmd *cobra.Command, args []string) error {
		mg := migration.NewMigration(cfg, migration.DefaultEngine)
		if err := mg.Up(); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		log.Info("migrations applied", "path", cfg.DB.Migrations)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
