package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"ecommerce_record_service/bundlefx/infrafx"
	"ecommerce_record_service/pkg/config"
	"ecommerce_record_service/pkg/infra/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Open(config.FromEnv())
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		if err := database.Migrate(db, infrafx.Models...); err != nil {
			return err
		}
		log.Printf("Migrated %d tables", len(infrafx.Models))
		return nil
	},
}
