package cmd

import (
	"context"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"ecommerce_record_service/bundlefx/infrafx"
	"ecommerce_record_service/pkg/config"
	"ecommerce_record_service/pkg/infra/database"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print row counts for every table",
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

		return writeStats(cmd.Context(), cmd.OutOrStdout(), db)
	},
}

func writeStats(ctx context.Context, w io.Writer, db *gorm.DB) error {
	table := tablewriter.NewWriter(w)
	table.Header("Table", "Rows")

	for _, model := range infrafx.Models {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return err
		}

		var count int64
		if err := db.WithContext(ctx).Model(model).Count(&count).Error; err != nil {
			return err
		}
		if err := table.Append([]string{stmt.Schema.Table, strconv.FormatInt(count, 10)}); err != nil {
			return err
		}
	}
	return table.Render()
}
