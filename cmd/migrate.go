package cmd

import (
	"log/slog"

	"github.com/kampfschwein/schweinchen-tcg/internal/gateways/database"
	"github.com/kampfschwein/schweinchen-tcg/tcg/logger"
	"github.com/spf13/cobra"
)

var migrateCMD = &cobra.Command{
	Use:   "migrate",
	Short: "create the user_cards schema and lower-case legacy usernames",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		db, err := database.New(ctx, cfg.DB)
		if err != nil {
			logger.LogError("Failed to connect to database", err)
			return err
		}
		defer db.Close()

		if err := db.InitializeSchema(ctx); err != nil {
			logger.LogError("Failed to initialize schema", err)
			return err
		}

		rows, err := db.NormalizeUsernames(ctx)
		if err != nil {
			logger.LogError("Migration failed", err)
			return err
		}

		logger.LogSystem("Migration completed successfully", slog.Int64("normalized_rows", rows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCMD)
}
